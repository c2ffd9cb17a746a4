// Package web holds the intake and admin pages, compiled into the
// binary so the server ships as a single artifact.
package web

import "embed"

//go:embed index.html admin.html style.css
var Assets embed.FS
