package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

func loadDotEnv() {
	loadEnv.Do(func() {
		// A missing .env is fine; the process environment may already
		// carry everything we need.
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "No .env file loaded: %v\n", err)
		}
	})
}

// Config returns a required environment variable and exits the process
// when it is missing.
func Config(envVar string) string {
	loadDotEnv()

	envVarValue := os.Getenv(envVar)
	if envVarValue == "" {
		fmt.Fprintf(os.Stderr, "%s not set\n", envVar)
		os.Exit(1)
	}

	return envVarValue
}

// ConfigWithDefault returns an environment variable, falling back when
// it is unset or empty.
func ConfigWithDefault(envVar, fallback string) string {
	loadDotEnv()

	if envVarValue := os.Getenv(envVar); envVarValue != "" {
		return envVarValue
	}

	return fallback
}
