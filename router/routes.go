package router

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	handler "github.com/vvstudio/visual-intake/handlers"
	"github.com/vvstudio/visual-intake/web"
)

func SetupRoutes(app *fiber.App, submissions *handler.SubmissionHandler) {
	app.Use(recover.New())

	api := app.Group("/api", logger.New())
	api.Get("/health", handler.Health)

	// Submissions
	api.Get("/submissions", submissions.ListSubmissions)
	api.Post("/submissions", submissions.CreateSubmission)
	api.Patch("/submissions/:id", submissions.UpdateSubmission)

	// Views
	app.Get("/admin", servePage("admin.html"))
	app.Use("/", filesystem.New(filesystem.Config{
		Root:  http.FS(web.Assets),
		Index: "index.html",
	}))
}

func servePage(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := web.Assets.ReadFile(name)
		if err != nil {
			return fiber.ErrNotFound
		}
		c.Type("html")
		return c.Send(page)
	}
}
