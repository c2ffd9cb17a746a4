package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/vvstudio/visual-intake/config"
	"github.com/vvstudio/visual-intake/database"
	handler "github.com/vvstudio/visual-intake/handlers"
	"github.com/vvstudio/visual-intake/models"
	"github.com/vvstudio/visual-intake/router"
	"github.com/vvstudio/visual-intake/store"
)

func main() {
	var submissions store.SubmissionStore

	if config.ConfigWithDefault("STORE", "postgres") == "memory" {
		log.Println("Using in-memory store; submissions will not survive a restart")
		submissions = store.NewMemoryStore()
	} else {
		db := database.GetDB()

		// Run migrations
		if err := database.MigrateModels(&models.Submission{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		// close the database connection
		defer func() {
			if err := database.CloseDB(); err != nil {
				log.Printf("Error closing the database connection: %v", err)
			}
		}()

		submissions = store.NewGormStore(db)
	}

	app := fiber.New()
	router.SetupRoutes(app, handler.NewSubmissionHandler(submissions))

	addr := ":" + config.ConfigWithDefault("PORT", "3000")
	log.Printf("Server is listening at %s", addr)
	log.Fatal(app.Listen(addr))
}
