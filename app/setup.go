package app

import (
	"github.com/Sinhaamisha5/todo-api/config"
	"github.com/Sinhaamisha5/todo-api/database"
	"github.com/Sinhaamisha5/todo-api/router"
	"github.com/gofiber/fiber/v2"
)

// SetupAndRunApp handles database init, app construction and graceful shutdown
func SetupAndRunApp(cfg *config.AppConfig) error {
	// ensure the todos table exists
	err := database.Init(cfg.DatabasePath)
	if err != nil {
		return err
	}

	// create app
	app := fiber.New()

	// attach middleware
	FiberMiddleware(app)

	// setup routes
	router.SetupRoutes(app, cfg)

	// attach swagger
	config.AddSwaggerRoutes(app)

	StartServerWithGracefulShutdown(app, ":"+cfg.Port)

	return nil
}
