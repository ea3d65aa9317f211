package router

import (
	"github.com/Sinhaamisha5/todo-api/config"
	"github.com/Sinhaamisha5/todo-api/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger.
var l = logrus.New()

func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	if cfg.Debug {
		l.SetLevel(logrus.DebugLevel)
	}

	todoHandler := handlers.NewHandler(cfg.DatabasePath, l)

	app.Get("/health", handlers.HandleHealthCheck)

	// setup the todos group
	api := app.Group("/api")
	todos := api.Group("/todos")
	todos.Get("/", handlers.HandleAllTodos(todoHandler))
	todos.Post("/", handlers.HandleCreateTodo(todoHandler))
	todos.Get("/:id", handlers.HandleGetOneTodo(todoHandler))
	todos.Put("/:id", handlers.HandleUpdateTodo(todoHandler))
	todos.Delete("/:id", handlers.HandleDeleteTodo(todoHandler))
}
