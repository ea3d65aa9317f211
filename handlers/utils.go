package handlers

import (
	"github.com/Sinhaamisha5/todo-api/models"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Handler carries what every todo endpoint needs. It holds the database
// path, not a connection: each request opens and closes its own handle.
type Handler struct {
	DBPath string
	L      *logrus.Logger
}

func NewHandler(dbPath string, l *logrus.Logger) *Handler {
	return &Handler{
		DBPath: dbPath,
		L:      l,
	}
}

func ErrorJSON(c *fiber.Ctx, httpStatus int, message string) error {
	return c.Status(httpStatus).JSON(models.ErrorResponse{Error: message})
}
