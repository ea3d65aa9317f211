package handlers

import (
	"time"

	"github.com/Sinhaamisha5/todo-api/models"
	"github.com/gofiber/fiber/v2"
)

// @Summary Show the status of server.
// @Description get the status of server.
// @Tags health
// @Accept */*
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
