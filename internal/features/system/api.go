package system

import (
	"github.com/gofiber/fiber/v2"
)

type SystemApi struct{}

func NewSystemApi() *SystemApi {
	return &SystemApi{}
}

// Setup registers the health and root endpoints
func (h *SystemApi) Setup(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	app.Get("/api/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Sacred Journey API is running",
		})
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
		})
	})
}
