package destination

import (
	"sacred-journey/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DestinationApi struct {
	controller *DestinationController
}

func NewDestinationApi(controller *DestinationController) *DestinationApi {
	return &DestinationApi{
		controller: controller,
	}
}

// Setup registers all destination-related routes. Reads are public;
// writes require an admin token.
func (h *DestinationApi) Setup(app *fiber.App) {
	destinations := app.Group("/api/destinations")

	destinations.Get("/", h.controller.ListDestinations)
	destinations.Get("/:id", h.controller.GetDestination)

	destinations.Post("/", middleware.AuthMiddleware(), middleware.AdminMiddleware(), h.controller.CreateDestination)
	destinations.Put("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), h.controller.UpdateDestination)
	destinations.Delete("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), h.controller.DeleteDestination)
}
