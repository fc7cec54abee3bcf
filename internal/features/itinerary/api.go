package itinerary

import (
	"sacred-journey/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ItineraryApi struct {
	controller *ItineraryController
}

func NewItineraryApi(controller *ItineraryController) *ItineraryApi {
	return &ItineraryApi{
		controller: controller,
	}
}

// Setup registers all itinerary-related routes
func (h *ItineraryApi) Setup(app *fiber.App) {
	itineraries := app.Group("/api/itineraries", middleware.AuthMiddleware())

	itineraries.Get("/", middleware.AdminMiddleware(), h.controller.ListItineraries)
	itineraries.Post("/", middleware.AdminMiddleware(), h.controller.CreateItinerary)
	// Registered before /:id so "group" is not captured as an itinerary id
	itineraries.Get("/group/:groupId", h.controller.GetItineraryByGroup)
	itineraries.Get("/:id", h.controller.GetItinerary)
	itineraries.Put("/:id", middleware.AdminMiddleware(), h.controller.UpdateItinerary)
	itineraries.Delete("/:id", middleware.AdminMiddleware(), h.controller.DeleteItinerary)
}
