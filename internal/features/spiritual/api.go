package spiritual

import (
	"sacred-journey/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ContentApi struct {
	controller *ContentController
}

func NewContentApi(controller *ContentController) *ContentApi {
	return &ContentApi{
		controller: controller,
	}
}

// Setup registers all spiritual-content routes. Reads are public;
// writes require an admin token.
func (h *ContentApi) Setup(app *fiber.App) {
	contents := app.Group("/api/spiritual-content")

	contents.Get("/", h.controller.ListContent)
	// Registered before /:id so "category" is not captured as a content id
	contents.Get("/category/:category", h.controller.ListContentByCategory)
	contents.Get("/:id", h.controller.GetContent)

	contents.Post("/", middleware.AuthMiddleware(), middleware.AdminMiddleware(), h.controller.CreateContent)
	contents.Put("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), h.controller.UpdateContent)
	contents.Delete("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), h.controller.DeleteContent)
}
