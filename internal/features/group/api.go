package group

import (
	"sacred-journey/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type GroupApi struct {
	controller *GroupController
}

func NewGroupApi(controller *GroupController) *GroupApi {
	return &GroupApi{
		controller: controller,
	}
}

// Setup registers all group-related routes
func (h *GroupApi) Setup(app *fiber.App) {
	groups := app.Group("/api/groups", middleware.AuthMiddleware())

	groups.Get("/", middleware.AdminMiddleware(), h.controller.ListGroups)
	groups.Post("/", middleware.AdminMiddleware(), h.controller.CreateGroup)
	groups.Get("/:id", h.controller.GetGroup)
	groups.Put("/:id", middleware.AdminMiddleware(), h.controller.UpdateGroup)
	groups.Delete("/:id", middleware.AdminMiddleware(), h.controller.DeleteGroup)
	groups.Get("/:id/export", middleware.AdminMiddleware(), h.controller.ExportRoster)
	groups.Delete("/:id/pilgrims/:pilgrimId", middleware.AdminMiddleware(), h.controller.RemovePilgrim)
}
