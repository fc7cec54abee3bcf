package user

import (
	"sacred-journey/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
}

func NewUserApi(controller *UserController) *UserApi {
	return &UserApi{
		controller: controller,
	}
}

// Setup registers all user-related routes
func (h *UserApi) Setup(app *fiber.App) {
	users := app.Group("/api/users", middleware.AuthMiddleware())

	users.Get("/", middleware.AdminMiddleware(), h.controller.ListUsers)
	users.Get("/group/:groupId", h.controller.ListUsersByGroup)
	users.Put("/:id", middleware.AdminMiddleware(), h.controller.UpdateUser)
}
