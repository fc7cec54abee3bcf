package user

import (
	"sacred-journey/internal/middleware"
	"sacred-journey/internal/policy"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	UserService UserService
}

func NewUserController(userService UserService) *UserController {
	return &UserController{
		UserService: userService,
	}
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	GroupID  *string `json:"group_id,omitempty"`
}

// ListUsers godoc
// @Summary      List all users
// @Description  Get all registered users (admin only)
// @Tags         users
// @Produce      json
// @Success      200  {array} UserResponse
// @Failure      500  {string} string "Failed to fetch users"
// @Router       /api/users [get]
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	users, err := ctrl.UserService.ListUsers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	return c.JSON(users)
}

// ListUsersByGroup godoc
// @Summary      List users in a group
// @Description  Get the users belonging to a pilgrimage group. Pilgrims may only query their own group.
// @Tags         users
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Success      200  {array} UserResponse
// @Failure      403  {string} string "Not authorized to access this group"
// @Router       /api/users/group/{groupId} [get]
func (ctrl *UserController) ListUsersByGroup(c *fiber.Ctx) error {
	groupID := c.Params("groupId")

	claims := middleware.Claims(c)
	if !policy.CanReadGroup(claims.Role, claims.GroupID, groupID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to access this group",
		})
	}

	users, err := ctrl.UserService.ListUsersByGroup(c.Context(), groupID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	return c.JSON(users)
}

// UpdateUser godoc
// @Summary      Update user profile
// @Description  Apply a partial update to a user account (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        input body UpdateUserRequest true "Fields to change"
// @Success      200  {object} UserResponse
// @Failure      400  {string} string "Invalid request body"
// @Failure      404  {string} string "User not found"
// @Router       /api/users/{id} [put]
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updated, err := ctrl.UserService.UpdateUser(c.Context(), id, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(updated)
}
