package group

import (
	"errors"

	"sacred-journey/internal/middleware"
	"sacred-journey/internal/policy"

	"github.com/gofiber/fiber/v2"
)

type GroupController struct {
	GroupService GroupService
}

func NewGroupController(groupService GroupService) *GroupController {
	return &GroupController{
		GroupService: groupService,
	}
}

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

// ListGroups godoc
// @Summary      List all pilgrimage groups
// @Description  Get every pilgrimage group (admin only)
// @Tags         groups
// @Produce      json
// @Success      200  {array} PilgrimageGroup
// @Failure      500  {string} string "Failed to fetch groups"
// @Router       /api/groups [get]
func (ctrl *GroupController) ListGroups(c *fiber.Ctx) error {
	groups, err := ctrl.GroupService.ListGroups(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch groups",
		})
	}

	return c.JSON(groups)
}

// GetGroup godoc
// @Summary      Get pilgrimage group
// @Description  Get a specific group. Pilgrims may only fetch their own group.
// @Tags         groups
// @Produce      json
// @Param        id path string true "Group ID"
// @Success      200  {object} PilgrimageGroup
// @Failure      403  {string} string "Not authorized to access this group"
// @Failure      404  {string} string "Group not found"
// @Router       /api/groups/{id} [get]
func (ctrl *GroupController) GetGroup(c *fiber.Ctx) error {
	id := c.Params("id")

	claims := middleware.Claims(c)
	if !policy.CanReadGroup(claims.Role, claims.GroupID, id) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to access this group",
		})
	}

	group, err := ctrl.GroupService.GetGroup(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch group",
		})
	}
	if group == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Group not found",
		})
	}

	return c.JSON(group)
}

// CreateGroup godoc
// @Summary      Create pilgrimage group
// @Description  Create a new pilgrimage group (admin only)
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        input body CreateGroupRequest true "Group data"
// @Success      201  {object} PilgrimageGroup
// @Failure      400  {string} string "Invalid request body"
// @Router       /api/groups [post]
func (ctrl *GroupController) CreateGroup(c *fiber.Ctx) error {
	var req CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" || req.Destination == "" || req.StartDate == "" || req.EndDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name, destination, start_date and end_date are required",
		})
	}

	group, err := ctrl.GroupService.CreateGroup(c.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create group",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

// UpdateGroup godoc
// @Summary      Update pilgrimage group
// @Description  Apply a partial update to a group (admin only)
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        input body GroupUpdate true "Fields to change"
// @Success      200  {object} PilgrimageGroup
// @Failure      404  {string} string "Group not found"
// @Router       /api/groups/{id} [put]
func (ctrl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	id := c.Params("id")

	var update GroupUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	group, err := ctrl.GroupService.UpdateGroup(c.Context(), id, &update)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update group",
		})
	}
	if group == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Group not found",
		})
	}

	return c.JSON(group)
}

// DeleteGroup godoc
// @Summary      Delete pilgrimage group
// @Description  Delete a group (admin only)
// @Tags         groups
// @Produce      json
// @Param        id path string true "Group ID"
// @Success      200  {object} map[string]string
// @Failure      404  {string} string "Group not found"
// @Router       /api/groups/{id} [delete]
func (ctrl *GroupController) DeleteGroup(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := ctrl.GroupService.DeleteGroup(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete group",
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Group not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Group deleted successfully",
	})
}

// RemovePilgrim godoc
// @Summary      Remove pilgrim from roster
// @Description  Remove a pilgrim from the group roster (admin only). Removing an absent pilgrim is a no-op.
// @Tags         groups
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        pilgrimId path string true "Pilgrim ID"
// @Success      200  {object} map[string]string
// @Router       /api/groups/{id}/pilgrims/{pilgrimId} [delete]
func (ctrl *GroupController) RemovePilgrim(c *fiber.Ctx) error {
	id := c.Params("id")
	pilgrimID := c.Params("pilgrimId")

	if err := ctrl.GroupService.RemovePilgrim(c.Context(), id, pilgrimID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove pilgrim",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Pilgrim removed from group",
	})
}

// ExportRoster godoc
// @Summary      Export group roster
// @Description  Download the group roster as an xlsx file (admin only)
// @Tags         groups
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id path string true "Group ID"
// @Success      200  {file} binary
// @Failure      404  {string} string "Group not found"
// @Router       /api/groups/{id}/export [get]
func (ctrl *GroupController) ExportRoster(c *fiber.Ctx) error {
	id := c.Params("id")

	data, filename, err := ctrl.GroupService.ExportRoster(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export roster",
		})
	}
	if data == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Group not found",
		})
	}

	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}
