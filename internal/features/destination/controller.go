package destination

import (
	"github.com/gofiber/fiber/v2"
)

type DestinationController struct {
	DestinationService DestinationService
}

func NewDestinationController(destinationService DestinationService) *DestinationController {
	return &DestinationController{
		DestinationService: destinationService,
	}
}

type CreateDestinationRequest struct {
	Name                  string   `json:"name"`
	Country               string   `json:"country"`
	Description           string   `json:"description"`
	Facts                 []string `json:"facts"`
	SpiritualSignificance string   `json:"spiritual_significance"`
	ImageURL              string   `json:"image_url"`
}

// ListDestinations godoc
// @Summary      List all destinations
// @Description  Get every destination (public)
// @Tags         destinations
// @Produce      json
// @Success      200  {array} Destination
// @Failure      500  {string} string "Failed to fetch destinations"
// @Router       /api/destinations [get]
func (ctrl *DestinationController) ListDestinations(c *fiber.Ctx) error {
	destinations, err := ctrl.DestinationService.ListDestinations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch destinations",
		})
	}

	return c.JSON(destinations)
}

// GetDestination godoc
// @Summary      Get destination
// @Description  Get a specific destination (public)
// @Tags         destinations
// @Produce      json
// @Param        id path string true "Destination ID"
// @Success      200  {object} Destination
// @Failure      404  {string} string "Destination not found"
// @Router       /api/destinations/{id} [get]
func (ctrl *DestinationController) GetDestination(c *fiber.Ctx) error {
	id := c.Params("id")

	destination, err := ctrl.DestinationService.GetDestination(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch destination",
		})
	}
	if destination == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Destination not found",
		})
	}

	return c.JSON(destination)
}

// CreateDestination godoc
// @Summary      Create destination
// @Description  Create a new destination (admin only)
// @Tags         destinations
// @Accept       json
// @Produce      json
// @Param        input body CreateDestinationRequest true "Destination data"
// @Success      201  {object} Destination
// @Failure      400  {string} string "Invalid request body"
// @Router       /api/destinations [post]
func (ctrl *DestinationController) CreateDestination(c *fiber.Ctx) error {
	var req CreateDestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" || req.Country == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and country are required",
		})
	}

	destination, err := ctrl.DestinationService.CreateDestination(c.Context(), &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create destination",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(destination)
}

// UpdateDestination godoc
// @Summary      Update destination
// @Description  Apply a partial update to a destination (admin only)
// @Tags         destinations
// @Accept       json
// @Produce      json
// @Param        id path string true "Destination ID"
// @Param        input body DestinationUpdate true "Fields to change"
// @Success      200  {object} Destination
// @Failure      404  {string} string "Destination not found"
// @Router       /api/destinations/{id} [put]
func (ctrl *DestinationController) UpdateDestination(c *fiber.Ctx) error {
	id := c.Params("id")

	var update DestinationUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	destination, err := ctrl.DestinationService.UpdateDestination(c.Context(), id, &update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update destination",
		})
	}
	if destination == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Destination not found",
		})
	}

	return c.JSON(destination)
}

// DeleteDestination godoc
// @Summary      Delete destination
// @Description  Delete a destination (admin only)
// @Tags         destinations
// @Produce      json
// @Param        id path string true "Destination ID"
// @Success      200  {object} map[string]string
// @Failure      404  {string} string "Destination not found"
// @Router       /api/destinations/{id} [delete]
func (ctrl *DestinationController) DeleteDestination(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := ctrl.DestinationService.DeleteDestination(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete destination",
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Destination not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Destination deleted successfully",
	})
}
