package itinerary

import (
	"sacred-journey/internal/middleware"
	"sacred-journey/internal/policy"

	"github.com/gofiber/fiber/v2"
)

type ItineraryController struct {
	ItineraryService ItineraryService
}

func NewItineraryController(itineraryService ItineraryService) *ItineraryController {
	return &ItineraryController{
		ItineraryService: itineraryService,
	}
}

type CreateItineraryRequest struct {
	GroupID       string          `json:"group_id"`
	GroupName     string          `json:"group_name"`
	Flights       FlightDetails   `json:"flights"`
	Included      []string        `json:"included"`
	NotIncluded   []string        `json:"not_included"`
	DailySchedule []DailySchedule `json:"daily_schedule"`
}

// ListItineraries godoc
// @Summary      List all itineraries
// @Description  Get every itinerary (admin only)
// @Tags         itineraries
// @Produce      json
// @Success      200  {array} Itinerary
// @Failure      500  {string} string "Failed to fetch itineraries"
// @Router       /api/itineraries [get]
func (ctrl *ItineraryController) ListItineraries(c *fiber.Ctx) error {
	itineraries, err := ctrl.ItineraryService.ListItineraries(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch itineraries",
		})
	}

	return c.JSON(itineraries)
}

// GetItinerary godoc
// @Summary      Get itinerary by ID
// @Description  Get a specific itinerary. Pilgrims may only fetch their own group's itinerary.
// @Tags         itineraries
// @Produce      json
// @Param        id path string true "Itinerary ID"
// @Success      200  {object} Itinerary
// @Failure      403  {string} string "Not authorized to access this itinerary"
// @Failure      404  {string} string "Itinerary not found"
// @Router       /api/itineraries/{id} [get]
func (ctrl *ItineraryController) GetItinerary(c *fiber.Ctx) error {
	id := c.Params("id")

	itinerary, err := ctrl.ItineraryService.GetItinerary(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch itinerary",
		})
	}
	if itinerary == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Itinerary not found",
		})
	}

	// Ownership is only known after the fetch
	claims := middleware.Claims(c)
	if !policy.CanReadGroup(claims.Role, claims.GroupID, itinerary.GroupID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to access this itinerary",
		})
	}

	return c.JSON(itinerary)
}

// GetItineraryByGroup godoc
// @Summary      Get itinerary for a group
// @Description  Get the itinerary of a pilgrimage group. Pilgrims may only query their own group.
// @Tags         itineraries
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Success      200  {object} Itinerary
// @Failure      403  {string} string "Not authorized to access this itinerary"
// @Failure      404  {string} string "Itinerary not found"
// @Router       /api/itineraries/group/{groupId} [get]
func (ctrl *ItineraryController) GetItineraryByGroup(c *fiber.Ctx) error {
	groupID := c.Params("groupId")

	claims := middleware.Claims(c)
	if !policy.CanReadGroup(claims.Role, claims.GroupID, groupID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to access this itinerary",
		})
	}

	itinerary, err := ctrl.ItineraryService.GetItineraryByGroup(c.Context(), groupID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch itinerary",
		})
	}
	if itinerary == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Itinerary not found",
		})
	}

	return c.JSON(itinerary)
}

// CreateItinerary godoc
// @Summary      Create itinerary
// @Description  Create a new itinerary for a group (admin only)
// @Tags         itineraries
// @Accept       json
// @Produce      json
// @Param        input body CreateItineraryRequest true "Itinerary data"
// @Success      201  {object} Itinerary
// @Failure      400  {string} string "Invalid request body"
// @Router       /api/itineraries [post]
func (ctrl *ItineraryController) CreateItinerary(c *fiber.Ctx) error {
	var req CreateItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.GroupID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "group_id is required",
		})
	}

	itinerary, err := ctrl.ItineraryService.CreateItinerary(c.Context(), &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create itinerary",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(itinerary)
}

// UpdateItinerary godoc
// @Summary      Update itinerary
// @Description  Apply a partial update to an itinerary (admin only)
// @Tags         itineraries
// @Accept       json
// @Produce      json
// @Param        id path string true "Itinerary ID"
// @Param        input body ItineraryUpdate true "Fields to change"
// @Success      200  {object} Itinerary
// @Failure      404  {string} string "Itinerary not found"
// @Router       /api/itineraries/{id} [put]
func (ctrl *ItineraryController) UpdateItinerary(c *fiber.Ctx) error {
	id := c.Params("id")

	var update ItineraryUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	itinerary, err := ctrl.ItineraryService.UpdateItinerary(c.Context(), id, &update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update itinerary",
		})
	}
	if itinerary == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Itinerary not found",
		})
	}

	return c.JSON(itinerary)
}

// DeleteItinerary godoc
// @Summary      Delete itinerary
// @Description  Delete an itinerary (admin only)
// @Tags         itineraries
// @Produce      json
// @Param        id path string true "Itinerary ID"
// @Success      200  {object} map[string]string
// @Failure      404  {string} string "Itinerary not found"
// @Router       /api/itineraries/{id} [delete]
func (ctrl *ItineraryController) DeleteItinerary(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := ctrl.ItineraryService.DeleteItinerary(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete itinerary",
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Itinerary not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Itinerary deleted successfully",
	})
}
