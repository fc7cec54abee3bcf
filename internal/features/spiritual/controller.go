package spiritual

import (
	"github.com/gofiber/fiber/v2"
)

type ContentController struct {
	ContentService ContentService
}

func NewContentController(contentService ContentService) *ContentController {
	return &ContentController{
		ContentService: contentService,
	}
}

type CreateContentRequest struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// ListContent godoc
// @Summary      List all spiritual content
// @Description  Get every devotional content entry (public)
// @Tags         spiritual-content
// @Produce      json
// @Success      200  {array} SpiritualContent
// @Failure      500  {string} string "Failed to fetch spiritual content"
// @Router       /api/spiritual-content [get]
func (ctrl *ContentController) ListContent(c *fiber.Ctx) error {
	contents, err := ctrl.ContentService.ListContent(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch spiritual content",
		})
	}

	return c.JSON(contents)
}

// ListContentByCategory godoc
// @Summary      List spiritual content by category
// @Description  Get devotional content entries in a category (public)
// @Tags         spiritual-content
// @Produce      json
// @Param        category path string true "Category"
// @Success      200  {array} SpiritualContent
// @Router       /api/spiritual-content/category/{category} [get]
func (ctrl *ContentController) ListContentByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	contents, err := ctrl.ContentService.ListContentByCategory(c.Context(), category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch spiritual content",
		})
	}

	return c.JSON(contents)
}

// GetContent godoc
// @Summary      Get spiritual content
// @Description  Get a specific devotional content entry (public)
// @Tags         spiritual-content
// @Produce      json
// @Param        id path string true "Content ID"
// @Success      200  {object} SpiritualContent
// @Failure      404  {string} string "Spiritual content not found"
// @Router       /api/spiritual-content/{id} [get]
func (ctrl *ContentController) GetContent(c *fiber.Ctx) error {
	id := c.Params("id")

	content, err := ctrl.ContentService.GetContent(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch spiritual content",
		})
	}
	if content == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Spiritual content not found",
		})
	}

	return c.JSON(content)
}

// CreateContent godoc
// @Summary      Create spiritual content
// @Description  Create a new devotional content entry (admin only)
// @Tags         spiritual-content
// @Accept       json
// @Produce      json
// @Param        input body CreateContentRequest true "Content data"
// @Success      201  {object} SpiritualContent
// @Failure      400  {string} string "Invalid request body"
// @Router       /api/spiritual-content [post]
func (ctrl *ContentController) CreateContent(c *fiber.Ctx) error {
	var req CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Title == "" || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title and content are required",
		})
	}

	content, err := ctrl.ContentService.CreateContent(c.Context(), &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create spiritual content",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(content)
}

// UpdateContent godoc
// @Summary      Update spiritual content
// @Description  Apply a partial update to a devotional content entry (admin only)
// @Tags         spiritual-content
// @Accept       json
// @Produce      json
// @Param        id path string true "Content ID"
// @Param        input body ContentUpdate true "Fields to change"
// @Success      200  {object} SpiritualContent
// @Failure      404  {string} string "Spiritual content not found"
// @Router       /api/spiritual-content/{id} [put]
func (ctrl *ContentController) UpdateContent(c *fiber.Ctx) error {
	id := c.Params("id")

	var update ContentUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	content, err := ctrl.ContentService.UpdateContent(c.Context(), id, &update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update spiritual content",
		})
	}
	if content == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Spiritual content not found",
		})
	}

	return c.JSON(content)
}

// DeleteContent godoc
// @Summary      Delete spiritual content
// @Description  Delete a devotional content entry (admin only)
// @Tags         spiritual-content
// @Produce      json
// @Param        id path string true "Content ID"
// @Success      200  {object} map[string]string
// @Failure      404  {string} string "Spiritual content not found"
// @Router       /api/spiritual-content/{id} [delete]
func (ctrl *ContentController) DeleteContent(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := ctrl.ContentService.DeleteContent(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete spiritual content",
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Spiritual content not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Spiritual content deleted successfully",
	})
}
