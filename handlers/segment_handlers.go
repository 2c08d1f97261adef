package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arpitmittal98/shopsight/segmentation"
)

// HandleGetSegments returns the customer segment analysis and buyer
// personas for a product.
// GET /api/segments/:articleId
func HandleGetSegments(c *fiber.Ctx) error {
	articleID, err := c.ParamsInt("articleId")
	if err != nil || articleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid article id"})
	}

	product, ok := store.ProductByID(articleID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	segments, err := segmentation.ScoreSegments(product)
	if err != nil {
		return engineError(c, err)
	}
	personas := segmentation.BuildPersonas(segments)

	return c.JSON(fiber.Map{
		"segments": segments,
		"personas": personas,
	})
}
