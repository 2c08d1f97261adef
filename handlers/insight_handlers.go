package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arpitmittal98/shopsight/models"
)

// HandleGenerateInsights generates insight text over caller-provided
// analytics structures.
// POST /api/insights
func HandleGenerateInsights(c *fiber.Ctx) error {
	var req models.InsightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if req.ProductName == "" {
		req.ProductName = "Product"
	}
	if req.SalesData == nil {
		req.SalesData = &models.SalesHistory{}
	}

	insights := ai.GenerateInsights(c.Context(), req.ProductName, req.SalesData, req.ForecastData, req.SegmentData)

	return c.JSON(fiber.Map{"insights": insights})
}
