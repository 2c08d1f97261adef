package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arpitmittal98/shopsight/analytics"
)

// HandleGetAnalytics returns only the sales history, forecast and metrics
// for a product (faster endpoint, no LLM call).
// GET /api/analytics/:articleId
func HandleGetAnalytics(c *fiber.Ctx) error {
	articleID, err := c.ParamsInt("articleId")
	if err != nil || articleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid article id"})
	}

	product, ok := store.ProductByID(articleID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	now := time.Now()
	transactions := store.Transactions(c.Context(), articleID)

	sales, err := analytics.BuildSalesHistory(product, transactions, now)
	if err != nil {
		return engineError(c, err)
	}

	forecast := analytics.BuildForecast(sales.Sales, analytics.ForecastPeriods, now)
	metrics := analytics.ComputeMetrics(sales)

	return c.JSON(fiber.Map{
		"sales":    sales,
		"forecast": forecast,
		"metrics":  metrics,
	})
}
