package handlers

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arpitmittal98/shopsight/analytics"
	"github.com/arpitmittal98/shopsight/models"
	"github.com/arpitmittal98/shopsight/segmentation"
)

// HandleGetProduct returns a product with its full analytics bundle:
// sales history with merged metrics, forecast, segments, personas and
// (unless skipped) AI insights.
// GET /api/product/:articleId
func HandleGetProduct(c *fiber.Ctx) error {
	articleID, err := c.ParamsInt("articleId")
	if err != nil || articleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid article id"})
	}

	product, ok := store.ProductByID(articleID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	ctx := c.Context()
	now := time.Now()

	// The sales branch and the segmentation branch are independent; run
	// them concurrently.
	var (
		sales    *models.SalesHistory
		forecast *models.Forecast
		segments *models.SegmentAnalysis
		personas []models.Persona
		salesErr error
		segErr   error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		transactions := store.Transactions(ctx, articleID)
		sales, salesErr = analytics.BuildSalesHistory(product, transactions, now)
		if salesErr != nil {
			return
		}
		forecast = analytics.BuildForecast(sales.Sales, analytics.ForecastPeriods, now)
		sales.ApplyMetrics(analytics.ComputeMetrics(sales))
	}()
	go func() {
		defer wg.Done()
		segments, segErr = segmentation.ScoreSegments(product)
		if segErr != nil {
			return
		}
		personas = segmentation.BuildPersonas(segments)
	}()
	wg.Wait()

	if err := firstError(salesErr, segErr); err != nil {
		return engineError(c, err)
	}

	var insights interface{}
	if c.Query("skip_insights", "false") != "true" {
		insights = ai.GenerateInsights(ctx, product.ProdName, sales, forecast, segments)
	}

	return c.JSON(fiber.Map{
		"product":  product,
		"sales":    sales,
		"forecast": forecast,
		"segments": segments,
		"personas": personas,
		"insights": insights,
	})
}

// HandleGetProductInsights generates only the AI insight text for a
// product, for callers that load the analytics first and fill in the
// narrative asynchronously.
// GET /api/product/:articleId/insights
func HandleGetProductInsights(c *fiber.Ctx) error {
	articleID, err := c.ParamsInt("articleId")
	if err != nil || articleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid article id"})
	}

	product, ok := store.ProductByID(articleID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	ctx := c.Context()
	now := time.Now()

	transactions := store.Transactions(ctx, articleID)
	sales, err := analytics.BuildSalesHistory(product, transactions, now)
	if err != nil {
		return engineError(c, err)
	}
	forecast := analytics.BuildForecast(sales.Sales, analytics.ForecastPeriods, now)
	sales.ApplyMetrics(analytics.ComputeMetrics(sales))

	segments, err := segmentation.ScoreSegments(product)
	if err != nil {
		return engineError(c, err)
	}

	insights := ai.GenerateInsights(ctx, product.ProdName, sales, forecast, segments)

	return c.JSON(fiber.Map{"insights": insights})
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// engineError maps engine precondition failures to 400 and everything else
// to 500.
func engineError(c *fiber.Ctx, err error) error {
	if errors.Is(err, analytics.ErrInvalidProduct) || errors.Is(err, segmentation.ErrMissingAttributes) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	log.Printf("❌ [PRODUCT] Engine error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to analyze product"})
}
