package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arpitmittal98/shopsight/handlers"
	"github.com/arpitmittal98/shopsight/middleware"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/", handlers.HandleHealth)

	api := app.Group("/api", middleware.RequestLogger)

	api.Get("/search", handlers.HandleSearchProducts)
	api.Post("/search", handlers.HandleSearchProducts)

	api.Get("/product/:articleId", handlers.HandleGetProduct)
	api.Get("/product/:articleId/insights", handlers.HandleGetProductInsights)

	api.Get("/analytics/:articleId", handlers.HandleGetAnalytics)
	api.Get("/segments/:articleId", handlers.HandleGetSegments)

	api.Get("/filters", handlers.HandleGetFilters)
	api.Get("/demographics", handlers.HandleGetDemographics)

	api.Post("/insights", handlers.HandleGenerateInsights)
}
