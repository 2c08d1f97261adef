package handlers

import "github.com/gofiber/fiber/v2"

// HandleGetFilters returns the available filter options.
// GET /api/filters
func HandleGetFilters(c *fiber.Ctx) error {
	categories := store.Categories()
	if len(categories) > 50 {
		categories = categories[:50]
	}

	return c.JSON(fiber.Map{
		"categories":  categories,
		"colors":      store.Colors(),
		"departments": store.Departments(),
	})
}

// HandleGetDemographics returns the aggregate customer demographics.
// GET /api/demographics
func HandleGetDemographics(c *fiber.Ctx) error {
	return c.JSON(store.Demographics())
}
