package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arpitmittal98/shopsight/catalog"
	"github.com/arpitmittal98/shopsight/llm"
)

var (
	store *catalog.Store
	ai    *llm.Service
)

// Setup wires the shared catalog store and LLM service into the handlers.
// Must be called once before routes are registered.
func Setup(s *catalog.Store, service *llm.Service) {
	store = s
	ai = service
}

// HandleHealth is the health check endpoint.
// GET /
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "online",
		"service": "ShopSight API",
		"version": "1.0.0",
	})
}
