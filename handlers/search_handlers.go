package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/arpitmittal98/shopsight/catalog"
	"github.com/arpitmittal98/shopsight/models"
	"github.com/arpitmittal98/shopsight/utils"
)

// HandleSearchProducts searches the catalog with a natural-language query
// and/or structured filters. The query is parsed by the LLM service when
// available; explicit filter parameters always win over parsed ones.
// GET|POST /api/search
func HandleSearchProducts(c *fiber.Ctx) error {
	query := c.Query("query")
	if c.Method() == fiber.MethodPost {
		var body struct {
			Query string `json:"query"`
		}
		if err := c.BodyParser(&body); err == nil && body.Query != "" {
			query = body.Query
		}
	}

	var parsed models.ParsedQuery
	if query != "" {
		parsed = ai.ParseSearchQuery(c.Context(), query)
		log.Printf("🔍 [SEARCH] Query %q -> category=%q color=%q keywords=%v", query, parsed.Category, parsed.Color, parsed.Keywords)
	}

	params := catalog.SearchParams{
		Category:   parsed.Category,
		Color:      parsed.Color,
		Department: c.Query("department"),
		Limit:      500,
	}
	if v := c.Query("category"); v != "" {
		params.Category = v
	}
	if v := c.Query("color"); v != "" {
		params.Color = v
	}
	if query != "" {
		if len(parsed.Keywords) > 0 {
			// Keywords extracted by the LLM exclude category/color words
			// but preserve things like brand names.
			params.Query = strings.Join(parsed.Keywords, " ")
		} else {
			params.Query = query
		}
	}

	results := store.Search(params)

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("limit", 20)
	pagination := utils.CreatePagination(len(results), page, pageSize)

	start := (pagination.CurrentPage - 1) * pagination.PageSize
	if start > len(results) {
		start = len(results)
	}
	end := start + pagination.PageSize
	if end > len(results) {
		end = len(results)
	}

	return c.JSON(fiber.Map{
		"query":      query,
		"parsed":     parsed,
		"count":      len(results),
		"results":    results[start:end],
		"pagination": pagination,
	})
}
