package llm

import (
	"fmt"
	"strings"

	"github.com/arpitmittal98/shopsight/models"
)

// Keyword tables for parsing queries without a model.
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{"shoes", []string{"shoe", "sneaker", "boot", "sandal"}},
	{"dress", []string{"dress", "gown"}},
	{"top", []string{"top", "shirt", "blouse", "t-shirt", "tshirt"}},
	{"bottom", []string{"pant", "jean", "trouser", "short", "skirt"}},
	{"jacket", []string{"jacket", "coat", "blazer"}},
}

var colorKeywords = []string{"black", "white", "blue", "red", "green", "yellow", "pink", "grey", "gray", "brown"}

var attributeKeywords = []string{"running", "casual", "formal", "sport", "athletic", "training"}

var womenKeywords = []string{"women", "woman", "female", "ladies", "girl"}
var menKeywords = []string{"men", "man", "male", "boy"}

// FallbackParse is the keyword-based query parser used when no model is
// available.
func FallbackParse(query string) models.ParsedQuery {
	lower := strings.ToLower(query)

	var parsed models.ParsedQuery
	for _, word := range strings.Fields(lower) {
		if len(word) > 2 {
			parsed.Keywords = append(parsed.Keywords, word)
		}
	}

	for _, c := range categoryKeywords {
		if containsAnyWord(lower, c.words) {
			parsed.Category = c.category
			break
		}
	}

	for _, color := range colorKeywords {
		if strings.Contains(lower, color) {
			parsed.Color = color
			break
		}
	}

	switch {
	case containsAnyWord(lower, womenKeywords):
		parsed.Gender = "women"
	case containsAnyWord(lower, menKeywords):
		parsed.Gender = "men"
	}

	for _, attr := range attributeKeywords {
		if strings.Contains(lower, attr) {
			parsed.Attributes = append(parsed.Attributes, attr)
		}
	}

	return parsed
}

// FallbackInsights assembles a plain-language narrative from the analytics
// structures when no model is available.
func FallbackInsights(productName string, sales *models.SalesHistory, forecast *models.Forecast, segments *models.SegmentAnalysis) string {
	var totalSales int
	var growthRate float64
	if sales != nil {
		totalSales = sales.TotalSales
		growthRate = sales.GrowthRate
	}

	trend := "stable"
	if forecast != nil && forecast.Trend != "" {
		trend = forecast.Trend
	}

	topSegment := "customers"
	var segmentProb float64
	if segments != nil && segments.TopSegment != "" {
		topSegment = segments.TopSegment
		segmentProb = segments.TopSegmentProbability
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s has sold %d units over the past 12 months", productName, totalSales)

	switch {
	case growthRate > 10:
		fmt.Fprintf(&b, " with strong growth of %.1f%%", growthRate)
	case growthRate < -10:
		fmt.Fprintf(&b, " with a decline of %.1f%%", -growthRate)
	default:
		b.WriteString(" with stable performance")
	}

	fmt.Fprintf(&b, ". The product is %s", trend)
	if trend == "increasing" {
		b.WriteString(" and forecast shows continued growth opportunity")
	}

	fmt.Fprintf(&b, ". Primary customer segment is %s (%.1f%% of buyers), ", topSegment, segmentProb)
	if segmentProb > 40 {
		b.WriteString("indicating strong market fit")
	} else {
		b.WriteString("suggesting opportunity for broader market appeal")
	}
	b.WriteString(".")

	if growthRate > 15 {
		b.WriteString(" Consider increasing inventory to meet growing demand.")
	} else if growthRate < -10 {
		b.WriteString(" Recommend promotional campaigns to boost sales.")
	}

	return b.String()
}

func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
