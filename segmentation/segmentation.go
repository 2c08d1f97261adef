// Package segmentation scores products against five fixed customer
// segments and expands the strongest segments into buyer personas. Scoring
// is a pure function of product attributes: all state lives in static
// tables initialized at process start.
package segmentation

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/arpitmittal98/shopsight/models"
)

// ErrMissingAttributes is returned when a product arrives without a product
// type; the scorer never guesses a default.
var ErrMissingAttributes = errors.New("product must have a product type")

// The five customer segments, in canonical order. Ties resolve to the
// earlier entry.
var segmentOrder = []string{
	"Fashion Forward",
	"Classic Professional",
	"Value Seeker",
	"Active Lifestyle",
	"Mature Sophisticate",
}

type segmentProfile struct {
	AgeRange        string
	Characteristics string
	Color           string
}

var segmentProfiles = map[string]segmentProfile{
	"Fashion Forward":      {"18-30", "Trend-conscious, early adopters, active on social media", "#FF6B6B"},
	"Classic Professional": {"30-45", "Quality-focused, timeless styles, brand loyal", "#4ECDC4"},
	"Value Seeker":         {"25-50", "Price-conscious, sale shoppers, practical purchases", "#FFE66D"},
	"Active Lifestyle":     {"20-40", "Athletic wear, comfort-focused, wellness-oriented", "#95E1D3"},
	"Mature Sophisticate":  {"45+", "Premium quality, refined taste, loyalty program members", "#A8DADC"},
}

// Matching fields for scoring rules.
const (
	fieldType       = "type"
	fieldDepartment = "department"
	fieldColor      = "color"
)

// scoringRule multiplies segment weights when any keyword is a
// case-insensitive substring of the chosen product field. Rules are
// cumulative: all matching rules fire, except within a named group, where
// only the first match applies.
type scoringRule struct {
	Field    string
	Keywords []string
	Group    string
	Boosts   map[string]float64
}

var scoringRules = []scoringRule{
	{Field: fieldType, Keywords: []string{"sport", "athletic", "training", "run"},
		Boosts: map[string]float64{"Active Lifestyle": 3.0, "Fashion Forward": 1.5}},
	{Field: fieldType, Keywords: []string{"crop", "oversized", "graphic"},
		Boosts: map[string]float64{"Fashion Forward": 3.0, "Value Seeker": 1.5}},
	{Field: fieldType, Keywords: []string{"blazer", "shirt", "trouser"}, Group: "professional",
		Boosts: map[string]float64{"Classic Professional": 2.5, "Mature Sophisticate": 2.0}},
	{Field: fieldDepartment, Keywords: []string{"jersey"}, Group: "professional",
		Boosts: map[string]float64{"Classic Professional": 2.5, "Mature Sophisticate": 2.0}},
	{Field: fieldType, Keywords: []string{"basic", "essential", "t-shirt", "tank"},
		Boosts: map[string]float64{"Value Seeker": 2.0, "Active Lifestyle": 1.5}},
	{Field: fieldDepartment, Keywords: []string{"premium", "collection"},
		Boosts: map[string]float64{"Mature Sophisticate": 2.5, "Classic Professional": 2.0}},
	{Field: fieldColor, Keywords: []string{"black", "white", "grey", "navy"}, Group: "palette",
		Boosts: map[string]float64{"Classic Professional": 1.5, "Mature Sophisticate": 1.3}},
	{Field: fieldColor, Keywords: []string{"bright", "neon", "pink"}, Group: "palette",
		Boosts: map[string]float64{"Fashion Forward": 2.0, "Active Lifestyle": 1.5}},
}

// ScoreSegments computes the probability distribution over the five
// segments from product attributes. Every segment starts at weight 1.0,
// all applicable rules fire multiplicatively, and the result is normalized
// to percentages summing to 100 (the largest segment absorbs any rounding
// drift). A product matching no rule scores a uniform 20% everywhere.
func ScoreSegments(product models.Product) (*models.SegmentAnalysis, error) {
	if product.ProductTypeName == "" {
		return nil, ErrMissingAttributes
	}

	fields := map[string]string{
		fieldType:       strings.ToLower(product.ProductTypeName),
		fieldDepartment: strings.ToLower(product.DepartmentName),
		fieldColor:      strings.ToLower(product.ColourGroupName),
	}

	weights := make(map[string]float64, len(segmentOrder))
	for _, name := range segmentOrder {
		weights[name] = 1.0
	}

	firedGroups := make(map[string]bool)
	for _, rule := range scoringRules {
		if rule.Group != "" && firedGroups[rule.Group] {
			continue
		}
		if !matchesAny(fields[rule.Field], rule.Keywords) {
			continue
		}
		for segment, factor := range rule.Boosts {
			weights[segment] *= factor
		}
		if rule.Group != "" {
			firedGroups[rule.Group] = true
		}
	}

	segments := normalize(weights)

	top, topProb := topSegment(segments)

	details := make(map[string]models.SegmentDetail, len(segments))
	for name, prob := range segments {
		p := segmentProfiles[name]
		details[name] = models.SegmentDetail{
			Probability:     prob,
			AgeRange:        p.AgeRange,
			Characteristics: p.Characteristics,
			Color:           p.Color,
		}
	}

	return &models.SegmentAnalysis{
		Segments:              segments,
		TopSegment:            top,
		TopSegmentProbability: topProb,
		SegmentDetails:        details,
	}, nil
}

// normalize converts weights to percentages rounded to one decimal place
// and pushes any residual rounding error onto the largest segment so the
// distribution sums to 100 within 0.1.
func normalize(weights map[string]float64) map[string]float64 {
	var total float64
	for _, w := range weights {
		total += w
	}

	segments := make(map[string]float64, len(weights))
	var sum float64
	for _, name := range segmentOrder {
		p := round1(weights[name] / total * 100)
		segments[name] = p
		sum += p
	}

	if drift := round1(100 - sum); drift != 0 {
		largest, _ := topSegment(segments)
		segments[largest] = round1(segments[largest] + drift)
	}
	return segments
}

func topSegment(segments map[string]float64) (string, float64) {
	top := segmentOrder[0]
	for _, name := range segmentOrder[1:] {
		if segments[name] > segments[top] {
			top = name
		}
	}
	return top, segments[top]
}

func matchesAny(field string, keywords []string) bool {
	if field == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(field, kw) {
			return true
		}
	}
	return false
}

// rankedSegments returns (segment, probability) pairs in descending
// probability order, ties broken by canonical segment order.
func rankedSegments(segments map[string]float64) []string {
	ranked := make([]string, len(segmentOrder))
	copy(ranked, segmentOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		return segments[ranked[i]] > segments[ranked[j]]
	})
	return ranked
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
