package models

// SegmentDetail is the static profile attached to a segment plus the
// probability computed for a specific product.
type SegmentDetail struct {
	Probability     float64 `json:"probability"`
	AgeRange        string  `json:"age_range"`
	Characteristics string  `json:"characteristics"`
	Color           string  `json:"color"`
}

// SegmentAnalysis is the probability distribution over the five customer
// segments for one product. Probabilities are percentages summing to 100.
type SegmentAnalysis struct {
	Segments              map[string]float64       `json:"segments"`
	TopSegment            string                   `json:"top_segment"`
	TopSegmentProbability float64                  `json:"top_segment_probability"`
	SegmentDetails        map[string]SegmentDetail `json:"segment_details"`
}

// Persona is a buyer profile instantiated from a segment template.
type Persona struct {
	Name              string  `json:"name"`
	Segment           string  `json:"segment"`
	Probability       float64 `json:"probability"`
	AgeRange          string  `json:"age_range"`
	Occupation        string  `json:"occupation"`
	Characteristics   string  `json:"characteristics"`
	ShoppingBehavior  string  `json:"shopping_behavior"`
	PriceSensitivity  string  `json:"price_sensitivity"`
	PreferredChannels string  `json:"preferred_channels"`
	PurchaseFrequency string  `json:"estimated_purchase_frequency"`
}
