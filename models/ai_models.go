package models

// ParsedQuery is the structured form of a natural-language search query.
type ParsedQuery struct {
	Keywords   []string `json:"keywords"`
	Category   string   `json:"category"`
	Color      string   `json:"color"`
	Gender     string   `json:"gender"`
	Attributes []string `json:"attributes"`
}

// InsightRequest carries caller-provided analytics structures for custom
// insight generation.
type InsightRequest struct {
	ProductName  string           `json:"product_name"`
	SalesData    *SalesHistory    `json:"sales_data"`
	ForecastData *Forecast        `json:"forecast_data"`
	SegmentData  *SegmentAnalysis `json:"segment_data"`
}
