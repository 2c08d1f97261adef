package models

import "time"

// Product is a single catalog article. Field names follow the H&M article
// columns so CSV and Postgres sources map onto the same struct.
type Product struct {
	ArticleID        int    `json:"article_id"`
	ProdName         string `json:"prod_name"`
	ProductTypeName  string `json:"product_type_name"`
	ProductGroupName string `json:"product_group_name"`
	ColourGroupName  string `json:"colour_group_name"`
	DepartmentName   string `json:"department_name"`
	SectionName      string `json:"section_name"`
	GarmentGroupName string `json:"garment_group_name"`
	ImageURL         string `json:"image_url"`
}

// TransactionRecord is a single purchase row for a product.
type TransactionRecord struct {
	ArticleID      int       `json:"article_id"`
	CustomerID     string    `json:"customer_id"`
	Date           time.Time `json:"t_dat"`
	Price          float64   `json:"price"`
	SalesChannelID int       `json:"sales_channel_id"`
}

// SalesHistory is a monthly sales series for one product. DataSource is
// "real" when aggregated from transactions and "mock" when generated.
// The metric fields after AvgMonthlySales are filled in by ApplyMetrics.
type SalesHistory struct {
	Dates           []string  `json:"dates"`
	Sales           []int     `json:"sales"`
	Revenue         []float64 `json:"revenue"`
	DataSource      string    `json:"data_source"`
	TotalSales      int       `json:"total_sales"`
	TotalRevenue    float64   `json:"total_revenue"`
	AvgMonthlySales float64   `json:"avg_monthly_sales"`
	GrowthRate      float64   `json:"growth_rate,omitempty"`
	PeakMonth       string    `json:"peak_month,omitempty"`
	PeakSales       int       `json:"peak_sales,omitempty"`
	AvgPrice        float64   `json:"avg_price,omitempty"`
	Volatility      float64   `json:"volatility,omitempty"`
}

// SalesMetrics holds summary statistics derived from a SalesHistory.
type SalesMetrics struct {
	GrowthRate      float64 `json:"growth_rate"`
	PeakMonth       string  `json:"peak_month"`
	PeakSales       int     `json:"peak_sales"`
	AvgPrice        float64 `json:"avg_price"`
	Volatility      float64 `json:"volatility"`
	TotalSales      int     `json:"total_sales"`
	TotalRevenue    float64 `json:"total_revenue"`
	AvgMonthlySales float64 `json:"avg_monthly_sales"`
}

// ApplyMetrics merges computed metrics into the history payload, matching
// the combined "sales" object the API exposes.
func (h *SalesHistory) ApplyMetrics(m *SalesMetrics) {
	h.GrowthRate = m.GrowthRate
	h.PeakMonth = m.PeakMonth
	h.PeakSales = m.PeakSales
	h.AvgPrice = m.AvgPrice
	h.Volatility = m.Volatility
}

// Forecast is the 3-period demand projection with its confidence band.
type Forecast struct {
	Forecast        []int    `json:"forecast"`
	ConfidenceUpper []int    `json:"confidence_upper"`
	ConfidenceLower []int    `json:"confidence_lower"`
	ForecastMonths  []string `json:"forecast_months"`
	Trend           string   `json:"trend"`
	TrendPercentage float64  `json:"trend_percentage"`
}

// Demographics is the aggregate customer snapshot for the dashboard.
type Demographics struct {
	TotalCustomers       int            `json:"total_customers"`
	AvgAge               float64        `json:"avg_age"`
	AgeDistribution      map[string]int `json:"age_distribution"`
	ClubMembers          map[string]int `json:"club_members"`
	FashionNewsFrequency map[string]int `json:"fashion_news_frequency"`
}
