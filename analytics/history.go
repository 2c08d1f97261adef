package analytics

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/arpitmittal98/shopsight/models"
)

// Data source tags carried on every SalesHistory.
const (
	SourceReal = "real"
	SourceMock = "mock"
)

const historyMonths = 12

// ErrInvalidProduct is returned when a product arrives without an article id
// or a product type. The engine never substitutes a default identity.
var ErrInvalidProduct = errors.New("product must have an article id and a product type")

// baseSalesRange is the monthly unit volume range for a coarse product
// category. Keyed by keyword match against the product type.
type baseSalesRange struct {
	keywords []string
	min, max int
}

var baseSalesRanges = []baseSalesRange{
	{[]string{"t-shirt", "top", "vest"}, 800, 1500},
	{[]string{"dress", "skirt"}, 400, 900},
	{[]string{"jacket", "coat"}, 200, 600},
	{[]string{"shoe", "sneaker", "boot"}, 300, 800},
	{[]string{"jean", "trouser", "pant"}, 500, 1000},
}

var defaultSalesRange = baseSalesRange{nil, 300, 800}

type priceRange struct {
	keywords []string
	min, max float64
}

var avgPriceRanges = []priceRange{
	{[]string{"t-shirt", "top", "vest"}, 15, 35},
	{[]string{"dress", "skirt"}, 30, 70},
	{[]string{"jacket", "coat"}, 60, 150},
	{[]string{"shoe", "sneaker", "boot"}, 40, 100},
	{[]string{"jean", "trouser", "pant"}, 35, 80},
}

var defaultPriceRange = priceRange{nil, 20, 60}

// Seasonal multiplier curves, Jan-Dec. Product types outside the three
// recognized families sell flat across the year.
var (
	winterCurve = [12]float64{1.3, 1.2, 1.0, 0.7, 0.6, 0.5, 0.5, 0.6, 0.8, 1.1, 1.3, 1.4}
	summerCurve = [12]float64{0.6, 0.6, 0.8, 1.0, 1.2, 1.4, 1.5, 1.4, 1.1, 0.9, 0.7, 0.6}
	dressCurve  = [12]float64{0.7, 0.7, 0.9, 1.1, 1.3, 1.4, 1.3, 1.2, 1.0, 0.9, 0.8, 0.9}
	flatCurve   = [12]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
)

// BuildSalesHistory produces the monthly sales series for a product. When
// transaction rows exist they are aggregated by calendar month and tagged
// "real"; otherwise a deterministic mock series of exactly 12 months ending
// at ref is generated, seeded from the article id so repeated calls for the
// same product are byte-identical.
func BuildSalesHistory(product models.Product, transactions []models.TransactionRecord, ref time.Time) (*models.SalesHistory, error) {
	if product.ArticleID <= 0 || product.ProductTypeName == "" {
		return nil, ErrInvalidProduct
	}

	if len(transactions) > 0 {
		return aggregateRealHistory(transactions), nil
	}
	return generateMockHistory(product.ArticleID, product.ProductTypeName, ref), nil
}

// aggregateRealHistory groups transactions by calendar month, summing price
// into revenue and counting rows as units sold. Series shorter than 12
// months are returned as-is; longer ones keep the most recent 12.
func aggregateRealHistory(transactions []models.TransactionRecord) *models.SalesHistory {
	type bucket struct {
		units   int
		revenue float64
	}
	buckets := make(map[string]*bucket)
	for _, t := range transactions {
		label := t.Date.Format("2006-01")
		b, ok := buckets[label]
		if !ok {
			b = &bucket{}
			buckets[label] = b
		}
		b.units++
		b.revenue += t.Price
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	if len(labels) > historyMonths {
		labels = labels[len(labels)-historyMonths:]
	}

	h := &models.SalesHistory{DataSource: SourceReal}
	for _, label := range labels {
		b := buckets[label]
		h.Dates = append(h.Dates, label)
		h.Sales = append(h.Sales, b.units)
		h.Revenue = append(h.Revenue, round2(b.revenue))
	}
	finalizeTotals(h)
	return h
}

// generateMockHistory synthesizes a believable 12-month series from product
// characteristics. All randomness comes from a local generator seeded with
// articleID mod 10000, never from the shared global source, so concurrent
// calls stay independent and reproducible.
func generateMockHistory(articleID int, productType string, ref time.Time) *models.SalesHistory {
	rng := rand.New(rand.NewSource(int64(articleID % 10000)))

	base := baseSalesFor(productType, rng)
	avgPrice := avgPriceFor(productType, rng)
	season := seasonalCurveFor(productType)

	// Mild growth or decline spread across the year.
	trendSlope := -0.2 + rng.Float64()*0.5

	anchor := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)

	h := &models.SalesHistory{DataSource: SourceMock}
	for i := 0; i < historyMonths; i++ {
		month := anchor.AddDate(0, -(historyMonths - 1 - i), 0)
		h.Dates = append(h.Dates, month.Format("2006-01"))

		trend := 1 + float64(i)/historyMonths*trendSlope
		seasonal := season[int(month.Month())-1]
		noise := 1 + rng.NormFloat64()*0.15

		units := int(float64(base) * trend * seasonal * noise)
		if units < 10 {
			units = 10
		}

		revenue := float64(units) * avgPrice * (0.9 + rng.Float64()*0.2)

		h.Sales = append(h.Sales, units)
		h.Revenue = append(h.Revenue, round2(revenue))
	}
	finalizeTotals(h)
	return h
}

func finalizeTotals(h *models.SalesHistory) {
	for _, s := range h.Sales {
		h.TotalSales += s
	}
	for _, r := range h.Revenue {
		h.TotalRevenue += r
	}
	h.TotalRevenue = round2(h.TotalRevenue)
	if len(h.Sales) > 0 {
		h.AvgMonthlySales = round1(float64(h.TotalSales) / float64(len(h.Sales)))
	}
}

func baseSalesFor(productType string, rng *rand.Rand) int {
	r := defaultSalesRange
	for _, c := range baseSalesRanges {
		if containsAny(productType, c.keywords) {
			r = c
			break
		}
	}
	return r.min + rng.Intn(r.max-r.min+1)
}

func avgPriceFor(productType string, rng *rand.Rand) float64 {
	r := defaultPriceRange
	for _, c := range avgPriceRanges {
		if containsAny(productType, c.keywords) {
			r = c
			break
		}
	}
	return r.min + rng.Float64()*(r.max-r.min)
}

func seasonalCurveFor(productType string) [12]float64 {
	switch {
	case containsAny(productType, []string{"jacket", "coat", "sweater"}):
		return winterCurve
	case containsAny(productType, []string{"short", "swim", "bikini", "tank"}):
		return summerCurve
	case containsAny(productType, []string{"dress"}):
		return dressCurve
	default:
		return flatCurve
	}
}

func containsAny(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
