package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpitmittal98/shopsight/models"
)

var testRef = time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

func testProduct(id int, productType string) models.Product {
	return models.Product{
		ArticleID:       id,
		ProdName:        "Test " + productType,
		ProductTypeName: productType,
	}
}

func TestBuildSalesHistoryRejectsInvalidProduct(t *testing.T) {
	_, err := BuildSalesHistory(models.Product{}, nil, testRef)
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = BuildSalesHistory(models.Product{ArticleID: 123}, nil, testRef)
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = BuildSalesHistory(models.Product{ProductTypeName: "Dress"}, nil, testRef)
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestMockHistoryIsDeterministic(t *testing.T) {
	product := testProduct(108775015, "Vest top")

	first, err := BuildSalesHistory(product, nil, testRef)
	require.NoError(t, err)
	second, err := BuildSalesHistory(product, nil, testRef)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMockHistoryShape(t *testing.T) {
	product := testProduct(556677, "Sneakers")

	h, err := BuildSalesHistory(product, nil, testRef)
	require.NoError(t, err)

	assert.Equal(t, SourceMock, h.DataSource)
	assert.Len(t, h.Dates, 12)
	assert.Len(t, h.Sales, 12)
	assert.Len(t, h.Revenue, 12)

	assert.Equal(t, "2025-09", h.Dates[0])
	assert.Equal(t, "2026-08", h.Dates[11])

	total := 0
	for i, units := range h.Sales {
		assert.GreaterOrEqual(t, units, 10, "month %s fell below the floor", h.Dates[i])
		assert.Greater(t, h.Revenue[i], 0.0)
		total += units
	}
	assert.Equal(t, total, h.TotalSales)
	assert.InDelta(t, float64(total)/12, h.AvgMonthlySales, 0.05)
}

func TestMockHistoryDiffersAcrossProducts(t *testing.T) {
	a, err := BuildSalesHistory(testProduct(1001, "Dress"), nil, testRef)
	require.NoError(t, err)
	b, err := BuildSalesHistory(testProduct(1002, "Dress"), nil, testRef)
	require.NoError(t, err)

	assert.NotEqual(t, a.Sales, b.Sales)
}

func TestRealHistoryAggregation(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	transactions := []models.TransactionRecord{
		{ArticleID: 1, Date: day(2026, time.June, 3), Price: 19.99},
		{ArticleID: 1, Date: day(2026, time.June, 21), Price: 19.99},
		{ArticleID: 1, Date: day(2026, time.July, 1), Price: 24.50},
		{ArticleID: 1, Date: day(2026, time.May, 12), Price: 18.00},
	}

	h, err := BuildSalesHistory(testProduct(1, "T-shirt"), transactions, testRef)
	require.NoError(t, err)

	assert.Equal(t, SourceReal, h.DataSource)
	assert.Equal(t, []string{"2026-05", "2026-06", "2026-07"}, h.Dates)
	assert.Equal(t, []int{1, 2, 1}, h.Sales)
	assert.Equal(t, []float64{18.00, 39.98, 24.50}, h.Revenue)
	assert.Equal(t, 4, h.TotalSales)
	assert.InDelta(t, 82.48, h.TotalRevenue, 0.001)
}

func TestRealHistoryKeepsLastTwelveMonths(t *testing.T) {
	var transactions []models.TransactionRecord
	start := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 18; i++ {
		transactions = append(transactions, models.TransactionRecord{
			ArticleID: 1,
			Date:      start.AddDate(0, i, 0),
			Price:     10,
		})
	}

	h, err := BuildSalesHistory(testProduct(1, "T-shirt"), transactions, testRef)
	require.NoError(t, err)

	assert.Len(t, h.Dates, 12)
	assert.Equal(t, "2025-07", h.Dates[0])
	assert.Equal(t, "2026-06", h.Dates[11])
	assert.Equal(t, 12, h.TotalSales)
}

func TestSeasonalCurveSelection(t *testing.T) {
	assert.Equal(t, winterCurve, seasonalCurveFor("Jacket"))
	assert.Equal(t, winterCurve, seasonalCurveFor("Wool coat"))
	assert.Equal(t, summerCurve, seasonalCurveFor("Swimwear bottom"))
	assert.Equal(t, dressCurve, seasonalCurveFor("Dress"))
	assert.Equal(t, flatCurve, seasonalCurveFor("Socks"))
}
