package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arpitmittal98/shopsight/models"
)

func historyFrom(sales []int, revenue []float64, dates []string) *models.SalesHistory {
	h := &models.SalesHistory{Dates: dates, Sales: sales, Revenue: revenue, DataSource: SourceMock}
	finalizeTotals(h)
	return h
}

func monthLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = testRef.AddDate(0, -(n - 1 - i), 0).Format("2006-01")
	}
	return labels
}

func TestComputeMetricsGrowthRate(t *testing.T) {
	sales := []int{10, 10, 10, 20, 20, 20}
	h := historyFrom(sales, make([]float64, len(sales)), monthLabels(len(sales)))

	m := ComputeMetrics(h)

	// Last three months doubled the previous three.
	assert.InDelta(t, 100.0, m.GrowthRate, 0.001)
}

func TestComputeMetricsGrowthRateZeroDenominator(t *testing.T) {
	sales := []int{0, 0, 0, 50, 60, 70}
	h := historyFrom(sales, make([]float64, len(sales)), monthLabels(len(sales)))

	m := ComputeMetrics(h)

	assert.Zero(t, m.GrowthRate)
}

func TestComputeMetricsShortSeriesHasNoGrowth(t *testing.T) {
	sales := []int{10, 20, 30, 40, 50}
	h := historyFrom(sales, make([]float64, len(sales)), monthLabels(len(sales)))

	m := ComputeMetrics(h)

	assert.Zero(t, m.GrowthRate)
}

func TestComputeMetricsPeakMonthFirstOnTie(t *testing.T) {
	sales := []int{100, 300, 200, 300, 150, 100}
	dates := monthLabels(len(sales))
	h := historyFrom(sales, make([]float64, len(sales)), dates)

	m := ComputeMetrics(h)

	assert.Equal(t, dates[1], m.PeakMonth)
	assert.Equal(t, 300, m.PeakSales)
}

func TestComputeMetricsAvgPrice(t *testing.T) {
	sales := []int{10, 10}
	revenue := []float64{250, 250}
	h := historyFrom(sales, revenue, monthLabels(len(sales)))

	m := ComputeMetrics(h)

	assert.InDelta(t, 25.0, m.AvgPrice, 0.001)
}

func TestComputeMetricsVolatility(t *testing.T) {
	sales := []int{100, 200}
	h := historyFrom(sales, make([]float64, len(sales)), monthLabels(len(sales)))

	m := ComputeMetrics(h)

	// Population std dev 50 over mean 150.
	assert.InDelta(t, 33.3, m.Volatility, 0.05)
}

func TestComputeMetricsEmptyHistory(t *testing.T) {
	m := ComputeMetrics(&models.SalesHistory{})

	assert.Zero(t, m.TotalSales)
	assert.Zero(t, m.GrowthRate)
	assert.Zero(t, m.Volatility)
	assert.Empty(t, m.PeakMonth)
}
