package analytics

import (
	"time"

	"github.com/arpitmittal98/shopsight/models"
)

// ForecastPeriods is the default projection horizon.
const ForecastPeriods = 3

const confidenceZ = 1.96

// BuildForecast fits a least-squares line to the monthly unit series and
// extrapolates it over the requested number of future periods, with a
// symmetric 95% confidence band sized from the standard deviation of the
// last six months. Predictions and band edges never go below zero.
func BuildForecast(sales []int, periods int, ref time.Time) *models.Forecast {
	f := &models.Forecast{
		Forecast:        []int{},
		ConfidenceUpper: []int{},
		ConfidenceLower: []int{},
		ForecastMonths:  []string{},
		Trend:           "stable",
	}
	if len(sales) == 0 || periods <= 0 {
		return f
	}

	slope := olsSlope(sales)
	last := sales[len(sales)-1]

	window := sales
	if len(window) > 6 {
		window = window[len(window)-6:]
	}
	stdDev := stdDevInts(window)

	for k := 1; k <= periods; k++ {
		predicted := float64(last) + slope*float64(k)
		if predicted < 0 {
			predicted = 0
		}
		lower := predicted - confidenceZ*stdDev
		if lower < 0 {
			lower = 0
		}
		f.Forecast = append(f.Forecast, int(predicted))
		f.ConfidenceUpper = append(f.ConfidenceUpper, int(predicted+confidenceZ*stdDev))
		f.ConfidenceLower = append(f.ConfidenceLower, int(lower))
	}

	anchor := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	for k := 1; k <= periods; k++ {
		f.ForecastMonths = append(f.ForecastMonths, anchor.AddDate(0, k, 0).Format("2006-01"))
	}

	switch {
	case slope > 0:
		f.Trend = "increasing"
	case slope < 0:
		f.Trend = "decreasing"
	}

	// Projected relative change over the forecast horizon.
	if last > 0 {
		f.TrendPercentage = round1(slope * float64(periods) / float64(last) * 100)
	}

	return f
}

// olsSlope is the slope of the ordinary-least-squares line through
// (0, y0)..(n-1, yn-1). Fewer than two points, or a degenerate x spread,
// yield a zero slope.
func olsSlope(sales []int) float64 {
	n := len(sales)
	if n < 2 {
		return 0
	}
	xMean := float64(n-1) / 2
	yMean := meanInts(sales)

	var num, den float64
	for i, y := range sales {
		dx := float64(i) - xMean
		num += dx * (float64(y) - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}
