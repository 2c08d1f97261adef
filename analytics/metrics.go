package analytics

import (
	"math"

	"github.com/arpitmittal98/shopsight/models"
)

// ComputeMetrics derives summary statistics from a sales history. Every
// ratio guards its denominator and reports 0 instead of a non-finite value.
func ComputeMetrics(h *models.SalesHistory) *models.SalesMetrics {
	m := &models.SalesMetrics{
		TotalSales:      h.TotalSales,
		TotalRevenue:    h.TotalRevenue,
		AvgMonthlySales: h.AvgMonthlySales,
	}
	if len(h.Sales) == 0 {
		return m
	}

	// Growth rate: last 3 months vs the 3 before them.
	if len(h.Sales) >= 6 {
		recent := sumInts(h.Sales[len(h.Sales)-3:])
		previous := sumInts(h.Sales[len(h.Sales)-6 : len(h.Sales)-3])
		if previous > 0 {
			m.GrowthRate = round1(float64(recent-previous) / float64(previous) * 100)
		}
	}

	peakIdx := 0
	for i, s := range h.Sales {
		if s > h.Sales[peakIdx] {
			peakIdx = i
		}
	}
	m.PeakMonth = h.Dates[peakIdx]
	m.PeakSales = h.Sales[peakIdx]

	if h.TotalSales > 0 {
		m.AvgPrice = round2(h.TotalRevenue / float64(h.TotalSales))
	}

	mean := meanInts(h.Sales)
	if mean > 0 {
		m.Volatility = round1(stdDevInts(h.Sales) / mean * 100)
	}

	return m
}

func sumInts(vals []int) int {
	total := 0
	for _, v := range vals {
		total += v
	}
	return total
}

func meanInts(vals []int) float64 {
	if len(vals) == 0 {
		return 0
	}
	return float64(sumInts(vals)) / float64(len(vals))
}

// stdDevInts is the population standard deviation.
func stdDevInts(vals []int) float64 {
	if len(vals) == 0 {
		return 0
	}
	mean := meanInts(vals)
	var ss float64
	for _, v := range vals {
		d := float64(v) - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vals)))
}
