package analysis

import (
	"time"

	"MeanRev/internal/domain/models"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	return New(WithClock(func() time.Time { return testNow }))
}

// dailySeries turns a price slice into one bucket per day ending at testNow,
// oldest first, with sideVolume on both sides of every bucket.
func dailySeries(prices []float64, sideVolume int64) []models.PricePoint {
	n := len(prices)
	points := make([]models.PricePoint, n)
	start := testNow.Unix() - int64(n-1)*86400
	for i, price := range prices {
		points[i] = models.PricePoint{
			Timestamp:    start + int64(i)*86400,
			AvgHighPrice: price,
			AvgLowPrice:  price,
			HighVolume:   sideVolume,
			LowVolume:    sideVolume,
		}
	}
	return points
}

func flatPrices(n int, price float64) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = price
	}
	return prices
}

func linearPrices(n int, start, end float64) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = start + (end-start)*float64(i)/float64(n-1)
	}
	return prices
}
