package analysis

import (
	"math"
	"time"

	"MeanRev/internal/domain/models"
)

// TimeframeStats summarizes a trailing window of the series. Volatility is
// the population standard deviation (divide by N) of bucket midpoints.
type TimeframeStats struct {
	Avg        float64
	Volatility float64
	VolumeAvg  float64
}

// TimeframeStats computes stats over points within daysBack of now. A window
// with no points yields the zero value; callers treat that as "no data for
// this window", never as an error.
func (e *Engine) TimeframeStats(series []models.PricePoint, daysBack int) TimeframeStats {
	return timeframeStats(series, daysBack, e.now())
}

func timeframeStats(series []models.PricePoint, daysBack int, now time.Time) TimeframeStats {
	cutoff := now.Unix() - int64(daysBack)*86400

	var prices []float64
	var volumeSum float64
	for _, p := range series {
		if p.Timestamp < cutoff {
			continue
		}
		prices = append(prices, p.Midpoint())
		volumeSum += p.TotalVolume()
	}
	if len(prices) == 0 {
		return TimeframeStats{}
	}

	n := float64(len(prices))
	var sum float64
	for _, p := range prices {
		sum += p
	}
	avg := sum / n

	var sqSum float64
	for _, p := range prices {
		d := p - avg
		sqSum += d * d
	}

	return TimeframeStats{
		Avg:        avg,
		Volatility: math.Sqrt(sqSum / n),
		VolumeAvg:  volumeSum / n,
	}
}

// DeviationPct returns how far below the window average the current price
// sits, in percentage points. Zero when the window has no data.
func (s TimeframeStats) DeviationPct(currentPrice float64) float64 {
	if s.Avg <= 0 {
		return 0
	}
	return (s.Avg - currentPrice) / s.Avg * 100
}
