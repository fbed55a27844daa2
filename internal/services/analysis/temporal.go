package analysis

import (
	"fmt"
	"math"
	"time"

	"MeanRev/internal/domain/models"
)

// Temporal analysis separates temporary suppression from structural
// repricing: an item that has sat flat at its "discounted" price for months
// is not discounted, it has been repriced.

const (
	stabilityWindowDays  = 30
	stabilityCVFactor    = 5
	majorShiftPct        = 15
	majorShiftSpan       = 3
	trendDirectionPct    = 5
	momentumFlatPct      = 2
	momentumSpanDays     = 7
	trendDirectionWindow = 90
)

// TemporalProfile is the structural-repricing view of the recent history.
type TemporalProfile struct {
	PriceStability      float64
	TrendDirection      models.TrendDirection
	DaysSinceMajorShift int
	Range30d            models.PriceRange
	Momentum            models.Momentum
	RepricingRisk       models.RepricingRisk
}

// TemporalProfile computes all temporal metrics at the engine clock.
func (e *Engine) TemporalProfile(series []models.PricePoint) TemporalProfile {
	return temporalProfile(series, e.now())
}

func temporalProfile(series []models.PricePoint, now time.Time) TemporalProfile {
	tp := TemporalProfile{
		PriceStability:      priceStability(series, stabilityWindowDays, now),
		TrendDirection:      trendDirection(series, now),
		DaysSinceMajorShift: daysSinceMajorShift(series, now),
		Range30d:            priceRange(series, stabilityWindowDays, now),
		Momentum:            momentum(series),
	}
	tp.RepricingRisk = repricingRisk(tp.PriceStability, tp.DaysSinceMajorShift, tp.TrendDirection, tp.Momentum)
	return tp
}

// priceStability scores how quiet the recent window has been: 100 means no
// dispersion at all. Too few points or a zero mean read as neutral 50.
func priceStability(series []models.PricePoint, days int, now time.Time) float64 {
	cutoff := now.Unix() - int64(days)*86400
	var prices []float64
	for _, p := range series {
		if p.Timestamp >= cutoff {
			prices = append(prices, p.Midpoint())
		}
	}
	if len(prices) < 3 {
		return 50
	}

	n := float64(len(prices))
	var sum float64
	for _, v := range prices {
		sum += v
	}
	avg := sum / n
	if avg == 0 {
		return 50
	}

	var sqSum float64
	for _, v := range prices {
		d := v - avg
		sqSum += d * d
	}
	cv := math.Sqrt(sqSum/n) / avg * 100

	return math.Round(math.Max(0, 100-cv*stabilityCVFactor))
}

// trendDirection compares the first and last thirds of the 90-day window.
func trendDirection(series []models.PricePoint, now time.Time) models.TrendDirection {
	cutoff := now.Unix() - int64(trendDirectionWindow)*86400
	var relevant []models.PricePoint
	for _, p := range series {
		if p.Timestamp >= cutoff {
			relevant = append(relevant, p)
		}
	}
	if len(relevant) < 10 {
		return models.TrendStable
	}

	third := len(relevant) / 3
	avgFirst := meanMidpoint(relevant[:third])
	avgLast := meanMidpoint(relevant[len(relevant)-third:])
	if avgFirst == 0 {
		return models.TrendStable
	}

	changePct := (avgLast - avgFirst) / avgFirst * 100
	switch {
	case changePct > trendDirectionPct:
		return models.TrendRising
	case changePct < -trendDirectionPct:
		return models.TrendFalling
	default:
		return models.TrendStable
	}
}

// daysSinceMajorShift walks back looking for a >15% move sustained over a
// three-bucket span. When none exists the answer is capped at the data age.
func daysSinceMajorShift(series []models.PricePoint, now time.Time) int {
	if len(series) < 5 {
		return 0
	}

	for i := len(series) - 1; i >= majorShiftSpan+1; i-- {
		older := series[i-majorShiftSpan].Midpoint()
		if older <= 0 {
			continue
		}
		changePct := math.Abs((series[i].Midpoint() - older) / older * 100)
		if changePct > majorShiftPct {
			days := int((now.Unix() - series[i].Timestamp) / 86400)
			if days < 0 {
				days = 0
			}
			return days
		}
	}

	if len(series) < 365 {
		return len(series)
	}
	return 365
}

func priceRange(series []models.PricePoint, days int, now time.Time) models.PriceRange {
	cutoff := now.Unix() - int64(days)*86400
	var high, low float64
	first := true
	for _, p := range series {
		if p.Timestamp < cutoff {
			continue
		}
		mid := p.Midpoint()
		if first {
			high, low = mid, mid
			first = false
			continue
		}
		if mid > high {
			high = mid
		}
		if mid < low {
			low = mid
		}
	}
	if first {
		return models.PriceRange{}
	}

	var spread float64
	if low > 0 {
		spread = math.Round((high-low)/low*1000) / 10
	}
	return models.PriceRange{High: math.Round(high), Low: math.Round(low), SpreadPct: spread}
}

// momentum compares week-over-week average changes to tell an accelerating
// move from a fading one.
func momentum(series []models.PricePoint) models.Momentum {
	if len(series) < 2*momentumSpanDays {
		return models.MomentumFlat
	}

	recent := series[len(series)-momentumSpanDays:]
	prior := series[len(series)-2*momentumSpanDays : len(series)-momentumSpanDays]

	olderLo := len(series) - 3*momentumSpanDays
	if olderLo < 0 {
		olderLo = 0
	}
	older := series[olderLo : len(series)-2*momentumSpanDays]

	avgRecent := meanMidpoint(recent)
	avgPrior := meanMidpoint(prior)
	avgOlder := meanMidpoint(older)
	if avgPrior <= 0 {
		return models.MomentumFlat
	}

	recentChange := (avgRecent - avgPrior) / avgPrior * 100
	var priorChange float64
	if avgOlder > 0 {
		priorChange = (avgPrior - avgOlder) / avgOlder * 100
	}

	if math.Abs(recentChange) < momentumFlatPct {
		return models.MomentumFlat
	}
	if recentChange < 0 {
		if priorChange < 0 && math.Abs(recentChange) > math.Abs(priorChange) {
			return models.MomentumAccelDown
		}
		return models.MomentumDecelDown
	}
	if priorChange > 0 && recentChange > priorChange {
		return models.MomentumAccelUp
	}
	return models.MomentumDecelUp
}

// repricingRisk combines the temporal metrics into one tier. Long-stable
// prices are the red flag: ninety flat days at the "discount" is a new
// equilibrium, not a dip.
func repricingRisk(stability float64, daysSinceShift int, trend models.TrendDirection, mom models.Momentum) models.RepricingRisk {
	if daysSinceShift > 90 && stability > 70 {
		return models.RepricingVeryHigh
	}
	if daysSinceShift > 60 && stability > 60 && trend != models.TrendStable {
		return models.RepricingHigh
	}
	if trend == models.TrendFalling && mom == models.MomentumAccelDown {
		return models.RepricingHigh
	}
	if daysSinceShift > 30 && stability > 50 {
		return models.RepricingModerate
	}
	return models.RepricingLow
}

// yearlyTrend reports the % change from the start of the 365-day window to
// the current price, with a short context line. Requires a meaningful amount
// of yearly history, otherwise stays neutral.
func yearlyTrend(series []models.PricePoint, currentPrice float64, now time.Time) (float64, string) {
	cutoff := now.Unix() - 365*86400
	var yearly []models.PricePoint
	for _, p := range series {
		if p.Timestamp >= cutoff {
			yearly = append(yearly, p)
		}
	}
	if len(yearly) <= 30 {
		return 0, "neutral long-term trend"
	}

	first := yearly[0].Midpoint()
	if first <= 0 {
		return 0, "neutral long-term trend"
	}
	pct := (currentPrice - first) / first * 100

	switch {
	case pct < -20:
		return pct, fmt.Sprintf("warning: yearly downtrend (%.0f%%)", pct)
	case pct < -10:
		return pct, fmt.Sprintf("caution: declining yearly (%.0f%%)", pct)
	case pct > 20:
		return pct, fmt.Sprintf("strong yearly uptrend (+%.0f%%)", pct)
	case pct > 10:
		return pct, fmt.Sprintf("positive yearly trend (+%.0f%%)", pct)
	default:
		return pct, fmt.Sprintf("neutral yearly trend (%+.0f%%)", pct)
	}
}

func meanMidpoint(points []models.PricePoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.Midpoint()
	}
	return sum / float64(len(points))
}
