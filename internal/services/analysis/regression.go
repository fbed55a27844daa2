package analysis

import "math"

// SlopeDirection classifies a fitted slope.
type SlopeDirection string

const (
	SlopeUp   SlopeDirection = "up"
	SlopeDown SlopeDirection = "down"
	SlopeFlat SlopeDirection = "flat"
)

// Trend is an ordinary-least-squares fit of prices against their index.
// Strength is an R²-style fit quality in [0,100]: 100 means the prices sit
// exactly on the fitted line, 0 means the line explains nothing (or the
// series is constant).
type Trend struct {
	Slope     float64
	Direction SlopeDirection
	Strength  float64
}

// FitTrend regresses prices (temporal order) on index 0..n-1. Fewer than two
// points yields a flat zero trend. Direction thresholds compare the raw
// slope in price units per step against the policy epsilon; the comparison
// is deliberately not normalized by price level.
func (e *Engine) FitTrend(prices []float64) Trend {
	n := len(prices)
	if n < 2 {
		return Trend{Direction: SlopeFlat}
	}

	fn := float64(n)
	xMean := (fn - 1) / 2
	var yMean float64
	for _, y := range prices {
		yMean += y
	}
	yMean /= fn

	var num, den float64
	for i, y := range prices {
		dx := float64(i) - xMean
		num += dx * (y - yMean)
		den += dx * dx
	}

	var slope float64
	if den != 0 {
		slope = num / den
	}

	var ssTotal, ssResidual float64
	for i, y := range prices {
		dt := y - yMean
		ssTotal += dt * dt
		dr := y - (yMean + slope*(float64(i)-xMean))
		ssResidual += dr * dr
	}

	var strength float64
	if ssTotal != 0 {
		strength = clamp((1-ssResidual/ssTotal)*100, 0, 100)
	}

	direction := SlopeFlat
	switch {
	case slope > e.policy.TrendSlopeEpsilon:
		direction = SlopeUp
	case slope < -e.policy.TrendSlopeEpsilon:
		direction = SlopeDown
	}

	return Trend{Slope: slope, Direction: direction, Strength: math.Round(strength)}
}
