package analysis

import (
	"math"

	"MeanRev/internal/domain/models"
)

// SupplyAssessment is the bot-activity heuristic: artificially stable
// (bot-driven) supply shows abnormally low price dispersion over the recent
// window. It is a proxy, not a causal determination.
type SupplyAssessment struct {
	Likelihood models.BotLikelihood
	Stability  float64 // 0-100, higher = more mechanically consistent pricing
}

// AssessSupplyPattern scores price dispersion over the most recent supply
// window. With too little history it returns the neutral default (low
// likelihood, stability 50) rather than an error.
func (e *Engine) AssessSupplyPattern(series []models.PricePoint) SupplyAssessment {
	p := e.policy
	if len(series) < p.SupplyWindowPoints {
		return SupplyAssessment{Likelihood: models.BotLow, Stability: 50}
	}

	recent := series[len(series)-p.SupplyWindowPoints:]
	prices := models.Midpoints(recent)

	n := float64(len(prices))
	var sum float64
	for _, v := range prices {
		sum += v
	}
	mean := sum / n

	var sqSum float64
	for _, v := range prices {
		d := v - mean
		sqSum += d * d
	}
	stdDev := math.Sqrt(sqSum / n)

	// Many items report no volume at all, so dispersion of price is the
	// signal: most items vary 10-30%, bot-fed ones under 10.
	cv := 50.0
	if mean > 0 {
		cv = stdDev / mean * 100
	}

	stability := clamp(100-cv*p.SupplyCVFactor, 0, 100)

	likelihood := models.BotLow
	switch {
	case cv < p.SupplyCVVeryHigh:
		likelihood = models.BotVeryHigh
	case cv < p.SupplyCVHigh:
		likelihood = models.BotHigh
	case cv < p.SupplyCVMedium:
		likelihood = models.BotMedium
	}

	return SupplyAssessment{Likelihood: likelihood, Stability: stability}
}
