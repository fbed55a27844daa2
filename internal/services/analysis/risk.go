package analysis

import "MeanRev/internal/domain/models"

// LiquidityScore maps average traded volume to a 0-100 score via the policy
// step table. The breakpoints gate downstream confidence bonuses, so they
// must not drift.
func (e *Engine) LiquidityScore(volumeAvg float64) float64 {
	for _, step := range e.policy.LiquiditySteps {
		if volumeAvg > step.MinVolume {
			return step.Score
		}
	}
	return e.policy.LiquidityFloor
}

// VolatilityRisk tiers the average of short- and long-window volatility
// relative to the reference price. A non-positive reference price cannot be
// tiered meaningfully and reads as high risk.
func (e *Engine) VolatilityRisk(shortVol, longVol, avgPrice float64) models.RiskTier {
	if avgPrice <= 0 {
		return models.RiskHigh
	}

	shortPct := shortVol / avgPrice * 100
	longPct := longVol / avgPrice * 100
	avgPct := (shortPct + longPct) / 2

	switch {
	case avgPct < e.policy.VolRiskLowPct:
		return models.RiskLow
	case avgPct < e.policy.VolRiskMediumPct:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}
