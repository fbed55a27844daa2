package analysis

import (
	"math"

	"MeanRev/internal/domain/models"
)

// ConfidenceInputs are the factors feeding the final score.
type ConfidenceInputs struct {
	DeviationPct     float64
	LiquidityScore   float64
	SupplyStability  float64
	VolatilityRisk   models.RiskTier
	DowntrendPenalty float64
}

// ConfidenceScore combines the factors into one bounded score. The order of
// adjustments is part of the policy: the downtrend penalty lands on the
// volatility-adjusted base, and the stability/liquidity tweaks come after
// that, so a heavy penalty can zero out everything the deviation earned.
func (e *Engine) ConfidenceScore(in ConfidenceInputs) float64 {
	p := e.policy

	// Below the floor there is nothing to score; this is an absolute gate,
	// not a penalty.
	if in.DeviationPct < p.ConfidenceDeviationFloor {
		return 0
	}

	var confidence float64
	for _, bucket := range p.DeviationBuckets {
		if in.DeviationPct >= bucket.MinPct {
			confidence = bucket.Base
			break
		}
	}

	switch in.VolatilityRisk {
	case models.RiskHigh:
		confidence = math.Max(p.VolHighFloor, confidence-p.VolHighPenalty)
	case models.RiskMedium:
		confidence = math.Max(p.VolMediumFloor, confidence-p.VolMediumPenalty)
	case models.RiskLow:
		confidence = math.Min(100, confidence+p.VolLowBonus)
	}

	confidence = math.Max(0, confidence-in.DowntrendPenalty)

	if in.SupplyStability >= p.StabilityBonusMin {
		confidence = math.Min(100, confidence+p.StabilityBonus)
	} else if in.SupplyStability < p.StabilityPenaltyMax {
		confidence = math.Max(p.StabilityPenaltyFloor, confidence-p.StabilityPenalty)
	}

	if in.LiquidityScore >= p.LiquidityBonusMin {
		confidence = math.Min(100, confidence+p.LiquidityBonus)
	}

	return clamp(confidence, 0, 100)
}
