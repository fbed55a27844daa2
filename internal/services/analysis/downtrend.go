package analysis

import (
	"fmt"
	"math"

	"MeanRev/internal/domain/models"
)

// ReversalCheck reports whether a declining price is genuinely turning.
// Strength is derived from the recent slope; FoundSupport means the latest
// prices hold a tight range on a flat-or-up slope.
type ReversalCheck struct {
	IsReversing  bool
	Strength     float64
	FoundSupport bool
}

// DowntrendAssessment is the confidence penalty for structural decline,
// with the human-readable reason that produced it.
type DowntrendAssessment struct {
	Penalty   float64
	Reasoning string
}

// DetectTrendReversal re-fits the trend over the most recent supply window.
// A slowdown in decline does not count: the recent slope must be genuinely
// positive. Under the minimum history the zero value comes back.
func (e *Engine) DetectTrendReversal(series []models.PricePoint) ReversalCheck {
	p := e.policy
	if len(series) < p.ReversalMinPoints {
		return ReversalCheck{}
	}

	recent := models.Midpoints(series[len(series)-p.SupplyWindowPoints:])
	trend := e.FitTrend(recent)

	check := ReversalCheck{IsReversing: trend.Slope > p.TrendSlopeEpsilon}
	if check.IsReversing {
		check.Strength = math.Round(clamp(math.Max(trend.Slope*50, 20), 0, 100))
	}

	// Support: the latest prices hold a tight band and the recent slope is
	// at worst marginally negative.
	lows := recent[len(recent)-p.ReversalSupportPoints:]
	lowest, highest := lows[0], lows[0]
	for _, v := range lows[1:] {
		if v < lowest {
			lowest = v
		}
		if v > highest {
			highest = v
		}
	}
	if lowest > 0 {
		rangePct := (highest - lowest) / lowest * 100
		check.FoundSupport = rangePct < p.ReversalSupportRangePct && trend.Slope >= p.ReversalSupportSlopeMin
	}

	return check
}

// AssessDowntrendPenalty detects structural decline: a large, statistically
// consistent drawdown from peak. The cascade is ordered on purpose: the
// strong-decline gate must pass before the reversal gate means anything,
// and the strength/support gate only runs for a confirmed reversal.
func (e *Engine) AssessDowntrendPenalty(series []models.PricePoint) DowntrendAssessment {
	p := e.policy
	if len(series) < p.DowntrendMinPoints {
		return DowntrendAssessment{Reasoning: "insufficient historical data"}
	}

	prices := models.Midpoints(series)
	trend := e.FitTrend(prices)
	if trend.Direction != SlopeDown {
		return DowntrendAssessment{Reasoning: "no strong downtrend detected"}
	}

	peak := prices[0]
	for _, v := range prices[1:] {
		if v > peak {
			peak = v
		}
	}
	current := prices[len(prices)-1]
	var declinePct float64
	if peak > 0 {
		declinePct = (peak - current) / peak * 100
	}

	if declinePct > p.StrongDeclinePct && trend.Strength > p.StrongDeclineStrength {
		rc := e.DetectTrendReversal(series)
		if rc.IsReversing && rc.Strength > p.ReversalStrengthGate {
			if rc.Strength > p.StrongReversalStrength && rc.FoundSupport {
				// Genuinely recovering: the stronger the bounce, the less
				// residual penalty remains.
				return DowntrendAssessment{
					Penalty: math.Max(0, p.MitigatedPenaltyBase-rc.Strength),
					Reasoning: fmt.Sprintf(
						"strong downtrend (%.0f%% from peak) but showing strong reversal signs (%.0f%% strength) with support",
						declinePct, rc.Strength),
				}
			}
			// A weak bounce without price support does not override a
			// structural decline.
			return DowntrendAssessment{
				Penalty: p.FullDowntrendPenalty,
				Reasoning: fmt.Sprintf(
					"strong downtrend (%.0f%% from peak, %.0f%% consistency) - likely structural decline, not mean-reversion",
					declinePct, trend.Strength),
			}
		}
		return DowntrendAssessment{
			Penalty: p.FullDowntrendPenalty,
			Reasoning: fmt.Sprintf(
				"strong downtrend (%.0f%% from peak, %.0f%% consistency) - likely structural decline, not mean-reversion",
				declinePct, trend.Strength),
		}
	}

	if declinePct > p.ModerateDeclinePct {
		return DowntrendAssessment{
			Penalty:   p.ModerateDowntrendPenalty,
			Reasoning: fmt.Sprintf("moderate downtrend (%.0f%% from peak) - verify reversal signals", declinePct),
		}
	}

	return DowntrendAssessment{Reasoning: "no significant downtrend"}
}
