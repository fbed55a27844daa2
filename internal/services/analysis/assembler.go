package analysis

import (
	"fmt"
	"math"
	"strings"
	"time"

	"MeanRev/internal/domain/models"
)

// Analyze evaluates one item at the engine clock. See AnalyzeAt.
func (e *Engine) Analyze(itemID int64, itemName string, series []models.PricePoint) (*models.Signal, error) {
	return e.AnalyzeAt(e.now(), itemID, itemName, series)
}

// AnalyzeAt runs the full pipeline as of an explicit moment. Two gates can
// end it early with (nil, nil): too little history, or no window showing a
// meaningful discount. Neither is an error; only malformed input is.
func (e *Engine) AnalyzeAt(now time.Time, itemID int64, itemName string, series []models.PricePoint) (*models.Signal, error) {
	if err := models.ValidateSeries(series); err != nil {
		return nil, fmt.Errorf("analyze item %d: %w", itemID, err)
	}

	p := e.policy
	if len(series) < p.MinSeriesPoints {
		return nil, nil
	}

	stats := make(map[models.Window]TimeframeStats, len(models.AllWindows))
	for _, w := range models.AllWindows {
		stats[w] = timeframeStats(series, w.Days(), now)
	}

	currentPrice := series[len(series)-1].Midpoint()
	if currentPrice <= 0 {
		// A zero current price with surviving history is not actionable.
		return nil, nil
	}

	deviations := make(map[models.Window]float64, len(stats))
	maxDeviation := math.Inf(-1)
	for w, s := range stats {
		d := s.DeviationPct(currentPrice)
		deviations[w] = d
		if d > maxDeviation {
			maxDeviation = d
		}
	}
	if maxDeviation < p.MinSignalDeviationPct {
		return nil, nil
	}

	supply := e.AssessSupplyPattern(series)
	liquidity := e.LiquidityScore(stats[models.Window30d].VolumeAvg)
	volRisk := e.VolatilityRisk(stats[models.Window7d].Volatility, stats[models.Window90d].Volatility, currentPrice)
	downtrend := e.AssessDowntrendPenalty(series)

	confidence := e.ConfidenceScore(ConfidenceInputs{
		DeviationPct:     maxDeviation,
		LiquidityScore:   liquidity,
		SupplyStability:  supply.Stability,
		VolatilityRisk:   volRisk,
		DowntrendPenalty: downtrend.Penalty,
	})
	grade := p.GradeFor(confidence)

	holdingPeriod := e.holdingPeriod(maxDeviation, supply.Likelihood)
	positionSize := int64(math.Floor(p.BaseCapitalGP * (confidence / 100) * math.Min(1, liquidity/p.LiquidityHeadroom)))

	// The reversion anchor is the most optimistic historical average, not a
	// projection.
	anchor := math.Max(stats[models.Window90d].Avg, stats[models.Window365d].Avg)
	reversionPotential := (anchor - currentPrice) / currentPrice * 100
	targetSell := int64(math.Floor(anchor * p.TargetSellHaircut))
	stopLoss := int64(math.Floor(currentPrice * p.StopLossHaircut))

	temporal := temporalProfile(series, now)
	yearlyPct, yearlyContext := yearlyTrend(series, currentPrice, now)

	reasoning := buildReasoning(itemName, maxDeviation, reversionPotential, confidence,
		supply.Likelihood, downtrend, holdingPeriod)

	return &models.Signal{
		ItemID:       itemID,
		ItemName:     itemName,
		CurrentPrice: currentPrice,

		ShortTerm:  summarize(models.Window7d, stats, deviations),
		MediumTerm: summarize(models.Window90d, stats, deviations),
		LongTerm:   summarize(models.Window365d, stats, deviations),

		MaxDeviationPct:       maxDeviation,
		ReversionPotentialPct: reversionPotential,
		ConfidenceScore:       confidence,
		InvestmentGrade:       grade,

		VolatilityRisk:         volRisk,
		LiquidityScore:         liquidity,
		EstimatedHoldingPeriod: holdingPeriod,

		BotLikelihood:        supply.Likelihood,
		SupplyStabilityScore: supply.Stability,

		PriceStability30d:       temporal.PriceStability,
		TrendDirection:          temporal.TrendDirection,
		DaysSinceLastMajorShift: temporal.DaysSinceMajorShift,
		PriceRange30d:           temporal.Range30d,
		Momentum:                temporal.Momentum,
		StructuralRepricingRisk: temporal.RepricingRisk,

		YearlyTrendPct: yearlyPct,
		YearlyContext:  yearlyContext,

		SuggestedPositionSize: positionSize,
		TargetSellPrice:       targetSell,
		StopLossPrice:         stopLoss,
		Reasoning:             reasoning,
	}, nil
}

func summarize(w models.Window, stats map[models.Window]TimeframeStats, deviations map[models.Window]float64) models.TimeframeSummary {
	s := stats[w]
	return models.TimeframeSummary{
		Window:              w,
		AveragePrice:        math.Round(s.Avg),
		CurrentDeviationPct: deviations[w],
		Volatility:          s.Volatility,
		AverageVolume:       s.VolumeAvg,
	}
}

// holdingPeriod assumes bot-stable items revert faster: their supply shock
// clears as soon as the farm pressure lifts.
func (e *Engine) holdingPeriod(maxDeviation float64, likelihood models.BotLikelihood) string {
	p := e.policy
	multiplier, ok := p.HoldingMultipliers[likelihood]
	if !ok {
		multiplier = 1.0
	}
	baseWeeks := maxDeviation / p.DeviationPerWeek * multiplier

	for _, bucket := range p.HoldingBuckets {
		if baseWeeks < bucket.MaxWeeks {
			return bucket.Label
		}
	}
	return p.HoldingDefaultLabel
}

func buildReasoning(itemName string, maxDeviation, reversionPotential, confidence float64,
	likelihood models.BotLikelihood, downtrend DowntrendAssessment, holdingPeriod string) string {

	var notes []string
	if maxDeviation > 0 {
		notes = append(notes, fmt.Sprintf("Trading %.1f%% under historical averages", maxDeviation))
	}
	if likelihood == models.BotVeryHigh || likelihood == models.BotHigh {
		notes = append(notes, "Bot supply pattern detected - bans historically trigger fast rebounds")
	}
	if downtrend.Penalty > 0 {
		notes = append(notes, downtrend.Reasoning)
	}
	if reversionPotential > 0 {
		notes = append(notes, fmt.Sprintf("Upside ~%.1f%% with %s hold", reversionPotential, holdingPeriod))
	}
	notes = append(notes, fmt.Sprintf("Confidence %.0f%% on %s", confidence, itemName))

	return strings.Join(notes, ". ") + "."
}
