package analysis

import "MeanRev/internal/domain/models"

// Policy is the single table of tuned constants behind the pipeline. Every
// breakpoint that used to be an inline comparison lives here so the whole
// scoring policy can be audited and tested in one place. The zero value is
// not usable; start from DefaultPolicy.
type Policy struct {
	// Entry gates.
	MinSeriesPoints       int     // below this the engine declines outright
	MinSignalDeviationPct float64 // max deviation below this is "not undervalued"

	// Trend regression. The slope epsilon is in raw GP per step, not
	// normalized by price level: a known scale-dependent heuristic carried
	// over from the original tuning.
	TrendSlopeEpsilon float64

	// Supply pattern (bot heuristic).
	SupplyWindowPoints int
	SupplyCVFactor     float64 // stability = 100 - CV*factor
	SupplyCVVeryHigh   float64
	SupplyCVHigh       float64
	SupplyCVMedium     float64

	// Liquidity step table, evaluated top-down; floor applies below the
	// last step. Downstream confidence bonuses key off these exact values.
	LiquiditySteps []LiquidityStep
	LiquidityFloor float64

	// Volatility risk tiers on (shortVol% + longVol%)/2.
	VolRiskLowPct    float64
	VolRiskMediumPct float64

	// Downtrend / reversal cascade.
	DowntrendMinPoints       int
	ReversalMinPoints        int
	ReversalSupportPoints    int
	ReversalSupportRangePct  float64
	ReversalSupportSlopeMin  float64
	ReversalStrengthGate     float64
	StrongReversalStrength   float64
	StrongDeclinePct         float64
	StrongDeclineStrength    float64
	ModerateDeclinePct       float64
	FullDowntrendPenalty     float64
	ModerateDowntrendPenalty float64
	MitigatedPenaltyBase     float64 // penalty = max(0, base - reversal strength)

	// Confidence scoring.
	ConfidenceDeviationFloor float64 // hard gate, not a penalty
	DeviationBuckets         []DeviationBucket
	VolHighPenalty           float64
	VolHighFloor             float64
	VolMediumPenalty         float64
	VolMediumFloor           float64
	VolLowBonus              float64
	StabilityBonusMin        float64
	StabilityBonus           float64
	StabilityPenaltyMax      float64
	StabilityPenalty         float64
	StabilityPenaltyFloor    float64
	LiquidityBonusMin        float64
	LiquidityBonus           float64

	// Grading, evaluated highest-first.
	GradeSteps []GradeStep

	// Holding period estimate.
	HoldingMultipliers  map[models.BotLikelihood]float64
	HoldingBuckets      []HoldingBucket
	HoldingDefaultLabel string
	DeviationPerWeek    float64 // weeks = deviation / this, before the bot multiplier

	// Position sizing and price targets.
	BaseCapitalGP      float64
	LiquidityHeadroom  float64 // sizing scales by min(1, liquidity/headroom)
	TargetSellHaircut  float64
	StopLossHaircut    float64
}

// LiquidityStep maps a minimum average volume (exclusive) to a score.
type LiquidityStep struct {
	MinVolume float64
	Score     float64
}

// DeviationBucket maps a minimum deviation (inclusive) to a base confidence.
type DeviationBucket struct {
	MinPct float64
	Base   float64
}

// GradeStep maps a minimum confidence (inclusive) to a grade.
type GradeStep struct {
	MinConfidence float64
	Grade         models.InvestmentGrade
}

// HoldingBucket maps an exclusive upper bound in weeks to a label.
type HoldingBucket struct {
	MaxWeeks float64
	Label    string
}

// DefaultPolicy is the production threshold table.
var DefaultPolicy = Policy{
	MinSeriesPoints:       5,
	MinSignalDeviationPct: 1,

	TrendSlopeEpsilon: 0.1,

	SupplyWindowPoints: 30,
	SupplyCVFactor:     2,
	SupplyCVVeryHigh:   5,
	SupplyCVHigh:       10,
	SupplyCVMedium:     20,

	LiquiditySteps: []LiquidityStep{
		{MinVolume: 10000, Score: 100},
		{MinVolume: 5000, Score: 90},
		{MinVolume: 2000, Score: 75},
		{MinVolume: 1000, Score: 60},
		{MinVolume: 500, Score: 45},
		{MinVolume: 100, Score: 30},
	},
	LiquidityFloor: 15,

	VolRiskLowPct:    5,
	VolRiskMediumPct: 15,

	DowntrendMinPoints:       90,
	ReversalMinPoints:        60,
	ReversalSupportPoints:    10,
	ReversalSupportRangePct:  5,
	ReversalSupportSlopeMin:  -0.05,
	ReversalStrengthGate:     40,
	StrongReversalStrength:   70,
	StrongDeclinePct:         20,
	StrongDeclineStrength:    50,
	ModerateDeclinePct:       10,
	FullDowntrendPenalty:     70,
	ModerateDowntrendPenalty: 20,
	MitigatedPenaltyBase:     60,

	ConfidenceDeviationFloor: 8,
	DeviationBuckets: []DeviationBucket{
		{MinPct: 30, Base: 90},
		{MinPct: 20, Base: 75},
		{MinPct: 15, Base: 55},
		{MinPct: 12, Base: 40},
		{MinPct: 8, Base: 30},
	},
	VolHighPenalty:        20,
	VolHighFloor:          20,
	VolMediumPenalty:      10,
	VolMediumFloor:        25,
	VolLowBonus:           10,
	StabilityBonusMin:     80,
	StabilityBonus:        8,
	StabilityPenaltyMax:   30,
	StabilityPenalty:      8,
	StabilityPenaltyFloor: 20,
	LiquidityBonusMin:     70,
	LiquidityBonus:        5,

	GradeSteps: []GradeStep{
		{MinConfidence: 85, Grade: models.GradeAPlus},
		{MinConfidence: 75, Grade: models.GradeA},
		{MinConfidence: 65, Grade: models.GradeBPlus},
		{MinConfidence: 50, Grade: models.GradeB},
		{MinConfidence: 30, Grade: models.GradeC},
	},

	HoldingMultipliers: map[models.BotLikelihood]float64{
		models.BotVeryHigh: 0.5,
		models.BotHigh:     0.7,
		models.BotMedium:   1.0,
		models.BotLow:      1.3,
	},
	HoldingBuckets: []HoldingBucket{
		{MaxWeeks: 2, Label: "1-2 weeks"},
		{MaxWeeks: 4, Label: "2-4 weeks"},
		{MaxWeeks: 8, Label: "1-2 months"},
		{MaxWeeks: 12, Label: "2-3 months"},
	},
	HoldingDefaultLabel: "3-6 months",
	DeviationPerWeek:    5,

	BaseCapitalGP:     10_000_000,
	LiquidityHeadroom: 80,
	TargetSellHaircut: 0.95,
	StopLossHaircut:   0.90,
}

// GradeFor maps a final confidence score to its grade, highest step first.
func (p Policy) GradeFor(confidence float64) models.InvestmentGrade {
	for _, step := range p.GradeSteps {
		if confidence >= step.MinConfidence {
			return step.Grade
		}
	}
	return models.GradeD
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
