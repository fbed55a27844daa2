package models

// InvestmentGrade is an ordered categorical summary of a signal, A+ best.
type InvestmentGrade string

const (
	GradeAPlus InvestmentGrade = "A+"
	GradeA     InvestmentGrade = "A"
	GradeBPlus InvestmentGrade = "B+"
	GradeB     InvestmentGrade = "B"
	GradeC     InvestmentGrade = "C"
	GradeD     InvestmentGrade = "D"
)

// Rank returns a sortable weight, higher is better. Unknown grades sort last.
func (g InvestmentGrade) Rank() int {
	switch g {
	case GradeAPlus:
		return 6
	case GradeA:
		return 5
	case GradeBPlus:
		return 4
	case GradeB:
		return 3
	case GradeC:
		return 2
	case GradeD:
		return 1
	default:
		return 0
	}
}

// RiskTier buckets volatility risk.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// BotLikelihood estimates how mechanically stable an item's supply has been.
type BotLikelihood string

const (
	BotVeryHigh BotLikelihood = "very high"
	BotHigh     BotLikelihood = "high"
	BotMedium   BotLikelihood = "medium"
	BotLow      BotLikelihood = "low"
)

// TrendDirection is the coarse 90-day drift of the price.
type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendFalling TrendDirection = "falling"
	TrendStable  TrendDirection = "stable"
)

// Momentum compares the last week's move against the week before it.
type Momentum string

const (
	MomentumAccelDown Momentum = "accelerating_down"
	MomentumDecelDown Momentum = "decelerating_down"
	MomentumFlat      Momentum = "flat"
	MomentumAccelUp   Momentum = "accelerating_up"
	MomentumDecelUp   Momentum = "decelerating_up"
)

// RepricingRisk estimates how likely the current price is a new equilibrium
// rather than a temporary dip.
type RepricingRisk string

const (
	RepricingVeryHigh RepricingRisk = "very_high"
	RepricingHigh     RepricingRisk = "high"
	RepricingModerate RepricingRisk = "moderate"
	RepricingLow      RepricingRisk = "low"
)

// TimeframeSummary is the derived view of one trailing window. Deviation is
// positive when the current price sits below the window average.
type TimeframeSummary struct {
	Window              Window  `json:"period"`
	AveragePrice        float64 `json:"avgPrice"`
	CurrentDeviationPct float64 `json:"currentDeviation"`
	Volatility          float64 `json:"volatility"`
	AverageVolume       float64 `json:"volumeAvg"`
}

// PriceRange is a trailing high/low band; SpreadPct is (high-low)/low*100.
type PriceRange struct {
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	SpreadPct float64 `json:"spread"`
}

// Signal is the engine's output for one item: a value object, immutable
// after construction, with no identity beyond the item it describes.
// Percentages are plain numbers (18.5 means 18.5%), prices are GP.
type Signal struct {
	ItemID       int64   `json:"itemId"`
	ItemName     string  `json:"itemName"`
	CurrentPrice float64 `json:"currentPrice"`

	ShortTerm  TimeframeSummary `json:"shortTerm"`
	MediumTerm TimeframeSummary `json:"mediumTerm"`
	LongTerm   TimeframeSummary `json:"longTerm"`

	MaxDeviationPct       float64         `json:"maxDeviation"`
	ReversionPotentialPct float64         `json:"reversionPotential"`
	ConfidenceScore       float64         `json:"confidenceScore"`
	InvestmentGrade       InvestmentGrade `json:"investmentGrade"`

	VolatilityRisk         RiskTier `json:"volatilityRisk"`
	LiquidityScore         float64  `json:"liquidityScore"`
	EstimatedHoldingPeriod string   `json:"estimatedHoldingPeriod"`

	BotLikelihood        BotLikelihood `json:"botLikelihood"`
	SupplyStabilityScore float64       `json:"supplyStability"`

	// Structural repricing detection over recent history.
	PriceStability30d       float64        `json:"priceStability30d"`
	TrendDirection          TrendDirection `json:"trendDirection"`
	DaysSinceLastMajorShift int            `json:"daysSinceLastMajorShift"`
	PriceRange30d           PriceRange     `json:"priceRange30d"`
	Momentum                Momentum       `json:"momentum"`
	StructuralRepricingRisk RepricingRisk  `json:"structuralRepricingRisk"`

	YearlyTrendPct float64 `json:"yearlyTrend"`
	YearlyContext  string  `json:"yearlyContext"`

	SuggestedPositionSize int64  `json:"suggestedInvestment"`
	TargetSellPrice       int64  `json:"targetSellPrice"`
	StopLossPrice         int64  `json:"stopLoss"`
	Reasoning             string `json:"reasoning"`
}
