package models

// Requests for the signals HTTP endpoints. Defined in domain for consistency and reuse.

// AnalyzeRequest asks for a single item analysis. The caller supplies the
// full price history; this service never fetches market data itself. AsOf
// optionally pins the analysis clock (RFC3339 or unix seconds) so replays
// against historical snapshots are deterministic.
type AnalyzeRequest struct {
	ItemID   int64        `json:"itemId" validate:"required,gt=0"`
	ItemName string       `json:"itemName" validate:"required,max=128"`
	Series   []PricePoint `json:"series" validate:"required"`
	AsOf     string       `json:"asOf,omitempty"`
}

// ScreenRequest analyzes a batch of items and returns the viable
// opportunities, filtered and ranked. Omitted thresholds fall back to the
// server's configured screening defaults; an explicit zero disables that
// filter for the request.
type ScreenRequest struct {
	Items         []AnalyzeRequest `json:"items" validate:"required,min=1,max=500,dive"`
	MinConfidence *float64         `json:"minConfidence,omitempty" validate:"omitempty,gte=0,lte=100"`
	MinPotential  *float64         `json:"minPotential,omitempty" validate:"omitempty,gte=0"`
	AsOf          string           `json:"asOf,omitempty"`
}

// AnalyzeResponse wraps a single analysis outcome. Opportunity is false when
// the engine declined to signal (insufficient data or no meaningful
// undervaluation); that is a normal result, not an error.
type AnalyzeResponse struct {
	Opportunity bool    `json:"opportunity"`
	Signal      *Signal `json:"signal,omitempty"`
}
