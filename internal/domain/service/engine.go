package service

import (
	"time"

	"MeanRev/internal/domain/models"
)

// SignalEngine evaluates one item's price history for a mean-reversion
// opportunity. A (nil, nil) return means "no signal": the series was too
// sparse or the item is not meaningfully undervalued. Errors are reserved
// for malformed input.
type SignalEngine interface {
	Analyze(itemID int64, itemName string, series []models.PricePoint) (*models.Signal, error)

	// AnalyzeAt runs the same pipeline with an explicit clock, so windowing
	// is reproducible against historical snapshots.
	AnalyzeAt(now time.Time, itemID int64, itemName string, series []models.PricePoint) (*models.Signal, error)
}
