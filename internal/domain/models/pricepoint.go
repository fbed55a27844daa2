package models

import (
	"errors"
	"fmt"
)

// ErrMalformedSeries marks input that indicates an upstream collaborator bug
// (out-of-order timestamps, negative prices or volumes). Sparse-but-valid
// series are never an error.
var ErrMalformedSeries = errors.New("malformed price series")

// PricePoint is one time bucket of an item's trade history. Timestamps are
// unix seconds; prices are in GP; a bucket may carry zero volume on both
// sides (common for thinly traded items).
type PricePoint struct {
	Timestamp    int64   `json:"timestamp"`
	AvgHighPrice float64 `json:"avgHighPrice"`
	AvgLowPrice  float64 `json:"avgLowPrice"`
	HighVolume   int64   `json:"highPriceVolume"`
	LowVolume    int64   `json:"lowPriceVolume"`
}

// Midpoint returns the bucket's reference price.
func (p PricePoint) Midpoint() float64 {
	return (p.AvgHighPrice + p.AvgLowPrice) / 2
}

// TotalVolume returns units traded in the bucket across both sides.
func (p PricePoint) TotalVolume() float64 {
	return float64(p.HighVolume + p.LowVolume)
}

// ValidateSeries rejects series a well-behaved provider could never emit.
// Gaps and duplicate timestamps are tolerated; time running backwards is not.
func ValidateSeries(series []PricePoint) error {
	var prev int64
	for i, p := range series {
		if p.Timestamp < 0 {
			return fmt.Errorf("%w: negative timestamp at index %d", ErrMalformedSeries, i)
		}
		if i > 0 && p.Timestamp < prev {
			return fmt.Errorf("%w: timestamp at index %d precedes index %d", ErrMalformedSeries, i, i-1)
		}
		if p.AvgHighPrice < 0 || p.AvgLowPrice < 0 {
			return fmt.Errorf("%w: negative price at index %d", ErrMalformedSeries, i)
		}
		if p.HighVolume < 0 || p.LowVolume < 0 {
			return fmt.Errorf("%w: negative volume at index %d", ErrMalformedSeries, i)
		}
		prev = p.Timestamp
	}
	return nil
}

// Midpoints extracts the per-bucket reference prices in series order.
func Midpoints(series []PricePoint) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = p.Midpoint()
	}
	return out
}
