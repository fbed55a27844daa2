package analysis

import (
	"math"
	"sort"

	"MeanRev/internal/domain/models"
)

// potentialTiePct is the band within which two reversion potentials are
// considered equal, so confidence decides instead of noise.
const potentialTiePct = 5

// Rank orders signals best-first in place: grade, then reversion potential
// when it differs meaningfully, then confidence. The sort is stable so equal
// signals keep their input order.
func Rank(signals []*models.Signal) {
	sort.SliceStable(signals, func(i, j int) bool {
		a, b := signals[i], signals[j]
		if ra, rb := a.InvestmentGrade.Rank(), b.InvestmentGrade.Rank(); ra != rb {
			return ra > rb
		}
		if math.Abs(a.ReversionPotentialPct-b.ReversionPotentialPct) > potentialTiePct {
			return a.ReversionPotentialPct > b.ReversionPotentialPct
		}
		return a.ConfidenceScore > b.ConfidenceScore
	})
}

// Filter drops signals below the caller's confidence and potential floors.
// Nil entries and signals with no real discount are dropped regardless.
func Filter(signals []*models.Signal, minConfidence, minPotential float64) []*models.Signal {
	kept := make([]*models.Signal, 0, len(signals))
	for _, s := range signals {
		if s == nil {
			continue
		}
		if s.ConfidenceScore < minConfidence {
			continue
		}
		if s.MaxDeviationPct < 1 {
			continue
		}
		if s.ReversionPotentialPct < minPotential {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}
