package analysis

import (
	"math"
	"testing"

	"MeanRev/internal/domain/models"
)

func TestAssessSupplyPatternShortHistory(t *testing.T) {
	e := testEngine()

	got := e.AssessSupplyPattern(dailySeries(flatPrices(10, 100), 10))
	if got.Likelihood != models.BotLow || got.Stability != 50 {
		t.Fatalf("expected neutral default, got %+v", got)
	}
}

func TestAssessSupplyPatternFlatIsVeryHigh(t *testing.T) {
	e := testEngine()

	got := e.AssessSupplyPattern(dailySeries(flatPrices(40, 500), 10))
	if got.Likelihood != models.BotVeryHigh {
		t.Fatalf("expected very high, got %v", got.Likelihood)
	}
	if got.Stability != 100 {
		t.Fatalf("expected stability 100, got %v", got.Stability)
	}
}

func TestAssessSupplyPatternModerateDispersion(t *testing.T) {
	e := testEngine()

	// Alternating 100/140: mean 120, stddev 20, CV ~16.7% -> medium tier.
	prices := make([]float64, 30)
	for i := range prices {
		if i%2 == 0 {
			prices[i] = 100
		} else {
			prices[i] = 140
		}
	}
	got := e.AssessSupplyPattern(dailySeries(prices, 10))
	if got.Likelihood != models.BotMedium {
		t.Fatalf("expected medium, got %v", got.Likelihood)
	}
	if math.Abs(got.Stability-66.666) > 0.01 {
		t.Fatalf("expected stability ~66.67, got %v", got.Stability)
	}
}

func TestAssessSupplyPatternWideDispersion(t *testing.T) {
	e := testEngine()

	// Alternating 100/300: CV 50% -> organic trading, stability clamps to 0.
	prices := make([]float64, 30)
	for i := range prices {
		if i%2 == 0 {
			prices[i] = 100
		} else {
			prices[i] = 300
		}
	}
	got := e.AssessSupplyPattern(dailySeries(prices, 10))
	if got.Likelihood != models.BotLow {
		t.Fatalf("expected low, got %v", got.Likelihood)
	}
	if got.Stability != 0 {
		t.Fatalf("expected stability 0, got %v", got.Stability)
	}
}
