package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bounceSeries declines steeply for 90 points, then rises at the given slope
// for the final 30.
func bounceSeries(bounceSlope float64) []float64 {
	prices := linearPrices(90, 1500, 610)
	for i := 1; i <= 30; i++ {
		prices = append(prices, 600+bounceSlope*float64(i))
	}
	return prices
}

func TestAssessDowntrendPenaltyInsufficientHistory(t *testing.T) {
	e := testEngine()

	got := e.AssessDowntrendPenalty(dailySeries(linearPrices(50, 1000, 700), 10))
	assert.Zero(t, got.Penalty)
	assert.Equal(t, "insufficient historical data", got.Reasoning)
}

func TestAssessDowntrendPenaltyRisingSeries(t *testing.T) {
	e := testEngine()

	got := e.AssessDowntrendPenalty(dailySeries(linearPrices(120, 700, 1000), 10))
	assert.Zero(t, got.Penalty)
	assert.Equal(t, "no strong downtrend detected", got.Reasoning)
}

func TestAssessDowntrendPenaltyStructuralDecline(t *testing.T) {
	e := testEngine()

	// A clean 30% linear decline with no bounce at the end.
	got := e.AssessDowntrendPenalty(dailySeries(linearPrices(120, 1000, 700), 10))
	assert.Equal(t, 70.0, got.Penalty)
	assert.Contains(t, got.Reasoning, "structural decline")
}

func TestAssessDowntrendPenaltyStrongReversalWithSupport(t *testing.T) {
	e := testEngine()

	// Recent slope 1.5 scores a 75% reversal; the last ten points hold a
	// tight band, so the penalty is fully worked off.
	got := e.AssessDowntrendPenalty(dailySeries(bounceSeries(1.5), 10))
	assert.Equal(t, 0.0, got.Penalty)
	assert.Contains(t, got.Reasoning, "reversal signs")
}

func TestAssessDowntrendPenaltyWeakBounceStillPenalized(t *testing.T) {
	e := testEngine()

	// Slope 0.3 clears the reversal epsilon but only scores 20%, under the
	// strength gate; the decline still reads as structural.
	got := e.AssessDowntrendPenalty(dailySeries(bounceSeries(0.3), 10))
	assert.Equal(t, 70.0, got.Penalty)
	assert.Contains(t, got.Reasoning, "structural decline")
}

func TestAssessDowntrendPenaltyModerateDecline(t *testing.T) {
	e := testEngine()

	// 14% off peak: enough to flag, not enough for the full penalty.
	got := e.AssessDowntrendPenalty(dailySeries(linearPrices(200, 1000, 860), 10))
	assert.Equal(t, 20.0, got.Penalty)
	assert.Contains(t, got.Reasoning, "moderate downtrend")
}

func TestDetectTrendReversal(t *testing.T) {
	e := testEngine()

	short := e.DetectTrendReversal(dailySeries(linearPrices(30, 600, 700), 10))
	require.Equal(t, ReversalCheck{}, short, "under minimum history")

	got := e.DetectTrendReversal(dailySeries(bounceSeries(1.5), 10))
	assert.True(t, got.IsReversing)
	assert.Equal(t, 75.0, got.Strength)
	assert.True(t, got.FoundSupport)

	falling := e.DetectTrendReversal(dailySeries(linearPrices(120, 1000, 700), 10))
	assert.False(t, falling.IsReversing)
	assert.Zero(t, falling.Strength)
}
