package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"MeanRev/internal/domain/models"
)

func TestTemporalProfileFlatSeries(t *testing.T) {
	e := testEngine()

	got := e.TemporalProfile(dailySeries(flatPrices(200, 1000), 10))
	assert.Equal(t, 100.0, got.PriceStability)
	assert.Equal(t, models.TrendStable, got.TrendDirection)
	assert.Equal(t, 200, got.DaysSinceMajorShift, "no shift found, capped at data age")
	assert.Equal(t, models.MomentumFlat, got.Momentum)
	assert.Equal(t, models.PriceRange{High: 1000, Low: 1000, SpreadPct: 0}, got.Range30d)

	// Months of dead-flat pricing is the textbook repricing pattern.
	assert.Equal(t, models.RepricingVeryHigh, got.RepricingRisk)
}

func TestTemporalProfileShortSeriesDefaults(t *testing.T) {
	e := testEngine()

	got := e.TemporalProfile(dailySeries(flatPrices(2, 100), 10))
	assert.Equal(t, 50.0, got.PriceStability)
	assert.Equal(t, models.TrendStable, got.TrendDirection)
	assert.Zero(t, got.DaysSinceMajorShift)
	assert.Equal(t, models.MomentumFlat, got.Momentum)
	assert.Equal(t, models.RepricingLow, got.RepricingRisk)
}

func TestTrendDirectionFalling(t *testing.T) {
	e := testEngine()

	got := e.TemporalProfile(dailySeries(linearPrices(90, 1000, 800), 10))
	assert.Equal(t, models.TrendFalling, got.TrendDirection)

	rising := e.TemporalProfile(dailySeries(linearPrices(90, 800, 1000), 10))
	assert.Equal(t, models.TrendRising, rising.TrendDirection)
}

func TestMomentumAcceleratingDown(t *testing.T) {
	e := testEngine()

	// Week averages 100 -> 97 -> 89: the decline is speeding up.
	prices := append(flatPrices(7, 100), flatPrices(7, 97)...)
	prices = append(prices, flatPrices(7, 89)...)
	got := e.TemporalProfile(dailySeries(prices, 10))
	assert.Equal(t, models.MomentumAccelDown, got.Momentum)
}

func TestMomentumDeceleratingDown(t *testing.T) {
	e := testEngine()

	// Week averages 100 -> 92 -> 89: still falling, but fading.
	prices := append(flatPrices(7, 100), flatPrices(7, 92)...)
	prices = append(prices, flatPrices(7, 89)...)
	got := e.TemporalProfile(dailySeries(prices, 10))
	assert.Equal(t, models.MomentumDecelDown, got.Momentum)
}

func TestDaysSinceMajorShift(t *testing.T) {
	e := testEngine()

	// A 20% drop forty days ago, flat on both sides. The scan spans three
	// buckets, so the shift registers where the old level is still visible.
	prices := append(flatPrices(100, 1000), flatPrices(40, 800)...)
	got := e.TemporalProfile(dailySeries(prices, 10))
	assert.Equal(t, 37, got.DaysSinceMajorShift)
}

func TestYearlyTrend(t *testing.T) {
	pct, context := yearlyTrend(dailySeries(flatPrices(10, 100), 10), 100, testNow)
	assert.Zero(t, pct)
	assert.Equal(t, "neutral long-term trend", context)

	pct, context = yearlyTrend(dailySeries(linearPrices(300, 1200, 800), 10), 800, testNow)
	assert.InDelta(t, -33.3, pct, 0.1)
	assert.True(t, strings.HasPrefix(context, "warning:"), "got %q", context)

	pct, context = yearlyTrend(dailySeries(linearPrices(300, 800, 1200), 10), 1200, testNow)
	assert.InDelta(t, 50, pct, 0.1)
	assert.Contains(t, context, "strong yearly uptrend")
}
