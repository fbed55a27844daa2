package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MeanRev/internal/domain/models"
	domsvc "MeanRev/internal/domain/service"
	"MeanRev/internal/services/analysis"
	"MeanRev/pkg/cache"
	"MeanRev/pkg/logger"
)

var analyzeNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func threshold(v float64) *float64 { return &v }

type countingEngine struct {
	inner domsvc.SignalEngine
	calls int32
}

func (c *countingEngine) Analyze(itemID int64, itemName string, series []models.PricePoint) (*models.Signal, error) {
	atomic.AddInt32(&c.calls, 1)
	return c.inner.Analyze(itemID, itemName, series)
}

func (c *countingEngine) AnalyzeAt(now time.Time, itemID int64, itemName string, series []models.PricePoint) (*models.Signal, error) {
	atomic.AddInt32(&c.calls, 1)
	return c.inner.AnalyzeAt(now, itemID, itemName, series)
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	lgr, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return lgr
}

// undervaluedSeries is a year at 1000 followed by a month at 750.
func undervaluedSeries() []models.PricePoint {
	points := make([]models.PricePoint, 400)
	start := analyzeNow.Unix() - 399*86400
	for i := range points {
		price := 1000.0
		if i >= 370 {
			price = 750
		}
		points[i] = models.PricePoint{
			Timestamp:    start + int64(i)*86400,
			AvgHighPrice: price,
			AvgLowPrice:  price,
			HighVolume:   3000,
			LowVolume:    3000,
		}
	}
	return points
}

func flatSeries(n int, price float64) []models.PricePoint {
	points := make([]models.PricePoint, n)
	start := analyzeNow.Unix() - int64(n-1)*86400
	for i := range points {
		points[i] = models.PricePoint{
			Timestamp:    start + int64(i)*86400,
			AvgHighPrice: price,
			AvgLowPrice:  price,
			HighVolume:   100,
			LowVolume:    100,
		}
	}
	return points
}

func TestAnalyzeMemoizesResults(t *testing.T) {
	engine := &countingEngine{inner: analysis.New()}
	uc := NewSignalAnalyzer(engine, testLogger(t),
		WithMemoizer(cache.NewMemoryCache(), time.Minute))

	req := models.AnalyzeRequest{ItemID: 42, ItemName: "Yew logs", Series: undervaluedSeries()}

	first, err := uc.Analyze(context.Background(), req, analyzeNow)
	require.NoError(t, err)
	require.True(t, first.Opportunity)

	second, err := uc.Analyze(context.Background(), req, analyzeNow)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&engine.calls), "second call must hit the memoizer")

	// A different clock is a different analysis.
	_, err = uc.Analyze(context.Background(), req, analyzeNow.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&engine.calls))
}

func TestAnalyzeWithoutMemoizer(t *testing.T) {
	engine := &countingEngine{inner: analysis.New()}
	uc := NewSignalAnalyzer(engine, testLogger(t))

	req := models.AnalyzeRequest{ItemID: 42, ItemName: "Yew logs", Series: undervaluedSeries()}
	for i := 0; i < 2; i++ {
		_, err := uc.Analyze(context.Background(), req, analyzeNow)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&engine.calls))
}

func TestAnalyzeNoOpportunity(t *testing.T) {
	uc := NewSignalAnalyzer(analysis.New(), testLogger(t))

	got, err := uc.Analyze(context.Background(),
		models.AnalyzeRequest{ItemID: 2, ItemName: "Cannonball", Series: flatSeries(100, 180)}, analyzeNow)
	require.NoError(t, err)
	assert.False(t, got.Opportunity)
	assert.Nil(t, got.Signal)
}

func TestAnalyzeMalformedSeries(t *testing.T) {
	uc := NewSignalAnalyzer(analysis.New(), testLogger(t))

	series := flatSeries(10, 100)
	series[5].Timestamp = series[4].Timestamp - 1
	_, err := uc.Analyze(context.Background(),
		models.AnalyzeRequest{ItemID: 3, ItemName: "Rune ore", Series: series}, analyzeNow)
	require.ErrorIs(t, err, models.ErrMalformedSeries)
}

func TestScreenSkipsMalformedAndFilters(t *testing.T) {
	uc := NewSignalAnalyzer(analysis.New(), testLogger(t), WithWorkers(4))

	malformed := flatSeries(10, 100)
	malformed[5].Timestamp = malformed[4].Timestamp - 1

	req := models.ScreenRequest{
		Items: []models.AnalyzeRequest{
			{ItemID: 1, ItemName: "Yew logs", Series: undervaluedSeries()},
			{ItemID: 2, ItemName: "Cannonball", Series: flatSeries(100, 180)},
			{ItemID: 3, ItemName: "Rune ore", Series: malformed},
		},
		MinConfidence: threshold(40),
		MinPotential:  threshold(10),
	}

	got, err := uc.Screen(context.Background(), req, analyzeNow)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ItemID)
}

func TestScreenHonorsThresholds(t *testing.T) {
	uc := NewSignalAnalyzer(analysis.New(), testLogger(t))

	req := models.ScreenRequest{
		Items: []models.AnalyzeRequest{
			{ItemID: 1, ItemName: "Yew logs", Series: undervaluedSeries()},
		},
		MinConfidence: threshold(90), // the item scores 58
		MinPotential:  threshold(10),
	}
	got, err := uc.Screen(context.Background(), req, analyzeNow)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScreenFallsBackToConfiguredDefaults(t *testing.T) {
	items := []models.AnalyzeRequest{
		{ItemID: 1, ItemName: "Yew logs", Series: undervaluedSeries()},
	}

	// No thresholds on the request: the configured defaults govern.
	strict := NewSignalAnalyzer(analysis.New(), testLogger(t), WithScreenDefaults(90, 10))
	got, err := strict.Screen(context.Background(), models.ScreenRequest{Items: items}, analyzeNow)
	require.NoError(t, err)
	assert.Empty(t, got, "configured minimum confidence of 90 must reject a 58 score")

	lenient := NewSignalAnalyzer(analysis.New(), testLogger(t), WithScreenDefaults(40, 10))
	got, err = lenient.Screen(context.Background(), models.ScreenRequest{Items: items}, analyzeNow)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Explicit request thresholds override the configured defaults.
	req := models.ScreenRequest{Items: items, MinConfidence: threshold(40), MinPotential: threshold(10)}
	got, err = strict.Screen(context.Background(), req, analyzeNow)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
