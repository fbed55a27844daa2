package usecase

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"

	"MeanRev/internal/domain/models"
	domsvc "MeanRev/internal/domain/service"
	"MeanRev/internal/service/metrics"
	"MeanRev/internal/services/analysis"
	"MeanRev/pkg/cache"
	"MeanRev/pkg/logger"
	"MeanRev/pkg/pool"
)

// SignalAnalyzer coordinates the engine for the API layer: single-item
// analysis with memoization, and batch screening with bounded fan-out.
type SignalAnalyzer struct {
	engine        domsvc.SignalEngine
	memo          cache.Service
	memoTTL       time.Duration
	logger        *logger.Logger
	workers       int
	minConfidence float64
	minPotential  float64
}

type SignalAnalyzerOption func(*SignalAnalyzer)

// WithMemoizer enables result memoization. The engine is deterministic for a
// given (series, clock) pair, so entries never go stale; the TTL only bounds
// memory.
func WithMemoizer(c cache.Service, ttl time.Duration) SignalAnalyzerOption {
	return func(uc *SignalAnalyzer) {
		uc.memo = c
		uc.memoTTL = ttl
	}
}

// WithWorkers caps concurrent analyses during screening.
func WithWorkers(n int) SignalAnalyzerOption {
	return func(uc *SignalAnalyzer) {
		if n > 0 {
			uc.workers = n
		}
	}
}

// WithScreenDefaults sets the thresholds applied when a screening request
// omits its own.
func WithScreenDefaults(minConfidence, minPotential float64) SignalAnalyzerOption {
	return func(uc *SignalAnalyzer) {
		uc.minConfidence = minConfidence
		uc.minPotential = minPotential
	}
}

func NewSignalAnalyzer(engine domsvc.SignalEngine, lgr *logger.Logger, opts ...SignalAnalyzerOption) *SignalAnalyzer {
	uc := &SignalAnalyzer{
		engine:        engine,
		logger:        lgr,
		workers:       8,
		minConfidence: 40,
		minPotential:  10,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// memoEnvelope distinguishes a memoized "no signal" from a cache miss.
type memoEnvelope struct {
	Found  bool           `json:"found"`
	Signal *models.Signal `json:"signal,omitempty"`
}

// Analyze evaluates one item as of the given clock. A nil Signal with
// Opportunity false is the normal "nothing to see" outcome.
func (uc *SignalAnalyzer) Analyze(ctx context.Context, req models.AnalyzeRequest, asOf time.Time) (*models.AnalyzeResponse, error) {
	key := memoKey(req.ItemID, req.Series, asOf)

	if uc.memo != nil {
		if raw, err := uc.memo.Get(ctx, key); err == nil {
			var env memoEnvelope
			if err := json.Unmarshal([]byte(raw), &env); err == nil {
				metrics.MemoLookups.WithLabelValues("hit").Inc()
				return &models.AnalyzeResponse{Opportunity: env.Found, Signal: env.Signal}, nil
			}
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			uc.logger.Warn("memoizer read failed", logger.Error(err))
		}
		metrics.MemoLookups.WithLabelValues("miss").Inc()
	}

	sig, err := uc.engine.AnalyzeAt(asOf, req.ItemID, req.ItemName, req.Series)
	if err != nil {
		metrics.AnalysisOutcomes.WithLabelValues("malformed").Inc()
		return nil, err
	}

	if sig != nil {
		metrics.AnalysisOutcomes.WithLabelValues("signal").Inc()
	} else {
		metrics.AnalysisOutcomes.WithLabelValues("no_signal").Inc()
	}

	if uc.memo != nil {
		data, err := json.Marshal(memoEnvelope{Found: sig != nil, Signal: sig})
		if err == nil {
			if err := uc.memo.Set(ctx, key, string(data), uc.memoTTL); err != nil {
				uc.logger.Warn("memoizer write failed", logger.Error(err))
			}
		}
	}

	return &models.AnalyzeResponse{Opportunity: sig != nil, Signal: sig}, nil
}

// Screen analyzes a batch in parallel, then filters and ranks the survivors.
// Items with malformed series are logged and skipped rather than failing the
// whole batch; the single-item endpoint exists for precise diagnostics.
func (uc *SignalAnalyzer) Screen(ctx context.Context, req models.ScreenRequest, asOf time.Time) ([]*models.Signal, error) {
	results := make([]*models.Signal, len(req.Items))

	pool.Run(ctx, uc.workers, len(req.Items), func(ctx context.Context, i int) {
		item := req.Items[i]
		resp, err := uc.Analyze(ctx, item, asOf)
		if err != nil {
			uc.logger.Warn("screening skipped item",
				logger.Int64("item_id", item.ItemID),
				logger.Error(err))
			return
		}
		if resp.Opportunity {
			results[i] = resp.Signal
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	minConfidence := uc.minConfidence
	if req.MinConfidence != nil {
		minConfidence = *req.MinConfidence
	}
	minPotential := uc.minPotential
	if req.MinPotential != nil {
		minPotential = *req.MinPotential
	}

	kept := analysis.Filter(results, minConfidence, minPotential)
	analysis.Rank(kept)
	return kept, nil
}

// memoKey fingerprints the full analysis input. The series content is hashed
// rather than embedded, so keys stay bounded regardless of history length.
func memoKey(itemID int64, series []models.PricePoint, asOf time.Time) string {
	h := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	for _, p := range series {
		put(uint64(p.Timestamp))
		put(math.Float64bits(p.AvgHighPrice))
		put(math.Float64bits(p.AvgLowPrice))
		put(uint64(p.HighVolume))
		put(uint64(p.LowVolume))
	}
	return fmt.Sprintf("signal:%d:%d:%x", itemID, asOf.Unix(), h.Sum64())
}
