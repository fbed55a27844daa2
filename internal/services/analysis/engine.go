package analysis

import (
	"time"

	domsvc "MeanRev/internal/domain/service"
)

// Engine runs the mean-reversion pipeline. It is pure and stateless: every
// call is an independent function of its inputs and the injected clock, so
// callers may fan out across items freely.
type Engine struct {
	policy Policy
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy replaces the default threshold table.
func WithPolicy(p Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithClock injects the time source used for window cutoffs. Tests pin this
// so day-based filtering is deterministic.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine with the default policy and wall clock.
func New(opts ...Option) *Engine {
	e := &Engine{policy: DefaultPolicy, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the threshold table in effect.
func (e *Engine) Policy() Policy { return e.policy }

var _ domsvc.SignalEngine = (*Engine)(nil)
