package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"MeanRev/internal/domain/models"
	"MeanRev/internal/service/metrics"
	"MeanRev/internal/service/ratelimit"
	"MeanRev/internal/usecase"
	xhttp "MeanRev/pkg/http"
	xlogger "MeanRev/pkg/logger"
	xutil "MeanRev/pkg/util"
)

// RateLimitConfig controls per-client throttling of the analysis endpoints.
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// SignalsEchoHandler exposes the analysis engine over HTTP.
type SignalsEchoHandler struct {
	logger    *xlogger.Logger
	analyzer  *usecase.SignalAnalyzer
	limiter   *ratelimit.Limiter
	rateLimit RateLimitConfig
}

func NewSignalsEchoHandler(logger *xlogger.Logger, analyzer *usecase.SignalAnalyzer, rl RateLimitConfig) *SignalsEchoHandler {
	return &SignalsEchoHandler{
		logger:    logger,
		analyzer:  analyzer,
		limiter:   ratelimit.New(),
		rateLimit: rl,
	}
}

func (h *SignalsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/signals")
	g.POST("/analyze", h.Analyze)
	g.POST("/screen", h.Screen)
	e.GET("/healthz", h.Health)
}

// Analyze evaluates a single item's price history.
func (h *SignalsEchoHandler) Analyze(c echo.Context) error {
	if !h.allow(c) {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
	}
	start := time.Now()
	defer func() {
		metrics.AnalysisLatency.WithLabelValues("analyze").Observe(time.Since(start).Seconds())
	}()

	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	asOf := xutil.ParseTimeDefault(req.AsOf, time.Now())

	res, err := h.analyzer.Analyze(c.Request().Context(), *req, asOf)
	if err != nil {
		if errors.Is(err, models.ErrMalformedSeries) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
		}
		h.logger.Error("analyze usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// Screen evaluates a batch and returns viable opportunities, ranked.
func (h *SignalsEchoHandler) Screen(c echo.Context) error {
	if !h.allow(c) {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
	}
	start := time.Now()
	defer func() {
		metrics.AnalysisLatency.WithLabelValues("screen").Observe(time.Since(start).Seconds())
	}()

	req := &models.ScreenRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	asOf := xutil.ParseTimeDefault(req.AsOf, time.Now())

	signals, err := h.analyzer.Screen(c.Request().Context(), *req, asOf)
	if err != nil {
		h.logger.Error("screen usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, signals, int64(len(signals)))
}

func (h *SignalsEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *SignalsEchoHandler) allow(c echo.Context) bool {
	if !h.rateLimit.Enabled {
		return true
	}
	return h.limiter.Allow(c.RealIP(), float64(h.rateLimit.Burst), h.rateLimit.RPS)
}
