package di

import (
	"fmt"

	"MeanRev/internal/handler/api"
	"MeanRev/internal/service/metrics"
	"MeanRev/internal/services/analysis"
	"MeanRev/internal/usecase"
	"MeanRev/pkg/cache"
	"MeanRev/pkg/config"
	xhttp "MeanRev/pkg/http"
	applogger "MeanRev/pkg/logger"
	"MeanRev/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideEngine creates the analysis engine with the production thresholds.
func ProvideEngine(cfg *config.Config) *analysis.Engine {
	if cfg.Metrics.Enabled {
		metrics.Register()
	}
	return analysis.New()
}

// ProvideMemoizer builds the memoization backend, or nil when disabled.
func ProvideMemoizer(cfg *config.Config) (cache.Service, error) {
	if !cfg.Memoizer.Enabled {
		return nil, nil
	}

	switch cfg.Memoizer.Backend {
	case "memory":
		return cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Memoizer.MaxEntries)), nil
	case "redis":
		return newRedisCache(cfg)
	case "layered":
		rc, err := newRedisCache(cfg)
		if err != nil {
			return nil, err
		}
		return cache.NewLayeredCache(rc, cache.WithLayeredMemorySize(cfg.Memoizer.MaxEntries)), nil
	default:
		return nil, fmt.Errorf("unknown memoizer backend: %s", cfg.Memoizer.Backend)
	}
}

func newRedisCache(cfg *config.Config) (*cache.RedisCache, error) {
	return cache.NewRedisCache(
		cache.WithRedisHost(cfg.Memoizer.Redis.Host),
		cache.WithRedisPort(cfg.Memoizer.Redis.Port),
		cache.WithRedisPassword(cfg.Memoizer.Redis.Password),
		cache.WithRedisDB(cfg.Memoizer.Redis.DB),
		cache.WithRedisPrefix(cfg.Memoizer.Redis.Prefix),
	)
}

// ProvideAnalyzer creates the signal analyzer use case.
func ProvideAnalyzer(cfg *config.Config, engine *analysis.Engine, memo cache.Service, lgr *applogger.Logger) *usecase.SignalAnalyzer {
	opts := []usecase.SignalAnalyzerOption{
		usecase.WithWorkers(cfg.Screening.Workers),
		usecase.WithScreenDefaults(cfg.Screening.MinConfidence, cfg.Screening.MinPotential),
	}
	if memo != nil {
		opts = append(opts, usecase.WithMemoizer(memo, cfg.Memoizer.TTL))
	}
	return usecase.NewSignalAnalyzer(engine, lgr, opts...)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(cfg *config.Config, analyzer *usecase.SignalAnalyzer, lgr *applogger.Logger) xhttp.Handler {
	return api.NewSignalsEchoHandler(lgr, analyzer, api.RateLimitConfig{
		Enabled: cfg.RateLimit.Enabled,
		RPS:     cfg.RateLimit.RPS,
		Burst:   cfg.RateLimit.Burst,
	})
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, lgr *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, lgr, handler)
}
