package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/cache"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/llm"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/logger"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/models"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/pipeline"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/telemetry"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/worker"
)

// app bundles what every command needs.
type app struct {
	cfg      *model.Config
	log      logger.Logger
	metrics  *telemetry.Provider
	detector *pipeline.Detector
}

// newApp loads configuration and wires the detector.
func newApp() (*app, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{Level: cfg.Logging.Level, Development: cfg.Logging.Development})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	metrics := telemetry.NewProvider()
	adj, err := newAdjudicator(cfg, log, metrics)
	if err != nil {
		return nil, err
	}

	detector := pipeline.New(cfg, pipeline.Deps{
		Adjudicator: adj,
		Models:      models.Load(cfg.Models.Dir, log),
		Metrics:     metrics,
		Logger:      log,
	})

	return &app{cfg: cfg, log: log, metrics: metrics, detector: detector}, nil
}

// newAdjudicator returns a disabled adjudicator when no provider is set.
func newAdjudicator(cfg *model.Config, log logger.Logger, metrics *telemetry.Provider) (*llm.Adjudicator, error) {
	llmCfg := llm.ConfigFromModel(cfg.LLM)
	provider, err := llm.NewProvider(llmCfg)
	switch {
	case errors.Is(err, llm.ErrNoProvider):
		log.Info("adjudicator disabled, serving heuristic scores only")
		return llm.Disabled(), nil
	case err != nil:
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}

	log.Info("adjudicator enabled",
		logger.String("provider", provider.Name()),
		logger.String("model", cfg.LLM.Model),
		logger.Bool("cache", cfg.Cache.Enabled),
	)
	return llm.NewAdjudicator(provider, llmCfg, llm.Options{
		Cache:   cache.New(cfg.Cache),
		Limiter: newLimiter(cfg.RateLimiting),
		Logger:  log.With(logger.String("component", "adjudicator")),
		Metrics: metrics,
	}), nil
}

// newLimiter applies the default rate and any per-provider overrides.
func newLimiter(cfg model.RateLimitConfig) *worker.Limiter {
	limiter := worker.NewLimiter(cfg.RequestsPerSecond, cfg.BurstSize)
	for name, r := range cfg.Providers {
		limiter.SetRate(name, r.RequestsPerSecond, r.BurstSize)
	}
	return limiter
}

func (a *app) close() {
	_ = a.log.Sync()
}
