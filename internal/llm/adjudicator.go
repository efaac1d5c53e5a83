package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/cache"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/extract"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/logger"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/telemetry"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/worker"
)

// Adjudication kinds, used for cache keys and metrics.
const (
	KindText    = "text"
	KindURL     = "url"
	KindProfile = "profile"
	KindImage   = "image"
)

const defaultTimeout = 10 * time.Second

// Degradation reasons recorded on Unavailable judgments.
const (
	ReasonDisabled     = "adjudicator disabled"
	ReasonTimeout      = "adjudicator timeout"
	ReasonRateLimited  = "rate limit wait failed"
	ReasonUnparseable  = "reply is not JSON"
	ReasonMissingScore = "reply missing score"
	ReasonInvalidImage = "invalid image"
)

// Options carries the adjudicator's optional collaborators. Nil fields get
// no-op defaults.
type Options struct {
	Cache   cache.Cache
	Limiter *worker.Limiter
	Logger  logger.Logger
	Metrics *telemetry.Provider
}

// Adjudicator asks an LLM for a risk score per input kind. It never returns
// an error: every failure becomes an Unavailable judgment and the caller
// keeps its heuristic score.
type Adjudicator struct {
	provider Provider
	config   Config
	timeout  time.Duration
	cache    *cache.Judgments
	limiter  *worker.Limiter
	logger   logger.Logger
	metrics  *telemetry.Provider
}

// NewAdjudicator wraps provider. A nil provider yields a disabled adjudicator.
func NewAdjudicator(provider Provider, config Config, opts Options) *Adjudicator {
	a := &Adjudicator{
		provider: provider,
		config:   config,
		timeout:  time.Duration(config.Timeout) * time.Second,
		cache:    cache.NewJudgments(opts.Cache),
		limiter:  opts.Limiter,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}
	if a.timeout <= 0 {
		a.timeout = defaultTimeout
	}
	if a.limiter == nil {
		a.limiter = worker.NewLimiter(0, 1)
	}
	if a.logger == nil {
		a.logger = logger.NewNop()
	}
	return a
}

// Disabled returns an adjudicator that always answers Unavailable.
func Disabled() *Adjudicator {
	return NewAdjudicator(nil, Config{}, Options{})
}

// Enabled reports whether a provider is configured.
func (a *Adjudicator) Enabled() bool {
	return a != nil && a.provider != nil
}

// ProviderName is empty when disabled.
func (a *Adjudicator) ProviderName() string {
	if !a.Enabled() {
		return ""
	}
	return a.provider.Name()
}

// AdjudicateText scores a post. The reply must carry fake_percent.
func (a *Adjudicator) AdjudicateText(ctx context.Context, text string, hint model.Density) model.Judgment {
	return a.judge(ctx, KindText, textRequest(text, hint), func(m map[string]any) (model.Judgment, error) {
		return scoredFrom(m, keyFakePercent)
	})
}

// AdjudicateURL scores a link. The reply must carry malicious_probability;
// threat_type is optional.
func (a *Adjudicator) AdjudicateURL(ctx context.Context, rawURL string, hint model.ThreatAssessment) model.Judgment {
	return a.judge(ctx, KindURL, urlRequest(rawURL, hint), func(m map[string]any) (model.Judgment, error) {
		j, err := scoredFrom(m, keyMaliciousProbability)
		j.ThreatType = stringField(m, keyThreatType)
		return j, err
	})
}

// AdjudicateProfile scores an account. The reply must carry fake_probability.
func (a *Adjudicator) AdjudicateProfile(ctx context.Context, p model.Profile, hint ProfileHint) model.Judgment {
	return a.judge(ctx, KindProfile, profileRequest(p, hint), func(m map[string]any) (model.Judgment, error) {
		return scoredFrom(m, keyFakeProbability)
	})
}

// AnalyzeImage runs image forensics on a base64 payload or data: URL with the
// vision model. The reply must carry fake_probability.
func (a *Adjudicator) AnalyzeImage(ctx context.Context, imageB64, caption string) model.Judgment {
	if !a.Enabled() {
		return a.unavailable(KindImage, ReasonDisabled)
	}
	img, err := extract.DecodeImage(imageB64)
	if err != nil {
		return a.unavailable(KindImage, ReasonInvalidImage)
	}

	req := imageRequest(img, caption)
	req.Model = a.config.VisionModel
	return a.judge(ctx, KindImage, req, func(m map[string]any) (model.Judgment, error) {
		j, err := scoredFrom(m, keyFakeProbability)
		j.Verdict = stringField(m, keyVerdict)
		j.Issues = stringSliceField(m, keyDetectedIssues)
		j.Confidence = stringField(m, keyConfidence)
		return j, err
	})
}

func scoredFrom(m map[string]any, key string) (model.Judgment, error) {
	score, ok := numberField(m, key)
	if !ok {
		return model.Judgment{}, fmt.Errorf("%s: %s", ReasonMissingScore, key)
	}
	return model.Scored(score, stringField(m, keyReason), ""), nil
}

func (a *Adjudicator) judge(ctx context.Context, kind string, req CompletionRequest, parse func(map[string]any) (model.Judgment, error)) (j model.Judgment) {
	if !a.Enabled() {
		return a.unavailable(kind, ReasonDisabled)
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("adjudicator panic", logger.String("kind", kind), logger.Any("panic", r))
			j = a.unavailable(kind, fmt.Sprintf("panic: %v", r))
		}
	}()

	name := a.provider.Name()
	if req.Model == "" {
		req.Model = a.config.Model
	}
	req.MaxTokens = a.config.MaxTokens
	req.Temperature = a.config.Temperature

	key := cache.Key(kind, name, req.Model, req.System, req.Prompt, req.ImageDataURL)
	if cached, ok := a.cache.Lookup(key); ok {
		a.metrics.RecordAdjudication(kind, telemetry.OutcomeCached)
		return cached
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if err := a.limiter.Wait(ctx, name); err != nil {
		return a.unavailable(kind, ReasonRateLimited)
	}

	start := time.Now()
	resp, err := a.provider.Complete(ctx, req)
	a.metrics.ObserveAdjudicationDuration(name, time.Since(start))
	if err != nil {
		reason := fmt.Sprintf("%s error", name)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			reason = ReasonTimeout
		}
		a.logger.Warn("adjudicator call failed",
			logger.String("kind", kind),
			logger.String("provider", name),
			logger.Err(err),
		)
		return a.unavailable(kind, reason)
	}

	fields, err := ParseJSONResponse(resp.Text)
	if err != nil {
		a.logger.Debug("unparseable adjudicator reply", logger.String("kind", kind), logger.String("reply", resp.Text))
		return a.unavailable(kind, ReasonUnparseable)
	}

	j, err = parse(fields)
	if err != nil {
		return a.unavailable(kind, err.Error())
	}
	j.Source = name

	if err := a.cache.Store(key, j); err != nil {
		a.logger.Warn("cache write failed", logger.Err(err))
	}
	a.metrics.RecordAdjudication(kind, telemetry.OutcomeScored)
	a.logger.Debug("adjudicated",
		logger.String("kind", kind),
		logger.String("provider", name),
		logger.Float64("score", j.Score),
		logger.Duration("elapsed", time.Since(start)),
	)
	return j
}

func (a *Adjudicator) unavailable(kind, reason string) model.Judgment {
	a.metrics.RecordAdjudication(kind, telemetry.OutcomeUnavailable)
	return model.Unavailable(reason)
}
