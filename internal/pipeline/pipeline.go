// Package pipeline wires extractors, scorers, the adjudicator and the
// aggregator into one detector shared by the HTTP server and the CLI.
package pipeline

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/aggregate"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/extract"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/llm"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/logger"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/models"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/score"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/telemetry"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/worker"
)

// Analysis kinds recorded in metrics.
const (
	KindText        = "text"
	KindURL         = "url"
	KindProfile     = "profile"
	KindComplete    = "complete"
	KindClassifyAll = "classify_all"
)

// SourceHeuristic marks a component verdict that did not come from a provider.
const SourceHeuristic = "heuristic"

// Reasons attached to components that had nothing to judge.
const (
	reasonNoInput      = "no input"
	reasonImageUnknown = "image could not be analyzed"
)

// Deps are the detector's collaborators. Every field is optional.
type Deps struct {
	Adjudicator *llm.Adjudicator
	Models      *models.Registry
	Metrics     *telemetry.Provider
	Logger      logger.Logger
}

// Detector runs every analysis. It holds no per-request state and is safe for
// concurrent use.
type Detector struct {
	text    *extract.TextExtractor
	url     *extract.URLExtractor
	profile *extract.ProfileExtractor
	scorer  *score.Scorer

	adjudicator *llm.Adjudicator
	models      *models.Registry
	metrics     *telemetry.Provider
	logger      logger.Logger
	workers     int
}

// New builds a detector from configuration and injected dependencies.
func New(cfg *model.Config, deps Deps) *Detector {
	d := &Detector{
		text:        extract.NewTextExtractor(),
		url:         extract.NewURLExtractor(),
		profile:     extract.NewProfileExtractor(),
		scorer:      score.NewScorer(),
		adjudicator: deps.Adjudicator,
		models:      deps.Models,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
		workers:     cfg.Concurrency.Workers,
	}
	if d.adjudicator == nil {
		d.adjudicator = llm.Disabled()
	}
	if d.models == nil {
		d.models = models.NewRegistry(nil)
	}
	if d.logger == nil {
		d.logger = logger.NewNop()
	}
	if d.workers <= 0 {
		d.workers = 4
	}
	return d
}

// AnalyzeText scores a post on the credibility scale. Only an empty string is
// rejected; whitespace is scored like any other text.
func (d *Detector) AnalyzeText(text string) (model.TextAnalysis, error) {
	if text == "" {
		return model.TextAnalysis{}, fmt.Errorf("text is required: %w", model.ErrInvalidInput)
	}
	a := d.scorer.Text(d.text.Extract(text))
	d.metrics.RecordAnalysis(KindText, a.Score)
	return a, nil
}

// AnalyzeURL scores a link with the trust rules and attaches the threat view.
func (d *Detector) AnalyzeURL(rawURL string) (model.URLAnalysis, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return model.URLAnalysis{}, fmt.Errorf("url is required: %w", model.ErrInvalidInput)
	}
	a := d.analyzeURL(rawURL)
	d.metrics.RecordAnalysis(KindURL, a.Score)
	return a, nil
}

func (d *Detector) analyzeURL(rawURL string) model.URLAnalysis {
	a := d.scorer.URL(d.url.Extract(rawURL))
	threat := d.threat(rawURL)
	a.Threat = &threat
	return a
}

func (d *Detector) threat(rawURL string) model.ThreatAssessment {
	return d.scorer.Threat(rawURL, d.url.ThreatFeatures(rawURL))
}

// AnalyzeProfile scores an account. Only a profile sent with no keys is
// rejected; zero-valued fields are scored.
func (d *Detector) AnalyzeProfile(p model.Profile) (model.ProfileAnalysis, error) {
	if p.IsZero() {
		return model.ProfileAnalysis{}, fmt.Errorf("profile is required: %w", model.ErrInvalidInput)
	}
	a := d.scorer.Profile(d.profile.Extract(p))
	d.metrics.RecordAnalysis(KindProfile, a.Score)
	return a, nil
}

// CompleteRequest is the input of AnalyzeComplete. Every field is optional.
type CompleteRequest struct {
	Text    string
	URLs    []string
	Profile *model.Profile
}

// AnalyzeComplete scores whatever was sent and combines it. Missing parts
// count as neutral.
func (d *Detector) AnalyzeComplete(req CompleteRequest) model.CombinedResult {
	var text *model.TextAnalysis
	if req.Text != "" {
		a := d.scorer.Text(d.text.Extract(req.Text))
		text = &a
	}

	urls := make([]model.URLAnalysis, 0, len(req.URLs))
	for _, u := range cleanURLs(req.URLs) {
		urls = append(urls, d.scorer.URL(d.url.Extract(u)))
	}

	var profile *model.ProfileAnalysis
	if req.Profile != nil && !req.Profile.IsZero() {
		a := d.scorer.Profile(d.profile.Extract(*req.Profile))
		profile = &a
	}

	result := aggregate.Combine(text, urls, profile)
	d.metrics.RecordAnalysis(KindComplete, result.CombinedScore)
	return result
}

// ClassifyRequest is the input of ClassifyAll.
type ClassifyRequest struct {
	Text     string
	URLs     []string
	Profile  *model.Profile
	ImageB64 string
	Caption  string
}

// ClassifyAll judges each component on the risk scale, consulting the
// adjudicator and falling back to the heuristics, then labels the weighted
// result with the verdict scheme. Components run concurrently and URLs fan
// out on the worker pool.
func (d *Detector) ClassifyAll(ctx context.Context, req ClassifyRequest) model.UnifiedVerdict {
	var (
		out       model.UnifiedVerdict
		textRisk  *float64
		profRisk  *float64
		urlScores []float64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if req.Text == "" {
			out.Tweet = neutralComponent()
			return nil
		}
		var risk float64
		out.Tweet, risk = d.classifyText(gctx, req.Text)
		textRisk = &risk
		return nil
	})

	g.Go(func() error {
		if req.Profile == nil || req.Profile.IsZero() {
			out.Profile = neutralComponent()
			return nil
		}
		var risk float64
		out.Profile, risk = d.classifyProfile(gctx, *req.Profile)
		profRisk = &risk
		return nil
	})

	g.Go(func() error {
		out.URLs, urlScores = d.classifyURLs(gctx, cleanURLs(req.URLs))
		return nil
	})

	if req.ImageB64 != "" {
		g.Go(func() error {
			img := d.classifyImage(gctx, req.ImageB64, req.Caption)
			out.Image = &img
			return nil
		})
	}

	_ = g.Wait()

	out.Overall = aggregate.Verdict(textRisk, profRisk, urlScores)
	d.metrics.RecordAnalysis(KindClassifyAll, float64(out.Overall.Confidence))
	d.logger.Debug("classified",
		logger.String("overall", string(out.Overall.Classification)),
		logger.Int("confidence", out.Overall.Confidence),
		logger.Int("urls", len(out.URLs)),
		logger.Bool("image", out.Image != nil),
	)
	return out
}

// ClassifyURL judges one link. It backs the batch command.
func (d *Detector) ClassifyURL(ctx context.Context, rawURL string) (model.URLVerdict, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return model.URLVerdict{}, fmt.Errorf("url is required: %w", model.ErrInvalidInput)
	}
	v, _ := d.classifyURL(ctx, rawURL)
	return v, nil
}

func (d *Detector) classifyText(ctx context.Context, text string) (model.ComponentVerdict, float64) {
	hint := d.scorer.TextDensity(text)
	j := d.adjudicator.AdjudicateText(ctx, text, hint)
	return component(j, hint.Percent, hint.Tags.Slice())
}

func (d *Detector) classifyProfile(ctx context.Context, p model.Profile) (model.ComponentVerdict, float64) {
	hint := llm.ProfileHint{
		Density:       d.scorer.ProfileDensity(p),
		BehaviorFlags: d.profile.BehaviorFlags(p),
	}
	j := d.adjudicator.AdjudicateProfile(ctx, p, hint)
	return component(j, hint.Density.Percent, hint.Density.Tags.Slice())
}

type scoredURL struct {
	verdict model.URLVerdict
	risk    float64
}

func (d *Detector) classifyURLs(ctx context.Context, urls []string) ([]model.URLVerdict, []float64) {
	results, errs := worker.Map(ctx, d.workers, len(urls), func(ctx context.Context, i int) (scoredURL, error) {
		v, risk := d.classifyURL(ctx, urls[i])
		return scoredURL{v, risk}, nil
	})

	verdicts := make([]model.URLVerdict, len(urls))
	risks := make([]float64, len(urls))
	for i, r := range results {
		// Slots the pool never reached score as neutral.
		if errs[i] != nil {
			r = scoredURL{model.URLVerdict{URL: urls[i], ComponentVerdict: neutralComponent()}, aggregate.NeutralScore}
		}
		verdicts[i], risks[i] = r.verdict, r.risk
	}
	return verdicts, risks
}

func (d *Detector) classifyURL(ctx context.Context, rawURL string) (model.URLVerdict, float64) {
	threat := d.threat(rawURL)
	j := d.adjudicator.AdjudicateURL(ctx, rawURL, threat)
	c, risk := component(j, threat.Score, threat.Tags.Slice())
	return model.URLVerdict{
		URL:              rawURL,
		ComponentVerdict: c,
		ThreatType:       j.ThreatType,
		RedFlags:         threat.RedFlags,
	}, risk
}

// classifyImage tries the vision adjudicator, then the image model, and
// finally reports UNKNOWN at a neutral 50.
func (d *Detector) classifyImage(ctx context.Context, imageB64, caption string) model.ImageVerdict {
	j := d.adjudicator.AnalyzeImage(ctx, imageB64, caption)
	if j.IsScored() {
		return model.ImageVerdict{
			Classification:  score.VerdictLabel(j.Score),
			FakeProbability: int(math.Round(j.Score)),
			Verdict:         j.Verdict,
			Reason:          j.Rationale,
			DetectedIssues:  j.Issues,
			Confidence:      j.Confidence,
			Source:          j.Source,
		}
	}

	risk, err := d.imageModelScore(imageB64)
	if err == nil {
		return model.ImageVerdict{
			Classification:  score.VerdictLabel(risk),
			FakeProbability: int(math.Round(risk)),
			Reason:          "image model",
			Source:          models.SlotImage,
		}
	}
	d.logger.Debug("image model skipped", logger.Err(err))

	reason := reasonImageUnknown
	if j.Reason != "" {
		reason = fmt.Sprintf("%s: %s", reasonImageUnknown, j.Reason)
	}
	return model.ImageVerdict{
		Classification:  model.VerdictUnknown,
		FakeProbability: int(aggregate.NeutralScore),
		Reason:          reason,
		Source:          SourceHeuristic,
	}
}

func (d *Detector) imageModelScore(imageB64 string) (float64, error) {
	if _, ok := d.models.Get(models.SlotImage); !ok {
		return 0, models.ErrUnavailable
	}
	img, err := extract.DecodeImage(imageB64)
	if err != nil {
		return 0, err
	}
	f, err := extract.ImageFeatures(img)
	if err != nil {
		return 0, err
	}
	risk, err := d.models.Predict(models.SlotImage, f.Map())
	if err != nil {
		return 0, err
	}
	return score.Clamp(risk), nil
}

// component labels a judgment, falling back to the heuristic risk. The
// unrounded risk is returned for weighting.
func component(j model.Judgment, heuristic float64, tags []string) (model.ComponentVerdict, float64) {
	risk, reason := j.Resolve(heuristic)
	source := j.Source
	if !j.IsScored() {
		source = SourceHeuristic
	}
	return model.ComponentVerdict{
		Classification: score.VerdictLabel(risk),
		Probability:    int(math.Round(risk)),
		Reason:         reason,
		Source:         source,
		Tags:           tags,
	}, risk
}

func neutralComponent() model.ComponentVerdict {
	return model.ComponentVerdict{
		Classification: score.VerdictLabel(aggregate.NeutralScore),
		Probability:    int(aggregate.NeutralScore),
		Reason:         reasonNoInput,
		Source:         SourceHeuristic,
	}
}

// cleanURLs drops blank entries and trims the rest.
func cleanURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
