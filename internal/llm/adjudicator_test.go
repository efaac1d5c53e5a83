package llm

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/cache"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/telemetry"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/worker"
)

// 1x1 transparent PNG.
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func textHint() model.Density {
	return model.Density{Matched: 2, Total: 32, Percent: 6.25, Tags: model.NewTagSet("shock_claims", "urgency")}
}

func newTestAdjudicator(p Provider, opts Options) *Adjudicator {
	return NewAdjudicator(p, Config{Model: "test-model", VisionModel: "test-vision", MaxTokens: 200, Temperature: 0.2}, opts)
}

func TestAdjudicator_Disabled(t *testing.T) {
	a := Disabled()
	if a.Enabled() || a.ProviderName() != "" {
		t.Fatal("Expected disabled adjudicator")
	}

	j := a.AdjudicateText(context.Background(), "anything", textHint())
	if j.IsScored() || j.Reason != ReasonDisabled {
		t.Errorf("Expected Unavailable(%s), got %+v", ReasonDisabled, j)
	}

	score, rationale := j.Resolve(6.25)
	if score != 6.25 || rationale != "heuristic fallback: adjudicator disabled" {
		t.Errorf("Unexpected fallback %v %q", score, rationale)
	}
}

func TestAdjudicator_TextScored(t *testing.T) {
	mock := NewMockProvider("Sure!\n```json\n{\"fake_percent\": \"85\", \"reason\": \"sensational claim\"}\n```")
	a := newTestAdjudicator(mock, Options{})

	j := a.AdjudicateText(context.Background(), "Miracle cure!", textHint())

	if !j.IsScored() {
		t.Fatalf("Expected Scored, got %+v", j)
	}
	if j.Score != 85 || j.Rationale != "sensational claim" || j.Source != "mock" {
		t.Errorf("Unexpected judgment %+v", j)
	}

	req := mock.Requests()[0]
	if req.Model != "test-model" || req.MaxTokens != 200 || req.Temperature != 0.2 {
		t.Errorf("Config not applied to request: %+v", req)
	}
	if !strings.Contains(req.Prompt, `"regex_fake_percent":6.25`) || !strings.Contains(req.Prompt, "shock_claims") {
		t.Errorf("Hint missing from prompt: %s", req.Prompt)
	}
}

func TestAdjudicator_ClampsOutOfRange(t *testing.T) {
	a := newTestAdjudicator(NewMockProvider(`{"fake_probability": 150}`), Options{})

	j := a.AdjudicateProfile(context.Background(), model.Profile{Username: "x"}, ProfileHint{Density: model.Density{Tags: model.NewTagSet()}})
	if !j.IsScored() || j.Score != 100 {
		t.Errorf("Expected clamped 100, got %+v", j)
	}
}

func TestAdjudicator_Degradation(t *testing.T) {
	tests := []struct {
		name   string
		mock   *MockProvider
		reason string
	}{
		{"not json", NewMockProvider("I think it is fake."), ReasonUnparseable},
		{"missing key", NewMockProvider(`{"probability": 40}`), ReasonMissingScore},
		{"non numeric", NewMockProvider(`{"fake_percent": "very"}`), ReasonMissingScore},
		{"NaN string", NewMockProvider(`{"fake_percent": "NaN"}`), ReasonMissingScore},
		{"Inf string", NewMockProvider(`{"fake_percent": "Inf"}`), ReasonMissingScore},
		{"negative infinity", NewMockProvider(`{"fake_percent": "-Infinity"}`), ReasonMissingScore},
		{"overflowing number", NewMockProvider(`{"fake_percent": 1e999}`), ReasonMissingScore},
		{"provider error", &MockProvider{Err: errors.New("boom")}, "mock error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := newTestAdjudicator(tt.mock, Options{}).AdjudicateText(context.Background(), "text", textHint())
			if j.IsScored() {
				t.Fatalf("Expected Unavailable, got %+v", j)
			}
			if !strings.HasPrefix(j.Reason, tt.reason) {
				t.Errorf("Expected reason %q, got %q", tt.reason, j.Reason)
			}
		})
	}
}

func TestAdjudicator_Timeout(t *testing.T) {
	a := newTestAdjudicator(&MockProvider{Text: `{"fake_percent": 1}`, Delay: time.Second}, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	j := a.AdjudicateText(ctx, "slow", textHint())
	if j.IsScored() || j.Reason != ReasonTimeout {
		t.Errorf("Expected timeout, got %+v", j)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Error("Adjudicator did not honour the deadline")
	}
}

func TestAdjudicator_RecoversPanics(t *testing.T) {
	mock := &MockProvider{Reply: func(CompletionRequest) (string, error) { panic("provider bug") }}

	j := newTestAdjudicator(mock, Options{}).AdjudicateText(context.Background(), "x", textHint())
	if j.IsScored() || !strings.Contains(j.Reason, "provider bug") {
		t.Errorf("Expected recovered panic, got %+v", j)
	}
}

func TestAdjudicator_CachesScoredOnly(t *testing.T) {
	mock := &MockProvider{Err: errors.New("down")}
	metrics := telemetry.NewProvider()
	a := newTestAdjudicator(mock, Options{Cache: cache.NewMemoryCache(time.Minute, time.Minute), Metrics: metrics})
	ctx := context.Background()

	if j := a.AdjudicateText(ctx, "same", textHint()); j.IsScored() {
		t.Fatal("Expected first call to fail")
	}

	mock.Err = nil
	mock.Text = `{"fake_percent": 40}`
	first := a.AdjudicateText(ctx, "same", textHint())
	second := a.AdjudicateText(ctx, "same", textHint())

	if !first.IsScored() || !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical scored judgments, got %+v and %+v", first, second)
	}
	if mock.Calls() != 2 {
		t.Errorf("Expected failure not cached and success cached (2 calls), got %d", mock.Calls())
	}
	if got := testutil.ToFloat64(metrics.Metrics.AdjudicationsTotal.WithLabelValues(KindText, telemetry.OutcomeCached)); got != 1 {
		t.Errorf("Expected 1 cached outcome, got %v", got)
	}
}

func TestAdjudicator_RateLimited(t *testing.T) {
	limiter := worker.NewLimiter(10, 1)
	limiter.SetRate("mock", 0.001, 1)
	a := newTestAdjudicator(NewMockProvider(`{"fake_percent": 5}`), Options{Limiter: limiter})

	if j := a.AdjudicateText(context.Background(), "one", textHint()); !j.IsScored() {
		t.Fatalf("Expected first call to pass, got %+v", j)
	}
	if j := a.AdjudicateText(context.Background(), "two", textHint()); j.Reason != ReasonRateLimited {
		t.Errorf("Expected rate limit degradation, got %+v", j)
	}
}

func TestAdjudicator_URL(t *testing.T) {
	mock := NewMockProvider(`{"malicious_probability": 91, "threat_type": "phishing", "reason": "brand impersonation"}`)
	hint := model.ThreatAssessment{
		Score:            40,
		Tags:             model.NewTagSet("typosquat_paypal"),
		RedFlags:         []string{"no_https"},
		RegisteredDomain: "paypa1.xyz",
	}

	j := newTestAdjudicator(mock, Options{}).AdjudicateURL(context.Background(), "http://paypa1.xyz/login", hint)
	if !j.IsScored() || j.Score != 91 || j.ThreatType != "phishing" {
		t.Errorf("Unexpected judgment %+v", j)
	}
	prompt := mock.Requests()[0].Prompt
	for _, want := range []string{"http://paypa1.xyz/login", "typosquat_paypal", "no_https", "paypa1.xyz"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected %q in prompt", want)
		}
	}
}

func TestAdjudicator_Image(t *testing.T) {
	mock := NewMockProvider(`{"fake_probability": 77, "verdict": "ai_generated", "reason": "smooth skin", "detected_issues": ["hands", "text"], "confidence": "high"}`)
	a := newTestAdjudicator(mock, Options{})

	j := a.AnalyzeImage(context.Background(), "data:image/png;base64,"+tinyPNG, "Flooded city today")
	if !j.IsScored() || j.Score != 77 || j.Verdict != "ai_generated" || j.Confidence != "high" || len(j.Issues) != 2 {
		t.Errorf("Unexpected judgment %+v", j)
	}

	req := mock.Requests()[0]
	if req.Model != "test-vision" {
		t.Errorf("Expected vision model, got %s", req.Model)
	}
	if !strings.HasPrefix(req.ImageDataURL, "data:image/png;base64,") || !strings.Contains(req.Prompt, "Flooded city today") {
		t.Errorf("Unexpected image request %+v", req)
	}

	if j := a.AnalyzeImage(context.Background(), "bm90IGFuIGltYWdl", ""); j.Reason != ReasonInvalidImage {
		t.Errorf("Expected invalid image, got %+v", j)
	}
}
