package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
)

func ptr(v float64) *float64 { return &v }

func TestCombine_EmptyIsNeutral(t *testing.T) {
	result := Combine(nil, nil, nil)

	assert.Equal(t, 50.0, result.CombinedScore)
	assert.Equal(t, model.TrustMedium, result.TrustLevel)
	assert.Equal(t, model.RecommendVerify, result.Recommendation)
	assert.Equal(t, 50.0, result.Components.Text.Score)
	assert.Equal(t, 50.0, result.Components.Profile.Score)
	assert.Empty(t, result.Components.URLs)
	assert.Empty(t, result.Flags)
}

func TestCombine_WeightsAndRounding(t *testing.T) {
	text := &model.TextAnalysis{Score: 33, Flags: []string{"clickbait_patterns"}}
	urls := []model.URLAnalysis{{Score: 95, IsSafe: true}, {Score: 10, IsSafe: false}}
	profile := &model.ProfileAnalysis{Score: 47, IsCredible: false}

	result := Combine(text, urls, profile)

	// 33*0.5 + 52.5*0.3 + 47*0.2 = 16.5 + 15.75 + 9.4
	assert.Equal(t, 41.65, result.CombinedScore)
	assert.Equal(t, model.TrustMedium, result.TrustLevel)
	assert.Equal(t, []float64{95, 10}, result.Components.URLs)
	assert.Equal(t, []string{"clickbait_patterns", FlagUnsafeURL, FlagLowCredibleProfile}, result.Flags)
	assert.Equal(t, []string{"clickbait_patterns"}, text.Flags, "input flags must not be mutated")
}

func TestCombine_MissingComponentsStillWeighted(t *testing.T) {
	result := Combine(&model.TextAnalysis{Score: 100, Flags: []string{}}, nil, nil)

	// 100*0.5 + 50*0.3 + 50*0.2
	assert.Equal(t, 75.0, result.CombinedScore)
	assert.Equal(t, model.TrustHigh, result.TrustLevel)
	assert.Equal(t, model.RecommendSafe, result.Recommendation)
}

func TestWeighted_Clamps(t *testing.T) {
	assert.Equal(t, 100.0, Weighted(ptr(500), ptr(500), []float64{500}))
	assert.Equal(t, 0.0, Weighted(ptr(-10), ptr(-10), []float64{-10}))
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		name    string
		text    *float64
		profile *float64
		urls    []float64
		want    model.OverallVerdict
	}{
		{"all neutral", nil, nil, nil, model.OverallVerdict{Classification: model.VerdictSuspicious, Confidence: 50}},
		{"fake text", ptr(100), ptr(80), []float64{90}, model.OverallVerdict{Classification: model.VerdictFake, Confidence: 93}},
		{"rounds to integer", ptr(10), ptr(0), []float64{1}, model.OverallVerdict{Classification: model.VerdictReal, Confidence: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Verdict(tt.text, tt.profile, tt.urls))
		})
	}
}
