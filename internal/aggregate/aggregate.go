// Package aggregate combines per-kind scores into one overall assessment.
package aggregate

import (
	"math"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/score"
)

// Component weights. They sum to 1.
const (
	TextWeight    = 0.5
	URLWeight     = 0.3
	ProfileWeight = 0.2
)

// NeutralScore stands in for a missing component and is weighted like any
// other score.
const NeutralScore = 50.0

// Flags added by Combine on top of the text flags.
const (
	FlagUnsafeURL          = "unsafe_url"
	FlagLowCredibleProfile = "low_credibility_profile"
)

// Weighted computes the clamped, unrounded weighted score. Nil text or profile
// and an empty URL list count as NeutralScore.
func Weighted(text, profile *float64, urls []float64) float64 {
	t, p, u := NeutralScore, NeutralScore, NeutralScore
	if text != nil {
		t = *text
	}
	if profile != nil {
		p = *profile
	}
	if len(urls) > 0 {
		sum := 0.0
		for _, v := range urls {
			sum += v
		}
		u = sum / float64(len(urls))
	}
	return score.Clamp(t*TextWeight + u*URLWeight + p*ProfileWeight)
}

// Combine builds the /analyze-complete result. The score is rounded to two
// decimals.
func Combine(text *model.TextAnalysis, urls []model.URLAnalysis, profile *model.ProfileAnalysis) model.CombinedResult {
	components := model.Components{
		Text:    text,
		URLs:    make([]float64, 0, len(urls)),
		Profile: profile,
	}
	if components.Text == nil {
		components.Text = &model.TextAnalysis{Score: NeutralScore, Flags: []string{}}
	}
	if components.Profile == nil {
		components.Profile = &model.ProfileAnalysis{Score: NeutralScore, IsCredible: score.IsCredible(NeutralScore)}
	}

	flags := append([]string{}, components.Text.Flags...)
	unsafe := false
	for _, u := range urls {
		components.URLs = append(components.URLs, u.Score)
		if !u.IsSafe {
			unsafe = true
		}
	}
	if unsafe {
		flags = append(flags, FlagUnsafeURL)
	}
	if profile != nil && !profile.IsCredible {
		flags = append(flags, FlagLowCredibleProfile)
	}

	combined := score.Round2(Weighted(&components.Text.Score, &components.Profile.Score, components.URLs))

	return model.CombinedResult{
		CombinedScore:  combined,
		TrustLevel:     score.TrustLevel(combined),
		Components:     components,
		Flags:          flags,
		Recommendation: score.Recommend(combined),
	}
}

// Verdict weighs risk scores for the classify-all path and labels the result
// with the verdict scheme. Confidence is the score rounded to an integer.
func Verdict(text, profile *float64, urls []float64) model.OverallVerdict {
	risk := math.Round(Weighted(text, profile, urls))
	return model.OverallVerdict{
		Classification: score.VerdictLabel(risk),
		Confidence:     int(risk),
	}
}
