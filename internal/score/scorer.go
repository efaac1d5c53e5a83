package score

import (
	"math"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/extract"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/patterns"
)

// Base scores before adjustments.
const (
	TextBase    = 70.0
	URLBase     = 60.0
	ProfileBase = 50.0
)

// Text flags.
const (
	FlagUrgency        = "urgency_language"
	FlagClickbait      = "clickbait_patterns"
	FlagConspiracy     = "conspiracy_rhetoric"
	FlagUnverified     = "unverified_claims"
	FlagEmotional      = "emotional_manipulation"
	FlagExcessiveCaps  = "excessive_capitalization"
	FlagExcessivePunct = "excessive_punctuation"
	capsRatioThreshold = 0.5
	exclamationCeiling = 2
	longTextThreshold  = 100
)

// textPenalty is one scored text category: its per-match penalty and flag.
type textPenalty struct {
	category string
	weight   float64
	flag     string
}

var textPenalties = []textPenalty{
	{patterns.TextUrgency, 5, FlagUrgency},
	{patterns.TextClickbait, 8, FlagClickbait},
	{patterns.TextConspiracy, 10, FlagConspiracy},
	{patterns.TextUnverified, 3, FlagUnverified},
	{patterns.TextEmotional, 4, FlagEmotional},
}

// Scorer maps feature sets to bounded scores. It holds no state.
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Text scores post text features. Adjustments are summed and the total is
// clamped once at the end.
func (s *Scorer) Text(f *model.Features) model.TextAnalysis {
	total := TextBase
	flags := []string{}

	// 1. Per-match category penalties
	for _, p := range textPenalties {
		count := f.Get(extract.CountFeature(p.category))
		if count > 0 {
			total -= p.weight * count
			flags = append(flags, p.flag)
		}
	}

	// 2. Shouting
	if f.Get(extract.FeatureCapsRatio) > capsRatioThreshold {
		total -= 10
		flags = append(flags, FlagExcessiveCaps)
	}

	// 3. Exclamation marks: the full count is the multiplier
	if exclamations := f.Get(extract.FeatureExclamationCount); exclamations > exclamationCeiling {
		total -= 2 * exclamations
		flags = append(flags, FlagExcessivePunct)
	}

	// 4. Substance bonuses
	if f.Get(extract.FeatureTextLength) > longTextThreshold {
		total += 5
	}
	if f.Get(extract.FeatureURLCount) > 0 {
		total += 3
	}

	return model.TextAnalysis{
		Score:    Clamp(total),
		Features: f,
		Flags:    flags,
	}
}

// URL scores trust-variant URL features.
func (s *Scorer) URL(f *model.Features) model.URLAnalysis {
	total := URLBase

	if f.Bool(extract.FeatureHasHTTPS) {
		total += 10
	}
	if f.Bool(extract.FeatureIsTrustedDomain) {
		total += 25
	}
	if f.Bool(extract.FeatureSuspiciousTLD) {
		total -= 20
	}
	if f.Bool(extract.FeatureHasIPAddress) {
		total -= 25
	}
	if f.Get(extract.FeatureSubdomainCount) > 2 {
		total -= 10
	}
	if f.Get(extract.FeatureSpecialCharCount) > 5 {
		total -= 10
	}

	score := Clamp(total)
	return model.URLAnalysis{
		Score:    score,
		Features: f,
		IsSafe:   IsSafe(score),
	}
}

// Profile scores account features.
func (s *Scorer) Profile(f *model.Features) model.ProfileAnalysis {
	total := ProfileBase

	// 1. Reputation
	if f.Bool(extract.FeatureIsVerified) {
		total += 20
	}
	if f.Get(extract.FeatureFollowerCount) > 1000 {
		total += 10
	}
	if f.Get(extract.FeatureAccountAgeDays) > 365 {
		total += 10
	}
	if f.Bool(extract.FeatureHasProfileImage) {
		total += 5
	}

	// 2. Bot and throwaway signals
	if f.Get(extract.FeatureFollowingRatio) > 5 {
		total -= 15
	}
	if f.Bool(extract.FeatureDefaultProfile) {
		total -= 10
	}
	if f.Bool(extract.FeatureSuspiciousUsername) {
		total -= 10
	}
	if f.Get(extract.FeatureAccountAgeDays) < 30 {
		total -= 15
	}

	score := Clamp(total)
	return model.ProfileAnalysis{
		Score:      score,
		Features:   f,
		IsCredible: IsCredible(score),
	}
}

// Clamp bounds a score to [0,100]. NaN maps to 0.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
