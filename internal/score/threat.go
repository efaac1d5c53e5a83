package score

import (
	"math"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/extract"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/patterns"
)

// URL red flags.
const (
	RedFlagNoHTTPS           = "no_https"
	RedFlagVeryLongURL       = "very_long_url"
	RedFlagTooManySubdomains = "too_many_subdomains"
	RedFlagTooManyHyphens    = "too_many_hyphens"
	RedFlagManyDigits        = "many_digits_in_domain"
	RedFlagVeryLongDomain    = "very_long_domain"
	RedFlagCustomPort        = "has_custom_port"
)

// threatAmplifier scales the matched share so a handful of hits saturates.
const threatAmplifier = 4

// Threat computes the threat-structural score over the union of URL
// structure, content and platform patterns:
//
//	min(100, matched/total * 100 * 4)
//
// The result is on a risk scale and is independent of the trust score.
func (s *Scorer) Threat(raw string, f *model.Features) model.ThreatAssessment {
	tags := patterns.URLThreat.MatchAll(raw)
	total := patterns.URLThreat.Len()

	score := 0.0
	if total > 0 {
		score = math.Min(100, float64(tags.Len())/float64(total)*100*threatAmplifier)
	}

	return model.ThreatAssessment{
		Score:            Clamp(score),
		Tags:             tags,
		RedFlags:         RedFlags(f),
		RegisteredDomain: extract.RegisteredDomain(raw),
		Features:         f,
	}
}

// RedFlags lists structural warnings from threat features. An unparseable URL
// has no scheme and so always reports no_https.
func RedFlags(f *model.Features) []string {
	flags := []string{}

	if !f.Bool(extract.FeatureHasHTTPS) {
		flags = append(flags, RedFlagNoHTTPS)
	}
	if f.Get(extract.FeatureURLLength) > 100 {
		flags = append(flags, RedFlagVeryLongURL)
	}
	if f.Get(extract.FeatureNumSubdomains) > 3 {
		flags = append(flags, RedFlagTooManySubdomains)
	}
	if f.Get(extract.FeatureNumHyphens) > 3 {
		flags = append(flags, RedFlagTooManyHyphens)
	}
	if f.Get(extract.FeatureNumDigitsDomain) > 3 {
		flags = append(flags, RedFlagManyDigits)
	}
	if f.Get(extract.FeatureDomainLength) > 30 {
		flags = append(flags, RedFlagVeryLongDomain)
	}
	if f.Bool(extract.FeatureHasPort) {
		flags = append(flags, RedFlagCustomPort)
	}

	return flags
}
