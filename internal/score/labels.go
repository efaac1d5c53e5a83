package score

import "github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"

// Trust scheme (text, combined): 70/40.
const (
	TrustHighThreshold   = 70.0
	TrustMediumThreshold = 40.0
)

// Verdict scheme (classify-all and adjudicated components): 75/50.
const (
	VerdictFakeThreshold       = 75.0
	VerdictSuspiciousThreshold = 50.0
)

// Binary thresholds.
const (
	SafeURLThreshold         = 50.0
	CredibleProfileThreshold = 50.0
)

// Recommendation cut points. They coincide with the trust scheme but are kept
// as their own set.
const (
	RecommendSafeThreshold   = 70.0
	RecommendVerifyThreshold = 40.0
)

// TrustLevel labels a credibility score.
func TrustLevel(score float64) model.TrustLevel {
	switch {
	case score >= TrustHighThreshold:
		return model.TrustHigh
	case score >= TrustMediumThreshold:
		return model.TrustMedium
	default:
		return model.TrustLow
	}
}

// VerdictLabel labels a risk score.
func VerdictLabel(risk float64) model.Verdict {
	switch {
	case risk >= VerdictFakeThreshold:
		return model.VerdictFake
	case risk >= VerdictSuspiciousThreshold:
		return model.VerdictSuspicious
	default:
		return model.VerdictReal
	}
}

// Recommend derives sharing advice from a combined score.
func Recommend(score float64) model.Recommendation {
	switch {
	case score >= RecommendSafeThreshold:
		return model.RecommendSafe
	case score >= RecommendVerifyThreshold:
		return model.RecommendVerify
	default:
		return model.RecommendAvoid
	}
}

// IsSafe applies the URL safety threshold.
func IsSafe(score float64) bool {
	return score >= SafeURLThreshold
}

// IsCredible applies the profile credibility threshold.
func IsCredible(score float64) bool {
	return score >= CredibleProfileThreshold
}
