package model

// TrustLevel is the three-level trust label (70/40 scheme).
type TrustLevel string

const (
	TrustHigh   TrustLevel = "high"
	TrustMedium TrustLevel = "medium"
	TrustLow    TrustLevel = "low"
)

// Verdict is the FAKE/SUSPICIOUS/REAL label (75/50 scheme) used by the
// unified classification path.
type Verdict string

const (
	VerdictFake       Verdict = "FAKE"
	VerdictSuspicious Verdict = "SUSPICIOUS"
	VerdictReal       Verdict = "REAL"
	VerdictUnknown    Verdict = "UNKNOWN" // image could not be judged at all
)

// Recommendation is the sharing advice attached to a combined result.
type Recommendation string

const (
	RecommendSafe   Recommendation = "safe_to_share"
	RecommendVerify Recommendation = "verify_before_sharing"
	RecommendAvoid  Recommendation = "do_not_share"
)
