package model

import (
	"fmt"
	"math"
)

// JudgmentStatus tells whether the adjudicator produced a score.
type JudgmentStatus int

const (
	JudgmentUnavailable JudgmentStatus = iota // adjudicator absent or failed
	JudgmentScored                            // adjudicator returned a usable score
)

// Judgment is the outcome of one adjudicator call: either Scored or
// Unavailable. It never carries an error.
type Judgment struct {
	Status    JudgmentStatus `json:"status"`
	Score     float64        `json:"score,omitempty"`     // 0-100 risk, only when Scored
	Rationale string         `json:"rationale,omitempty"` // adjudicator explanation
	Source    string         `json:"source,omitempty"`    // provider name
	Reason    string         `json:"reason,omitempty"`    // why it is Unavailable

	// Optional kind-specific details.
	ThreatType string   `json:"threat_type,omitempty"`
	Verdict    string   `json:"verdict,omitempty"`
	Issues     []string `json:"issues,omitempty"`
	Confidence string   `json:"confidence,omitempty"`
}

// FallbackRationale prefixes the reason recorded when the heuristic is used.
const FallbackRationale = "heuristic fallback"

// Scored builds a successful judgment. The score is clamped to [0,100] and
// NaN maps to 0.
func Scored(score float64, rationale, source string) Judgment {
	switch {
	case math.IsNaN(score), score < 0:
		score = 0
	case score > 100:
		score = 100
	}
	return Judgment{Status: JudgmentScored, Score: score, Rationale: rationale, Source: source}
}

// Unavailable builds a judgment that carries only the degradation reason.
func Unavailable(reason string) Judgment {
	return Judgment{Status: JudgmentUnavailable, Reason: reason}
}

// IsScored reports whether the adjudicator produced a score.
func (j Judgment) IsScored() bool {
	return j.Status == JudgmentScored
}

// Resolve returns the adjudicated score and rationale, or the heuristic score
// unchanged with a fallback rationale.
func (j Judgment) Resolve(heuristic float64) (float64, string) {
	if j.IsScored() {
		return j.Score, j.Rationale
	}
	if j.Reason == "" {
		return heuristic, FallbackRationale
	}
	return heuristic, fmt.Sprintf("%s: %s", FallbackRationale, j.Reason)
}
