package model

// TextAnalysis is the heuristic result for a post body.
type TextAnalysis struct {
	Score    float64   `json:"score"`              // Credibility score (0-100)
	Features *Features `json:"features,omitempty"` // Omitted for the neutral placeholder
	Flags    []string  `json:"flags"`              // Triggered categories
}

// URLAnalysis is the trust-variant result for a single URL.
type URLAnalysis struct {
	Score    float64           `json:"score"` // Trust score (0-100)
	Features *Features         `json:"features,omitempty"`
	IsSafe   bool              `json:"is_safe"`          // score >= 50
	Threat   *ThreatAssessment `json:"threat,omitempty"` // Structural threat view of the same URL
}

// ThreatAssessment is the threat-structural view of a URL. Its score is on a
// risk scale (higher = more dangerous) and is what the adjudicator gets as a hint.
type ThreatAssessment struct {
	Score            float64   `json:"score"`
	Tags             *TagSet   `json:"matched_tags"`
	RedFlags         []string  `json:"red_flags"`
	RegisteredDomain string    `json:"registered_domain,omitempty"` // eTLD+1 of the host
	Features         *Features `json:"features,omitempty"`
}

// ProfileAnalysis is the heuristic result for an account.
type ProfileAnalysis struct {
	Score      float64   `json:"score"`
	Features   *Features `json:"features,omitempty"`
	IsCredible bool      `json:"is_credible"` // score >= 50
}

// Density is a regex-density measurement: the share of pattern categories
// that matched, on a 0-100 risk scale.
type Density struct {
	Matched int     `json:"matched"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"` // rounded to 2 decimals
	Tags    *TagSet `json:"tags"`
}

// CombinedResult is the weighted aggregation served by /analyze-complete.
type CombinedResult struct {
	CombinedScore  float64        `json:"combined_score"`
	TrustLevel     TrustLevel     `json:"trust_level"`
	Components     Components     `json:"components"`
	Flags          []string       `json:"flags"`
	Recommendation Recommendation `json:"recommendation"`
}

// Components holds the per-kind results that went into a CombinedResult.
// Missing text or profile inputs are represented by neutral placeholders.
type Components struct {
	Text    *TextAnalysis    `json:"text"`
	URLs    []float64        `json:"urls"`
	Profile *ProfileAnalysis `json:"profile"`
}
