package model

// UnifiedVerdict is the response of the classify-all path.
type UnifiedVerdict struct {
	Overall OverallVerdict   `json:"overall"`
	Tweet   ComponentVerdict `json:"tweet"`
	Profile ComponentVerdict `json:"profile"`
	URLs    []URLVerdict     `json:"urls"`
	Image   *ImageVerdict    `json:"image"` // null when no image was sent
}

// OverallVerdict is the weighted verdict across tweet, URLs and profile.
type OverallVerdict struct {
	Classification Verdict `json:"classification"`
	Confidence     int     `json:"confidence"` // rounded risk score
}

// ComponentVerdict is one adjudicated (or fallen-back) component.
type ComponentVerdict struct {
	Classification Verdict  `json:"classification"`
	Probability    int      `json:"probability"`      // rounded risk score
	Reason         string   `json:"reason,omitempty"` // adjudicator rationale or fallback reason
	Source         string   `json:"source,omitempty"` // provider name, or "heuristic"
	Tags           []string `json:"tags,omitempty"`   // heuristic tags passed as the hint
}

// URLVerdict is a ComponentVerdict for one URL.
type URLVerdict struct {
	URL string `json:"url"`
	ComponentVerdict
	ThreatType string   `json:"threat_type,omitempty"`
	RedFlags   []string `json:"red_flags,omitempty"`
}

// ImageVerdict is the forensic judgment for an attached image.
type ImageVerdict struct {
	Classification  Verdict  `json:"classification"`
	FakeProbability int      `json:"fake_probability"`
	Verdict         string   `json:"verdict,omitempty"` // e.g. ai_generated, manipulated, likely_real
	Reason          string   `json:"reason"`
	DetectedIssues  []string `json:"detected_issues,omitempty"`
	Confidence      string   `json:"confidence,omitempty"` // low, medium, high
	Source          string   `json:"source,omitempty"`
}
