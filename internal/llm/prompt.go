package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/extract"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
)

// Reply keys, one required score per kind.
const (
	keyFakePercent          = "fake_percent"
	keyFakeProbability      = "fake_probability"
	keyMaliciousProbability = "malicious_probability"
	keyReason               = "reason"
	keyThreatType           = "threat_type"
	keyVerdict              = "verdict"
	keyDetectedIssues       = "detected_issues"
	keyConfidence           = "confidence"
)

const textSystemPrompt = `You detect fake or misleading news in short social media posts.

The input is a JSON object with the post text, a pattern-based fake percentage
(0-100) and the pattern tags that matched. Treat the pattern data as a hint and
make your own judgment.

Reply with VALID JSON only:
{"fake_percent": <number 0-100>, "reason": "<one short sentence>"}

Scale: 0-25 very likely real, 26-50 slightly suspicious, 51-75 likely fake,
76-100 highly fake.`

const profileSystemPrompt = `You detect fake, scam and bot-like social media profiles.

Judge mainly from the profile fields. The pattern score, matched tags and
behavioral flags are hints only.

Reply with VALID JSON only, no markdown:
{"fake_probability": <number 0-100>, "reason": "<1-2 sentences>"}`

const urlSystemPrompt = `You classify URLs shared on social media as MALICIOUS
(phishing, scam, malware, spam) or SAFE.

Reply with VALID JSON only, no markdown:
{"malicious_probability": <number 0-100>, "threat_type": "<phishing|scam|malware|spam|safe>", "reason": "<1-2 sentences>"}`

const imagePrompt = `You are an image forensic analyst. Look for signs of manipulation,
AI generation or misleading use:
1. AI generation: unnatural textures, malformed hands, garbled text, artificial symmetry
2. Editing: inconsistent lighting, warped edges, mismatched shadows, cloning, odd blur
3. Deepfakes: facial inconsistencies, unnatural skin, eye reflections, hair anomalies
4. Misleading content: out-of-context image, fake screenshots, edited headlines, fake watermarks
5. Quality: compression that hides edits, suspicious cropping
%s
Reply with VALID JSON only, no markdown:
{"fake_probability": <0-100>, "verdict": "<fake|manipulated|ai_generated|misleading|uncertain|likely_real|real>", "reason": "<2-3 sentences>", "detected_issues": ["<issue>"], "confidence": "<low|medium|high>"}`

// ProfileHint is the heuristic context passed with a profile.
type ProfileHint struct {
	Density       model.Density
	BehaviorFlags []string
}

func textRequest(text string, hint model.Density) CompletionRequest {
	payload, _ := json.Marshal(struct {
		Tweet     string   `json:"tweet"`
		RegexFake float64  `json:"regex_fake_percent"`
		RegexTags []string `json:"regex_matched_tags"`
	}{text, hint.Percent, hint.Tags.Slice()})

	return CompletionRequest{System: textSystemPrompt, Prompt: string(payload)}
}

func profileRequest(p model.Profile, hint ProfileHint) CompletionRequest {
	var b strings.Builder
	b.WriteString("Analyze this profile. Is it FAKE (spam/scam/bot) or REAL?\n\nPROFILE:\n")
	fmt.Fprintf(&b, "Username: %s\n", p.Username)
	fmt.Fprintf(&b, "Display name: %s\n", p.DisplayName)
	fmt.Fprintf(&b, "Bio: %s\n", p.Bio)
	fmt.Fprintf(&b, "Link: %s\n", p.URL)
	fmt.Fprintf(&b, "Followers: %d\nFollowing: %d\nTweets: %d\n", p.Followers, p.Following, p.Tweets)
	fmt.Fprintf(&b, "Account age (days): %d\nVerified: %t\n", p.AccountAgeDays, p.Verified)
	fmt.Fprintf(&b, "\nPATTERN SCORE: %.1f%%\n", hint.Density.Percent)
	fmt.Fprintf(&b, "MATCHED PATTERNS: %s\n", joinOrNone(hint.Density.Tags.Slice()))
	fmt.Fprintf(&b, "BEHAVIORAL FLAGS: %s\n", joinOrNone(hint.BehaviorFlags))

	return CompletionRequest{System: profileSystemPrompt, Prompt: b.String()}
}

func urlRequest(rawURL string, hint model.ThreatAssessment) CompletionRequest {
	var b strings.Builder
	b.WriteString("Analyze this URL.\n\nURL ANALYSIS:\n")
	fmt.Fprintf(&b, "URL: %s\n", rawURL)
	fmt.Fprintf(&b, "Registered domain: %s\n", orNA(hint.RegisteredDomain))
	if f := hint.Features; f != nil {
		fmt.Fprintf(&b, "HTTPS: %t\n", f.Bool(extract.FeatureHasHTTPS))
		fmt.Fprintf(&b, "URL length: %d\n", f.Int(extract.FeatureURLLength))
		fmt.Fprintf(&b, "Subdomains: %d\n", f.Int(extract.FeatureNumSubdomains))
	}
	fmt.Fprintf(&b, "\nPATTERN SCORE: %.1f%%\n", hint.Score)
	fmt.Fprintf(&b, "MATCHED PATTERNS: %s\n", joinOrNone(hint.Tags.Slice()))
	fmt.Fprintf(&b, "RED FLAGS: %s\n", joinOrNone(hint.RedFlags))

	return CompletionRequest{System: urlSystemPrompt, Prompt: b.String()}
}

func imageRequest(img extract.Image, caption string) CompletionRequest {
	note := ""
	if caption = strings.TrimSpace(caption); caption != "" {
		note = fmt.Sprintf("\nThe image was posted with this text: %q\nCheck whether the image matches the claim.\n", caption)
	}
	return CompletionRequest{
		Prompt:       fmt.Sprintf(imagePrompt, note),
		ImageDataURL: img.DataURL(),
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
