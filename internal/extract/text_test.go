package extract

import (
	"strings"
	"testing"
)

func TestTextExtractor_AllKeysPresent(t *testing.T) {
	extractor := NewTextExtractor()

	for _, input := range []string{"", "hello", strings.Repeat("ü", 5000)} {
		f := extractor.Extract(input)
		if f.Len() != len(TextFeatureNames) {
			t.Fatalf("Expected %d features, got %d", len(TextFeatureNames), f.Len())
		}
		for _, name := range TextFeatureNames {
			if !f.Has(name) {
				t.Errorf("Feature %s missing for input %q", name, input)
			}
		}
	}
}

func TestTextExtractor_ClickbaitExample(t *testing.T) {
	extractor := NewTextExtractor()

	f := extractor.Extract("BREAKING: shocking truth doctors hate, you won't believe what happens next!!!")

	if f.Int("urgency_count") < 1 {
		t.Errorf("Expected urgency_count >= 1, got %d", f.Int("urgency_count"))
	}
	if f.Int("clickbait_count") < 1 {
		t.Errorf("Expected clickbait_count >= 1, got %d", f.Int("clickbait_count"))
	}
	if got := f.Int(FeatureExclamationCount); got != 3 {
		t.Errorf("Expected exclamation_count 3, got %d", got)
	}
	if got := f.Int("all_caps_count"); got != 1 {
		t.Errorf("Expected all_caps_count 1 (BREAKING), got %d", got)
	}
}

func TestTextExtractor_Counts(t *testing.T) {
	extractor := NewTextExtractor()

	f := extractor.Extract("Hey @bob see https://example.com/a?b=1 #news #today ok?")

	tests := map[string]float64{
		FeatureMentionCount:  1,
		FeatureHashtagCount:  2,
		FeatureURLCount:      1,
		FeatureQuestionCount: 2, // one in the URL query, one at the end
		FeatureWordCount:     7,
	}
	for name, want := range tests {
		if got := f.Get(name); got != want {
			t.Errorf("%s: expected %v, got %v", name, want, got)
		}
	}
}

func TestTextExtractor_RatiosUseRunes(t *testing.T) {
	extractor := NewTextExtractor()

	f := extractor.Extract("ÄÖÜ abc")
	if got := f.Get(FeatureTextLength); got != 7 {
		t.Errorf("Expected text_length 7, got %v", got)
	}
	if got := f.Get(FeatureCapsRatio); got != 3.0/7.0 {
		t.Errorf("Expected caps_ratio 3/7, got %v", got)
	}
	if got := f.Get(FeatureAvgWordLength); got != 3 {
		t.Errorf("Expected avg_word_length 3, got %v", got)
	}

	empty := extractor.Extract("")
	if empty.Get(FeatureCapsRatio) != 0 || empty.Get(FeatureAvgWordLength) != 0 {
		t.Errorf("Expected zero ratios for empty text")
	}
}
