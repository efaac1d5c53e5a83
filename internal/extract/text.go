package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/patterns"
)

// Text feature names, after the per-category <name>_count features.
const (
	FeatureTextLength       = "text_length"
	FeatureCapsRatio        = "caps_ratio"
	FeatureExclamationCount = "exclamation_count"
	FeatureQuestionCount    = "question_count"
	FeatureHashtagCount     = "hashtag_count"
	FeatureMentionCount     = "mention_count"
	FeatureURLCount         = "url_count"
	FeatureWordCount        = "word_count"
	FeatureAvgWordLength    = "avg_word_length"
)

// CountFeature returns the feature name holding a text category's match count.
func CountFeature(category string) string {
	return category + "_count"
}

// TextFeatureNames is the declared text schema.
var TextFeatureNames = func() []string {
	names := make([]string, 0, patterns.Text.Len()+9)
	for _, category := range patterns.Text.Names() {
		names = append(names, CountFeature(category))
	}
	return append(names,
		FeatureTextLength,
		FeatureCapsRatio,
		FeatureExclamationCount,
		FeatureQuestionCount,
		FeatureHashtagCount,
		FeatureMentionCount,
		FeatureURLCount,
		FeatureWordCount,
		FeatureAvgWordLength,
	)
}()

// TextExtractor derives features from post text
type TextExtractor struct {
	library *patterns.Library
}

// NewTextExtractor creates a text extractor over the heuristic text library
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{library: patterns.Text}
}

// Extract computes the text feature set. Lengths are measured in runes.
func (e *TextExtractor) Extract(text string) *model.Features {
	f := model.NewFeatures(TextFeatureNames...)

	for _, category := range e.library.Names() {
		f.Set(CountFeature(category), float64(e.library.Count(category, text)))
	}

	length := utf8.RuneCountInString(text)
	upper := 0
	for _, r := range text {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	f.Set(FeatureTextLength, float64(length))
	f.Set(FeatureCapsRatio, float64(upper)/float64(max(length, 1)))

	f.Set(FeatureExclamationCount, float64(strings.Count(text, "!")))
	f.Set(FeatureQuestionCount, float64(strings.Count(text, "?")))
	f.Set(FeatureHashtagCount, float64(strings.Count(text, "#")))
	f.Set(FeatureMentionCount, float64(strings.Count(text, "@")))
	f.Set(FeatureURLCount, float64(patterns.EmbeddedURL.Count(text)))

	words := strings.Fields(text)
	f.Set(FeatureWordCount, float64(len(words)))
	if len(words) > 0 {
		total := 0
		for _, w := range words {
			total += utf8.RuneCountInString(w)
		}
		f.Set(FeatureAvgWordLength, float64(total)/float64(len(words)))
	}

	return f
}
