package score

import (
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/patterns"
)

// density turns a tag set and its denominator into a rounded percentage.
func density(tags *model.TagSet, total int) model.Density {
	percent := 0.0
	if total > 0 {
		percent = Round2(float64(tags.Len()) / float64(total) * 100)
	}
	return model.Density{
		Matched: tags.Len(),
		Total:   total,
		Percent: percent,
		Tags:    tags,
	}
}

// TextDensity measures how many misinformation categories a post hits.
func (s *Scorer) TextDensity(text string) model.Density {
	return density(patterns.FakeNews.MatchAll(text), patterns.FakeNews.Len())
}

// ProfileDensity matches each profile field against its own tables; the
// denominator is the size of all profile tables together.
func (s *Scorer) ProfileDensity(p model.Profile) model.Density {
	tags := model.NewTagSet()
	tags.Merge(patterns.Username.MatchAll(patterns.NormalizeHandle(p.Username)))
	tags.Merge(patterns.DisplayName.MatchAll(p.DisplayName))
	tags.Merge(patterns.Bio.MatchAll(p.Bio))
	tags.Merge(patterns.Link.MatchAll(p.URL))
	tags.Merge(patterns.LanguageHints.MatchAll(p.Bio))

	return density(tags, patterns.ProfileDensity.Len())
}
