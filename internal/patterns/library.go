// Package patterns holds the fixed lexical and structural signal tables used by
// the extractors and scorers. Libraries are built once at package init and are
// safe for concurrent use.
package patterns

import (
	"regexp"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
)

// Pattern is one named signal. It is backed either by a regular expression or,
// where RE2 cannot express the rule (look-around, back-references), by a
// predicate.
type Pattern struct {
	Name string
	re   *regexp.Regexp
	pred func(string) bool
}

// Regex builds a pattern from an RE2 expression. It panics on a bad expression;
// the tables are static.
func Regex(name, expr string) Pattern {
	return Pattern{Name: name, re: regexp.MustCompile(expr)}
}

// Predicate builds a pattern from a match function.
func Predicate(name string, fn func(string) bool) Pattern {
	return Pattern{Name: name, pred: fn}
}

// Match reports whether the pattern occurs in text.
func (p Pattern) Match(text string) bool {
	if p.re != nil {
		return p.re.MatchString(text)
	}
	return p.pred != nil && p.pred(text)
}

// Count returns the number of non-overlapping occurrences in text. Predicate
// patterns count at most once.
func (p Pattern) Count(text string) int {
	if p.re != nil {
		return len(p.re.FindAllStringIndex(text, -1))
	}
	if p.Match(text) {
		return 1
	}
	return 0
}

// Library is a named, ordered table of patterns for one input kind.
type Library struct {
	name     string
	patterns []Pattern
	index    map[string]int
}

// NewLibrary builds a library. Duplicate names keep the first definition.
func NewLibrary(name string, patterns ...Pattern) *Library {
	l := &Library{
		name:     name,
		patterns: make([]Pattern, 0, len(patterns)),
		index:    make(map[string]int, len(patterns)),
	}
	for _, p := range patterns {
		if _, dup := l.index[p.Name]; dup {
			continue
		}
		l.index[p.Name] = len(l.patterns)
		l.patterns = append(l.patterns, p)
	}
	return l
}

// Name returns the library name.
func (l *Library) Name() string { return l.name }

// Len returns the number of categories, the density denominator.
func (l *Library) Len() int { return len(l.patterns) }

// Names returns the category names in table order.
func (l *Library) Names() []string {
	names := make([]string, len(l.patterns))
	for i, p := range l.patterns {
		names[i] = p.Name
	}
	return names
}

// Match reports whether category matches text. Unknown categories never match.
func (l *Library) Match(category, text string) bool {
	i, ok := l.index[category]
	if !ok {
		return false
	}
	return l.patterns[i].Match(text)
}

// Count returns the occurrence count of category in text.
func (l *Library) Count(category, text string) int {
	i, ok := l.index[category]
	if !ok {
		return 0
	}
	return l.patterns[i].Count(text)
}

// MatchAll returns the categories that match text, in table order.
func (l *Library) MatchAll(text string) *model.TagSet {
	tags := model.NewTagSet()
	l.matchInto(text, tags)
	return tags
}

func (l *Library) matchInto(text string, tags *model.TagSet) {
	for _, p := range l.patterns {
		if p.Match(text) {
			tags.Add(p.Name)
		}
	}
}

// Set is a group of libraries scored together against the same text.
type Set []*Library

// Len returns the total number of categories across the set.
func (s Set) Len() int {
	n := 0
	for _, l := range s {
		n += l.Len()
	}
	return n
}

// MatchAll returns the matched categories of every library, in order.
func (s Set) MatchAll(text string) *model.TagSet {
	tags := model.NewTagSet()
	for _, l := range s {
		l.matchInto(text, tags)
	}
	return tags
}
