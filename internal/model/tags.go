package model

import (
	"encoding/json"
	"strings"
)

// TagSet is a set of matched category names. Each tag appears once; order is
// the order tags were first added.
type TagSet struct {
	order []string
	seen  map[string]struct{}
}

// NewTagSet creates a tag set holding the given tags.
func NewTagSet(tags ...string) *TagSet {
	t := &TagSet{seen: make(map[string]struct{}, len(tags))}
	for _, tag := range tags {
		t.Add(tag)
	}
	return t
}

// Add inserts a tag. Adding an existing tag is a no-op.
func (t *TagSet) Add(tag string) {
	if t.seen == nil {
		t.seen = make(map[string]struct{})
	}
	if _, ok := t.seen[tag]; ok {
		return
	}
	t.seen[tag] = struct{}{}
	t.order = append(t.order, tag)
}

// Merge adds every tag from other.
func (t *TagSet) Merge(other *TagSet) {
	if other == nil {
		return
	}
	for _, tag := range other.order {
		t.Add(tag)
	}
}

// Has reports whether tag is in the set.
func (t *TagSet) Has(tag string) bool {
	if t == nil {
		return false
	}
	_, ok := t.seen[tag]
	return ok
}

// Len returns the number of tags.
func (t *TagSet) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Slice returns the tags as a new slice.
func (t *TagSet) Slice() []string {
	out := make([]string, 0, t.Len())
	if t == nil {
		return out
	}
	return append(out, t.order...)
}

// String joins the tags with commas, the form passed as an adjudicator hint.
func (t *TagSet) String() string {
	if t == nil {
		return ""
	}
	return strings.Join(t.order, ",")
}

// MarshalJSON encodes the set as an array (never null).
func (t *TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Slice())
}
