package cache

import (
	"encoding/json"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
)

// Judgments stores adjudicator judgments as JSON on top of a byte cache.
// Only Scored judgments are kept: an Unavailable one is retried on the next
// request rather than replayed.
type Judgments struct {
	backend Cache
}

// NewJudgments wraps backend. A nil backend stores nothing.
func NewJudgments(backend Cache) *Judgments {
	if backend == nil {
		backend = Noop{}
	}
	return &Judgments{backend: backend}
}

// Lookup returns the cached judgment for key. Undecodable or unscored entries
// count as misses.
func (j *Judgments) Lookup(key string) (model.Judgment, bool) {
	raw, ok := j.backend.Get(key)
	if !ok {
		return model.Judgment{}, false
	}
	var out model.Judgment
	if err := json.Unmarshal(raw, &out); err != nil || !out.IsScored() {
		return model.Judgment{}, false
	}
	return out, true
}

// Store caches a Scored judgment with the backend's default TTL.
func (j *Judgments) Store(key string, judgment model.Judgment) error {
	if !judgment.IsScored() {
		return nil
	}
	raw, err := json.Marshal(judgment)
	if err != nil {
		return err
	}
	return j.backend.Set(key, raw, 0)
}
