package models

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/logger"
)

// Slot names, as reported by /health.
const (
	SlotText    = "text_model"
	SlotURL     = "url_model"
	SlotProfile = "profile_model"
	SlotImage   = "image_model"
)

// slotFiles maps each slot to its file in the models directory.
var slotFiles = map[string]string{
	SlotText:    "text_classifier.yaml",
	SlotURL:     "url_classifier.yaml",
	SlotProfile: "profile_classifier.yaml",
	SlotImage:   "image_classifier.yaml",
}

// Slots lists every slot in a stable order.
var Slots = []string{SlotText, SlotURL, SlotProfile, SlotImage}

// ErrUnavailable is returned for a slot with no loaded model.
var ErrUnavailable = errors.New("model unavailable")

// Registry holds the models loaded at startup. It is read-only after Load.
type Registry struct {
	dir    string
	models map[string]Predictor
	errs   map[string]error
}

// Load reads every slot from dir independently. A missing file leaves the
// slot unavailable without error; a broken file is logged and skipped.
func Load(dir string, log logger.Logger) *Registry {
	if log == nil {
		log = logger.NewNop()
	}
	r := &Registry{dir: dir, models: map[string]Predictor{}, errs: map[string]error{}}

	for _, slot := range Slots {
		path := filepath.Join(dir, slotFiles[slot])
		m, err := LoadLinearModel(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			r.errs[slot] = err
			log.Warn("model failed to load", logger.String("slot", slot), logger.String("path", path), logger.Err(err))
			continue
		}
		r.models[slot] = m
		log.Info("model loaded", logger.String("slot", slot), logger.String("name", m.Name))
	}
	return r
}

// NewRegistry builds a registry from in-memory predictors. Used in tests.
func NewRegistry(models map[string]Predictor) *Registry {
	r := &Registry{models: map[string]Predictor{}, errs: map[string]error{}}
	for slot, p := range models {
		if p != nil {
			r.models[slot] = p
		}
	}
	return r
}

// Get returns the predictor for slot, if loaded.
func (r *Registry) Get(slot string) (Predictor, bool) {
	if r == nil {
		return nil, false
	}
	p, ok := r.models[slot]
	return p, ok
}

// Predict scores features with the slot's model.
func (r *Registry) Predict(slot string, features map[string]float64) (float64, error) {
	p, ok := r.Get(slot)
	if !ok {
		return 0, fmt.Errorf("%s: %w", slot, ErrUnavailable)
	}
	return p.Predict(features)
}

// Loaded reports availability for every slot.
func (r *Registry) Loaded() map[string]bool {
	out := make(map[string]bool, len(Slots))
	for _, slot := range Slots {
		_, out[slot] = r.Get(slot)
	}
	return out
}

// LoadErrors returns the slots whose file existed but failed to load.
func (r *Registry) LoadErrors() map[string]error {
	out := map[string]error{}
	if r == nil {
		return out
	}
	for slot, err := range r.errs {
		out[slot] = err
	}
	return out
}

// Dir is the directory the registry was loaded from.
func (r *Registry) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Describe lists "slot: name" for loaded models, sorted.
func (r *Registry) Describe() []string {
	var out []string
	for _, slot := range Slots {
		p, ok := r.Get(slot)
		if !ok {
			continue
		}
		name := slot
		if lm, ok := p.(*LinearModel); ok && lm.Name != "" {
			name = lm.Name
		}
		out = append(out, slot+": "+name)
	}
	sort.Strings(out)
	return out
}
