package pipeline

import (
	"fmt"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/extract"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/models"
)

// StatusHealthy is the only status the detector reports; a running process
// can always answer from the heuristics.
const StatusHealthy = "healthy"

// Health is the /health payload.
type Health struct {
	Status       string            `json:"status"`
	ModelsLoaded map[string]bool   `json:"models_loaded"`
	Adjudicator  AdjudicatorHealth `json:"adjudicator"`
}

// AdjudicatorHealth reports whether a provider is configured.
type AdjudicatorHealth struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"`
}

// Health reports model slots and adjudicator state.
func (d *Detector) Health() Health {
	return Health{
		Status:       StatusHealthy,
		ModelsLoaded: d.models.Loaded(),
		Adjudicator: AdjudicatorHealth{
			Enabled:  d.adjudicator.Enabled(),
			Provider: d.adjudicator.ProviderName(),
		},
	}
}

// Models exposes the registry, for `credcheck models`.
func (d *Detector) Models() *models.Registry {
	return d.models
}

// ModelScore runs the slot's model over the features extracted from input.
// Profiles are passed as JSON. The image slot takes a base64 payload.
func (d *Detector) ModelScore(slot, input string) (float64, error) {
	var f *model.Features
	switch slot {
	case models.SlotText:
		f = d.text.Extract(input)
	case models.SlotURL:
		f = d.url.Extract(input)
	case models.SlotProfile:
		var p model.Profile
		if err := p.UnmarshalJSON([]byte(input)); err != nil {
			return 0, fmt.Errorf("profile JSON: %w", model.ErrInvalidInput)
		}
		f = d.profile.Extract(p)
	case models.SlotImage:
		img, err := extract.DecodeImage(input)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
		}
		if f, err = extract.ImageFeatures(img); err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("unknown model slot %q: %w", slot, model.ErrInvalidInput)
	}
	return d.models.Predict(slot, f.Map())
}
