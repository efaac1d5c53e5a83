// Package models loads the optional statistical models. Each model is a
// linear scorer over a named feature set, stored as YAML.
package models

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Output transforms.
const (
	OutputClamp    = "clamp"    // raw sum clamped to [0,100]
	OutputLogistic = "logistic" // 100 * sigmoid(sum)
)

// ErrInvalidModel marks a file that parsed but cannot score.
var ErrInvalidModel = errors.New("invalid model")

// Predictor scores a feature map on a 0-100 risk scale.
type Predictor interface {
	Predict(features map[string]float64) (float64, error)
}

// LinearModel is bias + Σ weight·feature, passed through Output.
type LinearModel struct {
	Name    string             `yaml:"name"`
	Bias    float64            `yaml:"bias"`
	Weights map[string]float64 `yaml:"weights"`
	Output  string             `yaml:"output"`
}

// LoadLinearModel reads and validates a model file.
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m LinearModel
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

// Validate checks the output mode and that there is something to score.
func (m *LinearModel) Validate() error {
	switch m.Output {
	case "":
		m.Output = OutputClamp
	case OutputClamp, OutputLogistic:
	default:
		return fmt.Errorf("%w: unknown output %q", ErrInvalidModel, m.Output)
	}
	if len(m.Weights) == 0 {
		return fmt.Errorf("%w: no weights", ErrInvalidModel)
	}
	for name, w := range m.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: weight %s is not finite", ErrInvalidModel, name)
		}
	}
	return nil
}

// Predict ignores features without a weight. Weighted features that are
// missing count as zero.
func (m *LinearModel) Predict(features map[string]float64) (float64, error) {
	z := m.Bias
	for name, w := range m.Weights {
		z += w * features[name]
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return 0, fmt.Errorf("%w: non-finite activation", ErrInvalidModel)
	}

	switch m.Output {
	case OutputLogistic:
		return 100 / (1 + math.Exp(-z)), nil
	default:
		return math.Max(0, math.Min(100, z)), nil
	}
}
