package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Features is an ordered, named set of numeric features derived from one input.
// Boolean features are stored as 0 or 1.
type Features struct {
	names  []string
	values map[string]float64
}

// NewFeatures declares the feature keys for an input kind, all set to zero.
func NewFeatures(names ...string) *Features {
	f := &Features{
		names:  make([]string, 0, len(names)),
		values: make(map[string]float64, len(names)),
	}
	for _, name := range names {
		if _, dup := f.values[name]; dup {
			continue
		}
		f.names = append(f.names, name)
		f.values[name] = 0
	}
	return f
}

// Set assigns a declared feature. Undeclared names are ignored so the key set
// never drifts from the schema.
func (f *Features) Set(name string, v float64) {
	if _, ok := f.values[name]; ok {
		f.values[name] = v
	}
}

// SetBool assigns a boolean feature as 0 or 1.
func (f *Features) SetBool(name string, v bool) {
	if v {
		f.Set(name, 1)
		return
	}
	f.Set(name, 0)
}

// Get returns the value of a feature, or 0 if undeclared.
func (f *Features) Get(name string) float64 {
	if f == nil {
		return 0
	}
	return f.values[name]
}

// Int returns the value truncated to an int (for count features).
func (f *Features) Int(name string) int {
	return int(f.Get(name))
}

// Bool reports whether a boolean feature is set.
func (f *Features) Bool(name string) bool {
	return f.Get(name) != 0
}

// Has reports whether name is a declared feature.
func (f *Features) Has(name string) bool {
	if f == nil {
		return false
	}
	_, ok := f.values[name]
	return ok
}

// Names returns the declared feature names in declaration order.
func (f *Features) Names() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Len returns the number of declared features.
func (f *Features) Len() int {
	if f == nil {
		return 0
	}
	return len(f.names)
}

// Map returns a copy of the features as a plain map (model input).
func (f *Features) Map() map[string]float64 {
	out := make(map[string]float64, f.Len())
	if f == nil {
		return out
	}
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the features as an object preserving declaration order.
func (f *Features) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if f != nil {
		for i, name := range f.names {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(name)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(f.values[name])
			if err != nil {
				return nil, fmt.Errorf("feature %s: %w", name, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
