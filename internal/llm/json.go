package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnparseableReply means the reply held no JSON object.
var ErrUnparseableReply = errors.New("reply is not JSON")

// ParseJSONResponse strips markdown code fences and decodes the first JSON
// object in the reply. Text after the object is ignored.
func ParseJSONResponse(raw string) (map[string]any, error) {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")

	start := strings.Index(s, "{")
	if start < 0 {
		return nil, ErrUnparseableReply
	}

	dec := json.NewDecoder(strings.NewReader(s[start:]))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableReply, err)
	}
	return out, nil
}

// numberField reads key as a finite number. Numeric strings ("72", "72%")
// count; "NaN" and "Inf" do not.
func numberField(m map[string]any, key string) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch v := m[key].(type) {
	case json.Number:
		f, err = v.Float64()
	case float64:
		f = v
	case string:
		f, err = strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "%"), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func stringSliceField(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		if v = strings.TrimSpace(v); v != "" {
			return []string{v}
		}
	}
	return nil
}
