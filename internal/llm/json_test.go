package llm

import (
	"errors"
	"testing"
)

func TestParseJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain", `{"fake_percent": 12}`, 12},
		{"fenced", "```json\n{\"fake_percent\": 34.5}\n```", 34.5},
		{"prose around", `Here you go: {"fake_percent": 56, "reason": "x"} hope it helps {"fake_percent": 1}`, 56},
		{"string number", `{"fake_percent": " 78 "}`, 78},
		{"percent sign", `{"fake_percent": "90%"}`, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseJSONResponse(tt.raw)
			if err != nil {
				t.Fatalf("ParseJSONResponse failed: %v", err)
			}
			got, ok := numberField(m, keyFakePercent)
			if !ok || got != tt.want {
				t.Errorf("Expected %v, got %v (ok=%v)", tt.want, got, ok)
			}
		})
	}
}

func TestParseJSONResponse_Errors(t *testing.T) {
	for _, raw := range []string{"", "no json here", "{broken", "[1,2,3]"} {
		if _, err := ParseJSONResponse(raw); !errors.Is(err, ErrUnparseableReply) {
			t.Errorf("Expected ErrUnparseableReply for %q, got %v", raw, err)
		}
	}
}

func TestStringSliceField(t *testing.T) {
	m, _ := ParseJSONResponse(`{"a": ["x", " ", "y"], "b": "single", "c": 3}`)
	if got := stringSliceField(m, "a"); len(got) != 2 {
		t.Errorf("Expected blanks dropped, got %v", got)
	}
	if got := stringSliceField(m, "b"); len(got) != 1 || got[0] != "single" {
		t.Errorf("Expected single string promoted, got %v", got)
	}
	if got := stringSliceField(m, "c"); got != nil {
		t.Errorf("Expected nil for number, got %v", got)
	}
}

func TestNewProvider(t *testing.T) {
	if _, err := NewProvider(Config{}); !errors.Is(err, ErrNoProvider) {
		t.Errorf("Expected ErrNoProvider, got %v", err)
	}
	if _, err := NewProvider(Config{Provider: "bogus"}); err == nil || errors.Is(err, ErrNoProvider) {
		t.Errorf("Expected unknown provider error, got %v", err)
	}

	t.Setenv("GROQ_API_KEY", "from-env")
	p, err := NewProvider(Config{Provider: "Groq", Model: "llama"})
	if err != nil {
		t.Fatalf("Expected env key to be used: %v", err)
	}
	if p.Name() != "groq" {
		t.Errorf("Expected groq, got %s", p.Name())
	}

	if p, err := NewProvider(Config{Provider: "claude", APIKey: "k"}); err != nil || p.Name() != "anthropic" {
		t.Errorf("Expected claude alias for anthropic, got %v %v", p, err)
	}
}

func TestSplitDataURL(t *testing.T) {
	mt, data := splitDataURL("data:image/webp;base64,UklGR")
	if mt != "image/webp" || data != "UklGR" {
		t.Errorf("Unexpected split %q %q", mt, data)
	}
	if mt, data := splitDataURL("UklGR"); mt != "" || data != "UklGR" {
		t.Errorf("Expected raw payload passthrough, got %q %q", mt, data)
	}
}
