package extract

import "testing"

func TestURLExtractor_TrustedNews(t *testing.T) {
	extractor := NewURLExtractor()

	f := extractor.Extract("https://www.nytimes.com/2024/01/15/technology/ai.html")

	expect := map[string]float64{
		FeatureHasHTTPS:         1,
		FeatureIsTrustedDomain:  1,
		FeatureSubdomainCount:   1,
		FeatureDomainLength:     15,
		FeatureSuspiciousTLD:    0,
		FeatureHasIPAddress:     0,
		FeatureHasQuery:         0,
		FeatureSpecialCharCount: 0,
	}
	for name, want := range expect {
		if got := f.Get(name); got != want {
			t.Errorf("%s: expected %v, got %v", name, want, got)
		}
	}
}

func TestURLExtractor_MalformedIsAllZero(t *testing.T) {
	extractor := NewURLExtractor()

	for _, raw := range []string{"not a url", "", "://missing-scheme", "example.com/path"} {
		f := extractor.Extract(raw)
		if f.Len() != len(URLFeatureNames) {
			t.Fatalf("Expected %d features for %q, got %d", len(URLFeatureNames), raw, f.Len())
		}
		for _, name := range URLFeatureNames {
			if f.Get(name) != 0 {
				t.Errorf("%q: expected %s = 0, got %v", raw, name, f.Get(name))
			}
		}

		threat := extractor.ThreatFeatures(raw)
		for _, name := range ThreatFeatureNames {
			if threat.Get(name) != 0 {
				t.Errorf("%q: expected threat %s = 0, got %v", raw, name, threat.Get(name))
			}
		}
	}
}

func TestURLExtractor_SuspiciousHost(t *testing.T) {
	extractor := NewURLExtractor()

	f := extractor.Extract("http://a.b.c.free_gift-now.tk/@claim?id=1")
	if !f.Bool(FeatureSuspiciousTLD) {
		t.Error("Expected suspicious_tld for .tk host")
	}
	if got := f.Int(FeatureSubdomainCount); got != 3 {
		t.Errorf("Expected subdomain_count 3, got %d", got)
	}
	if !f.Bool(FeatureHasQuery) {
		t.Error("Expected has_query")
	}
	if got := f.Int(FeatureSpecialCharCount); got != 3 {
		t.Errorf("Expected special_char_count 3, got %d", got)
	}

	ip := extractor.Extract("http://10.0.0.1/login")
	if !ip.Bool(FeatureHasIPAddress) {
		t.Error("Expected has_ip_address for dotted quad")
	}
	if got := ip.Int(FeatureDigitCount); got != 5 {
		t.Errorf("Expected digit_count 5, got %d", got)
	}
}

func TestURLExtractor_ThreatFeatures(t *testing.T) {
	extractor := NewURLExtractor()

	f := extractor.ThreatFeatures("http://secure-login-paypal-verify.example.co:8443/x")
	if !f.Bool(FeatureHasPort) {
		t.Error("Expected has_port")
	}
	if f.Bool(FeatureHasHTTPS) {
		t.Error("Expected has_https = 0")
	}
	if got := f.Int(FeatureNumHyphens); got != 3 {
		t.Errorf("Expected num_hyphens 3, got %d", got)
	}
	if got := f.Int(FeatureNumDigitsDomain); got != 4 {
		t.Errorf("Expected num_digits_domain 4 (port included), got %d", got)
	}
}

func TestRegisteredDomain(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://www.bbc.co.uk/news", "bbc.co.uk"},
		{"https://a.b.example.com/", "example.com"},
		{"http://127.0.0.1/", ""},
		{"not a url", ""},
	}

	for _, tt := range tests {
		if got := RegisteredDomain(tt.raw); got != tt.want {
			t.Errorf("RegisteredDomain(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
