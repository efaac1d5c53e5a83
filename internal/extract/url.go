package extract

import (
	"net"
	"net/url"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"golang.org/x/net/publicsuffix"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/patterns"
)

// Trust-variant URL features.
const (
	FeatureDomainLength     = "domain_length"
	FeatureHasHTTPS         = "has_https"
	FeatureSubdomainCount   = "subdomain_count"
	FeaturePathLength       = "path_length"
	FeatureHasQuery         = "has_query"
	FeatureSuspiciousTLD    = "suspicious_tld"
	FeatureIsTrustedDomain  = "is_trusted_domain"
	FeatureHasIPAddress     = "has_ip_address"
	FeatureSpecialCharCount = "special_char_count"
	FeatureDigitCount       = "digit_count"
)

// URLFeatureNames is the declared trust-variant schema.
var URLFeatureNames = []string{
	FeatureDomainLength,
	FeatureHasHTTPS,
	FeatureSubdomainCount,
	FeaturePathLength,
	FeatureHasQuery,
	FeatureSuspiciousTLD,
	FeatureIsTrustedDomain,
	FeatureHasIPAddress,
	FeatureSpecialCharCount,
	FeatureDigitCount,
}

// Threat-variant URL features (red-flag inputs).
const (
	FeatureURLLength       = "url_length"
	FeatureNumSubdomains   = "num_subdomains"
	FeatureNumHyphens      = "num_hyphens"
	FeatureNumDigitsDomain = "num_digits_domain"
	FeatureHasPort         = "has_port"
)

// ThreatFeatureNames is the declared threat-variant schema.
var ThreatFeatureNames = []string{
	FeatureURLLength,
	FeatureDomainLength,
	FeaturePathLength,
	FeatureNumSubdomains,
	FeatureNumHyphens,
	FeatureNumDigitsDomain,
	FeatureHasPort,
	FeatureHasHTTPS,
}

// URLExtractor derives features from a URL string
type URLExtractor struct {
	trusted *ahocorasick.Matcher
}

// NewURLExtractor creates a URL extractor with the trusted-news matcher
func NewURLExtractor() *URLExtractor {
	return &URLExtractor{
		trusted: ahocorasick.NewStringMatcher(patterns.TrustedNewsDomains),
	}
}

// parseAbsolute parses raw and requires a scheme and host. Anything else is
// treated as unparseable.
func parseAbsolute(raw string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}

// Extract computes the trust-variant features. An unparseable URL yields the
// all-zero feature set.
func (e *URLExtractor) Extract(raw string) *model.Features {
	f := model.NewFeatures(URLFeatureNames...)

	u, ok := parseAbsolute(raw)
	if !ok {
		return f
	}

	host := strings.ToLower(u.Hostname())

	f.Set(FeatureDomainLength, float64(len(host)))
	f.SetBool(FeatureHasHTTPS, strings.EqualFold(u.Scheme, "https"))
	// labels minus the registrable pair, floored at the domain root
	f.Set(FeatureSubdomainCount, float64(max(len(strings.Split(host, "."))-2, 0)))
	f.Set(FeaturePathLength, float64(len(u.Path)))
	f.SetBool(FeatureHasQuery, u.RawQuery != "")
	f.SetBool(FeatureSuspiciousTLD, hasAnySuffix(host, patterns.SuspiciousTLDs))
	f.SetBool(FeatureIsTrustedDomain, e.IsTrusted(host))
	f.SetBool(FeatureHasIPAddress, patterns.IPHost.Match(host))
	f.Set(FeatureSpecialCharCount, float64(strings.Count(raw, "-")+strings.Count(raw, "_")+strings.Count(raw, "@")))
	f.Set(FeatureDigitCount, float64(countDigits(host)))

	return f
}

// IsTrusted reports whether host contains one of the trusted news domains.
func (e *URLExtractor) IsTrusted(host string) bool {
	if host == "" {
		return false
	}
	return len(e.trusted.Match([]byte(strings.ToLower(host)))) > 0
}

// ThreatFeatures computes the structural features used for red flags. Counts
// run over host:port as sent, not the bare hostname.
func (e *URLExtractor) ThreatFeatures(raw string) *model.Features {
	f := model.NewFeatures(ThreatFeatureNames...)

	u, ok := parseAbsolute(raw)
	if !ok {
		return f
	}

	netloc := u.Host
	f.Set(FeatureURLLength, float64(len(raw)))
	f.Set(FeatureDomainLength, float64(len(netloc)))
	f.Set(FeaturePathLength, float64(len(u.Path)))
	f.Set(FeatureNumSubdomains, float64(strings.Count(netloc, ".")))
	f.Set(FeatureNumHyphens, float64(strings.Count(netloc, "-")))
	f.Set(FeatureNumDigitsDomain, float64(countDigits(netloc)))
	f.SetBool(FeatureHasPort, u.Port() != "")
	f.SetBool(FeatureHasHTTPS, strings.EqualFold(u.Scheme, "https"))

	return f
}

// RegisteredDomain returns the eTLD+1 of the URL's host, or "" when it has
// none (IP literals, bare TLDs, unparseable input).
func RegisteredDomain(raw string) string {
	u, ok := parseAbsolute(raw)
	if !ok {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if net.ParseIP(host) != nil {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return domain
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
