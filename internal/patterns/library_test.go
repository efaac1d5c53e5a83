package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLibrarySizes(t *testing.T) {
	assert.Equal(t, 7, Text.Len())
	assert.Equal(t, 32, FakeNews.Len())
	assert.Equal(t, 30, URLThreat.Len())
	assert.Equal(t, 38, ProfileDensity.Len())
}

func TestLibrary_MatchAndCount(t *testing.T) {
	text := "BREAKING: shocking truth doctors hate, you won't believe what happens next!!!"

	assert.True(t, Text.Match(TextUrgency, text))
	assert.Equal(t, 2, Text.Count(TextUrgency, text)) // BREAKING, shocking
	assert.Equal(t, 3, Text.Count(TextClickbait, text))
	assert.False(t, Text.Match(TextConspiracy, text))
	assert.False(t, Text.Match("no_such_category", text))
	assert.Equal(t, 0, Text.Count("no_such_category", text))
}

func TestText_AllCapsIsCaseSensitive(t *testing.T) {
	assert.True(t, Text.Match(TextAllCaps, "this is HUGELY IMPORTANT"))
	assert.False(t, Text.Match(TextAllCaps, "this is hugely important"))
	assert.True(t, Text.Match(TextUrgency, "breaking"))
}

func TestLibrary_MatchAllOrderAndDedup(t *testing.T) {
	tags := FakeNews.MatchAll("Whistleblower EXPOSED: vaccines kill, scam! Don’t ignore this")
	assert.Equal(t, []string{"anti_science", "misinfo_keywords", "emotional_trigger"}, tags.Slice())
}

func TestURLStructure(t *testing.T) {
	tests := []struct {
		url  string
		want []string
	}{
		{"https://example.com/", nil},
		{"http://free-prizes.xyz/claim", []string{"tld_suspicious"}},
		{"https://example.com/file.link/", nil},
		{"http://192.168.1.10:8080/x", []string{"ip_address_url", "unusual_port"}},
		{"https://bit.ly/abc", []string{"url_shortener"}},
		{"https://a.b.c.d.example.com/", []string{"many_subdomains"}},
		{"https://user@evil.com/", []string{"at_symbol"}},
		{"https://x.com/invoice.pdf.exe", []string{"double_extension"}},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got := URLStructure.MatchAll(tt.url).Slice()
			if tt.want == nil {
				tt.want = []string{}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLContentTyposquat(t *testing.T) {
	tags := URLContent.MatchAll("http://paypa1-secure.com/login")
	assert.True(t, tags.Has("typosquat_paypal"))
	assert.True(t, tags.Has("phishing_keywords"))
	assert.False(t, tags.Has("typosquat_google"))
}

func TestUsernamePredicates(t *testing.T) {
	tests := []struct {
		name     string
		category string
		input    string
		want     bool
	}{
		{"junk handle", "username_random_junk", "xk29dj3k4l", true},
		{"exempt word", "username_random_junk", "official", false},
		{"too short", "username_random_junk", "abc123", false},
		{"separator breaks junk", "username_random_junk", "john_smith_99", false},
		{"interior run", "username_repeated_chars", "loooove", true},
		{"run at end needs trailing char", "username_repeated_chars", "freeee", true},
		{"no run", "username_repeated_chars", "hello", false},
		{"run touching both ends", "username_repeated_chars", "aaa", false},
		{"digit suffix", "username_digit_suffix", "jane1234", true},
		{"bot like", "username_bot_like", "NewsAutoBot", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Username.Match(tt.category, tt.input))
		})
	}
}

func TestDisplayNameEmoji(t *testing.T) {
	assert.True(t, DisplayName.Match("display_mostly_emoji", "🔥🚀 💰"))
	assert.False(t, DisplayName.Match("display_mostly_emoji", "🔥 Jane"))
}

func TestSuspiciousUsername(t *testing.T) {
	assert.True(t, SuspiciousUsername.Match("user84629"))
	assert.False(t, SuspiciousUsername.Match("user846"))
	assert.Equal(t, "jane", NormalizeHandle(" @jane"))
}
