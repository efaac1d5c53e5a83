package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Profile is a social-media account as sent by the extension. Every field is
// optional; absent fields keep their zero value.
type Profile struct {
	Username        string `json:"username"`
	DisplayName     string `json:"display_name"`
	Bio             string `json:"bio"`
	URL             string `json:"url"`
	Followers       int    `json:"followers"`
	Following       int    `json:"following"`
	Tweets          int    `json:"tweets"`
	Verified        bool   `json:"verified"`
	HasProfileImage bool   `json:"has_profile_image"`
	HasBanner       bool   `json:"has_banner"`
	AccountAgeDays  int    `json:"account_age_days"`

	// CustomProfile is nil when the client did not say; an unknown profile
	// counts as custom.
	CustomProfile *bool `json:"has_custom_profile,omitempty"`

	// sent is set when the profile was decoded from an object with at least
	// one key, even if every value was zero.
	sent bool
}

// Field aliases accepted from older clients.
var (
	usernameKeys    = []string{"username", "screen_name", "handle"}
	displayNameKeys = []string{"display_name", "name"}
	bioKeys         = []string{"bio", "description"}
	urlKeys         = []string{"url", "website"}
	followersKeys   = []string{"followers", "followers_count"}
	followingKeys   = []string{"following", "following_count", "friends_count"}
	tweetsKeys      = []string{"tweets", "tweet_count", "statuses_count"}
	verifiedKeys    = []string{"verified", "is_verified"}
	imageKeys       = []string{"has_profile_image", "profile_image"}
	bannerKeys      = []string{"has_banner", "banner"}
	ageKeys         = []string{"account_age_days", "account_age"}
	customKeys      = []string{"has_custom_profile"}
)

// ProfileFromMap builds a Profile from a loosely typed JSON object. Numbers may
// be JSON numbers or numeric strings; unknown or malformed values are ignored.
func ProfileFromMap(m map[string]any) Profile {
	p := Profile{
		Username:        stringField(m, usernameKeys),
		DisplayName:     stringField(m, displayNameKeys),
		Bio:             stringField(m, bioKeys),
		URL:             stringField(m, urlKeys),
		Followers:       intField(m, followersKeys),
		Following:       intField(m, followingKeys),
		Tweets:          intField(m, tweetsKeys),
		Verified:        boolField(m, verifiedKeys),
		HasProfileImage: boolField(m, imageKeys),
		HasBanner:       boolField(m, bannerKeys),
		AccountAgeDays:  intField(m, ageKeys),
		sent:            len(m) > 0,
	}
	if v, ok := lookup(m, customKeys); ok {
		b := toBool(v)
		p.CustomProfile = &b
	}
	return p
}

// UnmarshalJSON accepts the canonical keys and their aliases.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*p = ProfileFromMap(m)
	return nil
}

// IsDefaultProfile reports whether the account uses the platform default look.
func (p Profile) IsDefaultProfile() bool {
	return p.CustomProfile != nil && !*p.CustomProfile
}

// IsZero reports whether the profile is absent: decoded from an empty object,
// or built in code with no field set.
func (p Profile) IsZero() bool {
	return !p.sent && p.Username == "" && p.DisplayName == "" && p.Bio == "" && p.URL == "" &&
		p.Followers == 0 && p.Following == 0 && p.Tweets == 0 &&
		!p.Verified && !p.HasProfileImage && !p.HasBanner &&
		p.AccountAgeDays == 0 && p.CustomProfile == nil
}

func lookup(m map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(m map[string]any, keys []string) string {
	v, ok := lookup(m, keys)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}

func intField(m map[string]any, keys []string) int {
	v, ok := lookup(m, keys)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(n, ",", "")), 64)
		if err != nil {
			return 0
		}
		return int(f)
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

func boolField(m map[string]any, keys []string) bool {
	v, ok := lookup(m, keys)
	if !ok {
		return false
	}
	return toBool(v)
}

func toBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return err == nil && parsed
	}
	return false
}
