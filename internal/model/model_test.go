package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatures_KeepDeclaredKeysAndOrder(t *testing.T) {
	f := NewFeatures("b_count", "a_ratio", "has_x")
	f.Set("a_ratio", 0.25)
	f.SetBool("has_x", true)
	f.Set("undeclared", 9)

	assert.Equal(t, []string{"b_count", "a_ratio", "has_x"}, f.Names())
	assert.False(t, f.Has("undeclared"))
	assert.Equal(t, 0.0, f.Get("b_count"))
	assert.True(t, f.Bool("has_x"))

	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `{"b_count":0,"a_ratio":0.25,"has_x":1}`, string(data))
}

func TestFeatures_NilIsEmpty(t *testing.T) {
	var f *Features
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, 0.0, f.Get("anything"))

	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestTagSet_Dedup(t *testing.T) {
	tags := NewTagSet("clickbait", "urgency", "clickbait")
	tags.Add("urgency")

	assert.Equal(t, 2, tags.Len())
	assert.Equal(t, []string{"clickbait", "urgency"}, tags.Slice())
	assert.Equal(t, "clickbait,urgency", tags.String())

	data, err := json.Marshal(NewTagSet())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestProfile_UnmarshalAliases(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Profile
	}{
		{
			name: "canonical keys",
			body: `{"username":"jane","followers":10,"following":5,"verified":true,"has_profile_image":true,"account_age_days":400}`,
			want: Profile{Username: "jane", Followers: 10, Following: 5, Verified: true, HasProfileImage: true, AccountAgeDays: 400, sent: true},
		},
		{
			name: "alias keys and string numbers",
			body: `{"screen_name":"bob","followers_count":"1,200","following_count":3,"profile_image":true,"description":"hi"}`,
			want: Profile{Username: "bob", Bio: "hi", Followers: 1200, Following: 3, HasProfileImage: true, sent: true},
		},
		{
			name: "garbage values ignored",
			body: `{"followers":"lots","verified":"maybe","username":null}`,
			want: Profile{sent: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Profile
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestProfile_DefaultProfile(t *testing.T) {
	assert.False(t, Profile{}.IsDefaultProfile())

	custom := true
	assert.False(t, Profile{CustomProfile: &custom}.IsDefaultProfile())

	p := ProfileFromMap(map[string]any{"has_custom_profile": false})
	assert.True(t, p.IsDefaultProfile())
	assert.False(t, p.IsZero())
}

func TestProfile_IsZero(t *testing.T) {
	assert.True(t, Profile{}.IsZero())
	assert.False(t, Profile{Username: "jane"}.IsZero())

	var empty Profile
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.True(t, empty.IsZero())

	// Keys that were sent count even when every value is zero.
	for _, body := range []string{
		`{"verified": false}`,
		`{"followers": 0, "following": 0, "tweets": 0, "verified": false}`,
	} {
		var p Profile
		require.NoError(t, json.Unmarshal([]byte(body), &p))
		assert.False(t, p.IsZero(), body)
	}
}

func TestJudgment_Resolve(t *testing.T) {
	score, rationale := Scored(142, "looks like satire", "groq").Resolve(30)
	assert.Equal(t, 100.0, score)
	assert.Equal(t, "looks like satire", rationale)

	nan := Scored(math.NaN(), "", "groq")
	assert.True(t, nan.IsScored())
	assert.Equal(t, 0.0, nan.Score)

	score, rationale = Unavailable("timeout").Resolve(37.5)
	assert.Equal(t, 37.5, score)
	assert.Equal(t, "heuristic fallback: timeout", rationale)

	score, rationale = Judgment{}.Resolve(12)
	assert.Equal(t, 12.0, score)
	assert.Equal(t, FallbackRationale, rationale)
}
