package extract

import (
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/patterns"
)

// Profile feature names.
const (
	FeatureFollowerCount      = "follower_count"
	FeatureFollowingCount     = "following_count"
	FeatureTweetCount         = "tweet_count"
	FeatureIsVerified         = "is_verified"
	FeatureHasProfileImage    = "has_profile_image"
	FeatureAccountAgeDays     = "account_age_days"
	FeatureFollowingRatio     = "following_ratio"
	FeatureDefaultProfile     = "default_profile"
	FeatureSuspiciousUsername = "suspicious_username"
)

// ProfileFeatureNames is the declared profile schema.
var ProfileFeatureNames = []string{
	FeatureFollowerCount,
	FeatureFollowingCount,
	FeatureTweetCount,
	FeatureIsVerified,
	FeatureHasProfileImage,
	FeatureAccountAgeDays,
	FeatureFollowingRatio,
	FeatureDefaultProfile,
	FeatureSuspiciousUsername,
}

// Behavioral flags reported alongside the profile density hint.
const (
	FlagLowFollowerRatio = "low_follower_ratio"
	FlagVeryNewAccount   = "very_new_account"
	FlagNewAccount       = "new_account"
	FlagNoProfileImage   = "no_profile_image"
	FlagNoBanner         = "no_banner"
	FlagLowActivity      = "low_activity"
	FlagMassFollowing    = "mass_following"
)

// ProfileExtractor derives features from an account
type ProfileExtractor struct{}

// NewProfileExtractor creates a profile extractor
func NewProfileExtractor() *ProfileExtractor {
	return &ProfileExtractor{}
}

// Extract computes the profile feature set. With no followers the ratio is
// the following count itself.
func (e *ProfileExtractor) Extract(p model.Profile) *model.Features {
	f := model.NewFeatures(ProfileFeatureNames...)

	f.Set(FeatureFollowerCount, float64(p.Followers))
	f.Set(FeatureFollowingCount, float64(p.Following))
	f.Set(FeatureTweetCount, float64(p.Tweets))
	f.SetBool(FeatureIsVerified, p.Verified)
	f.SetBool(FeatureHasProfileImage, p.HasProfileImage)
	f.Set(FeatureAccountAgeDays, float64(p.AccountAgeDays))

	ratio := float64(p.Following)
	if p.Followers > 0 {
		ratio = float64(p.Following) / float64(p.Followers)
	}
	f.Set(FeatureFollowingRatio, ratio)

	f.SetBool(FeatureDefaultProfile, p.IsDefaultProfile())
	f.SetBool(FeatureSuspiciousUsername, patterns.SuspiciousUsername.Match(p.Username))

	return f
}

// BehaviorFlags lists account-behavior warnings. Thresholds are fixed.
func (e *ProfileExtractor) BehaviorFlags(p model.Profile) []string {
	flags := []string{}

	if p.Following > 100 && float64(p.Followers)/float64(p.Following) < 0.1 {
		flags = append(flags, FlagLowFollowerRatio)
	}
	switch {
	case p.AccountAgeDays > 0 && p.AccountAgeDays < 30:
		flags = append(flags, FlagVeryNewAccount)
	case p.AccountAgeDays > 0 && p.AccountAgeDays < 90:
		flags = append(flags, FlagNewAccount)
	}
	if !p.HasProfileImage {
		flags = append(flags, FlagNoProfileImage)
	}
	if !p.HasBanner {
		flags = append(flags, FlagNoBanner)
	}
	if p.Tweets < 10 {
		flags = append(flags, FlagLowActivity)
	}
	if p.Following > 5000 && p.Followers < 500 {
		flags = append(flags, FlagMassFollowing)
	}

	return flags
}
