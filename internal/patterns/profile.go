package patterns

import (
	"regexp"
	"strings"
)

// SuspiciousUsername is the heuristic-scorer rule: a run of four or more digits.
var SuspiciousUsername = Regex("suspicious_username", `\d{4,}`)

var (
	alnum8     = regexp.MustCompile(`^[A-Za-z0-9]{8,}$`)
	junkExempt = map[string]bool{"support": true, "help": true, "crypto": true, "official": true, "real": true}
)

// randomJunk: eight or more letters/digits with no separator, excluding a few
// plain words.
func randomJunk(s string) bool {
	return alnum8.MatchString(s) && !junkExempt[s]
}

// repeatedChars: an alphanumeric character repeated at least three times,
// with at least one character on each side ("loooove", "freeeee!").
func repeatedChars(s string) bool {
	r := []rune(s)
	for i := 1; i+3 < len(r); i++ {
		if isASCIIAlnum(r[i]) && r[i] == r[i+1] && r[i+1] == r[i+2] {
			return true
		}
	}
	return false
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Username flags bot, spam and scam handle shapes.
var Username = NewLibrary("username",
	Predicate("username_random_junk", randomJunk),
	Regex("username_digit_prefix", `^\d{3,}[A-Za-z_]+$`),
	Regex("username_digit_suffix", `^[A-Za-z_]+\d{3,}$`),
	Regex("username_fake_news", `(?i)^\w*(news|alerts?|update|breaking)\w*$`),
	Regex("username_bot_like", `(?i)^\w*(bot|auto|autopost)\w*$`),
	Predicate("username_repeated_chars", repeatedChars),
	Regex("username_marketing", `(?i)^\w*(marketing|promo|deals?|discounts?|offers?)\w*$`),
	Regex("username_trading_scam", `(?i)^\w*(trader|forex|signals?|pips|options|derivatives)\w*$`),
	Regex("username_nsfw", `(?i)^\w*(xxx|nsfw|onlyfans|18\+|nude|hotgirl|hotboy)\w*$`),
)

// DisplayName flags impersonation and promo display names.
var DisplayName = NewLibrary("display_name",
	Regex("display_fake_role", `(?i)\b(ceo|founder|owner|director)\s+of\b`),
	Regex("display_mostly_emoji", `^(?:[\x{1F300}-\x{1F6FF}\x{1F900}-\x{1F9FF}]\s*){3,}$`),
	Regex("display_giveaway", `(?i)\b(giveaway|free|win|prize|jackpot|lottery)\b`),
	Regex("display_fan_parody", `(?i)\b(fan\s*account|parody|backup)\b`),
	Regex("display_crypto_trader", `(?i)\b(crypto trader|forex signals?|investment expert|profit daily)\b`),
)

// Bio flags scam and spam phrasing in the profile description.
var Bio = NewLibrary("bio",
	Regex("bio_dm_for", `(?i)\b(dm|inbox|message)\s+(for|me for)\s+(details|collab|promo|signals|investment|trading)\b`),
	Regex("bio_fast_money", `(?i)\b(earn|make)\s+\$?\d+\s+(per day|daily|every day|per hour)\b`),
	Regex("bio_no_risk_profit", `(?i)\b(no risk|guaranteed profit|sure profit|100% profit)\b`),
	Regex("bio_crypto_promo", `(?i)\b(crypto|bitcoin|btc|eth|forex|nft|binance|bybit)\b.*\b(signals?|profits?|returns?)\b`),
	Regex("bio_whatsapp_contact", `(?i)\b(whatsapp|wa\.me|message me on wa)\b`),
	Regex("bio_telegram_contact", `(?i)\b(telegram|t\.me/|join my channel)\b`),
	Regex("bio_fake_support", `(?i)\b(official support|customer support|helpdesk|24/7 support)\b`),
	Regex("bio_disclaimer_shady", `(?i)\b(not responsible for any loss|trade at your own risk)\b`),
	Regex("bio_not_affiliated", `(?i)\b(not affiliated with|unofficial|fan made)\b`),
	Regex("bio_follow_gain", `(?i)\b(follow back|follow4follow|f4f|gain\s+followers)\b`),
	Regex("bio_link_in_bio", `(?i)\b(link in bio|check my bio link|tap the link)\b`),
	Regex("bio_nsfw", `(?i)\b(18\+|nsfw|onlyfans|nudes|adult content)\b`),
	Regex("bio_fake_authority", `(?i)\b(official page of|real account of|only real account|verified by)\b`),
	Regex("bio_scammy_phrases", `(?i)\b(double your money|send me and I will|investment plan|dm for investment)\b`),
	Regex("bio_giveaway_scam", `(?i)\b(daily giveaways|retweet for a chance to win|send wallet address)\b`),
)

// Link flags the profile's website destination.
var Link = NewLibrary("link",
	Regex("url_whatsapp", `https?://(wa\.me|api\.whatsapp\.com)/`),
	Regex("url_telegram", `https?://(t\.me|telegram\.me)/`),
	Regex("url_linktree", `https?://(linktr\.ee|linktree\.com)/`),
	Regex("url_carrd", `https?://[A-Za-z0-9\-]+\.carrd\.co/`),
	Regex("url_biorelink", `https?://(bio\.link|instabio\.cc|beacons\.ai)/`),
	Regex("url_crypto_landing", `https?://[A-Za-z0-9\.\-]+/(crypto|bitcoin|btc|eth|nft|forex|signals|investment|profit)`),
	Regex("url_fake_support_like", `https?://[A-Za-z0-9\.\-]+/(support|helpdesk|customerservice|customer-support)`),
)

// LanguageHints are extra bio phrases typical of service-selling accounts.
var LanguageHints = NewLibrary("language_hints",
	Regex("bio_worldwide", `(?i)\b(worldwide|global service|service all over the world)\b`),
	Regex("bio_247", `(?i)\b(24/7|24x7)\b.*\b(support|signals?|trading|online)\b`),
)

// ProfileDensity lists every profile library; its Len is the density denominator.
var ProfileDensity = Set{Username, DisplayName, Bio, Link, LanguageHints}

// NormalizeHandle strips a leading @ so handles match the username table.
func NormalizeHandle(username string) string {
	return strings.TrimPrefix(strings.TrimSpace(username), "@")
}
