package patterns

// Trust-variant data. The short TLD blocklist is intentionally separate from
// the structural one below; the two feed different scorers.
var (
	// SuspiciousTLDs are host suffixes penalized by the trust scorer.
	SuspiciousTLDs = []string{".tk", ".ml", ".ga", ".cf", ".gq"}

	// TrustedNewsDomains are matched as substrings of the host.
	TrustedNewsDomains = []string{
		"bbc.com",
		"nytimes.com",
		"reuters.com",
		"apnews.com",
		"theguardian.com",
		"wsj.com",
		"washingtonpost.com",
	}
)

// IPHost matches a dotted-quad anywhere in a host.
var IPHost = Regex("ip_host", `\d+\.\d+\.\d+\.\d+`)

// URLStructure flags suspicious URL shapes.
var URLStructure = NewLibrary("url_structure",
	// Anchored on the host so a path like /file.link does not count.
	Regex("tld_suspicious", `(?i)^(?:[a-z][a-z0-9+.\-]*://)?[^/?#\s]+\.(xyz|top|club|work|click|link|gq|ml|tk|ga|cf|pw|cc|ws)(?::\d+)?(?:[/?#]|$)`),
	Regex("ip_address_url", `https?://\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`),
	Regex("long_subdomain", `https?://[a-zA-Z0-9\-]{30,}\.`),
	Regex("many_subdomains", `https?://([a-zA-Z0-9\-]+\.){4,}`),
	Regex("url_shortener", `https?://(bit\.ly|tinyurl\.com|t\.co|goo\.gl|ow\.ly|is\.gd|buff\.ly|short\.link|cutt\.ly|rebrand\.ly)/`),
	Regex("unusual_port", `https?://[^/]+:\d{4,5}/`),
	Regex("double_extension", `\.(pdf|doc|jpg|png)\.(exe|php|html|js)$`),
	Regex("encoded_chars", `%[0-9A-Fa-f]{2}.*%[0-9A-Fa-f]{2}.*%[0-9A-Fa-f]{2}`),
	Regex("at_symbol", `https?://[^/]*@`),
	Regex("hyphen_abuse", `https?://[a-zA-Z0-9]*-{2,}[a-zA-Z0-9]*\.`),
)

// URLContent flags lures and brand typosquats anywhere in the URL.
var URLContent = NewLibrary("url_content",
	Regex("phishing_keywords", `(?i)(login|signin|verify|secure|account|update|confirm|password|credential|auth|banking)`),
	Regex("scam_keywords", `(?i)(free-?money|winner|prize|lottery|jackpot|claim|reward|gift-?card|bonus)`),
	Regex("crypto_scam", `(?i)(crypto|bitcoin|btc|eth|wallet|airdrop|token|nft|binance|coinbase).*?(free|claim|double|send)`),
	Regex("fake_support", `(?i)(support|helpdesk|customer-?service|tech-?support|call-?now|fix-?error)`),
	Regex("urgency_keywords", `(?i)(urgent|immediate|act-?now|limited|expire|hurry|fast|quick)`),
	Regex("nsfw_url", `(?i)(xxx|porn|adult|nsfw|sex|nude|onlyfans|18\+)`),
	Regex("malware_keywords", `(?i)(download|install|update|patch|crack|keygen|serial|hack|cheat)`),
	Regex("typosquat_google", `(?i)(g00gle|googel|gooogle|googlle|google[0-9])`),
	Regex("typosquat_facebook", `(?i)(faceb00k|facebok|facebbook|facebook[0-9])`),
	Regex("typosquat_amazon", `(?i)(amaz0n|amazn|amazoon|amazon[0-9])`),
	Regex("typosquat_paypal", `(?i)(paypa1|paypall|paypa[0-9]|pay-?pal[0-9])`),
	Regex("typosquat_microsoft", `(?i)(micros0ft|microsft|mircosoft|microsoft[0-9])`),
	Regex("typosquat_apple", `(?i)(app1e|applle|apple[0-9])`),
)

// URLPlatform flags off-platform destinations common in scams.
var URLPlatform = NewLibrary("url_platform",
	Regex("whatsapp_link", `https?://(wa\.me|api\.whatsapp\.com|chat\.whatsapp\.com)/`),
	Regex("telegram_link", `https?://(t\.me|telegram\.me|telegram\.org)/`),
	Regex("linktree", `https?://(linktr\.ee|linktree\.com)/`),
	Regex("bio_link", `https?://(bio\.link|instabio\.cc|beacons\.ai|lnk\.bio)/`),
	Regex("carrd", `https?://[A-Za-z0-9\-]+\.carrd\.co/`),
	Regex("file_sharing", `https?://(mega\.nz|mediafire\.com|zippyshare\.com|rapidgator|uploaded\.net)/`),
	Regex("paste_site", `https?://(pastebin\.com|ghostbin\.com|paste\.ee|hastebin\.com)/`),
)

// URLThreat is the union scored by the threat-structural scorer.
var URLThreat = Set{URLStructure, URLContent, URLPlatform}
