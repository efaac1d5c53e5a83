package patterns

// Heuristic text categories. Each becomes a <name>_count feature.
const (
	TextUrgency        = "urgency"
	TextAllCaps        = "all_caps"
	TextClickbait      = "clickbait"
	TextConspiracy     = "conspiracy"
	TextUnverified     = "unverified"
	TextEmotional      = "emotional"
	TextMissingContext = "missing_context"
)

// Text is the heuristic text library. all_caps is deliberately case-sensitive.
var Text = NewLibrary("text",
	Regex(TextUrgency, `(?i)\b(URGENT|BREAKING|ALERT|NOW|MUST SEE|SHOCKING)\b`),
	Regex(TextAllCaps, `\b[A-Z]{5,}\b`),
	Regex(TextClickbait, `(?i)\b(you won't believe|doctors hate|one weird trick|what happens next)\b`),
	Regex(TextConspiracy, `(?i)\b(wake up|sheeple|they don't want you to know|cover-?up|deep state)\b`),
	Regex(TextUnverified, `(?i)\b(reportedly|allegedly|rumored|unconfirmed|sources say)\b`),
	Regex(TextEmotional, `(?i)\b(outrageous|disgusting|terrifying|devastating|horrifying)\b`),
	Regex(TextMissingContext, `(?i)\b(study shows|research proves|scientists say|experts claim)\b`),
)

// EmbeddedURL matches links inside post text.
var EmbeddedURL = Regex("embedded_url", `https?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\(\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)

// FakeNews is the misinformation density table used to brief the adjudicator.
var FakeNews = NewLibrary("fake_news",
	Regex("extreme_emotion", `(?i)\b(shocking truth|heartbreaking news|terrifying|horrifying|extremely dangerous|unthinkable|catastrophe)\b`),
	Regex("political_fake", `(?i)\b(rigged election|fake voting machines|secret bill passed|government collapse|pm/resigned secretly|coup happening)\b`),
	Regex("fake_death", `(?i)\b(has died|passed away suddenly|died in accident|found dead|death hoax|death rumor)\b`),
	Regex("fake_media_claims", `(?i)\b(deepfake|not real footage|edited video|doctored image|fabricated recording)\b`),
	Regex("anti_science", `(?i)\b(vaccines kill|earth is flat|hidden cure|scientists lied|fake science|climate change hoax)\b`),
	Regex("fake_warning", `(?i)\b(warning issued|avoid this immediately|do not eat this|stop using this product|recall notice circulating)\b`),
	Regex("fake_ban", `(?i)\b(banned by govt|govt banned immediately|prohibited by law starting tomorrow|illegal from midnight)\b`),
	Regex("fake_emergency", `(?i)\b(red alert|emergency declared|military deployed|curfew from tonight|panic alert)\b`),
	Regex("manipulated_stats", `(?i)\b(\d{1,3}% increase overnight|skyrocketed by \d{1,3}%|sudden drop of \d{1,3}%|numbers hidden)\b`),
	Regex("ai_fake_style", `(?i)\b(the truth they fear|everything changes today|revealed after years|hidden for decades)\b`),
	Regex("health_conspiracy", `(?i)\b(cancer cure suppressed|miracle herb|doctors hiding|pharma mafia|virus created in lab secretly)\b`),
	Regex("miracle_product", `(?i)\b(lose weight instantly|grow taller in days|hair grows overnight|magic remedy)\b`),
	Regex("scare_chain", `(?i)\b(urgent notice|your phone will explode|this message saved lives|read carefully your life depends)\b`),
	Regex("child_threat", `(?i)\b(save your children|children in danger|something harming kids|child kidnapping alert)\b`),
	Regex("communal_fear", `(?i)\b(attacked by group|religion targeting|community violence started|mass riots)\b`),
	Regex("fake_reward", `(?i)\b(win a free car|congratulations you won|click to claim reward|you have been selected)\b`),
	Regex("fake_verification", `(?i)\b(this is verified|verified message|confirmed by insider|govt insider confirms)\b`),
	Regex("old_news_recycled", `(?i)\b(happened today|just now but from old events)\b`),
	Regex("job_scam", `(?i)\b(earn money from home|instant job|work 1 hour daily|daily payment guaranteed)\b`),
	Regex("medical_emergency", `(?i)\b(bleeding from nose due to mobile radiation|new virus outbreak started|dangerous mosquito spreading)\b`),
	Regex("communal_crime_fake", `(?i)\b(attacked by migrants|attacked by xyz religion|group targeted on purpose)\b`),
	Regex("fake_financial_crisis", `(?i)\b(banks shutting down tomorrow|withdraw all your money|financial system collapsing)\b`),
	Regex("fake_food_alert", `(?i)\b(poison found in food|avoid milk today|contaminated water nationwide)\b`),
	Regex("fake_disaster_alert", `(?i)\b(earthquake predicted tonight|tsunami warning fake|super cyclone will hit your city)\b`),
	Regex("surveillance_fake", `(?i)\b(secret CCTV everywhere|phones tapped|government listening to calls secretly)\b`),
	Regex("misinfo_keywords", `(?i)\b(fraud|exposed|scam|whistleblower|coverup|truth revealed)\b`),
	Regex("historical_fake", `(?i)\b(hidden history|real history suppressed|truth they never teach)\b`),
	Regex("medical_myth", `(?i)\b(garlic cures everything|drink this for instant cure|avoid vaccines|natural cure works better)\b`),
	Regex("emotional_trigger", `(?i)\b(heart-touching|must read till end|don['’]t ignore this|important for your family)\b`),
	Regex("polarizing_language", `(?i)\b(choose your side|they are the enemy|they want to destroy us)\b`),
	Regex("fake_shutdown", `(?i)\b(internet will stop|fb shutting down|twitter closing permanently|whatsapp will charge money)\b`),
	Regex("health_hoax", `(?i)\b(boil this leaf|mix these ingredients|cure in 5 minutes|healed instantly)\b`),
)
