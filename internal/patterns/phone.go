package patterns

import "github.com/veildoc/veildoc/internal/types"

// Region-specific formats carry higher confidence than the generic fallback
// at the bottom; the conflict resolver then prefers the tighter match.
var phonePatterns = []Pattern{
	// International with + prefix
	{`\+\d{1,4}[\s.-]?\(?\d{1,4}\)?[\s.-]?\d{1,4}[\s.-]?\d{1,9}`, types.PhoneNumber, 90, "phone_international"},

	// Americas
	{`\b\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`, types.PhoneNumber, 90, "phone_us_ca"},
	{`\+55\s?\d{2}\s?\d{4,5}[-.]?\d{4}\b`, types.PhoneNumber, 90, "phone_brazil"},
	{`\+52\s?\d{2,3}\s?\d{4}\s?\d{4}\b`, types.PhoneNumber, 90, "phone_mexico"},

	// Europe
	{`\b0\d{4}\s?\d{6}\b`, types.PhoneNumber, 85, "phone_uk"},
	{`\+44\s?7\d{3}\s?\d{6}\b`, types.PhoneNumber, 90, "phone_uk_intl"},
	{`\+\d{2}\s?\d{1,3}\s?\d{6,8}\b`, types.PhoneNumber, 90, "phone_eu"},
	{`\b0[67]\s?\d{2}\s?\d{2}\s?\d{2}\s?\d{2}\b`, types.PhoneNumber, 90, "phone_france"},

	// Asia
	{`\+86\s?1[3-9]\d\s?\d{4}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_china"},
	{`\b1[3-9]\d[-\s]?\d{4}[-\s]?\d{4}\b`, types.PhoneNumber, 85, "phone_china_local"},
	{`\+81\s?[789]0[-\s]?\d{4}[-\s]?\d{4}\b`, types.PhoneNumber, 95, "phone_japan"},
	{`\b0[789]0[-\s]?\d{4}[-\s]?\d{4}\b`, types.PhoneNumber, 90, "phone_japan_local"},
	{`\+82\s?10[-\s]?\d{4}[-\s]?\d{4}\b`, types.PhoneNumber, 95, "phone_korea"},
	{`\b010[-\s]?\d{4}[-\s]?\d{4}\b`, types.PhoneNumber, 90, "phone_korea_local"},
	{`\+91\s?[6-9]\d{4}\s?\d{5}\b`, types.PhoneNumber, 95, "phone_india"},
	{`\b[6-9]\d{4}\s?\d{5}\b`, types.PhoneNumber, 85, "phone_india_local"},
	{`\+65\s?[89]\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_singapore"},
	{`\+852\s?[5-9]\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_hongkong"},
	{`\+886\s?9\d{2}[-\s]?\d{3}[-\s]?\d{3}\b`, types.PhoneNumber, 95, "phone_taiwan"},
	{`\+62\s?8\d{2}[-\s]?\d{4}[-\s]?\d{3,4}\b`, types.PhoneNumber, 95, "phone_indonesia"},
	{`\+60\s?1[0-9][-\s]?\d{3,4}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_malaysia"},
	{`\+66\s?[89]\d[-\s]?\d{3}[-\s]?\d{4}\b`, types.PhoneNumber, 95, "phone_thailand"},
	{`\+84\s?[389]\d\s?\d{3}\s?\d{2}\s?\d{2}\b`, types.PhoneNumber, 95, "phone_vietnam"},
	{`\+63\s?9\d{2}\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_philippines"},

	// Middle East
	{`\+971\s?5[0-9]\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_uae"},
	{`\+966\s?5[0-9]\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_saudi"},
	{`\+972\s?5[0-9][-\s]?\d{3}[-\s]?\d{4}\b`, types.PhoneNumber, 95, "phone_israel"},

	// Africa
	{`\+27\s?\d{2}\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_southafrica"},
	{`\+234\s?\d{3}\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_nigeria"},
	{`\+254\s?7\d{2}\s?\d{3}\s?\d{3}\b`, types.PhoneNumber, 95, "phone_kenya"},
	{`\+20\s?1[0-2]\s?\d{4}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_egypt"},

	// Oceania
	{`\+61\s?4\d{2}\s?\d{3}\s?\d{3}\b`, types.PhoneNumber, 95, "phone_australia"},
	{`\+64\s?2[0-9]\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_newzealand"},

	// Russia & CIS
	{`\+7\s?9\d{2}[-\s]?\d{3}[-\s]?\d{2}[-\s]?\d{2}\b`, types.PhoneNumber, 95, "phone_russia"},
	{`\b8\s?9\d{2}[-\s]?\d{3}[-\s]?\d{2}[-\s]?\d{2}\b`, types.PhoneNumber, 90, "phone_russia_local"},
	{`\+380\s?\d{2}\s?\d{3}\s?\d{2}\s?\d{2}\b`, types.PhoneNumber, 95, "phone_ukraine"},

	// Turkey
	{`\+90\s?5\d{2}\s?\d{3}\s?\d{2}\s?\d{2}\b`, types.PhoneNumber, 95, "phone_turkey"},
	{`\b05\d{2}\s?\d{3}\s?\d{2}\s?\d{2}\b`, types.PhoneNumber, 90, "phone_turkey_local"},

	// South America
	{`\+54\s?9?\s?\d{2,4}\s?\d{4}[-\s]?\d{4}\b`, types.PhoneNumber, 95, "phone_argentina"},
	{`\+57\s?3\d{2}\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_colombia"},
	{`\+56\s?9\s?\d{4}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_chile"},
	{`\+51\s?9\d{2}\s?\d{3}\s?\d{3}\b`, types.PhoneNumber, 95, "phone_peru"},

	// South Asia
	{`\+92\s?3\d{2}[-\s]?\d{7}\b`, types.PhoneNumber, 95, "phone_pakistan"},
	{`\b03\d{2}[-\s]?\d{7}\b`, types.PhoneNumber, 90, "phone_pakistan_local"},
	{`\+880\s?1\d{3}[-\s]?\d{6}\b`, types.PhoneNumber, 95, "phone_bangladesh"},

	// Nordics
	{`\+46\s?7\d[-\s]?\d{3}[-\s]?\d{2}[-\s]?\d{2}\b`, types.PhoneNumber, 95, "phone_sweden"},
	{`\b07\d[-\s]?\d{3}[-\s]?\d{2}[-\s]?\d{2}\b`, types.PhoneNumber, 90, "phone_sweden_local"},
	{`\+47\s?[49]\d{2}\s?\d{2}\s?\d{3}\b`, types.PhoneNumber, 95, "phone_norway"},
	{`\+45\s?\d{2}\s?\d{2}\s?\d{2}\s?\d{2}\b`, types.PhoneNumber, 95, "phone_denmark"},
	{`\+358\s?4\d\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_finland"},

	// Other EU
	{`\+43\s?6\d{2}\s?\d{6}\b`, types.PhoneNumber, 95, "phone_austria"},
	{`\+351\s?9\d{2}\s?\d{3}\s?\d{3}\b`, types.PhoneNumber, 95, "phone_portugal"},
	{`\+30\s?6\d{2}\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_greece"},
	{`\+353\s?8\d\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_ireland"},
	{`\+420\s?\d{3}\s?\d{3}\s?\d{3}\b`, types.PhoneNumber, 95, "phone_czech"},
	{`\+40\s?7\d{2}\s?\d{3}\s?\d{3}\b`, types.PhoneNumber, 95, "phone_romania"},
	{`\+36\s?\d{2}\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_hungary"},
	{`\+48\s?\d{3}\s?\d{3}\s?\d{3}\b`, types.PhoneNumber, 95, "phone_poland"},
	{`\+359\s?\d{2}\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_bulgaria"},
	{`\+385\s?9\d\s?\d{3}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_croatia"},
	{`\+357\s?9\d\s?\d{6}\b`, types.PhoneNumber, 95, "phone_cyprus"},
	{`\+372\s?\d{4}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_estonia"},
	{`\+371\s?2\d\s?\d{3}\s?\d{3}\b`, types.PhoneNumber, 95, "phone_latvia"},
	{`\+370\s?6\d{2}\s?\d{5}\b`, types.PhoneNumber, 95, "phone_lithuania"},
	{`\+352\s?6\d{2}\s?\d{3}\s?\d{3}\b`, types.PhoneNumber, 95, "phone_luxembourg"},
	{`\+356\s?99\d{2}\s?\d{4}\b`, types.PhoneNumber, 95, "phone_malta"},
	{`\+421\s?9\d{2}\s?\d{3}\s?\d{3}\b`, types.PhoneNumber, 95, "phone_slovakia"},
	{`\+386\s?\d{2}\s?\d{3}\s?\d{3}\b`, types.PhoneNumber, 95, "phone_slovenia"},

	// North Africa
	{`\+212\s?6\d{2}[-\s]?\d{6}\b`, types.PhoneNumber, 95, "phone_morocco"},
	{`\+213\s?\d\s?\d{2}\s?\d{2}\s?\d{2}\s?\d{2}\b`, types.PhoneNumber, 95, "phone_algeria"},

	// Generic fallback
	{`\b\+?\d[\d\s().-]{8,}\d\b`, types.PhoneNumber, 75, "phone_generic"},
}
