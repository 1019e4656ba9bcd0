package patterns

import "github.com/veildoc/veildoc/internal/types"

var datePatterns = []Pattern{
	// ISO: 2024-01-15
	{`\b\d{4}-(?:0[1-9]|1[0-2])-(?:0[1-9]|[12]\d|3[01])\b`, types.Date, 95, "date_iso"},
	// European: 15-01-2024 or 15/01/2024
	{`\b(?:0[1-9]|[12]\d|3[01])[-/](?:0[1-9]|1[0-2])[-/]\d{4}\b`, types.Date, 90, "date_eu"},
	// US: 01/15/2024
	{`\b(?:0[1-9]|1[0-2])[-/](?:0[1-9]|[12]\d|3[01])[-/]\d{4}\b`, types.Date, 85, "date_us"},
	// Short year: 15/01/24
	{`\b(?:0[1-9]|[12]\d|3[01])[-/](?:0[1-9]|1[0-2])[-/]\d{2}\b`, types.Date, 80, "date_short"},

	// CJK calendar notations. No trailing \b: Go word boundaries are ASCII
	// and never fire next to CJK characters.
	{`\b\d{4}年(?:0?[1-9]|1[0-2])月(?:0?[1-9]|[12]\d|3[01])日`, types.Date, 95, "date_chinese"},
	{`(?:令和|平成|昭和)?\d{1,4}年(?:0?[1-9]|1[0-2])月(?:0?[1-9]|[12]\d|3[01])日`, types.Date, 95, "date_japanese"},
	{`\b\d{4}년\s?(?:0?[1-9]|1[0-2])월\s?(?:0?[1-9]|[12]\d|3[01])일`, types.Date, 95, "date_korean"},

	// Day-first with slashes, common in Arabic-script regions
	{`\b(?:0[1-9]|[12]\d|3[01])/(?:0[1-9]|1[0-2])/\d{4}\b`, types.Date, 85, "date_arabic"},

	// Written English
	{`\b(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+\d{1,2},?\s+\d{4}\b`, types.Date, 90, "date_written"},
	{`\b\d{1,2}\s+(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+\d{4}\b`, types.Date, 90, "date_written_eu"},
}

var dateOfBirthPatterns = []Pattern{
	// Explicit multilingual DOB markers
	{`(?:DOB|D\.O\.B\.|Date\s+of\s+Birth|Geboren|Geboortedatum|Né\(e\)\s+le|Fecha\s+de\s+Nacimiento|Data\s+di\s+Nascita|出生日期|生年月日|생년월일)[\s:]+(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`, types.DateOfBirth, 98, "dob_explicit"},
	{`(?:born|geboren|née?|nacido|nato|出生|生まれ)[\s:]+(?:on\s+)?(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`, types.DateOfBirth, 95, "dob_born"},
}
