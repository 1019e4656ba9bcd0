package patterns

import "github.com/veildoc/veildoc/internal/types"

var passportPatterns = []Pattern{
	{`\b[A-Z]{1,2}\d{6,9}\b`, types.PassportNumber, 75, "passport_generic"},
	{`\b\d{9}\b`, types.PassportNumber, 60, "passport_us"},
	{`\b\d{9}\b`, types.PassportNumber, 60, "passport_uk"},
	{`\b[CFGHJKLMNPRTVWXYZ0-9]{10}\b`, types.PassportNumber, 80, "passport_de"},
	{`\b[EGeg]\d{8}\b`, types.PassportNumber, 90, "passport_china"},
	{`\b[A-Z]{2}\d{7}\b`, types.PassportNumber, 85, "passport_japan"},
	{`\b[A-Z]\d{7}\b`, types.PassportNumber, 80, "passport_india"},
	{`\b[A-Z]\d{8}\b`, types.PassportNumber, 85, "passport_korea"},
}
