package patterns

import "github.com/veildoc/veildoc/internal/types"

// Card patterns are deliberately loose on separators; the Luhn gate in
// DetectWithValidation drops anything that does not check out.
var creditCardPatterns = []Pattern{
	// Visa
	{`\b4\d{3}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`, types.CreditCard, 95, "cc_visa"},
	// Mastercard: 5xxx or 2xxx ranges
	{`\b(?:5[1-5]\d{2}|2[2-7]\d{2})[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`, types.CreditCard, 95, "cc_mastercard"},
	// American Express: 15 digits, 4-6-5 grouping
	{`\b3[47]\d{2}[-\s]?\d{6}[-\s]?\d{5}\b`, types.CreditCard, 95, "cc_amex"},
	// Discover
	{`\b6(?:011|5\d{2})[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`, types.CreditCard, 95, "cc_discover"},
	// JCB
	{`\b35(?:2[89]|[3-8]\d)[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`, types.CreditCard, 95, "cc_jcb"},
	// UnionPay
	{`\b62\d{2}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`, types.CreditCard, 95, "cc_unionpay"},
	// Diners Club
	{`\b3(?:0[0-5]|[68]\d)\d[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{2}\b`, types.CreditCard, 95, "cc_diners"},
	// Generic 16-digit fallback
	{`\b(?:\d{4}[-\s]?){3}\d{4}\b`, types.CreditCard, 85, "cc_generic"},
}
