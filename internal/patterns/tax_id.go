package patterns

import "github.com/veildoc/veildoc/internal/types"

var taxIDPatterns = []Pattern{
	// US EIN
	{`\b\d{2}-\d{7}\b`, types.TaxID, 90, "ein_us"},
	// UK VAT
	{`\bGB\s?\d{3}\s?\d{4}\s?\d{2}\b`, types.TaxID, 95, "vat_uk"},
	// EU VAT, generic
	{`\b[A-Z]{2}\d{8,12}\b`, types.TaxID, 85, "vat_eu"},
	// Australia ABN
	{`\b\d{2}\s?\d{3}\s?\d{3}\s?\d{3}\b`, types.TaxID, 85, "abn_australia"},
	// India GSTIN
	{`\b\d{2}[A-Z]{5}\d{4}[A-Z]\d[A-Z\d][A-Z]\d\b`, types.TaxID, 95, "gstin_india"},
	// China unified tax number
	{`\b\d{18}\b`, types.TaxID, 75, "tax_china"},
}
