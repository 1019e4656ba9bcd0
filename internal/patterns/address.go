package patterns

import "github.com/veildoc/veildoc/internal/types"

// Bare 4-6 digit postcodes are weak evidence on their own, hence the low
// confidence relative to labeled street formats.
var addressPatterns = []Pattern{
	// Americas
	{`\b\d{1,5}\s+[A-Za-z]+(?:\s+[A-Za-z]+)*\s+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Place|Pl|Way|Circle|Cir)\b`, types.Address, 85, "street_address_us"},
	{`\b\d{5}(?:-\d{4})?\b`, types.Address, 70, "zipcode_us"},
	{`\b[A-Z]\d[A-Z]\s?\d[A-Z]\d\b`, types.Address, 90, "postcode_ca"},
	{`\b\d{5}-\d{3}\b`, types.Address, 90, "cep_brazil"},

	// Europe
	{`\b[A-Z][a-z]+(?:straat|weg|laan|plein|gracht|singel|kade)\s+\d{1,5}(?:\s?[a-z])?\b`, types.Address, 90, "street_address_nl"},
	{`\b\d{4}\s?[A-Z]{2}\b`, types.Address, 90, "postcode_nl"},
	{`\b[A-Z][a-z]+(?:straße|strasse|weg|platz|allee|gasse)\s+\d{1,5}(?:\s?[a-z])?\b`, types.Address, 90, "street_address_de"},
	{`\b\d{5}\b`, types.Address, 60, "postcode_de"},
	{`\b[A-Z]{1,2}\d{1,2}\s?\d[A-Z]{2}\b`, types.Address, 90, "postcode_uk"},
	{`\b\d{5}\b`, types.Address, 60, "postcode_fr"},

	// Asia
	{`\b\d{6}\b`, types.Address, 70, "postcode_china"},
	{`〒?\b\d{3}-\d{4}\b`, types.Address, 90, "postcode_japan"},
	{`\b\d{5}\b`, types.Address, 60, "postcode_korea"},
	{`\b\d{6}\b`, types.Address, 70, "pin_india"},
	{`\b\d{6}\b`, types.Address, 70, "postcode_singapore"},

	// Middle East
	{`\b(?:P\.?O\.?\s*Box|صندوق\s*بريد)\s*\d+\b`, types.Address, 85, "po_box_uae"},

	// Africa
	{`\b\d{4}\b`, types.Address, 60, "postcode_southafrica"},

	// Oceania
	{`\b\d{4}\b`, types.Address, 60, "postcode_australia"},

	// Generic PO Box
	{`\b(?:P\.?O\.?\s*Box|Postbus|Postfach|Apartado|私書箱)\s*\d+\b`, types.Address, 85, "po_box"},
}
