package patterns

import "github.com/veildoc/veildoc/internal/types"

var medicalIDPatterns = []Pattern{
	// UK NHS number, 3-3-4
	{`\b\d{3}\s?\d{3}\s?\d{4}\b`, types.MedicalID, 80, "nhs_uk"},
	// US Medicare MBI
	{`\b\d[A-Z]\d{2}-?[A-Z]\d{2}-?[A-Z]\d{3}\b`, types.MedicalID, 90, "medicare_us"},
	// Labeled medical record number, multilingual markers
	{`\b(?:MRN|Medical\s+Record|Patient\s+ID|病历号|カルテ番号)[\s:#]*\d{6,12}\b`, types.MedicalID, 95, "mrn_generic"},
	// Australia Medicare
	{`\b\d{4}\s?\d{5}\s?\d\b`, types.MedicalID, 85, "medicare_australia"},
	// Canada health card (Ontario)
	{`\b\d{4}[-\s]?\d{3}[-\s]?\d{3}\b`, types.MedicalID, 85, "health_card_canada"},
}
