package patterns

import "github.com/veildoc/veildoc/internal/types"

var vehiclePatterns = []Pattern{
	// VIN: 17 characters, I/O/Q excluded
	{`\b[A-HJ-NPR-Z0-9]{17}\b`, types.VehicleID, 85, "vin"},

	// Europe
	{`\b[A-Z]{1,3}[-\s]?\d{1,4}[-\s]?[A-Z]{1,3}\b`, types.VehicleID, 75, "license_plate_eu"},
	{`\b\d{1,2}-[A-Z]{2,3}-[A-Z0-9]{1,2}\b`, types.VehicleID, 90, "license_plate_nl"},
	{`\b[A-Z]{2}-\d{2,3}-[A-Z]{1,2}\b`, types.VehicleID, 90, "license_plate_nl2"},
	{`\b[A-Z]{2}\d{2}\s?[A-Z]{3}\b`, types.VehicleID, 90, "license_plate_uk"},
	{`\b[A-Z]{1,3}[-\s]?[A-Z]{1,2}\s?\d{1,4}\b`, types.VehicleID, 85, "license_plate_de"},

	// Asia
	// No leading \b: ASCII word boundaries never fire before CJK.
	{`[京津沪渝冀豫云辽黑湘皖鲁新苏浙赣鄂桂甘晋蒙陕吉闽贵粤青藏川宁琼][A-Z][A-Z0-9]{5}\b`, types.VehicleID, 95, "license_plate_china"},
	{`\b\d{2,4}[-\s]?\d{2,4}\b`, types.VehicleID, 60, "license_plate_japan"},
	{`\b[A-Z]{2}[-\s]?\d{2}[-\s]?[A-Z]{1,2}[-\s]?\d{4}\b`, types.VehicleID, 90, "license_plate_india"},
	{`\bS[A-Z]{2}\s?\d{1,4}\s?[A-Z]\b`, types.VehicleID, 90, "license_plate_singapore"},

	// Middle East
	{`\b[A-Z]\s?\d{1,5}\b`, types.VehicleID, 70, "license_plate_uae"},
	{`\b[A-Z]{3}\s?\d{1,4}\b`, types.VehicleID, 70, "license_plate_saudi"},

	// Africa
	{`\b[A-Z]{2,3}\s?\d{2,3}\s?[A-Z]{2,3}\b`, types.VehicleID, 80, "license_plate_southafrica"},
}
