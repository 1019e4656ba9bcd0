package patterns

import "github.com/veildoc/veildoc/internal/types"

// Bare digit-run formats (9/11/13 digits and friends) collide across
// jurisdictions; they carry reduced confidence and sort themselves out in
// overlap resolution. Formats with a public checksum are boosted after
// validation (bsn_nl, id_china, nric_singapore).
var nationalIDPatterns = []Pattern{
	// Americas
	{`\b\d{3}-\d{2}-\d{4}\b`, types.NationalID, 95, "ssn_us"},
	{`\b\d{3}[-\s]?\d{3}[-\s]?\d{3}\b`, types.NationalID, 85, "sin_canada"},
	{`\b\d{3}\.\d{3}\.\d{3}-\d{2}\b`, types.NationalID, 95, "cpf_brazil"},
	{`\b[A-Z]{4}\d{6}[HM][A-Z]{5}[A-Z0-9]\d\b`, types.NationalID, 95, "curp_mexico"},

	// Europe
	{`\b\d{9}\b`, types.NationalID, 70, "bsn_nl"},
	{`\b[A-CEGHJ-PR-TW-Z]{2}\d{6}[A-D]\b`, types.NationalID, 95, "nino_uk"},
	{`\b\d{11}\b`, types.NationalID, 60, "steuer_id_de"},
	{`\b[XYZ]\d{7}[A-Z]\b`, types.NationalID, 95, "nie_spain"},
	{`\b\d{8}[A-Z]\b`, types.NationalID, 90, "dni_spain"},
	{`\b[12]\d{2}(?:0[1-9]|1[0-2])\d{2}\d{3}\d{3}\d{2}\b`, types.NationalID, 95, "insee_france"},
	{`\b\d{2}\.\d{2}\.\d{2}-\d{3}\.\d{2}\b`, types.NationalID, 95, "rn_belgium"},
	{`\b[A-Z]{6}\d{2}[A-Z]\d{2}[A-Z]\d{3}[A-Z]\b`, types.NationalID, 95, "cf_italy"},
	{`\b756\.\d{4}\.\d{4}\.\d{2}\b`, types.NationalID, 95, "ahv_swiss"},
	{`\b\d{11}\b`, types.NationalID, 70, "pesel_poland"},

	// Asia
	{`\b\d{17}[\dXx]\b`, types.NationalID, 95, "id_china"},
	{`\b\d{15}\b`, types.NationalID, 80, "id_china_old"},
	{`\b\d{4}\s?\d{4}\s?\d{4}\b`, types.NationalID, 85, "mynumber_japan"},
	{`\b\d{6}[-\s]?\d{7}\b`, types.NationalID, 95, "rrn_korea"},
	{`\b\d{4}\s?\d{4}\s?\d{4}\b`, types.NationalID, 85, "aadhaar_india"},
	{`\b[A-Z]{5}\d{4}[A-Z]\b`, types.NationalID, 95, "pan_india"},
	{`\b[STFG]\d{7}[A-Z]\b`, types.NationalID, 95, "nric_singapore"},
	{`\b[A-Z]{1,2}\d{6}\([0-9A]\)\b`, types.NationalID, 95, "hkid_hongkong"},
	{`\b[A-Z]{1,2}\d{6}[0-9A]\b`, types.NationalID, 90, "hkid_hongkong_alt"},
	{`\b[A-Z][12]\d{8}\b`, types.NationalID, 95, "id_taiwan"},
	{`\b\d{6}[-\s]?\d{2}[-\s]?\d{4}\b`, types.NationalID, 90, "nric_malaysia"},
	{`\b\d{16}\b`, types.NationalID, 85, "nik_indonesia"},
	{`\b\d[-\s]?\d{4}[-\s]?\d{5}[-\s]?\d{2}[-\s]?\d\b`, types.NationalID, 95, "id_thailand"},
	{`\b\d{13}\b`, types.NationalID, 80, "id_thailand_plain"},
	{`\b\d{12}\b`, types.NationalID, 75, "cccd_vietnam"},
	{`\b\d{2}[-\s]?\d{7}[-\s]?\d\b`, types.NationalID, 90, "sss_philippines"},

	// Middle East
	{`\b784[-\s]?\d{4}[-\s]?\d{7}[-\s]?\d\b`, types.NationalID, 95, "eid_uae"},
	{`\b[12]\d{9}\b`, types.NationalID, 85, "id_saudi"},
	{`\b\d{9}\b`, types.NationalID, 70, "id_israel"},

	// Africa
	{`\b\d{6}\d{4}[01]\d{2}\b`, types.NationalID, 95, "id_southafrica"},
	{`\b\d{11}\b`, types.NationalID, 75, "nin_nigeria"},
	{`\b\d{11}\b`, types.NationalID, 75, "bvn_nigeria"},
	{`\b\d{8}\b`, types.NationalID, 70, "id_kenya"},
	{`\b\d{14}\b`, types.NationalID, 85, "id_egypt"},

	// Oceania
	{`\b\d{3}\s?\d{3}\s?\d{2,3}\b`, types.NationalID, 70, "tfn_australia"},
	{`\b\d{2}[-\s]?\d{3}[-\s]?\d{3}\b`, types.NationalID, 85, "ird_newzealand"},

	// Russia & CIS
	{`\b\d{2}\s?\d{2}\s?\d{6}\b`, types.NationalID, 85, "passport_russia_internal"},
	{`\b\d{3}[-\s]?\d{3}[-\s]?\d{3}\s?\d{2}\b`, types.NationalID, 90, "snils_russia"},
	{`\b\d{12}\b`, types.NationalID, 70, "inn_russia_personal"},
	{`\b\d{10}\b`, types.NationalID, 70, "inn_ukraine"},

	// Turkey
	{`\b[1-9]\d{10}\b`, types.NationalID, 90, "tc_kimlik_turkey"},

	// South America
	{`\b\d{8}\b`, types.NationalID, 70, "dni_argentina"},
	{`\b(?:20|23|24|27|30|33|34)[-\s]?\d{8}[-\s]?\d\b`, types.NationalID, 95, "cuil_argentina"},
	{`\b\d{8,10}\b`, types.NationalID, 65, "cc_colombia"},
	{`\b\d{1,2}\.?\d{3}\.?\d{3}[-]?[\dkK]\b`, types.NationalID, 90, "rut_chile"},
	{`\b\d{8}\b`, types.NationalID, 70, "dni_peru"},

	// South Asia
	{`\b\d{5}[-\s]?\d{7}[-\s]?\d\b`, types.NationalID, 95, "cnic_pakistan"},
	{`\b\d{10}\b`, types.NationalID, 70, "nid_bangladesh_10"},
	{`\b\d{13}\b`, types.NationalID, 80, "nid_bangladesh_13"},
	{`\b\d{17}\b`, types.NationalID, 85, "nid_bangladesh_17"},

	// Nordics
	{`\b\d{6}[-+]?\d{4}\b`, types.NationalID, 90, "personnummer_sweden"},
	{`\b\d{8}[-+]?\d{4}\b`, types.NationalID, 95, "personnummer_sweden_full"},
	{`\b\d{11}\b`, types.NationalID, 75, "fodselsnummer_norway"},
	{`\b\d{6}[-]?\d{4}\b`, types.NationalID, 90, "cpr_denmark"},
	{`\b\d{6}[-+A]\d{3}[\dA-Z]\b`, types.NationalID, 95, "hetu_finland"},

	// Other EU
	{`\b\d{4}\s?\d{6}\b`, types.NationalID, 80, "svnr_austria"},
	{`\b\d{9}\b`, types.NationalID, 70, "nif_portugal"},
	{`\b\d{9}\b`, types.NationalID, 70, "afm_greece"},
	{`\b\d{7}[A-Z]{1,2}\b`, types.NationalID, 95, "pps_ireland"},
	{`\b\d{6}/?\d{3,4}\b`, types.NationalID, 90, "rc_czech"},
	{`\b[1-8]\d{12}\b`, types.NationalID, 95, "cnp_romania"},
	{`\b\d{6}[-]?\d{4}\b`, types.NationalID, 85, "id_hungary"},

	// Remaining EU member states
	{`\b\d{10}\b`, types.NationalID, 70, "egn_bulgaria"},
	{`\b\d{11}\b`, types.NationalID, 75, "oib_croatia"},
	{`\b\d{1,10}\b`, types.NationalID, 60, "id_cyprus"},
	{`\b[1-6]\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])\d{4}\b`, types.NationalID, 95, "isikukood_estonia"},
	{`\b\d{6}[-]?\d{5}\b`, types.NationalID, 90, "pk_latvia"},
	{`\b[3-6]\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])\d{4}\b`, types.NationalID, 95, "ak_lithuania"},
	{`\b\d{4}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])\d{5}\b`, types.NationalID, 95, "nin_luxembourg"},
	{`\b\d{7}[A-Z]\b`, types.NationalID, 95, "id_malta"},
	{`\b\d{6}/?\d{3,4}\b`, types.NationalID, 90, "rc_slovakia"},
	{`\b\d{13}\b`, types.NationalID, 80, "emso_slovenia"},

	// North Africa
	{`\b[A-Z]{1,2}\d{6}\b`, types.NationalID, 85, "cin_morocco"},
	{`\b\d{18}\b`, types.NationalID, 80, "nin_algeria"},
}
