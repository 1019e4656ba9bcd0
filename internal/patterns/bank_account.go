package patterns

import "github.com/veildoc/veildoc/internal/types"

// Every pattern whose name carries "iban" goes through the mod-97 check in
// DetectWithValidation.
var bankAccountPatterns = []Pattern{
	// IBAN, generic and spaced
	{`\b[A-Z]{2}\d{2}[A-Z0-9]{11,30}\b`, types.BankAccount, 95, "iban"},
	{`\b[A-Z]{2}\d{2}(?:\s?[A-Z0-9]{4}){3,7}\s?[A-Z0-9]{1,4}\b`, types.BankAccount, 95, "iban_spaced"},
	// Western Europe
	{`\bNL\d{2}\s?[A-Z]{4}\s?\d{4}\s?\d{4}\s?\d{2}\b`, types.BankAccount, 98, "iban_nl"},
	{`\bDE\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{2}\b`, types.BankAccount, 98, "iban_de"},
	{`\bGB\d{2}\s?[A-Z]{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{2}\b`, types.BankAccount, 98, "iban_uk"},
	{`\bFR\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{3}\b`, types.BankAccount, 98, "iban_fr"},
	{`\bBE\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_be"},
	{`\bAT\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_at"},
	{`\bLU\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_lu"},
	{`\bIE\d{2}\s?[A-Z]{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{2}\b`, types.BankAccount, 98, "iban_ie"},
	// Southern Europe
	{`\bES\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_es"},
	{`\bIT\d{2}\s?[A-Z]\d{3}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{3}\b`, types.BankAccount, 98, "iban_it"},
	{`\bPT\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{3}\b`, types.BankAccount, 98, "iban_pt"},
	{`\bGR\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{3}\b`, types.BankAccount, 98, "iban_gr"},
	{`\bMT\d{2}\s?[A-Z]{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{3}\b`, types.BankAccount, 98, "iban_mt"},
	{`\bCY\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_cy"},
	// Northern Europe
	{`\bSE\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_se"},
	{`\bDK\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{2}\b`, types.BankAccount, 98, "iban_dk"},
	{`\bFI\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{2}\b`, types.BankAccount, 98, "iban_fi"},
	{`\bNO\d{2}\s?\d{4}\s?\d{4}\s?\d{3}\b`, types.BankAccount, 98, "iban_no"},
	{`\bEE\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_ee"},
	{`\bLV\d{2}\s?[A-Z]{4}\s?\d{4}\s?\d{4}\s?\d{3}\b`, types.BankAccount, 98, "iban_lv"},
	{`\bLT\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_lt"},
	// Central/Eastern Europe
	{`\bPL\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_pl"},
	{`\bCZ\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_cz"},
	{`\bSK\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_sk"},
	{`\bHU\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_hu"},
	{`\bRO\d{2}\s?[A-Z]{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_ro"},
	{`\bBG\d{2}\s?[A-Z]{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{2}\b`, types.BankAccount, 98, "iban_bg"},
	{`\bHR\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{1}\b`, types.BankAccount, 98, "iban_hr"},
	{`\bSI\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{3}\b`, types.BankAccount, 98, "iban_si"},
	// Middle East
	{`\bSA\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\b`, types.BankAccount, 98, "iban_saudi"},
	{`\bAE\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{3}\b`, types.BankAccount, 98, "iban_uae"},

	// UK sort code + account
	{`\b\d{2}-\d{2}-\d{2}\s?\d{8}\b`, types.BankAccount, 90, "uk_bank_account"},
	// US routing + account
	{`\b\d{9}\s?\d{8,17}\b`, types.BankAccount, 75, "us_bank_account"},
	// SWIFT/BIC
	{`\b[A-Z]{6}[A-Z0-9]{2}(?:[A-Z0-9]{3})?\b`, types.BankAccount, 90, "swift_bic"},

	// Asia
	{`\b\d{16,19}\b`, types.BankAccount, 70, "bank_china"},
	{`\b\d{7}\b`, types.BankAccount, 60, "bank_japan"},
	{`\b[A-Z]{4}0[A-Z0-9]{6}\b`, types.BankAccount, 90, "ifsc_india"},

	// Africa
	{`\b\d{10,11}\b`, types.BankAccount, 65, "bank_southafrica"},
}
