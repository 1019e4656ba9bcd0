package validate

import "testing"

func TestLuhn(t *testing.T) {
	valid := []string{
		"4111111111111111",
		"4111-1111-1111-1111",
		"5500 0000 0000 0004",
		"378282246310005", // Amex, 15 digits
	}
	for _, s := range valid {
		if !Luhn(s) {
			t.Errorf("Luhn(%q) = false, want true", s)
		}
	}
	invalid := []string{
		"4111111111111112",
		"1234567890123456",
		"411111111111",        // too short
		"41111111111111111111", // too long
		"not a card",
	}
	for _, s := range invalid {
		if Luhn(s) {
			t.Errorf("Luhn(%q) = true, want false", s)
		}
	}
}

func TestIBAN(t *testing.T) {
	if !IBAN("NL91ABNA0417164300") {
		t.Fatal("valid Dutch IBAN rejected")
	}
	if !IBAN("NL91 ABNA 0417 1643 00") {
		t.Fatal("spaced IBAN rejected")
	}
	if !IBAN("DE89370400440532013000") {
		t.Fatal("valid German IBAN rejected")
	}
	// Mutating any single digit must break the mod-97 check.
	base := "NL91ABNA0417164300"
	for i, c := range base {
		if c < '0' || c > '9' {
			continue
		}
		mutated := base[:i] + string('0'+(c-'0'+1)%10) + base[i+1:]
		if IBAN(mutated) {
			t.Errorf("mutated IBAN %q validated", mutated)
		}
	}
	if IBAN("XX00") {
		t.Error("too-short IBAN validated")
	}
	if IBAN("1291ABNA0417164300") {
		t.Error("IBAN with digit country code validated")
	}
}

func TestDutchBSN(t *testing.T) {
	if !DutchBSN("111222333") {
		t.Error("valid BSN rejected")
	}
	if DutchBSN("111222334") {
		t.Error("invalid BSN accepted")
	}
	if DutchBSN("12345") {
		t.Error("short BSN accepted")
	}
	if DutchBSN("11122233a") {
		t.Error("non-numeric BSN accepted")
	}
}

func TestChinaID(t *testing.T) {
	if !ChinaID("11010519491231002X") {
		t.Error("valid China ID rejected")
	}
	if !ChinaID("11010519491231002x") {
		t.Error("lowercase check character rejected")
	}
	if ChinaID("110105194912310021") {
		t.Error("invalid check digit accepted")
	}
	if ChinaID("11010519491231") {
		t.Error("short ID accepted")
	}
}

func TestSingaporeNRIC(t *testing.T) {
	if !SingaporeNRIC("S1234567D") {
		t.Error("valid NRIC rejected")
	}
	if SingaporeNRIC("S1234567A") {
		t.Error("wrong check letter accepted")
	}
	if SingaporeNRIC("A1234567D") {
		t.Error("bad series letter accepted")
	}
	if SingaporeNRIC("S123456") {
		t.Error("short NRIC accepted")
	}
}
