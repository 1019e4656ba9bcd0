// Package validate holds the checksum algorithms layered on top of pattern
// matches. Validators never invent candidates; they only confirm or reject a
// value that a pattern already flagged.
package validate

import "strings"

// digitsOf strips every non-digit byte and returns the digit string.
func digitsOf(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Luhn reports whether the digit content of s passes the mod-10 check.
// Payment card numbers are 13-19 digits; anything outside that fails.
func Luhn(s string) bool {
	digits := digitsOf(s)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

// IBAN reports whether s passes the ISO 7064 mod-97 check: country code and
// check digits move to the end, letters map A=10..Z=35, and the resulting
// number must leave remainder 1.
func IBAN(s string) bool {
	iban := strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	if len(iban) < 15 || len(iban) > 34 {
		return false
	}
	for i := 0; i < 2; i++ {
		if iban[i] < 'A' || iban[i] > 'Z' {
			return false
		}
	}
	for i := 2; i < 4; i++ {
		if iban[i] < '0' || iban[i] > '9' {
			return false
		}
	}
	rearranged := iban[4:] + iban[:4]
	// Rolling remainder avoids building the full numeric string.
	rem := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		switch {
		case c >= '0' && c <= '9':
			rem = (rem*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			rem = (rem*100 + v) % 97
		default:
			return false
		}
	}
	return rem == 1
}

// DutchBSN reports whether a 9-digit Burgerservicenummer passes the 11-check.
// The last digit carries weight -1.
func DutchBSN(s string) bool {
	bsn := strings.ReplaceAll(s, " ", "")
	if len(bsn) != 9 {
		return false
	}
	weights := []int{9, 8, 7, 6, 5, 4, 3, 2, -1}
	sum := 0
	for i := 0; i < 9; i++ {
		if bsn[i] < '0' || bsn[i] > '9' {
			return false
		}
		sum += int(bsn[i]-'0') * weights[i]
	}
	return sum%11 == 0
}

// ChinaID reports whether an 18-character resident ID passes its weighted
// mod-11 check. The final character may be X.
func ChinaID(s string) bool {
	id := strings.ToUpper(s)
	if len(id) != 18 {
		return false
	}
	weights := []int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
	const checkCodes = "10X98765432"
	sum := 0
	for i := 0; i < 17; i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
		sum += int(id[i]-'0') * weights[i]
	}
	return checkCodes[sum%11] == id[17]
}

// SingaporeNRIC reports whether a 9-character NRIC/FIN is internally
// consistent: S/T series and F/G series use different check alphabets, and
// T/G numbers add 4 to the weighted sum.
func SingaporeNRIC(s string) bool {
	nric := strings.ToUpper(s)
	if len(nric) != 9 {
		return false
	}
	prefix := nric[0]
	if !strings.ContainsRune("STFG", rune(prefix)) {
		return false
	}
	weights := []int{2, 7, 6, 5, 4, 3, 2}
	sum := 0
	for i := 0; i < 7; i++ {
		if nric[i+1] < '0' || nric[i+1] > '9' {
			return false
		}
		sum += int(nric[i+1]-'0') * weights[i]
	}
	if prefix == 'T' || prefix == 'G' {
		sum += 4
	}
	var checkCodes string
	if prefix == 'S' || prefix == 'T' {
		checkCodes = "JZIHGFEDCBA"
	} else {
		checkCodes = "XWUTRQPNMLK"
	}
	return checkCodes[sum%11] == nric[8]
}
