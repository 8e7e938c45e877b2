package validation

import (
	"regexp"
	"strings"
)

// CURPLength is the fixed length of a Mexican population registry key
const CURPLength = 18

// curpAlphabet is the symbol order used by the check digit. Ñ sits between
// N and O.
const curpAlphabet = "0123456789ABCDEFGHIJKLMNÑOPQRSTUVWXYZ"

var curpPattern = regexp.MustCompile(
	`^[A-Z][AEIOUX][A-Z]{2}\d{2}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])[HMX]` +
		`(AS|BC|BS|CC|CL|CM|CS|CH|DF|DG|GT|GR|HG|JC|MC|MN|MS|NT|NL|OC|PL|QT|QR|SP|SL|SR|TC|TS|TL|VZ|YN|ZS|NE)` +
		`[B-DF-HJ-NP-TV-Z]{3}[0-9A-Z]\d$`)

// NormalizeCURP upper-cases and trims a user-entered key
func NormalizeCURP(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// CURP checks format and check digit. The value is normalized first.
func CURP(value string) error {
	curp := NormalizeCURP(value)
	if curp == "" {
		return &FieldError{Field: "curp", Message: "is required"}
	}
	if len([]rune(curp)) != CURPLength {
		return &FieldError{Field: "curp", Message: "must be 18 characters long"}
	}
	if !curpPattern.MatchString(curp) {
		return &FieldError{Field: "curp", Message: "has an invalid format"}
	}
	runes := []rune(curp)
	want, ok := CURPCheckDigit(string(runes[:CURPLength-1]))
	if !ok || int(runes[CURPLength-1]-'0') != want {
		return &FieldError{Field: "curp", Message: "has an invalid check digit"}
	}
	return nil
}

// CURPCheckDigit computes the verifier for the first 17 characters.
// ok is false when a character is outside the alphabet.
func CURPCheckDigit(prefix string) (digit int, ok bool) {
	alphabet := []rune(curpAlphabet)
	sum := 0
	for i, r := range []rune(prefix) {
		pos := -1
		for j, a := range alphabet {
			if a == r {
				pos = j
				break
			}
		}
		if pos < 0 {
			return 0, false
		}
		sum += pos * (18 - i)
	}
	digit = 10 - sum%10
	if digit == 10 {
		digit = 0
	}
	return digit, true
}
