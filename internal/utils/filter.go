package utils

import "unicode"

// IsOnlyDigits checks if a string consists entirely of numeric digits
func IsOnlyDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsValidSyllable checks if input looks like a pinyin syllable worth
// resolving: letters (toned vowels included), with at most a trailing
// tone digit. Anything else would never hit an index key, so it is
// rejected before lookup.
func IsValidSyllable(s string) bool {
	if len(s) == 0 || IsOnlyDigits(s) {
		return false
	}
	runes := []rune(s)
	last := len(runes) - 1
	for i, r := range runes {
		if unicode.IsLetter(r) {
			continue
		}
		if unicode.IsDigit(r) && i == last {
			continue
		}
		return false
	}
	return true
}
