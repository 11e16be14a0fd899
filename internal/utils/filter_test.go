package utils

import "testing"

func TestIsValidSyllable(t *testing.T) {
	valid := []string{"yi", "zhōng", "nǚ", "lv", "ma3", "ɡuó", "er"}
	for _, s := range valid {
		if !IsValidSyllable(s) {
			t.Errorf("IsValidSyllable(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "123", "yi!", "zh ong", "ma3a", "y-i"}
	for _, s := range invalid {
		if IsValidSyllable(s) {
			t.Errorf("IsValidSyllable(%q) = true, want false", s)
		}
	}
}
