package pinyin

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		desc     string
	}{
		// every toned vowel family, all four tones
		{"ā", "a", "a tone 1"},
		{"á", "a", "a tone 2"},
		{"ǎ", "a", "a tone 3"},
		{"à", "a", "a tone 4"},
		{"ē", "e", "e tone 1"},
		{"é", "e", "e tone 2"},
		{"ě", "e", "e tone 3"},
		{"è", "e", "e tone 4"},
		{"ī", "i", "i tone 1"},
		{"í", "i", "i tone 2"},
		{"ǐ", "i", "i tone 3"},
		{"ì", "i", "i tone 4"},
		{"ō", "o", "o tone 1"},
		{"ó", "o", "o tone 2"},
		{"ǒ", "o", "o tone 3"},
		{"ò", "o", "o tone 4"},
		{"ū", "u", "u tone 1"},
		{"ú", "u", "u tone 2"},
		{"ǔ", "u", "u tone 3"},
		{"ù", "u", "u tone 4"},

		// u-umlaut family keys as v
		{"ǖ", "v", "u-umlaut tone 1"},
		{"ǘ", "v", "u-umlaut tone 2"},
		{"ǚ", "v", "u-umlaut tone 3"},
		{"ǜ", "v", "u-umlaut tone 4"},
		{"ü", "v", "bare u-umlaut"},

		// oddball letterforms
		{"ɡuó", "guo", "IPA g"},
		{"ń", "n", "toned n (2)"},
		{"ň", "n", "toned n (3)"},
		{"ǹ", "n", "toned n (4)"},

		// whole syllables
		{"yī", "yi", "full syllable"},
		{"zhōng", "zhong", "full syllable"},
		{"nǚ", "nv", "nv syllable"},
		{"lǜ", "lv", "lv syllable"},
		{"shuǎng", "shuang", "longest final"},

		// passthrough
		{"yi", "yi", "already bare"},
		{"ma3", "ma3", "tone digit untouched"},
		{"", "", "empty input"},
		{"Ā", "Ā", "no case folding"},

		// combining diacritic input folds to the precomposed form first
		{"yī", "yi", "combining macron"},
		{"nǚ", "nv", "combining diaeresis + caron"},
	}

	for _, tc := range tests {
		if got := Normalize(tc.input); got != tc.expected {
			t.Errorf("%s: Normalize(%q) = %q, want %q", tc.desc, tc.input, got, tc.expected)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	syllables := []string{"yī", "nǚ", "zhōng", "ɡuó", "er", "lǜe", "ǹg"}
	for _, s := range syllables {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, twice, once)
		}
	}
}

func TestHasTone(t *testing.T) {
	if !HasTone("yī") {
		t.Error("expected tone mark in 'yī'")
	}
	if !HasTone("nǚ") {
		t.Error("expected tone mark in 'nǚ'")
	}
	if HasTone("yi") {
		t.Error("did not expect tone mark in 'yi'")
	}
	if HasTone("") {
		t.Error("did not expect tone mark in empty string")
	}
}
