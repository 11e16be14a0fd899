// Package pinyin handles tone normalization of romanized syllables.
//
// Pinyin tone marks are precomposed code points (ā, é, ǚ, ...), so the
// mapping works per rune rather than per combining mark. Input typed with
// combining diacritics is folded to NFC first so it hits the same table.
package pinyin

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// toneTable maps every toned vowel variant to its bare keying letter.
// ü and its toned forms become 'v', matching how the ü-final is keyed
// in the character data. ɡ (U+0261, IPA velar form) collapses to plain g.
var toneTable = map[rune]rune{
	'ā': 'a', 'á': 'a', 'ǎ': 'a', 'à': 'a',
	'ē': 'e', 'é': 'e', 'ě': 'e', 'è': 'e',
	'ī': 'i', 'í': 'i', 'ǐ': 'i', 'ì': 'i',
	'ō': 'o', 'ó': 'o', 'ǒ': 'o', 'ò': 'o',
	'ū': 'u', 'ú': 'u', 'ǔ': 'u', 'ù': 'u',
	'ǖ': 'v', 'ǘ': 'v', 'ǚ': 'v', 'ǜ': 'v', 'ü': 'v',
	'ɡ': 'g',
	'ń': 'n', 'ň': 'n', 'ǹ': 'n',
}

// Normalize strips tone marks from a syllable, returning its tone-free
// keying form. Runes outside the tone table pass through unchanged; the
// function never fails and is idempotent. No case folding or trimming
// happens here, callers pass already-trimmed syllables.
func Normalize(syllable string) string {
	syllable = norm.NFC.String(syllable)

	var b strings.Builder
	b.Grow(len(syllable))
	for _, r := range syllable {
		if bare, ok := toneTable[r]; ok {
			b.WriteRune(bare)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HasTone reports whether the syllable carries any tone mark the
// normalizer would strip.
func HasTone(syllable string) bool {
	for _, r := range norm.NFC.String(syllable) {
		if _, ok := toneTable[r]; ok {
			return true
		}
	}
	return false
}
