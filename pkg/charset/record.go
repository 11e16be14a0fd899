// Package charset loads the character inventory that backs the index.
//
// The source format is JSONL: one self-contained record per line, e.g.
//
//	{ "index": 1, "char": "一", "strokes": 1, "pinyin": ["yī"], "radicals": "一", "frequency": 0, "structure": "D0" }
//
// Lines may carry a trailing comma from hand-edited dumps; it is stripped
// before decoding. Blank lines are skipped. Any line that fails to decode
// aborts the whole load -- ingestion is all-or-nothing.
package charset

// DefaultFrequency is the rank assigned to records whose source line has
// no frequency field. Lower means more common, so absent data sorts last.
const DefaultFrequency = 999

// CharacterRecord is one character's full metadata as stored in the data
// file. Only Character, Pinyin and Frequency drive lookups; the rest is
// carried through for the detail views.
type CharacterRecord struct {
	Index     int      `json:"index"`
	Character string   `json:"char"`
	Strokes   int      `json:"strokes"`
	Pinyin    []string `json:"pinyin"`
	Radicals  string   `json:"radicals"`
	Frequency int      `json:"frequency"`
	Structure string   `json:"structure"`
}
