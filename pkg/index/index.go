// Package index is the core, mapping pinyin syllables to frequency-ordered
// character candidates with both tone-sensitive and tone-free keying.
package index

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/pinserve/pinserve/pkg/charset"
	"github.com/pinserve/pinserve/pkg/pinyin"
)

// Entry is one posting in a candidate list. Frequency is snapshotted from
// the source record at build time. Syllable holds the toned reading that
// produced the entry and is only set on tone-free lists, where one key can
// be reached through several toned variants.
type Entry struct {
	Character string
	Frequency int
	Syllable  string
}

// Index resolves syllables to ranked character candidates. It is built once
// and never mutated afterwards, so it is safe to share across concurrent
// readers without locking.
type Index struct {
	exact    map[string][]Entry
	toneless map[string][]Entry
	records  map[string]charset.CharacterRecord
	keys     *patricia.Trie
	count    int
}

// Build constructs an Index from the full record set. Records are validated
// up front: an empty character or an empty reading list fails the whole
// build, leaving no usable instance. Posting lists come out sorted ascending
// by frequency; equal frequencies keep ingestion order.
func Build(records []charset.CharacterRecord) (*Index, error) {
	idx := &Index{
		exact:    make(map[string][]Entry),
		toneless: make(map[string][]Entry),
		records:  make(map[string]charset.CharacterRecord, len(records)),
		keys:     patricia.NewTrie(),
	}

	for i, rec := range records {
		if rec.Character == "" {
			return nil, fmt.Errorf("record %d: empty character", i)
		}
		if len(rec.Pinyin) == 0 {
			return nil, fmt.Errorf("record %d (%s): no readings", i, rec.Character)
		}

		idx.records[rec.Character] = rec

		for _, syllable := range rec.Pinyin {
			idx.exact[syllable] = append(idx.exact[syllable], Entry{
				Character: rec.Character,
				Frequency: rec.Frequency,
			})

			bare := pinyin.Normalize(syllable)
			idx.toneless[bare] = append(idx.toneless[bare], Entry{
				Character: rec.Character,
				Frequency: rec.Frequency,
				Syllable:  syllable,
			})
		}
		idx.count++
	}

	for _, list := range idx.exact {
		sortByFrequency(list)
	}
	for key, list := range idx.toneless {
		sortByFrequency(list)
		idx.keys.Insert(patricia.Prefix(key), len(list))
	}

	log.Debugf("Index built: %d characters, %d toned keys, %d tone-free keys",
		idx.count, len(idx.exact), len(idx.toneless))
	return idx, nil
}

// sortByFrequency orders a posting list ascending by frequency rank.
// The sort must be stable: characters sharing a rank (typically the
// missing-frequency sentinel) keep their ingestion order.
func sortByFrequency(list []Entry) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Frequency < list[j].Frequency
	})
}

// Lookup returns candidate characters for a syllable, most common first.
// With toneSensitive set the syllable is matched verbatim against toned
// readings; otherwise it is tone-normalized first. An unknown syllable
// yields an empty slice, never an error.
func (x *Index) Lookup(syllable string, toneSensitive bool) []string {
	entries := x.lookup(syllable, toneSensitive)
	if len(entries) == 0 {
		return nil
	}
	chars := make([]string, len(entries))
	for i, e := range entries {
		chars[i] = e.Character
	}
	return chars
}

// LookupDetailed is Lookup with full posting entries: character, frequency
// and, in tone-free mode, the toned reading that matched.
func (x *Index) LookupDetailed(syllable string, toneSensitive bool) []Entry {
	entries := x.lookup(syllable, toneSensitive)
	if len(entries) == 0 {
		return nil
	}
	// hand out a copy so callers cannot disturb the built ordering
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func (x *Index) lookup(syllable string, toneSensitive bool) []Entry {
	if toneSensitive {
		return x.exact[syllable]
	}
	return x.toneless[pinyin.Normalize(syllable)]
}

// Record returns the full source record for a character, for detail views.
func (x *Index) Record(char string) (charset.CharacterRecord, bool) {
	rec, ok := x.records[char]
	return rec, ok
}

// Syllables enumerates the tone-free keys under a prefix, sorted. The
// prefix is tone-normalized first, so "zhō" and "zho" walk the same
// subtree. An empty prefix lists every key.
func (x *Index) Syllables(prefix string) []string {
	var keys []string
	err := x.keys.VisitSubtree(patricia.Prefix(pinyin.Normalize(prefix)), func(p patricia.Prefix, item patricia.Item) error {
		keys = append(keys, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting syllable trie: %v", err)
		return nil
	}
	sort.Strings(keys)
	return keys
}

// Stats reports basic size counters for diagnostics.
func (x *Index) Stats() map[string]int {
	return map[string]int{
		"characters":   x.count,
		"tonedKeys":    len(x.exact),
		"toneFreeKeys": len(x.toneless),
	}
}
