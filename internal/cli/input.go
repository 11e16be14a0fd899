// Package cli handles cmd line input for testing lookups interactively
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pinserve/pinserve/internal/logger"
	"github.com/pinserve/pinserve/internal/utils"
	"github.com/pinserve/pinserve/pkg/index"
	"github.com/pinserve/pinserve/pkg/pinyin"
)

// InputHandler processes syllables typed on stdin and prints ranked
// candidates. Tone sensitivity and the candidate limit come from flags.
type InputHandler struct {
	idx           *index.Index
	out           *log.Logger
	toneSensitive bool
	limit         int
	maxSyllable   int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(idx *index.Index, toneSensitive bool, limit, maxSyllable int) *InputHandler {
	return &InputHandler{
		idx:           idx,
		out:           logger.New(""),
		toneSensitive: toneSensitive,
		limit:         limit,
		maxSyllable:   maxSyllable,
	}
}

// Start begins the interface loop.
// It reads one syllable per line from stdin and prints the candidates;
// blank lines are skipped, "q" quits, "?" lists known syllables for a
// typed prefix. The loop terminates on stdin error.
func (h *InputHandler) Start() error {
	h.out.Print("pinserve CLI")
	reader := bufio.NewReader(os.Stdin)
	h.out.Print("type a pinyin syllable and press Enter ('q' to quit, '? zh' to list syllables):")

	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "q" {
			return nil
		}
		if rest, ok := strings.CutPrefix(line, "?"); ok {
			h.listSyllables(strings.TrimSpace(rest))
			continue
		}
		h.handleInput(line)
	}
}

// handleInput resolves a single syllable and prints the candidates with
// their frequency ranks and matched readings.
func (h *InputHandler) handleInput(syllable string) {
	if len([]rune(syllable)) > h.maxSyllable {
		log.Errorf("Syllable too long: %s", syllable)
		return
	}
	if !utils.IsValidSyllable(syllable) {
		log.Warnf("Not a pinyin syllable: '%s'", syllable)
		return
	}

	start := time.Now()
	entries := h.idx.LookupDetailed(syllable, h.toneSensitive)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for syllable '%s'", elapsed, syllable)

	if len(entries) == 0 {
		if h.toneSensitive && !pinyin.HasTone(syllable) {
			log.Warnf("No candidates for '%s' (tone-sensitive mode needs tone marks)", syllable)
		} else {
			log.Warnf("No candidates for '%s'", syllable)
		}
		return
	}

	total := len(entries)
	if total > h.limit {
		entries = entries[:h.limit]
	}

	h.out.Printf("Showing %d of %d candidates for '%s':", len(entries), total, syllable)
	for i, e := range entries {
		reading := e.Syllable
		if reading == "" {
			reading = syllable
		}
		fmtFreq := utils.FormatWithCommas(e.Frequency)
		clChar := fmt.Sprintf("\033[38;5;75m%s\033[0m", e.Character)
		h.out.Printf("%2d. %-12s %-8s (freq: %6s)", i+1, clChar, reading, fmtFreq)
	}
}

// listSyllables prints the tone-free index keys under a prefix.
func (h *InputHandler) listSyllables(prefix string) {
	keys := h.idx.Syllables(prefix)
	if len(keys) == 0 {
		log.Warnf("No syllables start with '%s'", prefix)
		return
	}
	h.out.Printf("%d syllables: %s", len(keys), strings.Join(keys, " "))
}

// demoSyllables are the fixed lookups shown by RunDemo.
var demoSyllables = []string{"yi", "er", "shi", "zhong", "guo"}

// RunDemo prints candidates for a fixed set of common syllables, a quick
// smoke check that the loaded data behaves.
func RunDemo(idx *index.Index, limit int) {
	log.Print("=== demo lookups ===")
	for _, syllable := range demoSyllables {
		chars := idx.Lookup(syllable, false)
		if len(chars) == 0 {
			log.Warnf("%-6s -> no candidates", syllable)
			continue
		}
		shown := chars
		if len(shown) > limit {
			shown = shown[:limit]
		}
		log.Printf("%-6s -> %s (%d total)", syllable, strings.Join(shown, " "), len(chars))
	}
}
