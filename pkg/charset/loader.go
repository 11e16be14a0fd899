package charset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrNoData is returned when the data file cannot be opened. Callers must
// treat this as fatal for index construction rather than serving from an
// empty inventory.
var ErrNoData = errors.New("character data unavailable")

// maxLineBytes bounds a single JSONL line. Records are small; anything
// beyond this is a corrupt file, not a legitimate record.
const maxLineBytes = 1 << 20

// LoadFile reads all character records from a JSONL file.
func LoadFile(path string) ([]CharacterRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoData, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrNoData, path, err)
	}
	defer f.Close()

	log.Debugf("Loading character data from %s", path)
	records, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("Loaded %d character records", len(records))
	return records, nil
}

// Load decodes character records from a JSONL stream. A line that fails
// structural decoding aborts the whole load with a line-numbered error.
func Load(r io.Reader) ([]CharacterRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []CharacterRecord
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// Hand-maintained dumps sometimes keep JSON-array style commas.
		line = strings.TrimSuffix(line, ",")

		rec := CharacterRecord{Frequency: DefaultFrequency}
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("malformed record at line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading character data: %w", err)
	}
	return records, nil
}
