package charset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	input := `
{ "index": 1, "char": "一", "strokes": 1, "pinyin": [ "yī" ], "radicals": "一", "frequency": 0, "structure": "D0" },
{ "index": 2, "char": "乙", "strokes": 1, "pinyin": [ "yǐ" ], "radicals": "乙", "frequency": 7, "structure": "D0" },

{ "index": 3, "char": "了", "strokes": 2, "pinyin": [ "le", "liǎo" ], "radicals": "乙", "frequency": 4, "structure": "D0" }
`
	records, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "一", records[0].Character)
	assert.Equal(t, []string{"yī"}, records[0].Pinyin)
	assert.Equal(t, 0, records[0].Frequency)
	assert.Equal(t, "D0", records[0].Structure)

	assert.Equal(t, []string{"le", "liǎo"}, records[2].Pinyin)
}

func TestLoadDefaultFrequency(t *testing.T) {
	records, err := Load(strings.NewReader(`{ "char": "〇", "pinyin": [ "líng" ] }`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, DefaultFrequency, records[0].Frequency)
}

func TestLoadExplicitZeroFrequency(t *testing.T) {
	// frequency 0 is the most common rank, not "absent"
	records, err := Load(strings.NewReader(`{ "char": "的", "pinyin": [ "de" ], "frequency": 0 }`))
	require.NoError(t, err)
	assert.Equal(t, 0, records[0].Frequency)
}

func TestLoadMalformedLineAborts(t *testing.T) {
	input := `{ "char": "一", "pinyin": [ "yī" ], "frequency": 0 }
{ "char": "二", "pinyin": [ broken
{ "char": "三", "pinyin": [ "sān" ], "frequency": 2 }`

	records, err := Load(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.jsonl"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chars.jsonl")
	data := `{ "char": "中", "pinyin": [ "zhōng", "zhòng" ], "frequency": 12 },
{ "char": "国", "pinyin": [ "guó" ], "frequency": 20 },
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	records, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "中", records[0].Character)
	assert.Equal(t, "国", records[1].Character)
}
