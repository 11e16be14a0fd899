package server

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/pinserve/pinserve/pkg/charset"
	"github.com/pinserve/pinserve/pkg/config"
	"github.com/pinserve/pinserve/pkg/index"
)

func testIndex(t *testing.T) *index.Index {
	t.Helper()
	idx, err := index.Build([]charset.CharacterRecord{
		{Character: "一", Pinyin: []string{"yī"}, Frequency: 0, Strokes: 1, Radicals: "一"},
		{Character: "衣", Pinyin: []string{"yī"}, Frequency: 50},
		{Character: "以", Pinyin: []string{"yǐ"}, Frequency: 8},
		{Character: "女", Pinyin: []string{"nǚ"}, Frequency: 10},
	})
	require.NoError(t, err)
	return idx
}

// runServer feeds encoded requests through a server and returns a decoder
// positioned after the initial ready message.
func runServer(t *testing.T, requests ...Request) *msgpack.Decoder {
	t.Helper()

	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	srv := newServerIO(testIndex(t), config.DefaultConfig(), &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready.Status)
	return dec
}

func TestLookupAction(t *testing.T) {
	dec := runServer(t, Request{ID: "r1", Action: "lookup", Syllable: "yi"})

	var resp LookupResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, "一", resp.Candidates[0].Character)
	assert.Equal(t, "yī", resp.Candidates[0].Reading)
	assert.Equal(t, "以", resp.Candidates[1].Character)
	assert.Equal(t, "衣", resp.Candidates[2].Character)
}

func TestLookupToneSensitiveAction(t *testing.T) {
	dec := runServer(t,
		Request{ID: "r1", Action: "lookup", Syllable: "yī", Toned: true},
		Request{ID: "r2", Action: "lookup", Syllable: "yí", Toned: true},
	)

	var hit LookupResponse
	require.NoError(t, dec.Decode(&hit))
	assert.Equal(t, 2, hit.Count)
	assert.Empty(t, hit.Candidates[0].Reading)

	// a miss is a normal empty response, not an error
	var miss LookupResponse
	require.NoError(t, dec.Decode(&miss))
	assert.Equal(t, "r2", miss.ID)
	assert.Equal(t, 0, miss.Count)
}

func TestLookupLimit(t *testing.T) {
	dec := runServer(t, Request{ID: "r1", Action: "lookup", Syllable: "yi", Limit: 2})

	var resp LookupResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, []string{"一", "以"}, []string{resp.Candidates[0].Character, resp.Candidates[1].Character})
}

func TestLookupValidation(t *testing.T) {
	dec := runServer(t,
		Request{ID: "r1", Action: "lookup"},
		Request{ID: "r2", Action: "lookup", Syllable: "yiyiyiyiyiyiyiyiyiyiyiyiyi"},
	)

	var missing ErrorResponse
	require.NoError(t, dec.Decode(&missing))
	assert.Equal(t, 400, missing.Code)

	var tooLong ErrorResponse
	require.NoError(t, dec.Decode(&tooLong))
	assert.Equal(t, "r2", tooLong.ID)
	assert.Equal(t, 400, tooLong.Code)
}

func TestSyllablesAction(t *testing.T) {
	dec := runServer(t, Request{ID: "r1", Action: "syllables", Syllable: "y"})

	var resp SyllablesResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, []string{"yi"}, resp.Syllables)
	assert.Equal(t, 1, resp.Count)
}

func TestCharAction(t *testing.T) {
	dec := runServer(t,
		Request{ID: "r1", Action: "char", Syllable: "一"},
		Request{ID: "r2", Action: "char", Syllable: "龘"},
	)

	var resp CharResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "一", resp.Character)
	assert.Equal(t, []string{"yī"}, resp.Pinyin)
	assert.Equal(t, 1, resp.Strokes)

	var unknown ErrorResponse
	require.NoError(t, dec.Decode(&unknown))
	assert.Equal(t, 404, unknown.Code)
}

func TestStatsAndHealthActions(t *testing.T) {
	dec := runServer(t,
		Request{ID: "r1", Action: "stats"},
		Request{ID: "r2", Action: "health"},
	)

	var stats StatsResponse
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, 4, stats.Stats["characters"])

	var health StatusResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, "ok", health.Status)
}

func TestUnknownAction(t *testing.T) {
	dec := runServer(t, Request{ID: "r1", Action: "frobnicate"})

	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 400, resp.Code)
	assert.Contains(t, resp.Error, "frobnicate")
}
