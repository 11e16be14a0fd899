/*
Package server implements msgpack IPC for pinyin candidate lookups.

The server reads binary msgpack messages from stdin and writes msgpack
responses to stdout, one message per request, processed synchronously
with timing info included in responses.

# IPC

Every request carries an ID and an action. The main action resolves a
syllable to ranked character candidates:

	{"id": "req_001", "action": "lookup", "s": "yi", "l": 10}

The server responds with candidates sorted most common first:

	{"id": "req_001", "c": [{"ch": "一", "freq": 0, "py": "yī"}, ...], "n": 4, "t": 38}

Setting "tone" matches the toned reading verbatim instead of stripping
tone marks from the query first:

	{"id": "req_002", "action": "lookup", "s": "yī", "tone": true}

An empty candidate list is a normal response with n == 0, not an error.

Other actions: "syllables" enumerates tone-free keys under a prefix,
"char" returns a character's full record, "stats" reports index counters,
and "health" answers with a status string. Bad input or an unknown action
yields an error response:

	{"id": "req_003", "e": "unknown action: foo", "code": 400}
*/
package server

// Request is an incoming IPC message.
type Request struct {
	ID       string `msgpack:"id"`
	Action   string `msgpack:"action"`
	Syllable string `msgpack:"s,omitempty"`
	Toned    bool   `msgpack:"tone,omitempty"`
	Limit    int    `msgpack:"l,omitempty"`
}

// Candidate is one ranked character in a lookup response. Reading is the
// toned syllable that matched; it is empty in tone-sensitive mode where
// the query itself is the reading.
type Candidate struct {
	Character string `msgpack:"ch"`
	Frequency int    `msgpack:"freq"`
	Reading   string `msgpack:"py,omitempty"`
}

// LookupResponse answers a lookup action.
type LookupResponse struct {
	ID         string      `msgpack:"id"`
	Candidates []Candidate `msgpack:"c"`
	Count      int         `msgpack:"n"`
	TimeTaken  int64       `msgpack:"t"`
}

// SyllablesResponse answers a syllables action with the tone-free keys
// under the requested prefix.
type SyllablesResponse struct {
	ID        string   `msgpack:"id"`
	Syllables []string `msgpack:"keys"`
	Count     int      `msgpack:"n"`
}

// CharResponse answers a char action with the full source record.
type CharResponse struct {
	ID        string   `msgpack:"id"`
	Character string   `msgpack:"ch"`
	Pinyin    []string `msgpack:"py"`
	Frequency int      `msgpack:"freq"`
	Strokes   int      `msgpack:"strokes,omitempty"`
	Radicals  string   `msgpack:"radicals,omitempty"`
	Structure string   `msgpack:"structure,omitempty"`
}

// StatsResponse answers a stats action.
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// StatusResponse signals readiness and answers health actions.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"code"`
}
