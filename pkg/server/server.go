package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/pinserve/pinserve/pkg/config"
	"github.com/pinserve/pinserve/pkg/index"
)

// Server handles the IPC for pinyin candidate lookups. It owns a built
// Index and only ever reads from it.
type Server struct {
	idx *index.Index
	cfg *config.Config
	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// NewServer creates a lookup server using stdin/stdout for IPC.
func NewServer(idx *index.Index, cfg *config.Config) *Server {
	return newServerIO(idx, cfg, os.Stdin, os.Stdout)
}

func newServerIO(idx *index.Index, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		idx: idx,
		cfg: cfg,
		dec: msgpack.NewDecoder(r),
		enc: msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil when the client
// closes its end of the pipe.
func (s *Server) Start() error {
	log.Debug("Starting IPC server.")

	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "lookup":
		s.handleLookup(req)
	case "syllables":
		s.handleSyllables(req)
	case "char":
		s.handleChar(req)
	case "stats":
		s.send(StatsResponse{ID: req.ID, Stats: s.idx.Stats()})
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleLookup(req Request) {
	if req.Syllable == "" {
		s.sendError(req.ID, "missing 's' parameter", 400)
		log.Debug("Syllable is empty in request")
		return
	}
	if utf8.RuneCountInString(req.Syllable) > s.cfg.Server.MaxSyllable {
		s.sendError(req.ID, fmt.Sprintf("syllable exceeds maximum length of %d", s.cfg.Server.MaxSyllable), 400)
		log.Debug("Syllable is too long in request")
		return
	}

	limit := req.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	entries := s.idx.LookupDetailed(req.Syllable, req.Toned)
	elapsed := time.Since(start)

	if len(entries) > limit {
		entries = entries[:limit]
	}

	candidates := make([]Candidate, len(entries))
	for i, e := range entries {
		candidates[i] = Candidate{
			Character: e.Character,
			Frequency: e.Frequency,
			Reading:   e.Syllable,
		}
	}

	s.send(LookupResponse{
		ID:         req.ID,
		Candidates: candidates,
		Count:      len(candidates),
		TimeTaken:  elapsed.Microseconds(),
	})
}

func (s *Server) handleSyllables(req Request) {
	keys := s.idx.Syllables(req.Syllable)
	s.send(SyllablesResponse{
		ID:        req.ID,
		Syllables: keys,
		Count:     len(keys),
	})
}

func (s *Server) handleChar(req Request) {
	if req.Syllable == "" {
		s.sendError(req.ID, "missing 's' parameter", 400)
		return
	}
	rec, ok := s.idx.Record(req.Syllable)
	if !ok {
		s.sendError(req.ID, fmt.Sprintf("unknown character: %s", req.Syllable), 404)
		return
	}
	s.send(CharResponse{
		ID:        req.ID,
		Character: rec.Character,
		Pinyin:    rec.Pinyin,
		Frequency: rec.Frequency,
		Strokes:   rec.Strokes,
		Radicals:  rec.Radicals,
		Structure: rec.Structure,
	})
}

// send marshals the given response into msgpack and writes it out.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
