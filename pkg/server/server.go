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

	"github.com/bastiangx/codeassist/internal/logger"
	"github.com/bastiangx/codeassist/internal/utils"
	"github.com/bastiangx/codeassist/pkg/editor"
	"github.com/bastiangx/codeassist/pkg/session"
)

// Server handles the msgpack IPC for one editor
type Server struct {
	editor  *editor.Editor
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     *log.Logger
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(ed *editor.Editor) *Server {
	return NewServerWithIO(ed, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over the given streams
func NewServerWithIO(ed *editor.Editor, r io.Reader, w io.Writer) *Server {
	return &Server{
		editor:  ed,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		log:     logger.New("server"),
	}
}

// Start sends the ready message and serves requests until the input ends.
// A request that is valid msgpack but not a valid operation gets an error
// reply; a broken stream ends the loop with an error.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	s.send(ReadyMessage{Status: "ready"})

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Client disconnected (EOF)")
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return fmt.Errorf("reading request: %w", err)
		}
		// reloads posted by the watcher land before the request is handled
		s.editor.Tick()
		s.handleRequest(raw)
	}
}

// handleRequest decodes one message and dispatches on its op
func (s *Server) handleRequest(raw msgpack.RawMessage) {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.log.Errorf("Unmarshaling request: %v", err)
		s.sendError("", "Invalid msgpack request", 400)
		return
	}

	start := time.Now()
	var (
		st       editor.State
		consumed bool
	)
	switch req.Op {
	case "set":
		caretPos := len(req.Text)
		if req.Caret != nil {
			caretPos = *req.Caret
		}
		st = s.editor.Set(req.Text, caretPos)
	case "type":
		ch, size := utf8.DecodeRuneInString(req.Char)
		if req.Char == "" || size != len(req.Char) || ch == utf8.RuneError {
			s.sendError(req.ID, "'ch' must be a single character", 400)
			return
		}
		st = s.editor.Type(ch)
	case "backspace":
		st = s.editor.Backspace()
	case "key":
		k, ok := session.ParseKey(req.Key)
		if !ok {
			s.sendError(req.ID, fmt.Sprintf("Unknown key: %s", req.Key), 400)
			return
		}
		st, consumed = s.editor.Key(k)
	case "state":
		st = s.editor.State()
	case "stats":
		s.send(StatsResponse{ID: req.ID, Stats: s.editor.Stats()})
		return
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), 400)
		return
	}
	elapsed := time.Since(start)

	s.log.Debugf("%s %q -> %d suggestions in %v", req.Op, st.Context.Word, len(st.Suggestions), elapsed)
	s.send(newStateResponse(req.ID, st, consumed, elapsed))
}

func newStateResponse(id string, st editor.State, consumed bool, elapsed time.Duration) StateResponse {
	ranks := utils.CreateRankList(len(st.Suggestions))
	suggestions := make([]Suggestion, len(st.Suggestions))
	for i, word := range st.Suggestions {
		suggestions[i] = Suggestion{Word: word, Rank: ranks[i]}
	}
	return StateResponse{
		ID:          id,
		Text:        st.Text,
		Caret:       st.Caret,
		Word:        st.Context.Word,
		ContextKey:  st.Context.Key,
		Suggestions: suggestions,
		Selected:    st.Selected,
		Open:        st.Open,
		Highlighted: st.Styled,
		Consumed:    consumed,
		TimeTaken:   elapsed.Microseconds(),
	}
}

// send encodes one reply
func (s *Server) send(v any) {
	if err := s.encoder.Encode(v); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
