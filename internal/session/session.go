package session

import (
	"encoding/json"
	"errors"

	dom "Todolists/internal/domain"
)

// ErrNotFound is returned by a Store when no live state exists for a token.
var ErrNotFound = errors.New("session not found")

// Session is the per-visitor state: the list collection plus the two
// single-use flash notices.
type Session struct {
	Lists   dom.Lists `json:"lists"`
	Error   string    `json:"error,omitempty"`
	Success string    `json:"success,omitempty"`
}

// New returns a session with an empty list collection.
func New() *Session {
	return &Session{Lists: dom.Lists{}}
}

// Flash holds notices taken from a session for one render.
type Flash struct {
	Error   string
	Success string
}

// PopFlash returns the pending notices and clears them.
func (s *Session) PopFlash() Flash {
	f := Flash{Error: s.Error, Success: s.Success}
	s.Error = ""
	s.Success = ""
	return f
}

func encode(s *Session) ([]byte, error) {
	return json.Marshal(s)
}

func decode(b []byte) (*Session, error) {
	s := New()
	if err := json.Unmarshal(b, s); err != nil {
		return nil, err
	}
	if s.Lists == nil {
		s.Lists = dom.Lists{}
	}
	return s, nil
}
