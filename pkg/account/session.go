package account

import "sync"

// Session holds the process-wide current-user pointer. The application keeps
// a single active user for the whole process rather than per-connection
// sessions; the mutex makes concurrent set/read/clear calls safe, with
// last-write-wins semantics.
type Session struct {
	mu     sync.Mutex
	userID *uint
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Set(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = &id
}

func (s *Session) Get() *uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == nil {
		return nil
	}
	id := *s.userID
	return &id
}

// ClearIf drops the pointer only when it currently names id, so deleting an
// unrelated user never logs out the active one.
func (s *Session) ClearIf(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID != nil && *s.userID == id {
		s.userID = nil
	}
}
