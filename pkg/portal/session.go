package portal

import "sync"

// Session holds the authenticated user and bearer token. It is an explicit
// value passed to the client rather than ambient state, so two sessions can
// coexist in one process.
type Session struct {
	mu    sync.RWMutex
	user  *User
	token string
}

func NewSession() *Session {
	return &Session{}
}

// Init installs the authenticated user and token, replacing any prior
// session state.
func (s *Session) Init(user User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.user = &u
	s.token = token
}

// Clear drops the session state. Subsequent requests go out unauthenticated.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
}

// Active reports whether a user is signed in.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// User returns a copy of the signed-in user, if any.
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Token returns the bearer token, empty when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
