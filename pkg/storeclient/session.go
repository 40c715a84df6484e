// pkg/storeclient/session.go
package storeclient

import (
	"context"
	"sync"
)

const sessionTokenKey = "admin_token"

// Session is the back-office login state: a bearer token persisted to
// the mirror and an admin profile held only in memory. Any failure of a
// protected call invalidates both, so the UI falls back to the login
// screen instead of looping on a dead token.
type Session struct {
	mu     sync.Mutex
	client *Client
	mirror *Mirror
	token  string
	admin  *Admin
}

func NewSession(client *Client, mirror *Mirror) *Session {
	return &Session{client: client, mirror: mirror}
}

// Login exchanges credentials for a token and persists it.
func (s *Session) Login(ctx context.Context, email, password string) (*Admin, error) {
	admin, token, err := s.client.AdminLogin(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.admin = admin
	if s.mirror != nil {
		s.mirror.Store(sessionTokenKey, token)
	}
	return admin, nil
}

// Restore loads a persisted token without validating it against the
// server; the next protected call decides whether it still works.
func (s *Session) Restore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mirror == nil {
		return false
	}
	var token string
	if !s.mirror.Load(sessionTokenKey, &token) || token == "" {
		return false
	}
	s.token = token
	return true
}

// FetchProfile validates the session against the protected dashboard
// endpoint. ANY failure, whatever its cause, clears the session.
func (s *Session) FetchProfile(ctx context.Context) (*Admin, error) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		s.clear()
		return nil, &APIError{Status: 401, Code: "UNAUTHORIZED", Message: "no session"}
	}

	admin, err := s.client.FetchProtectedProfile(ctx, token)
	if err != nil {
		s.clear()
		return nil, err
	}

	s.mu.Lock()
	s.admin = admin
	s.mu.Unlock()
	return admin, nil
}

func (s *Session) Logout() {
	s.clear()
}

func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.admin = nil
	if s.mirror != nil {
		s.mirror.Delete(sessionTokenKey)
	}
}

// Authenticated is the route-gate predicate. A profile without a token
// counts as logged out.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

func (s *Session) Admin() *Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
