package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// StorageKey is the key under which the session is persisted.
const StorageKey = "gramaconnect_user"

// SessionState is the persisted form of a login.
type SessionState struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      UserSummary `json:"user"`
}

// Session holds at most one logged-in user and keeps it in a Store across
// restarts. It sets the Client's bearer token as the login changes.
type Session struct {
	client *Client
	store  Store
	now    func() time.Time

	mu    sync.RWMutex
	state *SessionState
}

// NewSession creates a logged-out session. Call Restore to pick up a
// previously saved login.
func NewSession(c *Client, store Store) *Session {
	return &Session{client: c, store: store, now: time.Now}
}

// Restore loads the saved login. It reports false when nothing usable was
// saved; unreadable and expired entries are deleted.
func (s *Session) Restore() (bool, error) {
	raw, err := s.store.Load(StorageKey)
	if errors.Is(err, ErrNotStored) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("session: restore: %w", err)
	}

	var st SessionState
	if err := json.Unmarshal(raw, &st); err != nil || st.Token == "" {
		return false, s.discard()
	}
	if !st.ExpiresAt.IsZero() && !s.now().Before(st.ExpiresAt) {
		return false, s.discard()
	}

	s.set(&st)
	return true, nil
}

// Login authenticates and replaces the current session. On failure the
// existing session is left as it was.
func (s *Session) Login(ctx context.Context, req LoginRequest) (*UserSummary, error) {
	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.persist(resp)
}

// Register creates the account and logs into it.
func (s *Session) Register(ctx context.Context, req RegisterRequest) (*UserSummary, error) {
	if _, err := s.client.Register(ctx, req); err != nil {
		return nil, err
	}
	resp, err := s.client.Login(ctx, LoginRequest{Email: req.Email, Password: req.Password, Role: req.Role})
	if err != nil {
		return nil, fmt.Errorf("session: login after register: %w", err)
	}
	return s.persist(resp)
}

// Logout forgets the session in memory and in the store.
func (s *Session) Logout() error {
	s.set(nil)
	if err := s.store.Delete(StorageKey); err != nil {
		return fmt.Errorf("session: logout: %w", err)
	}
	return nil
}

// User returns the logged-in user.
func (s *Session) User() (UserSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return UserSummary{}, false
	}
	return s.state.User, true
}

// State returns a copy of the current session, or nil when logged out.
func (s *Session) State() *SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil
	}
	st := *s.state
	return &st
}

func (s *Session) persist(resp *LoginResponse) (*UserSummary, error) {
	st := &SessionState{Token: resp.Token, ExpiresAt: resp.ExpiresAt, User: resp.User}
	raw, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("session: encode: %w", err)
	}
	if err := s.store.Save(StorageKey, raw); err != nil {
		return nil, fmt.Errorf("session: save: %w", err)
	}
	s.set(st)
	u := st.User
	return &u, nil
}

func (s *Session) discard() error {
	if err := s.store.Delete(StorageKey); err != nil {
		return fmt.Errorf("session: discard: %w", err)
	}
	return nil
}

func (s *Session) set(st *SessionState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()

	if st == nil {
		s.client.SetToken("")
		return
	}
	s.client.SetToken(st.Token)
}
