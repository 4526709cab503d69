// Package session owns the authenticated identity of the client.
//
// A Store is created once by the application and handed to every component
// that reads or changes the session. The login flow is the only regular
// writer; Reset and Logout are explicit entry points for resynchronising with
// storage. Every mutation is written to the storage key "auth" before any
// subscriber is told about it.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/accountsclient/internal/client/storage"
	"github.com/dmitrijs2005/accountsclient/internal/logging"
)

// StorageKey is the storage key holding the JSON-encoded Session.
const StorageKey = "auth"

var ErrNoCredentials = errors.New("authorization header is empty")

// Session is the persisted identity. The JSON names match what earlier
// versions of the client wrote.
type Session struct {
	IsLoggedIn          bool   `json:"isLoggedIn"`
	ID                  int64  `json:"id,omitempty"`
	Username            string `json:"username,omitempty"`
	Image               string `json:"image,omitempty"`
	AuthorizationHeader string `json:"header,omitempty"`
}

// Authorization returns the header value to send, or "" when the session
// carries none.
func (s Session) Authorization() string {
	if !s.IsLoggedIn {
		return ""
	}
	return s.AuthorizationHeader
}

type Store struct {
	repo storage.Repository
	log  logging.Logger

	// wmu serialises mutations so persist and notify happen in mutation order.
	wmu sync.Mutex

	mu      sync.RWMutex
	current Session
	subs    []*subscriber
}

type subscriber struct {
	fn func(Session)
}

// NewStore builds a Store whose state is read from repo. Storage errors are
// logged and leave the store logged out.
func NewStore(ctx context.Context, repo storage.Repository, log logging.Logger) *Store {
	s := &Store{repo: repo, log: log.With("component", "session")}
	current, err := s.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "session load failed", "error", err)
	}
	s.current = current
	return s
}

// Load reads the persisted session without changing the store. An absent or
// malformed entry yields the logged-out session and no error.
func (s *Store) Load(ctx context.Context) (Session, error) {
	var stored Session
	found, err := storage.GetJSON(ctx, s.repo, StorageKey, &stored)
	switch {
	case errors.Is(err, storage.ErrMalformed):
		s.log.Warn(ctx, "ignoring malformed session", "error", err)
		return Session{}, nil
	case err != nil:
		return Session{}, fmt.Errorf("load session: %w", err)
	case !found:
		return Session{}, nil
	}
	return stored, nil
}

// Current returns a copy of the in-memory session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) IsLoggedIn() bool {
	return s.Current().IsLoggedIn
}

// Authorization implements the API client's header source.
func (s *Store) Authorization() string {
	return s.Current().Authorization()
}

// SetLoggedIn replaces the session with a fully populated logged-in one.
func (s *Store) SetLoggedIn(ctx context.Context, id int64, username, image, authorizationHeader string) error {
	if authorizationHeader == "" {
		return ErrNoCredentials
	}
	return s.set(ctx, Session{
		IsLoggedIn:          true,
		ID:                  id,
		Username:            username,
		Image:               image,
		AuthorizationHeader: authorizationHeader,
	})
}

// Reset re-reads storage and makes that the current session.
func (s *Store) Reset(ctx context.Context) error {
	loaded, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return s.set(ctx, loaded)
}

// Logout clears storage and resets to the logged-out session.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return s.Reset(ctx)
}

// Subscribe registers fn to be called after every mutation, in registration
// order. fn must not mutate the store. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(Session)) func() {
	sub := &subscriber{fn: fn}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, v := range s.subs {
			if v == sub {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// set persists, then swaps the in-memory state, then notifies. Readers never
// see a session whose write has not been attempted. A persist failure is
// returned after subscribers have run; the in-memory state keeps the new
// value.
func (s *Store) set(ctx context.Context, next Session) error {
	s.wmu.Lock()
	defer s.wmu.Unlock()

	var persistErr error
	if err := storage.SetJSON(ctx, s.repo, StorageKey, next); err != nil {
		persistErr = fmt.Errorf("persist session: %w", err)
		s.log.Error(ctx, "session persist failed", "error", err)
	} else {
		s.log.Debug(ctx, "session persisted", "logged_in", next.IsLoggedIn, "user_id", next.ID)
	}

	s.mu.Lock()
	s.current = next
	subs := append([]*subscriber(nil), s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next)
	}
	return persistErr
}
