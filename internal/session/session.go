// Package session holds the process-wide authenticated identity.
//
// The store has exactly one writer (the sign-in/out flows and the token
// refresh path) and many readers; views subscribe to observe identity
// changes the way browser views observe the provider's auth-state stream.
package session

import (
	"sync"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Store is the process-wide holder of the current identity.
type Store struct {
	mu          sync.RWMutex
	creds       *domain.Credentials
	subscribers []func(*domain.Identity)
	loading     bool
}

// NewStore creates an empty session store in the loading state. The
// store stays loading until Set or Hydrate resolves the session.
func NewStore() *Store {
	return &Store{loading: true}
}

// Identity returns the current identity, or nil when signed out.
func (s *Store) Identity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return nil
	}
	identity := s.creds.Identity
	return &identity
}

// Credentials returns the current credentials, or nil when signed out.
func (s *Store) Credentials() *domain.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return nil
	}
	creds := *s.creds
	return &creds
}

// Loading reports whether the session is still being resolved.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Email returns the ownership email of the signed-in identity, or
// ErrNotAuthenticated when there is none.
func (s *Store) Email() (string, error) {
	identity := s.Identity()
	if identity == nil {
		return "", domain.ErrNotAuthenticated
	}
	return identity.Email, nil
}

// Set replaces the current credentials and notifies subscribers.
// A nil value signs the session out.
func (s *Store) Set(creds *domain.Credentials) {
	s.mu.Lock()
	s.creds = creds
	s.loading = false
	subs := make([]func(*domain.Identity), len(s.subscribers))
	copy(subs, s.subscribers)
	var identity *domain.Identity
	if creds != nil {
		id := creds.Identity
		identity = &id
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(identity)
	}
}

// UpdateIdentity replaces only the identity fields of the current
// credentials (after a profile update) and notifies subscribers.
// It is a no-op when signed out.
func (s *Store) UpdateIdentity(identity domain.Identity) {
	s.mu.Lock()
	if s.creds == nil {
		s.mu.Unlock()
		return
	}
	creds := *s.creds
	creds.Identity = identity
	s.mu.Unlock()

	s.Set(&creds)
}

// Subscribe registers a callback invoked on every identity change.
// The callback receives nil on sign-out.
func (s *Store) Subscribe(fn func(*domain.Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
