// Package session owns the authenticated identity for the lifetime of
// the client process: one logical instance, restored from storage at
// startup, observable on change, and cleared globally when any request
// comes back authorization-denied.
package session

import (
	"context"
	"log"
	"sync"

	"github.com/modaboutique/storefront/pkg/models"
	"github.com/modaboutique/storefront/pkg/storage"
)

// Authenticator is the slice of the API client the session needs.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
}

// Session holds the decoded identity and raw tokens.
type Session struct {
	mu           sync.Mutex
	store        storage.Store
	auth         Authenticator
	identity     *models.Identity
	accessToken  string
	refreshToken string
	listeners    []func()
}

// New restores any stored tokens and decodes the identity from the
// stored access token. A malformed token leaves the session anonymous.
func New(store storage.Store, auth Authenticator) *Session {
	s := &Session{store: store, auth: auth}
	if raw, ok := store.Get(storage.KeyAccessToken); ok {
		s.accessToken = string(raw)
	}
	if raw, ok := store.Get(storage.KeyRefreshToken); ok {
		s.refreshToken = string(raw)
	}
	s.identity = identityFromToken(s.accessToken)
	return s
}

// AccessToken returns the raw access token, or "" when anonymous.
// Shaped to be handed to api.NewClient as its TokenSource.
func (s *Session) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

// Identity returns the current identity, or nil when anonymous.
func (s *Session) Identity() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

func (s *Session) LoggedIn() bool {
	return s.Identity() != nil
}

// OnChange registers a callback invoked after login and logout.
func (s *Session) OnChange(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Login exchanges credentials for tokens, decodes the identity and
// persists both tokens. Token persistence is best effort.
func (s *Session) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	resp, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.identity = identityFromToken(resp.AccessToken)
	identity := s.identity
	if err := s.store.Set(storage.KeyAccessToken, []byte(resp.AccessToken)); err != nil {
		log.Printf("Warning: failed to persist access token: %v", err)
	}
	if err := s.store.Set(storage.KeyRefreshToken, []byte(resp.RefreshToken)); err != nil {
		log.Printf("Warning: failed to persist refresh token: %v", err)
	}
	s.mu.Unlock()

	s.notify()
	return identity, nil
}

// Logout clears tokens and identity unconditionally. No network call
// is made. Also wired as the API client's unauthorized callback, so an
// expired token anywhere deauthenticates the whole client.
func (s *Session) Logout() {
	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.identity = nil
	if err := s.store.Delete(storage.KeyAccessToken); err != nil {
		log.Printf("Warning: failed to clear access token: %v", err)
	}
	if err := s.store.Delete(storage.KeyRefreshToken); err != nil {
		log.Printf("Warning: failed to clear refresh token: %v", err)
	}
	s.mu.Unlock()

	s.notify()
}

func (s *Session) notify() {
	s.mu.Lock()
	listeners := s.listeners
	s.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
