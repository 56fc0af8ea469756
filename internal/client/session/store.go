// Package session owns the client's identity and credential tokens.
//
// The store is the single writer of the token pair and moves through a
// three-state lifecycle:
//
//	Unknown -> Authenticated | Anonymous   (restore at startup)
//	Anonymous -> Authenticated             (login, register)
//	Authenticated -> Anonymous             (logout, any identity-fetch failure,
//	                                        401 on any non-auth call)
//
// No other transition exists. While the state is Unknown, callers must wait
// rather than guess.
package session

import (
	"context"
	"sync"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/api"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/logging"
)

// State is the session lifecycle state.
type State int

const (
	// StateUnknown holds from process start until Restore finishes.
	StateUnknown State = iota
	// StateAnonymous means no identity is present.
	StateAnonymous
	// StateAuthenticated means an identity and both tokens are present.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// TokenSourceFunc adapts a plain function to the api.TokenSource interface,
// which breaks the construction cycle between the HTTP client and the store.
type TokenSourceFunc func() string

// AccessToken implements api.TokenSource.
func (f TokenSourceFunc) AccessToken() string { return f() }

// AuthAPI is the slice of the auth gateway the store needs. *api.AuthGateway
// satisfies it; tests substitute fakes.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*api.Credentials, error)
	Register(ctx context.Context, req *api.RegisterRequest) (*api.Credentials, error)
	Logout(ctx context.Context, refreshToken string) error
	CurrentUser(ctx context.Context) (*models.Identity, error)
	UpdateProfile(ctx context.Context, upd *api.ProfileUpdate) (*models.Identity, error)
}

// Store holds the current identity and token pair. It is safe for
// concurrent reads; all writes go through its methods.
type Store struct {
	auth    AuthAPI
	storage TokenStorage
	log     logging.Logger

	mu       sync.RWMutex
	state    State
	identity *models.Identity
	tokens   models.TokenPair

	subMu sync.Mutex
	subs  []func(State)
}

// NewStore builds a Store in StateUnknown. Call Restore once before serving
// any protected operation.
func NewStore(auth AuthAPI, storage TokenStorage, log logging.Logger) *Store {
	return &Store{auth: auth, storage: storage, log: log, state: StateUnknown}
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Identity returns a copy of the current identity, or nil when anonymous.
func (s *Store) Identity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// AccessToken implements api.TokenSource.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.Access
}

// Subscribe registers fn to run after every state change. Callbacks run
// synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn func(State)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify(state State) {
	s.subMu.Lock()
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(state)
	}
}

// setSession records tokens and identity atomically and moves to
// StateAuthenticated.
func (s *Store) setSession(pair models.TokenPair, id *models.Identity) {
	s.mu.Lock()
	s.tokens = pair
	s.identity = id
	s.state = StateAuthenticated
	s.mu.Unlock()
	s.notify(StateAuthenticated)
}

// clearSession wipes tokens and identity and moves to StateAnonymous.
func (s *Store) clearSession(ctx context.Context) {
	if err := s.storage.Clear(); err != nil {
		s.log.Warn(ctx, "clearing token storage failed", "error", err)
	}
	s.mu.Lock()
	s.tokens = models.TokenPair{}
	s.identity = nil
	s.state = StateAnonymous
	s.mu.Unlock()
	s.notify(StateAnonymous)
}

// Restore resolves the initial Unknown state exactly once at startup. If a
// stored token exists it fetches the identity; on any failure it clears the
// tokens and lands Anonymous. It never retries.
func (s *Store) Restore(ctx context.Context) {
	pair, err := s.storage.Load()
	if err != nil {
		s.log.Warn(ctx, "loading stored tokens failed", "error", err)
		s.clearSession(ctx)
		return
	}
	if pair.Empty() {
		s.clearSession(ctx)
		return
	}

	s.mu.Lock()
	s.tokens = pair
	s.mu.Unlock()

	id, err := s.auth.CurrentUser(ctx)
	if err != nil {
		s.log.Info(ctx, "stored session is no longer valid", "error", err)
		s.clearSession(ctx)
		return
	}
	s.setSession(pair, id)
	s.log.Info(ctx, "session restored", "username", id.Username)
}

// Login authenticates and, on success, atomically records both tokens and
// the identity. On failure the prior session is left untouched and the
// error is returned to the caller.
func (s *Store) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	creds, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, creds), nil
}

// Register provisions a new account and behaves like Login on success and
// failure.
func (s *Store) Register(ctx context.Context, req *api.RegisterRequest) (*models.Identity, error) {
	creds, err := s.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, creds), nil
}

func (s *Store) adopt(ctx context.Context, creds *api.Credentials) *models.Identity {
	pair := models.TokenPair{Access: creds.Access, Refresh: creds.Refresh}
	if err := s.storage.Save(pair); err != nil {
		// The in-memory session still works for this process; only
		// durability across restarts is lost.
		s.log.Warn(ctx, "persisting tokens failed", "error", err)
	}
	id := creds.User
	s.setSession(pair, &id)
	return &id
}

// Logout asks the backend to invalidate the refresh token, then clears the
// local session unconditionally. Server-side failures are logged, never
// surfaced.
func (s *Store) Logout(ctx context.Context) {
	s.mu.RLock()
	refresh := s.tokens.Refresh
	s.mu.RUnlock()

	if refresh != "" {
		if err := s.auth.Logout(ctx, refresh); err != nil {
			s.log.Warn(ctx, "server-side logout failed", "error", err)
		}
	}
	s.clearSession(ctx)
}

// Invalidate drops the session in response to a 401-class rejection on any
// non-auth call. Wire it to api.Client.OnUnauthorized.
func (s *Store) Invalidate() {
	ctx := context.Background()
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()
	if state != StateAuthenticated {
		return
	}
	s.log.Info(ctx, "session invalidated by server")
	s.clearSession(ctx)
}

// UpdateProfile applies a partial profile edit and refreshes the stored
// identity on success.
func (s *Store) UpdateProfile(ctx context.Context, upd *api.ProfileUpdate) (*models.Identity, error) {
	id, err := s.auth.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.identity = id
	s.mu.Unlock()
	s.notify(StateAuthenticated)
	out := *id
	return &out, nil
}
