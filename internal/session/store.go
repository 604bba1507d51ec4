// Package session owns the process-wide authentication state. All state
// changes go through the transition methods here; nothing else mutates the
// token pair or the current user.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/inkwell-labs/inkctl/internal/api"
)

// State is the auth machine's current position.
type State int

const (
	StateUnauthenticated State = iota
	StateLoading
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// ErrSignedOut is returned by Login when a Logout interleaved with it. The
// logout's token clear wins; the store ends Unauthenticated.
var ErrSignedOut = errors.New("signed out while signing in")

// Store is the auth session state machine.
type Store struct {
	client *api.Client

	mu    sync.Mutex
	state State
	user  *api.User
	err   error
	// epoch is bumped by Logout; an in-flight login or refresh that
	// started under an older epoch must discard its tokens on arrival.
	epoch uint64

	now func() time.Time // test hook
}

// New creates a Store over the given API client.
func New(client *api.Client) *Store {
	return &Store{client: client, now: time.Now}
}

// State returns the current machine state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the authenticated user, or nil.
func (s *Store) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Err returns the last auth failure, for form-level display. Cleared by the
// next operation.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Resume restores a session from the durable token pair, refreshing first
// when the access token has already expired. With no stored tokens, or when
// the backend rejects them, the store ends Unauthenticated with tokens
// cleared.
func (s *Store) Resume(ctx context.Context) error {
	if !s.client.HasTokens() {
		s.setUnauthenticated(nil)
		return nil
	}
	epoch := s.begin()

	if tokenExpired(s.client.AccessToken(), s.now()) {
		refresh := s.client.RefreshTokenValue()
		if refresh == "" {
			return s.failAndClear(epoch, &api.Error{Message: "session expired"})
		}
		pair, err := s.client.Refresh(ctx, refresh)
		if err != nil {
			return s.failAndClear(epoch, err)
		}
		if !s.commitTokens(epoch, pair) {
			return ErrSignedOut
		}
	}

	user, err := s.client.Me(ctx)
	if err != nil {
		return s.failAndClear(epoch, err)
	}
	if !s.commitUser(epoch, user) {
		return ErrSignedOut
	}
	return nil
}

// Login exchanges credentials for a session: Loading, then Authenticated on
// success or Unauthenticated on failure (with the error kept for display).
func (s *Store) Login(ctx context.Context, email, password string) error {
	epoch := s.begin()

	pair, err := s.client.Login(ctx, email, password)
	if err != nil {
		return s.fail(epoch, err)
	}
	if !s.commitTokens(epoch, pair) {
		return ErrSignedOut
	}

	user, err := s.client.Me(ctx)
	if err != nil {
		return s.failAndClear(epoch, err)
	}
	if !s.commitUser(epoch, user) {
		return ErrSignedOut
	}
	return nil
}

// Register creates the account, then logs straight in with the same
// credentials.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) error {
	epoch := s.begin()

	if _, err := s.client.Register(ctx, req); err != nil {
		return s.fail(epoch, err)
	}
	return s.Login(ctx, req.Email, req.Password)
}

// Logout invalidates the session server-side on a best-effort basis, then
// clears tokens locally. It always succeeds locally, and its clear wins over
// any in-flight login.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.epoch++
	s.mu.Unlock()

	if refresh := s.client.RefreshTokenValue(); refresh != "" {
		// Network failures are swallowed: local sign-out must not depend
		// on the backend being reachable.
		_ = s.client.Logout(ctx, refresh)
	}
	_ = s.client.ClearTokens()
	s.setUnauthenticated(nil)
}

// begin moves to Loading and snapshots the epoch the operation runs under.
func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateLoading
	s.err = nil
	return s.epoch
}

// commitTokens stores the pair unless a logout invalidated the operation.
func (s *Store) commitTokens(epoch uint64, pair *api.TokenResponse) bool {
	s.mu.Lock()
	stale := epoch != s.epoch
	s.mu.Unlock()
	if stale {
		// A logout won the race; make sure nothing persisted.
		_ = s.client.ClearTokens()
		s.setUnauthenticated(nil)
		return false
	}
	_ = s.client.SetTokens(*pair)
	// Re-check: a logout may have cleared between the check and the set.
	s.mu.Lock()
	stale = epoch != s.epoch
	s.mu.Unlock()
	if stale {
		_ = s.client.ClearTokens()
		s.setUnauthenticated(nil)
		return false
	}
	return true
}

// commitUser finishes an operation in Authenticated, unless stale.
func (s *Store) commitUser(epoch uint64, user *api.User) bool {
	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		_ = s.client.ClearTokens()
		s.setUnauthenticated(nil)
		return false
	}
	s.state = StateAuthenticated
	s.user = user
	s.err = nil
	s.mu.Unlock()
	return true
}

// fail records err and returns to Unauthenticated without touching tokens.
func (s *Store) fail(epoch uint64, err error) error {
	s.setUnauthenticated(err)
	return err
}

// failAndClear additionally drops the token pair, for failures after tokens
// were held (resume rejection, refresh failure, me failure).
func (s *Store) failAndClear(epoch uint64, err error) error {
	_ = s.client.ClearTokens()
	s.setUnauthenticated(err)
	return err
}

func (s *Store) setUnauthenticated(err error) {
	s.mu.Lock()
	s.state = StateUnauthenticated
	s.user = nil
	s.err = err
	s.mu.Unlock()
}

// tokenExpired peeks at the JWT exp claim without verifying the signature —
// verification is the backend's job; this only decides whether a refresh is
// worth attempting before /auth/me.
func tokenExpired(token string, now time.Time) bool {
	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Unparseable token: let the server decide.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
