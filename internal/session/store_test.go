package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func newStore(t *testing.T, handler http.Handler) (*session.Store, *api.Client, *api.TokenStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := api.NewTokenStore(filepath.Join(t.TempDir(), "tokens.yml"))
	client := api.New(srv.URL, tokens)
	return session.New(client), client, tokens
}

func testUser() api.User {
	return api.User{Email: "reader@example.com", Username: "reader"}
}

func TestLogin_Success(t *testing.T) {
	access := signedToken(t, time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "reader@example.com", creds["email"])
		writeJSON(t, w, http.StatusOK, api.TokenResponse{
			AccessToken: access, RefreshToken: "r1", TokenType: "bearer",
		})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+access, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, testUser())
	})

	store, client, tokens := newStore(t, mux)

	err := store.Login(context.Background(), "reader@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, session.StateAuthenticated, store.State())
	require.NotNil(t, store.User())
	assert.Equal(t, "reader@example.com", store.User().Email)
	assert.True(t, client.HasTokens())

	// The pair must have survived to disk.
	gotAccess, gotRefresh, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, access, gotAccess)
	assert.Equal(t, "r1", gotRefresh)
}

func TestLogin_BadCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{
			"detail": "Incorrect email or password",
		})
	})

	store, client, _ := newStore(t, mux)

	err := store.Login(context.Background(), "reader@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect email or password")

	assert.Equal(t, session.StateUnauthenticated, store.State())
	assert.Nil(t, store.User())
	assert.Equal(t, err, store.Err())
	assert.False(t, client.HasTokens())
}

func TestLogout_DuringLogin_ClearWins(t *testing.T) {
	access := signedToken(t, time.Now().Add(time.Hour))
	meStarted := make(chan struct{})
	meRelease := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, api.TokenResponse{
			AccessToken: access, RefreshToken: "r1", TokenType: "bearer",
		})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		close(meStarted)
		<-meRelease
		writeJSON(t, w, http.StatusOK, testUser())
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	store, client, tokens := newStore(t, mux)

	loginErr := make(chan error, 1)
	go func() {
		loginErr <- store.Login(context.Background(), "reader@example.com", "hunter2")
	}()

	// Wait until the login holds tokens and sits inside /auth/me, then
	// sign out under it.
	<-meStarted
	store.Logout(context.Background())
	close(meRelease)

	err := <-loginErr
	require.ErrorIs(t, err, session.ErrSignedOut)

	assert.Equal(t, session.StateUnauthenticated, store.State())
	assert.Nil(t, store.User())
	assert.False(t, client.HasTokens())

	gotAccess, gotRefresh, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, gotAccess)
	assert.Empty(t, gotRefresh)
}

func TestResume_NoTokens(t *testing.T) {
	store, _, _ := newStore(t, http.NewServeMux())

	require.NoError(t, store.Resume(context.Background()))
	assert.Equal(t, session.StateUnauthenticated, store.State())
}

func TestResume_ValidTokenSkipsRefresh(t *testing.T) {
	access := signedToken(t, time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		t.Error("refresh must not be called for a live access token")
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, testUser())
	})

	store, client, _ := newStore(t, mux)
	require.NoError(t, client.SetTokens(api.TokenResponse{AccessToken: access, RefreshToken: "r1"}))

	require.NoError(t, store.Resume(context.Background()))
	assert.Equal(t, session.StateAuthenticated, store.State())
	assert.Equal(t, access, client.AccessToken())
}

func TestResume_ExpiredTokenRefreshesFirst(t *testing.T) {
	stale := signedToken(t, time.Now().Add(-time.Hour))
	fresh := signedToken(t, time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "r1", body["refresh_token"])
		writeJSON(t, w, http.StatusOK, api.TokenResponse{
			AccessToken: fresh, RefreshToken: "r2", TokenType: "bearer",
		})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+fresh, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, testUser())
	})

	store, client, _ := newStore(t, mux)
	require.NoError(t, client.SetTokens(api.TokenResponse{AccessToken: stale, RefreshToken: "r1"}))

	require.NoError(t, store.Resume(context.Background()))
	assert.Equal(t, session.StateAuthenticated, store.State())
	assert.Equal(t, fresh, client.AccessToken())
	assert.Equal(t, "r2", client.RefreshTokenValue())
}

func TestResume_RejectedTokenClears(t *testing.T) {
	access := signedToken(t, time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
	})

	store, client, _ := newStore(t, mux)
	require.NoError(t, client.SetTokens(api.TokenResponse{AccessToken: access, RefreshToken: "r1"}))

	err := store.Resume(context.Background())
	require.Error(t, err)
	assert.Equal(t, session.StateUnauthenticated, store.State())
	assert.False(t, client.HasTokens())
}

func TestRegister_LogsStraightIn(t *testing.T) {
	access := signedToken(t, time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "new@example.com", req.Email)
		writeJSON(t, w, http.StatusCreated, api.User{Email: req.Email})
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, api.TokenResponse{
			AccessToken: access, RefreshToken: "r1", TokenType: "bearer",
		})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, api.User{Email: "new@example.com"})
	})

	store, _, _ := newStore(t, mux)

	err := store.Register(context.Background(), api.RegisterRequest{
		Email: "new@example.com", Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, session.StateAuthenticated, store.State())
	assert.Equal(t, "new@example.com", store.User().Email)
}
