package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, nil)
}

func TestRequestCarriesBearerAndContentType(t *testing.T) {
	var gotAuth, gotAccept, gotContentType string
	mux := http.NewServeMux()
	mux.HandleFunc("/ebooks", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.Ebook{Title: "New"})
	})

	c := newClient(t, mux)
	require.NoError(t, c.SetTokens(api.TokenResponse{AccessToken: "abc", RefreshToken: "def"}))

	_, err := c.CreateEbook(context.Background(), api.EbookCreate{Title: "New"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)
}

func TestListMyEbooks_QueryParams(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ebooks/my", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "20", q.Get("skip"))
		assert.Equal(t, "50", q.Get("limit"))
		assert.Equal(t, "published", q.Get("status"))
		_ = json.NewEncoder(w).Encode(api.EbookList{
			Items: []api.Ebook{{Title: "A"}}, Total: 21, Skip: 20, Limit: 50,
		})
	})

	c := newClient(t, mux)
	list, err := c.ListMyEbooks(context.Background(), 20, 50, api.StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, 21, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "A", list.Items[0].Title)
}

func TestErrorDetailIsSurfaced(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ebooks/my", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Not enough permissions"})
	})

	c := newClient(t, mux)
	_, err := c.ListMyEbooks(context.Background(), 0, 10, "")
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Not enough permissions", apiErr.Message)
	assert.Equal(t, "Not enough permissions (HTTP 403)", apiErr.Error())
}

func TestErrorWithoutDetailFallsBackToGeneric(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ebooks/my", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	c := newClient(t, mux)
	_, err := c.ListMyEbooks(context.Background(), 0, 10, "")

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "request failed (HTTP 502)", apiErr.Error())
}

func TestTransportFailureHasZeroStatus(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	url := srv.URL
	srv.Close() // connection refused from here on

	c := api.New(url, nil)
	_, err := c.Me(context.Background())

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.Status)
	assert.Contains(t, apiErr.Message, "network error")
}

func TestDelete_NoContent(t *testing.T) {
	id := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("/ebooks/"+id.String(), func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	c := newClient(t, mux)
	require.NoError(t, c.DeleteEbook(context.Background(), id))
}

func TestSetAndClearTokens_Durable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.yml")
	store := api.NewTokenStore(path)
	c := api.New("http://localhost:1", store)

	require.NoError(t, c.SetTokens(api.TokenResponse{AccessToken: "a", RefreshToken: "r"}))
	assert.True(t, c.HasTokens())

	// A fresh client over the same store picks the pair up.
	c2 := api.New("http://localhost:1", store)
	assert.Equal(t, "a", c2.AccessToken())
	assert.Equal(t, "r", c2.RefreshTokenValue())

	require.NoError(t, c.ClearTokens())
	assert.False(t, c.HasTokens())

	access, refresh, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, access)
	assert.Empty(t, refresh)

	// Clearing twice is fine.
	require.NoError(t, c.ClearTokens())
}

func TestTokenStore_MissingFileIsEmpty(t *testing.T) {
	store := api.NewTokenStore(filepath.Join(t.TempDir(), "nope", "tokens.yml"))

	access, refresh, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, access)
	assert.Empty(t, refresh)

	require.NoError(t, store.Clear())
}
