package unsplash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(serverURL string) *Client {
	c := NewClient("test-key", zap.NewNop())
	c.baseURL = serverURL
	return c
}

func TestSearchPhotoReturnsRegularURL(t *testing.T) {
	var gotAuth, gotQuery, gotOrientation string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		gotOrientation = r.URL.Query().Get("orientation")
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))
		assert.Equal(t, "high", r.URL.Query().Get("content_filter"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"urls": {"regular": "https://images.example.com/coffee.jpg"}}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	url, err := c.SearchPhoto(context.Background(), "organic coffee", "landscape")
	require.NoError(t, err)

	assert.Equal(t, "https://images.example.com/coffee.jpg", url)
	assert.Equal(t, "Client-ID test-key", gotAuth)
	assert.Equal(t, "organic coffee", gotQuery)
	assert.Equal(t, "landscape", gotOrientation)
}

func TestSearchPhotoNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	url, err := newTestClient(server.URL).SearchPhoto(context.Background(), "nothing", "landscape")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestSearchPhotoNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SearchPhoto(context.Background(), "coffee", "landscape")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSearchPhotoRetriesOnServerError(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"urls": {"regular": "https://images.example.com/ok.jpg"}}]}`))
	}))
	defer server.Close()

	url, err := newTestClient(server.URL).SearchPhoto(context.Background(), "coffee", "landscape")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com/ok.jpg", url)
	assert.Equal(t, 2, hits, "one retry after a transient failure")
}
