package blogger

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/autoblog/internal/common"
	"github.com/dmitrijs2005/autoblog/internal/logging"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func TestClient_Publish_Success(t *testing.T) {
	var gotPath, gotKey, gotAuth string
	var gotBody publishRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"id":"post-1","url":"https://example.blog/post-1"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, time.Second, testLogger())
	resp, err := c.Publish(context.Background(), "blog-key", "4242", "Hello World", "Body text")
	require.NoError(t, err)

	require.Equal(t, "post-1", resp.ID)
	require.Equal(t, "https://example.blog/post-1", resp.URL)

	require.Equal(t, "/blogger/v3/blogs/4242/posts", gotPath)
	require.Equal(t, "blog-key", gotKey)
	// same credential is used as query key and bearer token
	require.Equal(t, "Bearer blog-key", gotAuth)
	require.Equal(t, "Hello World", gotBody.Title)
	require.Equal(t, "Body text", gotBody.Content)
}

func TestClient_Publish_EndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, time.Second, testLogger())
	_, err := c.Publish(context.Background(), "k", "1", "t", "c")
	require.ErrorIs(t, err, common.ErrPublishFailed)
}

func TestClient_Publish_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, time.Second, testLogger())
	_, err := c.Publish(context.Background(), "k", "1", "t", "c")
	require.ErrorIs(t, err, common.ErrPublishFailed)
}
