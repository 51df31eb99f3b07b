package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/blocks/10", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("finalized"))
		assert.Equal(t, "dot721", r.Header.Get("X-Client"))
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"number":"10"}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL+"/api", Config{Headers: map[string]string{"X-Client": "dot721"}})
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "/blocks/10", RequestOptions{
		Query: map[string][]string{"finalized": {"true"}},
	})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())

	var out struct {
		Number string `json:"number"`
	}
	require.NoError(t, resp.UnmarshalBody(&out))
	assert.Equal(t, "10", out.Number)
}

func TestClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	client, err := New("")
	require.NoError(t, err)

	resp, err := client.Fetch(context.Background(), srv.URL+"/ok")
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "hello", string(resp.Body()))

	resp, err = client.Fetch(context.Background(), srv.URL+"/missing")
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())

	_, err = client.Fetch(context.Background(), "/relative/path")
	assert.Error(t, err)
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client, err := New(srv.URL, Config{Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), srv.URL)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.Fetch(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}
