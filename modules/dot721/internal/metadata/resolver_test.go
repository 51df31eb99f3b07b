package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ipfs/QmCollection/collection.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Dots","description":"Dotted things","image":"ipfs://QmImage/logo.png"}`))
	})
	mux.HandleFunc("/ipfs/QmBase/0.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(`{"name":"Dot #0","image":"ipfs://QmImage/0.png","attributes":[{"trait_type":"color","value":"red"}]}`))
	})
	mux.HandleFunc("/ipfs/QmBase/1.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not found</html>`))
	})
	mux.HandleFunc("/ipfs/QmBase/2.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Dot #2"}`))
	})
	mux.HandleFunc("/ipfs/QmError/0.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"name":"Dot #0","image":"ipfs://QmImage/0.png"}`))
	})
	mux.HandleFunc("/ipfs/QmSlow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/direct.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Direct","image":"https://example.com/direct.png"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestResolver(t *testing.T, srv *httptest.Server, timeout time.Duration) *Resolver {
	t.Helper()
	fetcher, err := NewHTTPFetcher(time.Second)
	require.NoError(t, err)
	return NewResolver(fetcher, srv.URL+"/ipfs/", timeout)
}

func TestResolverURL(t *testing.T) {
	r := NewResolver(nil, "https://gateway.example/ipfs/", 0)

	testcases := []struct {
		uri      string
		expected string
	}{
		{"ipfs://QmHash", "https://gateway.example/ipfs/QmHash"},
		{"ipfs://QmHash/", "https://gateway.example/ipfs/QmHash/"},
		{"ipfs://QmHash/meta/1.json", "https://gateway.example/ipfs/QmHash/meta/1.json"},
		{"ipfs:QmHash/1.json", "https://gateway.example/ipfs/QmHash/1.json"},
		{"https://example.com/1.json?v=2", "https://example.com/1.json?v=2"},
		{"http://example.com/1.json", "http://example.com/1.json"},
	}
	for _, tc := range testcases {
		t.Run(tc.uri, func(t *testing.T) {
			actual, err := r.URL(tc.uri)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestResolveCollection(t *testing.T) {
	srv := newTestGateway(t)
	r := newTestResolver(t, srv, 0)

	metadata, err := r.ResolveCollection(context.Background(), "ipfs://QmCollection/collection.json")
	require.NoError(t, err)
	assert.Equal(t, "Dots", metadata.Name)
	require.NotNil(t, metadata.Description)
	assert.Equal(t, "Dotted things", *metadata.Description)
	assert.Equal(t, "ipfs://QmImage/logo.png", metadata.Image)

	metadata, err = r.ResolveCollection(context.Background(), srv.URL+"/direct.json")
	require.NoError(t, err)
	assert.Equal(t, "Direct", metadata.Name)
	assert.Nil(t, metadata.Description)
}

func TestResolveToken(t *testing.T) {
	srv := newTestGateway(t)
	r := newTestResolver(t, srv, 0)

	metadata, err := r.ResolveToken(context.Background(), "ipfs://QmBase/0.json")
	require.NoError(t, err)
	assert.Equal(t, "Dot #0", metadata.Name)
	require.Len(t, metadata.Attributes, 1)
	assert.Equal(t, "color", metadata.Attributes[0].TraitType)
}

func TestResolveErrors(t *testing.T) {
	srv := newTestGateway(t)
	r := newTestResolver(t, srv, 100*time.Millisecond)

	testcases := []struct {
		name    string
		uri     string
		wantErr error
	}{
		{"not_found", "ipfs://QmMissing/0.json", ErrFetchFailed},
		{"server_error_with_document", "ipfs://QmError/0.json", ErrFetchFailed},
		{"not_json", "ipfs://QmBase/1.json", ErrInvalidJSON},
		{"schema_mismatch", "ipfs://QmBase/2.json", ErrInvalidSchema},
		{"timeout", "ipfs://QmSlow", ErrFetchFailed},
		{"unreachable", "http://127.0.0.1:1/0.json", ErrFetchFailed},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.ResolveToken(context.Background(), tc.uri)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err := r.ResolveCollection(context.Background(), "ipfs://QmBase/2.json")
	require.ErrorIs(t, err, ErrInvalidSchema)
	assert.Contains(t, err.Error(), "invalid collection metadata")
}
