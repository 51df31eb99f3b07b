package metadata

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/protocol"
)

var (
	ErrFetchFailed   = errors.New("failed to fetch metadata")
	ErrInvalidJSON   = errors.New("metadata is not valid json")
	ErrInvalidSchema = errors.New("metadata does not match the schema")
)

// Resolver fetches metadata documents, ipfs uris are served through the configured gateway.
type Resolver struct {
	fetcher Fetcher
	gateway string
	timeout time.Duration
}

// NewResolver creates a resolver. A zero timeout leaves the deadline to the caller context.
func NewResolver(fetcher Fetcher, gateway string, timeout time.Duration) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		gateway: gateway,
		timeout: timeout,
	}
}

// URL returns the url to fetch for the given metadata uri.
func (r *Resolver) URL(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", errors.Wrapf(err, "can't parse uri %q", uri)
	}
	if u.Scheme != "ipfs" {
		return uri, nil
	}
	if u.Opaque != "" {
		return r.gateway + u.Opaque, nil
	}
	// ipfs://<cid>/<path>
	rest := strings.TrimLeft(u.Host+u.EscapedPath(), "/")
	if u.RawQuery != "" {
		rest += "?" + u.RawQuery
	}
	return r.gateway + rest, nil
}

// Resolve fetches the document at uri. The error is ErrFetchFailed or ErrInvalidJSON.
func (r *Resolver) Resolve(ctx context.Context, uri string) (json.RawMessage, error) {
	fetchURL, err := r.URL(uri)
	if err != nil {
		return nil, errors.Wrapf(ErrFetchFailed, "%v", err)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	body, err := r.fetcher.Fetch(ctx, fetchURL)
	if err != nil {
		return nil, errors.Wrapf(ErrFetchFailed, "can't fetch %s: %v", fetchURL, err)
	}
	if !json.Valid(body) {
		return nil, errors.Wrapf(ErrInvalidJSON, "from %s", fetchURL)
	}
	return json.RawMessage(body), nil
}

func (r *Resolver) ResolveCollection(ctx context.Context, uri string) (*protocol.CollectionMetadata, error) {
	doc, err := r.Resolve(ctx, uri)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	metadata, err := protocol.ParseCollectionMetadata(doc)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSchema, "invalid collection metadata: %v", err)
	}
	return metadata, nil
}

func (r *Resolver) ResolveToken(ctx context.Context, uri string) (*protocol.TokenMetadata, error) {
	doc, err := r.Resolve(ctx, uri)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	metadata, err := protocol.ParseTokenMetadata(doc)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSchema, "invalid token metadata: %v", err)
	}
	return metadata, nil
}
