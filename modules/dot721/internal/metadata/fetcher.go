package metadata

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/pkg/httpclient"
)

// Fetcher fetches the document served at an absolute url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

var _ Fetcher = (*HTTPFetcher)(nil)

type HTTPFetcher struct {
	client *httpclient.Client
}

func NewHTTPFetcher(timeout time.Duration) (*HTTPFetcher, error) {
	client, err := httpclient.New("", httpclient.Config{
		Timeout: timeout,
		Headers: map[string]string{
			"Accept":          "application/json",
			"Accept-Encoding": "gzip, deflate, br",
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &HTTPFetcher{client: client}, nil
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.Fetch(ctx, url)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("unexpected status code %d from %s", resp.StatusCode(), resp.URL)
	}
	body, err := resp.BodyUncompressed()
	if err != nil {
		return nil, errors.Wrapf(err, "can't uncompress body from %s", resp.URL)
	}
	return body, nil
}
