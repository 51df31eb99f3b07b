package dot721

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gaze-network/dot721-indexer/core/datasources"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mintPrice = "1000000000000"

func sidecarBatchJSON(height int64, signer string, remark string, transfer string) string {
	calls := fmt.Sprintf(`{"method": {"pallet": "system", "method": "remarkWithEvent"}, "args": {"remark": "0x%s"}}`,
		hex.EncodeToString([]byte(remark)))
	if transfer != "" {
		calls += "," + transfer
	}
	return fmt.Sprintf(`{
  "number": "%d",
  "hash": "0x%064x",
  "parentHash": "0x00",
  "extrinsics": [
    {
      "method": {"pallet": "timestamp", "method": "set"},
      "signature": null,
      "args": {"now": "%d"},
      "hash": "0x01",
      "events": [{"method": {"pallet": "system", "method": "ExtrinsicSuccess"}}]
    },
    {
      "method": {"pallet": "utility", "method": "batchAll"},
      "signature": {"signature": "0x00", "signer": {"id": "%s"}},
      "args": {"calls": [%s]},
      "hash": "0x%064x",
      "events": [{"method": {"pallet": "system", "method": "ExtrinsicSuccess"}}]
    }
  ]
}`, height, height, blockTime(height).UnixMilli(), signer, calls, height)
}

func sidecarTransferJSON(dest string, value string) string {
	return fmt.Sprintf(`{"method": {"pallet": "balances", "method": "transferKeepAlive"}, "args": {"dest": {"id": "%s"}, "value": %s}}`, dest, value)
}

// newPaidMintSidecar serves a priced collection created by alice at block 10, a mint
// paying exactly the price at block 11 and a mint paying one unit less at block 12.
func newPaidMintSidecar(t *testing.T) *httptest.Server {
	t.Helper()
	createRemark := fmt.Sprintf(`{"p":"dot-721","op":"create","metadata":%q,"base_uri":%q,"mint_settings":{"price":%q}}`,
		collectionURI, tokenBaseURI, mintPrice)
	mintRemark := `{"p":"dot-721","op":"mint","id":"10-1"}`
	blocks := map[string]string{
		"/blocks/10": sidecarBatchJSON(10, alice, createRemark, ""),
		"/blocks/11": sidecarBatchJSON(11, bob, mintRemark, sidecarTransferJSON(alice, `"1,000,000,000,000"`)),
		"/blocks/12": sidecarBatchJSON(12, charlie, mintRemark, sidecarTransferJSON(alice, "999999999999")),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/blocks/head/header", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"parentHash":"0x00","number":"12"}`))
	})
	for path, body := range blocks {
		body := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = w.Write([]byte(body))
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestPaidMintFromSidecarBlocks(t *testing.T) {
	ctx := context.Background()
	p, store := newTestProcessor(t)

	ds := datasources.NewSidecar(newPaidMintSidecar(t).URL, time.Second)
	require.NoError(t, ds.Connect(ctx))
	t.Cleanup(func() { _ = ds.Close() })

	expected := map[int64]*entity.FailReason{
		10: nil,
		11: nil,
		12: fail(entity.FailReasonMintInsufficientAmount),
	}
	for height := int64(10); height <= 12; height++ {
		block, err := ds.GetBlock(ctx, height)
		require.NoError(t, err)

		inscriptions, err := p.Extract(ctx, block)
		require.NoError(t, err)
		require.Len(t, inscriptions, 1)
		require.NoError(t, p.Process(ctx, height, inscriptions))

		assertResult(t, store, expected[height])
	}

	paid := store.snapshot().transactions[1]
	assert.Equal(t, "mint", paid.Op)
	assert.Equal(t, bob, paid.Sender)

	token, ok := store.snapshot().tokens[tokenKey{"10-1", 0}]
	require.True(t, ok)
	assert.Equal(t, bob, token.Owner)
	assert.Len(t, store.snapshot().tokens, 1)
}
