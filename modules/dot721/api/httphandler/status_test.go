package httphandler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gaze-network/dot721-indexer/core/indexer"
	"github.com/gaze-network/dot721-indexer/modules/dot721/datagateway"
	"github.com/gaze-network/dot721-indexer/modules/dot721/datagateway/mocks"
	"github.com/gaze-network/dot721-indexer/pkg/errorhandler"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staticStatus indexer.Status

func (s staticStatus) Status() indexer.Status {
	return indexer.Status(s)
}

func newTestApp(t *testing.T, dg datagateway.DOT721ReaderDataGateway, status indexer.Status) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: errorhandler.NewHTTPErrorHandler()})
	require.NoError(t, New(dg, staticStatus(status)).Mount(app))
	return app
}

func getStatus(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return resp.StatusCode, out
}

func TestStatus(t *testing.T) {
	dg := mocks.NewDOT721DataGatewayWithTx(t)
	dg.EXPECT().GetLatestTransactionBlock(mock.Anything).Return(int64(1500), nil)

	app := newTestApp(t, dg, indexer.Status{State: indexer.StateScanning, CurrentBlock: 1501, LatestBlock: 2000})
	code, body := getStatus(t, app, "/v1/status")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "scanning", body["state"])
	assert.EqualValues(t, 1501, body["currentBlock"])
	assert.EqualValues(t, 2000, body["latestBlock"])
	assert.EqualValues(t, 1500, body["indexedBlock"])
	assert.NotContains(t, body, "stats")
}

func TestStatusNothingIndexed(t *testing.T) {
	dg := mocks.NewDOT721DataGatewayWithTx(t)
	dg.EXPECT().GetLatestTransactionBlock(mock.Anything).Return(0, errors.WithStack(errs.NotFound))

	app := newTestApp(t, dg, indexer.Status{State: indexer.StateConnecting, CurrentBlock: 10, LatestBlock: -1})
	code, body := getStatus(t, app, "/v1/status")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "connecting", body["state"])
	assert.Nil(t, body["indexedBlock"])
}

func TestStatusWithStats(t *testing.T) {
	dg := mocks.NewDOT721DataGatewayWithTx(t)
	dg.EXPECT().GetLatestTransactionBlock(mock.Anything).Return(int64(7), nil)
	dg.EXPECT().GetStats(mock.Anything).Return(&datagateway.Stats{Collections: 2, Tokens: 5, Transactions: 11}, nil)

	app := newTestApp(t, dg, indexer.Status{State: indexer.StateWaiting, CurrentBlock: 8, LatestBlock: 7})
	code, body := getStatus(t, app, "/v1/status?stats=true")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{
		"collections":  float64(2),
		"tokens":       float64(5),
		"transactions": float64(11),
	}, body["stats"])
}

func TestStatusStoreError(t *testing.T) {
	dg := mocks.NewDOT721DataGatewayWithTx(t)
	dg.EXPECT().GetLatestTransactionBlock(mock.Anything).Return(0, errors.New("connection refused"))

	app := newTestApp(t, dg, indexer.Status{})
	code, body := getStatus(t, app, "/v1/status")

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal Server Error", body["error"])
}
