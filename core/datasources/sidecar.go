package datasources

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gaze-network/dot721-indexer/core/types"
	"github.com/gaze-network/dot721-indexer/pkg/httpclient"
	"github.com/gaze-network/dot721-indexer/pkg/logger"
	"github.com/gaze-network/dot721-indexer/pkg/logger/slogx"
	"github.com/gaze-network/uint128"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var _ Datasource = (*SidecarDatasource)(nil)

// SidecarDatasource fetches finalized blocks from a Substrate API Sidecar (REST) instance.
type SidecarDatasource struct {
	endpoint string
	config   httpclient.Config

	mu     sync.RWMutex
	client *httpclient.Client
}

// NewSidecar creates a datasource for the Sidecar serving at endpoint. Call Connect before use.
func NewSidecar(endpoint string, timeout time.Duration) *SidecarDatasource {
	return &SidecarDatasource{
		endpoint: endpoint,
		config: httpclient.Config{
			Timeout: timeout,
			Headers: map[string]string{
				"Accept": "application/json",
			},
		},
	}
}

func (d *SidecarDatasource) Name() string {
	return "substrate_sidecar"
}

func (d *SidecarDatasource) Connect(ctx context.Context) error {
	client, err := httpclient.New(d.endpoint, d.config)
	if err != nil {
		return errors.Wrap(err, "can't create sidecar client")
	}

	start := time.Now()
	head, err := d.finalizedHeight(ctx, client)
	if err != nil {
		return errors.Wrapf(err, "can't connect to sidecar %q", d.endpoint)
	}

	d.mu.Lock()
	d.client = client
	d.mu.Unlock()

	logger.InfoContext(ctx, "Connected to Substrate Sidecar",
		slogx.String("endpoint", d.endpoint),
		slogx.Int64("finalized_height", head),
		slogx.Duration("latency", time.Since(start)),
	)
	return nil
}

func (d *SidecarDatasource) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.client = nil
	return nil
}

func (d *SidecarDatasource) session() (*httpclient.Client, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.client == nil {
		return nil, errors.Wrap(errs.Closed, "sidecar session is not connected")
	}
	return d.client, nil
}

func (d *SidecarDatasource) FinalizedHeight(ctx context.Context) (int64, error) {
	client, err := d.session()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return d.finalizedHeight(ctx, client)
}

func (d *SidecarDatasource) finalizedHeight(ctx context.Context, client *httpclient.Client) (int64, error) {
	var header sidecarHeader
	if err := get(ctx, client, "/blocks/head/header", &header); err != nil {
		return 0, errors.Wrap(err, "can't get finalized head")
	}
	height, err := strconv.ParseInt(header.Number, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid block number %q", header.Number)
	}
	return height, nil
}

func (d *SidecarDatasource) GetBlock(ctx context.Context, height int64) (*types.Block, error) {
	client, err := d.session()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var raw sidecarBlock
	if err := get(ctx, client, "/blocks/"+strconv.FormatInt(height, 10), &raw); err != nil {
		return nil, errors.Wrapf(err, "can't get block %d", height)
	}

	block, err := raw.decode()
	if err != nil {
		return nil, errors.Wrapf(err, "can't decode block %d", height)
	}
	if block.Height != height {
		return nil, errors.Wrapf(errs.InternalError, "got block %d, expected %d", block.Height, height)
	}
	return block, nil
}

func get(ctx context.Context, client *httpclient.Client, path string, out any) error {
	resp, err := client.Get(ctx, path, httpclient.RequestOptions{})
	if err != nil {
		return errors.WithStack(err)
	}
	if !resp.IsSuccess() {
		return errors.Errorf("unexpected status code %d from %s: %s", resp.StatusCode(), resp.URL, string(resp.Body()))
	}
	if err := resp.UnmarshalBody(out); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

type sidecarHeader struct {
	Number string `json:"number"`
}

type sidecarBlock struct {
	Number     string             `json:"number"`
	Hash       string             `json:"hash"`
	ParentHash string             `json:"parentHash"`
	Extrinsics []sidecarExtrinsic `json:"extrinsics"`
}

type sidecarMethod struct {
	Pallet string `json:"pallet"`
	Method string `json:"method"`
}

type sidecarAccount struct {
	ID string `json:"id"`
}

type sidecarSignature struct {
	Signer sidecarAccount `json:"signer"`
}

type sidecarExtrinsic struct {
	Method    sidecarMethod     `json:"method"`
	Signature *sidecarSignature `json:"signature"`
	Args      json.RawMessage   `json:"args"`
	Hash      string            `json:"hash"`
	Events    []sidecarEvent    `json:"events"`
}

type sidecarEvent struct {
	Method sidecarMethod `json:"method"`
}

type sidecarCall struct {
	Method sidecarMethod   `json:"method"`
	Args   json.RawMessage `json:"args"`
}

// sidecarArgs holds the arguments of every supported call, all optional.
type sidecarArgs struct {
	Calls  []sidecarCall   `json:"calls"`
	Remark *string         `json:"remark"`
	Dest   *sidecarAccount `json:"dest"`
	Value  json.RawMessage `json:"value"`
	Now    json.RawMessage `json:"now"`
}

func (b *sidecarBlock) decode() (*types.Block, error) {
	height, err := strconv.ParseInt(b.Number, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid block number %q", b.Number)
	}

	block := &types.Block{
		Height:     height,
		Hash:       b.Hash,
		ParentHash: b.ParentHash,
		Extrinsics: make([]*types.Extrinsic, 0, len(b.Extrinsics)),
	}
	for i, ex := range b.Extrinsics {
		call, args := decodeCall(ex.Method, ex.Args)
		if call.Is("timestamp", "set") {
			ms, ok := parseInteger(args.Now)
			if !ok || !ms.IsInt64() {
				return nil, errors.Errorf("invalid timestamp in extrinsic %d", i)
			}
			block.Timestamp = time.UnixMilli(ms.Int64()).UTC()
		}

		extrinsic := &types.Extrinsic{
			Index: i,
			Hash:  ex.Hash,
			Call:  call,
			Success: lo.ContainsBy(ex.Events, func(event sidecarEvent) bool {
				return event.Method.Pallet == "system" && event.Method.Method == "ExtrinsicSuccess"
			}),
		}
		if ex.Signature != nil {
			extrinsic.Signer = ex.Signature.Signer.ID
		}
		block.Extrinsics = append(block.Extrinsics, extrinsic)
	}
	return block, nil
}

// decodeCall decodes the supported arguments of a call. Malformed arguments are left empty.
func decodeCall(method sidecarMethod, rawArgs json.RawMessage) (types.Call, sidecarArgs) {
	call := types.Call{
		Pallet: method.Pallet,
		Method: method.Method,
	}

	var args sidecarArgs
	if len(rawArgs) == 0 || json.Unmarshal(rawArgs, &args) != nil {
		return call, sidecarArgs{}
	}

	for _, inner := range args.Calls {
		innerCall, _ := decodeCall(inner.Method, inner.Args)
		call.Calls = append(call.Calls, innerCall)
	}

	if args.Remark != nil && call.Pallet == "system" {
		remark := decodeBytes(*args.Remark)
		call.Remark = &remark
	}

	if call.Pallet == "balances" && args.Dest != nil {
		if value, ok := parseBalance(args.Value); ok {
			call.Transfer = &types.Transfer{
				Dest:  args.Dest.ID,
				Value: value,
			}
		}
	}
	return call, args
}

// decodeBytes decodes a hex encoded byte argument to text. Values that are not
// hex encoded utf-8 are returned as is.
func decodeBytes(s string) string {
	if !strings.HasPrefix(s, "0x") {
		return s
	}
	b, err := hex.DecodeString(s[2:])
	if err != nil || !utf8.Valid(b) {
		return s
	}
	return string(b)
}

// parseBalance parses an amount of the chain Balance type (u128).
func parseBalance(raw json.RawMessage) (decimal.Decimal, bool) {
	n, ok := parseInteger(raw)
	if !ok || n.Sign() < 0 {
		return decimal.Decimal{}, false
	}
	// FromBig consumes its argument
	if _, err := uint128.FromBig(new(big.Int).Set(n)); err != nil {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromBigInt(n, 0), true
}

// parseInteger parses an integer given as a JSON number or string, with optional thousands separators.
func parseInteger(raw json.RawMessage) (*big.Int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, false
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	n, ok := new(big.Int).SetString(s, 10)
	return n, ok
}
