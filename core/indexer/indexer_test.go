package indexer

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gaze-network/dot721-indexer/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeDatasource struct {
	mu        sync.Mutex
	head      int64
	failures  map[int64]int
	connected bool
	connects  int
	requested []int64
}

func (d *fakeDatasource) Name() string { return "fake" }

func (d *fakeDatasource) Connect(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.connects++
	d.connected = true
	return nil
}

func (d *fakeDatasource) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.connected = false
	return nil
}

func (d *fakeDatasource) FinalizedHeight(ctx context.Context) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.connected {
		return 0, errors.WithStack(errs.Closed)
	}
	return d.head, nil
}

func (d *fakeDatasource) GetBlock(ctx context.Context, height int64) (*types.Block, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.requested = append(d.requested, height)
	if !d.connected {
		return nil, errors.WithStack(errs.Closed)
	}
	if d.failures[height] > 0 {
		d.failures[height]--
		d.connected = false
		return nil, errors.New("connection reset")
	}
	block := &types.Block{Height: height}
	// even blocks carry one extrinsic
	if height%2 == 0 {
		block.Extrinsics = []*types.Extrinsic{{Index: 1, Hash: fmt.Sprintf("0x%x", height)}}
	}
	return block, nil
}

func (d *fakeDatasource) Connects() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.connects
}

func (d *fakeDatasource) Requested() []int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]int64(nil), d.requested...)
}

type fakeProcessor struct {
	mu        sync.Mutex
	latest    int64
	processed []int64
	shutdown  bool
}

func (p *fakeProcessor) Name() string { return "fake" }

func (p *fakeProcessor) CurrentBlock(ctx context.Context) (int64, error) {
	if p.latest < 0 {
		return 0, errors.WithStack(errs.NotFound)
	}
	return p.latest, nil
}

func (p *fakeProcessor) Extract(ctx context.Context, block *types.Block) ([]string, error) {
	inputs := make([]string, 0, len(block.Extrinsics))
	for _, ex := range block.Extrinsics {
		inputs = append(inputs, ex.Hash)
	}
	return inputs, nil
}

func (p *fakeProcessor) Process(ctx context.Context, height int64, inputs []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed = append(p.processed, height)
	return nil
}

func (p *fakeProcessor) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shutdown = true
	return nil
}

func (p *fakeProcessor) Processed() []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int64(nil), p.processed...)
}

func evenHeights(from, to int64) []int64 {
	var heights []int64
	for h := from; h <= to; h++ {
		if h%2 == 0 {
			heights = append(heights, h)
		}
	}
	return heights
}

func runIndexer(t *testing.T, processor *fakeProcessor, datasource *fakeDatasource, config Config, untilCursor int64) {
	t.Helper()
	config.WaitInterval = 5 * time.Millisecond
	config.RetryInterval = 5 * time.Millisecond
	indexer := New[string](processor, datasource, config)

	errCh := make(chan error, 1)
	go func() {
		errCh <- indexer.Run(context.Background())
	}()

	require.Eventually(t, func() bool {
		status := indexer.Status()
		return status.CurrentBlock == untilCursor && status.LatestBlock == datasource.head
	}, 5*time.Second, 5*time.Millisecond)

	require.NoError(t, indexer.ShutdownWithTimeout(5*time.Second))
	require.NoError(t, <-errCh)
	assert.Equal(t, StateStopped, indexer.Status().State)
	assert.True(t, processor.shutdown)
}

func TestScanProcessesBlocksInOrder(t *testing.T) {
	for _, concurrency := range []int{1, 3, 8} {
		t.Run(fmt.Sprintf("concurrency_%d", concurrency), func(t *testing.T) {
			processor := &fakeProcessor{latest: -1}
			datasource := &fakeDatasource{head: 20}
			runIndexer(t, processor, datasource, Config{StartBlock: 1, Concurrency: concurrency}, 21)

			assert.Equal(t, evenHeights(1, 20), processor.Processed())
			for _, height := range datasource.Requested() {
				assert.LessOrEqual(t, height, int64(20), "must not fetch past the finalized head")
			}
		})
	}
}

func TestScanResumesFromLatestIndexedBlock(t *testing.T) {
	testcases := []struct {
		name       string
		startBlock int64
		latest     int64
		expected   []int64
	}{
		{"no_indexed_block", 10, -1, evenHeights(10, 20)},
		{"indexed_after_start", 10, 16, evenHeights(16, 20)},
		{"indexed_before_start", 10, 4, evenHeights(10, 20)},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			processor := &fakeProcessor{latest: tc.latest}
			datasource := &fakeDatasource{head: 20}
			runIndexer(t, processor, datasource, Config{StartBlock: tc.startBlock, Concurrency: 4}, 21)

			assert.Equal(t, tc.expected, processor.Processed())
		})
	}
}

func TestScanReconnectsAfterFailure(t *testing.T) {
	processor := &fakeProcessor{latest: -1}
	datasource := &fakeDatasource{
		head:     12,
		failures: map[int64]int{6: 1, 9: 2},
	}
	runIndexer(t, processor, datasource, Config{StartBlock: 0, Concurrency: 1}, 13)

	assert.Equal(t, evenHeights(0, 12), processor.Processed(), "each block is processed once")
	assert.Equal(t, 4, datasource.Connects())
}

func TestShutdownWhileWaiting(t *testing.T) {
	processor := &fakeProcessor{latest: -1}
	datasource := &fakeDatasource{head: 3}
	runIndexer(t, processor, datasource, Config{StartBlock: 100, Concurrency: 2}, 100)

	assert.Empty(t, processor.Processed())
	assert.Empty(t, datasource.Requested())
}

func TestShutdownWithoutRun(t *testing.T) {
	processor := &fakeProcessor{latest: -1}
	indexer := New[string](processor, &fakeDatasource{head: 3}, Config{})

	require.NoError(t, indexer.ShutdownWithTimeout(time.Second))
	assert.True(t, processor.shutdown)
	require.NoError(t, indexer.Shutdown(), "shutdown is idempotent")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "connecting", StateConnecting.String())
	assert.Equal(t, "scanning", StateScanning.String())
	assert.Equal(t, "waiting", StateWaiting.String())
	assert.Equal(t, "recovering", StateRecovering.String())
	assert.Equal(t, "stopped", StateStopped.String())
	assert.Equal(t, "unknown", State(42).String())
}
