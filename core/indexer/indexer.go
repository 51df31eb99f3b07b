package indexer

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gaze-network/dot721-indexer/core/datasources"
	"github.com/gaze-network/dot721-indexer/pkg/logger"
	"github.com/gaze-network/dot721-indexer/pkg/logger/slogx"
	cstream "github.com/planxnx/concurrent-stream"
)

const (
	defaultWaitInterval  = 6 * time.Second
	defaultRetryInterval = 3 * time.Second

	progressInterval = 10 * time.Second
	shutdownTimeout  = 180 * time.Second
)

type Config struct {
	// StartBlock is the first block to scan if the processor has not indexed anything past it.
	StartBlock int64

	// Concurrency is the maximum number of blocks fetched in parallel.
	Concurrency int

	// WaitInterval is the sleep duration when the scanner has caught up with the chain.
	WaitInterval time.Duration

	// RetryInterval is the sleep duration before reconnecting after a failed cycle.
	RetryInterval time.Duration
}

// Indexer scans finalized blocks from the datasource and feeds them to the processor.
type Indexer[T any] struct {
	Processor  Processor[T]
	Datasource datasources.Datasource
	config     Config

	current int64
	state   atomic.Int32
	cursor  atomic.Int64
	head    atomic.Int64

	// progress since the scanner started
	startedAt    time.Time
	startedBlock int64
	reportedAt   time.Time

	running  atomic.Bool
	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

// New create new block scanner
func New[T any](processor Processor[T], datasource datasources.Datasource, config Config) *Indexer[T] {
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	if config.WaitInterval <= 0 {
		config.WaitInterval = defaultWaitInterval
	}
	if config.RetryInterval <= 0 {
		config.RetryInterval = defaultRetryInterval
	}
	i := &Indexer[T]{
		Processor:  processor,
		Datasource: datasource,
		config:     config,

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	i.head.Store(-1)
	i.cursor.Store(config.StartBlock)
	return i
}

// Status returns the current progress of the scanner. It is safe for concurrent use.
func (i *Indexer[T]) Status() Status {
	return Status{
		State:        State(i.state.Load()),
		CurrentBlock: i.cursor.Load(),
		LatestBlock:  i.head.Load(),
	}
}

func (i *Indexer[T]) Shutdown() error {
	return i.ShutdownWithContext(context.Background())
}

func (i *Indexer[T]) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return i.ShutdownWithContext(ctx)
}

func (i *Indexer[T]) ShutdownWithContext(ctx context.Context) (err error) {
	i.quitOnce.Do(func() {
		close(i.quit)
		if !i.running.Load() {
			// Run was never started, release the processor directly.
			err = errors.WithStack(i.Processor.Shutdown(ctx))
			return
		}
		select {
		case <-i.done:
		case <-time.After(shutdownTimeout):
			err = errors.Wrap(errs.Timeout, "indexer shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "indexer shutdown context canceled")
		}
	})
	return
}

func (i *Indexer[T]) Run(ctx context.Context) (err error) {
	i.running.Store(true)
	defer close(i.done)
	defer i.setState(StateStopped)

	ctx = logger.WithContext(ctx,
		slog.String("package", "indexer"),
		slog.String("processor", i.Processor.Name()),
		slog.String("datasource", i.Datasource.Name()),
	)

	// resume from the latest indexed block, its remaining inputs are
	// processed again and the duplicates are skipped by the processor.
	i.current = i.config.StartBlock
	latest, err := i.Processor.CurrentBlock(ctx)
	if err != nil {
		if !errors.Is(err, errs.NotFound) {
			return errors.Wrap(err, "can't init state, failed to get indexer current block")
		}
	} else if latest > i.current {
		i.current = latest
	}
	i.setCursor(i.current)
	i.startedAt, i.reportedAt, i.startedBlock = time.Now(), time.Now(), i.current

	logger.InfoContext(ctx, "Starting block scanner",
		slogx.Int64("start_block", i.current),
		slogx.Int("concurrency", i.config.Concurrency),
	)
	defer func() {
		if err := i.Datasource.Close(); err != nil {
			logger.WarnContext(ctx, "Failed to close datasource", slogx.Error(err))
		}
	}()

	i.setState(StateConnecting)
	for {
		select {
		case <-i.quit:
			logger.InfoContext(ctx, "Got quit signal, stopping indexer")
			if err := i.Processor.Shutdown(ctx); err != nil {
				logger.ErrorContext(ctx, "Failed to shutdown processor", slogx.Error(err))
				return errors.Wrap(err, "processor shutdown failed")
			}
			return nil
		case <-ctx.Done():
			return nil
		default:
		}

		var cycleErr error
		switch State(i.state.Load()) {
		case StateConnecting:
			if cycleErr = i.Datasource.Connect(ctx); cycleErr == nil {
				i.setState(StateScanning)
			}
		case StateWaiting:
			if !i.sleep(ctx, i.config.WaitInterval) {
				continue
			}
			i.setState(StateScanning)
		default:
			cycleErr = i.scan(ctx)
		}

		if cycleErr != nil {
			if ctx.Err() != nil || i.quitting() {
				continue
			}
			i.recover(ctx, cycleErr)
		}
	}
}

// recover tears down the datasource session and schedules a reconnect. The scan resumes from the same cursor.
func (i *Indexer[T]) recover(ctx context.Context, err error) {
	i.setState(StateRecovering)
	metricsErrors.WithLabelValues(i.Processor.Name()).Inc()
	logger.ErrorContext(ctx, "Scan cycle failed, reconnecting",
		slogx.Error(err),
		slogx.Int64("current_block", i.current),
		slogx.Duration("retry_interval", i.config.RetryInterval),
	)
	if err := i.Datasource.Close(); err != nil {
		logger.WarnContext(ctx, "Failed to close datasource", slogx.Error(err))
	}
	if i.sleep(ctx, i.config.RetryInterval) {
		i.setState(StateConnecting)
	}
}

// scan runs a single cycle: fetch the finalized head, then fetch and process the next batch of blocks.
func (i *Indexer[T]) scan(ctx context.Context) error {
	head, err := i.Datasource.FinalizedHeight(ctx)
	if err != nil {
		return errors.Wrap(err, "can't get finalized height")
	}
	i.head.Store(head)
	metricsLatestBlock.WithLabelValues(i.Processor.Name()).Set(float64(head))

	if i.current > head {
		logger.DebugContext(ctx, "Caught up with the chain, waiting for new blocks",
			slogx.Int64("current_block", i.current),
			slogx.Int64("latest_block", head),
		)
		i.setState(StateWaiting)
		return nil
	}

	startAt := time.Now()
	size := min(head-i.current+1, int64(i.config.Concurrency))
	blocks, err := i.fetch(ctx, i.current, i.current+size-1)
	if err != nil {
		return errors.WithStack(err)
	}

	for _, block := range blocks {
		if len(block.inputs) > 0 {
			ctx := logger.WithContext(ctx,
				slogx.Int64("block", block.height),
				slog.Int("total_inputs", len(block.inputs)),
			)
			logger.DebugContext(ctx, "Processing inputs")
			if err := i.Processor.Process(ctx, block.height, block.inputs); err != nil {
				return errors.Wrapf(err, "failed to process block %d", block.height)
			}
		}
		i.current = block.height + 1
		i.setCursor(i.current)
	}

	metricsBlocksProcessed.WithLabelValues(i.Processor.Name()).Add(float64(len(blocks)))
	metricsBatchLatency.WithLabelValues(i.Processor.Name()).Observe(time.Since(startAt).Seconds())
	i.reportProgress(ctx, head)
	return nil
}

type fetchResult[T any] struct {
	height int64
	inputs []T
	err    error
}

// fetch fetches and extracts the blocks in [from, to] in parallel. The results are sorted by height.
func (i *Indexer[T]) fetch(ctx context.Context, from, to int64) ([]fetchResult[T], error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make(chan fetchResult[T])
	stream := cstream.NewStream(ctx, i.config.Concurrency, out)

	// Wait for stream to finish and close out channel
	go func() {
		defer close(out)
		_ = stream.Wait()
	}()

	go func() {
		defer stream.Close()
		for height := from; height <= to; height++ {
			height := height
			stream.Go(func() fetchResult[T] {
				return i.fetchBlock(ctx, height)
			})
		}
	}()

	results := make([]fetchResult[T], 0, to-from+1)
	var firstErr error
	for result := range out {
		if result.err != nil {
			if firstErr == nil {
				firstErr = result.err
				cancel()
			}
			continue
		}
		results = append(results, result)
	}
	if firstErr != nil {
		return nil, errors.WithStack(firstErr)
	}

	slices.SortFunc(results, func(a, b fetchResult[T]) int {
		return int(a.height - b.height)
	})
	if len(results) != int(to-from+1) {
		return nil, errors.Wrapf(errs.InternalError, "fetched %d blocks, expected %d", len(results), to-from+1)
	}
	return results, nil
}

func (i *Indexer[T]) fetchBlock(ctx context.Context, height int64) fetchResult[T] {
	block, err := i.Datasource.GetBlock(ctx, height)
	if err != nil {
		return fetchResult[T]{height: height, err: errors.Wrapf(err, "can't get block %d", height)}
	}
	if len(block.Extrinsics) == 0 {
		return fetchResult[T]{height: height}
	}
	inputs, err := i.Processor.Extract(ctx, block)
	if err != nil {
		return fetchResult[T]{height: height, err: errors.Wrapf(err, "can't extract block %d", height)}
	}
	return fetchResult[T]{height: height, inputs: inputs}
}

func (i *Indexer[T]) reportProgress(ctx context.Context, head int64) {
	now := time.Now()
	elapsed := now.Sub(i.startedAt).Seconds()
	scanned := i.current - i.startedBlock
	if elapsed <= 0 || scanned <= 0 {
		return
	}

	rate := float64(scanned) / elapsed
	remaining := max(head-i.current+1, 0)
	progress := 1.0
	if total := head - i.startedBlock + 1; total > 0 {
		progress = min(float64(scanned)/float64(total), 1)
	}
	eta := time.Duration(float64(remaining) / rate * float64(time.Second))

	name := i.Processor.Name()
	metricsBlocksPerSecond.WithLabelValues(name).Set(rate)
	metricsProgress.WithLabelValues(name).Set(progress)
	metricsETA.WithLabelValues(name).Set(eta.Seconds())

	if now.Sub(i.reportedAt) < progressInterval && remaining > 0 {
		return
	}
	i.reportedAt = now
	logger.InfoContext(ctx, "Scan progress",
		slogx.String("event", "scan_progress"),
		slogx.Int64("current_block", i.current),
		slogx.Int64("latest_block", head),
		slogx.Float64("blocks_per_second", rate),
		slogx.Float64("percent", progress*100),
		slogx.Duration("eta", eta),
	)
}

func (i *Indexer[T]) setState(state State) {
	i.state.Store(int32(state))
	metricsState.WithLabelValues(i.Processor.Name()).Set(float64(state))
}

func (i *Indexer[T]) setCursor(height int64) {
	i.cursor.Store(height)
	metricsCurrentBlock.WithLabelValues(i.Processor.Name()).Set(float64(height))
}

func (i *Indexer[T]) quitting() bool {
	select {
	case <-i.quit:
		return true
	default:
		return false
	}
}

// sleep waits for the given duration. It returns false if the indexer is stopping.
func (i *Indexer[T]) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-i.quit:
		return false
	case <-ctx.Done():
		return false
	}
}
