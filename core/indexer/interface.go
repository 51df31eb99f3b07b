package indexer

import (
	"context"

	"github.com/gaze-network/dot721-indexer/core/types"
)

// Processor turns fetched blocks into protocol inputs and indexes them.
type Processor[T any] interface {
	Name() string

	// CurrentBlock returns the height of the latest indexed block.
	// It returns errs.NotFound if nothing has been indexed yet.
	CurrentBlock(ctx context.Context) (int64, error)

	// Extract extracts the inputs of a block. It is called concurrently
	// for the blocks of a batch and must not depend on indexed state.
	Extract(ctx context.Context, block *types.Block) ([]T, error)

	// Process indexes the inputs of a single block. Blocks are processed
	// sequentially in ascending height order.
	Process(ctx context.Context, height int64, inputs []T) error

	Shutdown(ctx context.Context) error
}

// IndexerWorker is a long running indexer started by the run command.
type IndexerWorker interface {
	Run(ctx context.Context) error
	ShutdownWithContext(ctx context.Context) error
}

var _ IndexerWorker = (*Indexer[any])(nil)
