package datasources

import (
	"context"

	"github.com/gaze-network/dot721-indexer/core/types"
)

// Datasource is a session to a chain node that serves finalized blocks.
type Datasource interface {
	Name() string

	// Connect establishes a new session, tearing down the previous one if any.
	Connect(ctx context.Context) error

	// FinalizedHeight returns the height of the latest finalized block.
	FinalizedHeight(ctx context.Context) (int64, error)

	// GetBlock returns the block at the given height with per-extrinsic
	// success flags and the block timestamp.
	GetBlock(ctx context.Context, height int64) (*types.Block, error)

	Close() error
}
