package datagateway

import (
	"context"
	"time"

	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/entity"
)

type DOT721DataGateway interface {
	DOT721ReaderDataGateway
	DOT721WriterDataGateway

	// BeginDOT721Tx returns a new DOT721DataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginDOT721Tx(ctx context.Context) (DOT721DataGatewayWithTx, error)
}

type DOT721DataGatewayWithTx interface {
	DOT721DataGateway
	Tx
}

type DOT721ReaderDataGateway interface {
	// GetLatestTransactionBlock returns the highest block number in the transaction log.
	// Returns errs.NotFound if the log is empty.
	GetLatestTransactionBlock(ctx context.Context) (int64, error)
	// GetCollection returns errs.NotFound if the collection does not exist.
	GetCollection(ctx context.Context, collectionID string) (*entity.Collection, error)
	// GetToken returns errs.NotFound if the token does not exist.
	GetToken(ctx context.Context, collectionID string, tokenID int64) (*entity.Token, error)
	// GetMaxTokenID returns the highest token id of the collection, or -1 if it has no tokens.
	GetMaxTokenID(ctx context.Context, collectionID string) (int64, error)
	// CountSuccessfulMints returns the number of successful mints of the collection by the sender.
	CountSuccessfulMints(ctx context.Context, collectionID string, sender string) (int64, error)
	IsWhitelisted(ctx context.Context, collectionID string, address string) (bool, error)
	// GetActiveApproval returns the most recent normal approval of the token.
	// Returns errs.NotFound if the token has no active approval.
	GetActiveApproval(ctx context.Context, collectionID string, tokenID int64) (*entity.Approval, error)
	GetStats(ctx context.Context) (*Stats, error)
}

type DOT721WriterDataGateway interface {
	// CreateTransaction inserts an entry of the transaction log.
	// Returns errs.Duplicate if an entry of the same block number and extrinsic index exists.
	CreateTransaction(ctx context.Context, tx entity.Transaction) error
	CreateCollection(ctx context.Context, collection entity.Collection) error
	CreateWhitelistEntries(ctx context.Context, entries []entity.WhitelistEntry) error
	CreateToken(ctx context.Context, token entity.Token) error
	CreateApproval(ctx context.Context, approval entity.Approval) error
	UpdateTokenOwner(ctx context.Context, params UpdateTokenOwnerParams) error
	BurnToken(ctx context.Context, params BurnTokenParams) error
	// RevokeApprovals revokes every normal approval of the token and returns the number of revoked approvals.
	RevokeApprovals(ctx context.Context, params RevokeApprovalsParams) (int64, error)
}

type UpdateTokenOwnerParams struct {
	CollectionID string
	TokenID      int64
	Owner        string
	UpdateTime   time.Time
}

type BurnTokenParams struct {
	CollectionID string
	TokenID      int64
	UpdateTime   time.Time
}

type RevokeApprovalsParams struct {
	CollectionID string
	TokenID      int64
	UpdateTime   time.Time
}

type Stats struct {
	Collections  int64
	Tokens       int64
	Transactions int64
}
