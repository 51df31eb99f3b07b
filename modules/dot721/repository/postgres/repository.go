package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gaze-network/dot721-indexer/internal/postgres"
	"github.com/gaze-network/dot721-indexer/modules/dot721/datagateway"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/entity"
	"github.com/gaze-network/dot721-indexer/modules/dot721/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ datagateway.DOT721DataGateway = (*Repository)(nil)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
	tx      pgx.Tx
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}

// SQLSTATE unique_violation
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func (r *Repository) GetLatestTransactionBlock(ctx context.Context) (int64, error) {
	blockNumber, err := r.queries.GetLatestTransactionBlock(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errors.WithStack(errs.NotFound)
		}
		return 0, errors.Wrap(err, "error during query")
	}
	return blockNumber, nil
}

func (r *Repository) GetCollection(ctx context.Context, collectionID string) (*entity.Collection, error) {
	model, err := r.queries.GetCollection(ctx, collectionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	collection, err := mapCollectionModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse collection model")
	}
	return &collection, nil
}

func (r *Repository) GetToken(ctx context.Context, collectionID string, tokenID int64) (*entity.Token, error) {
	model, err := r.queries.GetToken(ctx, gen.GetTokenParams{
		CollectionID: collectionID,
		TokenID:      tokenID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	token, err := mapTokenModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token model")
	}
	return &token, nil
}

func (r *Repository) GetMaxTokenID(ctx context.Context, collectionID string) (int64, error) {
	maxTokenID, err := r.queries.GetMaxTokenID(ctx, collectionID)
	if err != nil {
		return 0, errors.Wrap(err, "error during query")
	}
	return maxTokenID, nil
}

func (r *Repository) CountSuccessfulMints(ctx context.Context, collectionID string, sender string) (int64, error) {
	count, err := r.queries.CountSuccessfulMints(ctx, gen.CountSuccessfulMintsParams{
		CollectionID: collectionID,
		Sender:       sender,
	})
	if err != nil {
		return 0, errors.Wrap(err, "error during query")
	}
	return count, nil
}

func (r *Repository) IsWhitelisted(ctx context.Context, collectionID string, address string) (bool, error) {
	ok, err := r.queries.IsWhitelisted(ctx, gen.IsWhitelistedParams{
		CollectionID: collectionID,
		Address:      address,
	})
	if err != nil {
		return false, errors.Wrap(err, "error during query")
	}
	return ok, nil
}

func (r *Repository) GetActiveApproval(ctx context.Context, collectionID string, tokenID int64) (*entity.Approval, error) {
	model, err := r.queries.GetActiveApproval(ctx, gen.GetActiveApprovalParams{
		CollectionID: collectionID,
		TokenID:      tokenID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	approval := mapApprovalModelToType(model)
	return &approval, nil
}

func (r *Repository) GetStats(ctx context.Context) (*datagateway.Stats, error) {
	row, err := r.queries.GetStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	stats := mapStatsModelToType(row)
	return &stats, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, tx entity.Transaction) error {
	affected, err := r.queries.CreateTransaction(ctx, mapTransactionTypeToParams(tx))
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Wrapf(errs.Duplicate, "transaction at block %d extrinsic %d", tx.BlockNumber, tx.ExtrinsicIndex)
		}
		return errors.Wrap(err, "error during exec")
	}
	if affected == 0 {
		return errors.Wrapf(errs.Duplicate, "transaction at block %d extrinsic %d", tx.BlockNumber, tx.ExtrinsicIndex)
	}
	return nil
}

func (r *Repository) CreateCollection(ctx context.Context, collection entity.Collection) error {
	if err := r.queries.CreateCollection(ctx, mapCollectionTypeToParams(collection)); err != nil {
		if isUniqueViolation(err) {
			return errors.Wrapf(errs.Duplicate, "collection %s", collection.CollectionID)
		}
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) CreateWhitelistEntries(ctx context.Context, entries []entity.WhitelistEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if _, err := r.queries.CreateWhitelistEntries(ctx, mapWhitelistEntriesTypeToParams(entries)); err != nil {
		return errors.Wrap(err, "error during copy")
	}
	return nil
}

func (r *Repository) CreateToken(ctx context.Context, token entity.Token) error {
	params, err := mapTokenTypeToParams(token)
	if err != nil {
		return errors.Wrap(err, "failed to map token params")
	}
	if err := r.queries.CreateToken(ctx, params); err != nil {
		if isUniqueViolation(err) {
			return errors.Wrapf(errs.Duplicate, "token %s #%d", token.CollectionID, token.TokenID)
		}
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) CreateApproval(ctx context.Context, approval entity.Approval) error {
	err := r.queries.CreateApproval(ctx, gen.CreateApprovalParams{
		CollectionID: approval.CollectionID,
		TokenID:      approval.TokenID,
		Approved:     approval.Approved,
		Status:       string(approval.Status),
		CreateTime:   timestampFromTime(approval.CreateTime),
		UpdateTime:   timestampFromTime(approval.UpdateTime),
	})
	if err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) UpdateTokenOwner(ctx context.Context, params datagateway.UpdateTokenOwnerParams) error {
	affected, err := r.queries.UpdateTokenOwner(ctx, gen.UpdateTokenOwnerParams{
		CollectionID: params.CollectionID,
		TokenID:      params.TokenID,
		Owner:        params.Owner,
		UpdateTime:   timestampFromTime(params.UpdateTime),
	})
	if err != nil {
		return errors.Wrap(err, "error during exec")
	}
	if affected == 0 {
		return errors.Wrapf(errs.NotFound, "token %s #%d is not transferable", params.CollectionID, params.TokenID)
	}
	return nil
}

func (r *Repository) BurnToken(ctx context.Context, params datagateway.BurnTokenParams) error {
	affected, err := r.queries.BurnToken(ctx, gen.BurnTokenParams{
		CollectionID: params.CollectionID,
		TokenID:      params.TokenID,
		UpdateTime:   timestampFromTime(params.UpdateTime),
	})
	if err != nil {
		return errors.Wrap(err, "error during exec")
	}
	if affected == 0 {
		return errors.Wrapf(errs.NotFound, "token %s #%d is not burnable", params.CollectionID, params.TokenID)
	}
	return nil
}

func (r *Repository) RevokeApprovals(ctx context.Context, params datagateway.RevokeApprovalsParams) (int64, error) {
	affected, err := r.queries.RevokeApprovals(ctx, gen.RevokeApprovalsParams{
		CollectionID: params.CollectionID,
		TokenID:      params.TokenID,
		UpdateTime:   timestampFromTime(params.UpdateTime),
	})
	if err != nil {
		return 0, errors.Wrap(err, "error during exec")
	}
	return affected, nil
}
