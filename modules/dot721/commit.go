package dot721

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gaze-network/dot721-indexer/modules/dot721/datagateway"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/entity"
	"github.com/gaze-network/dot721-indexer/pkg/logger"
	"github.com/gaze-network/dot721-indexer/pkg/logger/slogx"
	"github.com/samber/lo"
)

// outcome is the result of an operation: the subject of its log entry and either
// a fail reason or the mutation to apply.
type outcome struct {
	collectionID string
	tokenID      *int64
	failReason   *entity.FailReason
	apply        func(ctx context.Context, qtx datagateway.DOT721DataGatewayWithTx) error
}

func failed(collectionID string, tokenID *int64, reason entity.FailReason) outcome {
	return outcome{
		collectionID: collectionID,
		tokenID:      tokenID,
		failReason:   &reason,
	}
}

func succeeded(collectionID string, tokenID *int64, apply func(ctx context.Context, qtx datagateway.DOT721DataGatewayWithTx) error) outcome {
	return outcome{
		collectionID: collectionID,
		tokenID:      tokenID,
		apply:        apply,
	}
}

func (o outcome) status() entity.TransactionStatus {
	if o.failReason != nil {
		return entity.TransactionStatusFail
	}
	return entity.TransactionStatusSuccess
}

// commit writes the log entry of the inscription and, if the operation succeeded, its mutation
// in a single transaction. An inscription that is already logged is skipped.
func (p *Processor) commit(ctx context.Context, inscription *Inscription, result outcome) error {
	qtx, err := p.datagateway.BeginDOT721Tx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := qtx.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to rollback transaction", slogx.Error(err))
		}
	}()

	op := inscription.Content.Operation().String()
	err = qtx.CreateTransaction(ctx, entity.Transaction{
		Op:             op,
		Content:        inscription.RawContent,
		CollectionID:   result.collectionID,
		TokenID:        result.tokenID,
		BlockNumber:    inscription.BlockNumber,
		ExtrinsicHash:  inscription.ExtrinsicHash,
		ExtrinsicIndex: int32(inscription.ExtrinsicIndex),
		Sender:         inscription.Sender,
		Status:         result.status(),
		FailReason:     result.failReason,
		CreateTime:     inscription.Timestamp,
	})
	if err != nil {
		if errors.Is(err, errs.Duplicate) {
			logger.DebugContext(ctx, "Inscription is already indexed, skipping")
			return nil
		}
		return errors.Wrap(err, "failed to create transaction")
	}

	if result.failReason == nil && result.apply != nil {
		if err := result.apply(ctx, qtx); err != nil {
			return errors.Wrapf(err, "failed to apply %s", op)
		}
	}

	if err := qtx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	metricsInscriptions.WithLabelValues(op, string(result.status()), string(lo.FromPtr(result.failReason))).Inc()
	if result.failReason != nil {
		logger.InfoContext(ctx, "Indexed failed inscription",
			slogx.String("collection_id", result.collectionID),
			slogx.String("fail_reason", string(*result.failReason)),
		)
	} else {
		logger.DebugContext(ctx, "Indexed inscription", slogx.String("collection_id", result.collectionID))
	}
	return nil
}
