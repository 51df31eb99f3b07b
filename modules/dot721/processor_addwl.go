package dot721

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gaze-network/dot721-indexer/modules/dot721/datagateway"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/entity"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/protocol"
	"github.com/samber/lo"
)

func (p *Processor) processAddwl(ctx context.Context, inscription *Inscription, content *protocol.AddwlContent) (outcome, error) {
	collection, err := p.datagateway.GetCollection(ctx, content.ID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return failed(content.ID, nil, entity.FailReasonCollectionNotFound), nil
		}
		return outcome{}, errors.Wrap(err, "failed to get collection")
	}
	if collection.Issuer != inscription.Sender {
		return failed(content.ID, nil, entity.FailReasonNotCollectionOwner), nil
	}

	entries := lo.Map(content.Data, func(address string, _ int) entity.WhitelistEntry {
		return entity.WhitelistEntry{
			CollectionID: content.ID,
			Address:      address,
			CreateTime:   inscription.Timestamp,
		}
	})
	return succeeded(content.ID, nil, func(ctx context.Context, qtx datagateway.DOT721DataGatewayWithTx) error {
		return errors.WithStack(qtx.CreateWhitelistEntries(ctx, entries))
	}), nil
}
