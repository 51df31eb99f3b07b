package dot721

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/modules/dot721/datagateway"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/entity"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/protocol"
	"github.com/gaze-network/dot721-indexer/pkg/logger"
	"github.com/gaze-network/dot721-indexer/pkg/logger/slogx"
)

func (p *Processor) processCreate(ctx context.Context, inscription *Inscription, content *protocol.CreateContent) (outcome, error) {
	collectionID := inscription.ID()

	metadata, err := p.resolveCollectionMetadata(ctx, content.Metadata)
	if err != nil {
		return outcome{}, errors.WithStack(err)
	}
	if metadata == nil {
		return failed(collectionID, nil, entity.FailReasonInvalidMetadata), nil
	}

	collection := entity.Collection{
		CollectionID: collectionID,
		Name:         metadata.Name,
		Description:  metadata.Description,
		Image:        metadata.Image,
		Issuer:       inscription.Sender,
		BaseURI:      content.BaseURI,
		Supply:       content.Supply,
		MintSettings: mintSettingsSnapshot(content.MintSettings),
		CreateTime:   inscription.Timestamp,
		UpdateTime:   inscription.Timestamp,
	}
	return succeeded(collectionID, nil, func(ctx context.Context, qtx datagateway.DOT721DataGatewayWithTx) error {
		return errors.WithStack(qtx.CreateCollection(ctx, collection))
	}), nil
}

func mintSettingsSnapshot(settings *protocol.MintSettings) entity.MintSettings {
	if settings == nil {
		return entity.MintSettings{}
	}
	snapshot := entity.MintSettings{
		Start: settings.Start,
		End:   settings.End,
		Price: settings.Price,
		Limit: settings.Limit,
	}
	if settings.Mode != nil {
		snapshot.Mode = entity.MintMode(*settings.Mode)
	}
	return snapshot
}

// resolveCollectionMetadata returns nil metadata if the document can't be fetched or is invalid.
func (p *Processor) resolveCollectionMetadata(ctx context.Context, uri string) (*protocol.CollectionMetadata, error) {
	start := time.Now()
	metadata, err := p.resolver.ResolveCollection(ctx, uri)
	observeMetadata("collection", start, err)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "metadata resolution canceled")
		}
		logger.InfoContext(ctx, "Invalid collection metadata", slogx.String("uri", uri), slogx.Error(err))
		return nil, nil
	}
	return metadata, nil
}

// resolveTokenMetadata returns nil metadata if the document can't be fetched or is invalid.
func (p *Processor) resolveTokenMetadata(ctx context.Context, uri string) (*protocol.TokenMetadata, error) {
	start := time.Now()
	metadata, err := p.resolver.ResolveToken(ctx, uri)
	observeMetadata("token", start, err)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "metadata resolution canceled")
		}
		logger.InfoContext(ctx, "Invalid token metadata", slogx.String("uri", uri), slogx.Error(err))
		return nil, nil
	}
	return metadata, nil
}

func observeMetadata(kind string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "invalid"
	}
	metricsMetadataLatency.WithLabelValues(kind, result).Observe(time.Since(start).Seconds())
}
