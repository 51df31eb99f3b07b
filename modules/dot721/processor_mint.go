package dot721

import (
	"context"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gaze-network/dot721-indexer/modules/dot721/datagateway"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/entity"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/protocol"
	"github.com/samber/lo"
)

func (p *Processor) processMint(ctx context.Context, inscription *Inscription, content *protocol.MintContent) (outcome, error) {
	collection, err := p.datagateway.GetCollection(ctx, content.ID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return failed(content.ID, nil, entity.FailReasonCollectionNotFound), nil
		}
		return outcome{}, errors.Wrap(err, "failed to get collection")
	}

	reason, err := p.checkMint(ctx, inscription, content, collection)
	if err != nil {
		return outcome{}, errors.WithStack(err)
	}
	if reason != nil {
		return failed(content.ID, nil, *reason), nil
	}

	maxTokenID, err := p.datagateway.GetMaxTokenID(ctx, content.ID)
	if err != nil {
		return outcome{}, errors.Wrap(err, "failed to get max token id")
	}
	tokenID := maxTokenID + 1

	settings := collection.MintSettings
	if supply := lo.FromPtr(collection.Supply); supply > 0 && tokenID >= supply {
		return failed(content.ID, nil, entity.FailReasonMintExceedSupply), nil
	}

	var uri string
	if settings.Mode == entity.MintModeCreator {
		uri = *content.Metadata
	} else {
		baseURI := lo.FromPtr(collection.BaseURI)
		if baseURI == "" {
			return failed(content.ID, nil, entity.FailReasonMissingBaseURI), nil
		}
		uri = baseURI + strconv.FormatInt(tokenID, 10) + ".json"
	}

	metadata, err := p.resolveTokenMetadata(ctx, uri)
	if err != nil {
		return outcome{}, errors.WithStack(err)
	}
	if metadata == nil {
		return failed(content.ID, nil, entity.FailReasonInvalidMetadata), nil
	}

	token := entity.Token{
		CollectionID: content.ID,
		TokenID:      tokenID,
		Name:         metadata.Name,
		Description:  metadata.Description,
		Image:        metadata.Image,
		Attributes: lo.Map(metadata.Attributes, func(attr protocol.Attribute, _ int) entity.Attribute {
			return entity.Attribute{TraitType: attr.TraitType, Value: attr.Value}
		}),
		Owner:      inscription.Sender,
		Status:     entity.TokenStatusNormal,
		CreateTime: inscription.Timestamp,
		UpdateTime: inscription.Timestamp,
	}
	return succeeded(content.ID, &tokenID, func(ctx context.Context, qtx datagateway.DOT721DataGatewayWithTx) error {
		return errors.WithStack(qtx.CreateToken(ctx, token))
	}), nil
}

// checkMint runs the mint window, payment, limit and eligibility guards in order.
// It returns the reason of the first failing guard, or nil if all pass.
func (p *Processor) checkMint(ctx context.Context, inscription *Inscription, content *protocol.MintContent, collection *entity.Collection) (*entity.FailReason, error) {
	settings := collection.MintSettings

	if start := settings.StartBlock(); start > 0 && inscription.BlockNumber < start {
		return lo.ToPtr(entity.FailReasonMintNotStarted), nil
	}
	if end := settings.EndBlock(); end > 0 && inscription.BlockNumber > end {
		return lo.ToPtr(entity.FailReasonMintFinished), nil
	}

	if price := settings.MintPrice(); price.IsPositive() {
		if !inscription.HasPayment() {
			return lo.ToPtr(entity.FailReasonMintNotPaid), nil
		}
		if *inscription.TransferTo != collection.Issuer {
			return lo.ToPtr(entity.FailReasonMintInvalidPayee), nil
		}
		if inscription.Transfer.LessThan(price) {
			return lo.ToPtr(entity.FailReasonMintInsufficientAmount), nil
		}
	}

	if limit := settings.MaxPerSender(); limit > 0 {
		minted, err := p.datagateway.CountSuccessfulMints(ctx, content.ID, inscription.Sender)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count mints")
		}
		if minted >= limit {
			return lo.ToPtr(entity.FailReasonMintExceedLimit), nil
		}
	}

	if settings.Mode == entity.MintModeCreator && content.Metadata == nil {
		return lo.ToPtr(entity.FailReasonMintMissingMetadata), nil
	}

	switch settings.Mode {
	case entity.MintModeWhitelist:
		whitelisted, err := p.datagateway.IsWhitelisted(ctx, content.ID, inscription.Sender)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check whitelist")
		}
		if !whitelisted {
			return lo.ToPtr(entity.FailReasonMintNotEligible), nil
		}
	case entity.MintModeCreator:
		if inscription.Sender != collection.Issuer {
			return lo.ToPtr(entity.FailReasonNotCollectionOwner), nil
		}
	}
	return nil, nil
}
