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

// findLiveToken returns the token, or the fail reason if it does not exist or is burned.
func (p *Processor) findLiveToken(ctx context.Context, collectionID string, tokenID int64) (*entity.Token, *entity.FailReason, error) {
	token, err := p.datagateway.GetToken(ctx, collectionID, tokenID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, lo.ToPtr(entity.FailReasonTokenNotFound), nil
		}
		return nil, nil, errors.Wrap(err, "failed to get token")
	}
	if token.IsBurned() {
		return nil, lo.ToPtr(entity.FailReasonTokenBurned), nil
	}
	return token, nil, nil
}

func (p *Processor) processApprove(ctx context.Context, inscription *Inscription, content *protocol.ApproveContent) (outcome, error) {
	tokenID := content.TokenID
	token, reason, err := p.findLiveToken(ctx, content.ID, tokenID)
	if err != nil {
		return outcome{}, errors.WithStack(err)
	}
	if reason != nil {
		return failed(content.ID, &tokenID, *reason), nil
	}
	if token.Owner != inscription.Sender {
		return failed(content.ID, &tokenID, entity.FailReasonNotTokenOwner), nil
	}

	approval := entity.Approval{
		CollectionID: content.ID,
		TokenID:      tokenID,
		Approved:     content.Approved,
		Status:       entity.ApprovalStatusNormal,
		CreateTime:   inscription.Timestamp,
		UpdateTime:   inscription.Timestamp,
	}
	return succeeded(content.ID, &tokenID, func(ctx context.Context, qtx datagateway.DOT721DataGatewayWithTx) error {
		return errors.WithStack(qtx.CreateApproval(ctx, approval))
	}), nil
}

func (p *Processor) processSend(ctx context.Context, inscription *Inscription, content *protocol.SendContent) (outcome, error) {
	tokenID := content.TokenID
	token, reason, err := p.findLiveToken(ctx, content.ID, tokenID)
	if err != nil {
		return outcome{}, errors.WithStack(err)
	}
	if reason != nil {
		return failed(content.ID, &tokenID, *reason), nil
	}

	authorized, err := p.canSend(ctx, token, inscription.Sender)
	if err != nil {
		return outcome{}, errors.WithStack(err)
	}
	if !authorized {
		return failed(content.ID, &tokenID, entity.FailReasonNotTokenOwner), nil
	}

	return succeeded(content.ID, &tokenID, func(ctx context.Context, qtx datagateway.DOT721DataGatewayWithTx) error {
		err := qtx.UpdateTokenOwner(ctx, datagateway.UpdateTokenOwnerParams{
			CollectionID: content.ID,
			TokenID:      tokenID,
			Owner:        content.Recipient,
			UpdateTime:   inscription.Timestamp,
		})
		if err != nil {
			return errors.Wrap(err, "failed to update token owner")
		}
		if _, err := qtx.RevokeApprovals(ctx, datagateway.RevokeApprovalsParams{
			CollectionID: content.ID,
			TokenID:      tokenID,
			UpdateTime:   inscription.Timestamp,
		}); err != nil {
			return errors.Wrap(err, "failed to revoke approvals")
		}
		return nil
	}), nil
}

// canSend reports whether the sender is the owner of the token or the approved address of its active approval.
func (p *Processor) canSend(ctx context.Context, token *entity.Token, sender string) (bool, error) {
	if token.Owner == sender {
		return true, nil
	}
	approval, err := p.datagateway.GetActiveApproval(ctx, token.CollectionID, token.TokenID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to get active approval")
	}
	return approval.Approved == sender, nil
}

func (p *Processor) processBurn(ctx context.Context, inscription *Inscription, content *protocol.BurnContent) (outcome, error) {
	tokenID := content.TokenID
	token, reason, err := p.findLiveToken(ctx, content.ID, tokenID)
	if err != nil {
		return outcome{}, errors.WithStack(err)
	}
	if reason != nil {
		return failed(content.ID, &tokenID, *reason), nil
	}
	if token.Owner != inscription.Sender {
		return failed(content.ID, &tokenID, entity.FailReasonNotTokenOwner), nil
	}

	return succeeded(content.ID, &tokenID, func(ctx context.Context, qtx datagateway.DOT721DataGatewayWithTx) error {
		return errors.WithStack(qtx.BurnToken(ctx, datagateway.BurnTokenParams{
			CollectionID: content.ID,
			TokenID:      tokenID,
			UpdateTime:   inscription.Timestamp,
		}))
	}), nil
}
