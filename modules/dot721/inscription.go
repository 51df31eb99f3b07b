package dot721

import (
	"context"
	"fmt"
	"time"

	"github.com/gaze-network/dot721-indexer/core/types"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/protocol"
	"github.com/gaze-network/dot721-indexer/pkg/logger"
	"github.com/gaze-network/dot721-indexer/pkg/logger/slogx"
	"github.com/shopspring/decimal"
)

// minTransferDestLength is the shortest destination accepted as a mint payment.
const minTransferDestLength = 40

// Inscription is a validated dot-721 remark found in a finalized block.
type Inscription struct {
	BlockNumber    int64            `json:"blockNumber"`
	ExtrinsicHash  string           `json:"extrinsicHash"`
	ExtrinsicIndex int              `json:"extrinsicIndex"`
	Sender         string           `json:"sender"`
	Transfer       *decimal.Decimal `json:"transfer,omitempty"`
	TransferTo     *string          `json:"transferTo,omitempty"`
	RawContent     string           `json:"rawContent"`
	Content        protocol.Content `json:"content"`
	Timestamp      time.Time        `json:"timestamp"`
}

// ID returns the id derived from the location of the inscription, used as the id of created collections.
func (i *Inscription) ID() string {
	return fmt.Sprintf("%d-%d", i.BlockNumber, i.ExtrinsicIndex)
}

// HasPayment reports whether a transfer is attached to the inscription.
func (i *Inscription) HasPayment() bool {
	return i.Transfer != nil && i.TransferTo != nil
}

// Extract implements indexer.Processor.
func (p *Processor) Extract(ctx context.Context, block *types.Block) ([]*Inscription, error) {
	var inscriptions []*Inscription
	for _, extrinsic := range block.Extrinsics {
		remark, ok := inscriptionRemark(extrinsic)
		if !ok {
			continue
		}

		content, err := p.parser.Parse(remark)
		if err != nil {
			logger.WarnContext(ctx, "Invalid dot-721 remark, skipping",
				slogx.Error(err),
				slogx.Int64("block", block.Height),
				slogx.Int("extrinsic_index", extrinsic.Index),
				slogx.String("extrinsic_hash", extrinsic.Hash),
				slogx.String("remark", remark),
			)
			continue
		}

		inscription := &Inscription{
			BlockNumber:    block.Height,
			ExtrinsicHash:  extrinsic.Hash,
			ExtrinsicIndex: extrinsic.Index,
			Sender:         extrinsic.Signer,
			RawContent:     remark,
			Content:        content,
			Timestamp:      block.Timestamp,
		}
		if transfer := inscriptionTransfer(extrinsic); transfer != nil {
			value, dest := transfer.Value, transfer.Dest
			inscription.Transfer = &value
			inscription.TransferTo = &dest
		}
		inscriptions = append(inscriptions, inscription)
	}
	return inscriptions, nil
}

// inscriptionRemark returns the remark of a signed and successful utility.batchAll
// extrinsic whose first call is system.remarkWithEvent.
func inscriptionRemark(extrinsic *types.Extrinsic) (string, bool) {
	if !extrinsic.IsSigned() || !extrinsic.Success {
		return "", false
	}
	call := extrinsic.Call
	if !call.Is("utility", "batchAll") || len(call.Calls) == 0 {
		return "", false
	}
	first := call.Calls[0]
	if !first.Is("system", "remarkWithEvent") || first.Remark == nil {
		return "", false
	}
	return *first.Remark, true
}

// inscriptionTransfer returns the balances transfer of the second call of the batch, if any.
func inscriptionTransfer(extrinsic *types.Extrinsic) *types.Transfer {
	calls := extrinsic.Call.Calls
	if len(calls) < 2 {
		return nil
	}
	second := calls[1]
	if !second.Is("balances", "transferKeepAlive") &&
		!second.Is("balances", "transferAllowDeath") &&
		!second.Is("balances", "transfer") {
		return nil
	}
	if second.Transfer == nil || len(second.Transfer.Dest) < minTransferDestLength {
		return nil
	}
	return second.Transfer
}
