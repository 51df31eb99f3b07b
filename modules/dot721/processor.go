package dot721

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gaze-network/dot721-indexer/core/indexer"
	"github.com/gaze-network/dot721-indexer/modules/dot721/datagateway"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/metadata"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/protocol"
	"github.com/gaze-network/dot721-indexer/pkg/logger"
	"github.com/gaze-network/dot721-indexer/pkg/logger/slogx"
)

const defaultCommitTimeout = 2 * time.Minute

var _ indexer.Processor[*Inscription] = (*Processor)(nil)

type Processor struct {
	datagateway   datagateway.DOT721DataGateway
	resolver      *metadata.Resolver
	parser        *protocol.Parser
	commitTimeout time.Duration
	cleanupFuncs  []func(context.Context) error
}

func NewProcessor(dg datagateway.DOT721DataGateway,
	resolver *metadata.Resolver,
	parser *protocol.Parser,
	commitTimeout time.Duration,
	cleanupFuncs []func(context.Context) error,
) *Processor {
	if commitTimeout <= 0 {
		commitTimeout = defaultCommitTimeout
	}
	return &Processor{
		datagateway:   dg,
		resolver:      resolver,
		parser:        parser,
		commitTimeout: commitTimeout,
		cleanupFuncs:  cleanupFuncs,
	}
}

// Name implements indexer.Processor.
func (p *Processor) Name() string {
	return "dot721"
}

// CurrentBlock implements indexer.Processor.
func (p *Processor) CurrentBlock(ctx context.Context) (int64, error) {
	height, err := p.datagateway.GetLatestTransactionBlock(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get latest transaction block")
	}
	return height, nil
}

// Process implements indexer.Processor. A failed inscription is logged and skipped,
// the remaining inscriptions of the block are still processed.
func (p *Processor) Process(ctx context.Context, height int64, inscriptions []*Inscription) error {
	for _, inscription := range inscriptions {
		ctx := logger.WithContext(ctx,
			slogx.Int("extrinsic_index", inscription.ExtrinsicIndex),
			slogx.String("op", inscription.Content.Operation().String()),
		)
		if err := p.processInscription(ctx, inscription); err != nil {
			// stopping, the block is processed again on restart
			if ctx.Err() != nil {
				return errors.Wrapf(err, "process stopped at block %d", height)
			}
			metricsInscriptionErrors.WithLabelValues(inscription.Content.Operation().String()).Inc()
			serialized, _ := json.Marshal(inscription)
			logger.ErrorContext(ctx, "Failed to process inscription, skipping",
				slogx.Error(err),
				slogx.String("inscription", string(serialized)),
			)
		}
	}
	return nil
}

func (p *Processor) processInscription(ctx context.Context, inscription *Inscription) error {
	ctx, cancel := context.WithTimeout(ctx, p.commitTimeout)
	defer cancel()

	var (
		result outcome
		err    error
	)
	switch content := inscription.Content.(type) {
	case *protocol.CreateContent:
		result, err = p.processCreate(ctx, inscription, content)
	case *protocol.AddwlContent:
		result, err = p.processAddwl(ctx, inscription, content)
	case *protocol.MintContent:
		result, err = p.processMint(ctx, inscription, content)
	case *protocol.ApproveContent:
		result, err = p.processApprove(ctx, inscription, content)
	case *protocol.SendContent:
		result, err = p.processSend(ctx, inscription, content)
	case *protocol.BurnContent:
		result, err = p.processBurn(ctx, inscription, content)
	default:
		return errors.Wrapf(errs.Unsupported, "unsupported content %T", content)
	}
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(p.commit(ctx, inscription, result))
}

// Shutdown implements indexer.Processor.
func (p *Processor) Shutdown(ctx context.Context) error {
	for _, cleanupFunc := range p.cleanupFuncs {
		err := cleanupFunc(ctx)
		if err != nil {
			return errors.Wrap(err, "cleanup function error")
		}
	}
	return nil
}
