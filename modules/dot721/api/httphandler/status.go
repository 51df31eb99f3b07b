package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gofiber/fiber/v2"
)

type statsResponse struct {
	Collections  int64 `json:"collections"`
	Tokens       int64 `json:"tokens"`
	Transactions int64 `json:"transactions"`
}

type statusResponse struct {
	State        string         `json:"state"`
	CurrentBlock int64          `json:"currentBlock"`
	LatestBlock  int64          `json:"latestBlock"`
	IndexedBlock *int64         `json:"indexedBlock"`
	Stats        *statsResponse `json:"stats,omitempty"`
}

func (h *handler) statusHandler(ctx *fiber.Ctx) error {
	status := h.scanner.Status()
	response := statusResponse{
		State:        status.State.String(),
		CurrentBlock: status.CurrentBlock,
		LatestBlock:  status.LatestBlock,
	}

	indexed, err := h.dot721Dg.GetLatestTransactionBlock(ctx.UserContext())
	if err != nil && !errors.Is(err, errs.NotFound) {
		return errors.Wrap(err, "can't get latest indexed block")
	}
	if err == nil {
		response.IndexedBlock = &indexed
	}

	if ctx.QueryBool("stats") {
		stats, err := h.dot721Dg.GetStats(ctx.UserContext())
		if err != nil {
			return errors.Wrap(err, "can't get stats")
		}
		response.Stats = &statsResponse{
			Collections:  stats.Collections,
			Tokens:       stats.Tokens,
			Transactions: stats.Transactions,
		}
	}

	return errors.WithStack(ctx.JSON(response))
}
