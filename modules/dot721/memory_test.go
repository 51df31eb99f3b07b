package dot721

import (
	"context"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gaze-network/dot721-indexer/modules/dot721/datagateway"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/entity"
	"github.com/samber/lo"
)

type tokenKey struct {
	collectionID string
	tokenID      int64
}

type memoryState struct {
	transactions []entity.Transaction
	collections  map[string]entity.Collection
	tokens       map[tokenKey]entity.Token
	whitelists   []entity.WhitelistEntry
	approvals    []entity.Approval
}

func (s *memoryState) clone() *memoryState {
	return &memoryState{
		transactions: slices.Clone(s.transactions),
		collections:  lo.Assign(s.collections),
		tokens:       lo.Assign(s.tokens),
		whitelists:   slices.Clone(s.whitelists),
		approvals:    slices.Clone(s.approvals),
	}
}

// memoryStore is an in-memory DOT721DataGateway. Writes of a transaction are
// visible to the store only after Commit.
type memoryStore struct {
	mu    sync.Mutex
	state *memoryState
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		state: &memoryState{
			collections: map[string]entity.Collection{},
			tokens:      map[tokenKey]entity.Token{},
		},
	}
}

func (m *memoryStore) gateway() *memoryGateway {
	return &memoryGateway{store: m}
}

func (m *memoryStore) snapshot() *memoryState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

var _ datagateway.DOT721DataGatewayWithTx = (*memoryGateway)(nil)

type memoryGateway struct {
	store *memoryStore

	// tx is the pending state of a transaction, nil outside of a transaction.
	tx   *memoryState
	done bool
}

func (g *memoryGateway) current() *memoryState {
	if g.tx != nil {
		return g.tx
	}
	return g.store.state
}

func (g *memoryGateway) BeginDOT721Tx(ctx context.Context) (datagateway.DOT721DataGatewayWithTx, error) {
	if g.tx != nil {
		return nil, errors.New("transaction already exists")
	}
	g.store.mu.Lock()
	defer g.store.mu.Unlock()
	return &memoryGateway{store: g.store, tx: g.store.state.clone()}, nil
}

func (g *memoryGateway) Commit(ctx context.Context) error {
	if g.tx == nil || g.done {
		return nil
	}
	g.store.mu.Lock()
	defer g.store.mu.Unlock()
	g.store.state = g.tx
	g.done = true
	return nil
}

func (g *memoryGateway) Rollback(ctx context.Context) error {
	g.done = true
	return nil
}

func (g *memoryGateway) GetLatestTransactionBlock(ctx context.Context) (int64, error) {
	txs := g.current().transactions
	if len(txs) == 0 {
		return 0, errors.WithStack(errs.NotFound)
	}
	return lo.MaxBy(txs, func(a, b entity.Transaction) bool { return a.BlockNumber > b.BlockNumber }).BlockNumber, nil
}

func (g *memoryGateway) GetCollection(ctx context.Context, collectionID string) (*entity.Collection, error) {
	collection, ok := g.current().collections[collectionID]
	if !ok {
		return nil, errors.WithStack(errs.NotFound)
	}
	return &collection, nil
}

func (g *memoryGateway) GetToken(ctx context.Context, collectionID string, tokenID int64) (*entity.Token, error) {
	token, ok := g.current().tokens[tokenKey{collectionID, tokenID}]
	if !ok {
		return nil, errors.WithStack(errs.NotFound)
	}
	return &token, nil
}

func (g *memoryGateway) GetMaxTokenID(ctx context.Context, collectionID string) (int64, error) {
	maxID := int64(-1)
	for key := range g.current().tokens {
		if key.collectionID == collectionID && key.tokenID > maxID {
			maxID = key.tokenID
		}
	}
	return maxID, nil
}

func (g *memoryGateway) CountSuccessfulMints(ctx context.Context, collectionID string, sender string) (int64, error) {
	return int64(lo.CountBy(g.current().transactions, func(tx entity.Transaction) bool {
		return tx.Op == "mint" && tx.Status == entity.TransactionStatusSuccess &&
			tx.CollectionID == collectionID && tx.Sender == sender
	})), nil
}

func (g *memoryGateway) IsWhitelisted(ctx context.Context, collectionID string, address string) (bool, error) {
	return lo.ContainsBy(g.current().whitelists, func(entry entity.WhitelistEntry) bool {
		return entry.CollectionID == collectionID && entry.Address == address
	}), nil
}

func (g *memoryGateway) GetActiveApproval(ctx context.Context, collectionID string, tokenID int64) (*entity.Approval, error) {
	approvals := g.current().approvals
	for i := len(approvals) - 1; i >= 0; i-- {
		approval := approvals[i]
		if approval.CollectionID == collectionID && approval.TokenID == tokenID && approval.Status == entity.ApprovalStatusNormal {
			return &approval, nil
		}
	}
	return nil, errors.WithStack(errs.NotFound)
}

func (g *memoryGateway) GetStats(ctx context.Context) (*datagateway.Stats, error) {
	state := g.current()
	return &datagateway.Stats{
		Collections:  int64(len(state.collections)),
		Tokens:       int64(len(state.tokens)),
		Transactions: int64(len(state.transactions)),
	}, nil
}

func (g *memoryGateway) CreateTransaction(ctx context.Context, tx entity.Transaction) error {
	state := g.current()
	if lo.ContainsBy(state.transactions, func(existing entity.Transaction) bool {
		return existing.BlockNumber == tx.BlockNumber && existing.ExtrinsicIndex == tx.ExtrinsicIndex
	}) {
		return errors.WithStack(errs.Duplicate)
	}
	state.transactions = append(state.transactions, tx)
	return nil
}

func (g *memoryGateway) CreateCollection(ctx context.Context, collection entity.Collection) error {
	state := g.current()
	if _, ok := state.collections[collection.CollectionID]; ok {
		return errors.WithStack(errs.Duplicate)
	}
	state.collections[collection.CollectionID] = collection
	return nil
}

func (g *memoryGateway) CreateWhitelistEntries(ctx context.Context, entries []entity.WhitelistEntry) error {
	state := g.current()
	state.whitelists = append(state.whitelists, entries...)
	return nil
}

func (g *memoryGateway) CreateToken(ctx context.Context, token entity.Token) error {
	state := g.current()
	key := tokenKey{token.CollectionID, token.TokenID}
	if _, ok := state.tokens[key]; ok {
		return errors.WithStack(errs.Duplicate)
	}
	state.tokens[key] = token
	return nil
}

func (g *memoryGateway) CreateApproval(ctx context.Context, approval entity.Approval) error {
	state := g.current()
	approval.ID = int64(len(state.approvals) + 1)
	state.approvals = append(state.approvals, approval)
	return nil
}

func (g *memoryGateway) UpdateTokenOwner(ctx context.Context, params datagateway.UpdateTokenOwnerParams) error {
	state := g.current()
	key := tokenKey{params.CollectionID, params.TokenID}
	token, ok := state.tokens[key]
	if !ok {
		return errors.WithStack(errs.NotFound)
	}
	token.Owner = params.Owner
	token.UpdateTime = params.UpdateTime
	state.tokens[key] = token
	return nil
}

func (g *memoryGateway) BurnToken(ctx context.Context, params datagateway.BurnTokenParams) error {
	state := g.current()
	key := tokenKey{params.CollectionID, params.TokenID}
	token, ok := state.tokens[key]
	if !ok {
		return errors.WithStack(errs.NotFound)
	}
	token.Status = entity.TokenStatusBurned
	token.UpdateTime = params.UpdateTime
	state.tokens[key] = token
	return nil
}

func (g *memoryGateway) RevokeApprovals(ctx context.Context, params datagateway.RevokeApprovalsParams) (int64, error) {
	state := g.current()
	var revoked int64
	for i, approval := range state.approvals {
		if approval.CollectionID == params.CollectionID && approval.TokenID == params.TokenID && approval.Status == entity.ApprovalStatusNormal {
			state.approvals[i].Status = entity.ApprovalStatusRevoked
			state.approvals[i].UpdateTime = params.UpdateTime
			revoked++
		}
	}
	return revoked, nil
}
