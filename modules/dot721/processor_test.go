package dot721

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/entity"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/metadata"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/protocol"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice   = "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"
	bob     = "14E5nqKAp3oAJcmzgZhUD2RcptBeUBScxKHgJKU4HPNcKVf3"
	charlie = "14Gjs1TD93gnwEBfDMHoCgsuf1s2TVKUP6Z1qKmAZnZ8cW5q"
	dave    = "126TwBzBM4jUEK2gTphmW4oLoBWWnYvPp8hygmduTr4uds57"

	testGateway       = "https://ipfs.test/ipfs/"
	collectionURI     = "https://meta.test/collection.json"
	invalidURI        = "https://meta.test/invalid.json"
	tokenBaseURI      = "ipfs://tokens/"
	creatorTokenURI   = "ipfs://creator/special.json"
	unreachableURI    = "https://meta.test/missing.json"
	testGenesisOffset = 1_700_000_000
)

// fakeFetcher serves the collection document, token documents under the base uri
// and a creator token document. Other urls fail.
type fakeFetcher struct {
	requests []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	f.requests = append(f.requests, url)
	switch {
	case url == collectionURI:
		return []byte(`{"name":"Polka Punks","description":"punks on polkadot","image":"ipfs://images/logo.png"}`), nil
	case url == invalidURI:
		return []byte(`{"description":"no name"}`), nil
	case url == testGateway+"creator/special.json":
		return []byte(`{"name":"Special","image":"https://img.test/special.png"}`), nil
	case strings.HasPrefix(url, testGateway+"tokens/"):
		id := strings.TrimSuffix(strings.TrimPrefix(url, testGateway+"tokens/"), ".json")
		return []byte(fmt.Sprintf(`{"name":"Punk #%s","image":"ipfs://images/%s.png","attributes":[{"trait_type":"eyes","value":"blue"}]}`, id, id)), nil
	}
	return nil, errors.Errorf("unexpected status code 404 from %s", url)
}

func newTestProcessor(t *testing.T) (*Processor, *memoryStore) {
	t.Helper()
	store := newMemoryStore()
	resolver := metadata.NewResolver(&fakeFetcher{}, testGateway, 0)
	return NewProcessor(store.gateway(), resolver, protocol.NewParser(0), time.Minute, nil), store
}

func blockTime(height int64) time.Time {
	return time.Unix(testGenesisOffset+height*6, 0).UTC()
}

func inscribe(height int64, index int, sender string, content protocol.Content) *Inscription {
	raw, _ := json.Marshal(content)
	return &Inscription{
		BlockNumber:    height,
		ExtrinsicHash:  fmt.Sprintf("0x%064x", height*1000+int64(index)),
		ExtrinsicIndex: index,
		Sender:         sender,
		RawContent:     string(raw),
		Content:        content,
		Timestamp:      blockTime(height),
	}
}

func withPayment(inscription *Inscription, amount int64, to string) *Inscription {
	value := decimal.NewFromInt(amount)
	inscription.Transfer = &value
	inscription.TransferTo = &to
	return inscription
}

// process processes the inscriptions grouped by block in ascending order.
func process(t *testing.T, p *Processor, inscriptions ...*Inscription) {
	t.Helper()
	byBlock := lo.GroupBy(inscriptions, func(i *Inscription) int64 { return i.BlockNumber })
	heights := lo.Uniq(lo.Map(inscriptions, func(i *Inscription, _ int) int64 { return i.BlockNumber }))
	for _, height := range heights {
		require.NoError(t, p.Process(context.Background(), height, byBlock[height]))
	}
}

func lastTransaction(t *testing.T, store *memoryStore) entity.Transaction {
	t.Helper()
	txs := store.snapshot().transactions
	require.NotEmpty(t, txs)
	return txs[len(txs)-1]
}

func assertResult(t *testing.T, store *memoryStore, reason *entity.FailReason) {
	t.Helper()
	tx := lastTransaction(t, store)
	if reason == nil {
		assert.Equal(t, entity.TransactionStatusSuccess, tx.Status, "fail reason: %v", lo.FromPtr(tx.FailReason))
		assert.Nil(t, tx.FailReason)
		return
	}
	assert.Equal(t, entity.TransactionStatusFail, tx.Status)
	assert.Equal(t, reason, tx.FailReason)
}

func fail(reason entity.FailReason) *entity.FailReason {
	return &reason
}

func createPublic(height int64, sender string, settings *protocol.MintSettings) *Inscription {
	return inscribe(height, 1, sender, &protocol.CreateContent{
		Metadata:     collectionURI,
		BaseURI:      lo.ToPtr(tokenBaseURI),
		MintSettings: settings,
	})
}

func mint(height int64, index int, sender string, collectionID string) *Inscription {
	return inscribe(height, index, sender, &protocol.MintContent{ID: collectionID})
}

func TestCreate(t *testing.T) {
	p, store := newTestProcessor(t)

	process(t, p, inscribe(10, 2, alice, &protocol.CreateContent{
		Metadata: collectionURI,
		Issuer:   lo.ToPtr(bob),
		BaseURI:  lo.ToPtr(tokenBaseURI),
		Supply:   lo.ToPtr(int64(100)),
		MintSettings: &protocol.MintSettings{
			Mode:  lo.ToPtr(protocol.MintModeWhitelist),
			Start: lo.ToPtr(int64(20)),
			Price: lo.ToPtr(decimal.RequireFromString("10000000000")),
		},
	}))

	assertResult(t, store, nil)
	tx := lastTransaction(t, store)
	assert.Equal(t, "create", tx.Op)
	assert.Equal(t, "10-2", tx.CollectionID)
	assert.Nil(t, tx.TokenID)
	assert.Equal(t, blockTime(10), tx.CreateTime)

	collection := store.snapshot().collections["10-2"]
	assert.Equal(t, entity.Collection{
		CollectionID: "10-2",
		Name:         "Polka Punks",
		Description:  lo.ToPtr("punks on polkadot"),
		Image:        "ipfs://images/logo.png",
		Issuer:       alice,
		BaseURI:      lo.ToPtr(tokenBaseURI),
		Supply:       lo.ToPtr(int64(100)),
		MintSettings: entity.MintSettings{
			Mode:  entity.MintModeWhitelist,
			Start: lo.ToPtr(int64(20)),
			Price: lo.ToPtr(decimal.RequireFromString("10000000000")),
		},
		CreateTime: blockTime(10),
		UpdateTime: blockTime(10),
	}, collection)
}

func TestCreateInvalidMetadata(t *testing.T) {
	for _, uri := range []string{invalidURI, unreachableURI} {
		t.Run(uri, func(t *testing.T) {
			p, store := newTestProcessor(t)
			process(t, p, inscribe(10, 1, alice, &protocol.CreateContent{Metadata: uri}))

			assertResult(t, store, fail(entity.FailReasonInvalidMetadata))
			assert.Equal(t, "10-1", lastTransaction(t, store).CollectionID)
			assert.Empty(t, store.snapshot().collections)
		})
	}
}

func TestIdempotentReplay(t *testing.T) {
	p, store := newTestProcessor(t)
	inscriptions := []*Inscription{
		createPublic(10, alice, nil),
		mint(11, 1, bob, "10-1"),
		mint(11, 3, charlie, "10-1"),
		inscribe(12, 1, bob, &protocol.ApproveContent{ID: "10-1", TokenID: 0, Approved: dave}),
		inscribe(13, 1, dave, &protocol.SendContent{ID: "10-1", TokenID: 0, Recipient: alice}),
		inscribe(13, 2, charlie, &protocol.BurnContent{ID: "10-1", TokenID: 1}),
		mint(14, 1, dave, "unknown"),
	}

	process(t, p, inscriptions...)
	first := store.snapshot()
	require.Len(t, first.transactions, len(inscriptions))

	process(t, p, inscriptions...)
	// replaying part of the history, as done when resuming, is a no-op too
	process(t, p, inscriptions[4:]...)
	assert.Equal(t, first, store.snapshot())
}

func TestTokenIDMonotonicity(t *testing.T) {
	p, store := newTestProcessor(t)
	process(t, p, createPublic(10, alice, &protocol.MintSettings{Limit: lo.ToPtr(int64(2))}))

	process(t, p,
		mint(11, 1, charlie, "10-1"),
		mint(11, 2, charlie, "10-1"),
		mint(12, 1, charlie, "10-1"), // exceeds the limit
		mint(12, 2, bob, "10-1"),
	)

	txs := store.snapshot().transactions
	require.Len(t, txs, 5)
	assert.Equal(t, lo.ToPtr(int64(0)), txs[1].TokenID)
	assert.Equal(t, lo.ToPtr(int64(1)), txs[2].TokenID)
	assert.Equal(t, fail(entity.FailReasonMintExceedLimit), txs[3].FailReason)
	assert.Nil(t, txs[3].TokenID)
	assert.Equal(t, lo.ToPtr(int64(2)), txs[4].TokenID)

	tokens := store.snapshot().tokens
	require.Len(t, tokens, 3)
	assert.Equal(t, bob, tokens[tokenKey{"10-1", 2}].Owner)
	assert.Equal(t, entity.Token{
		CollectionID: "10-1",
		TokenID:      0,
		Name:         "Punk #0",
		Image:        "ipfs://images/0.png",
		Attributes:   []entity.Attribute{{TraitType: "eyes", Value: "blue"}},
		Owner:        charlie,
		Status:       entity.TokenStatusNormal,
		CreateTime:   blockTime(11),
		UpdateTime:   blockTime(11),
	}, tokens[tokenKey{"10-1", 0}])
}

func TestMintWindow(t *testing.T) {
	p, store := newTestProcessor(t)
	process(t, p, createPublic(10, alice, &protocol.MintSettings{
		Start: lo.ToPtr(int64(100)),
		End:   lo.ToPtr(int64(200)),
	}))

	testCases := []struct {
		height int64
		reason *entity.FailReason
	}{
		{99, fail(entity.FailReasonMintNotStarted)},
		{100, nil},
		{200, nil},
		{201, fail(entity.FailReasonMintFinished)},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprint(tc.height), func(t *testing.T) {
			process(t, p, mint(tc.height, 1, bob, "10-1"))
			assertResult(t, store, tc.reason)
		})
	}
}

func TestMintPayment(t *testing.T) {
	p, store := newTestProcessor(t)
	process(t, p, createPublic(10, alice, &protocol.MintSettings{
		Price: lo.ToPtr(decimal.NewFromInt(1000)),
	}))

	testCases := []struct {
		name        string
		inscription *Inscription
		reason      *entity.FailReason
	}{
		{"not_paid", mint(11, 1, bob, "10-1"), fail(entity.FailReasonMintNotPaid)},
		{"invalid_payee", withPayment(mint(12, 1, bob, "10-1"), 1000, charlie), fail(entity.FailReasonMintInvalidPayee)},
		{"insufficient", withPayment(mint(13, 1, bob, "10-1"), 999, alice), fail(entity.FailReasonMintInsufficientAmount)},
		{"exact", withPayment(mint(14, 1, bob, "10-1"), 1000, alice), nil},
		{"overpaid", withPayment(mint(15, 1, bob, "10-1"), 5000, alice), nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			process(t, p, tc.inscription)
			assertResult(t, store, tc.reason)
		})
	}
	assert.Len(t, store.snapshot().tokens, 2)
}

func TestMintFreeIgnoresPayment(t *testing.T) {
	p, store := newTestProcessor(t)
	process(t, p, createPublic(10, alice, nil))

	process(t, p, withPayment(mint(11, 1, bob, "10-1"), 1, charlie))
	assertResult(t, store, nil)
}

func TestMintGuardOrder(t *testing.T) {
	p, store := newTestProcessor(t)
	process(t, p, createPublic(10, alice, &protocol.MintSettings{
		Mode:  lo.ToPtr(protocol.MintModeWhitelist),
		Start: lo.ToPtr(int64(100)),
		Price: lo.ToPtr(decimal.NewFromInt(1000)),
	}))

	// every guard fails, the window is checked first
	process(t, p, mint(50, 1, bob, "10-1"))
	assertResult(t, store, fail(entity.FailReasonMintNotStarted))

	// then the payment before the eligibility
	process(t, p, mint(150, 1, bob, "10-1"))
	assertResult(t, store, fail(entity.FailReasonMintNotPaid))

	process(t, p, withPayment(mint(151, 1, bob, "10-1"), 1000, alice))
	assertResult(t, store, fail(entity.FailReasonMintNotEligible))
}

func TestWhitelistEligibility(t *testing.T) {
	p, store := newTestProcessor(t)
	process(t, p, createPublic(10, alice, &protocol.MintSettings{Mode: lo.ToPtr(protocol.MintModeWhitelist)}))

	process(t, p, mint(11, 1, bob, "10-1"))
	assertResult(t, store, fail(entity.FailReasonMintNotEligible))

	process(t, p, inscribe(12, 1, bob, &protocol.AddwlContent{ID: "10-1", Data: []string{bob}}))
	assertResult(t, store, fail(entity.FailReasonNotCollectionOwner))

	process(t, p, inscribe(13, 1, alice, &protocol.AddwlContent{ID: "99-1", Data: []string{bob}}))
	assertResult(t, store, fail(entity.FailReasonCollectionNotFound))

	process(t, p, inscribe(14, 1, alice, &protocol.AddwlContent{ID: "10-1", Data: []string{bob, charlie, bob}}))
	assertResult(t, store, nil)
	assert.Len(t, store.snapshot().whitelists, 3)

	process(t, p, mint(15, 1, bob, "10-1"))
	assertResult(t, store, nil)
	process(t, p, mint(15, 2, charlie, "10-1"))
	assertResult(t, store, nil)
	process(t, p, mint(15, 3, dave, "10-1"))
	assertResult(t, store, fail(entity.FailReasonMintNotEligible))
}

func TestCreatorMint(t *testing.T) {
	p, store := newTestProcessor(t)
	process(t, p, inscribe(10, 1, alice, &protocol.CreateContent{
		Metadata:     collectionURI,
		MintSettings: &protocol.MintSettings{Mode: lo.ToPtr(protocol.MintModeCreator)},
	}))

	process(t, p, mint(11, 1, alice, "10-1"))
	assertResult(t, store, fail(entity.FailReasonMintMissingMetadata))

	process(t, p, inscribe(12, 1, bob, &protocol.MintContent{ID: "10-1", Metadata: lo.ToPtr(creatorTokenURI)}))
	assertResult(t, store, fail(entity.FailReasonNotCollectionOwner))

	process(t, p, inscribe(13, 1, alice, &protocol.MintContent{ID: "10-1", Metadata: lo.ToPtr(invalidURI)}))
	assertResult(t, store, fail(entity.FailReasonInvalidMetadata))

	// a creator collection needs no base uri
	process(t, p, inscribe(14, 1, alice, &protocol.MintContent{ID: "10-1", Metadata: lo.ToPtr(creatorTokenURI)}))
	assertResult(t, store, nil)
	token := store.snapshot().tokens[tokenKey{"10-1", 0}]
	assert.Equal(t, "Special", token.Name)
	assert.Equal(t, alice, token.Owner)
}

func TestMintSupplyAndBaseURI(t *testing.T) {
	p, store := newTestProcessor(t)
	process(t, p,
		inscribe(10, 1, alice, &protocol.CreateContent{Metadata: collectionURI}),
		inscribe(10, 2, alice, &protocol.CreateContent{
			Metadata: collectionURI,
			BaseURI:  lo.ToPtr(tokenBaseURI),
			Supply:   lo.ToPtr(int64(1)),
		}),
	)

	process(t, p, mint(11, 1, bob, "10-1"))
	assertResult(t, store, fail(entity.FailReasonMissingBaseURI))

	process(t, p, mint(12, 1, bob, "10-2"))
	assertResult(t, store, nil)
	process(t, p, mint(13, 1, bob, "10-2"))
	assertResult(t, store, fail(entity.FailReasonMintExceedSupply))

	process(t, p, mint(14, 1, bob, "404-0"))
	assertResult(t, store, fail(entity.FailReasonCollectionNotFound))
}

func TestSendRevokesApprovals(t *testing.T) {
	p, store := newTestProcessor(t)
	process(t, p,
		createPublic(10, alice, nil),
		mint(11, 1, alice, "10-1"),
	)

	process(t, p, inscribe(12, 1, bob, &protocol.ApproveContent{ID: "10-1", TokenID: 0, Approved: bob}))
	assertResult(t, store, fail(entity.FailReasonNotTokenOwner))

	process(t, p, inscribe(13, 1, alice, &protocol.ApproveContent{ID: "10-1", TokenID: 0, Approved: dave}))
	assertResult(t, store, nil)
	process(t, p, inscribe(13, 2, alice, &protocol.ApproveContent{ID: "10-1", TokenID: 0, Approved: bob}))
	assertResult(t, store, nil)
	require.Len(t, store.snapshot().approvals, 2)

	// only the latest approval is active
	process(t, p, inscribe(14, 1, dave, &protocol.SendContent{ID: "10-1", TokenID: 0, Recipient: dave}))
	assertResult(t, store, fail(entity.FailReasonNotTokenOwner))

	process(t, p, inscribe(15, 1, bob, &protocol.SendContent{ID: "10-1", TokenID: 0, Recipient: charlie}))
	assertResult(t, store, nil)
	assert.Equal(t, lo.ToPtr(int64(0)), lastTransaction(t, store).TokenID)

	state := store.snapshot()
	assert.Equal(t, charlie, state.tokens[tokenKey{"10-1", 0}].Owner)
	assert.Equal(t, blockTime(15), state.tokens[tokenKey{"10-1", 0}].UpdateTime)
	for _, approval := range state.approvals {
		assert.Equal(t, entity.ApprovalStatusRevoked, approval.Status)
	}

	process(t, p, inscribe(16, 1, bob, &protocol.SendContent{ID: "10-1", TokenID: 0, Recipient: bob}))
	assertResult(t, store, fail(entity.FailReasonNotTokenOwner))
	process(t, p, inscribe(16, 2, alice, &protocol.SendContent{ID: "10-1", TokenID: 0, Recipient: alice}))
	assertResult(t, store, fail(entity.FailReasonNotTokenOwner))

	process(t, p, inscribe(17, 1, charlie, &protocol.SendContent{ID: "10-1", TokenID: 0, Recipient: dave}))
	assertResult(t, store, nil)
	assert.Equal(t, dave, store.snapshot().tokens[tokenKey{"10-1", 0}].Owner)

	process(t, p, inscribe(18, 1, dave, &protocol.SendContent{ID: "10-1", TokenID: 7, Recipient: alice}))
	assertResult(t, store, fail(entity.FailReasonTokenNotFound))
}

func TestBurnTerminality(t *testing.T) {
	p, store := newTestProcessor(t)
	process(t, p,
		createPublic(10, alice, nil),
		mint(11, 1, bob, "10-1"),
	)

	process(t, p, inscribe(12, 1, alice, &protocol.BurnContent{ID: "10-1", TokenID: 0}))
	assertResult(t, store, fail(entity.FailReasonNotTokenOwner))

	process(t, p, inscribe(13, 1, bob, &protocol.BurnContent{ID: "10-1", TokenID: 0}))
	assertResult(t, store, nil)
	burned := store.snapshot().tokens[tokenKey{"10-1", 0}]
	assert.True(t, burned.IsBurned())

	for i, content := range []protocol.Content{
		&protocol.BurnContent{ID: "10-1", TokenID: 0},
		&protocol.SendContent{ID: "10-1", TokenID: 0, Recipient: charlie},
		&protocol.ApproveContent{ID: "10-1", TokenID: 0, Approved: charlie},
	} {
		process(t, p, inscribe(14, i+1, bob, content))
		assertResult(t, store, fail(entity.FailReasonTokenBurned))
	}
	assert.Equal(t, burned, store.snapshot().tokens[tokenKey{"10-1", 0}])

	process(t, p, inscribe(15, 1, bob, &protocol.BurnContent{ID: "10-1", TokenID: 1}))
	assertResult(t, store, fail(entity.FailReasonTokenNotFound))
}

func TestCurrentBlock(t *testing.T) {
	p, _ := newTestProcessor(t)

	_, err := p.CurrentBlock(context.Background())
	assert.ErrorIs(t, err, errs.NotFound)

	process(t, p,
		createPublic(5, alice, nil),
		mint(9, 4, bob, "5-1"),
		mint(9, 2, bob, "404-0"),
	)
	height, err := p.CurrentBlock(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 9, height)
}

func TestProcessStopsWhenCanceled(t *testing.T) {
	p, store := newTestProcessor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Process(ctx, 10, []*Inscription{createPublic(10, alice, nil)})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.snapshot().transactions)
}
