package entity

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type MintMode string

const (
	MintModePublic    MintMode = "public"
	MintModeWhitelist MintMode = "whitelist"
	MintModeCreator   MintMode = "creator"
)

type TokenStatus string

const (
	TokenStatusNormal TokenStatus = "normal"
	TokenStatusBurned TokenStatus = "burned"
)

type ApprovalStatus string

const (
	ApprovalStatusNormal  ApprovalStatus = "normal"
	ApprovalStatusRevoked ApprovalStatus = "revoked"
)

type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFail    TransactionStatus = "fail"
)

type FailReason string

const (
	FailReasonInvalidMetadata        FailReason = "invalid_metadata"
	FailReasonMissingBaseURI         FailReason = "missing_base_uri"
	FailReasonCollectionDuplicate    FailReason = "collection_duplicate"
	FailReasonCollectionNotFound     FailReason = "collection_not_found"
	FailReasonNotCollectionOwner     FailReason = "not_collection_owner"
	FailReasonMintNotStarted         FailReason = "mint_not_started"
	FailReasonMintFinished           FailReason = "mint_finished"
	FailReasonMintNotPaid            FailReason = "mint_not_paid"
	FailReasonMintInvalidPayee       FailReason = "mint_invalid_payee"
	FailReasonMintInsufficientAmount FailReason = "mint_insufficient_amount"
	FailReasonMintExceedSupply       FailReason = "mint_exceed_supply"
	FailReasonMintExceedLimit        FailReason = "mint_exceed_limit"
	FailReasonMintMissingMetadata    FailReason = "mint_missing_metadata"
	FailReasonMintNotEligible        FailReason = "mint_not_eligible"
	FailReasonTokenNotFound          FailReason = "token_not_found"
	FailReasonTokenBurned            FailReason = "token_burned"
	FailReasonNotTokenOwner          FailReason = "not_token_owner"
)

type Collection struct {
	CollectionID string
	Name         string
	Description  *string
	Image        string
	Issuer       string
	BaseURI      *string
	Supply       *int64
	MintSettings MintSettings
	CreateTime   time.Time
	UpdateTime   time.Time
}

// MintSettings is the snapshot of the mint settings at creation. Unset values are nil
// and behave as zero, an empty mode behaves as public.
type MintSettings struct {
	Mode  MintMode
	Start *int64
	End   *int64
	Price *decimal.Decimal
	Limit *int64
}

func (s MintSettings) StartBlock() int64 {
	return lo.FromPtr(s.Start)
}

func (s MintSettings) EndBlock() int64 {
	return lo.FromPtr(s.End)
}

func (s MintSettings) MaxPerSender() int64 {
	return lo.FromPtr(s.Limit)
}

func (s MintSettings) MintPrice() decimal.Decimal {
	if s.Price == nil {
		return decimal.Zero
	}
	return *s.Price
}

type Token struct {
	CollectionID string
	TokenID      int64
	Name         string
	Description  *string
	Image        string
	Attributes   []Attribute
	Owner        string
	Status       TokenStatus
	CreateTime   time.Time
	UpdateTime   time.Time
}

func (t Token) IsBurned() bool {
	return t.Status == TokenStatusBurned
}

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type WhitelistEntry struct {
	CollectionID string
	Address      string
	CreateTime   time.Time
}

type Approval struct {
	ID           int64
	CollectionID string
	TokenID      int64
	Approved     string
	Status       ApprovalStatus
	CreateTime   time.Time
	UpdateTime   time.Time
}

// Transaction is an entry of the transaction log, one per processed inscription.
type Transaction struct {
	Op             string
	Content        string
	CollectionID   string
	TokenID        *int64
	BlockNumber    int64
	ExtrinsicHash  string
	ExtrinsicIndex int32
	Sender         string
	Status         TransactionStatus
	FailReason     *FailReason
	CreateTime     time.Time
}
