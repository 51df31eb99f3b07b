package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Block is a finalized block with its extrinsics decoded into the fields the indexer understands.
type Block struct {
	Height     int64
	Hash       string
	ParentHash string
	Timestamp  time.Time
	Extrinsics []*Extrinsic
}

type Extrinsic struct {
	Index int
	Hash  string

	// Signer is the address of the signing account, empty if the extrinsic is unsigned.
	Signer string

	// Success is true if the extrinsic emitted a system.ExtrinsicSuccess event.
	Success bool

	Call Call
}

func (e *Extrinsic) IsSigned() bool {
	return e.Signer != ""
}

// Call is a runtime call. Only the arguments of the supported calls are decoded,
// others are left empty.
type Call struct {
	Pallet string
	Method string

	// Calls are the inner calls of utility batches.
	Calls []Call

	// Remark is the text of system.remark and system.remarkWithEvent.
	Remark *string

	// Transfer is set for balances transfers with a well-formed amount.
	Transfer *Transfer
}

func (c Call) Is(pallet, method string) bool {
	return c.Pallet == pallet && c.Method == method
}

type Transfer struct {
	Dest  string
	Value decimal.Decimal
}
