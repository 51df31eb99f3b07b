package protocol

// Protocol is the value of the `p` field of every dot-721 payload.
const Protocol = "dot-721"

type Operation string

const (
	OperationCreate  Operation = "create"
	OperationAddwl   Operation = "addwl"
	OperationMint    Operation = "mint"
	OperationApprove Operation = "approve"
	OperationSend    Operation = "send"
	OperationBurn    Operation = "burn"
)

func (o Operation) IsValid() bool {
	switch o {
	case OperationCreate, OperationAddwl, OperationMint, OperationApprove, OperationSend, OperationBurn:
		return true
	}
	return false
}

func (o Operation) String() string {
	return string(o)
}

// MintMode controls who can mint tokens of a collection. An empty mode behaves as public.
type MintMode string

const (
	MintModePublic    MintMode = "public"
	MintModeWhitelist MintMode = "whitelist"
	MintModeCreator   MintMode = "creator"
)

func (m MintMode) IsValid() bool {
	switch m {
	case MintModePublic, MintModeWhitelist, MintModeCreator:
		return true
	}
	return false
}

func (m MintMode) String() string {
	return string(m)
}
