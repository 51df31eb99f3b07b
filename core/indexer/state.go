package indexer

// State is the state of the block scanner.
type State int32

const (
	StateConnecting State = iota
	StateScanning
	StateWaiting
	StateRecovering
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateScanning:
		return "scanning"
	case StateWaiting:
		return "waiting"
	case StateRecovering:
		return "recovering"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Status is a snapshot of the scanner progress.
type Status struct {
	State State `json:"-"`

	// CurrentBlock is the next block to be scanned.
	CurrentBlock int64 `json:"currentBlock"`

	// LatestBlock is the latest finalized block seen on the chain, -1 if unknown.
	LatestBlock int64 `json:"latestBlock"`
}
