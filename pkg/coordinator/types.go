package coordinator

import "context"

// ControlState is the process-wide indexing state.
type ControlState string

const (
	StateRunning    ControlState = "running"
	StatePaused     ControlState = "paused"
	StateReindexing ControlState = "reindexing"
)

func (s ControlState) String() string {
	return string(s)
}

// ReindexRequest asks for a block range to be reprocessed.
// Nil fields fall back to defaults: all strategies, the stored from_block, the chain head.
type ReindexRequest struct {
	From     *uint64 `json:"from,omitempty"`
	To       *uint64 `json:"to,omitempty"`
	Strategy *string `json:"strategy,omitempty"`
}

// CommandResult is the outcome of a control command.
type CommandResult struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

// IndexProgress describes the in-flight run reported in the status.
// From == To == 0 with Calculating set means the range is not resolved yet.
type IndexProgress struct {
	From        uint64 `json:"from"`
	To          uint64 `json:"to"`
	Current     uint64 `json:"current"`
	Strategy    string `json:"strategy,omitempty"`
	IsReindex   bool   `json:"is_reindex"`
	Calculating bool   `json:"calculating"`
}

// StrategyProgress is the per-strategy view of the status.
type StrategyProgress struct {
	Name       string `json:"name"`
	FromBlock  uint64 `json:"from_block"`
	ToBlock    uint64 `json:"to_block"`
	Behind     uint64 `json:"behind"`
	Indexed    bool   `json:"indexed"`
	Reindexing bool   `json:"reindexing"`
}

// StatusSnapshot is the read-only status served to API clients.
type StatusSnapshot struct {
	Status     ControlState       `json:"status"`
	LastBlock  uint64             `json:"last_block"`
	Head       uint64             `json:"head"`
	Behind     uint64             `json:"behind"`
	Index      *IndexProgress     `json:"index,omitempty"`
	HeadStale  bool               `json:"head_stale"`
	LastError  string             `json:"last_error,omitempty"`
	Strategies []StrategyProgress `json:"strategies"`
}

// Controller is the command and status surface of the coordinator.
type Controller interface {
	// Status returns the current status snapshot. It never blocks on indexing.
	Status(ctx context.Context) (StatusSnapshot, error)
	// Pause stops strategies from starting new batches.
	Pause(ctx context.Context) (CommandResult, error)
	// Resume lets paused strategies continue.
	Resume(ctx context.Context) (CommandResult, error)
	// Reindex validates the request and starts reindex runs asynchronously.
	Reindex(ctx context.Context, req ReindexRequest) (CommandResult, error)
}
