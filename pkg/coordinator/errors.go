package coordinator

import (
	"errors"
	"fmt"
)

// ErrRangeGap is returned when a commit would leave unprocessed blocks between
// the stored range and the committed batch.
var ErrRangeGap = errors.New("commit would leave a gap in the indexed range")

// ValidationError is returned for malformed commands. No state is changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// RegressionError is returned when a forward commit would move to_block backwards.
type RegressionError struct {
	Strategy  string
	Current   uint64
	Requested uint64
}

func (e *RegressionError) Error() string {
	return fmt.Sprintf("strategy %s: commit of to_block %d would regress stored to_block %d",
		e.Strategy, e.Requested, e.Current)
}

// NewRegressionError creates a new RegressionError.
func NewRegressionError(strategy string, current, requested uint64) error {
	return &RegressionError{Strategy: strategy, Current: current, Requested: requested}
}

// HeadUnavailableError is returned when the chain head could not be looked up.
type HeadUnavailableError struct {
	Err error
}

func (e *HeadUnavailableError) Error() string {
	return fmt.Sprintf("chain head unavailable: %v", e.Err)
}

func (e *HeadUnavailableError) Unwrap() error {
	return e.Err
}

// NewHeadUnavailableError creates a new HeadUnavailableError.
func NewHeadUnavailableError(err error) error {
	return &HeadUnavailableError{Err: err}
}

// ReindexConflictError is returned when a strategy already has a reindex run in flight.
type ReindexConflictError struct {
	Strategy string
}

func (e *ReindexConflictError) Error() string {
	return fmt.Sprintf("strategy %s is already reindexing", e.Strategy)
}

// NewReindexConflictError creates a new ReindexConflictError.
func NewReindexConflictError(strategy string) error {
	return &ReindexConflictError{Strategy: strategy}
}

// ProcessingError wraps a strategy failure while processing a block range.
type ProcessingError struct {
	Strategy  string
	FromBlock uint64
	ToBlock   uint64
	Err       error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("strategy %s failed processing blocks [%d, %d]: %v",
		e.Strategy, e.FromBlock, e.ToBlock, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// NewProcessingError creates a new ProcessingError.
func NewProcessingError(strategy string, fromBlock, toBlock uint64, err error) error {
	return &ProcessingError{Strategy: strategy, FromBlock: fromBlock, ToBlock: toBlock, Err: err}
}
