package coordinator

import (
	"fmt"
	"slices"
	"sync"

	"github.com/goran-ethernal/RangeIndexor/internal/metrics"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
)

var allStates = []string{
	coordinator.StateRunning.String(),
	coordinator.StatePaused.String(),
	coordinator.StateReindexing.String(),
}

// validTransitions lists the legal moves of the control state.
var validTransitions = map[coordinator.ControlState][]coordinator.ControlState{
	coordinator.StateRunning:    {coordinator.StatePaused, coordinator.StateReindexing},
	coordinator.StatePaused:     {coordinator.StateRunning, coordinator.StateReindexing},
	coordinator.StateReindexing: {coordinator.StateRunning, coordinator.StatePaused},
}

// CanTransition reports whether moving from one state to another is legal.
func CanTransition(from, to coordinator.ControlState) bool {
	return slices.Contains(validTransitions[from], to)
}

// control is the process-wide control state register.
// Every successful transition closes the channel returned by Changed.
type control struct {
	mu      sync.Mutex
	state   coordinator.ControlState
	changed chan struct{}
}

func newControl() *control {
	metrics.ControlStateLog(coordinator.StateRunning.String(), allStates)

	return &control{
		state:   coordinator.StateRunning,
		changed: make(chan struct{}),
	}
}

// Load returns the current state.
func (c *control) Load() coordinator.ControlState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Changed returns a channel closed on the next transition.
func (c *control) Changed() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.changed
}

// CompareAndTransition moves from -> to when the current state is from and the
// transition is legal. It returns false when the current state differs.
func (c *control) CompareAndTransition(from, to coordinator.ControlState) (bool, error) {
	if !CanTransition(from, to) {
		return false, fmt.Errorf("illegal control transition %s -> %s", from, to)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != from {
		return false, nil
	}

	c.state = to
	close(c.changed)
	c.changed = make(chan struct{})

	metrics.ControlStateLog(to.String(), allStates)

	return true, nil
}

// TransitionTo moves to the target state from whatever state is current.
// It returns the previous state; moving to the current state is a no-op.
func (c *control) TransitionTo(to coordinator.ControlState) (coordinator.ControlState, error) {
	for {
		from := c.Load()
		if from == to {
			return from, nil
		}

		ok, err := c.CompareAndTransition(from, to)
		if err != nil {
			return from, err
		}
		if ok {
			return from, nil
		}
	}
}
