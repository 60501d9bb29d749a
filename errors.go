package automata

import (
	"errors"

	"github.com/enetx/g"
)

var (
	// ErrNotInitialized is returned by Transition, State and Reset before Initialize is called.
	ErrNotInitialized = errors.New("fsm: machine has not been initialized")
	// ErrNoStates is recorded when WhenIn is called without any state.
	ErrNoStates = errors.New("fsm: WhenIn requires at least one state")
	// ErrNoInputs is recorded when On is called without any input, or OnAny on an
	// empty alphabet.
	ErrNoInputs = errors.New("fsm: On requires at least one input")
)

// ErrDuplicateTransition is recorded by the builder when a transition is declared for
// a (state, input) pair that already has one. Each pair has at most one transition,
// which is what keeps the machine deterministic.
type ErrDuplicateTransition[S, I comparable] struct {
	State S
	Input I
}

func (e *ErrDuplicateTransition[S, I]) Error() string {
	return string(g.Format("fsm: duplicate transition for input {} in state {}", e.Input, e.State))
}

// ErrNoTransition is returned when no transition is registered for the input
// in the current state.
type ErrNoTransition[S, I comparable] struct {
	State S
	Input I
}

func (e *ErrNoTransition[S, I]) Error() string {
	return string(g.Format("fsm: no transition for input {} from state {}", e.Input, e.State))
}

// ErrTransitionForbidden is returned when a transition declared with Error is taken.
// The machine is already in the transition's target state when it is returned.
type ErrTransitionForbidden struct {
	Message string
}

func (e *ErrTransitionForbidden) Error() string { return "fsm: forbidden transition: " + e.Message }
