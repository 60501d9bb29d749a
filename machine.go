// Package automata provides a generic, table-driven finite state machine.
// Transitions are declared per (state, input) pair through a fluent builder and
// can carry a guard, a target state and an action. It is built with types and
// utilities from the github.com/enetx/g library.
//
// Builder calls cannot return errors mid-chain: a rejected declaration is kept
// on its builder (Builder.Err) and on the machine. Check Machine.Err once the
// configuration is complete; a machine with configuration errors runs with an
// incomplete table.
//
// A Machine is not safe for concurrent use; wrap it with Sync when it is shared
// between goroutines.
package automata

import (
	"errors"

	"github.com/enetx/g"
)

// New creates an empty, uninitialized machine. The alphabet lists every input
// symbol and is what OnAny declares transitions for; repeated symbols are kept once.
func New[S, I comparable](alphabet ...I) *Machine[S, I] {
	var symbols g.Slice[I]
	seen := g.NewSet[I]()

	for _, input := range alphabet {
		if !seen.Contains(input) {
			seen.Insert(input)
			symbols.Push(input)
		}
	}

	return &Machine[S, I]{
		initial:      g.None[S](),
		current:      g.None[S](),
		alphabet:     symbols,
		table:        newTable[S, I](),
		onTransition: g.NewSlice[TransitionHook[S, I]](),
	}
}

// Clone creates a new machine with a copy of this machine's transitions, hooks and
// alphabet. Transitions declared on the clone afterwards do not affect the original,
// and the other way around. The clone starts in the initial state, or uninitialized
// if Initialize was never called.
func (m *Machine[S, I]) Clone() *Machine[S, I] {
	return &Machine[S, I]{
		initial:      m.initial,
		current:      m.initial,
		alphabet:     m.alphabet.Clone(),
		table:        m.table.clone(),
		onTransition: m.onTransition.Clone(),
	}
}

// Initialize sets both the current and the initial state. It may be called again
// to re-seed the machine.
func (m *Machine[S, I]) Initialize(state S) {
	m.initial = g.Some(state)
	m.current = g.Some(state)
}

// Initialized reports whether Initialize has been called.
func (m *Machine[S, I]) Initialized() bool { return m.current.IsSome() }

// State returns the current state.
func (m *Machine[S, I]) State() (S, error) {
	if m.current.IsNone() {
		var zero S
		return zero, ErrNotInitialized
	}

	return m.current.Some(), nil
}

// Reset returns the machine to the state given to the last Initialize call.
func (m *Machine[S, I]) Reset() error {
	if m.initial.IsNone() {
		return ErrNotInitialized
	}

	m.current = m.initial

	return nil
}

// Size returns the number of registered (state, input) transitions.
func (m *Machine[S, I]) Size() int { return m.table.count() }

// States returns every state mentioned by the registered transitions.
func (m *Machine[S, I]) States() g.Slice[S] { return m.table.states() }

// Inputs returns a copy of the input alphabet given to New.
func (m *Machine[S, I]) Inputs() g.Slice[I] { return m.alphabet.Clone() }

// Err returns all configuration errors recorded by builders of this machine,
// joined, or nil.
func (m *Machine[S, I]) Err() error { return errors.Join(m.errs...) }

// OnTransition registers a global transition hook.
func (m *Machine[S, I]) OnTransition(hook TransitionHook[S, I]) *Machine[S, I] {
	m.onTransition.Push(hook)
	return m
}

// Transition feeds one input to the machine.
//
// It fails with ErrNotInitialized before Initialize and with *ErrNoTransition when
// no transition is registered for the current state and input. A transition whose
// guard returns false does not fire and is not an error.
//
// Otherwise the target state is committed first, then hooks run, then the action.
// An action error, including *ErrTransitionForbidden, is returned as is and leaves
// the machine in the new state.
func (m *Machine[S, I]) Transition(input I) error {
	if m.current.IsNone() {
		return ErrNotInitialized
	}

	from := m.current.Some()

	found := m.table.lookup(from, input)
	if found.IsNone() {
		return &ErrNoTransition[S, I]{State: from, Input: input}
	}

	rec := found.Some()
	if rec.guard != nil && !rec.guard() {
		return nil
	}

	m.current = g.Some(rec.next)

	for hook := range m.onTransition.Iter() {
		hook(from, rec.next, input)
	}

	if rec.action != nil {
		return rec.action()
	}

	return nil
}
