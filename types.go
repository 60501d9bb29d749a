package automata

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// Guard determines whether a matched transition fires.
	Guard func() bool
	// Action is a side effect run after a transition has been committed.
	Action func() error
	// TransitionHook is a global callback called after the state change is committed
	// and before the transition's action runs.
	TransitionHook[S, I comparable] func(from, to S, input I)

	// record is an internal struct holding what happens for one (state, input) pair.
	record[S comparable] struct {
		next   S
		guard  Guard
		action Action
	}

	// table owns every transition record of a machine, keyed by
	// (source state, input) pairs.
	table[S, I comparable] struct {
		records g.Map[g.Pair[S, I], *record[S]]
	}

	// Machine is a table-driven finite state machine over caller-defined
	// state and input symbol sets.
	Machine[S, I comparable] struct {
		initial      g.Option[S]
		current      g.Option[S]
		alphabet     g.Slice[I]
		table        *table[S, I]
		onTransition g.Slice[TransitionHook[S, I]]
		errs         g.Slice[error]
	}

	// Builder configures transitions for a fixed set of source states.
	// Guard, Goto, Execute and Error apply to the keys declared by the most
	// recent On or OnAny call.
	Builder[S, I comparable] struct {
		machine *Machine[S, I]
		states  g.Slice[S]
		keys    g.Slice[g.Pair[S, I]]
		err     error
	}

	// SyncMachine is a thread-safe wrapper around a Machine.
	// It protects all state-mutating and state-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	SyncMachine[S, I comparable] struct {
		machine *Machine[S, I]
		mu      sync.RWMutex
	}
)
