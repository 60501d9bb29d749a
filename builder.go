package automata

import "github.com/enetx/g"

// WhenIn starts the configuration of transitions leaving any of the given states.
// The returned builder is only needed until the chain is complete.
func (m *Machine[S, I]) WhenIn(states ...S) *Builder[S, I] {
	b := &Builder[S, I]{machine: m, states: g.SliceOf(states...)}
	if b.states.Empty() {
		b.fail(ErrNoStates)
	}

	return b
}

// On declares one transition for every pair of the builder's states and the given
// inputs. Each new transition is a self-loop until Goto says otherwise.
//
// If any pair already has a transition, nothing is declared and the builder records
// an *ErrDuplicateTransition. Once a builder holds an error, further calls on it
// have no effect.
func (b *Builder[S, I]) On(inputs ...I) *Builder[S, I] {
	if b.err != nil {
		return b
	}

	b.keys = nil

	if len(inputs) == 0 {
		return b.fail(ErrNoInputs)
	}

	var keys g.Slice[g.Pair[S, I]]
	seen := g.NewSet[g.Pair[S, I]]()

	for state := range b.states.Iter() {
		for _, input := range inputs {
			k := g.Pair[S, I]{Key: state, Value: input}
			if seen.Contains(k) || b.machine.table.contains(state, input) {
				return b.fail(&ErrDuplicateTransition[S, I]{State: state, Input: input})
			}

			seen.Insert(k)
			keys.Push(k)
		}
	}

	for k := range keys.Iter() {
		if err := b.machine.table.insert(k.Key, k.Value, &record[S]{next: k.Key}); err != nil {
			return b.fail(err)
		}
	}

	b.keys = keys

	return b
}

// OnAny is On called with the machine's whole input alphabet.
func (b *Builder[S, I]) OnAny() *Builder[S, I] {
	return b.On(b.machine.alphabet...)
}

// Guard makes the transitions declared by the last On fire only while guard returns true.
func (b *Builder[S, I]) Guard(guard Guard) *Builder[S, I] {
	b.each(func(rec *record[S]) { rec.guard = guard })
	return b
}

// Goto sets the target state of the transitions declared by the last On.
func (b *Builder[S, I]) Goto(next S) *Builder[S, I] {
	b.each(func(rec *record[S]) { rec.next = next })
	return b
}

// Execute sets the action run after the transitions declared by the last On are taken.
func (b *Builder[S, I]) Execute(action Action) *Builder[S, I] {
	b.each(func(rec *record[S]) { rec.action = action })
	return b
}

// Error marks the transitions declared by the last On as forbidden. They stay in the
// table, so taking one is distinguishable from a missing transition: Transition
// commits the target state and then fails with *ErrTransitionForbidden.
//
// Error ends the chain and returns the builder's configuration error, if any.
func (b *Builder[S, I]) Error(message string) error {
	b.each(func(rec *record[S]) {
		rec.action = func() error { return &ErrTransitionForbidden{Message: message} }
	})

	return b.err
}

// Err returns the first configuration error recorded by the builder.
func (b *Builder[S, I]) Err() error { return b.err }

func (b *Builder[S, I]) each(fn func(rec *record[S])) {
	for k := range b.keys.Iter() {
		if rec := b.machine.table.lookup(k.Key, k.Value); rec.IsSome() {
			fn(rec.Some())
		}
	}
}

func (b *Builder[S, I]) fail(err error) *Builder[S, I] {
	b.err = err
	b.keys = nil
	b.machine.errs.Push(err)

	return b
}
