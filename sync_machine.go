package automata

// Sync wraps the machine for use from multiple goroutines. Finish the configuration
// before calling Sync; the wrapper does not guard WhenIn or OnTransition.
func (m *Machine[S, I]) Sync() *SyncMachine[S, I] { return &SyncMachine[S, I]{machine: m} }

// Initialize is the thread-safe version of Machine.Initialize.
func (sm *SyncMachine[S, I]) Initialize(state S) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.machine.Initialize(state)
}

// Initialized is the thread-safe version of Machine.Initialized.
func (sm *SyncMachine[S, I]) Initialized() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.Initialized()
}

// Transition is the thread-safe version of Machine.Transition.
// Guard, hooks and action all run while the lock is held, so they must not
// call back into the same SyncMachine.
func (sm *SyncMachine[S, I]) Transition(input I) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.Transition(input)
}

// State is the thread-safe version of Machine.State.
func (sm *SyncMachine[S, I]) State() (S, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.State()
}

// Reset is the thread-safe version of Machine.Reset.
func (sm *SyncMachine[S, I]) Reset() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.Reset()
}

// Size is the thread-safe version of Machine.Size.
func (sm *SyncMachine[S, I]) Size() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.Size()
}
