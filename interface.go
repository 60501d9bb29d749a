package automata

// StateMachine is the runtime surface shared by Machine and SyncMachine.
type StateMachine[S, I comparable] interface {
	Initialize(S)
	Initialized() bool
	Transition(I) error
	State() (S, error)
	Reset() error
	Size() int
}

// Interface compliance checks.
var (
	_ StateMachine[int, int] = (*Machine[int, int])(nil)
	_ StateMachine[int, int] = (*SyncMachine[int, int])(nil)
)
