package automata_test

import "github.com/enetx/automata"

type state int

const (
	idle state = iota
	running
	done
)

func (s state) String() string {
	switch s {
	case idle:
		return "Idle"
	case running:
		return "Running"
	case done:
		return "Done"
	default:
		return "Unknown"
	}
}

type input int

const (
	start input = iota
	finish
	pause
)

func (i input) String() string {
	switch i {
	case start:
		return "Start"
	case finish:
		return "Finish"
	case pause:
		return "Pause"
	default:
		return "Unknown"
	}
}

var inputs = []input{start, finish, pause}

func newMachine() *automata.Machine[state, input] {
	return automata.New[state](inputs...)
}
