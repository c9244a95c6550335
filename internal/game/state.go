package game

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when a state change is not in the transition table.
var ErrIllegalTransition = errors.New("game: illegal state transition")

// State is the lifecycle state of a game.
type State string

const (
	StateStart   State = "start"   // Created, no game started yet
	StateRunning State = "running" // Accepting moves
	StateWon     State = "won"     // A tile reached the win target
	StateOver    State = "over"    // Board full and no merges left
)

// transitions lists the allowed target states for each source state.
// Won and over are terminal; a new game needs a new Controller.
var transitions = map[State][]State{
	StateStart:   {StateRunning},
	StateRunning: {StateWon, StateOver},
	StateWon:     nil,
	StateOver:    nil,
}

// CanTransition reports whether moving from one state to another is allowed.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal returns true for states with no outgoing transitions.
func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}

// transitionError describes a rejected state change.
func transitionError(from, to State) error {
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}
