package ipd

import (
	"fmt"
)

// History is a read-only view of the rounds played so far in a match.
//
// The moves are stored once, from Player0's point of view. The view for
// Player1 is obtained with Swap, which shares the same storage and swaps
// each GameMove as it is read.
type History struct {
	moves   []GameMove
	swapped bool
}

// NewHistory returns a view over the given moves, as seen by Player0.
// The slice is not copied.
func NewHistory(moves []GameMove) History {
	return History{moves: moves}
}

func (h History) String() string {
	return fmt.Sprintf("%v", h.AsSlice())
}

func (h History) Len() int {
	return len(h.moves)
}

func (h History) Get(i int) GameMove {
	if i < 0 || i >= len(h.moves) {
		panic(fmt.Errorf("index out of range: %d (len %d)", i, len(h.moves)))
	}

	if h.swapped {
		return h.moves[i].Swap()
	}

	return h.moves[i]
}

// Last returns the most recent round, or false if no rounds have been played.
func (h History) Last() (GameMove, bool) {
	if len(h.moves) == 0 {
		return GameMove{}, false
	}

	return h.Get(len(h.moves) - 1), true
}

// Swap returns the history as viewed by the other player.
func (h History) Swap() History {
	return History{moves: h.moves, swapped: !h.swapped}
}

// ViewedBy returns the history from the given player's point of view,
// assuming h is the canonical (Player0) view.
func (h History) ViewedBy(p Player) History {
	if p == Player1 {
		return h.Swap()
	}

	return h
}

// AsSlice returns a copy of the rounds played, from this view's perspective.
func (h History) AsSlice() []GameMove {
	result := make([]GameMove, len(h.moves))
	h.Iter(func(i int, gm GameMove) {
		result[i] = gm
	})

	return result
}

// Iter calls f with each round, oldest first.
func (h History) Iter(f func(i int, gm GameMove)) {
	for i := range h.moves {
		f(i, h.Get(i))
	}
}

// OpponentMoves returns up to the last n moves made by the opponent,
// most recent first. n < 0 returns all of them.
func (h History) OpponentMoves(n int) []Move {
	if n < 0 || n > len(h.moves) {
		n = len(h.moves)
	}

	result := make([]Move, n)
	for i := 0; i < n; i++ {
		result[i] = h.Get(len(h.moves) - 1 - i).Opponent
	}

	return result
}
