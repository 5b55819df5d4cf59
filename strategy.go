package ipd

import (
	"math/rand"
)

// Strategy decides a player's next move in a match.
//
// last is the previous round from the strategy's own point of view, and is
// nil on the first round. history holds every round played so far, also
// from the strategy's point of view. rng is owned by the match and must be
// the only source of randomness a strategy uses.
//
// Implementations may keep private state that is updated on every call.
// Clone must return an independent copy of the current state so that the
// same catalog entry can play many matches concurrently.
type Strategy interface {
	NextMove(rng *rand.Rand, last *GameMove, history History) Move
	Clone() Strategy
}

// Func adapts a stateless function of the history to a Strategy.
type Func func(rng *rand.Rand, history History) Move

func (f Func) NextMove(rng *rand.Rand, _ *GameMove, history History) Move {
	return f(rng, history)
}

// Clone returns f itself, since there is no state to copy.
func (f Func) Clone() Strategy {
	return f
}

// Entry is a named strategy in a tournament catalog. The Strategy is used
// only as a blueprint: it is cloned for every match and never played itself.
type Entry struct {
	Name     string
	Strategy Strategy
}
