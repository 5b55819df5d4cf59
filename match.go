package ipd

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

var (
	ErrInvalidMove    = errors.New("strategy returned an invalid move")
	ErrStrategyPanic  = errors.New("strategy panicked")
	ErrInvalidRounds  = errors.New("number of rounds must be positive")
	ErrNilStrategy    = errors.New("nil strategy")
	ErrEmptyCatalog   = errors.New("strategy catalog is empty")
	ErrDuplicateEntry = errors.New("duplicate strategy name in catalog")
)

// Play runs a match of numRounds between a (Player0) and b (Player1).
// Each player draws randomness only from its own rng.
//
// The returned history always has numRounds entries unless an error is
// returned, in which case it holds the rounds completed before the failure
// and the GameResult is zero. Moves outside [0, 1] are clamped before they
// are scored and recorded.
func Play(a, b Strategy, numRounds int, rngA, rngB *rand.Rand) (result GameResult, moves []GameMove, err error) {
	if numRounds <= 0 {
		return GameResult{}, nil, ErrInvalidRounds
	}
	if a == nil || b == nil {
		return GameResult{}, nil, ErrNilStrategy
	}

	moves = make([]GameMove, 0, numRounds)
	defer func() {
		if r := recover(); r != nil {
			result = GameResult{}
			err = errors.Wrapf(ErrStrategyPanic, "round %d: %v", len(moves), r)
		}
	}()

	for round := 0; round < numRounds; round++ {
		history := NewHistory(moves)
		var lastA, lastB *GameMove
		if last, ok := history.Last(); ok {
			swapped := last.Swap()
			lastA, lastB = &last, &swapped
		}

		x := a.NextMove(rngA, lastA, history)
		y := b.NextMove(rngB, lastB, history.Swap())
		if math.IsNaN(x) || math.IsNaN(y) {
			return GameResult{}, moves, errors.Wrapf(ErrInvalidMove,
				"round %d: %v", round, GameMove{Mine: x, Opponent: y})
		}

		x, y = Clamp(x), Clamp(y)
		result.add(Evaluate(x, y), Evaluate(y, x))
		moves = append(moves, GameMove{Mine: x, Opponent: y})
	}

	return result, moves, nil
}

// MatchupResult is the outcome of one ordered pairing in a tournament.
type MatchupResult struct {
	First   string
	Second  string
	Result  GameResult
	History []GameMove
	// Err is set if the match could not be completed. Result is then zero
	// and History holds only the rounds played before the failure.
	Err error
}

func (m MatchupResult) Failed() bool {
	return m.Err != nil
}

func (m MatchupResult) String() string {
	if m.Failed() {
		return fmt.Sprintf("%s vs %s: failed: %v", m.First, m.Second, m.Err)
	}

	return fmt.Sprintf("%s vs %s: %.2f - %.2f", m.First, m.Second,
		m.Result[Player0], m.Result[Player1])
}
