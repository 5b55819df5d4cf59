package ipd

import (
	"fmt"
	"math"
)

// Move is the intensity of a player's defection in a single round.
// 0 is full cooperation, 1 is full defection.
type Move = float64

const (
	Cooperate Move = 0
	Defect    Move = 1

	// Moves below this threshold count as cooperation when a strategy
	// needs to discretize its opponent's behavior.
	DefectionThreshold Move = 0.5
)

// Canonical Prisoner's Dilemma payoffs at the corners of the payoff surface.
const (
	R = 2.0 // Reward for mutual cooperation.
	P = 1.0 // Punishment for mutual defection.
	T = 3.0 // Temptation to defect against a cooperator.
	S = 0.0 // Sucker's payoff for cooperating against a defector.
)

// Clamp restricts m to [Cooperate, Defect].
func Clamp(m Move) Move {
	return math.Max(Cooperate, math.Min(Defect, m))
}

// Evaluate returns the score earned by playing own against opponent.
// Moves outside [0, 1] are clamped, never rejected.
func Evaluate(own, opponent Move) float64 {
	return Clamp(own) - 2*Clamp(opponent) + 2
}

func IsCooperation(m Move) bool {
	return m < DefectionThreshold
}

func IsDefection(m Move) bool {
	return m >= DefectionThreshold
}

// NearestMove snaps m to whichever of Cooperate or Defect it is closest to.
func NearestMove(m Move) Move {
	if IsCooperation(m) {
		return Cooperate
	}

	return Defect
}

func Opposite(m Move) Move {
	return 1 - m
}

// GameMove is the pair of moves played in one round, from the point of
// view of one of the players.
type GameMove struct {
	Mine     Move
	Opponent Move
}

// Swap returns the same round as seen by the opponent.
func (gm GameMove) Swap() GameMove {
	return GameMove{Mine: gm.Opponent, Opponent: gm.Mine}
}

func (gm GameMove) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", gm.Mine, gm.Opponent)
}

// GameResult holds the accumulated scores of both players in a match.
type GameResult [2]float64

func (r GameResult) Score(p Player) float64 {
	return r[p]
}

// Difference is the first player's margin over the second.
func (r GameResult) Difference() float64 {
	return r[Player0] - r[Player1]
}

func (r *GameResult) add(a, b float64) {
	r[Player0] += a
	r[Player1] += b
}
