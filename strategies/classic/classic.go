// Package classic implements the discrete strategies from the Stanford
// Encyclopedia of Philosophy's Prisoner's Dilemma strategy table.
//
// Every strategy here only ever plays ipd.Cooperate or ipd.Defect, and
// reads the opponent's (possibly continuous) moves by snapping them to the
// nearest of the two.
package classic

import (
	"math"
	"math/rand"

	"github.com/timpalpant/ipd"
)

// All returns the classic strategies in catalog order.
func All() []ipd.Entry {
	return []ipd.Entry{
		{Name: "Classic Unconditional Cooperator", Strategy: ipd.Func(UnconditionalCooperator)},
		{Name: "Classic Unconditional Defector", Strategy: ipd.Func(UnconditionalDefector)},
		{Name: "Classic Random", Strategy: ipd.Func(Random)},
		{Name: "Classic Tit for Tat", Strategy: ipd.Func(TitForTat)},
		{Name: "Classic Suspicious Tit for Tat", Strategy: ipd.Func(SuspiciousTitForTat)},
		{Name: "Classic Generous Tit for Tat", Strategy: ipd.Func(GenerousTitForTat)},
		{Name: "Classic Imperfect Tit for Tat", Strategy: ipd.Func(ImperfectTitForTat)},
		{Name: "Classic Tit for Two Tats", Strategy: ipd.Func(TitForTwoTats)},
		{Name: "Classic Two Tits for Tat", Strategy: ipd.Func(TwoTitsForTat)},
		{Name: "Classic Grim", Strategy: ipd.Func(Grim)},
		{Name: "Classic Pavlov", Strategy: ipd.Func(Pavlov)},
		{Name: "Classic 2Pavlov", Strategy: NewNPavlov(2)},
		{Name: "Classic 4Pavlov", Strategy: NewNPavlov(4)},
		{Name: "Classic 8Pavlov", Strategy: NewNPavlov(8)},
	}
}

// Probability with which GenerousTitForTat forgives a defection.
var Generosity = math.Min(1-(ipd.T-ipd.R)/(ipd.R-ipd.S), (ipd.R-ipd.P)/(ipd.T-ipd.P))

// Probability with which ImperfectTitForTat copies its opponent correctly.
const ImitationAccuracy = 0.95

func UnconditionalCooperator(_ *rand.Rand, _ ipd.History) ipd.Move {
	return ipd.Cooperate
}

func UnconditionalDefector(_ *rand.Rand, _ ipd.History) ipd.Move {
	return ipd.Defect
}

// Random cooperates or defects with equal probability.
func Random(rng *rand.Rand, _ ipd.History) ipd.Move {
	if rng.Intn(2) == 0 {
		return ipd.Cooperate
	}

	return ipd.Defect
}

// TitForTat copies the opponent's last move, cooperating on the first round.
func TitForTat(_ *rand.Rand, h ipd.History) ipd.Move {
	last, ok := h.Last()
	if !ok {
		return ipd.Cooperate
	}

	return ipd.NearestMove(last.Opponent)
}

// SuspiciousTitForTat is TitForTat, but defects on the first round.
func SuspiciousTitForTat(_ *rand.Rand, h ipd.History) ipd.Move {
	last, ok := h.Last()
	if !ok {
		return ipd.Defect
	}

	return ipd.NearestMove(last.Opponent)
}

// GenerousTitForTat is TitForTat, but forgives a defection with
// probability Generosity. It defects on the first round.
func GenerousTitForTat(rng *rand.Rand, h ipd.History) ipd.Move {
	last, ok := h.Last()
	if !ok {
		return ipd.Defect
	}

	m := ipd.NearestMove(last.Opponent)
	if ipd.IsDefection(m) && rng.Float64() < Generosity {
		return ipd.Cooperate
	}

	return m
}

// ImperfectTitForTat copies the opponent's last move with probability
// ImitationAccuracy, and otherwise plays the opposite.
func ImperfectTitForTat(rng *rand.Rand, h ipd.History) ipd.Move {
	last, ok := h.Last()
	if !ok {
		return ipd.Cooperate
	}

	m := ipd.NearestMove(last.Opponent)
	if rng.Float64() < ImitationAccuracy {
		return m
	}

	return ipd.Opposite(m)
}

// TitForTwoTats defects only if the opponent defected in both of the last
// two rounds. It always cooperates in the first three rounds.
func TitForTwoTats(_ *rand.Rand, h ipd.History) ipd.Move {
	if h.Len() <= 2 {
		return ipd.Cooperate
	}

	for _, m := range h.OpponentMoves(2) {
		if ipd.IsCooperation(m) {
			return ipd.Cooperate
		}
	}

	return ipd.Defect
}

// TwoTitsForTat defects if the opponent defected in either of the last
// two rounds. It always cooperates in the first three rounds.
func TwoTitsForTat(_ *rand.Rand, h ipd.History) ipd.Move {
	if h.Len() <= 2 {
		return ipd.Cooperate
	}

	for _, m := range h.OpponentMoves(2) {
		if ipd.IsDefection(m) {
			return ipd.Defect
		}
	}

	return ipd.Cooperate
}

// Grim cooperates until the opponent defects once, then defects forever.
func Grim(_ *rand.Rand, h ipd.History) ipd.Move {
	for _, m := range h.OpponentMoves(-1) {
		if ipd.IsDefection(m) {
			return ipd.Defect
		}
	}

	return ipd.Cooperate
}

// Pavlov (win-stay, lose-shift) repeats its last move after receiving
// R or T, and switches after receiving P or S.
func Pavlov(_ *rand.Rand, h ipd.History) ipd.Move {
	last, ok := h.Last()
	if !ok {
		return ipd.Cooperate
	}

	if ipd.IsDefection(last.Opponent) {
		return ipd.Opposite(last.Mine)
	}

	return last.Mine
}
