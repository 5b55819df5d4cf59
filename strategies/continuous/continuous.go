// Package continuous implements strategies that play and respond to
// intermediate moves rather than only pure cooperation or defection.
package continuous

import (
	"math/rand"

	"github.com/timpalpant/ipd"
	"github.com/timpalpant/ipd/strategies/classic"
)

func All() []ipd.Entry {
	return []ipd.Entry{
		{Name: "Ambivalent", Strategy: Constant(0.5)},
		{Name: "Ambivalent Suspicious", Strategy: Constant(0.75)},
		{Name: "Ambivalent Relaxed", Strategy: Constant(0.25)},
		{Name: "Random", Strategy: ipd.Func(Random)},
		{Name: "Tit for Tat", Strategy: ipd.Func(TitForTat)},
		{Name: "Suspicious Tit for Tat", Strategy: ipd.Func(SuspiciousTitForTat)},
		{Name: "Generous Tit for Tat", Strategy: ipd.Func(GenerousTitForTat)},
		{Name: "Imprecise Tit for Tat", Strategy: ipd.Func(ImpreciseTitForTat)},
		{Name: "Tit for Two Tats", Strategy: ipd.Func(TitForTwoTats)},
		{Name: "Two Tits for Tat", Strategy: ipd.Func(TwoTitsForTat)},
		{Name: "Grim", Strategy: ipd.Func(Grim)},
		{Name: "2Pavlov", Strategy: NewNPavlov(2)},
		{Name: "4Pavlov", Strategy: NewNPavlov(4)},
		{Name: "8Pavlov", Strategy: NewNPavlov(8)},
	}
}

// Maximum noise ImpreciseTitForTat adds to its reply.
const Imprecision = 0.05

// Constant always plays the same move.
func Constant(m ipd.Move) ipd.Func {
	return func(_ *rand.Rand, _ ipd.History) ipd.Move {
		return m
	}
}

// Random plays a uniformly random move.
func Random(rng *rand.Rand, _ ipd.History) ipd.Move {
	return rng.Float64()
}

// TitForTat copies the opponent's last move exactly, cooperating on the
// first round.
func TitForTat(_ *rand.Rand, h ipd.History) ipd.Move {
	last, ok := h.Last()
	if !ok {
		return ipd.Cooperate
	}

	return last.Opponent
}

// SuspiciousTitForTat is TitForTat, but defects on the first round.
func SuspiciousTitForTat(_ *rand.Rand, h ipd.History) ipd.Move {
	last, ok := h.Last()
	if !ok {
		return ipd.Defect
	}

	return last.Opponent
}

// GenerousTitForTat copies the opponent's last move, but replies to a
// defection with full cooperation with probability classic.Generosity.
// It defects on the first round.
func GenerousTitForTat(rng *rand.Rand, h ipd.History) ipd.Move {
	last, ok := h.Last()
	if !ok {
		return ipd.Defect
	}

	if ipd.IsDefection(last.Opponent) && rng.Float64() < classic.Generosity {
		return ipd.Cooperate
	}

	return last.Opponent
}

// ImpreciseTitForTat snaps the opponent's last move to the nearest pure
// move and adds uniform noise in [-Imprecision, Imprecision). The result
// may fall slightly outside [0, 1] and is clamped when scored.
func ImpreciseTitForTat(rng *rand.Rand, h ipd.History) ipd.Move {
	last, ok := h.Last()
	if !ok {
		return ipd.Cooperate
	}

	return ipd.NearestMove(last.Opponent) + (rng.Float64()*2*Imprecision - Imprecision)
}

// TitForTwoTats replies with the most cooperative of the opponent's last
// two moves.
func TitForTwoTats(_ *rand.Rand, h ipd.History) ipd.Move {
	moves := h.OpponentMoves(2)
	if len(moves) == 0 {
		return ipd.Cooperate
	}

	return minOf(moves)
}

// TwoTitsForTat replies with the most defective of the opponent's last
// two moves.
func TwoTitsForTat(_ *rand.Rand, h ipd.History) ipd.Move {
	moves := h.OpponentMoves(2)
	if len(moves) == 0 {
		return ipd.Cooperate
	}

	return maxOf(moves)
}

// Grim replies with the most defective move the opponent has ever played.
func Grim(_ *rand.Rand, h ipd.History) ipd.Move {
	moves := h.OpponentMoves(-1)
	if len(moves) == 0 {
		return ipd.Cooperate
	}

	return maxOf(moves)
}

func minOf(vs []float64) float64 {
	result := vs[0]
	for _, v := range vs[1:] {
		if v < result {
			result = v
		}
	}

	return result
}

func maxOf(vs []float64) float64 {
	result := vs[0]
	for _, v := range vs[1:] {
		if v > result {
			result = v
		}
	}

	return result
}
