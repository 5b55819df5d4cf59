package classic

import (
	"math/rand"

	"github.com/timpalpant/ipd"
)

// NPavlov is a stochastic Pavlov that adjusts its propensity p by 1/n
// after every round: up after R or P, down after T or S. It defects if p
// is at least a uniform random draw, so with the initial p = 1 it always
// defects in the first round.
type NPavlov struct {
	n float64
	p float64
}

func NewNPavlov(n float64) *NPavlov {
	return &NPavlov{n: n, p: 1}
}

func (s *NPavlov) NextMove(rng *rand.Rand, last *ipd.GameMove, _ ipd.History) ipd.Move {
	if last != nil {
		if ipd.IsDefection(last.Mine) == ipd.IsDefection(last.Opponent) {
			s.p += 1 / s.n
		} else {
			s.p -= 1 / s.n
		}
		s.p = ipd.Clamp(s.p)
	}

	if s.p < rng.Float64() {
		return ipd.Cooperate
	}

	return ipd.Defect
}

func (s *NPavlov) Clone() ipd.Strategy {
	clone := *s
	return &clone
}

// P returns the current propensity.
func (s *NPavlov) P() float64 {
	return s.p
}
