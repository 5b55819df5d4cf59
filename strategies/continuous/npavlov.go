package continuous

import (
	"math/rand"

	"github.com/timpalpant/ipd"
)

// NPavlov tracks a cooperation propensity p the same way as classic
// NPavlov, but plays the continuous move 1 - p instead of sampling.
// Starting from p = 1 it fully cooperates in the first round.
type NPavlov struct {
	n float64
	p float64
}

func NewNPavlov(n float64) *NPavlov {
	return &NPavlov{n: n, p: 1}
}

func (s *NPavlov) NextMove(_ *rand.Rand, last *ipd.GameMove, _ ipd.History) ipd.Move {
	if last != nil {
		if ipd.IsDefection(last.Mine) == ipd.IsDefection(last.Opponent) {
			s.p += 1 / s.n
		} else {
			s.p -= 1 / s.n
		}
		s.p = ipd.Clamp(s.p)
	}

	return ipd.Opposite(s.p)
}

func (s *NPavlov) Clone() ipd.Strategy {
	clone := *s
	return &clone
}

func (s *NPavlov) P() float64 {
	return s.p
}
