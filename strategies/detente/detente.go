// Package detente implements strategies that build up "comfort" with an
// opponent while it keeps cooperating, and drop it as soon as it defects.
package detente

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/timpalpant/ipd"
)

func All() []ipd.Entry {
	return []ipd.Entry{
		{Name: "Detente", Strategy: New(1.0, 0.1)},
		{Name: "Suspicious Detente", Strategy: New(0.0, 0.1)},
		{Name: "Trusting Detente", Strategy: New(1.0, 0.5)},
	}
}

// Below this level an opponent's move is always treated as cooperative.
const minTolerance = 0.1

// Detente plays progressively more cooperatively against an opponent it
// considers cooperative.
//
// Comfort is how far below the opponent's last move Detente plays. Trust
// is how much comfort grows after each cooperative round. A move counts as
// cooperative if it is below max(1 - comfort/2, 0.1). Any other move
// resets comfort to zero and is answered with full defection.
//
// In the first round Detente plays 1 - comfort.
type Detente struct {
	comfort float64
	trust   float64
}

func New(initialComfort, trust float64) *Detente {
	return &Detente{
		comfort: initialComfort,
		trust:   trust,
	}
}

func (d *Detente) NextMove(_ *rand.Rand, last *ipd.GameMove, _ ipd.History) ipd.Move {
	if last == nil {
		return 1 - d.comfort
	}

	tolerance := math.Max(1-d.comfort/2, minTolerance)
	if last.Opponent >= tolerance {
		d.comfort = 0
		return ipd.Defect
	}

	next := last.Opponent - d.comfort
	d.comfort += d.trust
	return next
}

func (d *Detente) Clone() ipd.Strategy {
	clone := *d
	return &clone
}

func (d *Detente) Comfort() float64 {
	return d.comfort
}

func (d *Detente) String() string {
	return fmt.Sprintf("Detente{comfort: %.2f, trust: %.2f}", d.comfort, d.trust)
}
