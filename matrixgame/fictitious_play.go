// Package matrixgame solves two-player zero-sum matrix games, such as the
// meta-game of choosing which strategy to enter in a tournament.
package matrixgame

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
)

// FictitiousPlay approximates a Nash equilibrium of the zero-sum game in
// which player 0 picks a row, player 1 picks a column, and player 0 wins
// payoffs[i][j] (which player 1 loses).
//
// In each iteration both players best-respond to the other's empirical
// play so far, except with probability mixingLambda when they play a
// uniformly random row or column instead. The returned policies are the
// empirical frequencies of each player's choices.
func FictitiousPlay(payoffs [][]float64, nIter int, mixingLambda float64, rng *rand.Rand) ([]float64, []float64) {
	p0PlayCounts := make([]int, len(payoffs))
	p1PlayCounts := make([]int, len(payoffs[0]))
	logEvery := nIter / 10
	for i := 1; i <= nIter; i++ {
		var p0Selected int
		if rng.Float64() < mixingLambda {
			p0Selected = rng.Intn(len(p0PlayCounts))
		} else {
			p0Selected = getP0BestResponse(payoffs, p1PlayCounts, rng)
		}

		var p1Selected int
		if rng.Float64() < mixingLambda {
			p1Selected = rng.Intn(len(p1PlayCounts))
		} else {
			p1Selected = getP1BestResponse(payoffs, p0PlayCounts, rng)
		}
		p0PlayCounts[p0Selected] += 1
		p1PlayCounts[p1Selected] += 1

		if logEvery > 0 && i%logEvery == 0 {
			glog.V(1).Infof("After %d iterations, player 0 weights: %v", i, normalize(p0PlayCounts))
			glog.V(1).Infof("After %d iterations, player 1 weights: %v", i, normalize(p1PlayCounts))
		}
	}

	return normalize(p0PlayCounts), normalize(p1PlayCounts)
}

// ExpectedPayoff is player 0's expected payoff when both players play the
// given mixed policies.
func ExpectedPayoff(payoffs [][]float64, p0, p1 []float64) float64 {
	total := 0.0
	for i, row := range payoffs {
		for j, v := range row {
			total += p0[i] * p1[j] * v
		}
	}

	return total
}

func getP0BestResponse(payoffs [][]float64, p1PlayCounts []int, rng *rand.Rand) int {
	utilities := make([]float64, len(payoffs))
	for j, c := range p1PlayCounts {
		for i := range utilities {
			utilities[i] += float64(c) * payoffs[i][j]
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func getP1BestResponse(payoffs [][]float64, p0PlayCounts []int, rng *rand.Rand) int {
	utilities := make([]float64, len(payoffs[0]))
	for i, c := range p0PlayCounts {
		for j := range utilities {
			utilities[j] -= float64(c) * payoffs[i][j]
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func normalize(counts []int) []float64 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float64, len(counts))
	if total == 0 {
		return result
	}

	for i, v := range counts {
		result[i] = float64(v) / float64(total)
	}
	return result
}

// argMax breaks ties uniformly at random.
func argMax(vs []float64, rng *rand.Rand) (float64, int) {
	best := -math.MaxFloat64
	bestIdx := 0
	nTied := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
			nTied = 1
		} else if v == best {
			nTied++
			if rng.Intn(nTied) == 0 {
				bestIdx = i
			}
		}
	}

	return best, bestIdx
}
