// Package stats derives normalized, bounded statistics from the results
// of a tournament.
//
// Every value here is a pure function of the result list: nothing is
// stored as tournament state, and a Stat can be recomputed at any time
// with a different projection.
package stats

import (
	"math"

	"github.com/pkg/errors"

	"github.com/timpalpant/ipd"
)

var (
	ErrEmptyCatalog = errors.New("catalog size must be positive")
	ErrSizeMismatch = errors.New("number of results does not match catalog size")
	ErrNoValues     = errors.New("series has no valid values")
)

// Projection scores a single matchup.
type Projection func(ipd.MatchupResult) float64

// ScoreDifference is the first strategy's margin over the second.
func ScoreDifference(m ipd.MatchupResult) float64 {
	return m.Result.Difference()
}

// Points is the first strategy's total score.
func Points(m ipd.MatchupResult) float64 {
	return m.Result.Score(ipd.Player0)
}

// OpponentPoints is the second strategy's total score.
func OpponentPoints(m ipd.MatchupResult) float64 {
	return m.Result.Score(ipd.Player1)
}

// PerRound scales a projection by the number of rounds in each match.
func PerRound(p Projection, numRounds int) Projection {
	return func(m ipd.MatchupResult) float64 {
		return p(m) / float64(numRounds)
	}
}

// Stat is one value per matchup, in the same row-major order as the
// tournament results, plus the average of each row.
//
// Matchups that failed have a NaN value and are left out of their row's
// average. A row in which every matchup failed has a NaN average.
type Stat struct {
	N           int
	Values      []float64
	RowAverages []float64
}

// Compute applies by to every result. n is the size of the catalog the
// results were produced from, and must satisfy len(results) == n*n.
func Compute(results []ipd.MatchupResult, n int, by Projection) (Stat, error) {
	if n <= 0 {
		return Stat{}, errors.Wrapf(ErrEmptyCatalog, "got %d", n)
	}
	if len(results) != n*n {
		return Stat{}, errors.Wrapf(ErrSizeMismatch, "%d results for %d strategies", len(results), n)
	}

	values := make([]float64, len(results))
	for k, result := range results {
		if result.Failed() {
			values[k] = math.NaN()
		} else {
			values[k] = by(result)
		}
	}

	rowAverages := make([]float64, n)
	for i := range rowAverages {
		rowAverages[i] = mean(values[i*n : (i+1)*n])
	}

	return Stat{
		N:           n,
		Values:      values,
		RowAverages: rowAverages,
	}, nil
}

// Row returns the values of all matchups played by the i'th strategy
// as the first player.
func (s Stat) Row(i int) []float64 {
	return s.Values[i*s.N : (i+1)*s.N]
}

// Get returns the value of the matchup between the i'th and j'th strategies.
func (s Stat) Get(i, j int) float64 {
	return s.Values[i*s.N+j]
}

// Names returns the strategy names in catalog order, as recorded in the
// first column of results.
func Names(results []ipd.MatchupResult, n int) []string {
	result := make([]string, n)
	for i := range result {
		result[i] = results[i*n].First
	}

	return result
}

// mean of the non-NaN values, or NaN if there are none.
func mean(vs []float64) float64 {
	total := 0.0
	count := 0
	for _, v := range vs {
		if !math.IsNaN(v) {
			total += v
			count++
		}
	}

	if count == 0 {
		return math.NaN()
	}

	return total / float64(count)
}
