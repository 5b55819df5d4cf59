package stats

import (
	"math"
	"sort"
)

// Rank is a strategy's position in a tournament.
type Rank struct {
	Index   int // Position in the catalog.
	Name    string
	Average float64
}

// Ranking orders strategies by row average, highest first. Ties keep
// catalog order, and strategies with no valid matchups come last.
func Ranking(stat Stat, names []string) []Rank {
	result := make([]Rank, len(stat.RowAverages))
	for i, avg := range stat.RowAverages {
		result[i] = Rank{Index: i, Name: names[i], Average: avg}
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].Average, result[j].Average
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}

		return a > b
	})

	return result
}

// Matrix returns the values as an N x N matrix, with the i'th row holding
// the matchups of the i'th strategy as first player. Failed matchups are 0.
func Matrix(stat Stat) [][]float64 {
	result := make([][]float64, stat.N)
	for i := range result {
		row := make([]float64, stat.N)
		for j, v := range stat.Row(i) {
			if !math.IsNaN(v) {
				row[j] = v
			}
		}
		result[i] = row
	}

	return result
}
