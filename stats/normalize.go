package stats

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// StandardPolicy picks the reference value a series is compared against.
// series is either stat.Values or stat.RowAverages.
type StandardPolicy func(stat Stat, series []float64) (float64, error)

// SeriesMean compares each series against its own mean.
func SeriesMean(_ Stat, series []float64) (float64, error) {
	m := mean(series)
	if math.IsNaN(m) {
		return 0, ErrNoValues
	}

	return m, nil
}

// GrandMean compares both series against the mean of all matchup values.
func GrandMean(stat Stat, _ []float64) (float64, error) {
	return SeriesMean(stat, stat.Values)
}

// Fixed compares every series against the given value.
func Fixed(standard float64) StandardPolicy {
	return func(Stat, []float64) (float64, error) {
		return standard, nil
	}
}

// Deviations returns each value's signed distance from standard, and the
// largest absolute distance. NaN values stay NaN and are ignored.
func Deviations(series []float64, standard float64) ([]float64, float64) {
	result := make([]float64, len(series))
	maxAbs := 0.0
	for i, v := range series {
		result[i] = v - standard
		if d := math.Abs(result[i]); d > maxAbs {
			maxAbs = d
		}
	}

	return result, maxAbs
}

// Normalize scales each value's deviation from standard into [-1, 1] by
// the largest absolute deviation in the series.
//
// If every valid value in the series is identical there is nothing to
// scale by, and every normalized value is 0. NaN values also normalize
// to 0.
func Normalize(series []float64, standard float64) []float64 {
	result := make([]float64, len(series))
	if isConstant(series) {
		return result
	}

	deviations, maxAbs := Deviations(series, standard)
	if maxAbs == 0 {
		return result
	}

	for i, d := range deviations {
		if !math.IsNaN(d) {
			result[i] = d / maxAbs
		}
	}

	return result
}

// isConstant reports whether the non-NaN values of series are all equal.
// A mean computed from such a series need not be bit-equal to its values,
// so this must not be decided from the deviations.
func isConstant(series []float64) bool {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range series {
		if math.IsNaN(v) {
			continue
		}

		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo >= hi
}

// Normalized holds the bounded deviations of a Stat's two series.
type Normalized struct {
	Cells        []float64
	Rows         []float64
	CellStandard float64
	RowStandard  float64
}

// Normalize computes the bounded deviations of both the per-matchup
// values and the row averages. The two series are independent and are
// computed concurrently.
func (s Stat) Normalize(policy StandardPolicy) (Normalized, error) {
	var result Normalized
	var g errgroup.Group
	g.Go(func() error {
		standard, err := policy(s, s.Values)
		if err != nil {
			return errors.Wrap(err, "matchup values")
		}

		result.CellStandard = standard
		result.Cells = Normalize(s.Values, standard)
		return nil
	})
	g.Go(func() error {
		standard, err := policy(s, s.RowAverages)
		if err != nil {
			return errors.Wrap(err, "row averages")
		}

		result.RowStandard = standard
		result.Rows = Normalize(s.RowAverages, standard)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Normalized{}, err
	}

	return result, nil
}
