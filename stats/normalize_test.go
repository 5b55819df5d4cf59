package stats

import (
	"math"
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/timpalpant/ipd"
)

func TestNormalize_Constant(t *testing.T) {
	series := []float64{5, 5, 5, 5}
	result := Normalize(series, 5)
	expected := []float64{0, 0, 0, 0}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %v, got %v", expected, result)
	}
}

func TestNormalize(t *testing.T) {
	deviations, maxAbs := Deviations([]float64{0, 10}, 5)
	if maxAbs != 5 {
		t.Errorf("expected max deviation 5, got %v", maxAbs)
	}

	if !reflect.DeepEqual(deviations, []float64{-5, 5}) {
		t.Errorf("expected deviations [-5 5], got %v", deviations)
	}

	result := Normalize([]float64{0, 10}, 5)
	if !reflect.DeepEqual(result, []float64{-1, 1}) {
		t.Errorf("expected [-1 1], got %v", result)
	}
}

func TestNormalize_Bounded(t *testing.T) {
	series := []float64{-3, 0.5, 2, 7, 100, math.NaN()}
	result := Normalize(series, 1)
	for i, v := range result {
		if v < -1 || v > 1 || math.IsNaN(v) {
			t.Errorf("value %d out of bounds: %v", i, v)
		}
	}

	if result[4] != 1 {
		t.Errorf("expected the largest deviation to normalize to 1, got %v", result[4])
	}

	if result[5] != 0 {
		t.Errorf("expected NaN to normalize to 0, got %v", result[5])
	}
}

func TestStat_Normalize(t *testing.T) {
	stat := Stat{
		N:           2,
		Values:      []float64{0, 2, 4, 10},
		RowAverages: []float64{1, 7},
	}

	result, err := stat.Normalize(SeriesMean)
	if err != nil {
		t.Fatal(err)
	}

	if result.CellStandard != 4 || result.RowStandard != 4 {
		t.Errorf("expected standards (4, 4), got (%v, %v)", result.CellStandard, result.RowStandard)
	}

	expectedCells := []float64{-4.0 / 6, -2.0 / 6, 0, 1}
	if !reflect.DeepEqual(result.Cells, expectedCells) {
		t.Errorf("expected cells %v, got %v", expectedCells, result.Cells)
	}

	if !reflect.DeepEqual(result.Rows, []float64{-1, 1}) {
		t.Errorf("expected rows [-1 1], got %v", result.Rows)
	}

	fixed, err := stat.Normalize(Fixed(0))
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(fixed.Rows, []float64{1.0 / 7, 1}) {
		t.Errorf("expected rows [1/7 1], got %v", fixed.Rows)
	}
}

func TestStat_NormalizeGrandMean(t *testing.T) {
	stat := Stat{
		N:           2,
		Values:      []float64{1, 1, 1, 5},
		RowAverages: []float64{1, 3},
	}

	result, err := stat.Normalize(GrandMean)
	if err != nil {
		t.Fatal(err)
	}

	if result.RowStandard != 2 {
		t.Errorf("expected rows to be compared against the grand mean 2, got %v", result.RowStandard)
	}

	if !reflect.DeepEqual(result.Rows, []float64{-1, 1}) {
		t.Errorf("expected rows [-1 1], got %v", result.Rows)
	}
}

func TestStat_NormalizeDegenerate(t *testing.T) {
	results := makeResults(3, func(i, j int) ipd.GameResult { return ipd.GameResult{5, 5} })
	stat, err := Compute(results, 3, Points)
	if err != nil {
		t.Fatal(err)
	}

	result, err := stat.Normalize(SeriesMean)
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range append(result.Cells, result.Rows...) {
		if v != 0 {
			t.Errorf("expected all zero deviations, got %v and %v", result.Cells, result.Rows)
			break
		}
	}
}

func TestStat_NormalizeInexactConstant(t *testing.T) {
	results := makeResults(4, func(i, j int) ipd.GameResult { return ipd.GameResult{0.1, 0.3} })
	stat, err := Compute(results, 4, Points)
	if err != nil {
		t.Fatal(err)
	}

	for _, policy := range []StandardPolicy{SeriesMean, GrandMean, Fixed(0)} {
		result, err := stat.Normalize(policy)
		if err != nil {
			t.Fatal(err)
		}

		for _, v := range append(result.Cells, result.Rows...) {
			if v != 0 {
				t.Errorf("expected all zero deviations for a constant 0.1 series, got %v and %v",
					result.Cells, result.Rows)
				break
			}
		}
	}
}

func TestNormalize_ConstantWithFailures(t *testing.T) {
	series := []float64{0.1, math.NaN(), 0.1, 0.1}
	expected := []float64{0, 0, 0, 0}
	if result := Normalize(series, 0.09999999999999999); !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %v, got %v", expected, result)
	}
}

func TestStat_NormalizeNoValues(t *testing.T) {
	stat := Stat{
		N:           1,
		Values:      []float64{math.NaN()},
		RowAverages: []float64{math.NaN()},
	}

	if _, err := stat.Normalize(SeriesMean); errors.Cause(err) != ErrNoValues {
		t.Errorf("expected %v, got %v", ErrNoValues, err)
	}
}
