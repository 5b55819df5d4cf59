package export

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/timpalpant/ipd"
)

var testResults = []ipd.MatchupResult{
	{
		First:   "Tit for Tat",
		Second:  "Grim",
		Result:  ipd.GameResult{4, 4},
		History: []ipd.GameMove{{Mine: 0, Opponent: 0}, {Mine: 0, Opponent: 0}},
	},
	{
		First:   "Grim",
		Second:  "Broken",
		History: []ipd.GameMove{{Mine: 0, Opponent: 0.5}},
		Err:     errors.New("strategy panicked"),
	},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testResults); err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"First Strategy,Second Strategy,First Score,Second Score,Error",
		"Tit for Tat,Grim,4,4,",
		"Grim,Broken,0,0,strategy panicked",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("expected:\n%v\ngot:\n%v", expected, buf.String())
	}
}

func TestSaveLoadResults(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "results.gob.gz")
	if err := SaveResults(filename, testResults); err != nil {
		t.Fatal(err)
	}

	results, err := LoadResults(filename)
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != len(testResults) {
		t.Fatalf("expected %d results, got %d", len(testResults), len(results))
	}

	for i, expected := range testResults {
		result := results[i]
		if result.First != expected.First || result.Second != expected.Second ||
			result.Result != expected.Result || !reflect.DeepEqual(result.History, expected.History) {
			t.Errorf("result %d: expected %v, got %v", i, expected, result)
		}

		if result.Failed() != expected.Failed() {
			t.Errorf("result %d: expected failed = %v, got %v", i, expected.Failed(), result.Failed())
		} else if result.Failed() && result.Err.Error() != expected.Err.Error() {
			t.Errorf("result %d: expected error %q, got %q", i, expected.Err, result.Err)
		}
	}
}

func TestLoadResults_Missing(t *testing.T) {
	if _, err := LoadResults(filepath.Join(t.TempDir(), "missing.gob.gz")); err == nil {
		t.Error("expected error loading a missing file")
	}
}
