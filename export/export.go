// Package export writes tournament results out for other tools.
package export

import (
	"encoding/csv"
	"encoding/gob"
	"io"
	"os"
	"strconv"

	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"

	"github.com/timpalpant/ipd"
)

var csvHeader = []string{
	"First Strategy",
	"Second Strategy",
	"First Score",
	"Second Score",
	"Error",
}

// WriteCSV writes one row per matchup, in result order.
func WriteCSV(w io.Writer, results []ipd.MatchupResult) error {
	wtr := csv.NewWriter(w)
	if err := wtr.Write(csvHeader); err != nil {
		return err
	}

	for _, result := range results {
		var errStr string
		if result.Failed() {
			errStr = result.Err.Error()
		}

		err := wtr.Write([]string{
			result.First,
			result.Second,
			strconv.FormatFloat(result.Result[ipd.Player0], 'g', -1, 64),
			strconv.FormatFloat(result.Result[ipd.Player1], 'g', -1, 64),
			errStr,
		})
		if err != nil {
			return err
		}
	}

	wtr.Flush()
	return wtr.Error()
}

// Record is the serialized form of an ipd.MatchupResult.
type Record struct {
	First   string
	Second  string
	Result  ipd.GameResult
	History []ipd.GameMove
	Error   string
}

func NewRecord(m ipd.MatchupResult) Record {
	r := Record{
		First:   m.First,
		Second:  m.Second,
		Result:  m.Result,
		History: m.History,
	}
	if m.Failed() {
		r.Error = m.Err.Error()
	}

	return r
}

// MatchupResult converts the record back. A failed matchup's error keeps
// only its message.
func (r Record) MatchupResult() ipd.MatchupResult {
	m := ipd.MatchupResult{
		First:   r.First,
		Second:  r.Second,
		Result:  r.Result,
		History: r.History,
	}
	if r.Error != "" {
		m.Err = errors.New(r.Error)
	}

	return m
}

// SaveResults writes results to filename as a gzipped gob stream.
func SaveResults(filename string, results []ipd.MatchupResult) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := gzip.NewWriter(f)
	if err := writeResults(w, results); err != nil {
		w.Close()
		return errors.Wrapf(err, "saving results to %v", filename)
	}

	if err := w.Close(); err != nil {
		return err
	}

	return f.Close()
}

// LoadResults reads results written by SaveResults.
func LoadResults(filename string) ([]ipd.MatchupResult, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", filename)
	}
	defer r.Close()

	results, err := readResults(r)
	if err != nil {
		return nil, errors.Wrapf(err, "loading results from %v", filename)
	}

	return results, nil
}

func writeResults(w io.Writer, results []ipd.MatchupResult) error {
	records := make([]Record, len(results))
	for i, result := range results {
		records[i] = NewRecord(result)
	}

	return gob.NewEncoder(w).Encode(records)
}

func readResults(r io.Reader) ([]ipd.MatchupResult, error) {
	var records []Record
	if err := gob.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}

	results := make([]ipd.MatchupResult, len(records))
	for i, record := range records {
		results[i] = record.MatchupResult()
	}

	return results, nil
}
