package ipd

import (
	"expvar"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var (
	matchesPlayed = expvar.NewInt("tournament/matches_played")
	matchesFailed = expvar.NewInt("tournament/matches_failed")
	roundsPlayed  = expvar.NewInt("tournament/rounds_played")
)

// DefaultNumRounds is the length of every match unless configured otherwise.
const DefaultNumRounds = 200

type TournamentParams struct {
	// Number of rounds in every match.
	NumRounds int
	// Seed from which each match's random streams are derived.
	Seed int64
	// Maximum number of matches to play concurrently.
	// Defaults to the number of CPUs if <= 0.
	MaxParallel int
}

func DefaultTournamentParams() TournamentParams {
	return TournamentParams{
		NumRounds:   DefaultNumRounds,
		Seed:        1234,
		MaxParallel: runtime.NumCPU(),
	}
}

// ValidateCatalog checks the preconditions a catalog must satisfy before
// any matches are scheduled.
func ValidateCatalog(catalog []Entry) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]int, len(catalog))
	for i, entry := range catalog {
		if entry.Strategy == nil {
			return errors.Wrapf(ErrNilStrategy, "catalog entry %d (%q)", i, entry.Name)
		}

		if j, ok := seen[entry.Name]; ok {
			return errors.Wrapf(ErrDuplicateEntry, "%q at positions %d and %d", entry.Name, j, i)
		}
		seen[entry.Name] = i
	}

	return nil
}

// RunTournament plays every ordered pair of catalog entries against each
// other, including each entry against itself.
//
// The result has exactly len(catalog)^2 entries in row-major order: the
// matchup at index i*n+j is catalog[i] (Player0) vs catalog[j] (Player1).
// A match that fails is recorded with its Err set rather than dropped.
// The only errors returned are catalog or parameter precondition failures,
// which are detected before any match is played.
func RunTournament(params TournamentParams, catalog []Entry) ([]MatchupResult, error) {
	if params.NumRounds <= 0 {
		return nil, errors.Wrapf(ErrInvalidRounds, "got %d", params.NumRounds)
	}
	if err := ValidateCatalog(catalog); err != nil {
		return nil, err
	}

	maxParallel := params.MaxParallel
	if maxParallel <= 0 {
		maxParallel = runtime.NumCPU()
	}

	n := len(catalog)
	results := make([]MatchupResult, n*n)
	glog.Infof("Playing %d matchups between %d strategies (%d rounds each, %d in parallel)",
		len(results), n, params.NumRounds, maxParallel)

	start := time.Now()
	var wg sync.WaitGroup
	var mu sync.Mutex
	nFailed := 0
	sem := make(chan struct{}, maxParallel)
	for i, first := range catalog {
		for j, second := range catalog {
			k := i*n + j
			sem <- struct{}{}
			wg.Add(1)
			go func(k int, first, second Entry) {
				defer func() { <-sem }()
				defer wg.Done()

				// Each goroutine writes only its own slot.
				results[k] = playMatchup(params, k, first, second)
				if results[k].Failed() {
					glog.Warningf("Matchup %d failed: %v", k, results[k])
					mu.Lock()
					nFailed++
					mu.Unlock()
				} else {
					glog.V(2).Infof("Matchup %d: %v", k, results[k])
				}
			}(k, first, second)
		}
	}

	wg.Wait()

	elapsed := time.Since(start)
	mps := float64(len(results)) / elapsed.Seconds()
	glog.Infof("Finished %d matchups, %d failed (took: %v, %.1f matches/sec)",
		len(results), nFailed, elapsed, mps)
	return results, nil
}

func playMatchup(params TournamentParams, k int, first, second Entry) (result MatchupResult) {
	result = MatchupResult{First: first.Name, Second: second.Name}
	defer func() {
		if r := recover(); r != nil {
			result.Result = GameResult{}
			result.Err = errors.Wrapf(ErrStrategyPanic, "cloning: %v", r)
		}

		matchesPlayed.Add(1)
		roundsPlayed.Add(int64(len(result.History)))
		if result.Failed() {
			matchesFailed.Add(1)
		}
	}()

	a := first.Strategy.Clone()
	b := second.Strategy.Clone()
	rngA := rand.New(rand.NewSource(matchSeed(params.Seed, k, Player0)))
	rngB := rand.New(rand.NewSource(matchSeed(params.Seed, k, Player1)))
	result.Result, result.History, result.Err = Play(a, b, params.NumRounds, rngA, rngB)
	return result
}

// matchSeed derives a distinct seed for each player of each matchup so
// that no two strategy instances share a random stream.
func matchSeed(seed int64, k int, p Player) int64 {
	return seed + 2*int64(k) + int64(p)
}
