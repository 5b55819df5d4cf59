package stats

import (
	"sort"

	"github.com/golang/glog"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/timpalpant/ipd"
)

// DefaultProjections are the projections an Inspector knows by name.
func DefaultProjections(numRounds int) map[string]Projection {
	return map[string]Projection{
		"difference":                ScoreDifference,
		"points":                    Points,
		"opponent_points":           OpponentPoints,
		"difference_per_round":      PerRound(ScoreDifference, numRounds),
		"points_per_round":          PerRound(Points, numRounds),
		"opponent_points_per_round": PerRound(OpponentPoints, numRounds),
	}
}

// Inspector serves statistics over a single tournament's results,
// remembering the most recently requested ones. It is safe for
// concurrent use.
type Inspector struct {
	results     []ipd.MatchupResult
	n           int
	names       []string
	projections map[string]Projection
	cache       *lru.Cache
}

func NewInspector(results []ipd.MatchupResult, n int, projections map[string]Projection, cacheSize int) (*Inspector, error) {
	if n <= 0 {
		return nil, ErrEmptyCatalog
	}
	if len(results) != n*n {
		return nil, errors.Wrapf(ErrSizeMismatch, "%d results for %d strategies", len(results), n)
	}

	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}

	return &Inspector{
		results:     results,
		n:           n,
		names:       Names(results, n),
		projections: projections,
		cache:       cache,
	}, nil
}

func (in *Inspector) Names() []string {
	return in.names
}

// Projections returns the known projection names in sorted order.
func (in *Inspector) Projections() []string {
	result := make([]string, 0, len(in.projections))
	for name := range in.projections {
		result = append(result, name)
	}

	sort.Strings(result)
	return result
}

// Stat returns the named projection's Stat. The returned slices are
// shared with the cache and must not be modified.
func (in *Inspector) Stat(projection string) (Stat, error) {
	if cached, ok := in.cache.Get(projection); ok {
		return cached.(Stat), nil
	}

	by, ok := in.projections[projection]
	if !ok {
		return Stat{}, errors.Errorf("unknown projection: %q", projection)
	}

	glog.V(1).Infof("Computing %s statistics for %d matchups", projection, len(in.results))
	stat, err := Compute(in.results, in.n, by)
	if err != nil {
		return Stat{}, err
	}

	in.cache.Add(projection, stat)
	return stat, nil
}

// Normalized returns the bounded deviations of the named projection.
func (in *Inspector) Normalized(projection string, policy StandardPolicy) (Normalized, error) {
	stat, err := in.Stat(projection)
	if err != nil {
		return Normalized{}, err
	}

	return stat.Normalize(policy)
}

// Ranking ranks strategies by the named projection's row averages.
func (in *Inspector) Ranking(projection string) ([]Rank, error) {
	stat, err := in.Stat(projection)
	if err != nil {
		return nil, err
	}

	return Ranking(stat, in.names), nil
}
