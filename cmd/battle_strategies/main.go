// Play every strategy against every other strategy and report how they fared.
package main

import (
	"context"
	"flag"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/timpalpant/ipd"
	"github.com/timpalpant/ipd/export"
	"github.com/timpalpant/ipd/internal/store"
	"github.com/timpalpant/ipd/matrixgame"
	"github.com/timpalpant/ipd/stats"
	"github.com/timpalpant/ipd/strategies"
)

type RunParams struct {
	Tournament ipd.TournamentParams
	Families   string
	Projection string
	Output     OutputParams
	MetaGame   MetaGameParams
	DebugAddr  string
}

type OutputParams struct {
	CSV     string
	Archive string
	DB      string
}

type MetaGameParams struct {
	NumIter      int
	MixingLambda float64
}

func main() {
	// Settings in .env are used as flag defaults. It is fine if there is none.
	envErr := godotenv.Load()

	defaults := ipd.DefaultTournamentParams()
	var params RunParams
	flag.IntVar(&params.Tournament.NumRounds, "rounds",
		envInt("IPD_ROUNDS", defaults.NumRounds), "Number of rounds in each match")
	flag.Int64Var(&params.Tournament.Seed, "seed",
		int64(envInt("IPD_SEED", int(defaults.Seed))), "Random seed")
	flag.IntVar(&params.Tournament.MaxParallel, "parallel",
		envInt("IPD_PARALLEL", defaults.MaxParallel), "Maximum number of matches to play in parallel")
	flag.StringVar(&params.Families, "families", os.Getenv("IPD_FAMILIES"),
		"Comma-separated strategy families to enter (classic, continuous, detente). Default: all")
	flag.StringVar(&params.Projection, "projection", "difference_per_round",
		"Statistic used to rank strategies")
	flag.StringVar(&params.Output.CSV, "csv", "", "File to write raw results to as CSV")
	flag.StringVar(&params.Output.Archive, "output", "", "File to save raw results to (gzipped gob)")
	flag.StringVar(&params.Output.DB, "db", os.Getenv("IPD_DB"), "SQLite database to record the run in")
	flag.IntVar(&params.MetaGame.NumIter, "metagame.iter", 100000,
		"Number of fictitious play iterations for the meta-game equilibrium (0 to skip)")
	flag.Float64Var(&params.MetaGame.MixingLambda, "metagame.lambda", 0.0,
		"Probability of a random choice in each fictitious play iteration")
	flag.StringVar(&params.DebugAddr, "debug_addr", "localhost:4123", "Address to serve pprof and expvar on")
	flag.Parse()

	if envErr != nil && !os.IsNotExist(envErr) {
		glog.Warningf("Unable to load .env: %v", envErr)
	}

	if params.DebugAddr != "" {
		go http.ListenAndServe(params.DebugAddr, nil)
	}

	catalog, err := strategies.Select(splitList(params.Families))
	if err != nil {
		glog.Fatal(err)
	}

	glog.Infof("Running %d strategies", len(catalog))
	results, err := ipd.RunTournament(params.Tournament, catalog)
	if err != nil {
		glog.Fatal(err)
	}

	glog.Info("Processing results")
	report(params, results, len(catalog))
	if err := save(params, results, len(catalog)); err != nil {
		glog.Fatal(err)
	}
	glog.Info("Done!")
}

func report(params RunParams, results []ipd.MatchupResult, n int) {
	projections := stats.DefaultProjections(params.Tournament.NumRounds)
	inspector, err := stats.NewInspector(results, n, projections, len(projections))
	if err != nil {
		glog.Fatal(err)
	}

	ranking, err := inspector.Ranking(params.Projection)
	if err != nil {
		glog.Fatal(err)
	}

	normalized, err := inspector.Normalized(params.Projection, stats.SeriesMean)
	if err != nil {
		glog.Fatal(err)
	}

	glog.Infof("Ranking by %s (average %.3f):", params.Projection, normalized.RowStandard)
	for i, rank := range ranking {
		glog.Infof("%3d. %-35s %+8.3f (%+.2f)", i+1, rank.Name, rank.Average,
			normalized.Rows[rank.Index])
	}

	if params.MetaGame.NumIter <= 0 {
		return
	}

	stat, err := inspector.Stat("difference")
	if err != nil {
		glog.Fatal(err)
	}

	rng := rand.New(rand.NewSource(params.Tournament.Seed))
	payoffs := stats.Matrix(stat)
	firstPolicy, secondPolicy := matrixgame.FictitiousPlay(payoffs,
		params.MetaGame.NumIter, params.MetaGame.MixingLambda, rng)
	glog.Infof("Meta-game equilibrium (value %+.3f):",
		matrixgame.ExpectedPayoff(payoffs, firstPolicy, secondPolicy))
	for i, name := range inspector.Names() {
		if firstPolicy[i] > 0.01 || secondPolicy[i] > 0.01 {
			glog.Infof("  %-35s %.3f as first, %.3f as second", name, firstPolicy[i], secondPolicy[i])
		}
	}
}

func save(params RunParams, results []ipd.MatchupResult, n int) error {
	if params.Output.CSV != "" {
		glog.Infof("Writing results to %v", params.Output.CSV)
		if err := writeCSV(params.Output.CSV, results); err != nil {
			return err
		}
	}

	if params.Output.Archive != "" {
		glog.Infof("Saving results to %v", params.Output.Archive)
		if err := export.SaveResults(params.Output.Archive, results); err != nil {
			return err
		}
	}

	if params.Output.DB != "" {
		run := &store.Run{
			NumRounds:     params.Tournament.NumRounds,
			Seed:          params.Tournament.Seed,
			NumStrategies: n,
			Results:       results,
		}
		if err := recordRun(params.Output.DB, run); err != nil {
			return err
		}
		glog.Infof("Recorded run %v in %v", run.ID, params.Output.DB)
	}

	return nil
}

func writeCSV(filename string, results []ipd.MatchupResult) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteCSV(f, results); err != nil {
		return errors.Wrapf(err, "writing %v", filename)
	}

	return f.Close()
}

func recordRun(path string, run *store.Run) error {
	db, err := store.NewSQLiteDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	return db.SaveRun(context.Background(), run)
}

func envInt(key string, defaultValue int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		glog.Warningf("Ignoring invalid %s=%q: %v", key, s, err)
		return defaultValue
	}

	return v
}

func splitList(s string) []string {
	var result []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}
