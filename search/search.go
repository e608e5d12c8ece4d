package search

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/statlearn/modelselect/core/model"
	"github.com/statlearn/modelselect/core/parallel"
	"github.com/statlearn/modelselect/dataset"
	"github.com/statlearn/modelselect/pkg/errors"
	"github.com/statlearn/modelselect/pkg/log"
)

// FitFunc trains a model on the given subset with one hyperparameter
// combination. seed makes stochastic fitters reproducible; deterministic
// fitters may ignore it. FitFunc must not share mutable state across
// calls: the engine invokes it concurrently.
type FitFunc func(train *dataset.Dataset, combo Combination, seed int64) (model.Model, error)

// ScoreFunc scores a fitted model on a held-out subset. The caller
// declares through WithDirection whether lower or higher is better.
type ScoreFunc func(m model.Model, validate *dataset.Dataset) (float64, error)

// Direction states how scores are compared.
type Direction int

const (
	// Minimize treats the score as a loss (misclassification rate, MSE).
	Minimize Direction = iota
	// Maximize treats the score as a gain (accuracy).
	Maximize
)

// Candidate is one hyperparameter combination with its cross-validated
// scores: the per-fold vector for variance inspection plus the mean the
// selection compares.
type Candidate struct {
	Params     Combination
	FoldScores []float64
	Mean       float64
	Std        float64
}

// Result is the full score table in grid-generation order plus the
// selected best candidate. BestModel is set only when WithRefit was
// requested.
type Result struct {
	Candidates []Candidate
	BestIndex  int
	BestModel  model.Model
}

// Best returns the selected candidate.
func (r *Result) Best() Candidate {
	return r.Candidates[r.BestIndex]
}

// Option configures a search.
type Option func(*config)

type config struct {
	direction  Direction
	complexity func(Combination) float64
	refit      bool
	workers    int
	logger     zerolog.Logger
}

// WithDirection sets the optimization direction. Default Minimize.
func WithDirection(d Direction) Option {
	return func(c *config) { c.direction = d }
}

// WithComplexity supplies a complexity ordering over combinations. When
// two candidates tie on mean score, the one with smaller complexity wins;
// without an ordering, ties keep the first-encountered candidate.
func WithComplexity(fn func(Combination) float64) Option {
	return func(c *config) { c.complexity = fn }
}

// WithRefit refits the winning combination on the full dataset and
// exposes the model on Result.BestModel. The refit model is the deployed
// artifact; the candidate scores remain the generalization estimate.
func WithRefit() Option {
	return func(c *config) { c.refit = true }
}

// WithWorkers caps the number of evaluation workers. Default NumCPU;
// 1 forces sequential evaluation.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithLogger attaches a structured logger to the search lifecycle.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Search evaluates every combination of grid over k cross-validation
// folds of ds and returns the full score table plus the best candidate.
//
// Evaluation cells (combination x fold) are independent and run in
// parallel; each result lands in a preallocated slot, so scheduling order
// never changes the outcome. The first fit or score error aborts the
// search: remaining cells are skipped best-effort and the error is
// returned as a CandidateEvaluationError naming the offending
// combination and fold. No partial Result is ever returned, because a
// comparison with missing candidates would be biased.
func Search(ds *dataset.Dataset, grid *Grid, fit FitFunc, score ScoreFunc, k int, seed int64, opts ...Option) (*Result, error) {
	cfg := config{logger: log.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	combos, err := grid.Combinations()
	if err != nil {
		return nil, err
	}
	folds, err := Folds(ds.Len(), k, seed)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug().
		Int("candidates", len(combos)).
		Int("folds", k).
		Int("records", ds.Len()).
		Int64("seed", seed).
		Msg("starting grid search")

	// Subsets are shared across combinations; Dataset is immutable so the
	// concurrent cells below can read them freely.
	trainSets := make([]*dataset.Dataset, k)
	validateSets := make([]*dataset.Dataset, k)
	for i, fold := range folds {
		trainSets[i] = ds.Subset(fold.Train)
		validateSets[i] = ds.Subset(fold.Validate)
	}

	cells := len(combos) * k
	scores := make([]float64, cells)

	var aborted atomic.Bool
	var once sync.Once
	var firstErr error
	fail := func(err error) {
		once.Do(func() { firstErr = err })
		aborted.Store(true)
	}

	parallel.ForN(cells, cfg.workers, func(start, end int) {
		for cell := start; cell < end; cell++ {
			if aborted.Load() {
				continue
			}
			ci, fi := cell/k, cell%k

			m, err := safeFit(fit, trainSets[fi], combos[ci], seed)
			if err != nil {
				fail(errors.NewCandidateEvaluationError(combos[ci], fi, "fit", err))
				continue
			}
			s, err := safeScore(score, m, validateSets[fi])
			if err != nil {
				fail(errors.NewCandidateEvaluationError(combos[ci], fi, "score", err))
				continue
			}
			scores[cell] = s
		}
	})

	if firstErr != nil {
		cfg.logger.Error().Stack().Err(firstErr).Msg("grid search aborted")
		return nil, firstErr
	}

	result := &Result{Candidates: make([]Candidate, len(combos))}
	for ci, combo := range combos {
		foldScores := scores[ci*k : (ci+1)*k]
		vec := make([]float64, k)
		copy(vec, foldScores)
		result.Candidates[ci] = Candidate{
			Params:     combo,
			FoldScores: vec,
			Mean:       stat.Mean(vec, nil),
			Std:        stat.StdDev(vec, nil),
		}
	}
	result.BestIndex = selectBest(result.Candidates, cfg)

	best := result.Best()
	cfg.logger.Info().
		Interface("params", best.Params).
		Float64("mean_score", best.Mean).
		Float64("std_score", best.Std).
		Msg("grid search complete")

	if cfg.refit {
		m, err := safeFit(fit, ds, best.Params, seed)
		if err != nil {
			return nil, errors.NewCandidateEvaluationError(best.Params, -1, "refit", err)
		}
		result.BestModel = m
	}
	return result, nil
}

// selectBest scans candidates in grid order. Strictly better mean wins;
// exact ties fall to the complexity ordering when one was supplied,
// otherwise the earlier candidate stands.
func selectBest(candidates []Candidate, cfg config) int {
	best := 0
	for i := 1; i < len(candidates); i++ {
		ci, cb := candidates[i], candidates[best]
		switch {
		case better(ci.Mean, cb.Mean, cfg.direction):
			best = i
		case ci.Mean == cb.Mean && cfg.complexity != nil:
			if cfg.complexity(ci.Params) < cfg.complexity(cb.Params) {
				best = i
			}
		}
	}
	return best
}

func better(a, b float64, d Direction) bool {
	if d == Maximize {
		return a > b
	}
	return a < b
}

// safeFit converts a panicking fit function into an error so one bad
// candidate aborts the search instead of the process.
func safeFit(fit FitFunc, train *dataset.Dataset, combo Combination, seed int64) (m model.Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("fit panicked: %v", r)
		}
	}()
	return fit(train, combo, seed)
}

func safeScore(score ScoreFunc, m model.Model, validate *dataset.Dataset) (s float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("score panicked: %v", r)
		}
	}()
	return score(m, validate)
}
