// Package modelselect provides cross-validated hyperparameter selection
// for statistical-learning models: a deterministic k-fold grid search
// engine with pluggable fit and score functions, plus the model families
// and metrics the selection is typically run over.
//
// # Layout
//
//   - search: the grid search engine (folds, grids, candidates, selection)
//   - dataset: immutable record-oriented datasets with gonum conversion
//   - tree: decision-tree prediction and cost-complexity pruning
//   - baseline: global-mean and majority-class reference models
//   - metrics: classification and regression scores
//   - render: score-versus-parameter plots
//
// # Quick start
//
// Sweep a tree's terminal node count over 10 folds and keep the smallest
// size with the lowest held-out misclassification rate:
//
//	grid := search.NewGrid().AddInts("size", 2, 3, 4, 5)
//	fit := func(_ *dataset.Dataset, c search.Combination, _ int64) (model.Model, error) {
//	    return reference.Prune(c.Int("size"))
//	}
//	result, err := search.Search(ds, grid, fit, score, 10, 3,
//	    search.WithComplexity(func(c search.Combination) float64 { return c.Float("size") }))
//
// The result holds every candidate's per-fold scores in grid order, so
// the full trade-off curve can be inspected or rendered, not just the
// selected best.
package modelselect
