package search

import (
	"math/rand/v2"

	"github.com/statlearn/modelselect/pkg/errors"
)

// Fold is one cross-validation split: record indices to train on and
// record indices held out for validation.
type Fold struct {
	Train    []int
	Validate []int
}

// Folds partitions n record indices into k folds: seeded shuffle, then
// contiguous slicing. The first n mod k folds take one extra record, so
// fold sizes differ by at most one. The same (n, k, seed) always yields
// the same partition.
func Folds(n, k int, seed int64) ([]Fold, error) {
	if k < 2 || k > n {
		return nil, errors.NewInvalidFoldCountError(k, n)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	r.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	folds := make([]Fold, k)
	base := n / k
	remainder := n % k

	start := 0
	for f := 0; f < k; f++ {
		size := base
		if f < remainder {
			size++
		}
		end := start + size

		validate := make([]int, size)
		copy(validate, indices[start:end])

		train := make([]int, 0, n-size)
		train = append(train, indices[:start]...)
		train = append(train, indices[end:]...)

		folds[f] = Fold{Train: train, Validate: validate}
		start = end
	}
	return folds, nil
}
