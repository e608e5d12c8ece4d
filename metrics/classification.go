package metrics

import (
	"github.com/statlearn/modelselect/dataset"
	"github.com/statlearn/modelselect/pkg/errors"
)

// Accuracy computes the fraction of predictions equal to the truth.
func Accuracy(yTrue, yPred []dataset.Value) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty labels")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("Accuracy", n, len(yPred))
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i].Equal(yPred[i]) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// MisclassificationRate computes 1 - Accuracy, the pruning criterion for
// classification trees.
func MisclassificationRate(yTrue, yPred []dataset.Value) (float64, error) {
	acc, err := Accuracy(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - acc, nil
}
