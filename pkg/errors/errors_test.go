package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidGridError(t *testing.T) {
	err := NewInvalidGridError("cost", "no candidate values")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parameter "cost"`)
	assert.Contains(t, err.Error(), "no candidate values")

	var gridErr *InvalidGridError
	require.True(t, As(err, &gridErr))
	assert.Equal(t, "cost", gridErr.Param)
}

func TestInvalidFoldCountError(t *testing.T) {
	err := NewInvalidFoldCountError(1, 400)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "k=1")
	assert.Contains(t, err.Error(), "400 records")

	var foldErr *InvalidFoldCountError
	require.True(t, As(err, &foldErr))
	assert.Equal(t, 1, foldErr.K)
	assert.Equal(t, 400, foldErr.NRecords)
}

func TestCandidateEvaluationError(t *testing.T) {
	cause := New("singular kernel matrix")
	combo := map[string]interface{}{"cost": 10.0, "gamma": 0.5}

	err := NewCandidateEvaluationError(combo, 3, "fit", cause)
	require.Error(t, err)

	var evalErr *CandidateEvaluationError
	require.True(t, As(err, &evalErr))
	assert.Equal(t, 3, evalErr.Fold)
	assert.Equal(t, "fit", evalErr.Stage)
	assert.Equal(t, combo, evalErr.Combination)

	// The cause stays reachable through the chain.
	assert.True(t, Is(err, cause))
}

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("Tree", "Predict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tree")
	assert.Contains(t, err.Error(), "Predict()")
}

func TestWrapPreservesType(t *testing.T) {
	err := NewDimensionError("Accuracy", 10, 7)
	wrapped := Wrap(err, "scoring fold 2")

	var dimErr *DimensionError
	require.True(t, As(wrapped, &dimErr))
	assert.Equal(t, 10, dimErr.Expected)
	assert.Equal(t, 7, dimErr.Got)
}
