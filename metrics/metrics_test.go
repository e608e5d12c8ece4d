package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/statlearn/modelselect/dataset"
)

func TestMSE(t *testing.T) {
	t.Run("constant offset", func(t *testing.T) {
		n := 10
		yTrue := mat.NewVecDense(n, nil)
		yPred := mat.NewVecDense(n, nil)
		for i := 0; i < n; i++ {
			yTrue.SetVec(i, float64(i))
			yPred.SetVec(i, float64(i)+0.5)
		}

		mse, err := MSE(yTrue, yPred)
		require.NoError(t, err)
		assert.InDelta(t, 0.25, mse, 1e-12)
	})

	t.Run("empty vector", func(t *testing.T) {
		_, err := MSE(new(mat.VecDense), mat.NewVecDense(1, nil))
		assert.Error(t, err)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := MSE(mat.NewVecDense(3, nil), mat.NewVecDense(2, nil))
		assert.Error(t, err)
	})
}

func TestRMSEAndSSE(t *testing.T) {
	n := 4
	yTrue := mat.NewVecDense(n, []float64{1, 2, 3, 4})
	yPred := mat.NewVecDense(n, []float64{2, 3, 4, 5})

	rmse, err := RMSE(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rmse, 1e-12)

	sse, err := SSE(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, sse, 1e-12)
}

func TestMAE(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{0, 0, 0})
	yPred := mat.NewVecDense(3, []float64{-1, 2, -3})

	mae, err := MAE(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, mae, 1e-12)
}

func TestAccuracy(t *testing.T) {
	t.Run("categorical labels", func(t *testing.T) {
		yTrue := []dataset.Value{dataset.Cat("High"), dataset.Cat("Low"), dataset.Cat("High"), dataset.Cat("Low")}
		yPred := []dataset.Value{dataset.Cat("High"), dataset.Cat("High"), dataset.Cat("High"), dataset.Cat("Low")}

		acc, err := Accuracy(yTrue, yPred)
		require.NoError(t, err)
		assert.InDelta(t, 0.75, acc, 1e-12)

		mis, err := MisclassificationRate(yTrue, yPred)
		require.NoError(t, err)
		assert.InDelta(t, 0.25, mis, 1e-12)
	})

	t.Run("kind mismatch counts as miss", func(t *testing.T) {
		yTrue := []dataset.Value{dataset.Cat("1")}
		yPred := []dataset.Value{dataset.Num(1)}

		acc, err := Accuracy(yTrue, yPred)
		require.NoError(t, err)
		assert.Equal(t, 0.0, acc)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Accuracy(nil, nil)
		assert.Error(t, err)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Accuracy([]dataset.Value{dataset.Num(1)}, nil)
		assert.Error(t, err)
	})
}
