// Package baseline provides the degenerate reference models: a global
// mean for regression and a majority class for classification. They set
// the floor any real candidate must beat and make hyperparameter-blind
// sanity checks possible.
package baseline

import (
	"fmt"
	"sort"

	"github.com/statlearn/modelselect/core/model"
	"github.com/statlearn/modelselect/dataset"
	"github.com/statlearn/modelselect/pkg/errors"
)

// Mean predicts the training mean of a numeric response for every record.
type Mean struct {
	model.BaseEstimator
	mean float64
}

// NewMean creates an unfitted mean model.
func NewMean() *Mean {
	return &Mean{}
}

// Fit computes the training mean of the response.
func (m *Mean) Fit(ds *dataset.Dataset) error {
	var sum float64
	for i := 0; i < ds.Len(); i++ {
		label := ds.Label(i)
		if label.Kind != dataset.Numeric {
			return errors.Newf("baseline: Mean needs a numeric response, got categorical %q", label.Cat)
		}
		sum += label.Num
	}
	m.mean = sum / float64(ds.Len())
	m.SetFitted()
	return nil
}

// Predict returns the training mean regardless of the record.
func (m *Mean) Predict(dataset.Record) (dataset.Value, error) {
	if !m.IsFitted() {
		return dataset.Value{}, errors.NewNotFittedError("Mean", "Predict")
	}
	return dataset.Num(m.mean), nil
}

// Explain reports the constant the model predicts.
func (m *Mean) Explain() model.Summary {
	return model.Summary{
		Family:     "mean",
		Complexity: 1,
		Detail:     fmt.Sprintf("constant prediction %.6g", m.mean),
	}
}

var _ model.Model = (*Mean)(nil)

// Majority predicts the most frequent training class for every record.
type Majority struct {
	model.BaseEstimator
	label string
}

// NewMajority creates an unfitted majority-class model.
func NewMajority() *Majority {
	return &Majority{}
}

// Fit counts classes; ties go to the lexicographically smallest label so
// fitting is deterministic.
func (m *Majority) Fit(ds *dataset.Dataset) error {
	counts := make(map[string]int)
	for i := 0; i < ds.Len(); i++ {
		label := ds.Label(i)
		if label.Kind != dataset.Categorical {
			return errors.Newf("baseline: Majority needs a categorical response, got numeric %g", label.Num)
		}
		counts[label.Cat]++
	}

	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	best := labels[0]
	for _, l := range labels[1:] {
		if counts[l] > counts[best] {
			best = l
		}
	}
	m.label = best
	m.SetFitted()
	return nil
}

// Predict returns the majority class regardless of the record.
func (m *Majority) Predict(dataset.Record) (dataset.Value, error) {
	if !m.IsFitted() {
		return dataset.Value{}, errors.NewNotFittedError("Majority", "Predict")
	}
	return dataset.Cat(m.label), nil
}

// Explain reports the class the model predicts.
func (m *Majority) Explain() model.Summary {
	return model.Summary{
		Family:     "majority",
		Complexity: 1,
		Detail:     fmt.Sprintf("constant prediction %q", m.label),
	}
}

var _ model.Model = (*Majority)(nil)
