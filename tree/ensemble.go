package tree

import (
	"fmt"
	"sort"

	"github.com/statlearn/modelselect/core/model"
	"github.com/statlearn/modelselect/dataset"
	"github.com/statlearn/modelselect/pkg/errors"
)

// Task selects how an ensemble combines member predictions.
type Task int

const (
	// Regression averages numeric member predictions.
	Regression Task = iota
	// Classification takes a majority vote over categorical predictions.
	Classification
)

// Ensemble combines pre-built models: averaged predictions for
// regression, majority vote for classification. This is the prediction
// surface of a bagged forest; training the members is out of scope.
type Ensemble struct {
	Members []model.Model
	Task    Task
}

// NewEnsemble wraps a non-empty member list.
func NewEnsemble(task Task, members ...model.Model) (*Ensemble, error) {
	if len(members) == 0 {
		return nil, errors.NewValueError("tree.NewEnsemble", "no members")
	}
	return &Ensemble{Members: members, Task: task}, nil
}

// Predict combines the member predictions for one record.
func (e *Ensemble) Predict(rec dataset.Record) (dataset.Value, error) {
	if e.Task == Regression {
		var sum float64
		for _, m := range e.Members {
			v, err := m.Predict(rec)
			if err != nil {
				return dataset.Value{}, err
			}
			if v.Kind != dataset.Numeric {
				return dataset.Value{}, errors.Newf("tree: regression ensemble member predicted a categorical value")
			}
			sum += v.Num
		}
		return dataset.Num(sum / float64(len(e.Members))), nil
	}

	votes := make(map[string]int)
	for _, m := range e.Members {
		v, err := m.Predict(rec)
		if err != nil {
			return dataset.Value{}, err
		}
		if v.Kind != dataset.Categorical {
			return dataset.Value{}, errors.Newf("tree: classification ensemble member predicted a numeric value")
		}
		votes[v.Cat]++
	}
	return dataset.Cat(majority(votes)), nil
}

// Explain reports the ensemble size as its complexity.
func (e *Ensemble) Explain() model.Summary {
	kind := "averaging"
	if e.Task == Classification {
		kind = "voting"
	}
	return model.Summary{
		Family:     "ensemble",
		Complexity: len(e.Members),
		Detail:     fmt.Sprintf("%s ensemble of %d members", kind, len(e.Members)),
	}
}

var _ model.Model = (*Ensemble)(nil)

// majority returns the label with the most votes; ties go to the
// lexicographically smallest label so prediction is deterministic.
func majority(votes map[string]int) string {
	labels := make([]string, 0, len(votes))
	for l := range votes {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	best := labels[0]
	for _, l := range labels[1:] {
		if votes[l] > votes[best] {
			best = l
		}
	}
	return best
}
