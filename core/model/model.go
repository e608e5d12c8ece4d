// Package model defines the capability interface every fitted model
// exposes to the search engine and its callers. Concrete families (trees,
// ensembles, baselines, kernel models) implement Model; nothing here is
// dispatched dynamically by model name.
package model

import (
	"github.com/statlearn/modelselect/dataset"
)

// Model is a fitted model. Predict maps one record to a prediction;
// Explain reports what the model is, for tables and tie-breaking.
type Model interface {
	Predict(rec dataset.Record) (dataset.Value, error)
	Explain() Summary
}

// Summary describes a fitted model without exposing its internals.
type Summary struct {
	// Family names the model family, e.g. "tree" or "majority".
	Family string
	// Complexity is a family-specific size measure (terminal nodes for a
	// tree, member count for an ensemble). Zero when meaningless.
	Complexity int
	// Detail is a short human-readable description.
	Detail string
}

// PredictAll runs Predict over every record of a dataset.
func PredictAll(m Model, ds *dataset.Dataset) ([]dataset.Value, error) {
	out := make([]dataset.Value, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		v, err := m.Predict(ds.Record(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
