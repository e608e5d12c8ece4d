// Package dataset defines the record-oriented data model shared by the
// search engine and the model families. A Dataset is immutable once
// constructed: subsetting copies indices, never records.
package dataset

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/statlearn/modelselect/pkg/errors"
)

// Kind discriminates the two value kinds a feature can hold.
type Kind int

const (
	// Numeric marks a continuous value.
	Numeric Kind = iota
	// Categorical marks a discrete label value.
	Categorical
)

// Value is a single cell: a numeric measurement or a categorical label.
type Value struct {
	Kind Kind
	Num  float64
	Cat  string
}

// Num constructs a numeric value.
func Num(v float64) Value {
	return Value{Kind: Numeric, Num: v}
}

// Cat constructs a categorical value.
func Cat(label string) Value {
	return Value{Kind: Categorical, Cat: label}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind == Numeric {
		return v.Num == o.Num
	}
	return v.Cat == o.Cat
}

// Record is one observation: feature name to value, including the response.
type Record map[string]Value

// Dataset is an ordered sequence of records with a designated response
// field. Records are shared, not copied; callers must not mutate them
// after construction.
type Dataset struct {
	records  []Record
	response string
}

// New builds a dataset from records and the response field name.
// Every record must carry the response field.
func New(records []Record, response string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	for i, rec := range records {
		if _, ok := rec[response]; !ok {
			return nil, errors.Newf("dataset: record %d is missing response field %q", i, response)
		}
	}
	return &Dataset{records: records, response: response}, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Response returns the designated response field name.
func (d *Dataset) Response() string {
	return d.response
}

// Record returns the record at index i.
func (d *Dataset) Record(i int) Record {
	return d.records[i]
}

// Label returns the response value of record i.
func (d *Dataset) Label(i int) Value {
	return d.records[i][d.response]
}

// Subset returns a dataset holding the records at the given indices, in
// the given order. The record slice is fresh; the records are shared.
func (d *Dataset) Subset(indices []int) *Dataset {
	recs := make([]Record, len(indices))
	for i, idx := range indices {
		recs[i] = d.records[idx]
	}
	return &Dataset{records: recs, response: d.response}
}

// FeatureNames returns the sorted names of all non-response fields seen
// in the first record. A fixed order keeps Matrix deterministic.
func (d *Dataset) FeatureNames() []string {
	names := make([]string, 0, len(d.records[0])-1)
	for name := range d.records[0] {
		if name != d.response {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Matrix converts the numeric features to a design matrix and the
// response to a column vector, in FeatureNames order. Categorical
// features and categorical responses are rejected; recode them first.
func (d *Dataset) Matrix() (*mat.Dense, *mat.VecDense, error) {
	names := d.FeatureNames()
	if len(names) == 0 {
		return nil, nil, errors.Newf("dataset: no features besides response %q", d.response)
	}
	n := len(d.records)
	x := mat.NewDense(n, len(names), nil)
	y := mat.NewVecDense(n, nil)

	for i, rec := range d.records {
		for j, name := range names {
			v, ok := rec[name]
			if !ok {
				return nil, nil, errors.Wrapf(errors.ErrUnknownFeature, "record %d field %q", i, name)
			}
			if v.Kind != Numeric {
				return nil, nil, errors.Newf("dataset: field %q is categorical; recode before Matrix()", name)
			}
			x.Set(i, j, v.Num)
		}
		label := rec[d.response]
		if label.Kind != Numeric {
			return nil, nil, errors.Newf("dataset: response %q is categorical; recode before Matrix()", d.response)
		}
		y.SetVec(i, label.Num)
	}
	return x, y, nil
}

// Binarize returns a copy of the dataset whose numeric response is recoded
// into the two labels: above for values strictly greater than threshold,
// below otherwise. Mirrors recoding a sales figure into High/Low before
// classification.
func (d *Dataset) Binarize(threshold float64, above, below string) (*Dataset, error) {
	recs := make([]Record, len(d.records))
	for i, rec := range d.records {
		label := rec[d.response]
		if label.Kind != Numeric {
			return nil, errors.Newf("dataset: response %q is already categorical", d.response)
		}
		clone := make(Record, len(rec))
		for k, v := range rec {
			clone[k] = v
		}
		if label.Num > threshold {
			clone[d.response] = Cat(above)
		} else {
			clone[d.response] = Cat(below)
		}
		recs[i] = clone
	}
	return &Dataset{records: recs, response: d.response}, nil
}
