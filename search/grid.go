// Package search implements deterministic k-fold cross-validated grid
// search over hyperparameter combinations, with pluggable fit and score
// functions. It is the selection engine behind tree pruning sweeps and
// kernel-model cost/gamma grids alike.
package search

import (
	"github.com/statlearn/modelselect/pkg/errors"
)

// Combination assigns one value to every parameter name in a grid.
type Combination map[string]interface{}

// Float returns the named parameter as a float64, coercing ints.
// It panics on absent names or non-numeric values; combinations are
// produced by the grid the caller declared, so a miss is a caller bug.
func (c Combination) Float(name string) float64 {
	switch v := c[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		panic(errors.Newf("search: parameter %q is not numeric (got %T)", name, c[name]))
	}
}

// Int returns the named parameter as an int.
func (c Combination) Int(name string) int {
	switch v := c[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		panic(errors.Newf("search: parameter %q is not numeric (got %T)", name, c[name]))
	}
}

// Grid is an ordered set of parameters, each with an ordered non-empty
// sequence of candidate values. The search space is the Cartesian
// product of all value sequences.
type Grid struct {
	names  []string
	values [][]interface{}
}

// NewGrid creates an empty grid. Parameters keep declaration order: the
// first Add varies slowest during enumeration.
func NewGrid() *Grid {
	return &Grid{}
}

// Add appends a parameter with its candidate values and returns the grid
// for chaining. Validation happens in Combinations so a malformed grid
// fails the search, not the declaration.
func (g *Grid) Add(name string, values ...interface{}) *Grid {
	g.names = append(g.names, name)
	g.values = append(g.values, values)
	return g
}

// AddFloats appends a parameter whose candidates are float64 values.
func (g *Grid) AddFloats(name string, values ...float64) *Grid {
	cast := make([]interface{}, len(values))
	for i, v := range values {
		cast[i] = v
	}
	return g.Add(name, cast...)
}

// AddInts appends a parameter whose candidates are int values.
func (g *Grid) AddInts(name string, values ...int) *Grid {
	cast := make([]interface{}, len(values))
	for i, v := range values {
		cast[i] = v
	}
	return g.Add(name, cast...)
}

// Names returns the parameter names in declaration order.
func (g *Grid) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Size returns the number of combinations in the Cartesian product.
func (g *Grid) Size() int {
	if len(g.names) == 0 {
		return 0
	}
	size := 1
	for _, vs := range g.values {
		size *= len(vs)
	}
	return size
}

func (g *Grid) validate() error {
	if len(g.names) == 0 {
		return errors.NewInvalidGridError("", "grid declares no parameters")
	}
	seen := make(map[string]bool, len(g.names))
	for i, name := range g.names {
		if seen[name] {
			return errors.NewInvalidGridError(name, "parameter declared twice")
		}
		seen[name] = true
		if len(g.values[i]) == 0 {
			return errors.NewInvalidGridError(name, "no candidate values")
		}
	}
	return nil
}

// Combinations enumerates the Cartesian product in grid-generation order:
// the leftmost (first declared) parameter varies slowest.
func (g *Grid) Combinations() ([]Combination, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	combos := make([]Combination, 0, g.Size())
	idx := make([]int, len(g.names))
	for {
		combo := make(Combination, len(g.names))
		for i, name := range g.names {
			combo[name] = g.values[i][idx[i]]
		}
		combos = append(combos, combo)

		// Odometer increment, rightmost digit fastest.
		pos := len(idx) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(g.values[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return combos, nil
		}
	}
}
