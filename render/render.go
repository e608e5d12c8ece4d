// Package render draws cross-validation results: mean score against a
// single swept hyperparameter, the error-versus-tree-size picture used to
// read a pruning sweep.
package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/statlearn/modelselect/pkg/errors"
	"github.com/statlearn/modelselect/search"
)

// ScoreCurve plots the mean cross-validated score of every candidate
// against the named numeric parameter, in grid-generation order. The
// parameter must be numeric in every combination.
func ScoreCurve(result *search.Result, param, scoreLabel string) (*plot.Plot, error) {
	if len(result.Candidates) == 0 {
		return nil, errors.NewValueError("render.ScoreCurve", "no candidates")
	}

	pts := make(plotter.XYs, len(result.Candidates))
	for i, c := range result.Candidates {
		x, err := numericParam(c.Params, param)
		if err != nil {
			return nil, err
		}
		pts[i].X = x
		pts[i].Y = c.Mean
	}

	p := plot.New()
	p.Title.Text = "cross-validated score"
	p.X.Label.Text = param
	p.Y.Label.Text = scoreLabel

	if err := plotutil.AddLinePoints(p, scoreLabel, pts); err != nil {
		return nil, errors.Wrap(err, "render: adding score curve")
	}
	return p, nil
}

// SavePNG writes the plot to path at a fixed 6x4 inch size.
func SavePNG(p *plot.Plot, path string) error {
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "render: saving %s", path)
	}
	return nil
}

func numericParam(c search.Combination, name string) (float64, error) {
	switch v := c[name].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, errors.Newf("render: parameter %q is not numeric (got %T)", name, c[name])
	}
}
