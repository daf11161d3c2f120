package render

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gridworlds/environment/gridworld"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// valueGrid adapts per-state values to a plotter.GridXYZ. Row 0 of the
// gridworld is drawn at the top of the plot.
type valueGrid struct {
	values *mat.Dense
}

var _ plotter.GridXYZ = valueGrid{}

func (g valueGrid) Dims() (c, r int) {
	r, c = g.values.Dims()
	return c, r
}

func (g valueGrid) Z(c, r int) float64 {
	rows, _ := g.values.Dims()
	return g.values.At(rows-1-r, c)
}

func (g valueGrid) X(c int) float64 {
	return float64(c)
}

func (g valueGrid) Y(r int) float64 {
	return float64(r)
}

func (g valueGrid) Min() float64 {
	lo, _ := valueRange(g.values.RawMatrix().Data)
	return lo
}

func (g valueGrid) Max() float64 {
	_, hi := valueRange(g.values.RawMatrix().Data)
	return hi
}

// Heatmap returns a heat map plot of values, which must hold one value
// per state of v. Illegal cells are left blank.
func Heatmap(v Viewer, values []float64, title string) (*plot.Plot, error) {
	if values == nil {
		return nil, fmt.Errorf("heatmap: no values")
	}
	if err := checkValues(v, values); err != nil {
		return nil, fmt.Errorf("heatmap: %v", err)
	}
	lo, hi := valueRange(values)
	if math.IsInf(lo, 0) || lo == hi {
		return nil, fmt.Errorf("heatmap: values must span a non-empty range")
	}

	rows, cols := v.Dims()
	grid := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			value := values[r*cols+c]
			if v.Kind(r, c) == gridworld.Illegal {
				value = math.NaN()
			}
			grid.Set(r, c, value)
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row (from bottom)"
	p.Add(plotter.NewHeatMap(valueGrid{grid}, palette.Heat(12, 1)))
	return p, nil
}

// SaveHeatmap draws the heat map of values and saves it to path. The
// image format is chosen from the extension of path.
func SaveHeatmap(v Viewer, values []float64, title, path string) error {
	p, err := Heatmap(v, values, title)
	if err != nil {
		return fmt.Errorf("saveHeatmap: %w", err)
	}
	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}
