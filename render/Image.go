package render

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/gridworlds/environment/gridworld"
)

// Image draws v as an image with square cells of cellSize pixels. The
// agent is drawn as a circle with a line pointing in the direction of
// the last action. If values is non-nil, it must hold one value per
// state, and open cells are shaded and labelled by their value.
func Image(v Viewer, values []float64, cellSize int) (image.Image, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("image: cell size %d must be positive",
			cellSize)
	}
	if err := checkValues(v, values); err != nil {
		return nil, fmt.Errorf("image: %v", err)
	}

	rows, cols := v.Dims()
	size := float64(cellSize)
	dc := gg.NewContext(cols*cellSize, rows*cellSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	lo, hi := valueRange(values)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x, y := float64(c)*size, float64(r)*size

			kind := v.Kind(r, c)
			switch kind {
			case gridworld.Terminal:
				dc.SetRGB(0.85, 0.2, 0.2)
			case gridworld.Goal:
				dc.SetRGB(0.2, 0.75, 0.3)
			case gridworld.Illegal:
				dc.SetRGB(0.3, 0.3, 0.3)
			case gridworld.Hazard:
				dc.SetRGB(1.0, 0.6, 0.1)
			default:
				shade := 1.0
				if values != nil && hi > lo {
					value := values[r*cols+c]
					if !math.IsNaN(value) {
						shade = 0.5 + 0.5*(value-lo)/(hi-lo)
					}
				}
				dc.SetRGB(shade, shade, 1.0)
			}
			dc.DrawRectangle(x, y, size, size)
			dc.Fill()

			dc.SetRGB(0, 0, 0)
			dc.SetLineWidth(1)
			dc.DrawRectangle(x, y, size, size)
			dc.Stroke()

			if values != nil && kind != gridworld.Illegal {
				label := fmt.Sprintf("%.2f", values[r*cols+c])
				dc.DrawStringAnchored(label, x+size/2, y+size*0.85, 0.5, 0)
			}
		}
	}

	pos := v.Position()
	cx := (float64(pos.Col) + 0.5) * size
	cy := (float64(pos.Row) + 0.5) * size
	dc.SetRGB(0, 0, 1)
	dc.DrawCircle(cx, cy, size/5)
	dc.Fill()

	if dx, dy, ok := direction(v.LastAction()); ok {
		dc.SetLineWidth(math.Max(1, size/20))
		dc.DrawLine(cx, cy, cx+dx*size*0.4, cy+dy*size*0.4)
		dc.Stroke()
	}

	return dc.Image(), nil
}

// SavePNG draws v with Image and saves the result as a PNG file
func SavePNG(v Viewer, values []float64, cellSize int, path string) error {
	img, err := Image(v, values, cellSize)
	if err != nil {
		return fmt.Errorf("savePNG: %w", err)
	}
	return gg.SavePNG(path, img)
}

// direction returns the unit direction of action in image coordinates
func direction(action int) (dx, dy float64, ok bool) {
	switch action {
	case gridworld.Up:
		return 0, -1, true
	case gridworld.Right:
		return 1, 0, true
	case gridworld.Down:
		return 0, 1, true
	case gridworld.Left:
		return -1, 0, true
	}
	return 0, 0, false
}
