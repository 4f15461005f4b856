// Package charts renders the dashboard's allocation charts to PNG files.
package charts

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/knayak/nivesh"
)

// palette is applied to slices and bars in asset order.
var palette = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 255, G: 127, B: 14, A: 255},
	color.RGBA{R: 44, G: 160, B: 44, A: 255},
	color.RGBA{R: 214, G: 39, B: 40, A: 255},
	color.RGBA{R: 148, G: 103, B: 189, A: 255},
	color.RGBA{R: 140, G: 86, B: 75, A: 255},
}

// slice is one pie wedge.
type slice struct {
	label string
	value float64
}

func slices(p *nivesh.Portfolio) ([]slice, float64) {
	var out []slice
	var total float64
	for _, a := range p.Assets() {
		v := a.Allocation.Float64()
		out = append(out, slice{label: a.Name, value: v})
		total += v
	}
	return out, total
}

// SavePie renders the capital allocation pie chart to a PNG file.
// It fails when all allocations are zero, since there is nothing to draw.
func SavePie(path, title string, p *nivesh.Portfolio) error {
	sl, total := slices(p)
	if total <= 0 {
		return fmt.Errorf("cannot draw a pie chart: all allocations are zero")
	}

	plt := plot.New()
	plt.Title.Text = title
	plt.Add(&pieChart{slices: sl, total: total})
	plt.HideAxes()

	for i, s := range sl {
		if s.value <= 0 {
			continue
		}
		plt.Legend.Add(fmt.Sprintf("%s (%.2f%%)", s.label, s.value), thumb{palette[i%len(palette)]})
	}
	plt.Legend.Top = true
	plt.Legend.Left = true

	if err := plt.Save(7*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("cannot save pie chart to %q: %w", path, err)
	}
	return nil
}

// pieChart draws the allocation wedges clockwise from noon.
type pieChart struct {
	slices []slice
	total  float64
}

func (pc *pieChart) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	center := vg.Point{X: trX(0), Y: trY(0)}
	radius := vg.Length(math.Min(float64(trX(1)-trX(0)), float64(trY(1)-trY(0))))

	c.SetLineWidth(vg.Points(0.5))
	start := math.Pi / 2
	for i, s := range pc.slices {
		if s.value <= 0 {
			continue
		}
		angle := -2 * math.Pi * s.value / pc.total

		var path vg.Path
		path.Move(center)
		path.Arc(center, radius, start, angle)
		path.Close()

		c.SetColor(palette[i%len(palette)])
		c.Fill(path)
		c.SetColor(color.White)
		c.Stroke(path)

		start += angle
	}
}

// DataRange gives the pie a fixed square domain around the origin.
func (pc *pieChart) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1, 1, -1, 1
}

// thumb is a solid color legend swatch.
type thumb struct {
	color.Color
}

func (t thumb) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(t.Color, pts)
}

// SaveBar renders a horizontal bar chart of allocations to a PNG file,
// largest bar on top.
func SaveBar(path, title string, p *nivesh.Portfolio) error {
	assets := p.Assets()
	if len(assets) == 0 {
		return fmt.Errorf("cannot draw a bar chart: the portfolio is empty")
	}

	// NominalY lays labels out bottom-up, so reverse to put the first asset on top.
	values := make(plotter.Values, len(assets))
	names := make([]string, len(assets))
	for i, a := range assets {
		j := len(assets) - 1 - i
		values[j] = a.Allocation.Float64()
		names[j] = a.Name
	}

	plt := plot.New()
	plt.Title.Text = title
	plt.X.Label.Text = "Allocation (%)"

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("cannot build bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = palette[0]
	plt.Add(bars)
	plt.NominalY(names...)

	if err := plt.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("cannot save bar chart to %q: %w", path, err)
	}
	return nil
}
