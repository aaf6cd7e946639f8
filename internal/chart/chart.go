// Package chart draws trajectory charts: a PNG image with the velocity and
// drop curves and a text plot for terminals.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/gehtsoft-usa/go_shotcalc"
	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
	"github.com/gehtsoft-usa/go_shotcalc/internal/report"
)

// Size of the PNG image.
const (
	Width  = 6 * vg.Inch
	Height = 6 * vg.Inch
)

// ErrNoData is returned for a result without samples.
var ErrNoData = errors.New("chart: trajectory has no data")

func series(result go_shotcalc.TrajectoryResult) (velocity, drop plotter.XYs) {
	samples := result.Samples()
	velocity = make(plotter.XYs, len(samples))
	drop = make(plotter.XYs, len(samples))
	for i, d := range samples {
		row := report.NewRow(d)
		velocity[i].X = float64(row.Yard)
		velocity[i].Y = row.Velocity
		drop[i].X = float64(row.Yard)
		drop[i].Y = row.Drop
	}
	return velocity, drop
}

// effectiveRangeMarker is a vertical line at the effective range yard.
func effectiveRangeMarker(result go_shotcalc.TrajectoryResult, bottom, top float64) (*plotter.Line, error) {
	er := float64(result.EffectiveRange())
	line, err := plotter.NewLine(plotter.XYs{{X: er, Y: bottom}, {X: er, Y: top}})
	if err != nil {
		return nil, err
	}
	line.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	return line, nil
}

func newPlot(title, yLabel string, xys plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Yards"
	p.Y.Label.Text = yLabel
	p.X.Min = 0
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	p.Add(line)
	return p, nil
}

// Plots creates the velocity and drop plots of the result.
func Plots(result go_shotcalc.TrajectoryResult, title string) (*plot.Plot, *plot.Plot, error) {
	if result.Len() == 0 {
		return nil, nil, ErrNoData
	}
	velocity, drop := series(result)

	vp, err := newPlot(title, "Velocity, fps", velocity)
	if err != nil {
		return nil, nil, err
	}
	minimum := result.MinimumVelocity().In(unit.VelocityFPS)
	threshold, err := plotter.NewLine(plotter.XYs{{X: 0, Y: minimum}, {X: velocity[len(velocity)-1].X, Y: minimum}})
	if err != nil {
		return nil, nil, err
	}
	threshold.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	vp.Add(threshold)
	vp.Legend.Add(fmt.Sprintf("1 ft-lb - %.0f fps", minimum), threshold)

	dp, err := newPlot("", "Drop, in.", drop)
	if err != nil {
		return nil, nil, err
	}

	if result.EffectiveRange() != go_shotcalc.NoEffectiveRange {
		marker, err := effectiveRangeMarker(result, 0, velocity[0].Y)
		if err != nil {
			return nil, nil, err
		}
		vp.Add(marker)
		vp.Legend.Add(fmt.Sprintf("Effective range - %d yd", result.EffectiveRange()), marker)

		marker, err = effectiveRangeMarker(result, drop[len(drop)-1].Y, 0)
		if err != nil {
			return nil, nil, err
		}
		dp.Add(marker)
	}
	vp.Legend.Top = true
	return vp, dp, nil
}

// RenderPNG draws the velocity plot above the drop plot and writes the PNG image.
func RenderPNG(w io.Writer, result go_shotcalc.TrajectoryResult, title string) error {
	vp, dp, err := Plots(result, title)
	if err != nil {
		return err
	}

	img := vgimg.New(Width, Height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 1,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{{vp}, {dp}}, tiles, dc)
	vp.Draw(canvases[0][0])
	dp.Draw(canvases[1][0])

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write png: %w", err)
	}
	return nil
}

// VelocitySparkline plots the velocity per yard and the minimum effective
// velocity as text.
func VelocitySparkline(result go_shotcalc.TrajectoryResult, width, height int) string {
	if result.Len() < 2 {
		return ""
	}
	velocity := make([]float64, 0, result.Len())
	minimum := make([]float64, 0, result.Len())
	mv := result.MinimumVelocity().In(unit.VelocityFPS)
	for _, d := range result.Samples() {
		velocity = append(velocity, d.Velocity().In(unit.VelocityFPS))
		minimum = append(minimum, mv)
	}
	return asciigraph.PlotMany([][]float64{velocity, minimum},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("Velocity, fps (0-%d yd)", result.Len()-1)))
}
