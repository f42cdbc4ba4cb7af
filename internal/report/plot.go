package report

import (
	"fmt"
	"os"

	"github.com/aclements/go-moremath/stats"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/hitmer-tools/dockscore/internal/score"
)

// PlotOptions control the curve sampling and canvas size.
type PlotOptions struct {
	Points int
	Width  int
	Height int
}

func (o PlotOptions) points() int {
	if o.Points > 1 {
		return o.Points
	}
	return 100
}

// sampleCurve evaluates the normal density at evenly spaced points over
// [lo, hi], endpoints included.
func sampleCurve(dist stats.NormalDist, lo, hi float64, points int) (xs, ys []float64) {
	xs = make([]float64, points)
	ys = make([]float64, points)
	step := (hi - lo) / float64(points-1)
	for i := range xs {
		x := lo + step*float64(i)
		xs[i] = x
		ys[i] = dist.PDF(x)
	}
	return xs, ys
}

func vline(x, top float64, style chart.Style) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: []float64{x, x},
		YValues: []float64{0, top},
		Style:   style,
	}
}

func renderPNG(path string, graph chart.Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render plot: %w", err)
	}
	return nil
}

// WriteZCurve draws the standard normal density over [-5, 5] with a dashed
// reference line at the selection threshold and a solid one at zero.
func WriteZCurve(path string, threshold float64, opt PlotOptions) error {
	dist := stats.NormalDist{Mu: 0, Sigma: 1}
	xs, ys := sampleCurve(dist, -5, 5, opt.points())
	top := dist.PDF(0)

	graph := chart.Chart{
		Title:  "Z-Score Normal Distribution",
		Width:  opt.Width,
		Height: opt.Height,
		XAxis:  chart.XAxis{Name: "Z-Score"},
		YAxis:  chart.YAxis{Name: "Probability Density"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Z-Score Normal Distribution",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.5},
			},
			vline(threshold, top, chart.Style{StrokeColor: chart.ColorRed, StrokeDashArray: []float64{5.0, 5.0}}),
			vline(0, top, chart.Style{StrokeColor: chart.ColorRed}),
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return renderPNG(path, graph)
}

// WriteScoreCurve draws the normal density fitted to the raw docking scores
// over their [min, max] range. When marker is non-nil a dashed reference line
// and a "Fitness" label mark that score, which the pipeline reads back from
// the written filtered table.
func WriteScoreCurve(path string, p score.Params, lo, hi float64, marker *float64, opt PlotOptions) error {
	dist := stats.NormalDist{Mu: p.Mean, Sigma: p.StdDev}
	xs, ys := sampleCurve(dist, lo, hi, opt.points())
	top := dist.PDF(p.Mean)

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Docking Score Normal Distribution",
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2.5},
		},
	}
	if marker != nil {
		series = append(series,
			vline(*marker, top, chart.Style{StrokeColor: chart.ColorRed, StrokeDashArray: []float64{5.0, 5.0}}),
			chart.AnnotationSeries{
				Annotations: []chart.Value2{{
					XValue: *marker,
					YValue: 0.01,
					Label:  fmt.Sprintf("Fitness= %.2f", *marker),
				}},
				Style: chart.Style{StrokeColor: chart.ColorRed, FontColor: chart.ColorRed},
			},
		)
	}

	graph := chart.Chart{
		Title:  "Docking Score Normal Distribution",
		Width:  opt.Width,
		Height: opt.Height,
		XAxis:  chart.XAxis{Name: "Docking Score (kcal/mol)"},
		YAxis:  chart.YAxis{Name: "Probability Density"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return renderPNG(path, graph)
}
