package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	barColor  = color.RGBA{R: 70, G: 120, B: 180, A: 255}
	meanColor = color.RGBA{R: 200, G: 40, B: 40, A: 255}
)

// renderBarChart draws a vertical bar chart of the given counts.
func renderBarChart(title, xLabel, yLabel string, counts []Count, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.N)
		labels[i] = c.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

// renderHorizontalBarChart draws a horizontal bar chart, first label on
// top, matching the top-N orderings.
func renderHorizontalBarChart(title, xLabel, yLabel string, counts []Count, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	// reverse so the highest count renders at the top of the axis
	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		j := len(counts) - 1 - i
		values[j] = float64(c.N)
		labels[j] = c.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(labels...)

	return p.Save(10*vg.Inch, 7*vg.Inch, path)
}

// renderYearLineChart draws yearly counts as a line with point markers.
func renderYearLineChart(title, xLabel, yLabel string, counts []YearCount, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, len(counts))
	ticks := make([]plot.Tick, len(counts))
	for i, c := range counts {
		xys[i] = plotter.XY{X: float64(c.Year), Y: float64(c.N)}
		ticks[i] = plot.Tick{Value: float64(c.Year), Label: fmt.Sprintf("%d", c.Year)}
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("build line chart: %w", err)
	}
	line.Color = barColor
	points.Color = barColor

	p.Add(line, points)
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	return p.Save(12*vg.Inch, 7*vg.Inch, path)
}

// renderHistogram draws a histogram of the values with a dashed vertical
// line at the mean.
func renderHistogram(title, xLabel, yLabel string, values []float64, mean float64, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	hist, err := plotter.NewHist(plotter.Values(values), 50)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	hist.FillColor = barColor

	var maxWeight float64
	for _, bin := range hist.Bins {
		if bin.Weight > maxWeight {
			maxWeight = bin.Weight
		}
	}

	meanLine, err := plotter.NewLine(plotter.XYs{
		{X: mean, Y: 0},
		{X: mean, Y: maxWeight},
	})
	if err != nil {
		return fmt.Errorf("build mean line: %w", err)
	}
	meanLine.Color = meanColor
	meanLine.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	p.Add(hist, meanLine)
	p.Legend.Add(fmt.Sprintf("Mean: %.2f min", mean), meanLine)
	p.Legend.Top = true

	return p.Save(12*vg.Inch, 7*vg.Inch, path)
}

// renderSeasonBarChart draws season counts as a vertical bar chart ordered
// by season count ascending.
func renderSeasonBarChart(title, xLabel, yLabel string, counts []SeasonCount, path string) error {
	asCounts := make([]Count, len(counts))
	for i, c := range counts {
		asCounts[i] = Count{Label: fmt.Sprintf("%d", c.Seasons), N: c.N}
	}
	return renderBarChart(title, xLabel, yLabel, asCounts, path)
}
