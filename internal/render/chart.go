package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNotEnoughData is returned when a chart has fewer than two samples.
var ErrNotEnoughData = errors.New("chart needs at least two samples")

// DistanceChart records the status distance per generation.
type DistanceChart struct {
	generations []float64
	distances   []float64
}

// NewDistanceChart returns an empty chart.
func NewDistanceChart() *DistanceChart { return &DistanceChart{} }

// Observe records the scene's current status distance. Scenes without a
// status readout are skipped.
func (c *DistanceChart) Observe(generation int, scene Scene) error {
	st, ok := scene.Status()
	if !ok {
		return nil
	}
	c.generations = append(c.generations, float64(generation))
	c.distances = append(c.distances, st.Distance)
	return nil
}

// Len reports the number of samples.
func (c *DistanceChart) Len() int { return len(c.distances) }

// Render writes the chart as PNG.
func (c *DistanceChart) Render(w io.Writer) error {
	if len(c.distances) < 2 {
		return ErrNotEnoughData
	}
	graph := chart.Chart{
		Title:  "Distance to target",
		Width:  640,
		Height: 240,
		XAxis: chart.XAxis{
			Name:  "Generation",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Mean channel distance",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Top-of-column average",
				XValues: c.generations,
				YValues: c.distances,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 255, G: 165, B: 0, A: 255}, StrokeWidth: 3.0},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
