// Package chart rasterizes a folder's revenue series into an embeddable PNG.
package chart

import (
	"bytes"
	"fmt"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vanshika/salesboard/internal/domain"
)

// lineColor matches the report's accent red.
const lineColor = "e74c3c"

// Renderer draws revenue-over-time line charts at a fixed figure size.
type Renderer struct {
	width  int
	height int
}

// New returns a Renderer producing images of the given pixel dimensions.
func New(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// Render draws the series, expected in day-ascending order, and returns PNG
// bytes. An empty series yields nil bytes and no error.
func (r *Renderer) Render(points []domain.RevenuePoint, title string) ([]byte, error) {
	xs := make([]time.Time, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		day, err := time.Parse(time.DateOnly, p.Day)
		if err != nil {
			continue
		}
		xs = append(xs, day)
		ys = append(ys, p.Total)
	}
	if len(xs) == 0 {
		return nil, nil
	}
	if len(xs) == 1 {
		// The line renderer needs two points; a flat one-day segment keeps
		// single-day folders plottable.
		xs = append(xs, xs[0].Add(24*time.Hour))
		ys = append(ys, ys[0])
	}

	graph := gochart.Chart{
		Title:  title,
		Width:  r.width,
		Height: r.height,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeDateValueFormatter,
		},
		YAxis: gochart.YAxis{
			Name: "USD",
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Style: gochart.Style{
					StrokeColor: drawing.ColorFromHex(lineColor),
					StrokeWidth: 2.0,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
