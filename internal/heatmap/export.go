package heatmap

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/drivergigspro/demandmap/internal/models"
)

// WriteMapHTML renders the view bounds and hotspot positions as an
// interactive HTML geo chart, for inspecting a snapshot in a browser.
func WriteMapHTML(w io.Writer, bounds models.ViewBounds, hotspots []models.HotSpot) error {
	points := []opts.GeoData{
		{Name: "SW", Value: []float64{bounds.West, bounds.South}},
		{Name: "NW", Value: []float64{bounds.West, bounds.North}},
		{Name: "NE", Value: []float64{bounds.East, bounds.North}},
		{Name: "SE", Value: []float64{bounds.East, bounds.South}},
		{Name: "SW", Value: []float64{bounds.West, bounds.South}}, // Close the polygon.
	}

	spots := make([]opts.GeoData, 0, len(hotspots))
	for _, h := range hotspots {
		spots = append(spots, opts.GeoData{
			Name:  h.Name,
			Value: []float64{h.Lng, h.Lat, h.Intensity},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Demand Heat Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Bounds", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)
	geo.AddSeries("Hotspots", types.ChartEffectScatter, spots,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	return geo.Render(w)
}
