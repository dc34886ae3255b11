package heatmap

import (
	"github.com/drivergigspro/demandmap/internal/models"
)

// Point is a canvas-space coordinate in pixels.
type Point struct {
	X float64
	Y float64
}

// Project maps a geographic position into canvas space with a plain linear
// transform. There is no clamping: positions outside the bounds project
// outside the canvas and simply are not visible. Callers must hand in
// non-degenerate bounds (see ViewBounds.Validate); Render checks once per
// pass so the division here is safe.
func Project(loc models.Location, bounds models.ViewBounds, width, height int) Point {
	return Point{
		X: (loc.Lng - bounds.West) / (bounds.East - bounds.West) * float64(width),
		Y: (bounds.North - loc.Lat) / (bounds.North - bounds.South) * float64(height),
	}
}
