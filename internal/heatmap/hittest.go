package heatmap

import (
	"math"

	"github.com/drivergigspro/demandmap/internal/models"
)

// HitTest resolves a pointer coordinate to a hotspot.
//
// Tie-break policy: the scan walks points in array order and returns the
// FIRST spot whose distance to its rendered centre is within its radius.
// When circles overlap, the earlier point wins regardless of which centre
// is closer. This mirrors the render z-order rule and is part of the
// contract, not an implementation detail.
//
// Returns nil when nothing matches, when the geometry table is missing or
// empty (render must precede hit-testing), or when the table was computed
// from a different point-set version than the one passed in.
func HitTest(x, y float64, points []models.HotSpot, version uint64, geom *GeometryTable) *models.HotSpot {
	if geom == nil || len(geom.Spots) == 0 {
		return nil
	}
	if geom.Version != version {
		return nil
	}
	for i := range points {
		g, ok := geom.Lookup(points[i].ID)
		if !ok {
			continue
		}
		if math.Hypot(x-g.X, y-g.Y) <= g.Radius {
			return &points[i]
		}
	}
	return nil
}
