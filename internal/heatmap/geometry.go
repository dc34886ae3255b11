package heatmap

// SpotGeometry is the canvas-space footprint of one rendered hotspot.
type SpotGeometry struct {
	X      float64
	Y      float64
	Radius float64
}

// GeometryTable maps hotspot id to its footprint from the last render pass.
// It is produced fresh by every Render call and stamped with the version of
// the point set it was computed from, so hit-testing against geometry from
// an older point set fails closed instead of matching repositioned spots.
type GeometryTable struct {
	Version uint64
	Spots   map[int]SpotGeometry
}

func NewGeometryTable(version uint64) *GeometryTable {
	return &GeometryTable{
		Version: version,
		Spots:   make(map[int]SpotGeometry),
	}
}

func (t *GeometryTable) Lookup(id int) (SpotGeometry, bool) {
	if t == nil || t.Spots == nil {
		return SpotGeometry{}, false
	}
	g, ok := t.Spots[id]
	return g, ok
}
