package models

import (
	"sort"
	"time"
)

// DemandSnapshot is a complete point set for one geographic origin.
// Point sets are replaced wholesale, never mutated field by field; Version
// increments on every replacement so downstream consumers can detect
// geometry computed against an older set.
type DemandSnapshot struct {
	Hotspots     []HotSpot    `json:"hotspots"`
	UserLocation UserLocation `json:"userLocation"`
	Bounds       ViewBounds   `json:"bounds"`
	LastUpdated  time.Time    `json:"lastUpdated"`
	DataSource   string       `json:"dataSource"`
	CacheExpiry  *time.Time   `json:"cacheExpiry,omitempty"`
	Version      uint64       `json:"-"`
}

// SortedByIntensity returns a copy of the hotspots ordered highest demand
// first, for list displays. The snapshot's own slice keeps generation order,
// which is also the render z-order and hit-test scan order.
func (s *DemandSnapshot) SortedByIntensity() []HotSpot {
	out := make([]HotSpot, len(s.Hotspots))
	copy(out, s.Hotspots)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Intensity > out[j].Intensity
	})
	return out
}

// EventCount sums the events attached to every hotspot in the snapshot.
func (s *DemandSnapshot) EventCount() int {
	total := 0
	for _, h := range s.Hotspots {
		total += len(h.Events)
	}
	return total
}
