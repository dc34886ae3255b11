package models

import "fmt"

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UserLocation is a resolved device position with its reverse-geocoded city.
type UserLocation struct {
	Location
	City string `json:"city"`
}

// ViewBounds is the geographic window projected onto the canvas.
type ViewBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Validate rejects degenerate bounds. Projection divides by the bounds
// extents, so a zero-width or inverted window is a configuration error.
func (b ViewBounds) Validate() error {
	if b.North <= b.South {
		return fmt.Errorf("invalid bounds: north (%f) must exceed south (%f)", b.North, b.South)
	}
	if b.East <= b.West {
		return fmt.Errorf("invalid bounds: east (%f) must exceed west (%f)", b.East, b.West)
	}
	return nil
}

func (b ViewBounds) Center() Location {
	return Location{
		Lat: (b.North + b.South) / 2,
		Lng: (b.East + b.West) / 2,
	}
}
