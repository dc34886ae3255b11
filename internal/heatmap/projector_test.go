package heatmap

import (
	"testing"

	"github.com/drivergigspro/demandmap/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestProjectCorners(t *testing.T) {
	bounds := models.ViewBounds{North: 10, South: 0, East: 10, West: 0}

	topLeft := Project(models.Location{Lat: 10, Lng: 0}, bounds, 800, 500)
	assert.Equal(t, 0.0, topLeft.X)
	assert.Equal(t, 0.0, topLeft.Y)

	bottomRight := Project(models.Location{Lat: 0, Lng: 10}, bounds, 800, 500)
	assert.Equal(t, 800.0, bottomRight.X)
	assert.Equal(t, 500.0, bottomRight.Y)
}

func TestProjectCenter(t *testing.T) {
	bounds := models.ViewBounds{North: 10, South: 0, East: 10, West: 0}

	center := Project(models.Location{Lat: 5, Lng: 5}, bounds, 800, 500)
	assert.InDelta(t, 400.0, center.X, 1e-9)
	assert.InDelta(t, 250.0, center.Y, 1e-9)
}

func TestProjectOriginLandsAtCanvasCenter(t *testing.T) {
	origin := models.Location{Lat: models.FallbackLat, Lng: models.FallbackLng}
	bounds := models.ViewBounds{
		North: origin.Lat + models.BoundsDegreeOffset,
		South: origin.Lat - models.BoundsDegreeOffset,
		East:  origin.Lng + models.BoundsDegreeOffset,
		West:  origin.Lng - models.BoundsDegreeOffset,
	}

	p := Project(origin, bounds, models.CanvasWidth, models.CanvasHeight)
	assert.InDelta(t, 400.0, p.X, 1e-6)
	assert.InDelta(t, 250.0, p.Y, 1e-6)
}

func TestProjectOutsideBoundsIsNotClamped(t *testing.T) {
	bounds := models.ViewBounds{North: 10, South: 0, East: 10, West: 0}

	p := Project(models.Location{Lat: 20, Lng: -10}, bounds, 800, 500)
	assert.Less(t, p.X, 0.0)
	assert.Less(t, p.Y, 0.0)
}
