package heatmap

import (
	"fmt"
	"image"
	"math"

	"github.com/drivergigspro/demandmap/internal/models"
)

const (
	glowScale      = 2.0
	userMarkerSize = 8.0

	alphaSpot         = 0x80
	alphaSpotSelected = 0xCC
	alphaGlow         = 0x40
)

// SpotRadius converts an intensity score to a spot radius in pixels. The
// floor keeps low-demand spots large enough to click.
func SpotRadius(intensity float64) float64 {
	return math.Max(models.MinSpotRadius, intensity/100*models.SpotRadiusScale)
}

// Render clears the canvas and repaints the full scene: reference grid,
// hotspots in input order, the user marker, then the decorative road
// network. Later draws occlude earlier ones; overlapping hotspots stack in
// array order, which is a deliberate z-order rule, not an accident.
//
// The returned geometry table is the only record of where spots landed;
// nothing is written back onto the hotspot values. It is stamped with the
// point-set version so the hit-tester can refuse stale geometry.
func Render(img *image.RGBA, points []models.HotSpot, version uint64, bounds models.ViewBounds, selectedID int, user *models.UserLocation) (*GeometryTable, error) {
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	fillCanvas(img, colorBackground)
	drawGrid(img, width, height)

	table := NewGeometryTable(version)
	for _, spot := range points {
		pos := Project(spot.Location, bounds, width, height)
		radius := SpotRadius(spot.Intensity)
		c := tierColor(spot.Tier())

		fillRadialGlow(img, pos.X, pos.Y, radius*glowScale, c, alphaGlow)

		fillAlpha := uint8(alphaSpot)
		strokeColor := c
		strokeWidth := 2.0
		if spot.ID == selectedID {
			fillAlpha = alphaSpotSelected
			strokeColor = colorSelected
			strokeWidth = 3.0
		}
		fillCircle(img, pos.X, pos.Y, radius, withAlpha(c, fillAlpha))
		strokeCircle(img, pos.X, pos.Y, radius, strokeWidth, strokeColor)

		// Displayed percentage is the rounded raw intensity; the renderer
		// does not clamp, keeping intensity in range is the caller's job.
		label := fmt.Sprintf("%d%%", int(math.Round(spot.Intensity)))
		drawCenteredText(img, pos.X, pos.Y, label, colorLabel)

		table.Spots[spot.ID] = SpotGeometry{X: pos.X, Y: pos.Y, Radius: radius}
	}

	if user != nil {
		pos := Project(user.Location, bounds, width, height)
		fillCircle(img, pos.X, pos.Y, userMarkerSize, colorUser)
		strokeCircle(img, pos.X, pos.Y, userMarkerSize, 3, colorUserRing)
		drawCenteredText(img, pos.X, pos.Y-15, "You", colorUserLabel)
	}

	drawRoadNetwork(img, width, height)

	return table, nil
}

// drawGrid paints the cosmetic 10x10 reference grid.
func drawGrid(img *image.RGBA, width, height int) {
	for i := 0; i <= 10; i++ {
		x := i * width / 10
		y := i * height / 10
		drawVLine(img, x, 0, height, colorGrid)
		drawHLine(img, 0, width, y, colorGrid)
	}
}

// drawRoadNetwork paints the fixed illustrative corridors: one horizontal
// and one vertical artery through the canvas centre, plus a beltway ring.
// Independent of actual geography.
func drawRoadNetwork(img *image.RGBA, width, height int) {
	centerX := width / 2
	centerY := height / 2

	drawDashedHLine(img, 0, width, centerY, colorRoad)
	drawDashedVLine(img, centerX, 0, height, colorRoad)

	beltRadius := 0.3 * math.Min(float64(width), float64(height))
	strokeDashedCircle(img, float64(centerX), float64(centerY), beltRadius, colorRoad)
}
