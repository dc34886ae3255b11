package simulator

import (
	"math/rand"
	"testing"

	"github.com/drivergigspro/demandmap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atlantaOrigin() models.UserLocation {
	return FallbackOrigin()
}

func TestGenerateLocalHotspotsShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	spots := GenerateLocalHotspots(rng, atlantaOrigin())

	require.Len(t, spots, 8)
	for i, spot := range spots {
		assert.Equal(t, i+1, spot.ID)
	}

	assert.Equal(t, "Atlanta Downtown", spots[0].Name)
	assert.Equal(t, "Atlanta Airport Area", spots[1].Name)
	assert.Equal(t, "Shopping District", spots[2].Name)
	assert.Equal(t, "Sports Complex", spots[7].Name)
}

func TestGenerateLocalHotspotsOffsets(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	origin := atlantaOrigin()
	spots := GenerateLocalHotspots(rng, origin)

	assert.InDelta(t, origin.Lat+0.05, spots[0].Lat, 1e-9)
	assert.InDelta(t, origin.Lng-0.03, spots[0].Lng, 1e-9)
	assert.InDelta(t, origin.Lat-0.15, spots[1].Lat, 1e-9)
	assert.InDelta(t, origin.Lng+0.10, spots[1].Lng, 1e-9)
	assert.InDelta(t, origin.Lat-0.12, spots[7].Lat, 1e-9)
	assert.InDelta(t, origin.Lng-0.20, spots[7].Lng, 1e-9)
}

func TestGenerateLocalHotspotsIntensityRanges(t *testing.T) {
	origin := atlantaOrigin()
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		spots := GenerateLocalHotspots(rng, origin)

		assert.GreaterOrEqual(t, spots[0].Intensity, 70.0) // downtown 70..99
		assert.Less(t, spots[0].Intensity, 100.0)
		assert.GreaterOrEqual(t, spots[1].Intensity, 75.0) // airport 75..99
		assert.Less(t, spots[1].Intensity, 100.0)
		assert.GreaterOrEqual(t, spots[5].Intensity, 50.0) // medical 50..64
		assert.Less(t, spots[5].Intensity, 65.0)
		assert.GreaterOrEqual(t, spots[7].Intensity, 40.0) // sports 40..69
		assert.Less(t, spots[7].Intensity, 70.0)
	}
}

func TestGenerateLocalHotspotsEvents(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	spots := GenerateLocalHotspots(rng, atlantaOrigin())

	require.Len(t, spots[0].Events, 1)
	assert.Equal(t, "Business District Rush", spots[0].Events[0].Name)
	assert.Equal(t, models.EventBusiness, spots[0].Events[0].Category)
	assert.Equal(t, 5000, spots[0].Events[0].ExpectedAttendance)

	require.Len(t, spots[7].Events, 1)
	assert.Equal(t, "Local Sports Event", spots[7].Events[0].Name)
	assert.Equal(t, models.EventSports, spots[7].Events[0].Category)
	assert.Equal(t, 15000, spots[7].Events[0].ExpectedAttendance)

	assert.Empty(t, spots[2].Events)
	assert.Empty(t, spots[4].Events)
	assert.Empty(t, spots[5].Events)
	assert.Empty(t, spots[6].Events)
}

func TestDeriveBounds(t *testing.T) {
	origin := atlantaOrigin()
	bounds := DeriveBounds(origin)

	assert.InDelta(t, origin.Lat+models.BoundsDegreeOffset, bounds.North, 1e-9)
	assert.InDelta(t, origin.Lat-models.BoundsDegreeOffset, bounds.South, 1e-9)
	assert.InDelta(t, origin.Lng+models.BoundsDegreeOffset, bounds.East, 1e-9)
	assert.InDelta(t, origin.Lng-models.BoundsDegreeOffset, bounds.West, 1e-9)
	assert.NoError(t, bounds.Validate())
}
