package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierHigh, TierFor(100))
	assert.Equal(t, TierHigh, TierFor(80))
	assert.Equal(t, TierMedium, TierFor(79.9))
	assert.Equal(t, TierMedium, TierFor(60))
	assert.Equal(t, TierLow, TierFor(59.9))
	assert.Equal(t, TierLow, TierFor(0))
}

func TestHotSpotMarshalDerivesTier(t *testing.T) {
	spot := HotSpot{ID: 1, Name: "Downtown", Intensity: 85}

	data, err := json.Marshal(spot)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "high", decoded["type"])
	assert.Equal(t, 85.0, decoded["concentration"])

	spot.Intensity = 45
	data, err = json.Marshal(spot)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "low", decoded["type"])
}

func TestSortedByIntensityLeavesGenerationOrder(t *testing.T) {
	snap := DemandSnapshot{
		Hotspots: []HotSpot{
			{ID: 1, Intensity: 50},
			{ID: 2, Intensity: 90},
			{ID: 3, Intensity: 70},
		},
	}

	sorted := snap.SortedByIntensity()
	assert.Equal(t, []int{2, 3, 1}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	assert.Equal(t, 1, snap.Hotspots[0].ID)
}

func TestViewBoundsValidate(t *testing.T) {
	valid := ViewBounds{North: 2, South: 0, East: 2, West: 0}
	assert.NoError(t, valid.Validate())

	assert.Error(t, ViewBounds{North: 0, South: 0, East: 2, West: 0}.Validate())
	assert.Error(t, ViewBounds{North: 2, South: 0, East: 0, West: 0}.Validate())
	assert.Error(t, ViewBounds{North: -1, South: 1, East: 2, West: 0}.Validate())
}
