package simulator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchemaKnownTopics(t *testing.T) {
	for _, topic := range []string{TopicDemandSnapshots, TopicHotspotUpdates, TopicOriginResolved} {
		sh, err := GetSchema(topic)
		require.NoError(t, err, topic)
		assert.NotNil(t, sh)
	}
}

func TestGetSchemaUnknownTopic(t *testing.T) {
	_, err := GetSchema("mystery_events")
	assert.Error(t, err)
}

func TestJSONOutputPartitionsByEventTime(t *testing.T) {
	dir := t.TempDir()
	out := NewJSONOutput(dir, "demand_data")

	ts := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	event := OriginResolvedEvent{
		BaseEvent: BaseEvent{Timestamp: ts.Unix(), EventType: TopicOriginResolved},
		City:      "Atlanta",
		Lat:       33.749,
		Lng:       -84.388,
	}
	msg, err := json.Marshal(event)
	require.NoError(t, err)

	require.NoError(t, out.WriteMessage(TopicOriginResolved, msg))
	require.NoError(t, out.Close())

	local := ts.Local()
	partition := fmt.Sprintf("year=%d/month=%02d/day=%02d/hour=%02d",
		local.Year(), local.Month(), local.Day(), local.Hour())
	path := filepath.Join(dir, "demand_data", TopicOriginResolved, partition, "data.json")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"city":"Atlanta"`)
}

func TestJSONOutputRejectsMissingTimestamp(t *testing.T) {
	out := NewJSONOutput(t.TempDir(), "demand_data")
	err := out.WriteMessage(TopicOriginResolved, []byte(`{"city":"Atlanta"}`))
	assert.Error(t, err)
}

func TestCSVOutputWritesHeaderAndRow(t *testing.T) {
	dir := t.TempDir()
	out := NewCSVOutput(dir, "demand_data")

	ts := time.Now()
	event := map[string]interface{}{
		"timestamp": ts.Unix(),
		"eventType": TopicHotspotUpdates,
		"hotspotId": 3,
		"intensity": 64.2,
	}
	msg, err := json.Marshal(event)
	require.NoError(t, err)

	require.NoError(t, out.WriteMessage(TopicHotspotUpdates, msg))
	require.NoError(t, out.Close())

	local := ts.Local()
	partition := fmt.Sprintf("year=%d/month=%02d/day=%02d/hour=%02d",
		local.Year(), local.Month(), local.Day(), local.Hour())
	path := filepath.Join(dir, "demand_data", TopicHotspotUpdates, partition, "data.csv")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// headers are sorted alphabetically
	assert.Contains(t, string(data), "eventType,hotspotId,intensity,timestamp")
}

func TestConsoleOutputWriteAndClose(t *testing.T) {
	out := &ConsoleOutput{}
	assert.NoError(t, out.WriteMessage(TopicDemandSnapshots, []byte(`{}`)))
	assert.NoError(t, out.Close())
}
