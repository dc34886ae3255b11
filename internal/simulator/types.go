package simulator

import (
	"fmt"
	"log"

	"github.com/xitongsys/parquet-go/schema"
)

// Topics the simulator publishes on. Sinks that are not topic-aware
// (console, single-file JSON/CSV) interleave all three.
const (
	TopicDemandSnapshots = "demand_snapshot_events"
	TopicHotspotUpdates  = "hotspot_update_events"
	TopicOriginResolved  = "origin_resolved_events"
)

// BaseEvent is the common structure for all events
type BaseEvent struct {
	Timestamp int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType string `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// DemandSnapshotEvent summarises a freshly published demand snapshot
type DemandSnapshotEvent struct {
	BaseEvent
	City         string  `json:"city" parquet:"name=city,type=BYTE_ARRAY,convertedtype=UTF8"`
	Lat          float64 `json:"lat" parquet:"name=lat,type=DOUBLE"`
	Lng          float64 `json:"lng" parquet:"name=lng,type=DOUBLE"`
	HotspotCount int32   `json:"hotspotCount" parquet:"name=hotspotCount,type=INT32"`
	TopIntensity float64 `json:"topIntensity" parquet:"name=topIntensity,type=DOUBLE"`
	DataSource   string  `json:"dataSource" parquet:"name=dataSource,type=BYTE_ARRAY,convertedtype=UTF8"`
	Version      int64   `json:"version" parquet:"name=version,type=INT64"`
}

// HotspotUpdateEvent represents one hotspot's intensity after a perturbation tick
type HotspotUpdateEvent struct {
	BaseEvent
	HotspotID int32   `json:"hotspotId" parquet:"name=hotspotId,type=INT32"`
	Name      string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Lat       float64 `json:"lat" parquet:"name=lat,type=DOUBLE"`
	Lng       float64 `json:"lng" parquet:"name=lng,type=DOUBLE"`
	Intensity float64 `json:"intensity" parquet:"name=intensity,type=DOUBLE"`
	Tier      string  `json:"tier" parquet:"name=tier,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// OriginResolvedEvent records the outcome of origin resolution
type OriginResolvedEvent struct {
	BaseEvent
	City     string  `json:"city" parquet:"name=city,type=BYTE_ARRAY,convertedtype=UTF8"`
	Lat      float64 `json:"lat" parquet:"name=lat,type=DOUBLE"`
	Lng      float64 `json:"lng" parquet:"name=lng,type=DOUBLE"`
	Fallback bool    `json:"fallback" parquet:"name=fallback,type=BOOLEAN"`
}

func GetSchema(eventType string) (*schema.SchemaHandler, error) {
	var sh *schema.SchemaHandler
	var err error

	switch eventType {
	case TopicDemandSnapshots:
		sh, err = schema.NewSchemaHandlerFromStruct(new(DemandSnapshotEvent))
	case TopicHotspotUpdates:
		sh, err = schema.NewSchemaHandlerFromStruct(new(HotspotUpdateEvent))
	case TopicOriginResolved:
		sh, err = schema.NewSchemaHandlerFromStruct(new(OriginResolvedEvent))
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	if err != nil {
		log.Printf("Error creating schema for %s: %v", eventType, err)
		return nil, fmt.Errorf("error creating schema for %s: %w", eventType, err)
	}

	return sh, nil
}
