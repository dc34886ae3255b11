package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/drivergigspro/demandmap/internal/geocode"
	"github.com/drivergigspro/demandmap/internal/heatmap"
	"github.com/drivergigspro/demandmap/internal/models"
	"github.com/schollz/progressbar/v3"
)

// Simulator owns the live demand snapshot. It resolves the origin once,
// generates the hotspot set around it, and perturbs intensities on a
// fixed interval, publishing events on every change.
type Simulator struct {
	Config *models.Config
	Rng    *rand.Rand

	geocoder  geocode.ReverseGeocoder
	locations LocationProvider
	output    OutputDestination

	mu         sync.RWMutex
	state      OriginState
	snapshot   *models.DemandSnapshot
	selectedID int
	geometry   *heatmap.GeometryTable
	refreshing bool
	version    uint64
}

func NewSimulator(config *models.Config, geocoder geocode.ReverseGeocoder, locations LocationProvider, output OutputDestination) *Simulator {
	return &Simulator{
		Config:    config,
		Rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		geocoder:  geocoder,
		locations: locations,
		output:    output,
	}
}

// NewFromConfig wires the simulator with the providers and output sink
// the config implies.
func NewFromConfig(config *models.Config, geocoder geocode.ReverseGeocoder) *Simulator {
	return NewSimulator(config, geocoder, ProviderFromConfig(config), determineOutputDestination(config))
}

// State reports the origin resolution state.
func (s *Simulator) State() OriginState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ResolveOrigin runs the one-shot origin state machine. Any failure, at
// the geolocation or the reverse-geocoding step, lands on the fixed
// fallback origin; the two resolved states are terminal and a second
// call is a no-op.
func (s *Simulator) ResolveOrigin(ctx context.Context) {
	s.mu.Lock()
	if s.state.Resolved() || s.state == OriginResolving {
		s.mu.Unlock()
		return
	}
	s.state = OriginResolving
	s.mu.Unlock()

	origin := FallbackOrigin()
	state := OriginResolvedFallback
	dataSource := models.DataSourceFallback

	loc, err := s.locations.Locate(ctx)
	if err != nil {
		log.Printf("Geolocation failed, using %s fallback: %v", models.FallbackCity, err)
	} else {
		city, err := s.geocoder.CityName(ctx, loc.Lat, loc.Lng)
		if err != nil {
			log.Printf("Reverse geocoding failed, using %s fallback: %v", models.FallbackCity, err)
		} else {
			origin = models.UserLocation{Location: loc, City: city}
			state = OriginResolvedCity
			dataSource = models.DataSourceRealtime
		}
	}

	s.mu.Lock()
	s.state = state
	s.replaceSnapshotLocked(origin, dataSource)
	s.mu.Unlock()

	s.emitOriginResolved(origin, state == OriginResolvedFallback)
	s.emitSnapshot()
}

// replaceSnapshotLocked publishes a whole new snapshot around an origin.
// Selection and geometry from the previous point set are discarded;
// callers hold the write lock.
func (s *Simulator) replaceSnapshotLocked(origin models.UserLocation, dataSource string) {
	s.version++
	s.snapshot = &models.DemandSnapshot{
		Hotspots:     GenerateLocalHotspots(s.Rng, origin),
		UserLocation: origin,
		Bounds:       DeriveBounds(origin),
		LastUpdated:  time.Now(),
		DataSource:   dataSource,
		Version:      s.version,
	}
	s.selectedID = 0
	s.geometry = nil
}

// Perturb applies one random walk step to every hotspot intensity,
// clamped to the working range. The point set keeps its identity so the
// current selection survives, but radii change, so stored geometry is
// invalidated.
func (s *Simulator) Perturb() {
	s.mu.Lock()
	if s.snapshot == nil {
		s.mu.Unlock()
		return
	}
	for i := range s.snapshot.Hotspots {
		next := s.snapshot.Hotspots[i].Intensity + (s.Rng.Float64()-0.5)*10
		if next < models.IntensityFloor {
			next = models.IntensityFloor
		}
		if next > models.IntensityCeiling {
			next = models.IntensityCeiling
		}
		s.snapshot.Hotspots[i].Intensity = next
	}
	s.version++
	s.snapshot.Version = s.version
	s.snapshot.LastUpdated = time.Now()
	s.geometry = nil
	s.mu.Unlock()

	s.emitHotspotUpdates()
	s.emitSnapshot()
}

// Refresh performs a user-initiated refresh: a short fixed delay, then a
// perturbation. While one refresh is in flight further calls are no-ops
// and report false.
func (s *Simulator) Refresh(ctx context.Context) bool {
	s.mu.Lock()
	if s.refreshing {
		s.mu.Unlock()
		return false
	}
	s.refreshing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	select {
	case <-ctx.Done():
		return false
	case <-time.After(s.Config.ManualRefreshDelay):
	}

	s.Perturb()
	return true
}

// Run resolves the origin and then perturbs on the configured interval
// until the context ends.
func (s *Simulator) Run(ctx context.Context) {
	s.ResolveOrigin(ctx)

	ticker := time.NewTicker(s.Config.RefreshInterval)
	defer ticker.Stop()

	log.Printf("Demand simulation running, refresh interval %s", s.Config.RefreshInterval)
	for {
		select {
		case <-ctx.Done():
			log.Printf("Demand simulation stopped: %v", ctx.Err())
			return
		case <-ticker.C:
			s.Perturb()
		}
	}
}

// RunBatch resolves the origin and replays a fixed number of
// perturbation ticks back to back, for offline dataset generation.
func (s *Simulator) RunBatch(ctx context.Context, ticks int) error {
	s.ResolveOrigin(ctx)

	bar := progressbar.Default(int64(ticks), "simulating demand")
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Perturb()
		_ = bar.Add(1)
	}
	return nil
}

// Snapshot returns a copy of the current demand snapshot. The hotspot
// slice is copied so callers can sort or filter it freely.
func (s *Simulator) Snapshot() (models.DemandSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return models.DemandSnapshot{}, fmt.Errorf("no demand snapshot yet")
	}
	snap := *s.snapshot
	snap.Hotspots = append([]models.HotSpot(nil), s.snapshot.Hotspots...)
	return snap, nil
}

// GenerateFor builds a one-off snapshot around an arbitrary origin, for
// request-scoped queries that are cached outside the simulator. It does
// not touch the live snapshot.
func (s *Simulator) GenerateFor(origin models.UserLocation, dataSource string) models.DemandSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.DemandSnapshot{
		Hotspots:     GenerateLocalHotspots(s.Rng, origin),
		UserLocation: origin,
		Bounds:       DeriveBounds(origin),
		LastUpdated:  time.Now(),
		DataSource:   dataSource,
	}
}

// Select marks a hotspot as selected for rendering and detail queries.
// A zero id clears the selection.
func (s *Simulator) Select(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == 0 {
		s.selectedID = 0
		return nil
	}
	if s.snapshot == nil {
		return fmt.Errorf("no demand snapshot yet")
	}
	for _, h := range s.snapshot.Hotspots {
		if h.ID == id {
			s.selectedID = id
			return nil
		}
	}
	return fmt.Errorf("unknown hotspot id %d", id)
}

// Selected returns the currently selected hotspot, or nil.
func (s *Simulator) Selected() *models.HotSpot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil || s.selectedID == 0 {
		return nil
	}
	for i := range s.snapshot.Hotspots {
		if s.snapshot.Hotspots[i].ID == s.selectedID {
			spot := s.snapshot.Hotspots[i]
			return &spot
		}
	}
	return nil
}

// RenderPNG renders the current snapshot to PNG and refreshes the
// geometry table that hit testing reads.
func (s *Simulator) RenderPNG(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return fmt.Errorf("no demand snapshot yet")
	}
	img := heatmap.NewCanvas()
	table, err := heatmap.Render(img, s.snapshot.Hotspots, s.snapshot.Version, s.snapshot.Bounds, s.selectedID, &s.snapshot.UserLocation)
	if err != nil {
		return err
	}
	s.geometry = table
	return png.Encode(w, img)
}

// HitTest resolves a canvas coordinate to a hotspot, re-deriving
// geometry first when the stored table is missing or from an older
// point set.
func (s *Simulator) HitTest(x, y float64) (*models.HotSpot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil, fmt.Errorf("no demand snapshot yet")
	}
	if s.geometry == nil || s.geometry.Version != s.snapshot.Version {
		img := heatmap.NewCanvas()
		table, err := heatmap.Render(img, s.snapshot.Hotspots, s.snapshot.Version, s.snapshot.Bounds, s.selectedID, &s.snapshot.UserLocation)
		if err != nil {
			return nil, err
		}
		s.geometry = table
	}
	hit := heatmap.HitTest(x, y, s.snapshot.Hotspots, s.snapshot.Version, s.geometry)
	if hit == nil {
		return nil, nil
	}
	spot := *hit
	return &spot, nil
}

// Close flushes and closes the event sink.
func (s *Simulator) Close() error {
	if s.output == nil {
		return nil
	}
	return s.output.Close()
}

func (s *Simulator) writeEvent(topic string, event interface{}) {
	if s.output == nil {
		return
	}
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error serializing %s event: %v", topic, err)
		return
	}
	if err := s.output.WriteMessage(topic, msg); err != nil {
		log.Printf("Failed to write message to %s: %v", topic, err)
	}
}

func (s *Simulator) emitOriginResolved(origin models.UserLocation, fallback bool) {
	s.writeEvent(TopicOriginResolved, OriginResolvedEvent{
		BaseEvent: BaseEvent{Timestamp: time.Now().Unix(), EventType: TopicOriginResolved},
		City:      origin.City,
		Lat:       origin.Lat,
		Lng:       origin.Lng,
		Fallback:  fallback,
	})
}

func (s *Simulator) emitSnapshot() {
	s.mu.RLock()
	snap := s.snapshot
	if snap == nil {
		s.mu.RUnlock()
		return
	}
	var top float64
	for _, h := range snap.Hotspots {
		if h.Intensity > top {
			top = h.Intensity
		}
	}
	event := DemandSnapshotEvent{
		BaseEvent:    BaseEvent{Timestamp: time.Now().Unix(), EventType: TopicDemandSnapshots},
		City:         snap.UserLocation.City,
		Lat:          snap.UserLocation.Lat,
		Lng:          snap.UserLocation.Lng,
		HotspotCount: int32(len(snap.Hotspots)),
		TopIntensity: top,
		DataSource:   snap.DataSource,
		Version:      int64(snap.Version),
	}
	s.mu.RUnlock()

	s.writeEvent(TopicDemandSnapshots, event)
}

func (s *Simulator) emitHotspotUpdates() {
	s.mu.RLock()
	snap := s.snapshot
	if snap == nil {
		s.mu.RUnlock()
		return
	}
	events := make([]HotspotUpdateEvent, 0, len(snap.Hotspots))
	now := time.Now().Unix()
	for _, h := range snap.Hotspots {
		events = append(events, HotspotUpdateEvent{
			BaseEvent: BaseEvent{Timestamp: now, EventType: TopicHotspotUpdates},
			HotspotID: int32(h.ID),
			Name:      h.Name,
			Lat:       h.Lat,
			Lng:       h.Lng,
			Intensity: h.Intensity,
			Tier:      string(h.Tier()),
		})
	}
	s.mu.RUnlock()

	for _, e := range events {
		s.writeEvent(TopicHotspotUpdates, e)
	}
}
