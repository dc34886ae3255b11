package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/drivergigspro/demandmap/internal/geocode"
	"github.com/drivergigspro/demandmap/internal/heatmap"
	"github.com/drivergigspro/demandmap/internal/models"
	"github.com/drivergigspro/demandmap/internal/repositories"
	"github.com/drivergigspro/demandmap/internal/simulator"
)

const (
	LAT_QUERY_ARG           = "lat"
	LNG_QUERY_ARG           = "lng"
	CITY_QUERY_ARG          = "city"
	X_QUERY_ARG             = "x"
	Y_QUERY_ARG             = "y"
	FORCE_REFRESH_QUERY_ARG = "forceRefresh"
)

type DemandHandler struct {
	sim      *simulator.Simulator
	cache    repositories.DemandCache
	geocoder geocode.ReverseGeocoder
	cacheTTL time.Duration
}

func NewDemandHandler(sim *simulator.Simulator, cache repositories.DemandCache, geocoder geocode.ReverseGeocoder, cacheTTL time.Duration) *DemandHandler {
	return &DemandHandler{
		sim:      sim,
		cache:    cache,
		geocoder: geocoder,
		cacheTTL: cacheTTL,
	}
}

// GetDemand serves the demand snapshot. Without coordinates it returns
// the simulator's live snapshot; with lat/lng it serves a cached or
// freshly generated snapshot for that position.
func (h *DemandHandler) GetDemand(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	if vals.Get(LAT_QUERY_ARG) == "" && vals.Get(LNG_QUERY_ARG) == "" {
		snap, err := h.sim.Snapshot()
		if err != nil {
			http.Error(w, "No demand data yet", http.StatusServiceUnavailable)
			return
		}
		snap.Hotspots = snap.SortedByIntensity()
		writeJSON(w, http.StatusOK, snap)
		return
	}

	lat, lng, ok := h.parseCoords(vals, w)
	if !ok {
		return
	}
	forceRefresh := false
	if v := vals.Get(FORCE_REFRESH_QUERY_ARG); v != "" {
		forceRefresh, _ = strconv.ParseBool(v)
	}

	if !forceRefresh {
		cached, err := h.cache.Get(r.Context(), lat, lng)
		if err != nil {
			log.Println("Error reading demand cache:", err)
		}
		if cached != nil {
			cached.DataSource = models.DataSourceCached
			cached.Hotspots = cached.SortedByIntensity()
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	city := vals.Get(CITY_QUERY_ARG)
	if city == "" {
		resolved, err := h.geocoder.CityName(r.Context(), lat, lng)
		if err != nil {
			log.Printf("Reverse geocoding failed for %f,%f: %v", lat, lng, err)
			city = models.FallbackCity
		} else {
			city = resolved
		}
	}

	origin := models.UserLocation{Location: models.Location{Lat: lat, Lng: lng}, City: city}
	snap := h.sim.GenerateFor(origin, models.DataSourceRealtime)
	expiry := time.Now().Add(h.cacheTTL)
	snap.CacheExpiry = &expiry

	if err := h.cache.Set(r.Context(), lat, lng, &snap, h.cacheTTL); err != nil {
		log.Println("Error writing demand cache:", err)
	}

	snap.Hotspots = snap.SortedByIntensity()
	writeJSON(w, http.StatusOK, snap)
}

// Refresh triggers a manual perturbation. A refresh already in flight
// makes this a no-op rather than queueing another.
func (h *DemandHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	started := h.sim.Refresh(r.Context())
	if !started {
		writeJSON(w, http.StatusOK, map[string]string{"status": "refresh already in flight"})
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "refreshed"})
}

// GetHeatmapPNG renders the current snapshot as a PNG raster.
func (h *DemandHandler) GetHeatmapPNG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	if err := h.sim.RenderPNG(w); err != nil {
		log.Println("Error rendering heatmap:", err)
		http.Error(w, "No demand data yet", http.StatusServiceUnavailable)
	}
}

// GetHit resolves a canvas coordinate to a hotspot without changing the
// selection. 204 when nothing is under the point.
func (h *DemandHandler) GetHit(w http.ResponseWriter, r *http.Request) {
	x, y, ok := h.parsePoint(r.URL.Query(), w)
	if !ok {
		return
	}
	spot, err := h.sim.HitTest(x, y)
	if err != nil {
		http.Error(w, "No demand data yet", http.StatusServiceUnavailable)
		return
	}
	if spot == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, spot)
}

// Select hit-tests and persists the result as the selected hotspot.
func (h *DemandHandler) Select(w http.ResponseWriter, r *http.Request) {
	x, y, ok := h.parsePoint(r.URL.Query(), w)
	if !ok {
		return
	}
	spot, err := h.sim.HitTest(x, y)
	if err != nil {
		http.Error(w, "No demand data yet", http.StatusServiceUnavailable)
		return
	}
	if spot == nil {
		if err := h.sim.Select(0); err != nil {
			log.Println("Error clearing selection:", err)
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := h.sim.Select(spot.ID); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, spot)
}

// ClearSelection drops the persisted selection.
func (h *DemandHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	if err := h.sim.Select(0); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetMapHTML serves an interactive geo scatter of the current bounds
// and hotspots.
func (h *DemandHandler) GetMapHTML(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sim.Snapshot()
	if err != nil {
		http.Error(w, "No demand data yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := heatmap.WriteMapHTML(w, snap.Bounds, snap.Hotspots); err != nil {
		log.Println("Error rendering map page:", err)
	}
}

// Ping handles GET /ping
func (h *DemandHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *DemandHandler) parseCoords(vals url.Values, w http.ResponseWriter) (lat, lng float64, ok bool) {
	var err error
	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lng, err = parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func (h *DemandHandler) parsePoint(vals url.Values, w http.ResponseWriter) (x, y float64, ok bool) {
	var err error
	x, err = parseArgFloat64(vals, X_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+X_QUERY_ARG, http.StatusBadRequest)
		return
	}
	y, err = parseArgFloat64(vals, Y_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+Y_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
