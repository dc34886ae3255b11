package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/drivergigspro/demandmap/internal/db"
	"github.com/drivergigspro/demandmap/internal/models"
	"github.com/drivergigspro/demandmap/internal/repositories/memory"
	redisrepos "github.com/drivergigspro/demandmap/internal/repositories/redis"
	"github.com/drivergigspro/demandmap/internal/server/handlers"
	"github.com/drivergigspro/demandmap/internal/simulator"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedGeocoder struct {
	city string
	err  error
}

func (g fixedGeocoder) CityName(_ context.Context, _, _ float64) (string, error) {
	return g.city, g.err
}

type discardOutput struct{}

func (discardOutput) WriteMessage(string, []byte) error { return nil }
func (discardOutput) Close() error                      { return nil }

func newTestRouter(t *testing.T) (*mux.Router, *simulator.Simulator) {
	t.Helper()

	cfg := &models.Config{
		RefreshInterval:    time.Second,
		ManualRefreshDelay: time.Millisecond,
		CacheTTL:           5 * time.Minute,
	}
	provider := simulator.StaticLocationProvider{
		Position: models.Location{Lat: models.FallbackLat, Lng: models.FallbackLng},
	}
	sim := simulator.NewSimulator(cfg, fixedGeocoder{city: "Atlanta"}, provider, discardOutput{})
	sim.ResolveOrigin(context.Background())

	kv := db.NewMemoryClient()
	demandHandler := handlers.NewDemandHandler(sim, redisrepos.NewDemandCache(kv), fixedGeocoder{city: "Atlanta"}, cfg.CacheTTL)
	entityHandler := handlers.NewEntityHandler(memory.NewEntityRepository(), memory.NewDocumentRepository())
	notesHandler := handlers.NewNotesHandler(redisrepos.NewNotesRepository(kv))
	resourceHandler := handlers.NewResourceHandler()

	muxRouter := mux.NewRouter()
	NewRouter(demandHandler, entityHandler, notesHandler, resourceHandler, muxRouter).RegisterRoutes()
	return muxRouter, sim
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}
	req := httptest.NewRequest(method, path, &reqBody)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestPingRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, "GET", "/ping", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "pong")
}

func TestGetDemandLiveSnapshot(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, "GET", "/v1/demand", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var snap models.DemandSnapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
	require.Len(t, snap.Hotspots, 8)
	assert.Equal(t, "Atlanta", snap.UserLocation.City)
	assert.Equal(t, models.DataSourceRealtime, snap.DataSource)

	for i := 1; i < len(snap.Hotspots); i++ {
		assert.GreaterOrEqual(t, snap.Hotspots[i-1].Intensity, snap.Hotspots[i].Intensity)
	}
}

func TestGetDemandByCoordinateCaches(t *testing.T) {
	router, _ := newTestRouter(t)
	path := "/v1/demand?lat=40.71&lng=-74.01&city=New%20York%20City"

	rr := doJSON(t, router, "GET", path, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var first models.DemandSnapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &first))
	assert.Equal(t, models.DataSourceRealtime, first.DataSource)
	assert.Equal(t, "New York City", first.UserLocation.City)
	require.NotNil(t, first.CacheExpiry)

	rr = doJSON(t, router, "GET", path, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var second models.DemandSnapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &second))
	assert.Equal(t, models.DataSourceCached, second.DataSource)

	// forceRefresh bypasses the cached entry
	rr = doJSON(t, router, "GET", path+"&forceRefresh=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var third models.DemandSnapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &third))
	assert.Equal(t, models.DataSourceRealtime, third.DataSource)
}

func TestGetDemandBadCoordinate(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, "GET", "/v1/demand?lat=abc&lng=-74.01", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRefreshRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, "POST", "/v1/demand/refresh", nil)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestHeatmapPNGRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, "GET", "/v1/demand/heatmap.png", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	// PNG signature
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")))
}

func TestMapHTMLRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, "GET", "/v1/demand/map.html", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Hotspots")
}

func TestHitAndSelectRoutes(t *testing.T) {
	router, sim := newTestRouter(t)

	// locate a real spot centre through the simulator itself
	snap, err := sim.Snapshot()
	require.NoError(t, err)
	require.NotEmpty(t, snap.Hotspots)

	// miss far outside the canvas
	rr := doJSON(t, router, "GET", "/v1/demand/hit?x=-500&y=-500", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// downtown sits slightly left of and above canvas centre; its radius
	// is at least 15px so the projected centre area is a guaranteed hit
	rr = doJSON(t, router, "GET", "/v1/demand/hit?x=392&y=241", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var spot models.HotSpot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &spot))
	assert.Equal(t, 1, spot.ID)

	rr = doJSON(t, router, "GET", "/v1/demand/select?x=392&y=241", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	selected := sim.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, 1, selected.ID)

	rr = doJSON(t, router, "DELETE", "/v1/demand/select", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Nil(t, sim.Selected())
}

func TestHitRouteBadArgs(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, "GET", "/v1/demand/hit?x=oops&y=1", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestEntityCRUDRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	entity := map[string]string{
		"name":          "Peachtree Hauling LLC",
		"entityType":    "llc",
		"status":        "active",
		"formationDate": "2021-04-01",
		"einMasked":     "**-***1234",
	}
	rr := doJSON(t, router, "POST", "/v1/entities", entity)
	require.Equal(t, http.StatusCreated, rr.Code)
	var created models.BusinessEntity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	rr = doJSON(t, router, "GET", fmt.Sprintf("/v1/entities/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, "PATCH", fmt.Sprintf("/v1/entities/%d", created.ID), models.FieldUpdate{Field: "status", Value: "dissolved"})
	require.Equal(t, http.StatusOK, rr.Code)
	var patched models.BusinessEntity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &patched))
	assert.Equal(t, "dissolved", patched.Status)

	rr = doJSON(t, router, "PATCH", fmt.Sprintf("/v1/entities/%d", created.ID), models.FieldUpdate{Field: "einMasked", Value: "hax"})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, "PATCH", fmt.Sprintf("/v1/entities/%d", created.ID), models.FieldUpdate{Field: "id", Value: "7"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	created.Name = "Peachtree Logistics LLC"
	rr = doJSON(t, router, "PUT", fmt.Sprintf("/v1/entities/%d", created.ID), created)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, "GET", "/v1/entities", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list []models.BusinessEntity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)
	assert.Equal(t, "Peachtree Logistics LLC", list[0].Name)

	rr = doJSON(t, router, "DELETE", fmt.Sprintf("/v1/entities/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, router, "GET", fmt.Sprintf("/v1/entities/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDocumentRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, "POST", "/v1/entities", map[string]string{"name": "Doc Holder LLC", "entityType": "llc", "status": "active"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var entity models.BusinessEntity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entity))

	doc := map[string]interface{}{
		"name":        "formation_articles.pdf",
		"category":    "formation",
		"contentType": "application/pdf",
		"sizeBytes":   123456,
		"storageKey":  "ck2x8s0m90000test",
	}
	rr = doJSON(t, router, "POST", fmt.Sprintf("/v1/entities/%d/documents", entity.ID), doc)
	require.Equal(t, http.StatusCreated, rr.Code)
	var created models.Document
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, entity.ID, created.EntityID)

	rr = doJSON(t, router, "GET", fmt.Sprintf("/v1/entities/%d/documents", entity.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var docs []models.Document
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &docs))
	assert.Len(t, docs, 1)

	// document creation on a missing entity is rejected
	rr = doJSON(t, router, "POST", "/v1/entities/999/documents", doc)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, "DELETE", fmt.Sprintf("/v1/entities/%d/documents/%d", entity.ID, created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, router, "GET", fmt.Sprintf("/v1/entities/%d/documents", entity.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	docs = nil
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &docs))
	assert.Empty(t, docs)
}

func TestNotesRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, "GET", "/v1/notes/wex", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, "PUT", "/v1/notes/wex", map[string]string{"note": "applied 2026-08, waiting on card"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, "GET", "/v1/notes/wex", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "waiting on card")

	rr = doJSON(t, router, "GET", "/v1/notes", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var resources []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resources))
	assert.Equal(t, []string{"wex"}, resources)

	rr = doJSON(t, router, "DELETE", "/v1/notes/wex", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, router, "GET", "/v1/notes/wex", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResourcesRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, "GET", "/v1/resources", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var all []models.Resource
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Len(t, all, 12)

	rr = doJSON(t, router, "GET", "/v1/resources?category=fuel_card", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var fuel []models.Resource
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fuel))
	require.NotEmpty(t, fuel)
	for _, res := range fuel {
		assert.Equal(t, models.ResourceFuelCard, res.Category)
	}
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, "GET", "/v1/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
