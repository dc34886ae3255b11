package server

import (
	"github.com/drivergigspro/demandmap/internal/server/handlers"
	"github.com/gorilla/mux"
)

type Router struct {
	demandHandler   *handlers.DemandHandler
	entityHandler   *handlers.EntityHandler
	notesHandler    *handlers.NotesHandler
	resourceHandler *handlers.ResourceHandler
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	demandHandler *handlers.DemandHandler,
	entityHandler *handlers.EntityHandler,
	notesHandler *handlers.NotesHandler,
	resourceHandler *handlers.ResourceHandler,
	router *mux.Router) *Router {
	return &Router{
		demandHandler:   demandHandler,
		entityHandler:   entityHandler,
		notesHandler:    notesHandler,
		resourceHandler: resourceHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude(float)}&lng={longitude(float)}&city={name}
	r.router.HandleFunc("/v1/demand", r.demandHandler.GetDemand).Methods("GET")
	r.router.HandleFunc("/v1/demand/refresh", r.demandHandler.Refresh).Methods("POST")
	r.router.HandleFunc("/v1/demand/heatmap.png", r.demandHandler.GetHeatmapPNG).Methods("GET")
	r.router.HandleFunc("/v1/demand/map.html", r.demandHandler.GetMapHTML).Methods("GET")
	// expects ?x={canvas x(float)}&y={canvas y(float)}
	r.router.HandleFunc("/v1/demand/hit", r.demandHandler.GetHit).Methods("GET")
	r.router.HandleFunc("/v1/demand/select", r.demandHandler.Select).Methods("GET")
	r.router.HandleFunc("/v1/demand/select", r.demandHandler.ClearSelection).Methods("DELETE")

	r.router.HandleFunc("/v1/entities", r.entityHandler.ListEntities).Methods("GET")
	r.router.HandleFunc("/v1/entities", r.entityHandler.CreateEntity).Methods("POST")
	r.router.HandleFunc("/v1/entities/{id}", r.entityHandler.GetEntity).Methods("GET")
	r.router.HandleFunc("/v1/entities/{id}", r.entityHandler.PatchEntity).Methods("PATCH")
	r.router.HandleFunc("/v1/entities/{id}", r.entityHandler.ReplaceEntity).Methods("PUT")
	r.router.HandleFunc("/v1/entities/{id}", r.entityHandler.DeleteEntity).Methods("DELETE")
	r.router.HandleFunc("/v1/entities/{id}/documents", r.entityHandler.ListDocuments).Methods("GET")
	r.router.HandleFunc("/v1/entities/{id}/documents", r.entityHandler.CreateDocument).Methods("POST")
	r.router.HandleFunc("/v1/entities/{id}/documents/{docId}", r.entityHandler.DeleteDocument).Methods("DELETE")

	r.router.HandleFunc("/v1/notes", r.notesHandler.ListNotes).Methods("GET")
	r.router.HandleFunc("/v1/notes/{resource}", r.notesHandler.GetNote).Methods("GET")
	r.router.HandleFunc("/v1/notes/{resource}", r.notesHandler.PutNote).Methods("PUT")
	r.router.HandleFunc("/v1/notes/{resource}", r.notesHandler.DeleteNote).Methods("DELETE")

	r.router.HandleFunc("/v1/resources", r.resourceHandler.ListResources).Methods("GET")

	r.router.HandleFunc("/ping", r.demandHandler.Ping).Methods("GET")
}
