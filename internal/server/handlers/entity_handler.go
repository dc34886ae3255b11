package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/drivergigspro/demandmap/internal/models"
	"github.com/drivergigspro/demandmap/internal/repositories"
	"github.com/gorilla/mux"
)

type EntityHandler struct {
	entities  repositories.EntityRepository
	documents repositories.DocumentRepository
}

func NewEntityHandler(entities repositories.EntityRepository, documents repositories.DocumentRepository) *EntityHandler {
	return &EntityHandler{entities: entities, documents: documents}
}

func (h *EntityHandler) ListEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := h.entities.GetAll(r.Context())
	if err != nil {
		log.Println("Error listing entities:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if entities == nil {
		entities = []*models.BusinessEntity{}
	}
	writeJSON(w, http.StatusOK, entities)
}

func (h *EntityHandler) GetEntity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	entity, err := h.entities.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Entity not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("Error getting entity:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

func (h *EntityHandler) CreateEntity(w http.ResponseWriter, r *http.Request) {
	var entity models.BusinessEntity
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if _, err := h.entities.Create(r.Context(), &entity); err != nil {
		log.Println("Error creating entity:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, entity)
}

// PatchEntity applies a single whitelisted field update.
func (h *EntityHandler) PatchEntity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	var update models.FieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	err := h.entities.UpdateField(r.Context(), id, update)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Entity not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	entity, err := h.entities.GetByID(r.Context(), id)
	if err != nil {
		log.Println("Error reloading entity:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

func (h *EntityHandler) ReplaceEntity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	var entity models.BusinessEntity
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	entity.ID = id
	err := h.entities.Replace(r.Context(), &entity)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Entity not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("Error replacing entity:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

func (h *EntityHandler) DeleteEntity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	err := h.entities.Delete(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Entity not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("Error deleting entity:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EntityHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	docs, err := h.documents.GetByEntityID(r.Context(), id)
	if err != nil {
		log.Println("Error listing documents:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if docs == nil {
		docs = []*models.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

func (h *EntityHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	if _, err := h.entities.GetByID(r.Context(), id); errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Entity not found", http.StatusNotFound)
		return
	}
	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	doc.EntityID = id
	if _, err := h.documents.Create(r.Context(), &doc); err != nil {
		log.Println("Error creating document:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (h *EntityHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID, err := strconv.Atoi(mux.Vars(r)["docId"])
	if err != nil {
		http.Error(w, "Invalid document id", http.StatusBadRequest)
		return
	}
	err = h.documents.Delete(r.Context(), docID)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Document not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("Error deleting document:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EntityHandler) parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid entity id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
