package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/drivergigspro/demandmap/internal/db"
	"github.com/drivergigspro/demandmap/internal/repositories"
	"github.com/gorilla/mux"
)

// Note is the wire form of a resource note.
type Note struct {
	Resource string `json:"resource"`
	Note     string `json:"note"`
}

type NotesHandler struct {
	notes repositories.NotesRepository
}

func NewNotesHandler(notes repositories.NotesRepository) *NotesHandler {
	return &NotesHandler{notes: notes}
}

func (h *NotesHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	resources, err := h.notes.List(r.Context())
	if err != nil {
		log.Println("Error listing notes:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if resources == nil {
		resources = []string{}
	}
	writeJSON(w, http.StatusOK, resources)
}

func (h *NotesHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	resource := mux.Vars(r)["resource"]
	note, err := h.notes.Get(r.Context(), resource)
	if err == db.ErrKeyNotFound {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("Error getting note:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, Note{Resource: resource, Note: note})
}

func (h *NotesHandler) PutNote(w http.ResponseWriter, r *http.Request) {
	resource := mux.Vars(r)["resource"]
	var body Note
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.notes.Set(r.Context(), resource, body.Note); err != nil {
		log.Println("Error saving note:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, Note{Resource: resource, Note: body.Note})
}

func (h *NotesHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	resource := mux.Vars(r)["resource"]
	if err := h.notes.Delete(r.Context(), resource); err != nil {
		log.Println("Error deleting note:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
