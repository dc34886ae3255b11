package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/drivergigspro/demandmap/internal/models"
	"github.com/drivergigspro/demandmap/internal/repositories"
)

type DocumentRepository struct {
	mu     sync.RWMutex
	docs   map[int]*models.Document
	nextID int
}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{
		docs:   make(map[int]*models.Document),
		nextID: 1,
	}
}

func (r *DocumentRepository) Create(_ context.Context, doc *models.Document) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc.ID = r.nextID
	r.nextID++
	doc.UploadedAt = time.Now()
	copied := *doc
	r.docs[doc.ID] = &copied
	return doc.ID, nil
}

func (r *DocumentRepository) GetByID(_ context.Context, id int) (*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

func (r *DocumentRepository) GetByEntityID(_ context.Context, entityID int) ([]*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var docs []*models.Document
	for _, doc := range r.docs {
		if doc.EntityID == entityID {
			copied := *doc
			docs = append(docs, &copied)
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (r *DocumentRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}
