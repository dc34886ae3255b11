package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/drivergigspro/demandmap/internal/models"
	"github.com/drivergigspro/demandmap/internal/repositories"
)

// EntityRepository is an in-process EntityRepository. It backs tests and
// serves as the store when no Postgres DSN is configured.
type EntityRepository struct {
	mu       sync.RWMutex
	entities map[int]*models.BusinessEntity
	nextID   int
}

func NewEntityRepository() *EntityRepository {
	return &EntityRepository{
		entities: make(map[int]*models.BusinessEntity),
		nextID:   1,
	}
}

var entityFields = map[string]func(*models.BusinessEntity, string){
	"name":          func(e *models.BusinessEntity, v string) { e.Name = v },
	"entityType":    func(e *models.BusinessEntity, v string) { e.EntityType = v },
	"status":        func(e *models.BusinessEntity, v string) { e.Status = v },
	"formationDate": func(e *models.BusinessEntity, v string) { e.FormationDate = v },
	"einMasked":     func(e *models.BusinessEntity, v string) { e.EINMasked = v },
}

func (r *EntityRepository) BulkCreate(_ context.Context, entities []*models.BusinessEntity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entity := range entities {
		entity.ID = r.nextID
		r.nextID++
		copied := *entity
		r.entities[entity.ID] = &copied
	}
	return nil
}

func (r *EntityRepository) Create(_ context.Context, entity *models.BusinessEntity) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entity.ID = r.nextID
	r.nextID++
	now := time.Now()
	entity.CreatedAt = now
	entity.UpdatedAt = now
	copied := *entity
	r.entities[entity.ID] = &copied
	return entity.ID, nil
}

func (r *EntityRepository) GetByID(_ context.Context, id int) (*models.BusinessEntity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entity, ok := r.entities[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *entity
	return &copied, nil
}

func (r *EntityRepository) GetAll(_ context.Context) ([]*models.BusinessEntity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entities := make([]*models.BusinessEntity, 0, len(r.entities))
	for _, entity := range r.entities {
		copied := *entity
		entities = append(entities, &copied)
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
	return entities, nil
}

func (r *EntityRepository) UpdateField(_ context.Context, id int, update models.FieldUpdate) error {
	setter, ok := entityFields[update.Field]
	if !ok {
		return fmt.Errorf("field %q is not updatable", update.Field)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entity, ok := r.entities[id]
	if !ok {
		return repositories.ErrNotFound
	}
	setter(entity, update.Value)
	entity.UpdatedAt = time.Now()
	return nil
}

func (r *EntityRepository) Replace(_ context.Context, entity *models.BusinessEntity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.entities[entity.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	entity.CreatedAt = existing.CreatedAt
	entity.UpdatedAt = time.Now()
	copied := *entity
	r.entities[entity.ID] = &copied
	return nil
}

func (r *EntityRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entities[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.entities, id)
	return nil
}

func (r *EntityRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities), nil
}
