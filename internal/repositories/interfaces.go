package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/drivergigspro/demandmap/internal/models"
)

// ErrNotFound is returned by repositories when the row does not exist.
var ErrNotFound = errors.New("not found")

type EntityRepository interface {
	BulkCreate(ctx context.Context, entities []*models.BusinessEntity) error
	Create(ctx context.Context, entity *models.BusinessEntity) (int, error)
	GetByID(ctx context.Context, id int) (*models.BusinessEntity, error)
	GetAll(ctx context.Context) ([]*models.BusinessEntity, error)
	UpdateField(ctx context.Context, id int, update models.FieldUpdate) error
	Replace(ctx context.Context, entity *models.BusinessEntity) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) (int, error)
	GetByID(ctx context.Context, id int) (*models.Document, error)
	GetByEntityID(ctx context.Context, entityID int) ([]*models.Document, error)
	Delete(ctx context.Context, id int) error
}

// NotesRepository stores free-text notes keyed by resource name.
type NotesRepository interface {
	Set(ctx context.Context, resource, note string) error
	Get(ctx context.Context, resource string) (string, error)
	Delete(ctx context.Context, resource string) error
	List(ctx context.Context) ([]string, error)
}

// DemandCache stores generated demand snapshots per coordinate for a
// bounded lifetime.
type DemandCache interface {
	Get(ctx context.Context, lat, lng float64) (*models.DemandSnapshot, error)
	Set(ctx context.Context, lat, lng float64, snapshot *models.DemandSnapshot, ttl time.Duration) error
}
