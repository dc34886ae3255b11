package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/drivergigspro/demandmap/internal/models"
	"github.com/drivergigspro/demandmap/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = repositories.ErrNotFound

// entityColumns whitelists the columns a partial update may touch.
var entityColumns = map[string]string{
	"name":          "name",
	"entityType":    "entity_type",
	"status":        "status",
	"formationDate": "formation_date",
	"einMasked":     "ein_masked",
}

type EntityRepository struct {
	pool *pgxpool.Pool
}

func NewEntityRepository(pool *pgxpool.Pool) *EntityRepository {
	return &EntityRepository{pool: pool}
}

func (r *EntityRepository) BulkCreate(ctx context.Context, entities []*models.BusinessEntity) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, entity := range entities {
		query := `
            INSERT INTO business_entities (
                name, entity_type, status, formation_date, ein_masked,
                created_at, updated_at
            ) VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING id
        `
		err = tx.QueryRow(ctx, query,
			entity.Name,
			entity.EntityType,
			entity.Status,
			entity.FormationDate,
			entity.EINMasked,
			entity.CreatedAt,
			entity.UpdatedAt,
		).Scan(&entity.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *EntityRepository) Create(ctx context.Context, entity *models.BusinessEntity) (int, error) {
	query := `
        INSERT INTO business_entities (
            name, entity_type, status, formation_date, ein_masked,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, now(), now())
        RETURNING id, created_at, updated_at
    `
	err := r.pool.QueryRow(ctx, query,
		entity.Name,
		entity.EntityType,
		entity.Status,
		entity.FormationDate,
		entity.EINMasked,
	).Scan(&entity.ID, &entity.CreatedAt, &entity.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return entity.ID, nil
}

func (r *EntityRepository) GetByID(ctx context.Context, id int) (*models.BusinessEntity, error) {
	query := `
        SELECT id, name, entity_type, status, formation_date, ein_masked,
               created_at, updated_at
        FROM business_entities
        WHERE id = $1
    `
	entity := &models.BusinessEntity{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&entity.ID,
		&entity.Name,
		&entity.EntityType,
		&entity.Status,
		&entity.FormationDate,
		&entity.EINMasked,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *EntityRepository) GetAll(ctx context.Context) ([]*models.BusinessEntity, error) {
	query := `
        SELECT id, name, entity_type, status, formation_date, ein_masked,
               created_at, updated_at
        FROM business_entities
        ORDER BY id
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []*models.BusinessEntity
	for rows.Next() {
		entity := &models.BusinessEntity{}
		err := rows.Scan(
			&entity.ID,
			&entity.Name,
			&entity.EntityType,
			&entity.Status,
			&entity.FormationDate,
			&entity.EINMasked,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, rows.Err()
}

func (r *EntityRepository) UpdateField(ctx context.Context, id int, update models.FieldUpdate) error {
	column, ok := entityColumns[update.Field]
	if !ok {
		return fmt.Errorf("field %q is not updatable", update.Field)
	}
	query := fmt.Sprintf(
		"UPDATE business_entities SET %s = $1, updated_at = now() WHERE id = $2",
		column,
	)
	tag, err := r.pool.Exec(ctx, query, update.Value, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EntityRepository) Replace(ctx context.Context, entity *models.BusinessEntity) error {
	query := `
        UPDATE business_entities
        SET name = $1, entity_type = $2, status = $3, formation_date = $4,
            ein_masked = $5, updated_at = now()
        WHERE id = $6
    `
	tag, err := r.pool.Exec(ctx, query,
		entity.Name,
		entity.EntityType,
		entity.Status,
		entity.FormationDate,
		entity.EINMasked,
		entity.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EntityRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM business_entities WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EntityRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM business_entities").Scan(&count)
	return count, err
}
