package postgres

import (
	"context"
	"errors"

	"github.com/drivergigspro/demandmap/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) (int, error) {
	query := `
        INSERT INTO documents (
            entity_id, name, category, content_type, size_bytes,
            storage_key, uploaded_at
        ) VALUES ($1, $2, $3, $4, $5, $6, now())
        RETURNING id, uploaded_at
    `
	err := r.pool.QueryRow(ctx, query,
		doc.EntityID,
		doc.Name,
		doc.Category,
		doc.ContentType,
		doc.SizeBytes,
		doc.StorageKey,
	).Scan(&doc.ID, &doc.UploadedAt)
	if err != nil {
		return 0, err
	}
	return doc.ID, nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id int) (*models.Document, error) {
	query := `
        SELECT id, entity_id, name, category, content_type, size_bytes,
               storage_key, uploaded_at
        FROM documents
        WHERE id = $1
    `
	doc := &models.Document{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.EntityID,
		&doc.Name,
		&doc.Category,
		&doc.ContentType,
		&doc.SizeBytes,
		&doc.StorageKey,
		&doc.UploadedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *DocumentRepository) GetByEntityID(ctx context.Context, entityID int) ([]*models.Document, error) {
	query := `
        SELECT id, entity_id, name, category, content_type, size_bytes,
               storage_key, uploaded_at
        FROM documents
        WHERE entity_id = $1
        ORDER BY id
    `
	rows, err := r.pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc := &models.Document{}
		err := rows.Scan(
			&doc.ID,
			&doc.EntityID,
			&doc.Name,
			&doc.Category,
			&doc.ContentType,
			&doc.SizeBytes,
			&doc.StorageKey,
			&doc.UploadedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *DocumentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
