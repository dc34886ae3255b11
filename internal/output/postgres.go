package output

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOutput appends demand events to a single append-only table,
// one row per event with the raw JSON payload. It satisfies the
// simulator's OutputDestination.
type PostgresOutput struct {
	pool *pgxpool.Pool
}

func NewPostgresOutput(ctx context.Context, dsn string) (*PostgresOutput, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return &PostgresOutput{pool: pool}, nil
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	query := `
        INSERT INTO demand_events (topic, payload, created_at)
        VALUES ($1, $2, now())
    `
	_, err := p.pool.Exec(context.Background(), query, topic, msg)
	if err != nil {
		return fmt.Errorf("failed to insert event for topic %s: %w", topic, err)
	}
	return nil
}

func (p *PostgresOutput) Close() error {
	p.pool.Close()
	return nil
}
