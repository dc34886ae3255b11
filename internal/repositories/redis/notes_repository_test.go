package redis

import (
	"context"
	"testing"

	"github.com/drivergigspro/demandmap/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewNotesRepository(db.NewMemoryClient())

	_, err := repo.Get(ctx, "wex")
	assert.Equal(t, db.ErrKeyNotFound, err)

	require.NoError(t, repo.Set(ctx, "wex", "applied, card pending"))
	note, err := repo.Get(ctx, "wex")
	require.NoError(t, err)
	assert.Equal(t, "applied, card pending", note)

	require.NoError(t, repo.Set(ctx, "dat", "subscription active"))
	resources, err := repo.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"wex", "dat"}, resources)

	require.NoError(t, repo.Delete(ctx, "wex"))
	_, err = repo.Get(ctx, "wex")
	assert.Equal(t, db.ErrKeyNotFound, err)
}
