package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/drivergigspro/demandmap/internal/db"
)

const NOTES_KEY_FORMAT_V1 = "resource_notes_v1:%s"
const NOTES_KEY_PATTERN_V1 = "resource_notes_v1:*"

// NotesRepository stores free-text notes per resource name in Redis.
type NotesRepository struct {
	client db.RedisClient
}

func NewNotesRepository(client db.RedisClient) *NotesRepository {
	return &NotesRepository{client: client}
}

func (r *NotesRepository) Set(ctx context.Context, resource, note string) error {
	key := fmt.Sprintf(NOTES_KEY_FORMAT_V1, resource)
	if err := r.client.Set(ctx, key, note, 0); err != nil {
		return fmt.Errorf("[NotesRepository] failed to set note for %s: %v", resource, err)
	}
	return nil
}

func (r *NotesRepository) Get(ctx context.Context, resource string) (string, error) {
	key := fmt.Sprintf(NOTES_KEY_FORMAT_V1, resource)
	note, err := r.client.Get(ctx, key)
	if err == db.ErrKeyNotFound {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("[NotesRepository] failed to get note for %s: %v", resource, err)
	}
	return note, nil
}

func (r *NotesRepository) Delete(ctx context.Context, resource string) error {
	key := fmt.Sprintf(NOTES_KEY_FORMAT_V1, resource)
	return r.client.Del(ctx, key)
}

// List returns the resource names that currently have notes.
func (r *NotesRepository) List(ctx context.Context) ([]string, error) {
	keys, err := r.client.Keys(ctx, NOTES_KEY_PATTERN_V1)
	if err != nil {
		return nil, fmt.Errorf("[NotesRepository] failed to list notes: %v", err)
	}
	resources := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(NOTES_KEY_FORMAT_V1, "")
	for _, key := range keys {
		resources = append(resources, strings.TrimPrefix(key, prefix))
	}
	return resources, nil
}
