package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/drivergigspro/demandmap/internal/db"
	"github.com/drivergigspro/demandmap/internal/models"
)

// DEMAND_KEY_FORMAT_V1 keys cached snapshots by coordinate rounded to
// two decimals, roughly a 1km cell, so nearby queries share an entry.
const DEMAND_KEY_FORMAT_V1 = "demand_v1:%.2f_%.2f"

// DemandCache stores generated demand snapshots per coordinate cell.
type DemandCache struct {
	client db.RedisClient
}

func NewDemandCache(client db.RedisClient) *DemandCache {
	return &DemandCache{client: client}
}

func (c *DemandCache) Get(ctx context.Context, lat, lng float64) (*models.DemandSnapshot, error) {
	key := fmt.Sprintf(DEMAND_KEY_FORMAT_V1, lat, lng)
	data, err := c.client.Get(ctx, key)
	if err == db.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[DemandCache] failed to get snapshot: %v", err)
	}
	var snapshot models.DemandSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("[DemandCache] failed to unmarshal snapshot: %v", err)
	}
	return &snapshot, nil
}

func (c *DemandCache) Set(ctx context.Context, lat, lng float64, snapshot *models.DemandSnapshot, ttl time.Duration) error {
	key := fmt.Sprintf(DEMAND_KEY_FORMAT_V1, lat, lng)
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("[DemandCache] failed to marshal snapshot: %v", err)
	}
	return c.client.Set(ctx, key, string(data), ttl)
}
