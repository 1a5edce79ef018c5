package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stayInsights/business/segmentation"
	"stayInsights/domain"

	"github.com/pobyzaarif/goshortcute"
	"github.com/redis/go-redis/v9"
)

type RFMCacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ segmentation.RFMCache = (*RFMCacheRepository)(nil)

func NewRFMCacheRepository(client *redis.Client, ttl time.Duration) *RFMCacheRepository {
	return &RFMCacheRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *RFMCacheRepository) key(tenantID, batchKey string) string {
	// tenant IDs are caller-supplied; base64 keeps the key charset safe
	return fmt.Sprintf("rfm:%s:%s", goshortcute.StringtoBase64Encode(tenantID), batchKey)
}

func (r *RFMCacheRepository) Get(ctx context.Context, tenantID, batchKey string) ([]domain.RFMAnalysis, bool, error) {
	raw, err := r.client.Get(ctx, r.key(tenantID, batchKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read rfm cache: %w", err)
	}

	var analyses []domain.RFMAnalysis
	if err := json.Unmarshal(raw, &analyses); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached rfm: %w", err)
	}

	return analyses, true, nil
}

func (r *RFMCacheRepository) Set(ctx context.Context, tenantID, batchKey string, analyses []domain.RFMAnalysis) error {
	raw, err := json.Marshal(analyses)
	if err != nil {
		return fmt.Errorf("failed to marshal rfm analyses: %w", err)
	}

	if err := r.client.Set(ctx, r.key(tenantID, batchKey), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write rfm cache: %w", err)
	}

	return nil
}
