package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Categories change rarely; the public campaign list is the
// hottest read and tolerates short staleness.
const (
	TTLCategories = 1 * time.Hour
	TTLCampaigns  = 30 * time.Second
	TTLCampaign   = 30 * time.Second
)

// Cache key prefixes
const (
	PrefixCategories = "categories:"
	PrefixCampaigns  = "campaigns:"
	PrefixCampaign   = "campaign:"
)

// Service is the Redis cache layer for hot public reads. Categories are
// seed-only so the tree expires by TTL alone; campaign entries are
// invalidated on write.
type Service interface {
	// Category tree
	GetCategoryTree(ctx context.Context) ([]byte, error)
	SetCategoryTree(ctx context.Context, data interface{}) error

	// Public campaign list (anonymous view only)
	GetCampaignList(ctx context.Context, filterKey string) ([]byte, error)
	SetCampaignList(ctx context.Context, filterKey string, data interface{}) error
	InvalidateCampaignLists(ctx context.Context) error

	// Single campaign page (anonymous view only)
	GetCampaign(ctx context.Context, id string) ([]byte, error)
	SetCampaign(ctx context.Context, id string, data interface{}) error
	InvalidateCampaign(ctx context.Context, id string) error
}

type service struct {
	client *redis.Client
}

// NewService creates a cache service backed by the given Redis client
func NewService(client *redis.Client) Service {
	return &service{client: client}
}

func (s *service) getRaw(ctx context.Context, key string) ([]byte, error) {
	return s.client.Get(ctx, key).Bytes()
}

func (s *service) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *service) GetCategoryTree(ctx context.Context) ([]byte, error) {
	return s.getRaw(ctx, PrefixCategories+"tree")
}

func (s *service) SetCategoryTree(ctx context.Context, data interface{}) error {
	return s.setJSON(ctx, PrefixCategories+"tree", data, TTLCategories)
}

func (s *service) GetCampaignList(ctx context.Context, filterKey string) ([]byte, error) {
	return s.getRaw(ctx, PrefixCampaigns+filterKey)
}

func (s *service) SetCampaignList(ctx context.Context, filterKey string, data interface{}) error {
	return s.setJSON(ctx, PrefixCampaigns+filterKey, data, TTLCampaigns)
}

// InvalidateCampaignLists drops every cached list variant (SCAN, not KEYS)
func (s *service) InvalidateCampaignLists(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, PrefixCampaigns+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *service) GetCampaign(ctx context.Context, id string) ([]byte, error) {
	return s.getRaw(ctx, PrefixCampaign+id)
}

func (s *service) SetCampaign(ctx context.Context, id string, data interface{}) error {
	return s.setJSON(ctx, PrefixCampaign+id, data, TTLCampaign)
}

func (s *service) InvalidateCampaign(ctx context.Context, id string) error {
	return s.client.Del(ctx, PrefixCampaign+id).Err()
}
