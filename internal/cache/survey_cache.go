package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sossut/adp2/internal/model"
)

// SurveyCache handles Redis operations for survey-key metadata on the
// submission hot path, so a resident's batch does not hit MongoDB just
// to resolve the key.
type SurveyCache interface {
	SetMeta(ctx context.Context, key string, meta *model.SurveyMeta) error
	GetMeta(ctx context.Context, key string) (*model.SurveyMeta, error)
	Delete(ctx context.Context, key string) error
}

type surveyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSurveyCache creates a new survey cache
func NewSurveyCache(client *redis.Client) SurveyCache {
	return &surveyCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *surveyCache) key(surveyKey string) string {
	return fmt.Sprintf("survey:%s", surveyKey)
}

func (c *surveyCache) SetMeta(ctx context.Context, key string, meta *model.SurveyMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), data, c.ttl).Err()
}

func (c *surveyCache) GetMeta(ctx context.Context, key string) (*model.SurveyMeta, error) {
	data, err := c.client.Get(ctx, c.key(key)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var meta model.SurveyMeta
	if err := json.Unmarshal([]byte(data), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (c *surveyCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}
