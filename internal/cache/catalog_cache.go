package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sossut/adp2/internal/model"
	"github.com/sossut/adp2/internal/scoring"
)

// CatalogCache caches summary catalog rows in Redis. Catalog rows are
// immutable after seeding, so entries are written without a TTL.
type CatalogCache interface {
	GetResultSummary(ctx context.Context, s1, s2, s3 scoring.Bucket) (*model.ResultSummary, error)
	SetResultSummary(ctx context.Context, summary *model.ResultSummary) error
	GetSectionSummary(ctx context.Context, sectionID int, bucket scoring.Bucket) (*model.SectionSummary, error)
	SetSectionSummary(ctx context.Context, summary *model.SectionSummary) error
	GetCategorySummary(ctx context.Context, categoryID int, bucket scoring.Bucket) (*model.QuestionCategorySummary, error)
	SetCategorySummary(ctx context.Context, summary *model.QuestionCategorySummary) error
}

type catalogCache struct {
	client *redis.Client
}

// NewCatalogCache creates a new catalog cache
func NewCatalogCache(client *redis.Client) CatalogCache {
	return &catalogCache{client: client}
}

func (c *catalogCache) resultKey(s1, s2, s3 scoring.Bucket) string {
	return fmt.Sprintf("catalog:result:%s:%s:%s", s1, s2, s3)
}

func (c *catalogCache) sectionKey(sectionID int, bucket scoring.Bucket) string {
	return fmt.Sprintf("catalog:section:%d:%s", sectionID, bucket)
}

func (c *catalogCache) categoryKey(categoryID int, bucket scoring.Bucket) string {
	return fmt.Sprintf("catalog:category:%d:%s", categoryID, bucket)
}

func (c *catalogCache) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *catalogCache) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, 0).Err()
}

func (c *catalogCache) GetResultSummary(ctx context.Context, s1, s2, s3 scoring.Bucket) (*model.ResultSummary, error) {
	var summary model.ResultSummary
	found, err := c.get(ctx, c.resultKey(s1, s2, s3), &summary)
	if err != nil || !found {
		return nil, err
	}
	return &summary, nil
}

func (c *catalogCache) SetResultSummary(ctx context.Context, summary *model.ResultSummary) error {
	return c.set(ctx, c.resultKey(summary.SectionOne, summary.SectionTwo, summary.SectionThree), summary)
}

func (c *catalogCache) GetSectionSummary(ctx context.Context, sectionID int, bucket scoring.Bucket) (*model.SectionSummary, error) {
	var summary model.SectionSummary
	found, err := c.get(ctx, c.sectionKey(sectionID, bucket), &summary)
	if err != nil || !found {
		return nil, err
	}
	return &summary, nil
}

func (c *catalogCache) SetSectionSummary(ctx context.Context, summary *model.SectionSummary) error {
	return c.set(ctx, c.sectionKey(summary.SectionID, summary.Bucket), summary)
}

func (c *catalogCache) GetCategorySummary(ctx context.Context, categoryID int, bucket scoring.Bucket) (*model.QuestionCategorySummary, error) {
	var summary model.QuestionCategorySummary
	found, err := c.get(ctx, c.categoryKey(categoryID, bucket), &summary)
	if err != nil || !found {
		return nil, err
	}
	return &summary, nil
}

func (c *catalogCache) SetCategorySummary(ctx context.Context, summary *model.QuestionCategorySummary) error {
	return c.set(ctx, c.categoryKey(summary.CategoryID, summary.Bucket), summary)
}
