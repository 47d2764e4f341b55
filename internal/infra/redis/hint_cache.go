package redis

import (
	"context"
	"encoding/json"
	"time"

	"eduquest-service/internal/app"
	"eduquest-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// HintCache memoizes generated hints per (quest, question) so repeated hint
// requests do not re-call the LLM. Generator errors are never cached.
type HintCache struct {
	client    *redis.Client
	generator app.HintGenerator
	ttl       time.Duration
}

func NewHintCache(client *redis.Client, generator app.HintGenerator, ttl time.Duration) *HintCache {
	return &HintCache{client: client, generator: generator, ttl: ttl}
}

func (c *HintCache) GenerateHint(ctx context.Context, req domain.HintRequest) (domain.Hint, error) {
	key := "hint:" + req.Quest.ID + ":" + req.Question.ID

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var hint domain.Hint
		if err := json.Unmarshal(raw, &hint); err == nil {
			return hint, nil
		}
	}

	hint, err := c.generator.GenerateHint(ctx, req)
	if err != nil {
		return domain.Hint{}, err
	}

	if raw, err := json.Marshal(hint); err == nil {
		_ = c.client.Set(ctx, key, raw, c.ttl).Err()
	}
	return hint, nil
}
