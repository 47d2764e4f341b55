// Package redis provides Redis-backed caches in front of the quest store and
// the hint generator.
package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"eduquest-service/internal/app"
	"eduquest-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// QuestCache caches quest documents in Redis (JSON value per quest) and falls
// back to the underlying repository on cache miss. Listing and seeding pass
// straight through; quest content is immutable so cached entries never go
// stale, the TTL just bounds memory.
type QuestCache struct {
	client *redis.Client
	repo   app.QuestRepository
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewQuestCache(client *redis.Client, repo app.QuestRepository, ttl time.Duration) *QuestCache {
	return &QuestCache{
		client: client,
		repo:   repo,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *QuestCache) Get(ctx context.Context, id string) (domain.Quest, error) {
	key := c.key(id)

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var quest domain.Quest
		if err := json.Unmarshal(raw, &quest); err == nil {
			return quest, nil
		}
	}

	result, err, _ := c.sf.Do(id, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
			var quest domain.Quest
			if err := json.Unmarshal(raw, &quest); err == nil {
				return quest, nil
			}
		}

		quest, err := c.repo.Get(ctx, id)
		if err != nil {
			return domain.Quest{}, err
		}

		if raw, err := json.Marshal(quest); err == nil {
			_ = c.client.Set(ctx, key, raw, c.ttlWithJitter()).Err()
		}
		return quest, nil
	})
	if err != nil {
		return domain.Quest{}, err
	}
	return result.(domain.Quest), nil
}

func (c *QuestCache) List(ctx context.Context, filter domain.QuestFilter) ([]domain.Quest, error) {
	return c.repo.List(ctx, filter)
}

func (c *QuestCache) SeedIfEmpty(ctx context.Context, quests []domain.Quest) (int, error) {
	return c.repo.SeedIfEmpty(ctx, quests)
}

func (c *QuestCache) key(id string) string {
	return "quest:" + id
}

func (c *QuestCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
