package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"eduquest-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// QuestStore persists quests as JSONB documents with extracted filter columns.
type QuestStore struct {
	pool *pgxpool.Pool
}

func NewQuestStore(pool *pgxpool.Pool) *QuestStore {
	return &QuestStore{pool: pool}
}

func (s *QuestStore) Get(ctx context.Context, id string) (domain.Quest, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM quests WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Quest{}, domain.ErrQuestNotFound
	}
	if err != nil {
		return domain.Quest{}, fmt.Errorf("load quest: %w", err)
	}
	var quest domain.Quest
	if err := json.Unmarshal(raw, &quest); err != nil {
		return domain.Quest{}, fmt.Errorf("unmarshal quest: %w", err)
	}
	return quest, nil
}

func (s *QuestStore) List(ctx context.Context, filter domain.QuestFilter) ([]domain.Quest, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT data
		FROM quests
		WHERE ($1 = 0 OR grade = $1)
		  AND ($2 = '' OR subject = $2)
		ORDER BY quest_order ASC, id ASC`,
		filter.Grade, string(filter.Subject),
	)
	if err != nil {
		return nil, fmt.Errorf("query quests: %w", err)
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan quest: %w", err)
		}
		var quest domain.Quest
		if err := json.Unmarshal(raw, &quest); err != nil {
			return nil, fmt.Errorf("unmarshal quest: %w", err)
		}
		quests = append(quests, quest)
	}
	return quests, rows.Err()
}

// SeedIfEmpty bulk-inserts the catalog inside a transaction when the table is
// empty. Fixed quest ids plus ON CONFLICT DO NOTHING keep concurrent
// bootstraps from duplicating content.
func (s *QuestStore) SeedIfEmpty(ctx context.Context, quests []domain.Quest) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM quests`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count quests: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, quest := range quests {
		data, err := json.Marshal(quest)
		if err != nil {
			return 0, fmt.Errorf("marshal quest %s: %w", quest.ID, err)
		}
		tag, err := tx.Exec(ctx, `
			INSERT INTO quests (id, subject, grade, quest_order, data)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`,
			quest.ID, string(quest.Subject), quest.Grade, quest.Order, data,
		)
		if err != nil {
			return 0, fmt.Errorf("insert quest %s: %w", quest.ID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return inserted, nil
}
