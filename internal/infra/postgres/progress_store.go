package postgres

import (
	"context"
	"fmt"

	"eduquest-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

const progressColumns = `id, student_id, quest_id, completed, score, attempts, last_attempt, xp_earned`

// ProgressStore persists per-(student, quest) attempt records.
type ProgressStore struct {
	pool *pgxpool.Pool
}

func NewProgressStore(pool *pgxpool.Pool) *ProgressStore {
	return &ProgressStore{pool: pool}
}

func (s *ProgressStore) ListByStudent(ctx context.Context, studentID string) ([]domain.Progress, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+progressColumns+`
		FROM progress
		WHERE student_id = $1
		ORDER BY quest_id ASC`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Progress, 0)
	for rows.Next() {
		var (
			record      domain.Progress
			lastAttempt string
		)
		if err := rows.Scan(
			&record.ID, &record.StudentID, &record.QuestID, &record.Completed,
			&record.Score, &record.Attempts, &lastAttempt, &record.XPEarned,
		); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		record.LastAttempt = parseTime(lastAttempt)
		records = append(records, record)
	}
	return records, rows.Err()
}

// Upsert applies one attempt atomically. The unique (student_id, quest_id)
// index closes the check-then-act gap: concurrent first attempts collapse
// into one row. Score and xp keep the max across attempts while completed
// follows the new score only.
func (s *ProgressStore) Upsert(ctx context.Context, attempt domain.ProgressAttempt) (domain.Progress, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO progress (`+progressColumns+`)
		VALUES ($1, $2, $3, $4, $5, 1, $6, $7)
		ON CONFLICT (student_id, quest_id) DO UPDATE SET
		    score = GREATEST(progress.score, EXCLUDED.score),
		    xp_earned = GREATEST(progress.xp_earned, EXCLUDED.xp_earned),
		    completed = EXCLUDED.completed,
		    attempts = progress.attempts + 1,
		    last_attempt = EXCLUDED.last_attempt
		RETURNING `+progressColumns,
		attempt.ID, attempt.StudentID, attempt.QuestID, attempt.Completed,
		attempt.Score, formatTime(attempt.AttemptedAt), attempt.XPEarned,
	)

	var (
		record      domain.Progress
		lastAttempt string
	)
	if err := row.Scan(
		&record.ID, &record.StudentID, &record.QuestID, &record.Completed,
		&record.Score, &record.Attempts, &lastAttempt, &record.XPEarned,
	); err != nil {
		return domain.Progress{}, fmt.Errorf("upsert progress: %w", err)
	}
	record.LastAttempt = parseTime(lastAttempt)
	return record, nil
}
