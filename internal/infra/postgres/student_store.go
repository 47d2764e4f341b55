package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduquest-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const studentColumns = `id, name, age, grade, avatar, language, total_xp, level, current_streak, best_streak, badges, created_at, last_activity`

// StudentStore persists students in Postgres.
type StudentStore struct {
	pool *pgxpool.Pool
}

func NewStudentStore(pool *pgxpool.Pool) *StudentStore {
	return &StudentStore{pool: pool}
}

func (s *StudentStore) Insert(ctx context.Context, student domain.Student) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO students (`+studentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		student.ID, student.Name, student.Age, student.Grade, student.Avatar,
		string(student.Language), student.TotalXP, student.Level,
		student.CurrentStreak, student.BestStreak, student.Badges,
		formatTime(student.CreatedAt), formatTime(student.LastActivity),
	)
	if err != nil {
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

func (s *StudentStore) Get(ctx context.Context, id string) (domain.Student, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	return scanStudent(row)
}

// ApplyProgression increments XP, rederives the level, stamps activity, and
// appends new badges in a single statement so concurrent submissions by the
// same student cannot lose updates or duplicate badge keys.
func (s *StudentStore) ApplyProgression(ctx context.Context, id string, p domain.StudentProgression) (domain.Student, error) {
	badges := p.NewBadges
	if badges == nil {
		badges = []string{}
	}
	row := s.pool.QueryRow(ctx, `
		UPDATE students
		SET total_xp = total_xp + $2,
		    level = (total_xp + $2) / 100 + 1,
		    last_activity = $3,
		    badges = badges || (
		        SELECT COALESCE(array_agg(b), '{}'::text[])
		        FROM unnest($4::text[]) AS b
		        WHERE NOT (badges @> ARRAY[b])
		    )
		WHERE id = $1
		RETURNING `+studentColumns,
		id, p.XPDelta, formatTime(p.LastActivity), badges,
	)
	return scanStudent(row)
}

func (s *StudentStore) TopByXP(ctx context.Context, grade, limit int) ([]domain.Student, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE ($1 = 0 OR grade = $1)
		ORDER BY total_xp DESC, id ASC
		LIMIT $2`,
		grade, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func scanStudent(row pgx.Row) (domain.Student, error) {
	var (
		student   domain.Student
		language  string
		createdAt string
		activity  string
	)
	err := row.Scan(
		&student.ID, &student.Name, &student.Age, &student.Grade, &student.Avatar,
		&language, &student.TotalXP, &student.Level,
		&student.CurrentStreak, &student.BestStreak, &student.Badges,
		&createdAt, &activity,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Student{}, domain.ErrStudentNotFound
	}
	if err != nil {
		return domain.Student{}, fmt.Errorf("scan student: %w", err)
	}
	student.Language = domain.Language(language)
	student.CreatedAt = parseTime(createdAt)
	student.LastActivity = parseTime(activity)
	if student.Badges == nil {
		student.Badges = []string{}
	}
	return student, nil
}

// Datetimes are stored as ISO-8601 strings.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
