package app

import (
	"context"
	"time"

	"eduquest-service/internal/domain"
	"github.com/google/uuid"
)

// StudentRepository abstracts student persistence (Postgres, in-memory).
type StudentRepository interface {
	Insert(ctx context.Context, student domain.Student) error
	Get(ctx context.Context, id string) (domain.Student, error)
	// ApplyProgression atomically increments XP, rederives the level, stamps
	// last activity, and appends only badges the row does not already hold.
	ApplyProgression(ctx context.Context, id string, progression domain.StudentProgression) (domain.Student, error)
	// TopByXP returns up to limit students ordered by total XP descending,
	// ties broken by id ascending. grade 0 means all grades.
	TopByXP(ctx context.Context, grade, limit int) ([]domain.Student, error)
}

// QuestRepository loads quest content (from cache/backing store).
type QuestRepository interface {
	Get(ctx context.Context, id string) (domain.Quest, error)
	List(ctx context.Context, filter domain.QuestFilter) ([]domain.Quest, error)
	// SeedIfEmpty bulk-inserts the catalog when the store holds no quests and
	// reports how many quests were inserted. It must be safe to run
	// concurrently and repeatedly.
	SeedIfEmpty(ctx context.Context, quests []domain.Quest) (int, error)
}

// ProgressRepository persists per-(student, quest) attempt records.
type ProgressRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]domain.Progress, error)
	// Upsert applies one attempt atomically: first attempt creates the record,
	// later attempts keep the max score/xp, recompute completed from the new
	// score, and increment attempts.
	Upsert(ctx context.Context, attempt domain.ProgressAttempt) (domain.Progress, error)
}

// Registration is the validated input for creating a student.
type Registration struct {
	Name     string
	Age      int
	Grade    int
	Avatar   string
	Language domain.Language
}

// defaultLeaderboardLimit caps leaderboard size when the caller passes none.
const defaultLeaderboardLimit = 10

// QuestService contains the core quest use cases.
type QuestService struct {
	students StudentRepository
	quests   QuestRepository
	progress ProgressRepository
	hub      *LeaderboardHub
	now      func() time.Time
	newID    func() string
}

func NewQuestService(students StudentRepository, quests QuestRepository, progress ProgressRepository, hub *LeaderboardHub) *QuestService {
	return &QuestService{
		students: students,
		quests:   quests,
		progress: progress,
		hub:      hub,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// WithClock overrides the service clock for deterministic tests.
func (s *QuestService) WithClock(now func() time.Time) *QuestService {
	s.now = now
	return s
}

// RegisterStudent creates a student with zero XP at level 1.
func (s *QuestService) RegisterStudent(ctx context.Context, reg Registration) (domain.Student, error) {
	now := s.now().UTC()
	student := domain.Student{
		ID:           s.newID(),
		Name:         reg.Name,
		Age:          reg.Age,
		Grade:        reg.Grade,
		Avatar:       reg.Avatar,
		Language:     reg.Language,
		TotalXP:      0,
		Level:        domain.LevelForXP(0),
		Badges:       []string{},
		CreatedAt:    now,
		LastActivity: now,
	}
	if err := s.students.Insert(ctx, student); err != nil {
		return domain.Student{}, err
	}
	return student, nil
}

// GetStudent fetches a student by id.
func (s *QuestService) GetStudent(ctx context.Context, id string) (domain.Student, error) {
	return s.students.Get(ctx, id)
}

// ListQuests returns quests matching the filter, ordered for display.
func (s *QuestService) ListQuests(ctx context.Context, filter domain.QuestFilter) ([]domain.Quest, error) {
	return s.quests.List(ctx, filter)
}

// StudentProgress returns all progress records for a student.
func (s *QuestService) StudentProgress(ctx context.Context, studentID string) ([]domain.Progress, error) {
	return s.progress.ListByStudent(ctx, studentID)
}

// SubmitQuest scores a submission and applies the progress and student
// mutations. Both the student and the quest must exist; nothing is written
// otherwise.
func (s *QuestService) SubmitQuest(ctx context.Context, studentID, questID string, answers []domain.QuestionAnswer) (domain.SubmissionResult, error) {
	student, err := s.students.Get(ctx, studentID)
	if err != nil {
		return domain.SubmissionResult{}, err
	}
	quest, err := s.quests.Get(ctx, questID)
	if err != nil {
		return domain.SubmissionResult{}, err
	}

	eval := EvaluateSubmission(student, quest, answers, s.now().UTC())
	eval.Attempt.ID = s.newID()

	if _, err := s.progress.Upsert(ctx, eval.Attempt); err != nil {
		return domain.SubmissionResult{}, err
	}
	if _, err := s.students.ApplyProgression(ctx, studentID, eval.Progression); err != nil {
		return domain.SubmissionResult{}, err
	}

	s.broadcastLeaderboard(ctx)
	return eval.Result, nil
}

// Leaderboard projects the top students by XP, optionally filtered by grade.
func (s *QuestService) Leaderboard(ctx context.Context, grade, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	students, err := s.students.TopByXP(ctx, grade, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.LeaderboardEntry, 0, len(students))
	for i, student := range students {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:        i + 1,
			Name:        student.Name,
			TotalXP:     student.TotalXP,
			Level:       student.Level,
			Avatar:      student.Avatar,
			BadgesCount: len(student.Badges),
		})
	}
	return entries, nil
}

// SeedCatalog bootstraps the quest catalog when the store is empty.
func (s *QuestService) SeedCatalog(ctx context.Context, quests []domain.Quest) (int, error) {
	return s.quests.SeedIfEmpty(ctx, quests)
}

// broadcastLeaderboard pushes a fresh global top-10 snapshot to websocket
// subscribers. Best effort: a failed read drops the update, not the request.
func (s *QuestService) broadcastLeaderboard(ctx context.Context) {
	if s.hub == nil {
		return
	}
	entries, err := s.Leaderboard(ctx, 0, defaultLeaderboardLimit)
	if err != nil {
		return
	}
	s.hub.Broadcast(entries)
}
