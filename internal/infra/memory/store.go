// Package memory provides in-process implementations of the app repositories,
// used for tests and for running the service without Postgres.
package memory

import (
	"context"
	"sort"
	"sync"

	"eduquest-service/internal/domain"
)

// StudentStore is an in-memory implementation of app.StudentRepository.
type StudentStore struct {
	mu       sync.RWMutex
	students map[string]domain.Student
}

func NewStudentStore() *StudentStore {
	return &StudentStore{students: make(map[string]domain.Student)}
}

func (s *StudentStore) Insert(_ context.Context, student domain.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students[student.ID] = cloneStudent(student)
	return nil
}

func (s *StudentStore) Get(_ context.Context, id string) (domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	student, ok := s.students[id]
	if !ok {
		return domain.Student{}, domain.ErrStudentNotFound
	}
	return cloneStudent(student), nil
}

func (s *StudentStore) ApplyProgression(_ context.Context, id string, p domain.StudentProgression) (domain.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, ok := s.students[id]
	if !ok {
		return domain.Student{}, domain.ErrStudentNotFound
	}
	student.TotalXP += p.XPDelta
	student.Level = domain.LevelForXP(student.TotalXP)
	student.LastActivity = p.LastActivity
	for _, badge := range p.NewBadges {
		if !student.HasBadge(badge) {
			student.Badges = append(student.Badges, badge)
		}
	}
	s.students[id] = student
	return cloneStudent(student), nil
}

func (s *StudentStore) TopByXP(_ context.Context, grade, limit int) ([]domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	top := make([]domain.Student, 0, len(s.students))
	for _, student := range s.students {
		if grade != 0 && student.Grade != grade {
			continue
		}
		top = append(top, cloneStudent(student))
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].TotalXP != top[j].TotalXP {
			return top[i].TotalXP > top[j].TotalXP
		}
		return top[i].ID < top[j].ID
	})
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

func cloneStudent(s domain.Student) domain.Student {
	s.Badges = append([]string(nil), s.Badges...)
	if s.Badges == nil {
		s.Badges = []string{}
	}
	return s
}

// QuestStore is an in-memory implementation of app.QuestRepository.
type QuestStore struct {
	mu     sync.RWMutex
	quests map[string]domain.Quest
}

func NewQuestStore() *QuestStore {
	return &QuestStore{quests: make(map[string]domain.Quest)}
}

func (s *QuestStore) Get(_ context.Context, id string) (domain.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quest, ok := s.quests[id]
	if !ok {
		return domain.Quest{}, domain.ErrQuestNotFound
	}
	return quest, nil
}

func (s *QuestStore) List(_ context.Context, filter domain.QuestFilter) ([]domain.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quests := make([]domain.Quest, 0, len(s.quests))
	for _, quest := range s.quests {
		if filter.Grade != 0 && quest.Grade != filter.Grade {
			continue
		}
		if filter.Subject != "" && quest.Subject != filter.Subject {
			continue
		}
		quests = append(quests, quest)
	}
	sort.Slice(quests, func(i, j int) bool {
		if quests[i].Order != quests[j].Order {
			return quests[i].Order < quests[j].Order
		}
		return quests[i].ID < quests[j].ID
	})
	return quests, nil
}

func (s *QuestStore) SeedIfEmpty(_ context.Context, quests []domain.Quest) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.quests) > 0 {
		return 0, nil
	}
	for _, quest := range quests {
		s.quests[quest.ID] = quest
	}
	return len(quests), nil
}

// ProgressStore is an in-memory implementation of app.ProgressRepository.
type ProgressStore struct {
	mu      sync.Mutex
	records map[progressKey]domain.Progress
}

type progressKey struct {
	studentID string
	questID   string
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{records: make(map[progressKey]domain.Progress)}
}

func (s *ProgressStore) ListByStudent(_ context.Context, studentID string) ([]domain.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]domain.Progress, 0)
	for key, record := range s.records {
		if key.studentID == studentID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].QuestID < records[j].QuestID })
	return records, nil
}

func (s *ProgressStore) Upsert(_ context.Context, attempt domain.ProgressAttempt) (domain.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := progressKey{studentID: attempt.StudentID, questID: attempt.QuestID}
	record, ok := s.records[key]
	if !ok {
		record = domain.Progress{
			ID:          attempt.ID,
			StudentID:   attempt.StudentID,
			QuestID:     attempt.QuestID,
			Completed:   attempt.Completed,
			Score:       attempt.Score,
			Attempts:    1,
			LastAttempt: attempt.AttemptedAt,
			XPEarned:    attempt.XPEarned,
		}
		s.records[key] = record
		return record, nil
	}
	if attempt.Score > record.Score {
		record.Score = attempt.Score
	}
	if attempt.XPEarned > record.XPEarned {
		record.XPEarned = attempt.XPEarned
	}
	// Completed tracks the latest attempt's score, not the stored max.
	record.Completed = attempt.Completed
	record.Attempts++
	record.LastAttempt = attempt.AttemptedAt
	s.records[key] = record
	return record, nil
}
