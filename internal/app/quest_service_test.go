package app_test

import (
	"context"
	"testing"
	"time"

	"eduquest-service/internal/app"
	"eduquest-service/internal/domain"
	"eduquest-service/internal/infra/memory"
)

func TestRegisterStudentDefaults(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	student, err := service.RegisterStudent(ctx, app.Registration{
		Name: "A", Age: 7, Grade: 1, Avatar: "girl", Language: domain.LanguageEnglish,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if student.TotalXP != 0 || student.Level != 1 {
		t.Fatalf("expected xp=0 level=1, got xp=%d level=%d", student.TotalXP, student.Level)
	}
	if len(student.Badges) != 0 {
		t.Fatalf("expected no badges, got %v", student.Badges)
	}
	if student.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestSubmitQuestFirstAttempt(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	student, _ := service.RegisterStudent(ctx, app.Registration{Name: "A", Age: 7, Grade: 1, Avatar: "girl"})

	result, err := service.SubmitQuest(ctx, student.ID, "quest-1", []domain.QuestionAnswer{
		{QuestionID: "q1", Answer: "15"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 100 || !result.Completed || result.XPEarned != 50 {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.CorrectAnswers != 1 || result.TotalQuestions != 1 {
		t.Fatalf("unexpected counts %+v", result)
	}
	if len(result.NewBadges) != 1 || result.NewBadges[0] != domain.BadgeFirstQuest {
		t.Fatalf("expected first_quest badge, got %v", result.NewBadges)
	}

	updated, _ := service.GetStudent(ctx, student.ID)
	if updated.TotalXP != 50 || updated.Level != 1 {
		t.Fatalf("expected xp=50 level=1, got xp=%d level=%d", updated.TotalXP, updated.Level)
	}
	if !updated.HasBadge(domain.BadgeFirstQuest) {
		t.Fatalf("expected student to hold first_quest, got %v", updated.Badges)
	}
}

func TestRepeatedSubmissionsKeepOneProgressRecord(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	student, _ := service.RegisterStudent(ctx, app.Registration{Name: "A", Age: 7, Grade: 1, Avatar: "girl"})

	if _, err := service.SubmitQuest(ctx, student.ID, "quest-1", []domain.QuestionAnswer{
		{QuestionID: "q1", Answer: "15"},
	}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	// Second, failing attempt.
	if _, err := service.SubmitQuest(ctx, student.ID, "quest-1", []domain.QuestionAnswer{
		{QuestionID: "q1", Answer: "99"},
	}); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	records, err := service.StudentProgress(ctx, student.ID)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one progress record, got %d", len(records))
	}
	record := records[0]
	if record.Attempts != 2 {
		t.Fatalf("attempts = %d, want 2", record.Attempts)
	}
	if record.Score != 100 || record.XPEarned != 50 {
		t.Fatalf("expected max score/xp kept, got score=%d xp=%d", record.Score, record.XPEarned)
	}
	// completed follows the latest attempt's score, not the stored max.
	if record.Completed {
		t.Fatalf("expected completed=false after failing attempt")
	}

	// XP keeps accumulating across attempts: 50 + 25.
	updated, _ := service.GetStudent(ctx, student.ID)
	if updated.TotalXP != 75 {
		t.Fatalf("total xp = %d, want 75", updated.TotalXP)
	}
	// first_quest was already held; no duplicate.
	count := 0
	for _, b := range updated.Badges {
		if b == domain.BadgeFirstQuest {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("first_quest appears %d times", count)
	}
}

func TestSubmitQuestNotFound(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	if _, err := service.SubmitQuest(ctx, "missing", "quest-1", nil); err != domain.ErrStudentNotFound {
		t.Fatalf("expected student error, got %v", err)
	}

	student, _ := service.RegisterStudent(ctx, app.Registration{Name: "A", Age: 7, Grade: 1, Avatar: "girl"})
	if _, err := service.SubmitQuest(ctx, student.ID, "missing", nil); err != domain.ErrQuestNotFound {
		t.Fatalf("expected quest error, got %v", err)
	}

	// Nothing was written for the failed submissions.
	records, _ := service.StudentProgress(ctx, student.ID)
	if len(records) != 0 {
		t.Fatalf("expected no progress records, got %d", len(records))
	}
}

func TestMathWizardBadge(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	student, _ := service.RegisterStudent(ctx, app.Registration{Name: "A", Age: 7, Grade: 1, Avatar: "girl"})
	result, err := service.SubmitQuest(ctx, student.ID, "quest-2", []domain.QuestionAnswer{
		{QuestionID: "q1", Answer: "3"},
		{QuestionID: "q2", Answer: "18"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 100 {
		t.Fatalf("score = %d, want 100", result.Score)
	}
	want := []string{domain.BadgeFirstQuest, domain.BadgeMathWizard}
	if len(result.NewBadges) != 2 || result.NewBadges[0] != want[0] || result.NewBadges[1] != want[1] {
		t.Fatalf("badges = %v, want %v", result.NewBadges, want)
	}
}

func TestLeaderboardRankingAndTieBreak(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	a, _ := service.RegisterStudent(ctx, app.Registration{Name: "A", Age: 7, Grade: 1, Avatar: "girl"})
	b, _ := service.RegisterStudent(ctx, app.Registration{Name: "B", Age: 8, Grade: 2, Avatar: "boy"})
	c, _ := service.RegisterStudent(ctx, app.Registration{Name: "C", Age: 7, Grade: 1, Avatar: "girl"})

	// A passes (50 XP), B fails (25 XP), C does nothing.
	if _, err := service.SubmitQuest(ctx, a.ID, "quest-1", []domain.QuestionAnswer{{QuestionID: "q1", Answer: "15"}}); err != nil {
		t.Fatalf("submit a: %v", err)
	}
	if _, err := service.SubmitQuest(ctx, b.ID, "quest-1", []domain.QuestionAnswer{{QuestionID: "q1", Answer: "0"}}); err != nil {
		t.Fatalf("submit b: %v", err)
	}

	entries, err := service.Leaderboard(ctx, 0, 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Name != "A" || entries[0].Rank != 1 || entries[0].TotalXP != 50 {
		t.Fatalf("unexpected leader %+v", entries[0])
	}
	if entries[1].Name != "B" || entries[1].TotalXP != 25 {
		t.Fatalf("unexpected second %+v", entries[1])
	}
	if entries[0].BadgesCount != 1 {
		t.Fatalf("expected leader badges_count 1, got %d", entries[0].BadgesCount)
	}

	// Grade filter.
	grade1, _ := service.Leaderboard(ctx, 1, 10)
	if len(grade1) != 2 {
		t.Fatalf("expected 2 grade-1 entries, got %d", len(grade1))
	}

	// Ties are ordered deterministically by student id.
	cAgain, _ := service.GetStudent(ctx, c.ID)
	if cAgain.TotalXP != 0 {
		t.Fatalf("expected C untouched")
	}
	limited, _ := service.Leaderboard(ctx, 0, 1)
	if len(limited) != 1 || limited[0].Name != "A" {
		t.Fatalf("expected limit to apply, got %+v", limited)
	}
}

func TestSeedCatalogIdempotent(t *testing.T) {
	ctx := context.Background()
	_, quests := newTestService()

	catalog := []domain.Quest{
		{ID: "quest-x", Subject: domain.SubjectMath, Grade: 1, Order: 9, XPReward: 10},
	}
	// Fixture already seeded two quests; catalog must not be re-applied.
	if n, err := quests.SeedIfEmpty(ctx, catalog); err != nil || n != 0 {
		t.Fatalf("expected no-op seed, got n=%d err=%v", n, err)
	}

	fresh := memory.NewQuestStore()
	if n, err := fresh.SeedIfEmpty(ctx, catalog); err != nil || n != 1 {
		t.Fatalf("expected 1 quest seeded, got n=%d err=%v", n, err)
	}
	if n, err := fresh.SeedIfEmpty(ctx, catalog); err != nil || n != 0 {
		t.Fatalf("second seed must be a no-op, got n=%d err=%v", n, err)
	}
}

// newTestService builds a service over in-memory stores with two quests: a
// single-question math quest worth 50 XP and a two-question math quest.
func newTestService() (*app.QuestService, *memory.QuestStore) {
	students := memory.NewStudentStore()
	quests := memory.NewQuestStore()
	progress := memory.NewProgressStore()

	_, _ = quests.SeedIfEmpty(context.Background(), []domain.Quest{
		{
			ID:       "quest-1",
			Subject:  domain.SubjectMath,
			Grade:    1,
			XPReward: 50,
			Order:    1,
			Questions: []domain.Question{
				{ID: "q1", CorrectAnswer: "15"},
			},
		},
		{
			ID:       "quest-2",
			Subject:  domain.SubjectMath,
			Grade:    2,
			XPReward: 70,
			Order:    2,
			Questions: []domain.Question{
				{ID: "q1", CorrectAnswer: "3"},
				{ID: "q2", CorrectAnswer: "18"},
			},
		},
	})

	service := app.NewQuestService(students, quests, progress, app.NewLeaderboardHub()).
		WithClock(func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) })
	return service, quests
}
