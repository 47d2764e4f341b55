package memory

import (
	"context"
	"testing"
	"time"

	"eduquest-service/internal/domain"
)

func TestProgressUpsertSemantics(t *testing.T) {
	ctx := context.Background()
	store := NewProgressStore()
	when := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	first, err := store.Upsert(ctx, domain.ProgressAttempt{
		ID: "p1", StudentID: "s1", QuestID: "q1",
		Score: 100, XPEarned: 50, Completed: true, AttemptedAt: when,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.Attempts != 1 || first.Score != 100 || !first.Completed {
		t.Fatalf("unexpected first record %+v", first)
	}

	second, err := store.Upsert(ctx, domain.ProgressAttempt{
		ID: "p2", StudentID: "s1", QuestID: "q1",
		Score: 0, XPEarned: 25, Completed: false, AttemptedAt: when.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != "p1" {
		t.Fatalf("expected original record kept, got id %s", second.ID)
	}
	if second.Attempts != 2 {
		t.Fatalf("attempts = %d, want 2", second.Attempts)
	}
	if second.Score != 100 || second.XPEarned != 50 {
		t.Fatalf("expected max kept, got score=%d xp=%d", second.Score, second.XPEarned)
	}
	if second.Completed {
		t.Fatalf("completed must follow the latest attempt")
	}
	if !second.LastAttempt.Equal(when.Add(time.Hour)) {
		t.Fatalf("last attempt not updated: %v", second.LastAttempt)
	}

	records, _ := store.ListByStudent(ctx, "s1")
	if len(records) != 1 {
		t.Fatalf("expected a single record, got %d", len(records))
	}
}

func TestStudentApplyProgression(t *testing.T) {
	ctx := context.Background()
	store := NewStudentStore()
	when := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	_ = store.Insert(ctx, domain.Student{ID: "s1", Name: "A", Grade: 1, TotalXP: 90, Level: 1, Badges: []string{domain.BadgeFirstQuest}})

	updated, err := store.ApplyProgression(ctx, "s1", domain.StudentProgression{
		XPDelta:      60,
		NewBadges:    []string{domain.BadgeFirstQuest, domain.BadgeMathWizard},
		LastActivity: when,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if updated.TotalXP != 150 || updated.Level != 2 {
		t.Fatalf("expected xp=150 level=2, got xp=%d level=%d", updated.TotalXP, updated.Level)
	}
	if len(updated.Badges) != 2 {
		t.Fatalf("expected badge dedupe, got %v", updated.Badges)
	}
	if _, err := store.ApplyProgression(ctx, "missing", domain.StudentProgression{}); err != domain.ErrStudentNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestQuestListFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	store := NewQuestStore()
	_, _ = store.SeedIfEmpty(ctx, []domain.Quest{
		{ID: "b", Subject: domain.SubjectSocialStudies, Grade: 2, Order: 2},
		{ID: "a", Subject: domain.SubjectMath, Grade: 1, Order: 1},
		{ID: "c", Subject: domain.SubjectMath, Grade: 2, Order: 3},
	})

	all, _ := store.List(ctx, domain.QuestFilter{})
	if len(all) != 3 || all[0].ID != "a" || all[2].ID != "c" {
		t.Fatalf("unexpected order %v", all)
	}

	math, _ := store.List(ctx, domain.QuestFilter{Subject: domain.SubjectMath})
	if len(math) != 2 {
		t.Fatalf("expected 2 math quests, got %d", len(math))
	}

	grade2, _ := store.List(ctx, domain.QuestFilter{Grade: 2})
	if len(grade2) != 2 || grade2[0].ID != "b" {
		t.Fatalf("unexpected grade filter %v", grade2)
	}

	if _, err := store.Get(ctx, "missing"); err != domain.ErrQuestNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
