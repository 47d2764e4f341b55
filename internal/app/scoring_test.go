package app

import (
	"testing"
	"time"

	"eduquest-service/internal/domain"
)

func TestEvaluateSubmissionScoring(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	quest := domain.Quest{
		ID:       "quest-1",
		Subject:  domain.SubjectMath,
		XPReward: 50,
		Questions: []domain.Question{
			{ID: "q1", CorrectAnswer: "15"},
			{ID: "q2", CorrectAnswer: "Mahanadi"},
			{ID: "q3", CorrectAnswer: "7"},
		},
	}

	tests := []struct {
		name          string
		answers       []domain.QuestionAnswer
		wantScore     int
		wantCorrect   int
		wantCompleted bool
		wantXP        int
	}{
		{
			name: "all correct",
			answers: []domain.QuestionAnswer{
				{QuestionID: "q1", Answer: "15"},
				{QuestionID: "q2", Answer: "Mahanadi"},
				{QuestionID: "q3", Answer: "7"},
			},
			wantScore: 100, wantCorrect: 3, wantCompleted: true, wantXP: 50,
		},
		{
			name: "case insensitive match",
			answers: []domain.QuestionAnswer{
				{QuestionID: "q1", Answer: "15"},
				{QuestionID: "q2", Answer: "mahanadi"},
				{QuestionID: "q3", Answer: "7"},
			},
			wantScore: 100, wantCorrect: 3, wantCompleted: true, wantXP: 50,
		},
		{
			name: "no trimming",
			answers: []domain.QuestionAnswer{
				{QuestionID: "q1", Answer: "15 "},
				{QuestionID: "q2", Answer: "Mahanadi"},
				{QuestionID: "q3", Answer: "7"},
			},
			wantScore: 66, wantCorrect: 2, wantCompleted: false, wantXP: 25,
		},
		{
			name: "subset submission divides by full question count",
			answers: []domain.QuestionAnswer{
				{QuestionID: "q1", Answer: "15"},
			},
			wantScore: 33, wantCorrect: 1, wantCompleted: false, wantXP: 25,
		},
		{
			name: "unknown question ids are ignored",
			answers: []domain.QuestionAnswer{
				{QuestionID: "q1", Answer: "15"},
				{QuestionID: "q2", Answer: "Mahanadi"},
				{QuestionID: "q3", Answer: "7"},
				{QuestionID: "q99", Answer: "anything"},
			},
			wantScore: 100, wantCorrect: 3, wantCompleted: true, wantXP: 50,
		},
		{
			name:      "empty submission",
			answers:   nil,
			wantScore: 0, wantCorrect: 0, wantCompleted: false, wantXP: 25,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			eval := EvaluateSubmission(domain.Student{ID: "s1"}, quest, tc.answers, now)
			r := eval.Result
			if r.Score != tc.wantScore {
				t.Fatalf("score = %d, want %d", r.Score, tc.wantScore)
			}
			if r.CorrectAnswers != tc.wantCorrect {
				t.Fatalf("correct = %d, want %d", r.CorrectAnswers, tc.wantCorrect)
			}
			if r.Completed != tc.wantCompleted {
				t.Fatalf("completed = %v, want %v", r.Completed, tc.wantCompleted)
			}
			if r.XPEarned != tc.wantXP {
				t.Fatalf("xp = %d, want %d", r.XPEarned, tc.wantXP)
			}
			if r.TotalQuestions != 3 {
				t.Fatalf("total questions = %d, want 3", r.TotalQuestions)
			}
		})
	}
}

func TestEvaluateSubmissionSingleQuestion(t *testing.T) {
	now := time.Now()
	quest := domain.Quest{
		ID: "quest-1", Subject: domain.SubjectMath, XPReward: 50,
		Questions: []domain.Question{{ID: "q1", CorrectAnswer: "15"}},
	}

	right := EvaluateSubmission(domain.Student{}, quest, []domain.QuestionAnswer{{QuestionID: "q1", Answer: "15"}}, now)
	if right.Result.Score != 100 || !right.Result.Completed || right.Result.XPEarned != 50 {
		t.Fatalf("correct answer: got %+v", right.Result)
	}

	wrong := EvaluateSubmission(domain.Student{}, quest, []domain.QuestionAnswer{{QuestionID: "q1", Answer: "16"}}, now)
	if wrong.Result.Score != 0 || wrong.Result.Completed || wrong.Result.XPEarned != 25 {
		t.Fatalf("wrong answer: got %+v", wrong.Result)
	}
}

func TestEvaluateSubmissionEmptyQuestScoresZero(t *testing.T) {
	quest := domain.Quest{ID: "quest-1", Subject: domain.SubjectMath, XPReward: 40}
	eval := EvaluateSubmission(domain.Student{}, quest, nil, time.Now())
	if eval.Result.Score != 0 || eval.Result.Completed {
		t.Fatalf("expected score 0 and not completed, got %+v", eval.Result)
	}
	if eval.Result.XPEarned != 20 {
		t.Fatalf("expected half xp, got %d", eval.Result.XPEarned)
	}
}

func TestBadgeRules(t *testing.T) {
	tests := []struct {
		name    string
		student domain.Student
		subject domain.Subject
		score   int
		want    []string
	}{
		{
			name:    "first pass awards first_quest",
			subject: domain.SubjectMath,
			score:   70,
			want:    []string{domain.BadgeFirstQuest},
		},
		{
			name:    "math mastery awards both",
			subject: domain.SubjectMath,
			score:   90,
			want:    []string{domain.BadgeFirstQuest, domain.BadgeMathWizard},
		},
		{
			name:    "social studies mastery",
			subject: domain.SubjectSocialStudies,
			score:   95,
			want:    []string{domain.BadgeFirstQuest, domain.BadgeVillageProtector},
		},
		{
			name:    "below threshold awards nothing",
			subject: domain.SubjectMath,
			score:   69,
			want:    []string{},
		},
		{
			name:    "held badges are not re-awarded",
			student: domain.Student{Badges: []string{domain.BadgeFirstQuest, domain.BadgeMathWizard}},
			subject: domain.SubjectMath,
			score:   100,
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := evaluateBadges(tc.student, tc.subject, tc.score)
			if len(got) != len(tc.want) {
				t.Fatalf("badges = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("badges = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestLevelForXP(t *testing.T) {
	cases := map[int]int{0: 1, 99: 1, 100: 2, 199: 2, 250: 3}
	for xp, want := range cases {
		if got := domain.LevelForXP(xp); got != want {
			t.Fatalf("level(%d) = %d, want %d", xp, got, want)
		}
	}
}
