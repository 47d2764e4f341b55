package app

import (
	"strings"
	"time"

	"eduquest-service/internal/domain"
)

// passThreshold is the minimum score that counts as completing a quest.
const passThreshold = 70

// wizardThreshold is the minimum score for subject mastery badges.
const wizardThreshold = 90

// Evaluation is the full outcome of scoring one submission: the result echoed
// to the caller plus the mutations the stores must apply.
type Evaluation struct {
	Result      domain.SubmissionResult
	Attempt     domain.ProgressAttempt
	Progression domain.StudentProgression
}

// EvaluateSubmission scores submitted answers against a quest and derives the
// student and progress mutations. It is pure: no I/O, no clock reads.
//
// Scoring matches answers by question id (unknown ids are ignored), compares
// answer text case-insensitively without trimming, and divides by the quest's
// full question count, so submitting a subset of questions lowers the
// achievable score. A quest with no questions scores zero.
func EvaluateSubmission(student domain.Student, quest domain.Quest, answers []domain.QuestionAnswer, now time.Time) Evaluation {
	correct := 0
	total := len(quest.Questions)
	for _, answer := range answers {
		question, ok := quest.Question(answer.QuestionID)
		if !ok {
			continue
		}
		if strings.EqualFold(question.CorrectAnswer, answer.Answer) {
			correct++
		}
	}

	score := 0
	if total > 0 {
		score = correct * 100 / total
	}
	completed := score >= passThreshold

	xpEarned := quest.XPReward / 2
	if completed {
		xpEarned = quest.XPReward
	}

	newBadges := evaluateBadges(student, quest.Subject, score)

	return Evaluation{
		Result: domain.SubmissionResult{
			Score:          score,
			XPEarned:       xpEarned,
			Completed:      completed,
			NewBadges:      newBadges,
			CorrectAnswers: correct,
			TotalQuestions: total,
		},
		Attempt: domain.ProgressAttempt{
			StudentID:   student.ID,
			QuestID:     quest.ID,
			Score:       score,
			XPEarned:    xpEarned,
			Completed:   completed,
			AttemptedAt: now,
		},
		Progression: domain.StudentProgression{
			XPDelta:      xpEarned,
			NewBadges:    newBadges,
			LastActivity: now,
		},
	}
}

// evaluateBadges returns the badges this submission unlocks, in award order,
// excluding any the student already holds.
func evaluateBadges(student domain.Student, subject domain.Subject, score int) []string {
	newBadges := []string{}
	if score >= passThreshold && !student.HasBadge(domain.BadgeFirstQuest) {
		newBadges = append(newBadges, domain.BadgeFirstQuest)
	}
	switch subject {
	case domain.SubjectMath:
		if score >= wizardThreshold && !student.HasBadge(domain.BadgeMathWizard) {
			newBadges = append(newBadges, domain.BadgeMathWizard)
		}
	case domain.SubjectSocialStudies:
		if score >= wizardThreshold && !student.HasBadge(domain.BadgeVillageProtector) {
			newBadges = append(newBadges, domain.BadgeVillageProtector)
		}
	}
	return newBadges
}
