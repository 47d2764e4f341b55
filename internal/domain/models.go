package domain

import "time"

// Subject is the closed set of quest subjects.
type Subject string

const (
	SubjectMath          Subject = "math"
	SubjectSocialStudies Subject = "social_studies"
)

// ParseSubject validates a subject string from the outside world.
func ParseSubject(raw string) (Subject, bool) {
	switch Subject(raw) {
	case SubjectMath, SubjectSocialStudies:
		return Subject(raw), true
	}
	return "", false
}

// Difficulty labels quest content; it does not influence scoring.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Language is the student's preferred display language.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageOdia    Language = "odia"
)

// ParseLanguage validates a language string, defaulting empty to English.
func ParseLanguage(raw string) (Language, bool) {
	if raw == "" {
		return LanguageEnglish, true
	}
	switch Language(raw) {
	case LanguageEnglish, LanguageOdia:
		return Language(raw), true
	}
	return "", false
}

// Student is a registered learner and their progression state.
type Student struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Grade         int       `json:"grade"`
	Avatar        string    `json:"avatar"`
	Language      Language  `json:"language"`
	TotalXP       int       `json:"total_xp"`
	Level         int       `json:"level"`
	CurrentStreak int       `json:"current_streak"`
	BestStreak    int       `json:"best_streak"`
	Badges        []string  `json:"badges"`
	CreatedAt     time.Time `json:"created_at"`
	LastActivity  time.Time `json:"last_activity"`
}

// HasBadge reports whether the student already holds the given badge key.
func (s Student) HasBadge(key string) bool {
	for _, b := range s.Badges {
		if b == key {
			return true
		}
	}
	return false
}

// Question is a single prompt inside a quest. The correct answer is compared
// case-insensitively, with no trimming or numeric normalization.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	QuestionOdia  string   `json:"question_odia"`
	Type          string   `json:"type"`
	ImageURL      string   `json:"image_url,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options"`
}

// Quest is an immutable bilingual content unit with one or more questions.
type Quest struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	TitleOdia        string     `json:"title_odia"`
	Description      string     `json:"description"`
	DescriptionOdia  string     `json:"description_odia"`
	Subject          Subject    `json:"subject"`
	Grade            int        `json:"grade"`
	Difficulty       Difficulty `json:"difficulty"`
	XPReward         int        `json:"xp_reward"`
	StoryContext     string     `json:"story_context"`
	StoryContextOdia string     `json:"story_context_odia"`
	Questions        []Question `json:"questions"`
	IsUnlocked       bool       `json:"is_unlocked"`
	Order            int        `json:"order"`
}

// Question returns the question with the given id, if present.
func (q Quest) Question(id string) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// QuestFilter narrows quest listings. Zero values mean "no filter".
type QuestFilter struct {
	Grade   int
	Subject Subject
}

// Progress is the per-(student, quest) best-result record. Exactly one exists
// per pair; score and xp_earned keep the max across attempts while completed
// reflects the most recent attempt only.
type Progress struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	QuestID     string    `json:"quest_id"`
	Completed   bool      `json:"completed"`
	Score       int       `json:"score"`
	Attempts    int       `json:"attempts"`
	LastAttempt time.Time `json:"last_attempt"`
	XPEarned    int       `json:"xp_earned"`
}

// QuestionAnswer is one submitted answer within a quest submission.
type QuestionAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// SubmissionResult summarizes one scored quest attempt.
type SubmissionResult struct {
	Score          int      `json:"score"`
	XPEarned       int      `json:"xp_earned"`
	Completed      bool     `json:"completed"`
	NewBadges      []string `json:"new_badges"`
	CorrectAnswers int      `json:"correct_answers"`
	TotalQuestions int      `json:"total_questions"`
}

// ProgressAttempt carries one attempt's outcome to the progress store, which
// applies it atomically (create on first attempt, best-of merge afterwards).
type ProgressAttempt struct {
	ID          string
	StudentID   string
	QuestID     string
	Score       int
	XPEarned    int
	Completed   bool
	AttemptedAt time.Time
}

// StudentProgression is the mutation a scored submission applies to a student.
// NewBadges holds only badges the snapshot did not have; stores must still
// drop any badge the row already holds so a key is never duplicated.
type StudentProgression struct {
	XPDelta      int
	NewBadges    []string
	LastActivity time.Time
}

// LeaderboardEntry is the ranked projection of a student.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	TotalXP     int    `json:"total_xp"`
	Level       int    `json:"level"`
	Avatar      string `json:"avatar"`
	BadgesCount int    `json:"badges_count"`
}

// Hint is a bilingual guidance pair for a single question.
type Hint struct {
	Hint     string `json:"hint"`
	HintOdia string `json:"hint_odia"`
}

// HintRequest carries everything a hint generator needs about the question.
type HintRequest struct {
	StudentID string
	Quest     Quest
	Question  Question
}

// LevelForXP derives a student's level from accumulated XP: one level per
// 100 XP, starting at level 1.
func LevelForXP(totalXP int) int {
	return totalXP/100 + 1
}
