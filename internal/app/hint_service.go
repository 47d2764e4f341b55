package app

import (
	"context"
	"log"

	"eduquest-service/internal/domain"
)

// HintGenerator produces bilingual hint text for a question. Implementations
// may call out to an LLM; they return a typed error rather than masking it.
type HintGenerator interface {
	GenerateHint(ctx context.Context, req domain.HintRequest) (domain.Hint, error)
}

// Fallback hints used when no generator is configured or the generator fails.
var (
	hintUnconfigured = domain.Hint{
		Hint:     "Try counting carefully!",
		HintOdia: "ଯତ୍ନ ସହିତ ଗଣନା କରିବାକୁ ଚେଷ୍ଟା କର!",
	}
	hintUnavailable = domain.Hint{
		Hint:     "You can do this! Take your time and think step by step.",
		HintOdia: "ତୁମେ ଏହା କରିପାର! ସମୟ ନିଅ ଏବଂ ଧାପେ ଧାପେ ଚିନ୍ତା କର।",
	}
)

// HintService resolves quest content and owns the fallback policy for hint
// generation. Missing quests or questions are reported as not-found errors;
// only generator failures degrade to the fixed fallback pair.
type HintService struct {
	quests    QuestRepository
	generator HintGenerator
}

// NewHintService builds a hint service. generator may be nil, in which case
// every lookup that succeeds returns the static fallback hint.
func NewHintService(quests QuestRepository, generator HintGenerator) *HintService {
	return &HintService{quests: quests, generator: generator}
}

// GenerateHint returns a bilingual hint for one question of a quest.
func (s *HintService) GenerateHint(ctx context.Context, studentID, questID, questionID string) (domain.Hint, error) {
	quest, err := s.quests.Get(ctx, questID)
	if err != nil {
		return domain.Hint{}, err
	}
	question, ok := quest.Question(questionID)
	if !ok {
		return domain.Hint{}, domain.ErrQuestionNotFound
	}

	if s.generator == nil {
		return hintUnconfigured, nil
	}

	hint, err := s.generator.GenerateHint(ctx, domain.HintRequest{
		StudentID: studentID,
		Quest:     quest,
		Question:  question,
	})
	if err != nil {
		log.Printf("hint generation failed, serving fallback: %v", err)
		return hintUnavailable, nil
	}
	return hint, nil
}
