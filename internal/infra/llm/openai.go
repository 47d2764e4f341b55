// Package llm implements the hint generator against an OpenAI-compatible
// chat-completions endpoint.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"eduquest-service/internal/domain"
)

const defaultBaseURL = "https://api.openai.com"

// OpenAIGenerator produces story-based bilingual hints through a chat model.
type OpenAIGenerator struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewOpenAIGenerator(apiKey, baseURL, model string, timeout time.Duration) *OpenAIGenerator {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = "gpt-4o"
	}
	return &OpenAIGenerator{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	User     string        `json:"user,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateHint asks the model for an encouraging, non-revealing hint in both
// languages and parses the "English:" / "Odia:" lines out of the reply.
func (g *OpenAIGenerator) GenerateHint(ctx context.Context, req domain.HintRequest) (domain.Hint, error) {
	systemMessage := fmt.Sprintf(
		"You are a helpful tutor for young students (age 6-8) in rural Odisha. "+
			"Create encouraging, story-based hints that relate to the quest context: %s "+
			"Keep hints simple, fun, and culturally relevant to Odisha village life. "+
			"Always provide both English and Odia versions.",
		req.Quest.StoryContext,
	)
	prompt := fmt.Sprintf(
		"Question: %s\nContext: %s\n\n"+
			"Give a gentle, encouraging hint without revealing the answer. Make it story-based and fun!\n\n"+
			"Format your response as:\nEnglish: [hint in English]\nOdia: [hint in Odia]",
		req.Question.Question, req.Quest.StoryContext,
	)

	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemMessage},
			{Role: "user", Content: prompt},
		},
		User: "hint_" + req.StudentID,
	})
	if err != nil {
		return domain.Hint{}, fmt.Errorf("marshal hint request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return domain.Hint{}, fmt.Errorf("build hint request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return domain.Hint{}, fmt.Errorf("call hint model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Hint{}, fmt.Errorf("hint model returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.Hint{}, fmt.Errorf("decode hint response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return domain.Hint{}, fmt.Errorf("hint model returned no choices")
	}

	return parseHint(parsed.Choices[0].Message.Content), nil
}

// parseHint extracts the bilingual pair, falling back to generic counting
// hints for any line the model left out.
func parseHint(content string) domain.Hint {
	hint := domain.Hint{
		Hint:     "Try counting step by step!",
		HintOdia: "ଧାପେ ଧାପେ ଗଣନା କରିବାକୁ ଚେଷ୍ଟା କର!",
	}
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if strings.HasPrefix(line, "English:") {
			hint.Hint = strings.TrimSpace(strings.TrimPrefix(line, "English:"))
		} else if strings.HasPrefix(line, "Odia:") {
			hint.HintOdia = strings.TrimSpace(strings.TrimPrefix(line, "Odia:"))
		}
	}
	return hint
}
