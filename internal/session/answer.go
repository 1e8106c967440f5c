package session

import (
	"context"
	"strings"

	"github.com/saulo-duarte/qa-agents/internal/config"
	"github.com/saulo-duarte/qa-agents/internal/llm"
)

const (
	answerTemperature = 0.5
	answerMaxTokens   = 500
)

// AnswerGenerator answers questions. It keeps no state between calls.
type AnswerGenerator struct {
	provider llm.Provider
}

func NewAnswerGenerator(provider llm.Provider) *AnswerGenerator {
	return &AnswerGenerator{provider: provider}
}

// Generate asks the provider for an answer to the given question.
func (g *AnswerGenerator) Generate(ctx context.Context, question string) (string, error) {
	log := config.WithContext(ctx)

	raw, err := g.provider.Complete(ctx, llm.Request{
		System:      answerSystemPrompt,
		User:        buildAnswerPrompt(question),
		Temperature: answerTemperature,
		MaxTokens:   answerMaxTokens,
	})
	if err != nil {
		log.WithError(err).Error("Failed to generate answer")
		return "", &GenerationError{Stage: "answer", Err: err}
	}

	answer := strings.TrimSpace(raw)
	if answer == "" {
		return "", &GenerationError{Stage: "answer", Err: ErrEmptyCompletion}
	}

	return answer, nil
}
