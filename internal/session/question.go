package session

import (
	"context"
	"strings"

	"github.com/saulo-duarte/qa-agents/internal/config"
	"github.com/saulo-duarte/qa-agents/internal/llm"
)

const (
	questionTemperature = 0.7
	questionMaxTokens   = 200
)

// QuestionGenerator produces questions for one session. It owns the
// question history used to steer the model away from repetition; the
// history lives only as long as the session.
type QuestionGenerator struct {
	provider llm.Provider
	history  []string
}

func NewQuestionGenerator(provider llm.Provider) *QuestionGenerator {
	return &QuestionGenerator{provider: provider}
}

// Generate asks the provider for one question at the difficulty implied
// by the iteration position. On success the question is recorded in the
// history before being returned.
func (g *QuestionGenerator) Generate(ctx context.Context, subject string, iteration, total int) (string, error) {
	log := config.WithContext(ctx)

	difficulty := difficultyFor(iteration, total)
	prompt := buildQuestionPrompt(subject, difficulty, g.history)

	raw, err := g.provider.Complete(ctx, llm.Request{
		System:      questionSystemPrompt,
		User:        prompt,
		Temperature: questionTemperature,
		MaxTokens:   questionMaxTokens,
	})
	if err != nil {
		log.WithError(err).Error("Failed to generate question")
		return "", &GenerationError{Stage: "question", Err: err}
	}

	question := strings.TrimSpace(raw)
	if question == "" {
		return "", &GenerationError{Stage: "question", Err: ErrEmptyCompletion}
	}

	g.history = append(g.history, question)

	log.Infof("Generated %s question: %s", difficulty, question)
	return question, nil
}

// History returns the questions generated so far, oldest first.
func (g *QuestionGenerator) History() []string {
	return g.history
}
