package session

import (
	"fmt"
	"strings"
)

// Difficulty is the level a question is framed at.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// historyWindow is how many recent questions are shown to the model
// when asking for a new one.
const historyWindow = 3

const questionSystemPrompt = "You are a helpful assistant that generates educational questions."

const answerSystemPrompt = "You are a knowledgeable expert who provides clear and accurate answers."

// difficultyFor maps an iteration position to a difficulty level.
// Difficulty ramps up across the session; a single-pair session is
// always easy because progress is pinned to zero.
func difficultyFor(iteration, total int) Difficulty {
	divisor := total - 1
	if divisor < 1 {
		divisor = 1
	}
	progress := float64(iteration) / float64(divisor)

	switch {
	case progress < 0.33:
		return DifficultyEasy
	case progress < 0.66:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// buildQuestionPrompt renders the user prompt for one question. Only
// the most recent historyWindow entries of history are included.
func buildQuestionPrompt(subject string, difficulty Difficulty, history []string) string {
	var historyContext string
	if len(history) > 0 {
		recent := history
		if len(recent) > historyWindow {
			recent = recent[len(recent)-historyWindow:]
		}
		var b strings.Builder
		b.WriteString("\n\nPreviously asked questions:\n")
		for i, q := range recent {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("- " + q)
		}
		historyContext = b.String()
	}

	return fmt.Sprintf(`You are an expert educator creating %[1]s level questions about %[2]s.

Generate ONE clear, unambiguous question about %[2]s at %[1]s difficulty level.

Requirements:
- The question must be specific and answerable
- Make it different from previous questions in style and focus
- For easy: focus on definitions and basic concepts
- For medium: focus on application and understanding
- For hard: focus on analysis, synthesis, or complex scenarios
- Do not repeat similar questions
%[3]s

Generate only the question, no explanations or preamble.`, difficulty, subject, historyContext)
}

// buildAnswerPrompt renders the user prompt for answering a question.
func buildAnswerPrompt(question string) string {
	return fmt.Sprintf(`You are a knowledgeable expert. Answer the following question concisely and accurately.

Question: %s

Provide a clear, well-structured answer. Be informative but concise. Use examples if they help clarify the concept.

Answer:`, question)
}
