package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/saulo-duarte/qa-agents/internal/config"
	"github.com/saulo-duarte/qa-agents/internal/llm"
	"github.com/sirupsen/logrus"
)

// Service runs Q&A sessions. The caller is expected to have validated
// the subject and pair count via SessionRequest.Normalize.
type Service interface {
	RunSession(ctx context.Context, subject string, numPairs int) (*SessionResponse, error)
}

type service struct {
	provider llm.Provider
}

func NewService(provider llm.Provider) Service {
	return &service{provider: provider}
}

// RunSession generates numPairs question/answer pairs sequentially.
// Pair i+1 does not start until pair i is complete. The first failure
// aborts the session; pairs generated before it are discarded.
func (s *service) RunSession(ctx context.Context, subject string, numPairs int) (*SessionResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"session_id": uuid.New().String(),
		"subject":    subject,
	})
	log.Infof("Starting Q&A session with %d pairs", numPairs)

	questionGen := NewQuestionGenerator(s.provider)
	answerGen := NewAnswerGenerator(s.provider)

	pairs := make([]QAPair, 0, numPairs)
	for i := 0; i < numPairs; i++ {
		question, err := questionGen.Generate(ctx, subject, i, numPairs)
		if err != nil {
			log.WithError(err).Errorf("Session aborted at pair %d/%d", i+1, numPairs)
			return nil, err
		}

		answer, err := answerGen.Generate(ctx, question)
		if err != nil {
			log.WithError(err).Errorf("Session aborted at pair %d/%d", i+1, numPairs)
			return nil, err
		}

		pairs = append(pairs, QAPair{
			ID:       i + 1,
			Question: question,
			Answer:   answer,
		})
		log.Infof("Completed pair %d/%d", i+1, numPairs)
	}

	log.Infof("Q&A session completed successfully with %d pairs", len(pairs))
	return &SessionResponse{
		Subject:  subject,
		NumPairs: len(pairs),
		Pairs:    pairs,
	}, nil
}
