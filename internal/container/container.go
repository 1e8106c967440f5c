package container

import (
	"context"
	"log"
	"os"

	"github.com/saulo-duarte/qa-agents/internal/archive"
	"github.com/saulo-duarte/qa-agents/internal/config"
	"github.com/saulo-duarte/qa-agents/internal/llm"
	"github.com/saulo-duarte/qa-agents/internal/session"
)

type Container struct {
	SessionContainer *session.SessionContainer
}

func New() *Container {
	config.Init()

	provider, err := llm.NewProvider(context.Background(), llm.ConfigFromEnv())
	if err != nil {
		log.Fatalf("failed to initialize LLM provider: %v", err)
	}

	outputDir := os.Getenv("QA_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "qa_sessions"
	}
	store, err := archive.NewFileStore(outputDir)
	if err != nil {
		log.Fatalf("failed to initialize session archive: %v", err)
	}

	sessionContainer := session.NewSessionContainer(provider, store)

	return &Container{
		SessionContainer: sessionContainer,
	}
}
