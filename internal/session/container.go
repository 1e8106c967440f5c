package session

import "github.com/saulo-duarte/qa-agents/internal/llm"

type SessionContainer struct {
	Handler *Handler
	Service Service
}

func NewSessionContainer(provider llm.Provider, store Store) *SessionContainer {
	service := NewService(provider)
	handler := NewHandler(service, store)

	return &SessionContainer{
		Handler: handler,
		Service: service,
	}
}
