package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/qa-agents/internal/config"
)

type Handler struct {
	service Service
	store   Store
}

func NewHandler(service Service, store Store) *Handler {
	return &Handler{service: service, store: store}
}

func (h *Handler) RunSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	subject, numPairs, err := req.Normalize()
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			log.Warnf("Rejected session request: %s", vErr.Reason)
			http.Error(w, vErr.Reason, http.StatusBadRequest)
			return
		}
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	resp, err := h.service.RunSession(r.Context(), subject, numPairs)
	if err != nil {
		log.WithError(err).Error("Failed to run Q&A session")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	path, err := h.store.Save(r.Context(), resp)
	if err != nil {
		log.WithError(err).Error("Failed to archive session result")
	} else {
		log.Infof("Q&A session saved to %s", path)
	}

	config.JSON(w, http.StatusOK, resp)
}
