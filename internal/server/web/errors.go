package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/autoblog/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error(context.Background(), "failed to encode response", "error", err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

// serviceError maps service sentinels onto HTTP statuses.
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrPipelineBusy):
		s.writeError(w, http.StatusConflict, "a publishing run is already in progress")
	case errors.Is(err, common.ErrMissingCredential):
		s.writeError(w, http.StatusUnprocessableEntity, "required credential is not configured")
	case errors.Is(err, common.ErrorValidation):
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, common.ErrGenerationFailed):
		s.writeError(w, http.StatusBadGateway, "content generation failed")
	case errors.Is(err, common.ErrPublishFailed):
		s.writeError(w, http.StatusBadGateway, "publishing failed")
	case errors.Is(err, common.ErrorNotFound):
		s.writeError(w, http.StatusNotFound, "not found")
	default:
		s.logger.Error(context.Background(), "internal error", "error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
