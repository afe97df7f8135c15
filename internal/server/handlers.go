package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mathieu/brandscope/internal/types"
)

var validate = validator.New()

// ExtractRequest is the inbound extraction request payload.
type ExtractRequest struct {
	URL  string `json:"url" validate:"required"`
	Kind string `json:"kind" validate:"required,oneof=profile contact news"`
}

// ExtractResponse wraps the job id together with the extraction result.
type ExtractResponse struct {
	JobID  string       `json:"jobId"`
	Status string       `json:"status"`
	Result types.Result `json:"result"`
}

// handleExtract runs an extraction synchronously and returns the result.
// Extraction itself never fails for a well-formed request: pipeline
// degradation is reported inside the result's insights.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	kind, err := types.ParseKind(req.Kind)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, job := s.orchestrator.Run(r.Context(), req.URL, kind)
	s.jsonResponse(w, http.StatusOK, ExtractResponse{
		JobID:  job.ID,
		Status: job.Status,
		Result: result,
	})
}

// handleGetJob returns a persisted job record by id.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	job, err := s.orchestrator.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}
