package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/interview"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/middleware"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/utils"
)

type InterviewHandler struct {
	service *interview.Service
	logger  *zap.Logger
}

func NewInterviewHandler(service *interview.Service, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{service: service, logger: logger}
}

// ListHandler handles GET /api/interviews
func (h *InterviewHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)

	interviews, err := h.service.List(identity.UserID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch interviews")
		return
	}
	utils.JSON(w, http.StatusOK, interviews)
}

// CreateHandler handles POST /api/interviews
func (h *InterviewHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)
	req := middleware.GetValidatedRequest[*models.CreateInterviewRequest](r)

	created, err := h.service.Create(r.Context(), identity.UserID, req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to create interview")
		return
	}
	utils.JSON(w, http.StatusOK, created)
}

// GetHandler handles GET /api/interviews/{id}
func (h *InterviewHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)

	result, err := h.service.GetForUser(chi.URLParam(r, "id"), identity.UserID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch interview")
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

// UpdateHandler handles PATCH /api/interviews/{id}
func (h *InterviewHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)
	req := middleware.GetValidatedRequest[*models.UpdateInterviewRequest](r)

	updated, err := h.service.Update(chi.URLParam(r, "id"), identity.UserID, req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to update interview")
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

// DeleteHandler handles DELETE /api/interviews/{id}
func (h *InterviewHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), identity.UserID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete interview")
		return
	}
	utils.JSON(w, http.StatusOK, models.DeleteResponse{Success: true})
}

// CompleteHandler handles POST /api/interviews/{id}/complete. The body is
// optional.
func (h *InterviewHandler) CompleteHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)

	var req models.CompleteInterviewRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	completed, err := h.service.Complete(r.Context(), chi.URLParam(r, "id"), identity.UserID, &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to complete interview")
		return
	}
	utils.JSON(w, http.StatusOK, completed)
}

// TokenHandler handles POST /api/interviews/{id}/token
func (h *InterviewHandler) TokenHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)

	token, err := h.service.IssueToken(r.Context(), chi.URLParam(r, "id"), identity.UserID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to generate access token")
		return
	}
	utils.JSON(w, http.StatusOK, token)
}
