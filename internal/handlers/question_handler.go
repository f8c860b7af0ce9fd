package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/interview"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/llm"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/middleware"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/utils"
)

type QuestionHandler struct {
	service *interview.Service
	logger  *zap.Logger
}

func NewQuestionHandler(service *interview.Service, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{service: service, logger: logger}
}

// submitResponseResult is the body of POST /api/questions/{id}/response.
type submitResponseResult struct {
	Question   *models.InterviewQuestion `json:"question"`
	Evaluation *llm.ResponseEvaluation   `json:"evaluation"`
}

// SubmitResponseHandler persists the answer and returns the evaluated
// question.
func (h *QuestionHandler) SubmitResponseHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SubmitResponseRequest](r)

	question, evaluation, err := h.service.SubmitResponse(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to submit response")
		return
	}
	utils.JSON(w, http.StatusOK, submitResponseResult{Question: question, Evaluation: evaluation})
}
