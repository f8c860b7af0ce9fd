package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/llm"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/prompts"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/utils"
)

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"`  // "ready" | "not_ready"
	Service string                    `json:"service"` // Service name
	Checks  map[string]ReadinessCheck `json:"checks"`  // Individual check results
}

type HealthHandler struct {
	db       *gorm.DB
	provider llm.Provider
	prompts  prompts.PromptProvider
}

func NewHealthHandler(db *gorm.DB, provider llm.Provider, promptManager prompts.PromptProvider) *HealthHandler {
	return &HealthHandler{
		db:       db,
		provider: provider,
		prompts:  promptManager,
	}
}

func (h *HealthHandler) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "interview-tutor",
		"version": "1.0.0",
	})
}

func (h *HealthHandler) ReadyzHandler(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]ReadinessCheck)
	allChecksPass := true

	// verify the database connection is alive
	if h.db == nil {
		checks["database"] = ReadinessCheck{
			Status:  "failed",
			Message: "Database not initialized",
		}
		allChecksPass = false
	} else if sqlDB, err := h.db.DB(); err != nil {
		checks["database"] = ReadinessCheck{
			Status:  "failed",
			Message: err.Error(),
		}
		allChecksPass = false
	} else if err := sqlDB.PingContext(r.Context()); err != nil {
		checks["database"] = ReadinessCheck{
			Status:  "failed",
			Message: err.Error(),
		}
		allChecksPass = false
	} else {
		checks["database"] = ReadinessCheck{
			Status: "ok",
		}
	}

	// verify AI provider is initialized
	if h.provider == nil {
		checks["provider"] = ReadinessCheck{
			Status:  "failed",
			Message: "AI provider not initialized",
		}
		allChecksPass = false
	} else {
		checks["provider"] = ReadinessCheck{
			Status: "ok",
		}
	}

	// verify prompt templates are loaded
	if h.prompts == nil || len(h.prompts.Modes()) == 0 {
		checks["prompts"] = ReadinessCheck{
			Status:  "failed",
			Message: "No prompt templates loaded",
		}
		allChecksPass = false
	} else {
		checks["prompts"] = ReadinessCheck{
			Status: "ok",
		}
	}

	response := ReadinessResponse{
		Service: "interview-tutor",
		Checks:  checks,
	}

	if allChecksPass {
		response.Status = "ready"
		utils.JSON(w, http.StatusOK, response)
	} else {
		response.Status = "not_ready"
		utils.JSON(w, http.StatusServiceUnavailable, response)
	}
}
