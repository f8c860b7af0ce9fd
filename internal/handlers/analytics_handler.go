package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/interview"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/middleware"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/utils"
)

type AnalyticsHandler struct {
	service *interview.Service
	logger  *zap.Logger
}

func NewAnalyticsHandler(service *interview.Service, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, logger: logger}
}

// StatsHandler handles GET /api/analytics/stats
func (h *AnalyticsHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)

	stats, err := h.service.Stats(identity.UserID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch stats")
		return
	}
	utils.JSON(w, http.StatusOK, stats)
}
