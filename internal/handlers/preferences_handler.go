package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/middleware"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/storage"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/utils"
)

type PreferencesHandler struct {
	preferences *storage.PreferenceRepository
	logger      *zap.Logger
}

func NewPreferencesHandler(preferences *storage.PreferenceRepository, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{preferences: preferences, logger: logger}
}

// GetHandler handles GET /api/preferences. A user without saved defaults
// gets a null body, not an error.
func (h *PreferencesHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)

	prefs, err := h.preferences.Get(identity.UserID)
	if errors.Is(err, storage.ErrPreferencesNotFound) {
		utils.JSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		h.logger.Error("Failed to fetch preferences", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch preferences",
		})
		return
	}
	utils.JSON(w, http.StatusOK, prefs)
}

// UpsertHandler handles POST /api/preferences
func (h *PreferencesHandler) UpsertHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)
	req := middleware.GetValidatedRequest[*models.PreferencesRequest](r)

	prefs := &models.UserPreferences{
		UserID:                   identity.UserID,
		PreferredJobRole:         req.PreferredJobRole,
		PreferredExperienceLevel: req.PreferredExperienceLevel,
		PreferredTechStack:       req.PreferredTechStack,
		VoiceEnabledByDefault:    true,
	}
	if req.VoiceEnabledByDefault != nil {
		prefs.VoiceEnabledByDefault = *req.VoiceEnabledByDefault
	}
	if req.DarkMode != nil {
		prefs.DarkMode = *req.DarkMode
	}

	saved, err := h.preferences.Upsert(prefs)
	if err != nil {
		h.logger.Error("Failed to update preferences", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to update preferences",
		})
		return
	}
	utils.JSON(w, http.StatusOK, saved)
}
