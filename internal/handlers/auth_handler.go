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

type AuthHandler struct {
	users  *storage.UserRepository
	logger *zap.Logger
}

func NewAuthHandler(users *storage.UserRepository, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

// CurrentUserHandler handles GET /api/auth/user. The profile is synced from
// the identity provider during authentication, so a missing row means the
// sync has never run for this caller.
func (h *AuthHandler) CurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)

	user, err := h.users.GetUserWithPreferences(identity.UserID)
	if errors.Is(err, storage.ErrUserNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "not_found",
			Message: "User not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("Failed to fetch user", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch user",
		})
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
