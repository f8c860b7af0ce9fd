package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/interview"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/utils"
)

// writeServiceError maps lifecycle errors onto HTTP statuses. Validation and
// not-found surface to the client; everything else is a generic 500 with the
// detail kept in the logs.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string) {
	var validationErr *interview.ValidationError
	if errors.As(err, &validationErr) {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "validation_error",
			Message: validationErr.Message,
		})
		return
	}

	var notFoundErr *interview.NotFoundError
	if errors.As(err, &notFoundErr) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "not_found",
			Message: notFoundErr.Error(),
		})
		return
	}

	logger.Error(fallback, zap.Error(err))
	utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Code:    "internal_error",
		Message: fallback,
	})
}
