package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
)

var ErrPreferencesNotFound = errors.New("preferences not found")

type PreferenceRepository struct {
	DB *gorm.DB
}

func (r *PreferenceRepository) Get(userID string) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := r.DB.First(&prefs, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPreferencesNotFound
	}
	return &prefs, err
}

// Upsert writes the user's defaults, one row per user.
func (r *PreferenceRepository) Upsert(prefs *models.UserPreferences) (*models.UserPreferences, error) {
	err := r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"preferred_job_role", "preferred_experience_level", "preferred_tech_stack",
			"voice_enabled_by_default", "dark_mode", "updated_at",
		}),
	}).Create(prefs).Error
	if err != nil {
		return nil, err
	}
	return r.Get(prefs.UserID)
}
