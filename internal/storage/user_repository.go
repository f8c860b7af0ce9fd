package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	DB *gorm.DB
}

// UpsertUser writes the profile synchronized from the identity provider,
// updating an existing row in place.
func (r *UserRepository) UpsertUser(user *models.User) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(user).Error
}

func (r *UserRepository) GetUser(userID string) (*models.User, error) {
	var user models.User
	err := r.DB.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return &user, err
}

// GetUserWithPreferences loads the profile together with the preferences
// row, when one exists.
func (r *UserRepository) GetUserWithPreferences(userID string) (*models.UserWithPreferences, error) {
	user, err := r.GetUser(userID)
	if err != nil {
		return nil, err
	}

	result := &models.UserWithPreferences{User: *user}

	var prefs models.UserPreferences
	err = r.DB.First(&prefs, "user_id = ?", userID).Error
	if err == nil {
		result.Preferences = &prefs
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return result, nil
}
