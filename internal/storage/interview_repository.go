package storage

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository struct {
	DB *gorm.DB
}

func (r *InterviewRepository) Create(interview *models.Interview) error {
	return r.DB.Create(interview).Error
}

func (r *InterviewRepository) Get(id string) (*models.Interview, error) {
	var interview models.Interview
	err := r.DB.First(&interview, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	return &interview, err
}

// GetWithQuestions loads the interview and its questions in presentation
// order.
func (r *InterviewRepository) GetWithQuestions(id string) (*models.Interview, error) {
	var interview models.Interview
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).First(&interview, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	return &interview, err
}

func (r *InterviewRepository) ListByUser(userID string) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&interviews).Error
	return interviews, err
}

// Update applies a partial update keyed by column name and returns the fresh
// row.
func (r *InterviewRepository) Update(id string, updates map[string]interface{}) (*models.Interview, error) {
	updates["updated_at"] = time.Now()
	result := r.DB.Model(&models.Interview{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrInterviewNotFound
	}
	return r.Get(id)
}

// Delete removes the interview and its questions. The question delete is
// explicit so the cascade does not depend on database-level foreign key
// enforcement.
func (r *InterviewRepository) Delete(id string) error {
	if err := r.DB.Delete(&models.InterviewQuestion{}, "interview_id = ?", id).Error; err != nil {
		return err
	}
	result := r.DB.Delete(&models.Interview{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

// UserStats aggregates a user's completed interviews. A user with none gets
// all-zero fields.
func (r *InterviewRepository) UserStats(userID string) (*models.UserStats, error) {
	var completed []models.Interview
	err := r.DB.Where("user_id = ? AND status = ?", userID, models.StatusCompleted).Find(&completed).Error
	if err != nil {
		return nil, err
	}

	stats := &models.UserStats{TotalInterviews: len(completed)}
	if len(completed) == 0 {
		return stats, nil
	}

	var scoreSum, scoreCount float64
	var confidenceSum, confidenceCount float64
	var practiceMinutes int
	for _, interview := range completed {
		if interview.OverallScore != nil {
			scoreSum += *interview.OverallScore
			scoreCount++
		}
		if interview.ConfidenceLevel != nil {
			confidenceSum += *interview.ConfidenceLevel
			confidenceCount++
		}
		if interview.Duration != nil {
			practiceMinutes += *interview.Duration
		}
	}

	if scoreCount > 0 {
		stats.AverageScore = math.Round(scoreSum/scoreCount*100) / 100
	}
	if confidenceCount > 0 {
		stats.ConfidenceLevel = math.Round(confidenceSum/confidenceCount*100) / 100
	}
	stats.PracticeTime = int(math.Round(float64(practiceMinutes) / 60))

	return stats, nil
}
