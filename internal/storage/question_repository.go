package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository struct {
	DB *gorm.DB
}

func (r *QuestionRepository) Create(question *models.InterviewQuestion) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) Get(id string) (*models.InterviewQuestion, error) {
	var question models.InterviewQuestion
	err := r.DB.First(&question, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	return &question, err
}

func (r *QuestionRepository) ListByInterview(interviewID string) ([]models.InterviewQuestion, error) {
	var questions []models.InterviewQuestion
	err := r.DB.Where("interview_id = ?", interviewID).Order("order_index ASC").Find(&questions).Error
	return questions, err
}

// ResponseUpdate carries the nullable per-response fields. Nil fields are
// left untouched so the score/feedback write can follow the raw response
// write.
type ResponseUpdate struct {
	Response   *string
	Transcript *string
	Score      *float64
	Feedback   *string
	TimeSpent  *int
}

// UpdateResponse writes response fields onto the question row and returns
// the fresh row. Repeat submissions overwrite earlier ones.
func (r *QuestionRepository) UpdateResponse(id string, update ResponseUpdate) (*models.InterviewQuestion, error) {
	updates := map[string]interface{}{}
	if update.Response != nil {
		updates["user_response"] = *update.Response
	}
	if update.Transcript != nil {
		updates["response_transcript"] = *update.Transcript
	}
	if update.Score != nil {
		updates["response_score"] = *update.Score
	}
	if update.Feedback != nil {
		updates["response_feedback"] = *update.Feedback
	}
	if update.TimeSpent != nil {
		updates["time_spent"] = *update.TimeSpent
	}
	if len(updates) == 0 {
		return r.Get(id)
	}

	result := r.DB.Model(&models.InterviewQuestion{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrQuestionNotFound
	}
	return r.Get(id)
}
