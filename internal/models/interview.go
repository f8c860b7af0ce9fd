package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interview is one practice session owned by a user. Score fields stay nil
// until the interview reaches completed status.
type Interview struct {
	ID                 string          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             string          `gorm:"not null;index" json:"userId"`
	Title              string          `gorm:"not null" json:"title"`
	JobRole            JobRole         `gorm:"not null" json:"jobRole"`
	ExperienceLevel    ExperienceLevel `gorm:"not null" json:"experienceLevel"`
	TechStack          []string        `gorm:"serializer:json" json:"techStack"`
	Status             InterviewStatus `gorm:"default:pending" json:"status"`
	Duration           *int            `json:"duration"` // minutes
	TotalQuestions     int             `gorm:"default:8" json:"totalQuestions"`
	CurrentQuestion    int             `gorm:"default:0" json:"currentQuestion"`
	OverallScore       *float64        `gorm:"type:decimal(4,2)" json:"overallScore"` // 0-10
	ConfidenceLevel    *float64        `gorm:"type:decimal(5,2)" json:"confidenceLevel"` // 0-100
	CommunicationScore *float64        `gorm:"type:decimal(4,2)" json:"communicationScore"` // 0-10
	TechnicalScore     *float64        `gorm:"type:decimal(4,2)" json:"technicalScore"` // 0-10
	Feedback           *string         `gorm:"type:text" json:"feedback"`
	VoiceEnabled       bool            `gorm:"default:false" json:"voiceEnabled"`
	RoomName           *string         `json:"roomName"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`

	Questions []InterviewQuestion `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// InterviewQuestion is one prompt within an interview. Response fields are
// written on submission; score and feedback only after a successful
// evaluation call.
type InterviewQuestion struct {
	ID                 string       `gorm:"type:uuid;primaryKey" json:"id"`
	InterviewID        string       `gorm:"type:uuid;not null;index" json:"interviewId"`
	QuestionText       string       `gorm:"type:text;not null" json:"questionText"`
	QuestionType       QuestionType `gorm:"not null" json:"questionType"`
	OrderIndex         int          `gorm:"not null" json:"orderIndex"`
	UserResponse       *string      `gorm:"type:text" json:"userResponse"`
	ResponseTranscript *string      `gorm:"type:text" json:"responseTranscript"`
	ResponseScore      *float64     `gorm:"type:decimal(4,2)" json:"responseScore"` // 0-10
	ResponseFeedback   *string      `gorm:"type:text" json:"responseFeedback"`
	TimeSpent          *int         `json:"timeSpent"` // seconds
	CreatedAt          time.Time    `json:"createdAt"`
}

func (q *InterviewQuestion) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// UserPreferences pre-populates the interview setup form. One row per user.
type UserPreferences struct {
	ID                       string          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                   string          `gorm:"not null;uniqueIndex" json:"userId"`
	PreferredJobRole         JobRole         `json:"preferredJobRole"`
	PreferredExperienceLevel ExperienceLevel `json:"preferredExperienceLevel"`
	PreferredTechStack       []string        `gorm:"serializer:json" json:"preferredTechStack"`
	VoiceEnabledByDefault    bool            `gorm:"default:true" json:"voiceEnabledByDefault"`
	DarkMode                 bool            `gorm:"default:false" json:"darkMode"`
	CreatedAt                time.Time       `json:"createdAt"`
	UpdatedAt                time.Time       `json:"updatedAt"`
}

func (p *UserPreferences) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
