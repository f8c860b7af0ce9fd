package models

import "strings"

// CreateInterviewRequest is the body of POST /api/interviews.
type CreateInterviewRequest struct {
	Title           string          `json:"title"`
	JobRole         JobRole         `json:"jobRole"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	TechStack       []string        `json:"techStack"`
	VoiceEnabled    bool            `json:"voiceEnabled"`
	TotalQuestions  int             `json:"totalQuestions"`
}

// implements the Validator interface used by the validation middleware
func (r *CreateInterviewRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return &ErrorResponse{Code: "missing_title", Message: "Title field is required"}
	}
	if !r.JobRole.Valid() {
		return &ErrorResponse{Code: "invalid_job_role", Message: "Unknown job role: " + string(r.JobRole)}
	}
	if !r.ExperienceLevel.Valid() {
		return &ErrorResponse{Code: "invalid_experience_level", Message: "Unknown experience level: " + string(r.ExperienceLevel)}
	}
	if r.TotalQuestions < 0 {
		return &ErrorResponse{Code: "invalid_question_count", Message: "Question count must not be negative"}
	}
	if r.TotalQuestions == 0 {
		r.TotalQuestions = 8
	}
	return nil
}

// SubmitResponseRequest is the body of POST /api/questions/{id}/response.
type SubmitResponseRequest struct {
	Response   string `json:"response"`
	Transcript string `json:"transcript"`
	TimeSpent  *int   `json:"timeSpent"`
}

func (r *SubmitResponseRequest) Validate() error {
	if strings.TrimSpace(r.Response) == "" {
		return &ErrorResponse{Code: "missing_response", Message: "Response is required"}
	}
	return nil
}

// UpdateInterviewRequest is the body of PATCH /api/interviews/{id}. All
// fields are optional; only the ones present are applied.
type UpdateInterviewRequest struct {
	Title           *string          `json:"title"`
	Status          *InterviewStatus `json:"status"`
	CurrentQuestion *int             `json:"currentQuestion"`
	Duration        *int             `json:"duration"`
}

func (r *UpdateInterviewRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return &ErrorResponse{Code: "invalid_title", Message: "Title must not be blank"}
	}
	if r.Status != nil && !r.Status.Valid() {
		return &ErrorResponse{Code: "invalid_status", Message: "Unknown interview status: " + string(*r.Status)}
	}
	if r.CurrentQuestion != nil && *r.CurrentQuestion < 0 {
		return &ErrorResponse{Code: "invalid_current_question", Message: "Current question must not be negative"}
	}
	return nil
}

// CompleteInterviewRequest is the optional body of
// POST /api/interviews/{id}/complete.
type CompleteInterviewRequest struct {
	Duration *int `json:"duration"` // minutes; defaults to 30
}

// PreferencesRequest is the body of POST /api/preferences.
type PreferencesRequest struct {
	PreferredJobRole         JobRole         `json:"preferredJobRole"`
	PreferredExperienceLevel ExperienceLevel `json:"preferredExperienceLevel"`
	PreferredTechStack       []string        `json:"preferredTechStack"`
	VoiceEnabledByDefault    *bool           `json:"voiceEnabledByDefault"`
	DarkMode                 *bool           `json:"darkMode"`
}

func (r *PreferencesRequest) Validate() error {
	if r.PreferredJobRole != "" && !r.PreferredJobRole.Valid() {
		return &ErrorResponse{Code: "invalid_job_role", Message: "Unknown job role: " + string(r.PreferredJobRole)}
	}
	if r.PreferredExperienceLevel != "" && !r.PreferredExperienceLevel.Valid() {
		return &ErrorResponse{Code: "invalid_experience_level", Message: "Unknown experience level: " + string(r.PreferredExperienceLevel)}
	}
	return nil
}
