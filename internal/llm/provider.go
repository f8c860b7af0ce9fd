package llm

import (
	"context"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
)

// GeneratedQuestion is one question returned by the generator.
type GeneratedQuestion struct {
	Question      string              `json:"question"`
	Type          models.QuestionType `json:"type"`
	ExpectedAreas []string            `json:"expectedAreas"`
}

// QuestionRequest describes the interview a question set is generated for.
type QuestionRequest struct {
	JobRole         models.JobRole
	ExperienceLevel models.ExperienceLevel
	TechStack       []string
	QuestionCount   int
}

// EvaluationRequest carries one question/response pair for scoring.
type EvaluationRequest struct {
	Question        string
	Response        string
	JobRole         models.JobRole
	ExperienceLevel models.ExperienceLevel
}

// ResponseEvaluation is the structured assessment of a single response.
type ResponseEvaluation struct {
	Score              float64  `json:"score"` // 0-10
	Feedback           string   `json:"feedback"`
	Strengths          []string `json:"strengths"`
	Improvements       []string `json:"improvements"`
	ConfidenceLevel    float64  `json:"confidenceLevel"`    // 0-100
	CommunicationScore float64  `json:"communicationScore"` // 0-10
	TechnicalScore     float64  `json:"technicalScore"`     // 0-10
}

// EvaluationSummary is the per-question input to the overall feedback call.
type EvaluationSummary struct {
	Score    float64
	Feedback string
}

// Provider is the question/evaluation generator port. The lifecycle
// controller only ever talks to this interface.
type Provider interface {
	GenerateQuestions(ctx context.Context, req *QuestionRequest) ([]GeneratedQuestion, error)
	EvaluateResponse(ctx context.Context, req *EvaluationRequest) (*ResponseEvaluation, error)
	GenerateOverallFeedback(ctx context.Context, evaluations []EvaluationSummary) (string, error)
	GetProviderName() string
}

// represents an error from an LLM provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Common error codes
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)
