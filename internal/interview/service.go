package interview

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/llm"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/realtime"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/storage"
)

// insufficientDataFeedback replaces the generated narrative when no question
// was scored.
const insufficientDataFeedback = "Complete more questions to receive detailed feedback."

// fixed completion scoring constants
const (
	communicationWeight = 0.8
	completedConfidence = 80.0
	defaultDuration     = 30 // minutes
)

// Service orchestrates the interview lifecycle: creation, response
// submission, completion and teardown. All collaborators are injected.
type Service struct {
	interviews *storage.InterviewRepository
	questions  *storage.QuestionRepository
	users      *storage.UserRepository
	generator  llm.Provider
	realtime   realtime.Service
	logger     *zap.Logger
}

func NewService(
	interviews *storage.InterviewRepository,
	questions *storage.QuestionRepository,
	users *storage.UserRepository,
	generator llm.Provider,
	rt realtime.Service,
	logger *zap.Logger,
) *Service {
	return &Service{
		interviews: interviews,
		questions:  questions,
		users:      users,
		generator:  generator,
		realtime:   rt,
		logger:     logger,
	}
}

// Create persists a pending interview, generates its question set, and
// optionally allocates a voice room. Question generation failure leaves the
// pending interview in place for a later retry; room allocation failure
// degrades the interview to voice-disabled.
func (s *Service) Create(ctx context.Context, userID string, req *models.CreateInterviewRequest) (*models.Interview, error) {
	interview := &models.Interview{
		UserID:          userID,
		Title:           req.Title,
		JobRole:         req.JobRole,
		ExperienceLevel: req.ExperienceLevel,
		TechStack:       req.TechStack,
		Status:          models.StatusPending,
		TotalQuestions:  req.TotalQuestions,
		VoiceEnabled:    req.VoiceEnabled,
	}
	if err := s.interviews.Create(interview); err != nil {
		return nil, err
	}
	s.logger.Info("Created interview", zap.String("interviewId", interview.ID))

	generated, err := s.generator.GenerateQuestions(ctx, &llm.QuestionRequest{
		JobRole:         interview.JobRole,
		ExperienceLevel: interview.ExperienceLevel,
		TechStack:       interview.TechStack,
		QuestionCount:   interview.TotalQuestions,
	})
	if err != nil {
		s.logger.Error("Failed to generate questions", zap.String("interviewId", interview.ID), zap.Error(err))
		return nil, &GenerationError{Err: err}
	}

	for i, q := range generated {
		question := &models.InterviewQuestion{
			InterviewID:  interview.ID,
			QuestionText: q.Question,
			QuestionType: q.Type,
			OrderIndex:   i,
		}
		if err := s.questions.Create(question); err != nil {
			return nil, err
		}
	}

	if interview.VoiceEnabled {
		roomName, err := s.realtime.CreateRoom(ctx, interview.ID)
		if err != nil {
			// Voice features degrade silently; the interview is still usable.
			s.logger.Warn("Failed to allocate voice room", zap.String("interviewId", interview.ID), zap.Error(err))
		} else {
			if _, err := s.interviews.Update(interview.ID, map[string]interface{}{"room_name": roomName}); err != nil {
				return nil, err
			}
		}
	}

	return s.interviews.GetWithQuestions(interview.ID)
}

// GetForUser loads an interview with its questions, collapsing ownership
// mismatches into not-found.
func (s *Service) GetForUser(interviewID, userID string) (*models.Interview, error) {
	interview, err := s.interviews.GetWithQuestions(interviewID)
	if errors.Is(err, storage.ErrInterviewNotFound) {
		return nil, &NotFoundError{Resource: "Interview"}
	}
	if err != nil {
		return nil, err
	}
	if interview.UserID != userID {
		return nil, &NotFoundError{Resource: "Interview"}
	}
	return interview, nil
}

// List returns the user's interviews, newest first.
func (s *Service) List(userID string) ([]models.Interview, error) {
	return s.interviews.ListByUser(userID)
}

// Update applies a partial update after an ownership check.
func (s *Service) Update(interviewID, userID string, req *models.UpdateInterviewRequest) (*models.Interview, error) {
	if _, err := s.GetForUser(interviewID, userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.CurrentQuestion != nil {
		updates["current_question"] = *req.CurrentQuestion
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	return s.interviews.Update(interviewID, updates)
}

// Delete tears down the voice room when one exists, then removes the
// interview and its questions. Exactly one teardown call is made regardless
// of its outcome.
func (s *Service) Delete(ctx context.Context, interviewID, userID string) error {
	interview, err := s.GetForUser(interviewID, userID)
	if err != nil {
		return err
	}

	if interview.RoomName != nil {
		if err := s.realtime.DeleteRoom(ctx, *interview.RoomName); err != nil {
			s.logger.Warn("Failed to delete voice room", zap.String("roomName", *interview.RoomName), zap.Error(err))
		}
	}

	return s.interviews.Delete(interviewID)
}

// SubmitResponse persists the raw answer first, so it survives an evaluation
// failure, then scores it and writes score and feedback in a second pass.
func (s *Service) SubmitResponse(ctx context.Context, questionID string, req *models.SubmitResponseRequest) (*models.InterviewQuestion, *llm.ResponseEvaluation, error) {
	if strings.TrimSpace(req.Response) == "" {
		return nil, nil, &ValidationError{Message: "Response is required"}
	}

	update := storage.ResponseUpdate{Response: &req.Response, TimeSpent: req.TimeSpent}
	if req.Transcript != "" {
		update.Transcript = &req.Transcript
	}
	question, err := s.questions.UpdateResponse(questionID, update)
	if errors.Is(err, storage.ErrQuestionNotFound) {
		return nil, nil, &NotFoundError{Resource: "Question"}
	}
	if err != nil {
		return nil, nil, err
	}

	interview, err := s.interviews.Get(question.InterviewID)
	if errors.Is(err, storage.ErrInterviewNotFound) {
		return nil, nil, &NotFoundError{Resource: "Interview"}
	}
	if err != nil {
		return nil, nil, err
	}

	// First answered question moves the interview out of pending.
	if interview.Status == models.StatusPending {
		if _, err := s.interviews.Update(interview.ID, map[string]interface{}{"status": models.StatusInProgress}); err != nil {
			return nil, nil, err
		}
	}

	evaluation, err := s.generator.EvaluateResponse(ctx, &llm.EvaluationRequest{
		Question:        question.QuestionText,
		Response:        req.Response,
		JobRole:         interview.JobRole,
		ExperienceLevel: interview.ExperienceLevel,
	})
	if err != nil {
		s.logger.Error("Failed to evaluate response", zap.String("questionId", questionID), zap.Error(err))
		return nil, nil, &EvaluationError{Err: err}
	}

	question, err = s.questions.UpdateResponse(questionID, storage.ResponseUpdate{
		Score:    &evaluation.Score,
		Feedback: &evaluation.Feedback,
	})
	if err != nil {
		return nil, nil, err
	}

	return question, evaluation, nil
}

// Complete aggregates the per-question scores, asks the generator for a
// narrative summary, and finalizes the interview. Room teardown is
// best-effort and never blocks completion.
func (s *Service) Complete(ctx context.Context, interviewID, userID string, req *models.CompleteInterviewRequest) (*models.Interview, error) {
	interview, err := s.GetForUser(interviewID, userID)
	if err != nil {
		return nil, err
	}

	var questionScores []float64
	var communicationScores []float64
	var technicalScores []float64
	var evaluations []llm.EvaluationSummary
	for _, q := range interview.Questions {
		if q.ResponseScore == nil {
			continue
		}
		score := *q.ResponseScore
		questionScores = append(questionScores, score)
		communicationScores = append(communicationScores, score*communicationWeight)
		if q.QuestionType == models.QuestionTechnical {
			technicalScores = append(technicalScores, score)
		}
		if q.ResponseFeedback != nil {
			evaluations = append(evaluations, llm.EvaluationSummary{Score: score, Feedback: *q.ResponseFeedback})
		}
	}

	overallScore := mean(questionScores, 0)
	communicationScore := mean(communicationScores, 0)
	technicalScore := mean(technicalScores, overallScore)

	feedback := insufficientDataFeedback
	if len(questionScores) > 0 {
		feedback, err = s.generator.GenerateOverallFeedback(ctx, evaluations)
		if err != nil {
			s.logger.Error("Failed to generate overall feedback", zap.String("interviewId", interviewID), zap.Error(err))
			return nil, &GenerationError{Err: err}
		}
	}

	duration := defaultDuration
	if req != nil && req.Duration != nil {
		duration = *req.Duration
	}

	completed, err := s.interviews.Update(interviewID, map[string]interface{}{
		"status":              models.StatusCompleted,
		"overall_score":       overallScore,
		"communication_score": communicationScore,
		"technical_score":     technicalScore,
		"confidence_level":    completedConfidence,
		"feedback":            feedback,
		"duration":            duration,
	})
	if err != nil {
		return nil, err
	}

	if interview.RoomName != nil {
		if err := s.realtime.DeleteRoom(ctx, *interview.RoomName); err != nil {
			s.logger.Warn("Failed to delete voice room", zap.String("roomName", *interview.RoomName), zap.Error(err))
		}
	}

	s.logger.Info("Completed interview",
		zap.String("interviewId", interviewID),
		zap.Float64("overallScore", overallScore),
		zap.Int("scoredQuestions", len(questionScores)))

	return completed, nil
}

// IssueToken mints a voice room join token for the interview's owner.
func (s *Service) IssueToken(ctx context.Context, interviewID, userID string) (*models.TokenResponse, error) {
	interview, err := s.GetForUser(interviewID, userID)
	if err != nil {
		return nil, err
	}
	if interview.RoomName == nil {
		return nil, &ValidationError{Message: "Interview does not have voice enabled"}
	}

	participantName := "User-" + userID
	if user, err := s.users.GetUser(userID); err == nil {
		if user.FirstName != "" {
			participantName = user.FirstName
		} else if user.Email != "" {
			participantName = user.Email
		}
	}

	token, err := s.realtime.AccessToken(*interview.RoomName, participantName, userID)
	if err != nil {
		return nil, &SessionProviderError{Err: err}
	}

	return &models.TokenResponse{
		Token:    token,
		WsURL:    s.realtime.ServerURL(),
		RoomName: *interview.RoomName,
	}, nil
}

// Stats aggregates the caller's completed interviews.
func (s *Service) Stats(userID string) (*models.UserStats, error) {
	return s.interviews.UserStats(userID)
}

func mean(values []float64, fallback float64) float64 {
	if len(values) == 0 {
		return fallback
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
