package interview

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/llm"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/storage"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/testhelpers"
)

type mockProvider struct {
	generateQuestionsFn func(ctx context.Context, req *llm.QuestionRequest) ([]llm.GeneratedQuestion, error)
	evaluateResponseFn  func(ctx context.Context, req *llm.EvaluationRequest) (*llm.ResponseEvaluation, error)
	overallFeedbackFn   func(ctx context.Context, evaluations []llm.EvaluationSummary) (string, error)

	feedbackCalls int
}

func (m *mockProvider) GenerateQuestions(ctx context.Context, req *llm.QuestionRequest) ([]llm.GeneratedQuestion, error) {
	if m.generateQuestionsFn != nil {
		return m.generateQuestionsFn(ctx, req)
	}
	questions := make([]llm.GeneratedQuestion, req.QuestionCount)
	for i := range questions {
		questions[i] = llm.GeneratedQuestion{
			Question: fmt.Sprintf("Question %d", i),
			Type:     models.QuestionTechnical,
		}
	}
	return questions, nil
}

func (m *mockProvider) EvaluateResponse(ctx context.Context, req *llm.EvaluationRequest) (*llm.ResponseEvaluation, error) {
	if m.evaluateResponseFn != nil {
		return m.evaluateResponseFn(ctx, req)
	}
	return &llm.ResponseEvaluation{Score: 7, Feedback: "Solid answer"}, nil
}

func (m *mockProvider) GenerateOverallFeedback(ctx context.Context, evaluations []llm.EvaluationSummary) (string, error) {
	m.feedbackCalls++
	if m.overallFeedbackFn != nil {
		return m.overallFeedbackFn(ctx, evaluations)
	}
	return "Overall you did well.", nil
}

func (m *mockProvider) GetProviderName() string { return "mock" }

type mockRealtime struct {
	createErr   error
	deleteErr   error
	tokenErr    error
	deleteCalls []string
}

func (m *mockRealtime) CreateRoom(_ context.Context, interviewID string) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	return "interview-" + interviewID, nil
}

func (m *mockRealtime) AccessToken(roomName, participantName, identity string) (string, error) {
	if m.tokenErr != nil {
		return "", m.tokenErr
	}
	return "token-for-" + participantName, nil
}

func (m *mockRealtime) DeleteRoom(_ context.Context, roomName string) error {
	m.deleteCalls = append(m.deleteCalls, roomName)
	return m.deleteErr
}

func (m *mockRealtime) ServerURL() string { return "wss://voice.test" }

type testEnv struct {
	db       *gorm.DB
	service  *Service
	provider *mockProvider
	realtime *mockRealtime
}

func setupService(t *testing.T) *testEnv {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	provider := &mockProvider{}
	rt := &mockRealtime{}
	service := NewService(
		&storage.InterviewRepository{DB: db},
		&storage.QuestionRepository{DB: db},
		&storage.UserRepository{DB: db},
		provider,
		rt,
		zap.NewNop(),
	)
	return &testEnv{db: db, service: service, provider: provider, realtime: rt}
}

func createRequest() *models.CreateInterviewRequest {
	return &models.CreateInterviewRequest{
		Title:           "Backend practice",
		JobRole:         models.RoleBackendDeveloper,
		ExperienceLevel: models.LevelMid,
		TechStack:       []string{"Go", "PostgreSQL"},
		TotalQuestions:  8,
	}
}

func TestCreatePersistsQuestionsInOrder(t *testing.T) {
	env := setupService(t)

	created, err := env.service.Create(context.Background(), "user-1", createRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Status != models.StatusPending {
		t.Errorf("expected status pending, got %s", created.Status)
	}
	if len(created.Questions) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(created.Questions))
	}
	for i, q := range created.Questions {
		if q.OrderIndex != i {
			t.Errorf("question %d has orderIndex %d", i, q.OrderIndex)
		}
		if q.QuestionText != fmt.Sprintf("Question %d", i) {
			t.Errorf("question %d out of order: %q", i, q.QuestionText)
		}
	}
}

func TestCreateGenerationFailureKeepsPendingInterview(t *testing.T) {
	env := setupService(t)
	env.provider.generateQuestionsFn = func(context.Context, *llm.QuestionRequest) ([]llm.GeneratedQuestion, error) {
		return nil, errors.New("model overloaded")
	}

	_, err := env.service.Create(context.Background(), "user-1", createRequest())

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}

	// The interview row survives the failure so the user can retry.
	var interviews []models.Interview
	if err := env.db.Find(&interviews).Error; err != nil {
		t.Fatalf("failed to list interviews: %v", err)
	}
	if len(interviews) != 1 {
		t.Fatalf("expected 1 interview, got %d", len(interviews))
	}
	if interviews[0].Status != models.StatusPending {
		t.Errorf("expected pending interview, got %s", interviews[0].Status)
	}
	var count int64
	env.db.Model(&models.InterviewQuestion{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no questions persisted, got %d", count)
	}
}

func TestCreateAllocatesVoiceRoom(t *testing.T) {
	env := setupService(t)
	req := createRequest()
	req.VoiceEnabled = true

	created, err := env.service.Create(context.Background(), "user-1", req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.RoomName == nil {
		t.Fatal("expected a room name")
	}
	if *created.RoomName != "interview-"+created.ID {
		t.Errorf("unexpected room name %q", *created.RoomName)
	}
}

func TestCreateRoomFailureDegradesToVoiceDisabled(t *testing.T) {
	env := setupService(t)
	env.realtime.createErr = errors.New("provider down")
	req := createRequest()
	req.VoiceEnabled = true

	created, err := env.service.Create(context.Background(), "user-1", req)
	if err != nil {
		t.Fatalf("Create should not fail when room allocation fails: %v", err)
	}
	if created.RoomName != nil {
		t.Errorf("expected no room name, got %q", *created.RoomName)
	}
}

func TestGetForUserCollapsesOwnershipIntoNotFound(t *testing.T) {
	env := setupService(t)
	created, err := env.service.Create(context.Background(), "owner", createRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = env.service.GetForUser(created.ID, "intruder")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError for foreign caller, got %v", err)
	}

	_, err = env.service.GetForUser("missing-id", "owner")
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError for missing interview, got %v", err)
	}
}

func TestSubmitResponseRejectsBlankResponse(t *testing.T) {
	env := setupService(t)

	_, _, err := env.service.SubmitResponse(context.Background(), "q-1", &models.SubmitResponseRequest{Response: "   "})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSubmitResponseMovesPendingToInProgress(t *testing.T) {
	env := setupService(t)
	created, err := env.service.Create(context.Background(), "user-1", createRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, _, err = env.service.SubmitResponse(context.Background(), created.Questions[0].ID, &models.SubmitResponseRequest{Response: "My answer"})
	if err != nil {
		t.Fatalf("SubmitResponse failed: %v", err)
	}

	fresh, err := env.service.GetForUser(created.ID, "user-1")
	if err != nil {
		t.Fatalf("GetForUser failed: %v", err)
	}
	if fresh.Status != models.StatusInProgress {
		t.Errorf("expected in_progress, got %s", fresh.Status)
	}
}

func TestSubmitResponseKeepsRawAnswerWhenEvaluationFails(t *testing.T) {
	env := setupService(t)
	created, err := env.service.Create(context.Background(), "user-1", createRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	env.provider.evaluateResponseFn = func(context.Context, *llm.EvaluationRequest) (*llm.ResponseEvaluation, error) {
		return nil, errors.New("quota exhausted")
	}

	questionID := created.Questions[0].ID
	_, _, err = env.service.SubmitResponse(context.Background(), questionID, &models.SubmitResponseRequest{Response: "My answer"})

	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}

	var question models.InterviewQuestion
	if err := env.db.First(&question, "id = ?", questionID).Error; err != nil {
		t.Fatalf("failed to load question: %v", err)
	}
	if question.UserResponse == nil || *question.UserResponse != "My answer" {
		t.Error("raw response should survive evaluation failure")
	}
	if question.ResponseScore != nil {
		t.Error("score should stay null after a failed evaluation")
	}
}

func TestSubmitResponseResubmissionOverwrites(t *testing.T) {
	env := setupService(t)
	created, err := env.service.Create(context.Background(), "user-1", createRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	questionID := created.Questions[0].ID

	scores := []float64{4, 9}
	call := 0
	env.provider.evaluateResponseFn = func(_ context.Context, req *llm.EvaluationRequest) (*llm.ResponseEvaluation, error) {
		eval := &llm.ResponseEvaluation{Score: scores[call], Feedback: "attempt " + req.Response}
		call++
		return eval, nil
	}

	if _, _, err := env.service.SubmitResponse(context.Background(), questionID, &models.SubmitResponseRequest{Response: "first"}); err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	question, evaluation, err := env.service.SubmitResponse(context.Background(), questionID, &models.SubmitResponseRequest{Response: "second"})
	if err != nil {
		t.Fatalf("second submission failed: %v", err)
	}

	if evaluation.Score != 9 {
		t.Errorf("expected second evaluation score 9, got %v", evaluation.Score)
	}
	if question.UserResponse == nil || *question.UserResponse != "second" {
		t.Error("second response should overwrite the first")
	}
	if question.ResponseScore == nil || *question.ResponseScore != 9 {
		t.Error("final score should come from the second evaluation only")
	}
}

func TestCompleteAggregatesScores(t *testing.T) {
	env := setupService(t)
	env.provider.generateQuestionsFn = func(context.Context, *llm.QuestionRequest) ([]llm.GeneratedQuestion, error) {
		return []llm.GeneratedQuestion{
			{Question: "Explain indexes", Type: models.QuestionTechnical},
			{Question: "Describe a conflict", Type: models.QuestionBehavioral},
		}, nil
	}
	req := createRequest()
	req.TotalQuestions = 2
	created, err := env.service.Create(context.Background(), "user-1", req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	scores := map[string]float64{
		created.Questions[0].ID: 6.0,
		created.Questions[1].ID: 9.0,
	}
	for id, score := range scores {
		s := score
		env.provider.evaluateResponseFn = func(context.Context, *llm.EvaluationRequest) (*llm.ResponseEvaluation, error) {
			return &llm.ResponseEvaluation{Score: s, Feedback: "ok"}, nil
		}
		if _, _, err := env.service.SubmitResponse(context.Background(), id, &models.SubmitResponseRequest{Response: "answer"}); err != nil {
			t.Fatalf("SubmitResponse failed: %v", err)
		}
	}

	completed, err := env.service.Complete(context.Background(), created.ID, "user-1", nil)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if completed.Status != models.StatusCompleted {
		t.Errorf("expected completed, got %s", completed.Status)
	}
	if completed.OverallScore == nil || *completed.OverallScore != 7.5 {
		t.Errorf("expected overall 7.5, got %v", completed.OverallScore)
	}
	if completed.CommunicationScore == nil || *completed.CommunicationScore != 6.0 {
		t.Errorf("expected communication 6.0, got %v", completed.CommunicationScore)
	}
	// The only technical question scored 6.0.
	if completed.TechnicalScore == nil || *completed.TechnicalScore != 6.0 {
		t.Errorf("expected technical 6.0, got %v", completed.TechnicalScore)
	}
	if completed.ConfidenceLevel == nil || *completed.ConfidenceLevel != 80 {
		t.Errorf("expected confidence 80, got %v", completed.ConfidenceLevel)
	}
	if completed.Duration == nil || *completed.Duration != 30 {
		t.Errorf("expected default duration 30, got %v", completed.Duration)
	}
	if completed.Feedback == nil || *completed.Feedback != "Overall you did well." {
		t.Errorf("unexpected feedback %v", completed.Feedback)
	}
}

func TestCompleteTechnicalFallsBackToOverall(t *testing.T) {
	env := setupService(t)
	env.provider.generateQuestionsFn = func(context.Context, *llm.QuestionRequest) ([]llm.GeneratedQuestion, error) {
		return []llm.GeneratedQuestion{
			{Question: "Tell me about yourself", Type: models.QuestionBehavioral},
			{Question: "A teammate disagrees", Type: models.QuestionSituational},
		}, nil
	}
	req := createRequest()
	req.TotalQuestions = 2
	created, err := env.service.Create(context.Background(), "user-1", req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	env.provider.evaluateResponseFn = func(context.Context, *llm.EvaluationRequest) (*llm.ResponseEvaluation, error) {
		return &llm.ResponseEvaluation{Score: 8, Feedback: "ok"}, nil
	}
	for _, q := range created.Questions {
		if _, _, err := env.service.SubmitResponse(context.Background(), q.ID, &models.SubmitResponseRequest{Response: "answer"}); err != nil {
			t.Fatalf("SubmitResponse failed: %v", err)
		}
	}

	completed, err := env.service.Complete(context.Background(), created.ID, "user-1", nil)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if completed.TechnicalScore == nil || *completed.TechnicalScore != 8 {
		t.Errorf("technical score should fall back to overall, got %v", completed.TechnicalScore)
	}
}

func TestCompleteWithZeroScoredQuestions(t *testing.T) {
	env := setupService(t)
	created, err := env.service.Create(context.Background(), "user-1", createRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	completed, err := env.service.Complete(context.Background(), created.ID, "user-1", nil)
	if err != nil {
		t.Fatalf("Complete with no scores should not error: %v", err)
	}

	if completed.OverallScore == nil || *completed.OverallScore != 0 {
		t.Errorf("expected overall 0, got %v", completed.OverallScore)
	}
	if completed.CommunicationScore == nil || *completed.CommunicationScore != 0 {
		t.Errorf("expected communication 0, got %v", completed.CommunicationScore)
	}
	if completed.TechnicalScore == nil || *completed.TechnicalScore != 0 {
		t.Errorf("expected technical 0, got %v", completed.TechnicalScore)
	}
	if completed.Feedback == nil || *completed.Feedback != insufficientDataFeedback {
		t.Errorf("expected placeholder feedback, got %v", completed.Feedback)
	}
	if env.provider.feedbackCalls != 0 {
		t.Errorf("summary generator should not be called with zero scored questions, got %d calls", env.provider.feedbackCalls)
	}
}

func TestCompleteSummaryFailureIsFatal(t *testing.T) {
	env := setupService(t)
	created, err := env.service.Create(context.Background(), "user-1", createRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, _, err := env.service.SubmitResponse(context.Background(), created.Questions[0].ID, &models.SubmitResponseRequest{Response: "answer"}); err != nil {
		t.Fatalf("SubmitResponse failed: %v", err)
	}
	env.provider.overallFeedbackFn = func(context.Context, []llm.EvaluationSummary) (string, error) {
		return "", errors.New("model overloaded")
	}

	_, err = env.service.Complete(context.Background(), created.ID, "user-1", nil)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}

	// Completion did not go through; the interview can be completed again.
	fresh, err := env.service.GetForUser(created.ID, "user-1")
	if err != nil {
		t.Fatalf("GetForUser failed: %v", err)
	}
	if fresh.Status == models.StatusCompleted {
		t.Error("interview should not be completed after a summary failure")
	}
}

func TestCompleteDurationOverride(t *testing.T) {
	env := setupService(t)
	created, err := env.service.Create(context.Background(), "user-1", createRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	duration := 45
	completed, err := env.service.Complete(context.Background(), created.ID, "user-1", &models.CompleteInterviewRequest{Duration: &duration})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if completed.Duration == nil || *completed.Duration != 45 {
		t.Errorf("expected duration 45, got %v", completed.Duration)
	}
}

func TestCompleteTearsDownRoomExactlyOnce(t *testing.T) {
	env := setupService(t)
	req := createRequest()
	req.VoiceEnabled = true
	created, err := env.service.Create(context.Background(), "user-1", req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	env.realtime.deleteErr = errors.New("room already gone")
	if _, err := env.service.Complete(context.Background(), created.ID, "user-1", nil); err != nil {
		t.Fatalf("teardown failure must not block completion: %v", err)
	}
	if len(env.realtime.deleteCalls) != 1 {
		t.Fatalf("expected exactly 1 teardown call, got %d", len(env.realtime.deleteCalls))
	}
	if env.realtime.deleteCalls[0] != *created.RoomName {
		t.Errorf("tore down wrong room %q", env.realtime.deleteCalls[0])
	}
}

func TestDeleteRemovesInterviewAndQuestions(t *testing.T) {
	env := setupService(t)
	req := createRequest()
	req.VoiceEnabled = true
	created, err := env.service.Create(context.Background(), "user-1", req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := env.service.Delete(context.Background(), created.ID, "user-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if len(env.realtime.deleteCalls) != 1 {
		t.Errorf("expected 1 teardown call, got %d", len(env.realtime.deleteCalls))
	}
	var interviewCount, questionCount int64
	env.db.Model(&models.Interview{}).Count(&interviewCount)
	env.db.Model(&models.InterviewQuestion{}).Count(&questionCount)
	if interviewCount != 0 || questionCount != 0 {
		t.Errorf("expected cascade delete, have %d interviews and %d questions", interviewCount, questionCount)
	}
}

func TestDeleteForeignInterviewIsNotFound(t *testing.T) {
	env := setupService(t)
	created, err := env.service.Create(context.Background(), "owner", createRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = env.service.Delete(context.Background(), created.ID, "intruder")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(env.realtime.deleteCalls) != 0 {
		t.Error("no teardown should happen for a foreign caller")
	}
}

func TestIssueTokenRequiresVoiceRoom(t *testing.T) {
	env := setupService(t)
	created, err := env.service.Create(context.Background(), "user-1", createRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = env.service.IssueToken(context.Background(), created.ID, "user-1")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for voice-disabled interview, got %v", err)
	}
}

func TestIssueTokenParticipantNameFallbacks(t *testing.T) {
	cases := []struct {
		name     string
		user     *models.User
		expected string
	}{
		{"first name", &models.User{ID: "user-1", FirstName: "Ada", Email: "ada@example.com"}, "token-for-Ada"},
		{"email", &models.User{ID: "user-1", Email: "ada@example.com"}, "token-for-ada@example.com"},
		{"placeholder", nil, "token-for-User-user-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := setupService(t)
			if tc.user != nil {
				if err := env.db.Create(tc.user).Error; err != nil {
					t.Fatalf("failed to seed user: %v", err)
				}
			}
			req := createRequest()
			req.VoiceEnabled = true
			created, err := env.service.Create(context.Background(), "user-1", req)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}

			token, err := env.service.IssueToken(context.Background(), created.ID, "user-1")
			if err != nil {
				t.Fatalf("IssueToken failed: %v", err)
			}
			if token.Token != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, token.Token)
			}
			if token.RoomName != *created.RoomName {
				t.Errorf("expected room %q, got %q", *created.RoomName, token.RoomName)
			}
			if token.WsURL != "wss://voice.test" {
				t.Errorf("unexpected ws url %q", token.WsURL)
			}
		})
	}
}

func TestStatsForNewUserAreAllZero(t *testing.T) {
	env := setupService(t)

	stats, err := env.service.Stats("nobody")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalInterviews != 0 || stats.AverageScore != 0 || stats.ConfidenceLevel != 0 || stats.PracticeTime != 0 {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
}
