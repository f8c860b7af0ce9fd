package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/llm"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/prompts"
)

// Client is the Gemini implementation of the question/evaluation port.
type Client struct {
	client  *genai.Client
	config  *Config
	prompts prompts.PromptProvider
}

func NewClient(config *Config, promptManager prompts.PromptProvider) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client:  client,
		config:  config,
		prompts: promptManager,
	}, nil
}

var questionSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question": {Type: genai.TypeString},
			"type": {
				Type: genai.TypeString,
				Enum: []string{"technical", "behavioral", "situational"},
			},
			"expectedAreas": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"question", "type", "expectedAreas"},
	},
}

var evaluationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":              {Type: genai.TypeNumber},
		"feedback":           {Type: genai.TypeString},
		"strengths":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"improvements":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"confidenceLevel":    {Type: genai.TypeNumber},
		"communicationScore": {Type: genai.TypeNumber},
		"technicalScore":     {Type: genai.TypeNumber},
	},
	Required: []string{
		"score", "feedback", "strengths", "improvements",
		"confidenceLevel", "communicationScore", "technicalScore",
	},
}

// GenerateQuestions asks Gemini for a structured question set.
func (c *Client) GenerateQuestions(ctx context.Context, req *llm.QuestionRequest) ([]llm.GeneratedQuestion, error) {
	system, user, err := c.prompts.BuildPrompt("questions", map[string]string{
		"JobRole":         string(req.JobRole),
		"ExperienceLevel": string(req.ExperienceLevel),
		"TechStack":       strings.Join(req.TechStack, ", "),
		"QuestionCount":   fmt.Sprintf("%d", req.QuestionCount),
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to build questions prompt",
			Err:      err,
		}
	}

	raw, err := c.generateJSON(ctx, c.config.Model, system, user, questionSchema)
	if err != nil {
		return nil, err
	}

	var questions []llm.GeneratedQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to parse generated questions",
			Err:      err,
		}
	}
	if len(questions) == 0 {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Generator returned no questions",
		}
	}
	for i := range questions {
		if !questions[i].Type.Valid() {
			questions[i].Type = models.QuestionTechnical
		}
	}
	return questions, nil
}

// EvaluateResponse scores a single question/response pair.
func (c *Client) EvaluateResponse(ctx context.Context, req *llm.EvaluationRequest) (*llm.ResponseEvaluation, error) {
	system, user, err := c.prompts.BuildPrompt("evaluation", map[string]string{
		"JobRole":         string(req.JobRole),
		"ExperienceLevel": string(req.ExperienceLevel),
		"Question":        req.Question,
		"Response":        req.Response,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to build evaluation prompt",
			Err:      err,
		}
	}

	raw, err := c.generateJSON(ctx, c.config.Model, system, user, evaluationSchema)
	if err != nil {
		return nil, err
	}

	var evaluation llm.ResponseEvaluation
	if err := json.Unmarshal([]byte(raw), &evaluation); err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to parse evaluation",
			Err:      err,
		}
	}
	return &evaluation, nil
}

// GenerateOverallFeedback produces the final narrative from the per-question
// evaluations.
func (c *Client) GenerateOverallFeedback(ctx context.Context, evaluations []llm.EvaluationSummary) (string, error) {
	lines := make([]string, 0, len(evaluations))
	for i, e := range evaluations {
		lines = append(lines, fmt.Sprintf("Question %d: Score %.1f/10, Feedback: %s", i+1, e.Score, e.Feedback))
	}

	system, user, err := c.prompts.BuildPrompt("summary", map[string]string{
		"EvaluationSummary": strings.Join(lines, "\n"),
	})
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to build summary prompt",
			Err:      err,
		}
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.SummaryModel,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		},
	)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate overall feedback",
			Err:      err,
		}
	}
	text, err := c.extractText(result)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}

// generateJSON performs a schema-constrained generation call and returns the
// raw JSON text.
func (c *Client) generateJSON(ctx context.Context, model, system, user string, schema *genai.Schema) (string, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
			ResponseMIMEType:  "application/json",
			ResponseSchema:    schema,
		},
	)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate content",
			Err:      err,
		}
	}
	return c.extractText(result)
}

func (c *Client) extractText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No response generated",
		}
	}
	text, err := result.Text()
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if text == "" {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}
	return text, nil
}
