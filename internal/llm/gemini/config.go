package gemini

import (
	"errors"
	"os"
)

// holds Gemini-specific configuration
type Config struct {
	APIKey       string
	Model        string // question generation and response evaluation
	SummaryModel string // overall feedback narrative
}

func NewConfig() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is required")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-pro" // default model
	}

	summaryModel := os.Getenv("GEMINI_SUMMARY_MODEL")
	if summaryModel == "" {
		summaryModel = "gemini-2.5-flash"
	}

	return &Config{
		APIKey:       apiKey,
		Model:        model,
		SummaryModel: summaryModel,
	}, nil
}
