package livekit

import (
	"errors"
	"os"
)

// holds LiveKit credentials and endpoint
type Config struct {
	APIKey    string
	APISecret string
	URL       string // wss:// endpoint clients connect to
}

func NewConfig() (*Config, error) {
	apiKey := os.Getenv("LIVEKIT_API_KEY")
	apiSecret := os.Getenv("LIVEKIT_API_SECRET")
	if apiKey == "" || apiSecret == "" {
		return nil, errors.New("LIVEKIT_API_KEY and LIVEKIT_API_SECRET environment variables are required")
	}

	url := os.Getenv("LIVEKIT_URL")
	if url == "" {
		url = "wss://your-livekit-instance.livekit.cloud"
	}

	return &Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
		URL:       url,
	}, nil
}
