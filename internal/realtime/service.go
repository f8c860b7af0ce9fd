package realtime

import (
	"context"
	"errors"
)

// Service is the real-time session provider port. Rooms are allocated per
// voice-enabled interview and torn down on completion or deletion.
type Service interface {
	// CreateRoom allocates a room for the interview and returns its name.
	CreateRoom(ctx context.Context, interviewID string) (string, error)
	// AccessToken issues a signed join token for the given participant.
	AccessToken(roomName, participantName, identity string) (string, error)
	// DeleteRoom tears the room down. Callers treat failures as best-effort.
	DeleteRoom(ctx context.Context, roomName string) error
	// ServerURL is the websocket endpoint clients connect to.
	ServerURL() string
}

// ErrNotConfigured is returned by the disabled provider when voice features
// are requested without credentials.
var ErrNotConfigured = errors.New("realtime session provider not configured")

// Disabled is a no-op provider used when no credentials are present. Room
// allocation fails, which degrades interviews to voice-disabled.
type Disabled struct{}

func (Disabled) CreateRoom(context.Context, string) (string, error) { return "", ErrNotConfigured }
func (Disabled) AccessToken(string, string, string) (string, error) {
	return "", ErrNotConfigured
}
func (Disabled) DeleteRoom(context.Context, string) error { return ErrNotConfigured }
func (Disabled) ServerURL() string                        { return "" }
