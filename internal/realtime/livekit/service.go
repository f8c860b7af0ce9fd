package livekit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Service talks to the LiveKit RoomService over its Twirp HTTP API and mints
// access tokens locally.
type Service struct {
	config     *Config
	httpClient *http.Client
	apiBase    string
}

func New(config *Config) *Service {
	return &Service{
		config:     config,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiBase:    httpBase(config.URL),
	}
}

// httpBase converts the websocket endpoint to the HTTP API base URL.
func httpBase(url string) string {
	switch {
	case strings.HasPrefix(url, "wss://"):
		return "https://" + strings.TrimPrefix(url, "wss://")
	case strings.HasPrefix(url, "ws://"):
		return "http://" + strings.TrimPrefix(url, "ws://")
	default:
		return url
	}
}

type createRoomRequest struct {
	Name            string `json:"name"`
	EmptyTimeout    int    `json:"empty_timeout"`
	MaxParticipants int    `json:"max_participants"`
}

type deleteRoomRequest struct {
	Room string `json:"room"`
}

// CreateRoom allocates one room per interview, named after it. The room is
// capped at two participants (candidate + interviewer bot) and expires after
// five idle minutes.
func (s *Service) CreateRoom(ctx context.Context, interviewID string) (string, error) {
	roomName := "interview-" + interviewID

	err := s.call(ctx, "CreateRoom", createRoomRequest{
		Name:            roomName,
		EmptyTimeout:    300,
		MaxParticipants: 2,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create interview room: %w", err)
	}
	return roomName, nil
}

// DeleteRoom tears the room down.
func (s *Service) DeleteRoom(ctx context.Context, roomName string) error {
	if err := s.call(ctx, "DeleteRoom", deleteRoomRequest{Room: roomName}); err != nil {
		return fmt.Errorf("failed to delete interview room: %w", err)
	}
	return nil
}

func (s *Service) ServerURL() string {
	return s.config.URL
}

// call issues one authenticated RoomService RPC.
func (s *Service) call(ctx context.Context, method string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	token, err := s.adminToken()
	if err != nil {
		return err
	}

	url := s.apiBase + "/twirp/livekit.RoomService/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s returned %d: %s", method, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
