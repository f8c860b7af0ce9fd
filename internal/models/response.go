package models

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// UserStats aggregates a user's completed interviews.
type UserStats struct {
	TotalInterviews int     `json:"totalInterviews"`
	AverageScore    float64 `json:"averageScore"`
	ConfidenceLevel float64 `json:"confidenceLevel"`
	PracticeTime    int     `json:"practiceTime"` // hours
}

// TokenResponse is the body of POST /api/interviews/{id}/token.
type TokenResponse struct {
	Token    string `json:"token"`
	WsURL    string `json:"wsUrl"`
	RoomName string `json:"roomName"`
}

// DeleteResponse is the body of DELETE /api/interviews/{id}.
type DeleteResponse struct {
	Success bool `json:"success"`
}
