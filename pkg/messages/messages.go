package messages

import (
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
)

const (
	// MaxRequestSize is the largest request body accepted by the score service
	MaxRequestSize = 4 << 20
)

// Message types of the live high score feed
const (
	MessageTypeServerHello     = "hello"
	MessageTypeServerHighScore = "shs"
)

// Message is a single message of the live high score feed
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewMessage marshals payload into a message of the given type
func NewMessage(messageType string, payload interface{}) (*Message, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %v", messageType, err)
	}
	return &Message{
		Type:    messageType,
		Payload: b,
	}, nil
}

// ServerHello is sent once to every new subscriber of the live feed
type ServerHello struct {
	HighScores []*models.HighScore `json:"highScores"`
}

// ServerHighScore announces an accepted high score
type ServerHighScore struct {
	Rank      int               `json:"rank"`
	HighScore *models.HighScore `json:"highScore"`
}

// SubmitHighScoreRequest is the body of POST /highscores
type SubmitHighScoreRequest struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Level int    `json:"level"`
	Lines int    `json:"lines"`
	// Replay is an encoded recording of the game, base64 in JSON
	Replay []byte `json:"replay,omitempty"`
}

// SubmitHighScoreResponse is the result of POST /highscores
type SubmitHighScoreResponse struct {
	Accepted  bool              `json:"accepted"`
	Rank      int               `json:"rank"`
	HighScore *models.HighScore `json:"highScore,omitempty"`
	// Reason explains why a score was not accepted
	Reason string `json:"reason,omitempty"`
}
