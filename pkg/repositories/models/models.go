package models

// HighScore is a single entry of the high score list.
type HighScore struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Level     int    `json:"level"`
	Lines     int    `json:"lines"`
	CreatedAt int64  `json:"created_at"`
	// ReplayID identifies the recording that produced the score, if any
	ReplayID string `json:"replay_id,omitempty"`
	// Replay is the encoded recording, only loaded by GetHighScore
	Replay []byte `json:"-"`
}
