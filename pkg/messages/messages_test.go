package messages

import (
	"encoding/json"
	"testing"

	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage(MessageTypeServerHighScore, &ServerHighScore{
		Rank:      2,
		HighScore: &models.HighScore{ID: 5, Name: "alice", Score: 900},
	})
	require.NoError(t, err)

	b, err := json.Marshal(msg)
	require.NoError(t, err)

	decoded := &Message{}
	require.NoError(t, json.Unmarshal(b, decoded))
	assert.Equal(t, MessageTypeServerHighScore, decoded.Type)

	payload := &ServerHighScore{}
	require.NoError(t, json.Unmarshal(decoded.Payload, payload))
	assert.Equal(t, 2, payload.Rank)
	assert.Equal(t, "alice", payload.HighScore.Name)
	assert.Equal(t, 900, payload.HighScore.Score)
}

func TestNewMessage_unmarshalable(t *testing.T) {
	_, err := NewMessage(MessageTypeServerHello, make(chan int))
	assert.Error(t, err)
}
