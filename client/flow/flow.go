package flow

import (
	"fmt"
	"net/http"

	"github.com/cbodonnell/blockdrop/client/network"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/cbodonnell/blockdrop/pkg/highscores"
	"github.com/cbodonnell/blockdrop/pkg/messages"
	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
)

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModeNameEntry
	GameModeOver
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModeNameEntry:
		return "Name Entry"
	case GameModeOver:
		return "Over"
	}
	return "Unknown"
}

// ResolveName turns the text typed on the name entry screen into the name
// saved with a high score. An empty entry saves as the default name.
func ResolveName(input string) (string, error) {
	name, err := highscores.NormalizeName(input)
	if err == nil {
		return name, nil
	}
	if invalid, ok := err.(*highscores.ErrInvalidEntry); ok && invalid.Reason == highscores.ReasonEmptyName {
		return highscores.DefaultName, nil
	}
	return "", err
}

// ShouldEnterName returns true when the score makes the local list or, when
// a score service is configured, the online one.
func ShouldEnterName(score int, local []*models.HighScore, online []*models.HighScore, connected bool) bool {
	if score <= 0 {
		return false
	}
	if highscores.Qualifies(local, score) {
		return true
	}
	return connected && highscores.Qualifies(online, score)
}

// ApplyLiveMessage updates the online high score list with a message from
// the live feed. Unknown messages leave the list untouched.
func ApplyLiveMessage(list []*models.HighScore, msg interface{}) []*models.HighScore {
	switch m := msg.(type) {
	case *messages.ServerHello:
		return m.HighScores
	case *messages.ServerHighScore:
		if m.HighScore == nil {
			return list
		}
		for _, hs := range list {
			if hs.ID == m.HighScore.ID {
				return list
			}
		}
		updated, _ := highscores.Insert(list, m.HighScore)
		return updated
	}
	return list
}

// ShareLine is the summary of a finished game copied to the clipboard.
func ShareLine(summary types.Summary, replayID string) string {
	line := fmt.Sprintf("I scored %d points in blockdrop, reaching level %d after %d pieces!",
		summary.Account.Score, summary.Account.Level, summary.Pieces)
	if replayID != "" {
		line += fmt.Sprintf(" Replay: %s", replayID)
	}
	return line
}

// RemoteErrorLine describes why the score service did not take a score.
func RemoteErrorLine(err error) string {
	if !network.IsUnexpectedStatus(err) {
		return "score service unavailable"
	}
	if err.(*network.ErrUnexpectedStatus).StatusCode == http.StatusConflict {
		return "replay already submitted"
	}
	return "score rejected by the score service"
}
