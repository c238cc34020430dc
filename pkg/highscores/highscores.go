package highscores

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cbodonnell/blockdrop/pkg/game/constants"
	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
)

const (
	// MaxNameLength is the longest name accepted on the list
	MaxNameLength = 16
	// DefaultName replaces an empty name entered on the client
	DefaultName = "Anonymous"
)

// Reasons reported by ErrInvalidEntry
const (
	ReasonEmptyName   = "name is empty"
	ReasonLongName    = "name is too long"
	ReasonInvalidName = "name may only contain letters, digits and spaces"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// Lowest returns the score an entry has to beat to join the list.
// It is 0 while the list has room.
func Lowest(list []*models.HighScore) int {
	if len(list) < constants.NoOfHighScores {
		return 0
	}
	return list[constants.NoOfHighScores-1].Score
}

// Qualifies returns true when score beats the lowest score of the list.
func Qualifies(list []*models.HighScore, score int) bool {
	return score > Lowest(list)
}

// Insert adds the entry to a copy of the sorted list, keeping at most
// NoOfHighScores entries. It returns the new list and the 1-based rank of the
// entry, 0 when it did not make the list. Entries with equal scores keep
// their order, so a new entry ranks below older ones with the same score.
func Insert(list []*models.HighScore, entry *models.HighScore) ([]*models.HighScore, int) {
	updated := make([]*models.HighScore, 0, len(list)+1)
	updated = append(updated, list...)
	updated = append(updated, entry)
	sort.SliceStable(updated, func(i, j int) bool {
		return updated[i].Score > updated[j].Score
	})
	if len(updated) > constants.NoOfHighScores {
		updated = updated[:constants.NoOfHighScores]
	}

	for i, hs := range updated {
		if hs == entry {
			return updated, i + 1
		}
	}
	return updated, 0
}

// NormalizeName trims the name and checks it only holds letters, digits and spaces.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ErrInvalidEntry{Reason: ReasonEmptyName}
	}
	if len(name) > MaxNameLength {
		return "", &ErrInvalidEntry{Reason: ReasonLongName}
	}
	if !namePattern.MatchString(name) {
		return "", &ErrInvalidEntry{Reason: ReasonInvalidName}
	}
	return name, nil
}

// Validate normalizes the name of the entry and checks its counters.
func Validate(entry *models.HighScore) error {
	name, err := NormalizeName(entry.Name)
	if err != nil {
		return err
	}
	if entry.Score < 0 || entry.Level < 0 || entry.Lines < 0 {
		return &ErrInvalidEntry{Reason: "negative score, level or lines"}
	}
	entry.Name = name
	return nil
}
