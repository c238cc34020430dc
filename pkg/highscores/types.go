package highscores

import "fmt"

type ErrNotQualified struct {
	Score  int
	Lowest int
}

func (e *ErrNotQualified) Error() string {
	return fmt.Sprintf("score %d does not beat the lowest high score %d", e.Score, e.Lowest)
}

func IsNotQualified(err error) bool {
	_, ok := err.(*ErrNotQualified)
	return ok
}

type ErrInvalidEntry struct {
	Reason string
}

func (e *ErrInvalidEntry) Error() string {
	return fmt.Sprintf("invalid high score: %s", e.Reason)
}

func IsInvalidEntry(err error) bool {
	_, ok := err.(*ErrInvalidEntry)
	return ok
}
