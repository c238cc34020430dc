package repositories

import "fmt"

type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "not found"
}

func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}

// ErrDuplicate is returned when a high score reuses the replay of a saved one.
type ErrDuplicate struct {
	ReplayID string
}

func (e *ErrDuplicate) Error() string {
	return fmt.Sprintf("replay %s was already submitted", e.ReplayID)
}

func IsDuplicate(err error) bool {
	_, ok := err.(*ErrDuplicate)
	return ok
}
