package ui

import "fmt"

// ActionableError is an error whose message is shown to the player.
type ActionableError struct {
	Message string
	Err     error
}

func (e *ActionableError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ActionableError) Unwrap() error {
	return e.Err
}
