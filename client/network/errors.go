package network

import "fmt"

// ErrConnectionClosedByServer is returned when the live feed is closed by the score service
type ErrConnectionClosedByServer struct{}

func (e *ErrConnectionClosedByServer) Error() string {
	return "connection closed by server"
}

// ErrUnexpectedStatus is returned when the score service answers with an error status
type ErrUnexpectedStatus struct {
	StatusCode int
	Message    string
}

func (e *ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("score service responded with %d: %s", e.StatusCode, e.Message)
}

func IsUnexpectedStatus(err error) bool {
	_, ok := err.(*ErrUnexpectedStatus)
	return ok
}
