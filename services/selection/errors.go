package selection

import "fmt"

type SelectionError struct {
	Code    string
	Message string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrNoActiveSelection is returned for an extend call with no anchor.
	ErrNoActiveSelection = &SelectionError{
		Code:    "noActiveSelection",
		Message: "no selection in progress",
	}

	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = &SelectionError{
		Code:    "sessionNotFound",
		Message: "selection session not found or expired",
	}
)
