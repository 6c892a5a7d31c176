package willyweather

import (
	"errors"
	"fmt"
)

// ErrUnexpectedShape marks a response that parsed as JSON but does not have
// any of the shapes the provider documents.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// StatusError is returned when the provider answers with a non-success
// status code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API returned status %d", e.Code)
	}
	return fmt.Sprintf("API returned status %d: %s", e.Code, e.Body)
}
