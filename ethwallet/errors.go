package ethwallet

import "fmt"

// APIError is returned when the server responds with a non-2xx status.
// ID and Message are filled from the response body when the server sends
// a structured error.
type APIError struct {
	StatusCode int
	ID         string `json:"id"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ethwallet: api error %d (%s): %s", e.StatusCode, e.ID, e.Message)
	}

	return fmt.Sprintf("ethwallet: api error %d", e.StatusCode)
}
