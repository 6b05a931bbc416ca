package gateway

import "fmt"

// Error is a non-2xx reply from the remote gateway. Message carries the
// backend's own "message" field when it sent one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("gateway returned status %d", e.StatusCode)
}

// UserMessage returns the text fit for showing on a screen: the backend's
// message when present, otherwise the supplied fallback.
func UserMessage(err error, fallback string) string {
	if ge, ok := err.(*Error); ok && ge.Message != "" {
		return ge.Message
	}
	return fallback
}
