package api

import "fmt"

// Error is the one failure type the client surfaces. The backend sends
// {"detail": "..."} on errors; Message carries that text, or a generic
// fallback when the body was absent or unparseable. Callers distinguish
// failures by message only — the source client behaved the same way.
type Error struct {
	Status  int    // HTTP status, 0 for transport failures
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// genericMessage is used when the server gave no usable detail.
const genericMessage = "request failed"

// errDetail mirrors the backend's error body.
type errDetail struct {
	Detail string `json:"detail"`
}
