package httpx

import "fmt"

// StatusError is returned for terminal HTTP status codes (4xx other than
// 429). It is never retried.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.Code, e.URL)
}

// RequestError is surfaced after the final attempt of a retryable request
// fails. It carries the last underlying cause and the number of attempts
// that were made.
type RequestError struct {
	Attempts int
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("all %d attempts failed: %v", e.Attempts, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
