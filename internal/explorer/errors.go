package explorer

import (
	"errors"
	"fmt"
)

// ErrPostNotFound is reported when a detail fetch succeeds but the
// payload carries no post.
var ErrPostNotFound = errors.New("post not found")

// FetchError wraps an exhausted-retry or terminal upstream failure with
// the gateway operation that triggered it.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
