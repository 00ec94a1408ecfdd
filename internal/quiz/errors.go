package quiz

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Catalog.Load for an unknown slug.
var ErrNotFound = errors.New("quiz not found")

// ErrInvalidQuiz indicates a quiz document failed schema or structural
// validation.
type ErrInvalidQuiz struct {
	Source string
	Err    error
}

func (e *ErrInvalidQuiz) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid quiz: %v", e.Err)
	}
	return fmt.Sprintf("invalid quiz %s: %v", e.Source, e.Err)
}

func (e *ErrInvalidQuiz) Unwrap() error { return e.Err }
