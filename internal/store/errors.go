package store

import "fmt"

// Error describes a failed persistence operation.
type Error struct {
	Op     string
	QuizID string
	Err    error
}

func (e *Error) Error() string {
	if e.QuizID == "" {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s %s: %v", e.Op, e.QuizID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func opError(op, quizID string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, QuizID: quizID, Err: err}
}
