package repository

import (
	"errors"
	"fmt"
)

// TransportError means the request never produced a response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a response outside the 2xx range.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

// Rejection is a 2xx response whose body carries a message instead of
// confirming the write.
type Rejection struct {
	Op      string
	Message string
}

func (e *Rejection) Error() string {
	return fmt.Sprintf("%s: rejected: %s", e.Op, e.Message)
}

// RejectionMessage returns the API message when err is a Rejection.
func RejectionMessage(err error) (string, bool) {
	var rj *Rejection
	if errors.As(err, &rj) {
		return rj.Message, true
	}
	return "", false
}
