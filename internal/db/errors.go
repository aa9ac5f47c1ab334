package db

import "fmt"

// ConnectivityError means storage could not be reached or refused an
// operation. Callers treat it as fatal at startup and as 503 afterwards.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// Wrap returns err as a ConnectivityError for op, or nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ConnectivityError{Op: op, Err: err}
}
