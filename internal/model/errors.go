package model

import (
	"errors"
	"fmt"
)

// Sentinel errors. The typed errors below unwrap to these so callers can
// match with errors.Is.
var (
	ErrInvalidRange = errors.New("score out of range")
	ErrNotFound     = errors.New("initiative not found")
	ErrInvalidName  = errors.New("invalid name")
)

// RangeError reports a value or complexity outside [MinScore, MaxScore].
type RangeError struct {
	Field string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d,%d]", e.Field, e.Value, MinScore, MaxScore)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// NotFoundError reports an update addressed to an id that is not in the
// collection. Callers usually treat it as a stale reference.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("initiative %q not found", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NameError reports a name that is empty after trimming.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name %q is empty", e.Name)
}

func (e *NameError) Unwrap() error { return ErrInvalidName }
