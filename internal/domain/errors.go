package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyInClan     = errors.New("already in clan")
	ErrTooEarly          = errors.New("too early")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrConflict          = errors.New("already exists")
)

// TooEarlyError is returned when a cooldown is still running.
type TooEarlyError struct {
	NextAvailable time.Time
}

func (e *TooEarlyError) Error() string {
	return fmt.Sprintf("too early, next available at %s", e.NextAvailable.UTC().Format(time.RFC3339))
}

func (e *TooEarlyError) Is(target error) bool {
	return target == ErrTooEarly
}

// NextAvailable extracts the retry time from a cooldown error.
func NextAvailable(err error) (time.Time, bool) {
	var tooEarly *TooEarlyError
	if errors.As(err, &tooEarly) {
		return tooEarly.NextAvailable, true
	}
	return time.Time{}, false
}
