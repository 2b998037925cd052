// Package apperrors defines the error kinds shared by the report, schedule and snapshot
// features. Callers classify failures with errors.Is against the sentinels.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrEmptyResult = errors.New("empty result")
	ErrStore       = errors.New("store error")
)

type kindError struct {
	kind error
	msg  string
	err  error
}

func (e *kindError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

func (e *kindError) Unwrap() error {
	return e.err
}

func NotFound(format string, args ...any) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return &kindError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func EmptyResult(format string, args ...any) error {
	return &kindError{kind: ErrEmptyResult, msg: fmt.Sprintf(format, args...)}
}

// Store wraps a persistence failure. A nil err yields nil so call sites can wrap
// driver results unconditionally.
func Store(err error, op string) error {
	if err == nil {
		return nil
	}
	var ke *kindError
	if errors.As(err, &ke) {
		return err
	}
	return &kindError{kind: ErrStore, msg: op, err: err}
}

// Status maps an error kind to the HTTP status the API replies with.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrEmptyResult):
		return fiber.StatusNotFound
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
