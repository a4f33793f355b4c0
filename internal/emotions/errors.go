package emotions

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorUnknownEmotion       ErrorCode = "unknown_emotion"
	ErrorInvalidArgument      ErrorCode = "invalid_argument"
	ErrorEmbeddingUnavailable ErrorCode = "embedding_unavailable"
	ErrorStorageUnavailable   ErrorCode = "storage_unavailable"
)

// Error is the engine error type. Every failing engine operation
// returns one, so callers can branch on Code without string matching.
type Error struct {
	Code      ErrorCode
	Operation string
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	if e == nil {
		return "emotions engine error"
	}
	if e.Message != "" {
		return fmt.Sprintf("emotions %s failed (code=%s): %s", e.Operation, e.Code, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("emotions %s failed (code=%s): %v", e.Operation, e.Code, e.Cause)
	}
	return fmt.Sprintf("emotions %s failed (code=%s)", e.Operation, e.Code)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// CodeOf extracts the engine error code, or "" for foreign errors.
func CodeOf(err error) ErrorCode {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Code
	}
	return ""
}

func errUnknownEmotion(op, emotion string) error {
	return &Error{
		Code:      ErrorUnknownEmotion,
		Operation: op,
		Message:   fmt.Sprintf("unknown emotion: %s", emotion),
	}
}

func errInvalidArgument(op, msg string) error {
	return &Error{
		Code:      ErrorInvalidArgument,
		Operation: op,
		Message:   msg,
	}
}

func errEmbedding(op string, cause error) error {
	return &Error{
		Code:      ErrorEmbeddingUnavailable,
		Operation: op,
		Cause:     cause,
	}
}

func errStorage(op string, cause error) error {
	return &Error{
		Code:      ErrorStorageUnavailable,
		Operation: op,
		Cause:     cause,
	}
}
