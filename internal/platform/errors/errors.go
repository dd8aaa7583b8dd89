package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrEmptySampleSet = errors.New("sample set is empty")
	ErrNotANumber     = errors.New("not a number")
	ErrNegativeSample = errors.New("sample must not be negative")
	ErrInputClosed    = errors.New("input closed before all days were entered")
)
