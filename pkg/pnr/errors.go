package pnr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput means no non-blank line survived splitting
	ErrEmptyInput = errors.New("PNR data is empty")
	// ErrInvalidNameFormat means the passenger name line has no "/" separator
	ErrInvalidNameFormat = errors.New("invalid passenger name format")
	// ErrUnknownStrategy is returned by StrategyByName
	ErrUnknownStrategy = errors.New("unknown segment strategy")
)

// UnexpectedError wraps any failure that is not caused by the shape of the input
type UnexpectedError struct {
	Op  string
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err is a request-level input validation failure
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrInvalidNameFormat)
}
