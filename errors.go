package minipng

import (
	"errors"
	"fmt"
)

// Reasons a file is rejected. Every error returned by this package wraps
// one of these in a *MalformedFileError.
var (
	ErrBadMagic               = errors.New("minipng: bad magic")
	ErrTruncatedInput         = errors.New("minipng: truncated input")
	ErrMalformedHeader        = errors.New("minipng: malformed header")
	ErrDuplicateHeader        = errors.New("minipng: duplicate header")
	ErrMissingHeader          = errors.New("minipng: missing header")
	ErrInvalidPixelType       = errors.New("minipng: invalid pixel type")
	ErrMalformedPalette       = errors.New("minipng: malformed palette")
	ErrDuplicatePalette       = errors.New("minipng: duplicate palette")
	ErrMissingPalette         = errors.New("minipng: missing palette")
	ErrInsufficientData       = errors.New("minipng: insufficient data")
	ErrPaletteIndexOutOfRange = errors.New("minipng: palette index out of range")
)

// MalformedFileError is the single error type surfaced for a bad file. The
// Reason is one of the Err* values. Offset is the position in the input the
// problem was found at, or -1 when it does not relate to a position.
type MalformedFileError struct {
	Reason error
	Offset int
	Detail string
}

func malformed(reason error, offset int, format string, a ...interface{}) error {
	return &MalformedFileError{
		Reason: reason,
		Offset: offset,
		Detail: fmt.Sprintf(format, a...),
	}
}

func (e *MalformedFileError) Error() string {
	s := e.Reason.Error()
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	if e.Offset >= 0 {
		s += fmt.Sprintf(" (offset %d)", e.Offset)
	}
	return s
}

// Unwrap returns the reason so errors.Is can match the Err* values.
func (e *MalformedFileError) Unwrap() error {
	return e.Reason
}
