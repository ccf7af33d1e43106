package puzzle

import (
	"errors"
	"fmt"
)

// ErrMalformedLevel matches every *MalformedLevelError via errors.Is.
var ErrMalformedLevel = errors.New("malformed level")

// Malformed level codes.
const (
	CodeEmptyLevel      = "EMPTY_LEVEL"
	CodeRaggedRows      = "RAGGED_ROWS"
	CodeNoPlayer        = "NO_PLAYER"
	CodeDuplicatePlayer = "DUPLICATE_PLAYER"
	CodeUnknownSymbol   = "UNKNOWN_SYMBOL"
)

// MalformedLevelError describes why a level text could not be loaded.
// Row and Col point at the offending cell, or are -1 when not applicable.
type MalformedLevelError struct {
	Code    string
	Row     int
	Col     int
	Message string
}

func (e *MalformedLevelError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is lets errors.Is(err, ErrMalformedLevel) match.
func (e *MalformedLevelError) Is(target error) bool {
	return target == ErrMalformedLevel
}

func malformed(code string, row, col int, format string, args ...any) *MalformedLevelError {
	return &MalformedLevelError{
		Code:    code,
		Row:     row,
		Col:     col,
		Message: fmt.Sprintf(format, args...),
	}
}
