package plotly

import (
	"fmt"
)

// DecodeError reports a structurally invalid interchange document.
// Optional fields never produce one, they fall back to defaults.
type DecodeError struct {
	Message string
}

func (e DecodeError) Error() string {
	return e.Message
}

func decodeError(format string, args ...any) error {
	return DecodeError{
		Message: fmt.Sprintf(format, args...),
	}
}

// LengthError reports paired trace arrays of different sizes.
type LengthError struct {
	Field string
	Want  int
	Got   int
}

func (e LengthError) Error() string {
	return fmt.Sprintf("trace array %s has %d values, want %d", e.Field, e.Got, e.Want)
}
