package hyperloglog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrecision is matched by every *PrecisionError.
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrOverflow is returned when a register count does not fit in an int.
	ErrOverflow = errors.New("register count overflows int")
	// ErrNilHash is returned when a sketch is built without a hash function.
	ErrNilHash = errors.New("hash function must not be nil")
)

// PrecisionError reports a precision outside [MinPrecision, MaxPrecision].
type PrecisionError struct {
	Value uint8
}

func (e *PrecisionError) Error() string {
	return fmt.Sprintf("precision has to be >= %d and <= %d (was %d)", MinPrecision, MaxPrecision, e.Value)
}

// Is makes errors.Is(err, ErrInvalidPrecision) hold.
func (e *PrecisionError) Is(target error) bool {
	return target == ErrInvalidPrecision
}
