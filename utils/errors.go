package utils

import "errors"

// ErrDimensionMismatch is returned when an operator or reduction is handed an
// array whose length does not match the operator shape. Callers receive it
// before any partial computation has been written.
var ErrDimensionMismatch = errors.New("dimension mismatch")
