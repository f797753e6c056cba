package sem

import (
	"errors"

	"github.com/negips/nek1093/utils"
)

var (
	// ErrInvalidOrder rejects a polynomial order a node family cannot
	// support, before any operator is built.
	ErrInvalidOrder = errors.New("invalid polynomial order")

	// ErrConvergenceFailure reports that root finding for the node
	// positions did not reach tolerance within the iteration cap. It is
	// fatal: an unconverged node set corrupts every downstream operator,
	// so it is never retried with a relaxed tolerance.
	ErrConvergenceFailure = errors.New("quadrature node iteration did not converge")

	// ErrDimensionMismatch aliases the utils sentinel so callers can match
	// per-call shape violations with errors.Is at either level.
	ErrDimensionMismatch = utils.ErrDimensionMismatch
)
