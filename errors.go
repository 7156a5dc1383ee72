package clustergo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when the configured cluster count is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidIterations is returned when the configured iteration cap is
	// not positive.
	ErrInvalidIterations = errors.New("iteration count must be positive")
)

// ErrInvalidDamping indicates a damping factor outside [0,1).
type ErrInvalidDamping struct {
	Damping float64
}

func (e *ErrInvalidDamping) Error() string {
	return fmt.Sprintf("damping factor out of range [0,1): %v", e.Damping)
}
