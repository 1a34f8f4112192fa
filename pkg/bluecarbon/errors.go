package bluecarbon

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user abandoned an operation (quit during a
	// pending ledger submission, etc.). This is normal flow control, not an
	// infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")
)

// InfrastructureError represents a platform-level failure (config unreadable,
// message catalog corrupt, icon missing). These errors are typically fatal at
// startup.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_config", "rasterize_icon")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bluecarbon: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("bluecarbon: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation, including a
// cancelled context.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}
