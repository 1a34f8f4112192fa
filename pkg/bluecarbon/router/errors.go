package router

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry and navigation failures.
var (
	// ErrDuplicateScreen is returned when a screen is registered twice in the same registry.
	ErrDuplicateScreen = errors.New("screen already registered")

	// ErrUnknownScreen is returned when resolving a screen that was never registered.
	ErrUnknownScreen = errors.New("screen not registered")

	// ErrUnreachableScreen is returned when the active role may not navigate to a screen.
	// This is a normal runtime condition; callers redirect instead of failing.
	ErrUnreachableScreen = errors.New("screen not reachable for role")

	// ErrRegistrySealed is returned when registering after the composition phase ended.
	ErrRegistrySealed = errors.New("registry sealed")
)

// ScreenError carries the operation and the screen (or registry key) that failed.
type ScreenError struct {
	Op     string // Operation that failed (e.g., "register", "resolve", "navigate")
	Screen string // Name of the screen or registry key involved
	Err    error  // Underlying sentinel
}

func (e *ScreenError) Error() string {
	if e.Screen == "" {
		return fmt.Sprintf("router: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("router: %s %s: %v", e.Op, e.Screen, e.Err)
}

func (e *ScreenError) Unwrap() error {
	return e.Err
}

func screenError(op string, key any, err error) *ScreenError {
	return &ScreenError{Op: op, Screen: keyName(key), Err: err}
}

func keyName(key any) string {
	if s, ok := key.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", key)
}

// IsUnreachable checks if an error is a rejected navigation.
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrUnreachableScreen)
}

// IsUnknown checks if an error refers to an unregistered screen.
func IsUnknown(err error) bool {
	return errors.Is(err, ErrUnknownScreen)
}
