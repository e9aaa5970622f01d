package zipinstaller

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user cancelled an operation (pressed back, etc.).
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrQuit indicates the user closed the window.
	ErrQuit = errors.New("window closed")
)

// InfrastructureError represents a UI-level error that indicates something
// is wrong with the installer itself (rendering failed, SDL crashed, font
// missing, etc.). These errors are fatal.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("zipinstaller: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("zipinstaller: %s", e.Op)
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

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsQuit checks if an error indicates the window was closed.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
