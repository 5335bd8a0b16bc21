package device

import (
	"errors"
	"fmt"
)

// Error kinds returned by the Service. Callers match them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("device in use")
	ErrStorage         = errors.New("storage failure")
)

const resourceName = "Device"

func notFound(field string, value any) error {
	return fmt.Errorf("%w: %s not found with the given input data %s: '%v'", ErrNotFound, resourceName, field, value)
}

func inUse(field string, value any) error {
	return fmt.Errorf("%w: %s with the given input %s: '%v', is in use, and cannot be modified", ErrConflict, resourceName, field, value)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// StorageError reports a failed store call. Its message leaves out the
// underlying cause, which stays reachable through Err.
type StorageError struct {
	Action string
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%v: failed to %s %s", ErrStorage, e.Action, resourceName)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

func storageFailure(action string, cause error) error {
	return &StorageError{Action: action, Err: cause}
}
