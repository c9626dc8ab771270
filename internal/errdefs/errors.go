package errdefs

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrDuplicateAssignment = errors.New("group already assigned to evaluation")
	ErrInvalidInvariant    = errors.New("invalid invariant")
	ErrDataIntegrity       = errors.New("data integrity violation")
	ErrValidation          = errors.New("validation error")
	ErrUnauthenticated     = errors.New("unauthenticated")
)
