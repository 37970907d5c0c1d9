package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Storage sentinels.
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrDatabaseQuery = errors.New("database query failed")
)

// NewNotFound is the 404 for a missing record: "project not found",
// "blog post not found", and so on.
func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewAlreadyExists is the 409 for a uniqueness violation, named after the
// conflicting thing ("project slug already exists").
func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
	}
}

// NewDatabaseError wraps a failed storage operation. The operation and entity
// name the failure in the response; the cause only reaches the log.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    fmt.Sprintf("failed to %s (%s)", operation, entity),
		Cause:      cause,
	}
}
