package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound means a referenced group, post or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthor means the acting user is not the author of the post.
	ErrNotAuthor = errors.New("not the author")
	// ErrInvalidLogin covers both unknown username and wrong password.
	ErrInvalidLogin = errors.New("invalid username or password")
)

// ValidationError carries per-field messages so handlers can re-render the
// submitted form. The record is never created or modified when one is
// returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
