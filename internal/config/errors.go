package config

import (
	"errors"
	"fmt"
)

// LoadReason classifies why configuration could not be loaded.
type LoadReason string

const (
	ReasonNotFound   LoadReason = "not_found"
	ReasonUnreadable LoadReason = "unreadable"
	ReasonMalformed  LoadReason = "malformed"
	ReasonInvalid    LoadReason = "invalid"
)

// LoadError reports a configuration file that could not be turned into a
// usable Config. Callers receive it instead of a silently-unset configuration
// so the failure surfaces at load time, not at first key access.
type LoadError struct {
	Reason LoadReason
	Path   string
	Cause  error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if e == nil {
		return "unknown configuration error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("configuration %s (%s): %v", e.Reason, e.Path, e.Cause)
	}
	return fmt.Sprintf("configuration %s (%s)", e.Reason, e.Path)
}

// Unwrap returns the underlying error
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewLoadError creates a LoadError for the given file and reason.
func NewLoadError(reason LoadReason, path string, cause error) *LoadError {
	return &LoadError{
		Reason: reason,
		Path:   path,
		Cause:  cause,
	}
}

// GetLoadReason returns the reason of a load failure, or an empty reason for
// errors that did not come from the loader.
func GetLoadReason(err error) LoadReason {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Reason
	}
	return ""
}

// IsNotFound checks whether an error means the settings file is absent.
func IsNotFound(err error) bool {
	return GetLoadReason(err) == ReasonNotFound
}

// IsMalformed checks whether an error means the settings file did not parse.
func IsMalformed(err error) bool {
	return GetLoadReason(err) == ReasonMalformed
}
