package extractor

import (
	"errors"
	"fmt"
)

// Reason classifies why a view's extraction failed
type Reason string

const (
	ReasonInvalidIdentifier Reason = "invalid_identifier"
	ReasonNotAllowed        Reason = "not_allowed"
	ReasonQuery             Reason = "query"
	ReasonScan              Reason = "scan"
	ReasonWrite             Reason = "write"
)

// ExtractError represents a failure confined to one view's extraction.
// The run carries on with the next view; the error stays attached to the
// view's result.
type ExtractError struct {
	Reason Reason
	View   string
	Cause  error
}

// Error implements the error interface
func (e *ExtractError) Error() string {
	if e == nil {
		return "unknown extraction error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Reason, e.View, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Reason, e.View)
}

// Unwrap returns the underlying error
func (e *ExtractError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewExtractError creates an ExtractError for the given view and reason
func NewExtractError(reason Reason, view string, cause error) *ExtractError {
	return &ExtractError{
		Reason: reason,
		View:   view,
		Cause:  cause,
	}
}

// GetReason returns the reason of an extraction failure, or an empty reason
// for errors that did not come from the extractor.
func GetReason(err error) Reason {
	var extractErr *ExtractError
	if errors.As(err, &extractErr) {
		return extractErr.Reason
	}
	return ""
}
