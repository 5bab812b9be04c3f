package extractor

import "regexp"

// viewNamePattern admits bare or single-schema-qualified identifiers.
// View names are interpolated into SELECT statements, so nothing outside
// this shape may reach the query builder.
var viewNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ValidateViewName checks the shape of a requested view identifier
func ValidateViewName(view string) error {
	if !viewNamePattern.MatchString(view) {
		return NewExtractError(ReasonInvalidIdentifier, view, nil)
	}
	return nil
}

// Allowlist is the set of view names a run may touch
type Allowlist map[string]struct{}

// NewAllowlist builds an allow-list from the configured view names
func NewAllowlist(views []string) Allowlist {
	allowed := make(Allowlist, len(views))
	for _, view := range views {
		allowed[view] = struct{}{}
	}
	return allowed
}

// Contains reports whether a view may be extracted
func (a Allowlist) Contains(view string) bool {
	_, ok := a[view]
	return ok
}
