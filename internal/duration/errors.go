package duration

import (
	"fmt"
	"time"
)

// acceptedFormats is appended to parse failures so the user sees every
// grammar the resolver understands.
const acceptedFormats = "accepted formats: a duration string (__h__m__s), " +
	"an absolute datetime (YYYY-MM-DDTHH:MM), or a time of day (THH:MM)"

// ParseError reports an input string that matched none of the recognized
// grammars, or matched one malformed.
type ParseError struct {
	Input  string
	Reason string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid duration %q: %s\n\n%s", e.Input, e.Reason, acceptedFormats)
}

// PastInstantError reports an absolute date or datetime that is not
// strictly in the future. Past instants are rejected, never rolled forward.
type PastInstantError struct {
	Input  string
	Target time.Time
}

// Error implements the error interface for PastInstantError.
func (e *PastInstantError) Error() string {
	return fmt.Sprintf("target %q (%s) is not in the future", e.Input, e.Target.Format("2006-01-02 15:04:05"))
}
