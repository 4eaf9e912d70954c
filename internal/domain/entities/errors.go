package entities

import (
	"errors"
	"fmt"
)

// ParseError reports content that could not be recognized as the declared
// format at all. A document that simply contains none of the recognized
// fields is valid and yields an empty field list, not a ParseError.
type ParseError struct {
	Path   string
	Format string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q as %s: %s", e.Path, e.Format, e.Reason)
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
