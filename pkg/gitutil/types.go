package gitutil

import "fmt"

// Default hosting service used when expanding shorthand references.
const (
	// DefaultHost is the hosting service shorthand references resolve against.
	DefaultHost = "github.com"

	// ServiceUser is the anonymous service account conventionally used for
	// SSH transport. A credential equal to this user carries no identity and
	// is elided from derived paths.
	ServiceUser = "git"
)

// ParseError is returned when a locator matches none of the supported
// repository address formats.
type ParseError struct {
	Locator string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gitutil: invalid repository locator: %q", e.Locator)
}
