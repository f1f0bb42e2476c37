package gitutil

import (
	"regexp"
	"strings"
)

var (
	shorthandOwnerPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	shorthandNamePattern  = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// IsShorthand reports whether s is a bare "owner/name" reference that should
// be expanded against the default hosting service. The owner segment accepts
// ASCII alphanumerics and '-'; the name segment additionally accepts '.' and
// '_'. Anything else, including a second '/', a scheme, or a leading colon,
// disqualifies the string.
func IsShorthand(s string) bool {
	owner, name, ok := strings.Cut(s, "/")
	if !ok {
		return false
	}
	return shorthandOwnerPattern.MatchString(owner) && shorthandNamePattern.MatchString(name)
}
