// Package gitutil resolves user-supplied repository references into clone
// URLs and deterministic relative destination paths.
//
// Three reference formats are accepted:
//   - scheme form:   scheme://[user@]host[:port]/path[.git]
//   - SCP-like form: [user@]host:[~user/]path[.git]
//   - shorthand:     owner/name (expanded against the default host)
//
// All functions are pure string transforms; nothing here touches the network
// or the filesystem.
package gitutil

import (
	"regexp"
	"strings"
)

var (
	schemeLocatorPattern = regexp.MustCompile(`^\w+://([^/]\S+?)(?:\.git)?$`)
	scpLocatorPattern    = regexp.MustCompile(`^([^/]+?):(~[^/]+?/)?(\S+)$`)
)

// Normalize turns a raw reference into a locator suitable for handing to
// git. Shorthand references expand to an HTTPS URL on the default host, or
// to an SCP-like SSH address when preferSSH is set. Anything that is not
// shorthand passes through untouched; malformed locators are rejected later
// by DerivePath, not here.
func Normalize(raw string, preferSSH bool) string {
	if !IsShorthand(raw) {
		return raw
	}
	if preferSSH {
		return ServiceUser + "@" + DefaultHost + ":" + raw
	}
	return "https://" + DefaultHost + "/" + raw
}

// DerivePath extracts the relative filesystem path a locator should be
// cloned under, mirroring host, optional port, optional credential, and
// repository path so clones never collide. A "git@" credential is treated
// as anonymous and dropped; any other credential is kept. Locators matching
// neither format return a *ParseError.
//
// The ".git" suffix is stripped for scheme-form locators but retained for
// SCP-like ones. The asymmetry is long-standing observed behaviour and is
// kept for compatibility.
func DerivePath(locator string) (string, error) {
	if strings.Contains(locator, "://") {
		m := schemeLocatorPattern.FindStringSubmatch(locator)
		if m == nil {
			return "", &ParseError{Locator: locator}
		}
		return strings.TrimPrefix(m[1], ServiceUser+"@"), nil
	}

	m := scpLocatorPattern.FindStringSubmatch(locator)
	if m == nil {
		return "", &ParseError{Locator: locator}
	}
	host := strings.TrimPrefix(m[1], ServiceUser+"@")

	// m[2] is the optional "~user/" segment, trailing slash included.
	return host + "/" + m[2] + m[3], nil
}
