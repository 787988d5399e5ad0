package selection

import "regexp"

// Colors cross the engine boundary as strings, so the one format rule is
// enforced strictly: exactly six hex digits with a leading hash. Three-digit
// shorthand and eight-digit alpha forms are rejected on purpose, since every
// consumer assumes it can slice rr/gg/bb out of a fixed-width string.
var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether s is a 6-digit #rrggbb color, case-insensitive.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
