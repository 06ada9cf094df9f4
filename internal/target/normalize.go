package target

import "strings"

// Normalize canonicalizes a raw user-supplied directory string:
// surrounding whitespace is trimmed, trailing slashes are removed, and
// leading "./" current-directory markers are stripped.
//
// Normalize is a pure, total function: every input maps to some result,
// including the empty string (which callers treat as "use the default
// directory"). It is idempotent, so downstream code never re-normalizes.
// A bare "." is preserved as-is — it is the whole path, not a leading
// segment, and means "scaffold into the working directory".
func Normalize(raw string) string {
	dir := strings.TrimSpace(raw)

	for strings.HasSuffix(dir, "/") {
		dir = strings.TrimSuffix(dir, "/")
	}

	// Strip "./" markers repeatedly so that inputs like "././app"
	// normalize in a single pass, keeping the function idempotent.
	for strings.HasPrefix(dir, "./") {
		dir = strings.TrimPrefix(dir, "./")
	}

	return dir
}
