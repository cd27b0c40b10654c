package fs

import (
	"os"
	"strings"
)

// Style is a path separator convention. Every Path is normalized to exactly
// one style at construction time; no mixed separators survive.
type Style int

const (
	// Posix uses forward slashes and a single "/" root.
	Posix Style = iota
	// Windows uses backslashes, with "\" and volume roots like "C:\".
	Windows
)

// NativeStyle returns the style of the build target.
func NativeStyle() Style {
	if os.PathSeparator == '\\' {
		return Windows
	}
	return Posix
}

// Separator returns the separator character of the style.
func (s Style) Separator() byte {
	if s == Windows {
		return '\\'
	}
	return '/'
}

func (s Style) foreign() byte {
	if s == Windows {
		return '/'
	}
	return '\\'
}

// Normalize rewrites raw to use only the style's separator and strips
// trailing separators unless the result is a root. It never fails; a
// malformed input simply yields a path whose probes report false.
// Normalization is idempotent.
func (s Style) Normalize(raw string) string {
	p := strings.ReplaceAll(raw, string(s.foreign()), string(s.Separator()))
	for len(p) > 1 && p[len(p)-1] == s.Separator() && !s.IsRoot(p) {
		p = p[:len(p)-1]
	}
	return p
}

// IsRoot reports whether p is a topmost path of the style: "/" for Posix,
// "\" or a volume root like "C:\" for Windows.
func (s Style) IsRoot(p string) bool {
	if s == Windows {
		if p == `\` {
			return true
		}
		return len(p) == 3 && isVolume(p[0]) && p[1] == ':' && p[2] == '\\'
	}
	return p == "/"
}

func isVolume(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
