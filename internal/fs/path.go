package fs

import "strings"

// Path is an immutable filesystem location, normalized to its host's
// separator convention at construction. It is a cheap value type; derived
// views (Parent, Filename, Extension) are pure string operations, while the
// probes (Exists, IsDir, IsFile) perform one host metadata lookup each.
type Path struct {
	host Host
	s    string
}

// NewPath constructs a Path on the local OS host. Construction never fails;
// a malformed string produces a Path whose probes report false.
func NewPath(raw string) Path {
	return NewPathOn(defaultHost, raw)
}

// NewPathOn constructs a Path on the given host, normalized to that host's
// style.
func NewPathOn(host Host, raw string) Path {
	return Path{host: host, s: host.Style().Normalize(raw)}
}

// String returns the normalized native-form path. Pure.
func (p Path) String() string { return p.s }

// Host returns the host the path resolves against.
func (p Path) Host() Host { return p.host }

// Exists reports whether the path resolves to any entry. Any host error,
// including "not found", maps to false.
func (p Path) Exists() bool {
	_, err := p.host.Stat(p.s)
	return err == nil
}

// IsDir reports whether the path resolves to a directory.
func (p Path) IsDir() bool {
	info, err := p.host.Stat(p.s)
	return err == nil && info.IsDir()
}

// IsFile reports whether the path resolves to a regular file.
func (p Path) IsFile() bool {
	info, err := p.host.Stat(p.s)
	return err == nil && info.Mode().IsRegular()
}

// Parent returns the path up to the last separator. Without any separator it
// returns the current-directory sentinel "." on every style; if the only
// separator belongs to the root, it returns the root itself. Pure.
func (p Path) Parent() Path {
	style := p.host.Style()
	pos := strings.LastIndexByte(p.s, style.Separator())
	if pos < 0 {
		return Path{host: p.host, s: "."}
	}
	if prefix := p.s[:pos+1]; style.IsRoot(prefix) {
		return Path{host: p.host, s: prefix}
	}
	return Path{host: p.host, s: p.s[:pos]}
}

// Filename returns the segment after the last separator, or the whole string
// if there is none. Pure.
func (p Path) Filename() string {
	pos := strings.LastIndexByte(p.s, p.host.Style().Separator())
	if pos < 0 {
		return p.s
	}
	return p.s[pos+1:]
}

// Extension returns the filename's suffix from the last dot inclusive, or ""
// if the filename contains no dot. Pure.
func (p Path) Extension() string {
	name := p.Filename()
	pos := strings.LastIndexByte(name, '.')
	if pos < 0 {
		return ""
	}
	return name[pos:]
}

// Join appends one segment to the path.
func (p Path) Join(name string) Path {
	sep := p.host.Style().Separator()
	s := p.s
	if len(s) > 0 && s[len(s)-1] != sep {
		s += string(sep)
	}
	return NewPathOn(p.host, s+name)
}

// Separator returns the native separator of the local OS.
func Separator() byte {
	return NativeStyle().Separator()
}

// TempDirectory resolves the temp directory of the local OS.
func TempDirectory() (Path, error) {
	return TempDirectoryOn(defaultHost)
}

// TempDirectoryOn resolves the temp directory of the given host.
func TempDirectoryOn(host Host) (Path, error) {
	dir, err := host.TempDir()
	if err != nil {
		return Path{}, &UnavailableError{Resource: "temp directory", Cause: err}
	}
	return NewPathOn(host, dir), nil
}

// HomeDirectory resolves the home directory of the local OS.
func HomeDirectory() (Path, error) {
	return HomeDirectoryOn(defaultHost)
}

// HomeDirectoryOn resolves the home directory of the given host.
func HomeDirectoryOn(host Host) (Path, error) {
	dir, err := host.HomeDir()
	if err != nil {
		return Path{}, &UnavailableError{Resource: "home directory", Cause: err}
	}
	return NewPathOn(host, dir), nil
}

// CurrentDirectory resolves the working directory of the local OS.
func CurrentDirectory() (Path, error) {
	return CurrentDirectoryOn(defaultHost)
}

// CurrentDirectoryOn resolves the working directory of the given host.
func CurrentDirectoryOn(host Host) (Path, error) {
	dir, err := host.WorkingDir()
	if err != nil {
		return Path{}, &UnavailableError{Resource: "current directory", Cause: err}
	}
	return NewPathOn(host, dir), nil
}
