package fs

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// BillyHost implements Host on top of any billy.Filesystem, so the library
// can run against osfs trees or fully in-memory memfs trees. Billy paths are
// slash-separated regardless of the build target, so the style is always
// Posix.
type BillyHost struct {
	fs billy.Filesystem
}

// NewBillyHost wraps a billy filesystem in a Host.
func NewBillyHost(fsys billy.Filesystem) Host {
	return &BillyHost{fs: fsys}
}

// Style implements Host; billy filesystems are slash-separated.
func (h *BillyHost) Style() Style { return Posix }

// Stat implements Host.
func (h *BillyHost) Stat(path string) (os.FileInfo, error) {
	return h.fs.Stat(path)
}

// ReadDir implements Host.
func (h *BillyHost) ReadDir(path string) ([]os.FileInfo, error) {
	return h.fs.ReadDir(path)
}

// Open implements Host.
func (h *BillyHost) Open(path string) (io.ReadCloser, error) {
	return h.fs.Open(path)
}

// Create implements Host. Filesystems without write capability are rejected
// up front instead of failing on the first Write.
func (h *BillyHost) Create(path string) (io.WriteCloser, error) {
	if !billy.CapabilityCheck(h.fs, billy.WriteCapability) {
		return nil, billy.ErrNotSupported
	}
	return h.fs.Create(path)
}

// Rename implements Host.
func (h *BillyHost) Rename(oldpath, newpath string) error {
	return h.fs.Rename(oldpath, newpath)
}

// Mkdir implements Host. Billy only offers MkdirAll, which would silently
// create missing parents and accept existing paths; both are checked here to
// keep single-level mkdir semantics.
func (h *BillyHost) Mkdir(path string) error {
	if _, err := h.fs.Stat(path); err == nil {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrExist}
	}
	if parent := posixParent(path); parent != "." && !Posix.IsRoot(parent) {
		info, err := h.fs.Stat(parent)
		if err != nil {
			return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrNotExist}
		}
		if !info.IsDir() {
			return &os.PathError{Op: "mkdir", Path: path, Err: errors.New("parent is not a directory")}
		}
	}
	return h.fs.MkdirAll(path, 0o755)
}

// RemoveFile implements Host.
func (h *BillyHost) RemoveFile(path string) error {
	return h.fs.Remove(path)
}

// RemoveDir implements Host. Billy's Remove keeps rmdir semantics: removing
// a non-empty directory fails.
func (h *BillyHost) RemoveDir(path string) error {
	return h.fs.Remove(path)
}

// TempDir implements Host; billy filesystems carry no temp location.
func (h *BillyHost) TempDir() (string, error) {
	return "", errors.ErrUnsupported
}

// HomeDir implements Host; billy filesystems carry no user database.
func (h *BillyHost) HomeDir() (string, error) {
	return "", errors.ErrUnsupported
}

// WorkingDir implements Host using the filesystem root.
func (h *BillyHost) WorkingDir() (string, error) {
	return h.fs.Root(), nil
}

func posixParent(path string) string {
	pos := strings.LastIndexByte(path, '/')
	switch {
	case pos < 0:
		return "."
	case pos == 0:
		return "/"
	default:
		return path[:pos]
	}
}
