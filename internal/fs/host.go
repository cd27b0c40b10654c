package fs

import (
	"errors"
	"io"
	"os"
	"os/user"
)

// Host abstracts the native filesystem API surface. Implementations are
// selected at construction time; call sites never branch on the host
// identity. Every method is a single blocking round-trip and owns no state
// between calls.
type Host interface {
	// Style is the separator convention of paths on this host.
	Style() Style

	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)

	// Open acquires a read handle.
	Open(path string) (io.ReadCloser, error)
	// Create acquires a write handle, truncating existing content.
	Create(path string) (io.WriteCloser, error)

	Rename(oldpath, newpath string) error

	// Mkdir creates a single directory level. It does not create parents
	// and reports an error if the path already exists.
	Mkdir(path string) error
	// RemoveFile deletes a single file.
	RemoveFile(path string) error
	// RemoveDir removes an empty directory.
	RemoveDir(path string) error

	TempDir() (string, error)
	HomeDir() (string, error)
	WorkingDir() (string, error)
}

// OSHost implements Host with direct OS calls.
type OSHost struct{}

// NewOSHost returns the host for the local operating system.
func NewOSHost() Host {
	return &OSHost{}
}

// defaultHost backs NewPath and the package-level directory resolvers.
var defaultHost = NewOSHost()

// Style implements Host for the build target's separator convention.
func (h *OSHost) Style() Style { return NativeStyle() }

// Stat implements Host using os.Stat.
func (h *OSHost) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir implements Host using os.ReadDir. Entry order follows the host
// enumeration and is not guaranteed sorted by this interface.
func (h *OSHost) ReadDir(path string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between the listing and the lookup.
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Open implements Host using os.Open.
func (h *OSHost) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Create implements Host using os.Create.
func (h *OSHost) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Rename implements Host using os.Rename.
func (h *OSHost) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Mkdir implements Host using os.Mkdir.
func (h *OSHost) Mkdir(path string) error {
	return os.Mkdir(path, 0o755)
}

// RemoveFile implements Host using os.Remove.
func (h *OSHost) RemoveFile(path string) error {
	return os.Remove(path)
}

// RemoveDir implements Host using os.Remove, which maps to rmdir semantics
// for directories: removal fails if the directory is not empty.
func (h *OSHost) RemoveDir(path string) error {
	return os.Remove(path)
}

// TempDir resolves the temp directory from the environment first, falling
// back to the platform default ("/tmp" on POSIX, the native temp path on
// Windows).
func (h *OSHost) TempDir() (string, error) {
	dir := os.TempDir()
	if dir == "" {
		return "", errors.New("no temp directory configured")
	}
	return dir, nil
}

// HomeDir resolves the home directory from the environment first, then from
// the user database or profile.
func (h *OSHost) HomeDir() (string, error) {
	env := "HOME"
	if h.Style() == Windows {
		env = "USERPROFILE"
	}
	if dir := os.Getenv(env); dir != "" {
		return dir, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	if u.HomeDir == "" {
		return "", errors.New("user database has no home directory")
	}
	return u.HomeDir, nil
}

// WorkingDir implements Host using os.Getwd.
func (h *OSHost) WorkingDir() (string, error) {
	return os.Getwd()
}
