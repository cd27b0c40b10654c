// Package crossfs provides a public API for cross-platform filesystem
// access: normalized paths, whole-file read/write, copy/move/delete, and
// directory creation, listing and recursive removal. The same operations run
// against the local OS, an in-memory or on-disk billy filesystem, or a
// remote SFTP session, selected by the Host a Path is constructed on. This
// package re-exports the internal implementation so users can build on the
// library without reaching into internal packages.
package crossfs

import (
	"github.com/go-git/go-billy/v5"

	"github.com/nickalie/crossfs/internal/fs"
)

// Path represents a normalized filesystem location
type Path = fs.Path

// File exposes whole-file operations on a Path
type File = fs.File

// Directory exposes creation, listing and removal of a Path
type Directory = fs.Directory

// Host abstracts a concrete filesystem implementation
type Host = fs.Host

// Style is a path separator convention
type Style = fs.Style

// SFTPClient narrows the SFTP operations the SFTP host needs
type SFTPClient = fs.SFTPClient

// SFTPConfig configures DialSFTP
type SFTPConfig = fs.SFTPConfig

// SFTPHost is a Host over an SFTP session
type SFTPHost = fs.SFTPHost

// UnavailableError reports a host location that could not be resolved
type UnavailableError = fs.UnavailableError

// MetadataError reports a failed metadata lookup
type MetadataError = fs.MetadataError

// OpenError reports a failed read or write handle acquisition
type OpenError = fs.OpenError

// CreateError reports a failed directory creation
type CreateError = fs.CreateError

// DeleteError reports a failed file deletion
type DeleteError = fs.DeleteError

// RemoveError reports a failed directory removal
type RemoveError = fs.RemoveError

// ConnectionError reports a failed remote connection
type ConnectionError = fs.ConnectionError

// Separator styles.
const (
	Posix   = fs.Posix
	Windows = fs.Windows
)

// NewPath constructs a Path on the local OS host.
func NewPath(raw string) Path { return fs.NewPath(raw) }

// NewPathOn constructs a Path on the given host.
func NewPathOn(host Host, raw string) Path { return fs.NewPathOn(host, raw) }

// NewFile wraps a Path in a File.
func NewFile(path Path) File { return fs.NewFile(path) }

// NewDirectory wraps a Path in a Directory.
func NewDirectory(path Path) Directory { return fs.NewDirectory(path) }

// NewOSHost returns the host for the local operating system.
func NewOSHost() Host { return fs.NewOSHost() }

// NewBillyHost wraps a billy filesystem (osfs, memfs, ...) in a Host.
func NewBillyHost(fsys billy.Filesystem) Host { return fs.NewBillyHost(fsys) }

// NewSFTPHost wraps an SFTP client in a Host.
func NewSFTPHost(client SFTPClient) *SFTPHost { return fs.NewSFTPHost(client) }

// DialSFTP connects to addr and returns a Host over the SFTP session.
func DialSFTP(addr string, cfg SFTPConfig) (*SFTPHost, error) { return fs.DialSFTP(addr, cfg) }

// NativeStyle returns the separator style of the build target.
func NativeStyle() Style { return fs.NativeStyle() }

// Separator returns the native separator of the local OS.
func Separator() byte { return fs.Separator() }

// TempDirectory resolves the temp directory of the local OS.
func TempDirectory() (Path, error) { return fs.TempDirectory() }

// TempDirectoryOn resolves the temp directory of the given host.
func TempDirectoryOn(host Host) (Path, error) { return fs.TempDirectoryOn(host) }

// HomeDirectory resolves the home directory of the local OS.
func HomeDirectory() (Path, error) { return fs.HomeDirectory() }

// HomeDirectoryOn resolves the home directory of the given host.
func HomeDirectoryOn(host Host) (Path, error) { return fs.HomeDirectoryOn(host) }

// CurrentDirectory resolves the working directory of the local OS.
func CurrentDirectory() (Path, error) { return fs.CurrentDirectory() }

// CurrentDirectoryOn resolves the working directory of the given host.
func CurrentDirectoryOn(host Host) (Path, error) { return fs.CurrentDirectoryOn(host) }
