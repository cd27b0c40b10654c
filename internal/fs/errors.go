// Package fs provides a cross-platform abstraction over native filesystem
// primitives: path normalization, existence and type queries, whole-file
// read/write, copy/move/delete, and directory creation, listing and recursive
// removal. All host access goes through the Host interface, so the same code
// runs against the local OS, an in-memory billy filesystem, or a remote SFTP
// session.
package fs

import "fmt"

// UnavailableError represents a failure to resolve a host-provided location
// such as the home, temp or working directory.
type UnavailableError struct {
	Resource string
	Cause    error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not resolve %s: %v", e.Resource, e.Cause)
	}
	return fmt.Sprintf("could not resolve %s", e.Resource)
}

func (e *UnavailableError) Unwrap() error { return e.Cause }

// MetadataError represents a failed metadata lookup on a path.
type MetadataError struct {
	Path  string
	Cause error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("metadata lookup for '%s' failed: %v", e.Path, e.Cause)
}

func (e *MetadataError) Unwrap() error { return e.Cause }

// OpenError represents a failure to acquire or use a read or write handle.
// Op names the operation that needed the handle ("read", "write", "copy").
type OpenError struct {
	Op    string
	Path  string
	Cause error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s '%s' failed: %v", e.Op, e.Path, e.Cause)
}

func (e *OpenError) Unwrap() error { return e.Cause }

// CreateError represents a failure to create a directory.
type CreateError struct {
	Path  string
	Cause error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("creating directory '%s' failed: %v", e.Path, e.Cause)
}

func (e *CreateError) Unwrap() error { return e.Cause }

// DeleteError represents a failure to delete a single file.
type DeleteError struct {
	Path  string
	Cause error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("deleting file '%s' failed: %v", e.Path, e.Cause)
}

func (e *DeleteError) Unwrap() error { return e.Cause }

// RemoveError represents a failure to remove a directory.
type RemoveError struct {
	Path  string
	Cause error
}

func (e *RemoveError) Error() string {
	return fmt.Sprintf("removing directory '%s' failed: %v", e.Path, e.Cause)
}

func (e *RemoveError) Unwrap() error { return e.Cause }

// ConnectionError represents a failed connection to a remote host.
type ConnectionError struct {
	Addr  string
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Addr, e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }
