package fs

import "io"

// File exposes whole-file operations on one owned Path. It caches no
// metadata: every call is an independent host round-trip, so repeated calls
// may observe different results if the filesystem is mutated concurrently.
type File struct {
	path Path
}

// NewFile wraps a Path in a File.
func NewFile(path Path) File {
	return File{path: path}
}

// Path returns the owned path.
func (f File) Path() Path { return f.path }

// Exists reports whether the path exists and is a regular file. A directory
// at the path reports false.
func (f File) Exists() bool {
	return f.path.Exists() && f.path.IsFile()
}

// Size returns the file size in bytes.
func (f File) Size() (int64, error) {
	info, err := f.path.host.Stat(f.path.s)
	if err != nil {
		return 0, &MetadataError{Path: f.path.s, Cause: err}
	}
	return info.Size(), nil
}

// ReadText reads the whole file as a string. No transcoding is applied; the
// result is a raw byte-for-byte transfer.
func (f File) ReadText() (string, error) {
	content, err := f.ReadBinary()
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ReadBinary reads the whole file, preserving every byte.
func (f File) ReadBinary() ([]byte, error) {
	r, err := f.path.host.Open(f.path.s)
	if err != nil {
		return nil, &OpenError{Op: "read", Path: f.path.s, Cause: err}
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &OpenError{Op: "read", Path: f.path.s, Cause: err}
	}
	return content, nil
}

// WriteText writes content to the file, truncating any existing content.
func (f File) WriteText(content string) error {
	return f.WriteBinary([]byte(content))
}

// WriteBinary writes content to the file, truncating any existing content.
// There is no append mode.
func (f File) WriteBinary(content []byte) error {
	w, err := f.path.host.Create(f.path.s)
	if err != nil {
		return &OpenError{Op: "write", Path: f.path.s, Cause: err}
	}
	if _, err := w.Write(content); err != nil {
		w.Close()
		return &OpenError{Op: "write", Path: f.path.s, Cause: err}
	}
	if err := w.Close(); err != nil {
		return &OpenError{Op: "write", Path: f.path.s, Cause: err}
	}
	return nil
}

// Copy duplicates the file's bytes to dest. The destination may live on a
// different host. The source is left unchanged.
func (f File) Copy(dest Path) error {
	src, err := f.path.host.Open(f.path.s)
	if err != nil {
		return &OpenError{Op: "copy", Path: f.path.s, Cause: err}
	}
	defer src.Close()

	dst, err := dest.host.Create(dest.s)
	if err != nil {
		return &OpenError{Op: "copy", Path: dest.s, Cause: err}
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return &OpenError{Op: "copy", Path: dest.s, Cause: err}
	}
	if err := dst.Close(); err != nil {
		return &OpenError{Op: "copy", Path: dest.s, Cause: err}
	}
	return nil
}

// Move relocates the file to dest. On the same host it attempts an atomic
// rename first; if that fails for any reason, or the destination lives on a
// different host, it falls back to copy-then-delete. The fallback is a
// degraded non-atomic mode: a crash between the copy and the delete leaves
// both endpoints present.
func (f File) Move(dest Path) error {
	if f.path.host == dest.host {
		if err := f.path.host.Rename(f.path.s, dest.s); err == nil {
			return nil
		}
	}
	if err := f.Copy(dest); err != nil {
		return err
	}
	return f.Remove()
}

// Remove deletes the file.
func (f File) Remove() error {
	if err := f.path.host.RemoveFile(f.path.s); err != nil {
		return &DeleteError{Path: f.path.s, Cause: err}
	}
	return nil
}
