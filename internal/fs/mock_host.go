package fs

import (
	"io"
	"os"
)

// MockHost implements Host for testing. Unset funcs report "not exist" so a
// zero MockHost behaves like an empty filesystem.
type MockHost struct {
	StyleFunc      func() Style
	StatFunc       func(path string) (os.FileInfo, error)
	ReadDirFunc    func(path string) ([]os.FileInfo, error)
	OpenFunc       func(path string) (io.ReadCloser, error)
	CreateFunc     func(path string) (io.WriteCloser, error)
	RenameFunc     func(oldpath, newpath string) error
	MkdirFunc      func(path string) error
	RemoveFileFunc func(path string) error
	RemoveDirFunc  func(path string) error
	TempDirFunc    func() (string, error)
	HomeDirFunc    func() (string, error)
	WorkingDirFunc func() (string, error)
}

// Style mocks the Style method of the Host interface.
func (m *MockHost) Style() Style {
	if m.StyleFunc != nil {
		return m.StyleFunc()
	}
	return Posix
}

// Stat mocks the Stat method of the Host interface.
func (m *MockHost) Stat(path string) (os.FileInfo, error) {
	if m.StatFunc != nil {
		return m.StatFunc(path)
	}
	return nil, os.ErrNotExist
}

// ReadDir mocks the ReadDir method of the Host interface.
func (m *MockHost) ReadDir(path string) ([]os.FileInfo, error) {
	if m.ReadDirFunc != nil {
		return m.ReadDirFunc(path)
	}
	return nil, os.ErrNotExist
}

// Open mocks the Open method of the Host interface.
func (m *MockHost) Open(path string) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(path)
	}
	return nil, os.ErrNotExist
}

// Create mocks the Create method of the Host interface.
func (m *MockHost) Create(path string) (io.WriteCloser, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(path)
	}
	return nil, os.ErrPermission
}

// Rename mocks the Rename method of the Host interface.
func (m *MockHost) Rename(oldpath, newpath string) error {
	if m.RenameFunc != nil {
		return m.RenameFunc(oldpath, newpath)
	}
	return os.ErrNotExist
}

// Mkdir mocks the Mkdir method of the Host interface.
func (m *MockHost) Mkdir(path string) error {
	if m.MkdirFunc != nil {
		return m.MkdirFunc(path)
	}
	return os.ErrPermission
}

// RemoveFile mocks the RemoveFile method of the Host interface.
func (m *MockHost) RemoveFile(path string) error {
	if m.RemoveFileFunc != nil {
		return m.RemoveFileFunc(path)
	}
	return os.ErrNotExist
}

// RemoveDir mocks the RemoveDir method of the Host interface.
func (m *MockHost) RemoveDir(path string) error {
	if m.RemoveDirFunc != nil {
		return m.RemoveDirFunc(path)
	}
	return os.ErrNotExist
}

// TempDir mocks the TempDir method of the Host interface.
func (m *MockHost) TempDir() (string, error) {
	if m.TempDirFunc != nil {
		return m.TempDirFunc()
	}
	return "", os.ErrNotExist
}

// HomeDir mocks the HomeDir method of the Host interface.
func (m *MockHost) HomeDir() (string, error) {
	if m.HomeDirFunc != nil {
		return m.HomeDirFunc()
	}
	return "", os.ErrNotExist
}

// WorkingDir mocks the WorkingDir method of the Host interface.
func (m *MockHost) WorkingDir() (string, error) {
	if m.WorkingDirFunc != nil {
		return m.WorkingDirFunc()
	}
	return "", os.ErrNotExist
}
