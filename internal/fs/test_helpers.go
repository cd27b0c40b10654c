package fs

import (
	"io"
	"os"
	"time"
)

// MockReadCloser implements io.ReadCloser for testing
type MockReadCloser struct {
	ReadFunc  func(p []byte) (n int, err error)
	CloseFunc func() error
}

// Read implements io.Reader for MockReadCloser
func (m *MockReadCloser) Read(p []byte) (n int, err error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(p)
	}
	return 0, io.EOF
}

// Close implements io.Closer for MockReadCloser
func (m *MockReadCloser) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// MockWriteCloser implements io.WriteCloser for testing
type MockWriteCloser struct {
	WriteFunc func(p []byte) (n int, err error)
	CloseFunc func() error
}

// Write implements io.Writer for MockWriteCloser
func (m *MockWriteCloser) Write(p []byte) (n int, err error) {
	if m.WriteFunc != nil {
		return m.WriteFunc(p)
	}
	return len(p), nil
}

// Close implements io.Closer for MockWriteCloser
func (m *MockWriteCloser) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// MockFileInfo implements os.FileInfo for testing
type MockFileInfo struct {
	FileName    string
	FileSize    int64
	FileMode    os.FileMode
	FileModTime time.Time
	Dir         bool
}

// Name implements os.FileInfo
func (m *MockFileInfo) Name() string { return m.FileName }

// Size implements os.FileInfo
func (m *MockFileInfo) Size() int64 { return m.FileSize }

// Mode implements os.FileInfo
func (m *MockFileInfo) Mode() os.FileMode {
	if m.Dir {
		return m.FileMode | os.ModeDir
	}
	return m.FileMode
}

// ModTime implements os.FileInfo
func (m *MockFileInfo) ModTime() time.Time { return m.FileModTime }

// IsDir implements os.FileInfo
func (m *MockFileInfo) IsDir() bool { return m.Dir }

// Sys implements os.FileInfo
func (m *MockFileInfo) Sys() interface{} { return nil }
