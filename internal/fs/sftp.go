package fs

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SFTPClient narrows the SFTP operations the host needs, so tests can
// substitute a mock for a live connection.
type SFTPClient interface {
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
	Open(path string) (io.ReadCloser, error)
	Create(path string) (io.WriteCloser, error)
	Rename(oldpath, newpath string) error
	Mkdir(path string) error
	Remove(path string) error
	RemoveDirectory(path string) error
	Getwd() (string, error)
	Close() error
}

// SFTPAdapter adapts *sftp.Client to the SFTPClient interface.
type SFTPAdapter struct {
	*sftp.Client
}

// NewSFTPAdapter wraps the provided sftp.Client.
func NewSFTPAdapter(client *sftp.Client) SFTPClient {
	return &SFTPAdapter{Client: client}
}

// Open implements SFTPClient.
func (a *SFTPAdapter) Open(path string) (io.ReadCloser, error) {
	return a.Client.Open(path)
}

// Create implements SFTPClient.
func (a *SFTPAdapter) Create(path string) (io.WriteCloser, error) {
	return a.Client.Create(path)
}

// SFTPHost implements Host over an SFTP session. Remote paths are
// slash-separated, so the style is always Posix.
type SFTPHost struct {
	client SFTPClient
	conn   io.Closer
}

// NewSFTPHost wraps an SFTP client in a Host.
func NewSFTPHost(client SFTPClient) *SFTPHost {
	return &SFTPHost{client: client}
}

// SFTPConfig configures DialSFTP.
type SFTPConfig struct {
	User string
	// Password enables password authentication when non-empty.
	Password string
	// PrivateKey is a path to a PEM-encoded private key; it enables
	// public-key authentication when non-empty.
	PrivateKey string
	// Timeout bounds the TCP dial; zero means 5 seconds.
	Timeout time.Duration
}

// DialSFTP connects to addr ("host:port") and returns a Host over the
// resulting SFTP session. Close the host to release the connection.
func DialSFTP(addr string, cfg SFTPConfig) (*SFTPHost, error) {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	sshConfig := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            cfg.authMethods(),
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}

	conn, err := ssh.Dial("tcp", addr, sshConfig)
	if err != nil {
		return nil, &ConnectionError{Addr: addr, Cause: err}
	}

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, &ConnectionError{Addr: addr, Cause: fmt.Errorf("SFTP session failed: %w", err)}
	}

	return &SFTPHost{client: NewSFTPAdapter(client), conn: conn}, nil
}

func (cfg SFTPConfig) authMethods() []ssh.AuthMethod {
	var methods []ssh.AuthMethod
	if cfg.PrivateKey != "" {
		if key, err := loadPrivateKey(cfg.PrivateKey); err == nil {
			methods = append(methods, key)
		}
	}
	if cfg.Password != "" {
		methods = append(methods, ssh.Password(cfg.Password))
	}
	return methods
}

func loadPrivateKey(keyPath string) (ssh.AuthMethod, error) {
	key, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return ssh.PublicKeys(signer), nil
}

// Close releases the SFTP session and, when the host was dialed, the
// underlying SSH connection.
func (h *SFTPHost) Close() error {
	err := h.client.Close()
	if h.conn != nil {
		if cerr := h.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Style implements Host; SFTP paths are slash-separated.
func (h *SFTPHost) Style() Style { return Posix }

// Stat implements Host.
func (h *SFTPHost) Stat(path string) (os.FileInfo, error) {
	return h.client.Stat(path)
}

// ReadDir implements Host.
func (h *SFTPHost) ReadDir(path string) ([]os.FileInfo, error) {
	return h.client.ReadDir(path)
}

// Open implements Host.
func (h *SFTPHost) Open(path string) (io.ReadCloser, error) {
	return h.client.Open(path)
}

// Create implements Host.
func (h *SFTPHost) Create(path string) (io.WriteCloser, error) {
	return h.client.Create(path)
}

// Rename implements Host.
func (h *SFTPHost) Rename(oldpath, newpath string) error {
	return h.client.Rename(oldpath, newpath)
}

// Mkdir implements Host; SFTP mkdir creates a single level and fails on an
// existing path, matching the contract directly.
func (h *SFTPHost) Mkdir(path string) error {
	return h.client.Mkdir(path)
}

// RemoveFile implements Host.
func (h *SFTPHost) RemoveFile(path string) error {
	return h.client.Remove(path)
}

// RemoveDir implements Host.
func (h *SFTPHost) RemoveDir(path string) error {
	return h.client.RemoveDirectory(path)
}

// TempDir implements Host with the conventional remote temp location.
func (h *SFTPHost) TempDir() (string, error) {
	return "/tmp", nil
}

// HomeDir implements Host. SFTP sessions start in the user's home, which
// Getwd reports.
func (h *SFTPHost) HomeDir() (string, error) {
	return h.client.Getwd()
}

// WorkingDir implements Host.
func (h *SFTPHost) WorkingDir() (string, error) {
	return h.client.Getwd()
}
