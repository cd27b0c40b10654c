// Package main provides a small walkthrough tool for the crossfs library:
// it resolves the host's well-known directories, then builds, inspects and
// tears down a demo tree on the local filesystem or on a remote SFTP host.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/nickalie/crossfs/pkg/crossfs"
)

// Application encapsulates the crossfs demo CLI
type Application struct {
	envPaths      []string
	sftpAddr      string
	sftpUser      string
	sftpKey       string
	verbose       bool
	version       bool
	versionString string
}

// NewApplication creates a new Application instance with default values
func NewApplication() *Application {
	return &Application{
		versionString: "1.0.0",
	}
}

// ParseFlags parses the command-line flags and updates the Application
// fields accordingly.
func (app *Application) ParseFlags() {
	var envPathsStr string
	flag.StringVar(&envPathsStr, "env", "", "Comma-separated paths to environment files")
	flag.StringVar(&app.sftpAddr, "sftp", app.sftpAddr, "Run the demo on a remote SFTP host (host:port)")
	flag.StringVar(&app.sftpUser, "user", app.sftpUser, "SFTP user name")
	flag.StringVar(&app.sftpKey, "key", app.sftpKey, "Path to an SSH private key for SFTP")
	flag.BoolVar(&app.verbose, "verbose", app.verbose, "Enable verbose logging")
	flag.BoolVar(&app.version, "version", app.version, "Show version information")

	flag.Parse()

	if envPathsStr != "" {
		app.envPaths = strings.Split(envPathsStr, ",")
	}
}

// Run executes the application
func (app *Application) Run() error {
	if app.version {
		fmt.Printf("crossfs version %s\n", app.versionString)
		return nil
	}

	if app.verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(0)
	}

	for _, path := range app.envPaths {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading environment file %s: %w", path, err)
		}
	}

	host, closeHost, err := app.buildHost()
	if err != nil {
		return err
	}
	defer closeHost()

	return walkthrough(host, os.Stdout)
}

// buildHost selects the local OS host or dials a remote SFTP host.
func (app *Application) buildHost() (crossfs.Host, func(), error) {
	if app.sftpAddr == "" {
		return crossfs.NewOSHost(), func() {}, nil
	}

	password, err := resolveSFTPPassword(app.sftpKey == "")
	if err != nil {
		return nil, nil, err
	}

	host, err := crossfs.DialSFTP(app.sftpAddr, crossfs.SFTPConfig{
		User:       app.sftpUser,
		Password:   password,
		PrivateKey: app.sftpKey,
	})
	if err != nil {
		return nil, nil, err
	}
	return host, func() { _ = host.Close() }, nil
}

// resolveSFTPPassword reads the password from the environment, prompting
// only when no key is configured and none is set.
func resolveSFTPPassword(required bool) (string, error) {
	if pwd := os.Getenv("CROSSFS_SFTP_PASSWORD"); pwd != "" {
		return pwd, nil
	}
	if !required {
		return "", nil
	}

	fmt.Print("Enter SFTP password: ")
	if password, err := term.ReadPassword(int(syscall.Stdin)); err == nil {
		fmt.Println()
		return string(password), nil
	}

	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(password, "\r\n"), nil
}

// walkthrough exercises the library end to end on the given host: system
// directories, file write/read/copy, flat and recursive listing, and
// recursive removal.
func walkthrough(host crossfs.Host, out io.Writer) error {
	fmt.Fprintln(out, "crossfs walkthrough")
	fmt.Fprintln(out, "===================")

	fmt.Fprintf(out, "\nPath separator: %q\n", host.Style().Separator())
	if cwd, err := crossfs.CurrentDirectoryOn(host); err == nil {
		fmt.Fprintf(out, "Current directory: %s\n", cwd)
	}
	if home, err := crossfs.HomeDirectoryOn(host); err == nil {
		fmt.Fprintf(out, "Home directory: %s\n", home)
	}

	tmp, err := crossfs.TempDirectoryOn(host)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Temp directory: %s\n", tmp)

	return walkthroughIn(tmp.Join("crossfs-demo"), out)
}

// walkthroughIn builds and tears down the demo tree under base.
func walkthroughIn(base crossfs.Path, out io.Writer) error {
	dir := crossfs.NewDirectory(base)
	if dir.Exists() {
		fmt.Fprintln(out, "\nDemo directory already exists, removing it first...")
		if err := dir.Remove(true); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\nCreating demo directory: %s\n", base)
	if err := dir.Create(); err != nil {
		return err
	}

	file1 := crossfs.NewFile(base.Join("test1.txt"))
	file2 := crossfs.NewFile(base.Join("test2.txt"))
	if err := file1.WriteText("Hello from crossfs!\nThis is a demo file."); err != nil {
		return err
	}
	if err := file2.WriteText("Another demo file.\nWith multiple lines."); err != nil {
		return err
	}

	content, err := file1.ReadText()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s says:\n%s\n", file1.Path().Filename(), content)

	size, err := file1.Size()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "File size: %d bytes\n", size)

	fmt.Fprintln(out, "\nDirectory contents:")
	printEntries(out, dir.List(false), base)

	copied := base.Join("test1-copy.txt")
	if err := file1.Copy(copied); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nCopied %s to %s (exists: %v)\n",
		file1.Path().Filename(), copied.Filename(), crossfs.NewFile(copied).Exists())

	sub := crossfs.NewDirectory(base.Join("subdir"))
	if err := sub.Create(); err != nil {
		return err
	}
	if err := crossfs.NewFile(sub.Path().Join("subfile.txt")).WriteText("A file in a subdirectory."); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nDirectory contents (recursive):")
	printEntries(out, dir.List(true), base)

	fmt.Fprintln(out, "\nCleaning up...")
	if err := dir.Remove(true); err != nil {
		return err
	}
	fmt.Fprintf(out, "Demo directory exists: %v\n", dir.Exists())

	return nil
}

func printEntries(out io.Writer, entries []crossfs.Path, base crossfs.Path) {
	prefix := base.String() + string(base.Host().Style().Separator())
	for _, entry := range entries {
		kind := "File"
		if entry.IsDir() {
			kind = "Directory"
		}
		fmt.Fprintf(out, "- %s [%s]\n", strings.TrimPrefix(entry.String(), prefix), kind)
	}
}

func main() {
	app := NewApplication()
	app.ParseFlags()

	if err := app.Run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
