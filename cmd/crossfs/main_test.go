package main

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickalie/crossfs/pkg/crossfs"
)

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	oldFlagCommandLine := flag.CommandLine

	defer func() {
		os.Args = oldArgs
		flag.CommandLine = oldFlagCommandLine
	}()

	tests := []struct {
		name        string
		args        []string
		wantSFTP    string
		wantUser    string
		wantEnv     []string
		wantVersion bool
	}{
		{
			name: "default values",
			args: []string{"crossfs"},
		},
		{
			name:     "sftp target",
			args:     []string{"crossfs", "-sftp", "example.com:22", "-user", "deploy"},
			wantSFTP: "example.com:22",
			wantUser: "deploy",
		},
		{
			name:    "env files",
			args:    []string{"crossfs", "-env", "dev.env,prod.env"},
			wantEnv: []string{"dev.env", "prod.env"},
		},
		{
			name:        "version flag",
			args:        []string{"crossfs", "-version"},
			wantVersion: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(tt.args[0], flag.ExitOnError)
			os.Args = tt.args

			app := NewApplication()
			app.ParseFlags()

			assert.Equal(t, tt.wantSFTP, app.sftpAddr)
			assert.Equal(t, tt.wantUser, app.sftpUser)
			assert.Equal(t, tt.wantEnv, app.envPaths)
			assert.Equal(t, tt.wantVersion, app.version)
		})
	}
}

func TestWalkthroughInMemory(t *testing.T) {
	host := crossfs.NewBillyHost(memfs.New())
	var out bytes.Buffer

	require.NoError(t, walkthroughIn(crossfs.NewPathOn(host, "/demo"), &out))

	assert.Contains(t, out.String(), "test1.txt")
	assert.Contains(t, out.String(), "Demo directory exists: false")
}

func TestWalkthroughLocal(t *testing.T) {
	base := crossfs.NewPath(t.TempDir()).Join("crossfs-demo")
	var out bytes.Buffer

	require.NoError(t, walkthroughIn(base, &out))
	assert.False(t, crossfs.NewDirectory(base).Exists(), "the walkthrough cleans up after itself")
}

func TestBuildHostDefaultsToOS(t *testing.T) {
	app := NewApplication()
	host, closeHost, err := app.buildHost()
	require.NoError(t, err)
	defer closeHost()
	assert.NotNil(t, host)
}
