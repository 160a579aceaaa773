//go:build !windows

package ipc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocketPathOverride(t *testing.T) {
	t.Setenv("KLIPPY_SOCKET", "/tmp/custom.sock")
	assert.Equal(t, "/tmp/custom.sock", SocketPath())
}

func TestSocketPathPrefersRuntimeDir(t *testing.T) {
	t.Setenv("KLIPPY_SOCKET", "")
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	assert.Equal(t, "/run/user/1000/klippy.sock", SocketPath())
}

func TestListenReplacesStaleSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "k.sock")
	t.Setenv("KLIPPY_SOCKET", path)
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	assert.False(t, IsRunning())

	ln, err := Listen()
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		if c, err := ln.Accept(); err == nil {
			_ = c.Close()
		}
	}()
	assert.True(t, IsRunning())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
