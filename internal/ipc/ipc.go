// Package ipc locates, listens on and dials the local control socket that the
// klippy CLI uses to talk to a running daemon.
//
// On Linux and macOS it is a Unix domain socket; on Windows a named pipe.
package ipc

import (
	"net"
	"os"
)

// SocketPath returns the control socket path, honouring $KLIPPY_SOCKET.
//
//   - Linux:   $XDG_RUNTIME_DIR/klippy.sock, else $TMPDIR/klippy.sock
//   - macOS:   $TMPDIR/klippy.sock
//   - Windows: \\.\pipe\klippy
func SocketPath() string {
	if s := os.Getenv("KLIPPY_SOCKET"); s != "" {
		return s
	}
	return socketPath()
}

// IsRunning reports whether a daemon appears to be listening. It does a
// cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := Dial()
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Listen returns a listener on the control socket, removing a stale socket
// left by a crashed run first.
func Listen() (net.Listener, error) {
	path := SocketPath()
	removeStale(path)
	return listenIPC(path)
}

// Dial connects to the control socket.
func Dial() (net.Conn, error) {
	return dialIPC(SocketPath())
}
