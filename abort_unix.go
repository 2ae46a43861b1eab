// FILE: abort_unix.go
//go:build !windows

package flog

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// abortSignals lists the termination signals consumed by the abort
// handler on Unix platforms.
func abortSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}
}

// signalName returns the symbolic name (e.g. "SIGTERM") for the signal.
func signalName(sig os.Signal) string {
	if s, ok := sig.(syscall.Signal); ok {
		if name := unix.SignalName(s); name != "" {
			return name
		}
	}
	return sig.String()
}

// abortExitCode follows the shell convention of 128 plus the signal number.
func abortExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}

// rawStderrWrite bypasses buffered writers with a direct write on the
// stderr descriptor; the abort path's last resort.
func rawStderrWrite(data []byte) {
	_, _ = unix.Write(unix.Stderr, data)
}
