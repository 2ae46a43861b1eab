// FILE: abort_windows.go
//go:build windows

package flog

import (
	"os"
	"syscall"
)

// abortSignals lists the termination signals available on Windows.
// SIGQUIT is not deliverable there and is skipped without failing the
// remaining installations.
func abortSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}

func signalName(sig os.Signal) string {
	switch sig {
	case os.Interrupt:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	}
	return sig.String()
}

func abortExitCode(sig os.Signal) int {
	return 1
}

func rawStderrWrite(data []byte) {
	_, _ = os.Stderr.Write(data)
}
