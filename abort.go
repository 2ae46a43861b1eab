// FILE: abort.go
package flog

import (
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// exitFunc terminates the process. Swapped by tests; production code must
// not replace it.
var exitFunc = os.Exit

// abortStackBufSize holds all goroutine stacks on the abort path. The
// buffer is allocated at install time so the handler itself does not
// allocate.
const abortStackBufSize = 256 * 1024

// Fatal emits a critical record containing the message and the calling
// goroutine's stack, then terminates the process with exit status 1.
// This is the sole non-signal path guaranteed to terminate the process.
func Fatal(l *Logger, template string, args ...any) {
	msg := formatMessage(template, args)
	l.output(2, SeverityCritical, msg+"\nStack trace:\n"+captureStack(2))
	exitFunc(1)
}

// LogStackTrace emits a warning record containing the message and the
// calling goroutine's stack at the call site, without terminating. An
// explicit diagnostic request is never dropped by the severity threshold.
func LogStackTrace(l *Logger, template string, args ...any) {
	msg := formatMessage(template, args)
	l.outputAlways(2, SeverityWarning, msg+"\nStack trace:\n"+captureStack(2))
}

// captureStack returns the current goroutine's stack with the header line
// kept and the first skip frames (the diagnostic machinery itself) removed.
func captureStack(skip int) string {
	buf := make([]byte, 64*1024)
	n := runtime.Stack(buf, false)
	s := strings.TrimRight(string(buf[:n]), "\n")

	// Each frame occupies two lines after the goroutine header
	lines := strings.Split(s, "\n")
	drop := 1 + 2*skip
	if len(lines) <= drop {
		return s
	}
	return strings.Join(append(lines[:1], lines[drop:]...), "\n")
}

// installAbortHandler registers the termination-signal handlers for this
// logger. Idempotent; repeat acquisition does not duplicate installation.
func (l *Logger) installAbortHandler() {
	if !l.abortInstalled.CompareAndSwap(false, true) {
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, abortSignals()...)

	buf := make([]byte, abortStackBufSize)
	go func() {
		sig := <-sigCh
		l.handleAbort(sig, buf)
	}()
}

// handleAbort captures all goroutine stacks, emits a critical record with
// the signal's symbolic name, and terminates the process. The handler body
// stays minimal: capture, format, write, exit. Diagnostics are best-effort;
// termination is not.
func (l *Logger) handleAbort(sig os.Signal, buf []byte) {
	n := runtime.Stack(buf, true)
	l.emitAbort("Received signal "+signalName(sig), buf[:n])
	exitFunc(abortExitCode(sig))
}

// emitAbort writes the abort record outside the ordinary emit path. Sinks
// are attempted with non-blocking lock acquisition so the handler never
// contends on a lock held by an interrupted goroutine; if no sink accepts
// the line, it falls back to a direct write on the stderr descriptor.
func (l *Logger) emitAbort(message string, stack []byte) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "???", 0
	} else {
		file = filepath.Base(file)
	}

	s := newSerializer() // dedicated buffer, never the shared pool
	data := s.serialize(Record{
		Severity:  SeverityCritical,
		Time:      time.Now(),
		Goroutine: goroutineID(),
		File:      file,
		Line:      line,
		Message:   message,
	})
	data = append(data, stack...)
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	wrote := false
	for _, sink := range l.sinks {
		if sink.TryWriteLine(data) {
			wrote = true
		}
	}
	if !wrote {
		rawStderrWrite(data)
	}
}
