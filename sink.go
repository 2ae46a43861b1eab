// FILE: sink.go
package flog

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Sink accepts one formatted line at a time. Writes to a single sink are
// serialized per sink so concurrent callers never interleave partial lines.
// TryWriteLine is the non-blocking variant used on the abort path, where
// contending on a lock held by an interrupted goroutine must be avoided.
type Sink interface {
	WriteLine(line []byte) error
	TryWriteLine(line []byte) bool
}

// consoleSink writes to a process stream (stdout or stderr).
type consoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

func newConsoleSink(w io.Writer) *consoleSink {
	return &consoleSink{w: w}
}

func (c *consoleSink) WriteLine(line []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.w.Write(line)
	return err
}

func (c *consoleSink) TryWriteLine(line []byte) bool {
	if !c.mu.TryLock() {
		return false
	}
	defer c.mu.Unlock()
	_, err := c.w.Write(line)
	return err == nil
}

// fileSink appends to a log file opened once at logger initialization.
type fileSink struct {
	mu   sync.Mutex
	file *os.File
	path string
}

func (f *fileSink) WriteLine(line []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := f.file.Write(line)
	return err
}

func (f *fileSink) TryWriteLine(line []byte) bool {
	if !f.mu.TryLock() {
		return false
	}
	defer f.mu.Unlock()
	_, err := f.file.Write(line)
	if err == nil {
		err = f.file.Sync()
	}
	return err == nil
}

// openSinks resolves the concrete sink set for the given options and
// returns the resolved log file path when a file sink was opened.
// Directory or file open failures abort logger initialization.
func openSinks(opts *Options) ([]Sink, string, error) {
	var sinks []Sink
	var filePath string

	if opts.ToFile {
		dir := opts.Directory
		if dir == "" {
			var err error
			dir, err = defaultLogDir(programName())
			if err != nil {
				return nil, "", err
			}
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, "", fmtErrorf("failed to create log directory '%s': %w", dir, err)
		}
		path := filepath.Join(dir, logFileName(programName(), time.Now()))
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, "", fmtErrorf("failed to open/create log file '%s': %w", path, err)
		}
		sinks = append(sinks, &fileSink{file: file, path: path})
		filePath = path
	}

	if opts.ToStderr {
		sinks = append(sinks, newConsoleSink(os.Stderr))
	}

	// Stdout fallback applies only when both outputs are disabled
	if len(sinks) == 0 {
		sinks = append(sinks, newConsoleSink(os.Stdout))
	}

	return sinks, filePath, nil
}

// logFileName builds "<programBaseName>.<YYYYMMDD-HHMMSS>.log".
func logFileName(base string, t time.Time) string {
	return base + "." + t.Format("20060102-150405") + ".log"
}

// defaultLogDir resolves the platform-appropriate persistent log directory.
func defaultLogDir(app string) (string, error) {
	switch runtime.GOOS {
	case "windows":
		root := os.Getenv("LOCALAPPDATA")
		if root == "" {
			return "", fmtErrorf("LOCALAPPDATA is not set")
		}
		return filepath.Join(root, app, "logs"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmtErrorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Logs", app), nil
	default:
		if state := os.Getenv("XDG_STATE_HOME"); state != "" {
			return filepath.Join(state, app), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmtErrorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, ".local", "state", app), nil
	}
}

// programName derives a stable base name from the invoking executable's
// argument, stripped of path and extension. Interpreter/stdin launches map
// to stable tokens.
func programName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "unknown"
	}
	arg0 := os.Args[0]
	if arg0 == "-" || arg0 == "/dev/stdin" {
		return "stdin"
	}
	base := filepath.Base(arg0)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "unknown"
	}
	return base
}
