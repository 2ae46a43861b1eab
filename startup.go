// FILE: startup.go
package flog

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// revisionTimeout bounds the source-control revision lookup. On timeout,
// missing tool, or non-zero exit the revision is silently omitted.
const revisionTimeout = 2 * time.Second

// lookupRevisionFunc indirection exists for tests that need to control
// lookup timing.
var lookupRevisionFunc = lookupRevision

// announceStartup emits the one-time informational record describing the
// running process, and a second record naming the log file when one is
// active. Metadata first, command line last for copy/paste. The banner
// bypasses the severity threshold: it is emitted even when the logger is
// configured above info.
func (l *Logger) announceStartup(includeRevision bool) {
	parts := []string{
		fmt.Sprintf("pid=%d", os.Getpid()),
		"modified=" + executableModTime(),
		"go=" + runtime.Version(),
	}

	if includeRevision {
		if rev := lookupRevisionFunc(revisionTimeout); rev != "" {
			parts = append(parts, "commit="+rev)
		}
	}

	l.outputAlways(2, SeverityInfo, "Starting: "+strings.Join(parts, " ")+" "+commandLine())

	if l.filePath != "" {
		l.outputAlways(2, SeverityInfo, "Logging to "+l.filePath)
	}
}

// executableModTime returns the executable's last-modified timestamp, or
// "unknown" when the stat fails. Never an error; best-effort enrichment.
func executableModTime() string {
	exe, err := os.Executable()
	if err != nil {
		return "unknown"
	}
	info, err := os.Stat(exe)
	if err != nil {
		return "unknown"
	}
	return info.ModTime().Format("2006-01-02 15:04:05")
}

// lookupRevision asks git for the short HEAD revision with a hard timeout.
// Any failure yields "" and must never fail logger initialization.
func lookupRevision(timeout time.Duration) string {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// commandLine reconstructs the invocation: resolved program path plus the
// original arguments, each quoted if it contains whitespace, space-joined.
func commandLine() string {
	if len(os.Args) == 0 {
		return ""
	}
	exe := os.Args[0]
	if abs, err := filepath.Abs(exe); err == nil {
		exe = abs
	}
	parts := make([]string, 0, len(os.Args))
	parts = append(parts, quoteArg(exe))
	for _, arg := range os.Args[1:] {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if strings.ContainsAny(arg, " \t") {
		return `"` + arg + `"`
	}
	return arg
}
