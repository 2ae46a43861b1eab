// FILE: logger_test.go
package flog

import (
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineLayout matches one formatted log line prefix:
// severity char, local timestamp with offset, thread tag, file:line, "] "
var lineLayout = regexp.MustCompile(`^[DIWEF]\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}[+-]\d{4} \d+ [^:]+:\d+\] `)

// memorySink collects whole lines for inspection.
type memorySink struct {
	mu    sync.Mutex
	lines []string
}

func (m *memorySink) WriteLine(line []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, string(line))
	return nil
}

func (m *memorySink) TryWriteLine(line []byte) bool {
	if !m.mu.TryLock() {
		return false
	}
	defer m.mu.Unlock()
	m.lines = append(m.lines, string(line))
	return true
}

func (m *memorySink) snapshot() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lines...)
}

// newMemoryLogger builds a logger writing to an in-memory sink, bypassing
// registry side effects such as the startup announcement.
func newMemoryLogger(level Severity) (*Logger, *memorySink) {
	sink := &memorySink{}
	return &Logger{name: "test", level: level, sinks: []Sink{sink}}, sink
}

// acquireFileLogger resolves a file-only logger in a temp directory through
// a fresh registry, exercising the full initialization path.
func acquireFileLogger(t *testing.T, name string) (*Logger, string) {
	t.Helper()
	opts := DefaultOptions()
	opts.Level = "debug"
	opts.ToStderr = false
	opts.Directory = t.TempDir()

	logger, err := NewRegistry().Acquire(name, opts)
	require.NoError(t, err)
	require.NotEmpty(t, logger.FilePath())
	return logger, logger.FilePath()
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// TestLoggerThreshold verifies records below the configured level are dropped
func TestLoggerThreshold(t *testing.T) {
	logger, sink := newMemoryLogger(SeverityWarning)

	logger.Debug("dropped debug")
	logger.Info("dropped info")
	logger.Warning("kept warning")
	logger.Error("kept error")

	lines := sink.snapshot()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "kept warning")
	assert.Contains(t, lines[1], "kept error")
}

// TestLoggerSeverityHelpers verifies each helper stamps its severity character
func TestLoggerSeverityHelpers(t *testing.T) {
	logger, sink := newMemoryLogger(SeverityDebug)

	logger.Debug("d")
	logger.Info("i")
	logger.Warning("w")
	logger.Error("e")
	logger.Critical("c")

	lines := sink.snapshot()
	require.Len(t, lines, 5)
	expected := []byte{'D', 'I', 'W', 'E', 'F'}
	for i, line := range lines {
		assert.Equal(t, expected[i], line[0], "line %d: %s", i, line)
		assert.Regexp(t, lineLayout, line)
	}
}

// TestLoggerCallSite verifies the record carries this file, not logger.go
func TestLoggerCallSite(t *testing.T) {
	logger, sink := newMemoryLogger(SeverityDebug)

	logger.Info("locate me")

	lines := sink.snapshot()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "logger_test.go:")
	assert.NotContains(t, lines[0], "logger.go:")
}

// TestLoggerTemplateArgs verifies argument substitution through the public API
func TestLoggerTemplateArgs(t *testing.T) {
	logger, sink := newMemoryLogger(SeverityDebug)

	logger.Info("value is %d", 42)
	logger.Info("100% done")
	logger.Log(SeverityError, "%s failed after %d tries", "upload", 3)

	lines := sink.snapshot()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "] value is 42\n")
	assert.Contains(t, lines[1], "] 100% done\n")
	assert.Contains(t, lines[2], "] upload failed after 3 tries\n")
}

// TestLoggerFanOut verifies every sink receives every record in order
func TestLoggerFanOut(t *testing.T) {
	first := &memorySink{}
	second := &memorySink{}
	logger := &Logger{name: "fan", level: SeverityDebug, sinks: []Sink{first, second}}

	logger.Info("fan out")

	require.Len(t, first.snapshot(), 1)
	require.Len(t, second.snapshot(), 1)
	assert.Equal(t, first.snapshot()[0], second.snapshot()[0])
}

// TestLoggerConcurrentWrites verifies concurrent callers never interleave lines
func TestLoggerConcurrentWrites(t *testing.T) {
	logger, path := acquireFileLogger(t, "concurrent")

	const goroutines = 10
	const perGoroutine = 100
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				logger.Info("worker %d message %d", id, i)
			}
		}(g)
	}
	wg.Wait()

	content := readLog(t, path)
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

	// Startup announcement contributes its own lines ahead of the workers'
	workerLines := 0
	for _, line := range lines {
		require.Regexp(t, lineLayout, line, "malformed line: %q", line)
		if strings.Contains(line, "worker ") {
			workerLines++
		}
	}
	assert.Equal(t, goroutines*perGoroutine, workerLines)
}

// TestLoggerName verifies the registry key accessor
func TestLoggerName(t *testing.T) {
	logger, _ := newMemoryLogger(SeverityInfo)
	assert.Equal(t, "test", logger.Name())
}
