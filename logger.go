// FILE: logger.go
package flog

import (
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Logger is a named logger with a severity threshold and an ordered sink
// set. Loggers are created by a Registry and live for the process lifetime;
// log calls are synchronous and safe for concurrent use.
type Logger struct {
	name           string
	level          Severity
	sinks          []Sink
	filePath       string
	abortInstalled atomic.Bool
}

// serializerPool reuses formatting buffers across concurrent log calls.
var serializerPool = sync.Pool{
	New: func() any { return newSerializer() },
}

// Name returns the logger's registry key.
func (l *Logger) Name() string {
	return l.name
}

// FilePath returns the resolved log file path, or "" if no file sink is
// configured.
func (l *Logger) FilePath() string {
	return l.filePath
}

// Log emits a message at the given severity. The template is resolved
// against args as fmt.Sprintf would; with no args it is emitted verbatim.
func (l *Logger) Log(sev Severity, template string, args ...any) {
	l.output(2, sev, formatMessage(template, args))
}

// Debug logs a message at debug severity.
func (l *Logger) Debug(template string, args ...any) {
	l.output(2, SeverityDebug, formatMessage(template, args))
}

// Info logs a message at info severity.
func (l *Logger) Info(template string, args ...any) {
	l.output(2, SeverityInfo, formatMessage(template, args))
}

// Warning logs a message at warning severity.
func (l *Logger) Warning(template string, args ...any) {
	l.output(2, SeverityWarning, formatMessage(template, args))
}

// Error logs a message at error severity.
func (l *Logger) Error(template string, args ...any) {
	l.output(2, SeverityError, formatMessage(template, args))
}

// Critical logs a message at critical severity.
func (l *Logger) Critical(template string, args ...any) {
	l.output(2, SeverityCritical, formatMessage(template, args))
}

// output builds a record for the caller identified by calldepth and emits
// it to every sink in order, dropping records below the severity threshold.
func (l *Logger) output(calldepth int, sev Severity, message string) {
	if sev < l.level {
		return
	}
	l.outputAlways(calldepth+1, sev, message)
}

// outputAlways emits regardless of the severity threshold. Used for records
// the logger must always produce: the startup announcement and explicitly
// requested diagnostics.
func (l *Logger) outputAlways(calldepth int, sev Severity, message string) {
	_, file, line, ok := runtime.Caller(calldepth)
	if !ok {
		file, line = "???", 0
	} else {
		file = filepath.Base(file)
	}

	rec := Record{
		Severity:  sev,
		Time:      time.Now(),
		Goroutine: goroutineID(),
		File:      file,
		Line:      line,
		Message:   message,
	}
	l.emit(rec)
}

// emit fans the formatted line out to the sinks in configured order. Each
// sink's write completes before the next sink is written; per-sink locking
// lives in the sinks themselves so independent sinks do not contend.
func (l *Logger) emit(rec Record) {
	s := serializerPool.Get().(*serializer)
	line := s.serialize(rec)
	for _, sink := range l.sinks {
		if err := sink.WriteLine(line); err != nil {
			internalLog("failed to write log line: %v\n", err)
		}
	}
	serializerPool.Put(s)
}
