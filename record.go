// FILE: record.go
package flog

import (
	"strings"
	"time"
)

// Severity levels ordered by increasing urgency
type Severity int32

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

// Char returns the single-character severity code used as the line prefix.
// Unrecognized severities default to 'I'.
func (s Severity) Char() byte {
	switch s {
	case SeverityDebug:
		return 'D'
	case SeverityInfo:
		return 'I'
	case SeverityWarning:
		return 'W'
	case SeverityError:
		return 'E'
	case SeverityCritical:
		return 'F'
	default:
		return 'I'
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "INFO"
	}
}

// ParseSeverity converts a severity name to its numeric constant.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return SeverityDebug, nil
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "critical", "fatal":
		return SeverityCritical, nil
	default:
		return SeverityInfo, fmtErrorf("invalid severity: '%s' (use debug, info, warning, error, critical)", name)
	}
}

// Record represents a single log entry. Immutable once constructed;
// created per log call and consumed synchronously by every sink.
type Record struct {
	Severity  Severity
	Time      time.Time
	Goroutine uint64
	File      string
	Line      int
	Message   string
}
