// FILE: compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/credentiality/flog"
)

// FastHTTPAdapter wraps flog.Logger to implement the fasthttp Logger interface
type FastHTTPAdapter struct {
	logger        *flog.Logger
	defaultLevel  flog.Severity
	levelDetector func(string) flog.Severity // Function to detect severity from message
}

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *flog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  flog.SeverityInfo,
		levelDetector: DetectSeverity, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultSeverity sets the default severity for Printf calls
func WithDefaultSeverity(sev flog.Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = sev
	}
}

// WithSeverityDetector sets a custom function to detect severity from message content
func WithSeverityDetector(detector func(string) flog.Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	// Detect severity from message content
	level := a.defaultLevel
	if a.levelDetector != nil {
		level = a.levelDetector(msg)
	}

	a.logger.Log(level, "%s", msg)
}

// DetectSeverity attempts to detect the severity from message content
func DetectSeverity(msg string) flog.Severity {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return flog.SeverityError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return flog.SeverityWarning
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return flog.SeverityDebug
	}

	// Default to info severity
	return flog.SeverityInfo
}
