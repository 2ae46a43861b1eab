// FILE: compat/gnet.go
package compat

import (
	"fmt"
	"os"

	gnetlog "github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/credentiality/flog"
)

// GnetAdapter wraps flog.Logger to implement gnet's logging.Logger interface
type GnetAdapter struct {
	logger       *flog.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
}

var _ gnetlog.Logger = (*GnetAdapter)(nil)

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *flog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug severity with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Log(flog.SeverityDebug, format, args...)
}

// Infof logs at info severity with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Log(flog.SeverityInfo, format, args...)
}

// Warnf logs at warning severity with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Log(flog.SeverityWarning, format, args...)
}

// Errorf logs at error severity with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Log(flog.SeverityError, format, args...)
}

// Fatalf logs at critical severity and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	a.logger.Log(flog.SeverityCritical, format, args...)

	if a.fatalHandler != nil {
		a.fatalHandler(fmt.Sprintf(format, args...))
	}
}
