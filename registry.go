// FILE: registry.go
package flog

import (
	"sync"
)

// registryEntry is the per-name initialization claim. The once gate gives
// racing first acquirers of the same name exactly one initialization while
// letting distinct names initialize concurrently.
type registryEntry struct {
	once   sync.Once
	logger *Logger
	err    error
}

// Registry owns the process-wide table of loggers by name. Initialization
// side effects (sink opening, startup announcement, abort handler install)
// happen exactly once per name, even under concurrent first acquisition.
// The registry lock guards only the name table; slow initialization of one
// name (e.g. the revision lookup) never blocks acquisition of another.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
}

// NewRegistry creates an empty logger registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*registryEntry),
	}
}

// Acquire returns the logger identified by name, performing first-time
// setup on initial acquisition. Options are consulted only then; later
// calls with different options return the already-configured instance
// unchanged. A nil opts selects the defaults.
//
// Configuration errors (log directory or file cannot be created or opened)
// propagate to the caller and leave no logger registered under name.
func (r *Registry) Acquire(name string, opts *Options) (*Logger, error) {
	r.mu.Lock()
	e, ok := r.entries[name]
	if !ok {
		e = &registryEntry{}
		r.entries[name] = e
	}
	r.mu.Unlock()

	e.once.Do(func() {
		e.logger, e.err = newLogger(name, opts)
	})

	if e.err != nil {
		// Drop the failed claim so a later call with valid options
		// starts fresh
		r.mu.Lock()
		if r.entries[name] == e {
			delete(r.entries, name)
		}
		r.mu.Unlock()
		return nil, e.err
	}
	return e.logger, nil
}

// newLogger performs the one-time setup for a named logger.
func newLogger(name string, opts *Options) (*Logger, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	level, err := ParseSeverity(opts.Level)
	if err != nil {
		return nil, err
	}

	sinks, filePath, err := openSinks(opts)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		name:     name,
		level:    level,
		sinks:    sinks,
		filePath: filePath,
	}

	l.announceStartup(opts.IncludeRevision)

	if opts.AutoAbortTrace {
		l.installAbortHandler()
	}

	return l, nil
}

// Global instance for package-level functions
var defaultRegistry = NewRegistry()

// Acquire returns a logger from the process-wide default registry.
func Acquire(name string, opts *Options) (*Logger, error) {
	return defaultRegistry.Acquire(name, opts)
}
