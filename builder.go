// FILE: builder.go
package flog

// Builder provides a fluent API for building logger options.
// It wraps an Options instance and provides chainable methods for setting values.
type Builder struct {
	opts *Options
	err  error // Accumulate errors for deferred handling
}

// NewBuilder creates a new options builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		opts: DefaultOptions(),
	}
}

// Level sets the severity threshold by name.
func (b *Builder) Level(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseSeverity(level); err != nil {
		b.err = err
		return b
	}
	b.opts.Level = level
	return b
}

// Directory overrides the platform log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.opts.Directory = dir
	return b
}

// ToFile enables or disables the file sink.
func (b *Builder) ToFile(enable bool) *Builder {
	b.opts.ToFile = enable
	return b
}

// ToStderr enables or disables the stderr console sink.
func (b *Builder) ToStderr(enable bool) *Builder {
	b.opts.ToStderr = enable
	return b
}

// IncludeRevision enables the source-control revision lookup in the
// startup announcement.
func (b *Builder) IncludeRevision(enable bool) *Builder {
	b.opts.IncludeRevision = enable
	return b
}

// AutoAbortTrace enables the termination-signal stack trace handlers.
func (b *Builder) AutoAbortTrace(enable bool) *Builder {
	b.opts.AutoAbortTrace = enable
	return b
}

// Options returns the built options.
func (b *Builder) Options() (*Options, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.opts.Clone(), nil
}

// Acquire resolves the named logger from the default registry with the
// built options.
func (b *Builder) Acquire(name string) (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	return Acquire(name, b.opts)
}

// Example usage:
// logger, err := flog.NewBuilder().
//
//	Level("debug").
//	ToStderr(true).
//	IncludeRevision(true).
//	Acquire("worker")
//
// if err == nil {
//
//	 logger.Info("logger initialized")
//
// }
