// FILE: config.go
package flog

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/lixenwraith/config"
)

// Options holds the per-logger configuration consulted on first
// acquisition of a name. Later acquisitions ignore them.
type Options struct {
	Level           string `toml:"level"`     // Severity threshold by name
	Directory       string `toml:"directory"` // Overrides the platform log directory
	ToFile          bool   `toml:"to_file"`
	ToStderr        bool   `toml:"to_stderr"`
	IncludeRevision bool   `toml:"include_revision"`
	AutoAbortTrace  bool   `toml:"auto_abort_trace"`
}

// defaultOptions is the single source for all configurable default values
var defaultOptions = Options{
	Level:           "info",
	Directory:       "",
	ToFile:          true,
	ToStderr:        true,
	IncludeRevision: false,
	AutoAbortTrace:  false,
}

// DefaultOptions returns a copy of the default options
func DefaultOptions() *Options {
	copied := defaultOptions
	return &copied
}

// Clone creates a copy of the options
func (o *Options) Clone() *Options {
	copied := *o
	return &copied
}

// validate performs validation on the options
func (o *Options) validate() error {
	if _, err := ParseSeverity(o.Level); err != nil {
		return err
	}
	return nil
}

// NewOptionsFromFile loads options from a TOML file and returns a
// validated Options value. Keys live under the [flog] table.
func NewOptionsFromFile(path string) (*Options, error) {
	opts := DefaultOptions()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("flog.", *opts); err != nil {
		return nil, fmtErrorf("failed to register options struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load options from %s: %w", path, err)
	}

	// Extract values into our Options struct
	if err := extractOptions(loader, "flog.", opts); err != nil {
		return nil, fmtErrorf("failed to extract option values: %w", err)
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	return opts, nil
}

// NewOptionsFromStrings applies "key=value" overrides on top of the
// defaults and returns a validated Options value.
func NewOptionsFromStrings(overrides ...string) (*Options, error) {
	opts := DefaultOptions()

	var errs []error
	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := applyOptionField(opts, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		combined := errs[0]
		for _, err := range errs[1:] {
			combined = combineErrors(combined, err)
		}
		return nil, combined
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	return opts, nil
}

// extractOptions extracts values from lixenwraith/config into Options
func extractOptions(loader *config.Config, prefix string, opts *Options) error {
	v := reflect.ValueOf(opts).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOptionField sets one field identified by its toml tag
func applyOptionField(opts *Options, key, value string) error {
	v := reflect.ValueOf(opts).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("toml") != key {
			continue
		}
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(value)
		case reflect.Bool:
			switch value {
			case "true":
				field.SetBool(true)
			case "false":
				field.SetBool(false)
			default:
				return fmtErrorf("%s must be true or false, got '%s'", key, value)
			}
		default:
			return fmtErrorf("unsupported field type for %s: %v", key, field.Kind())
		}
		return nil
	}

	return fmtErrorf("unknown option key: %s", key)
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}
