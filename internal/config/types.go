// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"

	// DefaultDimension is the default offscreen surface width and height.
	DefaultDimension = 256
	// MaxDimension bounds the offscreen surface size.
	MaxDimension = 16384
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidDimension is returned for offscreen sizes outside 1..MaxDimension.
	ErrInvalidDimension = errors.New("invalid offscreen dimension")
	// ErrInvalidSuiteName is returned when run.suites contains a blank entry.
	ErrInvalidSuiteName = errors.New("invalid suite name")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel is the minimum level of diagnostics written to stderr.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidDimensionError is returned when an offscreen width or height is out of range.
	InvalidDimensionError struct {
		Field string
		Value int
	}

	// InvalidSuiteNameError is returned for a blank run.suites entry.
	InvalidSuiteNameError struct {
		Index int
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig and collects the field-level errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Offscreen sizes the rendering context shared by the offscreen suite.
		Offscreen OffscreenConfig `json:"offscreen" mapstructure:"offscreen"`
		// Run holds defaults for `glbench run`.
		Run RunConfig `json:"run" mapstructure:"run"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Log configures diagnostics
		Log LogConfig `json:"log" mapstructure:"log"`
	}

	// OffscreenConfig is the offscreen surface size in pixels.
	OffscreenConfig struct {
		Width  int `json:"width" mapstructure:"width"`
		Height int `json:"height" mapstructure:"height"`
	}

	// RunConfig holds defaults applied when the command line leaves them out.
	RunConfig struct {
		// Prefix selects operations whose id starts with it. Empty selects all.
		Prefix string `json:"prefix" mapstructure:"prefix"`
		// Suites lists the suites to run. Empty runs every registered suite.
		Suites []string `json:"suites" mapstructure:"suites"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme ("auto", "dark", "light")
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// LogConfig configures diagnostics.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Offscreen: OffscreenConfig{
			Width:  DefaultDimension,
			Height: DefaultDimension,
		},
		Run: RunConfig{
			Prefix: "",
			Suites: []string{},
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Log: LogConfig{
			Level: LogLevelInfo,
		},
	}
}

// IsValid returns whether the Config has valid fields. The CUE schema
// already checks file contents; this also covers GLBENCH_* overrides.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Offscreen.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Run.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig and the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// IsValid checks both dimensions.
func (c OffscreenConfig) IsValid() (bool, []error) {
	var errs []error
	if c.Width < 1 || c.Width > MaxDimension {
		errs = append(errs, &InvalidDimensionError{Field: "offscreen.width", Value: c.Width})
	}
	if c.Height < 1 || c.Height > MaxDimension {
		errs = append(errs, &InvalidDimensionError{Field: "offscreen.height", Value: c.Height})
	}
	return len(errs) == 0, errs
}

// Error implements the error interface for InvalidDimensionError.
func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("%s = %d: must be between 1 and %d", e.Field, e.Value, MaxDimension)
}

// Unwrap returns ErrInvalidDimension for errors.Is() compatibility.
func (e *InvalidDimensionError) Unwrap() error { return ErrInvalidDimension }

// IsValid rejects blank suite names.
func (c RunConfig) IsValid() (bool, []error) {
	var errs []error
	for i, name := range c.Suites {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, &InvalidSuiteNameError{Index: i})
		}
	}
	return len(errs) == 0, errs
}

// Error implements the error interface for InvalidSuiteNameError.
func (e *InvalidSuiteNameError) Error() string {
	return fmt.Sprintf("run.suites[%d]: suite name must not be empty", e.Index)
}

// Unwrap returns ErrInvalidSuiteName for errors.Is() compatibility.
func (e *InvalidSuiteNameError) Unwrap() error { return ErrInvalidSuiteName }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined schemes.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Level converts the configured level for use with a charmbracelet logger.
func (l LogLevel) Level() (log.Level, error) {
	if valid, errs := l.IsValid(); !valid {
		return log.InfoLevel, errs[0]
	}
	return log.ParseLevel(string(l))
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error {
	return ErrInvalidLogLevel
}
