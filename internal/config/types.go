// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidPluginDirPath is returned when a PluginDirPath value is whitespace-only.
	ErrInvalidPluginDirPath = errors.New("invalid plugin dir path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// PluginDirPath represents a filesystem path to a plugin search directory.
	// A valid path must be non-empty and not whitespace-only.
	PluginDirPath string

	// InvalidPluginDirPathError is returned when a PluginDirPath value is
	// empty or whitespace-only. It wraps ErrInvalidPluginDirPath for errors.Is().
	InvalidPluginDirPathError struct {
		Value PluginDirPath
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// PluginDirs lists additional plugin search directories, consulted
		// after the built-in ~/.gearbox/plugins location.
		PluginDirs []PluginDirPath `json:"plugin_dirs" mapstructure:"plugin_dirs"`
		// Base is the runtime-wide base configuration handed to dispatch.
		Base map[string]any `json:"base" mapstructure:"base"`
		// Plugins maps plugin names to default overrides applied on top of
		// each plugin's own declared defaults.
		Plugins map[string]map[string]any `json:"plugins" mapstructure:"plugins"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
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

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the PluginDirPath.
func (p PluginDirPath) String() string { return string(p) }

// IsValid returns whether the PluginDirPath is valid.
// A valid path must be non-empty and not whitespace-only.
func (p PluginDirPath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidPluginDirPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPluginDirPathError.
func (e *InvalidPluginDirPathError) Error() string {
	return fmt.Sprintf("invalid plugin dir path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidPluginDirPath for errors.Is() compatibility.
func (e *InvalidPluginDirPathError) Unwrap() error { return ErrInvalidPluginDirPath }

// IsValid returns whether the Config has valid fields.
// It delegates to each PluginDirs entry's IsValid() and UI.ColorScheme.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	for _, dir := range c.PluginDirs {
		if valid, fieldErrs := dir.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// RuntimeDefaults converts the per-plugin override sections into the shape
// the toolkit runtime expects. Returns nil when no overrides are configured.
func (c Config) RuntimeDefaults() map[string]map[string]any {
	if len(c.Plugins) == 0 {
		return nil
	}
	out := make(map[string]map[string]any, len(c.Plugins))
	for name, section := range c.Plugins {
		out[name] = section
	}
	return out
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		PluginDirs: []PluginDirPath{},
		Base:       map[string]any{},
		Plugins:    map[string]map[string]any{},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
