// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/gs1kit/gs1kit/pkg/checkdigit"
	"github.com/gs1kit/gs1kit/pkg/gs1"
	"github.com/gs1kit/gs1kit/pkg/gtin"
)

const (
	// OutputFormatText prints human-readable tables.
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON prints JSON documents.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML prints YAML documents.
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatTOML prints TOML documents.
	OutputFormatTOML OutputFormat = "toml"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	maxCompanyPrefixLength = 12
)

var (
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidCompanyPrefix is the sentinel error wrapped by InvalidCompanyPrefixError.
	ErrInvalidCompanyPrefix = errors.New("invalid company prefix")
	// ErrInvalidCode is the sentinel error wrapped by InvalidCodeError.
	ErrInvalidCode = errors.New("invalid application identifier")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// OutputFormat selects how commands print their results.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	// It wraps ErrInvalidOutputFormat for errors.Is() compatibility.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// CompanyPrefix is a GS1 company prefix of 1 to 12 digits.
	// The zero value ("") is valid and means "no default prefix".
	CompanyPrefix string

	// InvalidCompanyPrefixError is returned when a CompanyPrefix is not a run of
	// 1 to 12 digits. It wraps ErrInvalidCompanyPrefix and the digit-level cause.
	InvalidCompanyPrefixError struct {
		Value CompanyPrefix
		Cause error
	}

	// InvalidCodeError is returned for an AI the codec does not support.
	InvalidCodeError struct {
		Value gs1.AI
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// CompanyPrefix is used when a command or label does not name one.
		CompanyPrefix CompanyPrefix `json:"company_prefix" mapstructure:"company_prefix"`
		// DefaultType is the GTIN type used when none is given.
		DefaultType gtin.Type `json:"default_type" mapstructure:"default_type"`
		// PackagingLevel is the GTIN-14 indicator digit used when none is given.
		PackagingLevel int `json:"packaging_level" mapstructure:"packaging_level"`
		// Codes selects the AIs printed by 'gs1 encode'; empty means every present field.
		Codes []gs1.AI `json:"codes" mapstructure:"codes"`
		// Output configures result printing
		Output OutputConfig `json:"output" mapstructure:"output"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// OutputConfig configures how results are printed.
	OutputConfig struct {
		// Format is one of text, json, yaml or toml
		Format OutputFormat `json:"format" mapstructure:"format"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging and full error chains
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats,
// and a list of validation errors if it is not.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML, OutputFormatTOML:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, yaml, toml)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

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
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the CompanyPrefix.
func (p CompanyPrefix) String() string { return string(p) }

// IsValid returns whether the CompanyPrefix is empty or 1 to 12 digits.
func (p CompanyPrefix) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if err := checkdigit.CheckDigits(string(p)); err != nil {
		return false, []error{&InvalidCompanyPrefixError{Value: p, Cause: err}}
	}
	if len(p) > maxCompanyPrefixLength {
		return false, []error{&InvalidCompanyPrefixError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCompanyPrefixError.
func (e *InvalidCompanyPrefixError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid company prefix %q: %v", e.Value, e.Cause)
	}
	return fmt.Sprintf("invalid company prefix %q: at most %d digits", e.Value, maxCompanyPrefixLength)
}

// Unwrap returns ErrInvalidCompanyPrefix and the cause, if any.
func (e *InvalidCompanyPrefixError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrInvalidCompanyPrefix, e.Cause}
	}
	return []error{ErrInvalidCompanyPrefix}
}

// Error implements the error interface for InvalidCodeError.
func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("unsupported application identifier %q", e.Value)
}

// Unwrap returns ErrInvalidCode for errors.Is() compatibility.
func (e *InvalidCodeError) Unwrap() error { return ErrInvalidCode }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig and the field errors for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() []error {
	return append([]error{ErrInvalidUIConfig}, e.FieldErrors...)
}

// IsValid returns whether the Config has valid fields.
// Environment overrides bypass the CUE schema, so every field is checked here.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.CompanyPrefix.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if err := c.DefaultType.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.PackagingLevel < 0 || c.PackagingLevel > 9 {
		errs = append(errs, &gtin.InvalidPackagingLevelError{Value: c.PackagingLevel})
	}
	for _, code := range c.Codes {
		if def, ok := gs1.Lookup(code); !ok || def.InputOnly {
			errs = append(errs, &InvalidCodeError{Value: code})
		}
	}
	if valid, fieldErrs := c.Output.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		CompanyPrefix:  "",
		DefaultType:    gtin.GTIN14,
		PackagingLevel: gtin.DefaultPackagingLevel,
		Codes:          []gs1.AI{},
		Output: OutputConfig{
			Format: OutputFormatText,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
