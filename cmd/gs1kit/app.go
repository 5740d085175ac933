// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/gs1kit/gs1kit/internal/config"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: all Cobra command handlers receive an App reference.
	App struct {
		Config ConfigProvider

		stdout    io.Writer
		stderr    io.Writer
		logger    *log.Logger
		now       func() time.Time
		configDir string

		// Set by the root command before every run.
		flags   rootFlags
		cfg     *config.Config
		verbose bool
		format  config.OutputFormat
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
		// Now resolves two-digit years of GS1 dates. Defaults to time.Now.
		Now func() time.Time
		// ConfigDir overrides the platform config directory.
		ConfigDir string
	}

	// ConfigProvider loads configuration using explicit options.
	// This abstraction enables testing with custom config sources or mock implementations.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	rootFlags struct {
		configPath string
		verbose    bool
		format     string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &App{
		Config:    deps.Config,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		logger:    log.NewWithOptions(deps.Stderr, log.Options{Prefix: "gs1kit"}),
		now:       deps.Now,
		configDir: deps.ConfigDir,
		cfg:       config.DefaultConfig(),
		format:    config.OutputFormatText,
	}
}

// loadOptions returns the config sources selected by flags and dependencies.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: a.flags.configPath,
		ConfigDirPath:  a.configDir,
	}
}

// glamourStyle maps the configured color scheme to a glamour style name.
func (a *App) glamourStyle() string {
	if a.cfg == nil {
		return string(config.ColorSchemeAuto)
	}
	switch a.cfg.UI.ColorScheme {
	case config.ColorSchemeDark, config.ColorSchemeLight:
		return string(a.cfg.UI.ColorScheme)
	default:
		return string(config.ColorSchemeAuto)
	}
}
