// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gs1kit/gs1kit/internal/config"
	"github.com/gs1kit/gs1kit/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand creates the gs1kit command tree bound to app.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gs1kit",
		Short: "GTIN and GS1-128 element string toolkit",
		Long: TitleStyle.Render("gs1kit") + SubtitleStyle.Render(" - GTIN and GS1-128 element string toolkit") + `

gs1kit builds and checks GTIN-8, GTIN-12, GTIN-13 and GTIN-14 numbers, and
parses and encodes the GS1 element strings printed on GS1-128 logistics labels.
The encoded payload can be handed to any barcode renderer.

` + SubtitleStyle.Render("Examples:") + `
  gs1kit gtin create 45678 --prefix 614141       Create a GTIN-14
  gs1kit gtin validate 10012345678902            Check a GTIN
  gs1kit gs1 parse "(01)10012345678902(10)ABC"   Decode an element string
  gs1kit gs1 encode --gtin 10012345678902 --batch ABC --net-weight 7.25
  gs1kit labels encode labels.cue                Encode a batch of labels`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable debug logging and full error chains")
	rootCmd.PersistentFlags().StringVar(&app.flags.configPath, "config", "", "config file (default is $HOME/.config/gs1kit/config.cue)")
	rootCmd.PersistentFlags().StringVar(&app.flags.format, "format", "", "output format: text, json, yaml or toml (default from config)")

	rootCmd.AddCommand(newGTINCommand(app))
	rootCmd.AddCommand(newGS1Command(app))
	rootCmd.AddCommand(newLabelsCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// prepare loads the configuration and applies it together with the global flags.
// Flags take precedence over configuration values.
func (a *App) prepare(cmd *cobra.Command) error {
	opts := a.loadOptions()
	cfg, err := a.Config.Load(cmd.Context(), opts)
	if err != nil {
		if cmd.Annotations[skipConfigAnnotation] == "" {
			return err
		}
		a.logger.Warn("using default configuration", "error", err)
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	a.verbose = a.flags.verbose || cfg.UI.Verbose
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	format := cfg.Output.Format
	if a.flags.format != "" {
		format = config.OutputFormat(strings.ToLower(a.flags.format))
	}
	if valid, errs := format.IsValid(); !valid {
		return issue.NewErrorContext().
			WithOperation("select output format").
			WithResource(string(format)).
			WithSuggestion("Use one of: text, json, yaml, toml").
			Wrap(errors.Join(errs...)).
			BuildError()
	}
	a.format = format

	if a.verbose {
		if path, pathErr := config.ResolvePath(opts); pathErr == nil && path != "" {
			a.logger.Debug("loaded configuration", "path", path)
		}
	}

	return nil
}
