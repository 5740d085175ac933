// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gs1kit/gs1kit/internal/config"
	"github.com/gs1kit/gs1kit/internal/issue"

	"github.com/spf13/cobra"
)

type (
	configView struct {
		CompanyPrefix  string   `json:"company_prefix" yaml:"company_prefix" toml:"company_prefix"`
		DefaultType    string   `json:"default_type" yaml:"default_type" toml:"default_type"`
		PackagingLevel int      `json:"packaging_level" yaml:"packaging_level" toml:"packaging_level"`
		Codes          []string `json:"codes" yaml:"codes" toml:"codes"`
		OutputFormat   string   `json:"output_format" yaml:"output_format" toml:"output_format"`
		ColorScheme    string   `json:"color_scheme" yaml:"color_scheme" toml:"color_scheme"`
		Verbose        bool     `json:"verbose" yaml:"verbose" toml:"verbose"`
	}

	configPathView struct {
		Dir     string `json:"dir" yaml:"dir" toml:"dir"`
		Default string `json:"default" yaml:"default" toml:"default"`
		Loaded  string `json:"loaded" yaml:"loaded" toml:"loaded"`
	}

	configInitView struct {
		Path    string `json:"path" yaml:"path" toml:"path"`
		Created bool   `json:"created" yaml:"created" toml:"created"`
	}
)

// newConfigCommand creates the `gs1kit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gs1kit configuration",
		Long: `Manage gs1kit configuration.

Configuration is read from ` + "`config.cue`" + ` in the gs1kit config directory, or
from the current directory. Every key can be overridden with a GS1KIT_ environment
variable, e.g. GS1KIT_COMPANY_PREFIX or GS1KIT_OUTPUT_FORMAT.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:         "path",
		Short:       "Show where configuration is read from",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:         "init",
		Short:       "Write a default configuration file",
		Long:        "Write a default configuration file to the config directory. An existing file is left untouched.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.initConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(app.stdout, config.GenerateCUE(app.cfg))
			return err
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:         "schema",
		Short:       "Print the CUE schema of the configuration",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(app.stdout, config.Schema())
			return err
		},
	})

	return configCmd
}

func (a *App) showConfig() error {
	cfg := a.cfg
	codes := make([]string, 0, len(cfg.Codes))
	for _, c := range cfg.Codes {
		codes = append(codes, string(c))
	}
	view := configView{
		CompanyPrefix:  cfg.CompanyPrefix.String(),
		DefaultType:    string(cfg.DefaultType),
		PackagingLevel: cfg.PackagingLevel,
		Codes:          codes,
		OutputFormat:   string(cfg.Output.Format),
		ColorScheme:    string(cfg.UI.ColorScheme),
		Verbose:        cfg.UI.Verbose,
	}

	return a.write(view, func(w io.Writer) error {
		prefix := view.CompanyPrefix
		if prefix == "" {
			prefix = SubtitleStyle.Render("(none)")
		}
		codeList := strings.Join(view.Codes, ", ")
		if codeList == "" {
			codeList = SubtitleStyle.Render("(all)")
		}
		return writeKeyValues(w, [][2]string{
			{"company_prefix", prefix},
			{"default_type", view.DefaultType},
			{"packaging_level", strconv.Itoa(view.PackagingLevel)},
			{"codes", codeList},
			{"output.format", view.OutputFormat},
			{"ui.color_scheme", view.ColorScheme},
			{"ui.verbose", strconv.FormatBool(view.Verbose)},
		})
	})
}

func (a *App) showConfigPath() error {
	opts := a.loadOptions()

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		if dir, err = config.ConfigDir(); err != nil {
			return actionableWithIssue(issue.ConfigLoadFailedId, "locate config directory", "", err)
		}
	}
	defaultPath, err := config.DefaultPath(opts)
	if err != nil {
		return actionableWithIssue(issue.ConfigLoadFailedId, "locate config directory", "", err)
	}
	loaded, err := config.ResolvePath(opts)
	if err != nil {
		return actionable("locate config file", opts.ConfigFilePath, err)
	}

	view := configPathView{Dir: dir, Default: defaultPath, Loaded: loaded}
	return a.write(view, func(w io.Writer) error {
		shown := loaded
		if shown == "" {
			shown = SubtitleStyle.Render("(none, using defaults)")
		}
		return writeKeyValues(w, [][2]string{
			{"dir", dir},
			{"default", defaultPath},
			{"loaded", shown},
		})
	})
}

func (a *App) initConfig() error {
	path, created, err := config.CreateDefaultConfig(a.loadOptions())
	if err != nil {
		return actionableWithIssue(issue.ConfigLoadFailedId, "write default config", path, err)
	}
	if created {
		a.logger.Debug("wrote default configuration", "path", path)
	}

	view := configInitView{Path: path, Created: created}
	return a.write(view, func(w io.Writer) error {
		if !created {
			_, err := fmt.Fprintf(w, "%s %s already exists\n", WarningStyle.Render("!"), path)
			return err
		}
		_, err := fmt.Fprintf(w, "%s wrote %s\n", SuccessStyle.Render("✓"), path)
		return err
	})
}
