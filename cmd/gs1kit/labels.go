// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/gs1kit/gs1kit/internal/issue"
	"github.com/gs1kit/gs1kit/pkg/labelfile"

	"github.com/spf13/cobra"
)

type (
	labelsView struct {
		File   string              `json:"file" yaml:"file" toml:"file"`
		Labels []labelfile.Result `json:"labels" yaml:"labels" toml:"labels"`
	}

	labelsValidationView struct {
		File   string `json:"file" yaml:"file" toml:"file"`
		Labels int    `json:"labels" yaml:"labels" toml:"labels"`
		Valid  bool   `json:"valid" yaml:"valid" toml:"valid"`
	}
)

// newLabelsCommand creates the `gs1kit labels` command tree.
func newLabelsCommand(app *App) *cobra.Command {
	labelsCmd := &cobra.Command{
		Use:   "labels",
		Short: "Encode batches of labels from a CUE file",
		Long: `Encode batches of labels from a CUE file.

The file's defaults block falls back to the configured company prefix, GTIN type,
packaging level and codes. Run 'gs1kit labels schema' to print the file schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	labelsCmd.AddCommand(&cobra.Command{
		Use:     "encode <file>",
		Short:   "Encode every label in a file",
		Example: `  gs1kit labels encode labels.cue --format json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.encodeLabels(args[0])
		},
	})

	labelsCmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Check a label file without printing the encoded labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.validateLabels(args[0])
		},
	})

	labelsCmd.AddCommand(&cobra.Command{
		Use:         "schema",
		Short:       "Print the CUE schema of label files",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(app.stdout, labelfile.Schema())
			return err
		},
	})

	return labelsCmd
}

func (a *App) encodeLabels(path string) error {
	f, err := a.readLabels(path)
	if err != nil {
		return err
	}

	results, encodeErr := labelfile.Encode(f)
	a.logger.Debug("encoded labels", "file", path, "ok", len(results), "total", len(f.Labels))

	view := labelsView{File: path, Labels: results}
	if len(results) > 0 {
		writeErr := a.write(view, func(w io.Writer) error {
			return writeLabels(w, results)
		})
		if writeErr != nil {
			return writeErr
		}
	}

	if encodeErr != nil {
		return actionableWithIssue(issue.LabelFileInvalidId, "encode labels", path, encodeErr,
			fmt.Sprintf("Fix the failing labels and run 'gs1kit labels validate %s'", path))
	}
	return nil
}

func (a *App) validateLabels(path string) error {
	f, err := a.readLabels(path)
	if err != nil {
		return err
	}
	if _, err := labelfile.Encode(f); err != nil {
		return actionableWithIssue(issue.LabelFileInvalidId, "validate labels", path, err)
	}

	view := labelsValidationView{File: path, Labels: len(f.Labels), Valid: true}
	return a.write(view, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s: %d labels\n", SuccessStyle.Render("✓"), path, len(f.Labels))
		return err
	})
}

// readLabels parses the label file and fills its defaults from the configuration.
func (a *App) readLabels(path string) (*labelfile.LabelFile, error) {
	f, err := labelfile.ParseFile(path)
	if err != nil {
		id := issue.LabelFileInvalidId
		if issueFor(err) == issue.FileNotFoundId {
			id = issue.FileNotFoundId
		}
		return nil, actionableWithIssue(id, "read labels", path, err)
	}

	d := &f.Defaults
	if d.CompanyPrefix == "" {
		d.CompanyPrefix = a.cfg.CompanyPrefix.String()
	}
	if d.Type == "" {
		d.Type = a.cfg.DefaultType
	}
	if d.PackagingLevel == nil {
		level := a.cfg.PackagingLevel
		d.PackagingLevel = &level
	}
	if len(d.Codes) == 0 {
		d.Codes = a.cfg.Codes
	}
	return f, nil
}

func writeLabels(w io.Writer, results []labelfile.Result) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Name, r.GTIN, r.ElementString})
	}
	return writeTable(w, []string{"Name", "GTIN", "Element string"}, rows)
}
