// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gs1kit/gs1kit/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// write prints v in the selected structured format, or calls text for the text format.
// TOML documents must be tables, so v is always a struct.
func (a *App) write(v any, text func(w io.Writer) error) error {
	switch a.format {
	case config.OutputFormatJSON:
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputFormatYAML:
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case config.OutputFormatTOML:
		if err := toml.NewEncoder(a.stdout).Encode(v); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
		return nil
	default:
		return text(a.stdout)
	}
}

// writeTable prints rows under headers with the shared table styles.
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// writeKeyValues prints aligned "key: value" lines.
func writeKeyValues(w io.Writer, pairs [][2]string) error {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0]))
	}
	for _, p := range pairs {
		key := KeyStyle.Render(fmt.Sprintf("%-*s", width, p[0]))
		if _, err := fmt.Fprintf(w, "%s  %s\n", key, p[1]); err != nil {
			return err
		}
	}
	return nil
}
