// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gs1kit/gs1kit/pkg/checkdigit"
	"github.com/gs1kit/gs1kit/pkg/gtin"

	"github.com/spf13/cobra"
)

type (
	gtinCreateOptions struct {
		prefix   string
		typ      string
		level    int
		levelSet bool
	}

	gtinView struct {
		GTIN           string `json:"gtin" yaml:"gtin" toml:"gtin"`
		Type           string `json:"type" yaml:"type" toml:"type"`
		PackagingLevel int    `json:"packaging_level" yaml:"packaging_level" toml:"packaging_level"`
		CompanyPrefix  string `json:"company_prefix" yaml:"company_prefix" toml:"company_prefix"`
		ItemReference  string `json:"item_reference" yaml:"item_reference" toml:"item_reference"`
		CheckDigit     int    `json:"check_digit" yaml:"check_digit" toml:"check_digit"`
		GTIN14         string `json:"gtin14" yaml:"gtin14" toml:"gtin14"`
	}

	gtinValidationView struct {
		Number string `json:"number" yaml:"number" toml:"number"`
		Type   string `json:"type" yaml:"type" toml:"type"`
		Valid  bool   `json:"valid" yaml:"valid" toml:"valid"`
		Error  string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
	}

	checkDigitView struct {
		Base       string `json:"base" yaml:"base" toml:"base"`
		CheckDigit int    `json:"check_digit" yaml:"check_digit" toml:"check_digit"`
		Number     string `json:"number" yaml:"number" toml:"number"`
	}

	maxDigitsView struct {
		Type      string `json:"type" yaml:"type" toml:"type"`
		MaxDigits int    `json:"max_digits" yaml:"max_digits" toml:"max_digits"`
		Length    int    `json:"length" yaml:"length" toml:"length"`
	}
)

// newGTINCommand creates the `gs1kit gtin` command tree.
func newGTINCommand(app *App) *cobra.Command {
	gtinCmd := &cobra.Command{
		Use:   "gtin",
		Short: "Create and check GTIN numbers",
		Long: `Create and check Global Trade Item Numbers.

Supported types are GTIN-8 (EAN-8), GTIN-12 (UPC-A), GTIN-13 (EAN-13) and
GTIN-14 (EAN-14, ITF-14). Type names are case-insensitive.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	gtinCmd.AddCommand(newGTINCreateCommand(app))
	var validateType string
	validateCmd := &cobra.Command{
		Use:   "validate <number>",
		Short: "Check the length and check digit of a GTIN",
		Long: `Check the length and check digit of a GTIN.

The type is inferred from the number of digits unless --type is given.
Exits with status 1 when the number is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.validateGTIN(args[0], validateType)
		},
	}
	validateCmd.Flags().StringVarP(&validateType, "type", "t", "", "GTIN type (default inferred from the length)")
	gtinCmd.AddCommand(validateCmd)

	gtinCmd.AddCommand(&cobra.Command{
		Use:     "check-digit <base>",
		Short:   "Compute the GS1 mod-10 check digit of a digit string",
		Example: "  gs1kit gtin check-digit 1001234567890",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.checkDigit(args[0])
		},
	})

	gtinCmd.AddCommand(&cobra.Command{
		Use:   "max-digits <type>",
		Short: "Show how many digits the company prefix and item reference may use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.maxDigits(args[0])
		},
	})

	return gtinCmd
}

func newGTINCreateCommand(app *App) *cobra.Command {
	var opts gtinCreateOptions

	createCmd := &cobra.Command{
		Use:   "create <item-number>",
		Short: "Create a GTIN from an item number and company prefix",
		Long: `Create a GTIN from an item number and company prefix.

The item number is left-padded with zeros to fill the digits the type leaves
after the company prefix, and the check digit is appended. GTIN-14 numbers start
with the packaging level as indicator digit.`,
		Example: `  gs1kit gtin create 45678 --prefix 614141
  gs1kit gtin create 1 --prefix 614141 --type UPC-A
  gs1kit gtin create 1 --prefix 614141 --level 3 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.levelSet = cmd.Flags().Changed("level")
			return app.createGTIN(args[0], opts)
		},
	}

	createCmd.Flags().StringVarP(&opts.prefix, "prefix", "p", "", "company prefix (default from config)")
	createCmd.Flags().StringVarP(&opts.typ, "type", "t", "", "GTIN type (default from config)")
	createCmd.Flags().IntVarP(&opts.level, "level", "l", 0, "packaging level, the GTIN-14 indicator digit (default from config)")

	return createCmd
}

func (a *App) createGTIN(itemArg string, opts gtinCreateOptions) error {
	item, err := strconv.Atoi(itemArg)
	if err != nil {
		return actionable("create GTIN", itemArg,
			fmt.Errorf("item number %q is not a number: %w", itemArg, gtin.ErrInvalidInput),
			"Pass the item number as plain digits")
	}

	prefix := opts.prefix
	if prefix == "" {
		prefix = string(a.cfg.CompanyPrefix)
	}

	t := a.cfg.DefaultType
	if opts.typ != "" {
		if t, err = gtin.ParseType(opts.typ); err != nil {
			return actionable("create GTIN", itemArg, err)
		}
	}

	level := a.cfg.PackagingLevel
	if opts.levelSet {
		level = opts.level
	}

	n, err := gtin.Create(item, prefix, t, gtin.WithPackagingLevel(level))
	if err != nil {
		return actionable("create GTIN", itemArg, err,
			fmt.Sprintf("%s leaves %d digits for the company prefix and item number", t, gtin.MaxDigits(t)))
	}
	a.logger.Debug("created GTIN", "number", n.String(), "type", n.Type(), "prefix", prefix)

	return a.write(newGTINView(n), func(w io.Writer) error {
		_, err := fmt.Fprintln(w, n.String())
		return err
	})
}

func (a *App) validateGTIN(number, typ string) error {
	var t gtin.Type
	if typ != "" {
		parsed, err := gtin.ParseType(typ)
		if err != nil {
			return actionable("validate GTIN", number, err)
		}
		t = parsed
	} else {
		inferred, ok := gtin.TypeForLength(len(number))
		if !ok {
			return actionable("validate GTIN", number,
				fmt.Errorf("cannot infer the type of a %d-digit number: %w", len(number), gtin.ErrInvalidInput),
				"GTINs have 8, 12, 13 or 14 digits",
				"Pass the type explicitly with --type")
		}
		t = inferred
	}

	view := gtinValidationView{Number: number, Type: t.String(), Valid: gtin.Validate(number, t)}
	var reason error
	if !view.Valid {
		if _, reason = gtin.Parse(number, t); reason != nil {
			view.Error = reason.Error()
		}
	}

	if err := a.write(view, func(w io.Writer) error {
		if view.Valid {
			_, err := fmt.Fprintf(w, "%s %s is a valid %s\n", SuccessStyle.Render("✓"), number, t)
			return err
		}
		_, err := fmt.Fprintf(w, "%s %s is not a valid %s: %s\n", ErrorStyle.Render("✗"), number, t, view.Error)
		return err
	}); err != nil {
		return err
	}

	if !view.Valid {
		a.logger.Debug("validation failed", "number", number, "type", t, "error", reason)
		return &ExitError{Code: 1}
	}
	return nil
}

func (a *App) checkDigit(base string) error {
	digit, err := checkdigit.Compute(base)
	if err != nil {
		return actionable("compute check digit", base, err)
	}

	view := checkDigitView{Base: base, CheckDigit: digit, Number: base + strconv.Itoa(digit)}
	return a.write(view, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, digit)
		return err
	})
}

func (a *App) maxDigits(typ string) error {
	t, err := gtin.ParseType(typ)
	if err != nil {
		return actionable("look up GTIN type", typ, err)
	}

	view := maxDigitsView{Type: t.String(), MaxDigits: gtin.MaxDigits(t), Length: t.Length()}
	return a.write(view, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, view.MaxDigits)
		return err
	})
}

func newGTINView(n gtin.Number) gtinView {
	return gtinView{
		GTIN:           n.String(),
		Type:           n.Type().String(),
		PackagingLevel: n.PackagingLevel(),
		CompanyPrefix:  n.CompanyPrefix(),
		ItemReference:  n.ItemReference(),
		CheckDigit:     n.CheckDigit(),
		GTIN14:         n.GTIN14(),
	}
}
