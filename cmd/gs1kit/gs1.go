// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/gs1kit/gs1kit/pkg/gs1"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type (
	gs1EncodeOptions struct {
		sscc           string
		gtin           string
		content        string
		batch          string
		serial         string
		netWeight      string
		netWeightLb    string
		grossWeight    string
		productionDate string
		expirationDate string
		pieces         int
		codes          []string
		payload        bool
	}

	recordView struct {
		ElementString string        `json:"element_string" yaml:"element_string" toml:"element_string"`
		Payload       string        `json:"payload" yaml:"payload" toml:"payload"`
		Elements      []elementView `json:"elements" yaml:"elements" toml:"elements"`
	}

	elementView struct {
		AI      string `json:"ai" yaml:"ai" toml:"ai"`
		Title   string `json:"title" yaml:"title" toml:"title"`
		Value   string `json:"value" yaml:"value" toml:"value"`
		Decoded string `json:"decoded,omitempty" yaml:"decoded,omitempty" toml:"decoded,omitempty"`
	}

	getView struct {
		ElementString string   `json:"element_string" yaml:"element_string" toml:"element_string"`
		Codes         []string `json:"codes" yaml:"codes" toml:"codes"`
	}

	aisView struct {
		AIs []aiView `json:"ais" yaml:"ais" toml:"ais"`
	}

	aiView struct {
		AI        string `json:"ai" yaml:"ai" toml:"ai"`
		Title     string `json:"title" yaml:"title" toml:"title"`
		Format    string `json:"format" yaml:"format" toml:"format"`
		Kind      string `json:"kind" yaml:"kind" toml:"kind"`
		InputOnly bool   `json:"input_only" yaml:"input_only" toml:"input_only"`
	}
)

// newGS1Command creates the `gs1kit gs1` command tree.
func newGS1Command(app *App) *cobra.Command {
	gs1Cmd := &cobra.Command{
		Use:   "gs1",
		Short: "Parse and encode GS1 element strings",
		Long: `Parse and encode GS1 element strings.

Element strings may be bracketed, "(01)10012345678902(10)ABC123", raw GS1-128
data with GS separators, or a mix of both. A leading "]C1" symbology identifier
is ignored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var strict bool
	parseCmd := &cobra.Command{
		Use:   "parse <element-string>",
		Short: "Decode an element string",
		Long: `Decode an element string into its fields.

Unknown or malformed segments are skipped with a warning; --strict turns them
into an error.`,
		Example: `  gs1kit gs1 parse "(01)10012345678902(10)ABC123(17)250630"
  gs1kit gs1 parse --strict --format json "(00)106141411234567897(3102)000725"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.parseElementString(args[0], strict)
		},
	}
	parseCmd.Flags().BoolVar(&strict, "strict", false, "fail on unknown or malformed segments")
	gs1Cmd.AddCommand(parseCmd)

	gs1Cmd.AddCommand(newGS1EncodeCommand(app))

	gs1Cmd.AddCommand(&cobra.Command{
		Use:     "get <element-string> <ai>...",
		Short:   "Print only the given AIs of an element string, in the given order",
		Example: `  gs1kit gs1 get "(01)10012345678902(10)ABC123(17)250630" 17 01`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.getElements(args[0], args[1:])
		},
	})

	gs1Cmd.AddCommand(&cobra.Command{
		Use:   "ais",
		Short: "List the supported Application Identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.listAIs()
		},
	})

	return gs1Cmd
}

func newGS1EncodeCommand(app *App) *cobra.Command {
	var opts gs1EncodeOptions

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Build an element string from field values",
		Long: `Build an element string from field values.

Fields are validated and emitted in canonical order unless --codes selects and
orders them. Weights are kilograms with up to two decimals; --net-weight-lb is
converted to kilograms.`,
		Example: `  gs1kit gs1 encode --gtin 10012345678902 --batch ABC123 --net-weight 7.25
  gs1kit gs1 encode --sscc 106141411234567897 --net-weight-lb 50 --payload`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.encodeRecord(opts)
		},
	}

	flags := encodeCmd.Flags()
	flags.StringVar(&opts.sscc, "sscc", "", "serial shipping container code, AI 00")
	flags.StringVar(&opts.gtin, "gtin", "", "GTIN of the trade item, AI 01")
	flags.StringVar(&opts.content, "content", "", "GTIN of contained items, AI 02")
	flags.StringVar(&opts.batch, "batch", "", "batch or lot number, AI 10")
	flags.StringVar(&opts.serial, "serial", "", "serial number, AI 21")
	flags.StringVar(&opts.netWeight, "net-weight", "", "net weight in kg, AI 3102")
	flags.StringVar(&opts.netWeightLb, "net-weight-lb", "", "net weight in lb, stored as kg in AI 3102")
	flags.StringVar(&opts.grossWeight, "gross-weight", "", "gross weight in kg, AI 3302")
	flags.StringVar(&opts.productionDate, "production-date", "", "production date YYMMDD, AI 11")
	flags.StringVar(&opts.expirationDate, "expiration-date", "", "expiration date YYMMDD, AI 17")
	flags.IntVar(&opts.pieces, "pieces", 0, "count of items, AI 37")
	flags.StringSliceVar(&opts.codes, "codes", nil, "AIs to emit, in order (default from config, else all)")
	flags.BoolVar(&opts.payload, "payload", false, "print the raw GS1-128 payload instead of the bracketed form")

	return encodeCmd
}

func (a *App) parseElementString(input string, strict bool) error {
	var rec gs1.Record
	if strict {
		parsed, err := gs1.ParseStrict(input)
		if err != nil {
			return actionable("parse element string", input, err,
				"Run 'gs1kit gs1 ais' to list the supported AIs")
		}
		rec = parsed
	} else {
		for _, tok := range gs1.Tokenize(input) {
			if tok.Err != nil {
				a.logger.Warn("skipped segment", "offset", tok.Offset, "text", tok.Raw, "error", tok.Err)
			}
		}
		rec = gs1.Parse(input)
	}

	if rec.IsZero() {
		a.logger.Warn("no supported AI found", "input", input)
	}

	view := newRecordView(rec, a.now())
	return a.write(view, func(w io.Writer) error {
		return writeRecord(w, view)
	})
}

func (a *App) encodeRecord(opts gs1EncodeOptions) error {
	options, err := opts.recordOptions()
	if err != nil {
		return actionable("encode element string", "", err)
	}
	if len(options) == 0 {
		return actionable("encode element string", "", errNothingToEncode,
			"Pass at least one field, e.g. --gtin 10012345678902")
	}

	rec, err := gs1.New(options...)
	if err != nil {
		return actionable("encode element string", "", err)
	}

	codes, err := parseCodes(opts.codes)
	if err != nil {
		return actionable("encode element string", "", err)
	}
	if len(codes) == 0 {
		codes = a.cfg.Codes
	}

	view := newRecordView(rec, a.now())
	if len(codes) > 0 {
		view.ElementString = rec.Get(codes...)
		view.Payload = gs1.Parse(view.ElementString).Payload()
	}
	a.logger.Debug("encoded element string", "fields", len(view.Elements), "codes", codes)

	return a.write(view, func(w io.Writer) error {
		out := view.ElementString
		if opts.payload {
			out = view.Payload
		}
		_, err := fmt.Fprintln(w, out)
		return err
	})
}

func (a *App) getElements(input string, args []string) error {
	codes, err := parseCodes(args)
	if err != nil {
		return actionable("select elements", input, err,
			"Run 'gs1kit gs1 ais' to list the supported AIs")
	}

	out := gs1.Parse(input).Get(codes...)
	if out == "" {
		a.logger.Warn("none of the requested AIs is present", "codes", args)
	}

	view := getView{ElementString: out, Codes: args}
	return a.write(view, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, out)
		return err
	})
}

func (a *App) listAIs() error {
	defs := gs1.Definitions()
	view := aisView{AIs: make([]aiView, 0, len(defs))}
	rows := make([][]string, 0, len(defs))
	for _, d := range defs {
		view.AIs = append(view.AIs, aiView{
			AI:        string(d.AI),
			Title:     d.Title,
			Format:    d.Format(),
			Kind:      d.Kind.String(),
			InputOnly: d.InputOnly,
		})
		note := ""
		if d.InputOnly {
			note = "parse only"
		}
		rows = append(rows, []string{string(d.AI), d.Title, d.Format(), note})
	}

	return a.write(view, func(w io.Writer) error {
		return writeTable(w, []string{"AI", "Title", "Format", ""}, rows)
	})
}

// recordOptions converts the flag values into record options. Empty flags are skipped.
func (o gs1EncodeOptions) recordOptions() ([]gs1.Option, error) {
	var options []gs1.Option
	for _, field := range []struct {
		value string
		opt   func(string) gs1.Option
	}{
		{o.sscc, gs1.WithSSCC},
		{o.gtin, gs1.WithGTIN},
		{o.content, gs1.WithContent},
		{o.batch, gs1.WithBatch},
		{o.serial, gs1.WithSerial},
	} {
		if field.value != "" {
			options = append(options, field.opt(field.value))
		}
	}

	for _, weight := range []struct {
		name  string
		value string
		opt   func(decimal.Decimal) gs1.Option
	}{
		{"net-weight", o.netWeight, gs1.WithNetWeight},
		{"net-weight-lb", o.netWeightLb, gs1.WithNetWeightPounds},
		{"gross-weight", o.grossWeight, gs1.WithGrossWeight},
	} {
		if weight.value == "" {
			continue
		}
		d, err := decimal.NewFromString(weight.value)
		if err != nil {
			return nil, fmt.Errorf("--%s %q is not a number: %w", weight.name, weight.value, gs1.ErrInvalidField)
		}
		options = append(options, weight.opt(d))
	}

	if o.productionDate != "" {
		options = append(options, gs1.WithProductionDate(gs1.Date(o.productionDate)))
	}
	if o.expirationDate != "" {
		options = append(options, gs1.WithExpirationDate(gs1.Date(o.expirationDate)))
	}
	if o.pieces != 0 {
		options = append(options, gs1.WithPieces(o.pieces))
	}

	return options, nil
}

// parseCodes checks that every code names a supported AI.
func parseCodes(args []string) ([]gs1.AI, error) {
	codes := make([]gs1.AI, 0, len(args))
	for _, arg := range args {
		if _, ok := gs1.Lookup(gs1.AI(arg)); !ok {
			return nil, fmt.Errorf("%w %q", errUnknownAI, arg)
		}
		codes = append(codes, gs1.AI(arg))
	}
	return codes, nil
}

func newRecordView(rec gs1.Record, now time.Time) recordView {
	elements := rec.Elements()
	view := recordView{
		ElementString: rec.String(),
		Payload:       rec.Payload(),
		Elements:      make([]elementView, 0, len(elements)),
	}
	for _, e := range elements {
		view.Elements = append(view.Elements, elementView{
			AI:      string(e.AI),
			Title:   e.Title,
			Value:   e.Value,
			Decoded: decodedValue(rec, e.AI, now),
		})
	}
	return view
}

// decodedValue renders dates and weights for humans; other values need no decoding.
func decodedValue(rec gs1.Record, ai gs1.AI, now time.Time) string {
	switch ai {
	case gs1.AIProductionDate, gs1.AIExpirationDate:
		d := rec.ProductionDate
		if ai == gs1.AIExpirationDate {
			d = rec.ExpirationDate
		}
		t, err := d.Time(now)
		if err != nil {
			return ""
		}
		return t.Format(time.DateOnly)
	case gs1.AINetWeight:
		return rec.NetWeight.Decimal.StringFixed(2) + " kg"
	case gs1.AIGrossWeight:
		return rec.GrossWeight.Decimal.StringFixed(2) + " kg"
	default:
		return ""
	}
}

func writeRecord(w io.Writer, view recordView) error {
	if len(view.Elements) == 0 {
		_, err := fmt.Fprintln(w, SubtitleStyle.Render("(no elements)"))
		return err
	}

	rows := make([][]string, 0, len(view.Elements))
	for _, e := range view.Elements {
		rows = append(rows, []string{e.AI, e.Title, e.Value, e.Decoded})
	}
	if err := writeTable(w, []string{"AI", "Field", "Value", "Decoded"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s\n", KeyStyle.Render("Element string:"), view.ElementString)
	return err
}
