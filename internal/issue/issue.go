// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	FileNotFoundId Id = iota + 1
	InvalidInputId
	InvalidCheckDigitId
	FieldOverflowId
	InvalidGtinTypeId
	InvalidElementStringId
	InvalidFieldId
	LabelFileInvalidId
	ConfigLoadFailedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to look the issue up
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink  // GS1 documentation for the issue
		extLinks []HttpLink  // other links that might help
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue with the glamour style at stylePath ("auto", "dark",
// "light", "notty" or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
		for _, link := range i.extLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	fileNotFoundIssue = &Issue{
		id: FileNotFoundId,
		mdMsg: `
# File not found!

The file you passed does not exist or cannot be read.

## Things you can try:
- Check the path for typos
- Run the command from the directory that holds the file`,
	}

	invalidInputIssue = &Issue{
		id: InvalidInputId,
		mdMsg: `
# Digits expected!

Item numbers, company prefixes and GTINs may only contain the digits 0-9.

## Things you can try:
- Remove spaces, dashes and letters from the number
- Keep leading zeros of the company prefix by quoting it:
~~~
$ gs1kit gtin create 45678 --prefix "0614141"
~~~`,
		docLinks: []HttpLink{"https://www.gs1.org/standards/id-keys/gtin"},
	}

	invalidCheckDigitIssue = &Issue{
		id: InvalidCheckDigitId,
		mdMsg: `
# Check digit does not match!

The last digit of a GTIN is computed from the digits before it. The number you
supplied ends with a different digit, so at least one digit was mistyped.

## Things you can try:
- Compute the correct check digit:
~~~
$ gs1kit gtin check-digit 1001234567890
~~~

- Pass the number without its check digit and let gs1kit add it:
~~~
$ gs1kit gtin create 1234567890 --prefix 001 --type GTIN-14
~~~`,
		docLinks: []HttpLink{"https://www.gs1.org/services/how-calculate-check-digit-manually"},
	}

	fieldOverflowIssue = &Issue{
		id: FieldOverflowId,
		mdMsg: `
# Number too long!

The company prefix and item number together exceed the digits available for this
GTIN type. Excluding the check digit and the GTIN-14 indicator, the budget is:

| Type    | Digits |
|---------|--------|
| GTIN-8  | 7      |
| GTIN-12 | 11     |
| GTIN-13 | 12     |
| GTIN-14 | 12     |

## Things you can try:
- Use a longer GTIN type with ` + "`--type`" + `
- Check that the company prefix is the one assigned to you
- Inspect the budget:
~~~
$ gs1kit gtin max-digits GTIN-12
~~~`,
	}

	invalidGtinTypeIssue = &Issue{
		id: InvalidGtinTypeId,
		mdMsg: `
# Unknown GTIN type!

## Accepted types:
- GTIN-8 (alias EAN-8)
- GTIN-12 (alias UPC-A)
- GTIN-13 (alias EAN-13)
- GTIN-14 (aliases EAN-14, ITF-14)

Type names are case-insensitive.`,
	}

	invalidElementStringIssue = &Issue{
		id: InvalidElementStringId,
		mdMsg: `
# Element string could not be read!

Some part of the element string does not match a supported Application Identifier.

## Things you can try:
- List the supported AIs and their formats:
~~~
$ gs1kit gs1 ais
~~~

- Put each AI in brackets, e.g. ` + "`(01)10012345678902(10)ABC123`" + `
- Separate variable-length values (batch, serial, count) from the next AI with a
  bracket or a GS character
- Drop ` + "`--strict`" + ` to ignore unknown segments`,
		docLinks: []HttpLink{"https://ref.gs1.org/ai/"},
	}

	invalidFieldIssue = &Issue{
		id: InvalidFieldId,
		mdMsg: `
# Invalid field value!

A value does not fit the format of its Application Identifier.

## Formats:
- SSCC (00): 18 digits with a valid check digit
- GTIN (01), content (02): 14 digits
- batch (10), serial (21): up to 20 letters, digits, '-', '.' or '/'
- dates (11), (17): YYMMDD, day 00 means end of month
- weights (3102), (3302): 0 to 9999.99 kg with at most 2 decimals
- count (37): 1 to 99999999`,
		docLinks: []HttpLink{"https://ref.gs1.org/ai/"},
	}

	labelFileInvalidIssue = &Issue{
		id: LabelFileInvalidId,
		mdMsg: `
# Label file is invalid!

The label file does not match the label schema, or one of its labels cannot be
encoded. Errors name the failing label, e.g. ` + "`labels[2].batch`" + `.

## Things you can try:
- Validate the file without encoding:
~~~
$ gs1kit labels validate labels.cue
~~~

## Example label file:
~~~cue
defaults: {
	company_prefix: "614141"
	type:           "GTIN-14"
}
labels: [{
	name:            "case of 12"
	item_number:     45678
	batch:           "ABC123"
	net_weight_kg:   7.25
	expiration_date: "250630"
}]
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Things you can try:
- Show where gs1kit looks for its configuration:
~~~
$ gs1kit config path
~~~

- Write a fresh default configuration:
~~~
$ gs1kit config init
~~~

- Check the values against the schema:
~~~
$ gs1kit config dump
~~~`,
	}

	issues = map[Id]*Issue{
		fileNotFoundIssue.Id():         fileNotFoundIssue,
		invalidInputIssue.Id():         invalidInputIssue,
		invalidCheckDigitIssue.Id():    invalidCheckDigitIssue,
		fieldOverflowIssue.Id():        fieldOverflowIssue,
		invalidGtinTypeIssue.Id():      invalidGtinTypeIssue,
		invalidElementStringIssue.Id(): invalidElementStringIssue,
		invalidFieldIssue.Id():         invalidFieldIssue,
		labelFileInvalidIssue.Id():     labelFileInvalidIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	values := maps.Values(issues)
	slices.SortFunc(values, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
