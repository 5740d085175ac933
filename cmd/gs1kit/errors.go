// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gs1kit/gs1kit/internal/issue"
	"github.com/gs1kit/gs1kit/pkg/gs1"
	"github.com/gs1kit/gs1kit/pkg/gtin"

	"github.com/charmbracelet/fang"
)

// skipConfigAnnotation marks commands that fall back to defaults when the
// configuration cannot be loaded.
const skipConfigAnnotation = "gs1kit/skip-config"

var (
	errNothingToEncode = errors.New("no fields given")
	errUnknownAI       = errors.New("unknown application identifier")
)

// issueFor returns the guidance page matching err, or 0 when none applies.
func issueFor(err error) issue.Id {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return issue.FileNotFoundId
	case errors.Is(err, gtin.ErrInvalidCheckDigit):
		return issue.InvalidCheckDigitId
	case errors.Is(err, gtin.ErrFieldOverflow):
		return issue.FieldOverflowId
	case errors.Is(err, gtin.ErrInvalidType):
		return issue.InvalidGtinTypeId
	case errors.Is(err, gs1.ErrSyntax), errors.Is(err, errUnknownAI):
		return issue.InvalidElementStringId
	case errors.Is(err, gs1.ErrInvalidField):
		return issue.InvalidFieldId
	case errors.Is(err, gtin.ErrInvalidInput), errors.Is(err, gtin.ErrInvalidPackagingLevel):
		return issue.InvalidInputId
	default:
		return 0
	}
}

// actionable wraps err with the failed operation and links the matching guidance page.
func actionable(operation, resource string, err error, suggestions ...string) error {
	return actionableWithIssue(issueFor(err), operation, resource, err, suggestions...)
}

func actionableWithIssue(id issue.Id, operation, resource string, err error, suggestions ...string) error {
	return issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		WithSuggestions(suggestions...).
		WithIssue(id).
		Wrap(err).
		BuildError()
}

// handleError prints a command failure. Actionable errors show their suggestions;
// in verbose mode the linked guidance page is rendered as well.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		fang.DefaultErrorHandler(w, styles, err)
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+ae.Format(a.verbose))

	iss := ae.Issue()
	if iss == nil {
		return
	}
	if !a.verbose {
		fmt.Fprintln(w, SubtitleStyle.Render("\nRun with --verbose for guidance."))
		return
	}
	rendered, renderErr := iss.Render(a.glamourStyle())
	if renderErr != nil {
		a.logger.Debug("failed to render guidance", "error", renderErr)
		return
	}
	fmt.Fprint(w, rendered)
}
