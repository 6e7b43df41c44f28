// Package ui selects the console reporter for a requested output format.
package ui

import (
	"io"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/ui/output"
)

// NewReporter creates a reporter for format. Text output goes to out and
// errOut; JSON output goes to out only. FormatAuto inspects errOut, where
// issue lines are written.
func NewReporter(format Format, out, errOut io.Writer) (output.Reporter, error) {
	switch format {
	case FormatAuto:
		return NewReporter(DetectFormat(errOut), out, errOut)
	case FormatTerminal:
		return output.NewTextReporter(out, errOut, true), nil
	case FormatText:
		return output.NewTextReporter(out, errOut, false), nil
	case FormatJSON:
		return output.NewJSONReporter(out), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
