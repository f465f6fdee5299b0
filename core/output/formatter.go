// Package output renders cost reports.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"archcost/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *types.Report) error
}

// ForFormat returns the formatter for a format type
func ForFormat(f Format) (Formatter, bool) {
	switch f {
	case FormatJSON:
		return JSONFormatter{}, true
	case FormatCLI:
		return CLIFormatter{}, true
	}
	return nil, false
}

// JSONFormatter renders the report as indented JSON. The output carries
// no timestamps or run metadata, so identical inputs against the same
// catalog produce byte-identical documents.
type JSONFormatter struct{}

// Format returns the format type
func (JSONFormatter) Format() Format { return FormatJSON }

// Render writes the report as JSON
func (JSONFormatter) Render(w io.Writer, report *types.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// CLIFormatter renders a terminal summary table
type CLIFormatter struct{}

// Format returns the format type
func (CLIFormatter) Format() Format { return FormatCLI }

// Render writes a human-readable summary
func (CLIFormatter) Render(w io.Writer, report *types.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "SERVICE\tNODE\tHOURLY (USD)\tMONTHLY (USD)")
	for _, b := range report.Breakdown {
		monthly := b.HourlyCost.Mul(types.HoursPerMonth)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			b.ServiceType, b.Label,
			b.HourlyCost.StringFixed(6), monthly.StringFixed(2))
	}
	fmt.Fprintln(tw, "\t\t\t")
	fmt.Fprintf(tw, "TOTAL\t\t%s\t%s\n",
		report.TotalHourly.StringFixed(6), report.TotalMonthly.StringFixed(2))
	fmt.Fprintf(tw, "YEARLY\t\t\t%s\n", report.TotalYearly.StringFixed(2))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings (%d):\n", len(report.Warnings))
		for _, warn := range report.Warnings {
			fmt.Fprintf(w, "  - %s: %s\n", warn.NodeID, warn.Reason)
		}
	}
	return nil
}
