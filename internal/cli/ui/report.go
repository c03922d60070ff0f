package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/conduit-lang/crudgen/internal/emit"
	"github.com/conduit-lang/crudgen/internal/generator"
)

// ReportOptions configures WriteReport.
type ReportOptions struct {
	NoColor     bool
	ShowContent bool // print rendered artifact text under each line
}

type statusStyle struct {
	symbol string
	attrs  []color.Attribute
}

var statusStyles = map[emit.Status]statusStyle{
	emit.Created:   {"✓", []color.Attribute{color.FgGreen}},
	emit.Skipped:   {"•", []color.Attribute{color.FgYellow}},
	emit.Appended:  {"+", []color.Attribute{color.FgGreen}},
	emit.Unchanged: {"=", []color.Attribute{color.FgHiBlack}},
	emit.Failed:    {"✗", []color.Attribute{color.FgRed, color.Bold}},
}

// StatusLabel describes an item outcome. Dry-run labels are phrased as
// predictions.
func StatusLabel(out emit.Outcome, dryRun bool) string {
	if !dryRun {
		return out.String()
	}
	switch out.Status {
	case emit.Created:
		return "would create"
	case emit.Skipped:
		return "exists, would skip"
	case emit.Appended:
		if out.Appended == 1 {
			return "would append 1 declaration"
		}
		return fmt.Sprintf("would append %d declarations", out.Appended)
	default:
		return out.String()
	}
}

// StatusLine formats one report item:
//
//	✓ created  Product/CreateProductValidation → app/Http/Requests/ProductRequests/StoreProductRequest.php
func StatusLine(item generator.Item, dryRun, noColor bool) string {
	style := statusStyles[item.Outcome.Status]
	c := color.New(style.attrs...)
	if noColor {
		c.DisableColor()
	}

	label := StatusLabel(item.Outcome, dryRun)
	if item.Outcome.Status == emit.Failed {
		label = "failed"
	}
	line := fmt.Sprintf("%s %s  %s → %s", c.Sprint(style.symbol), c.Sprint(label), item.Name, item.Path)
	if item.Err != nil {
		line += fmt.Sprintf(" (%v)", item.Err)
	}
	return line
}

// WriteReport writes one line per item followed by a summary line.
func WriteReport(w io.Writer, r *generator.Report, opts ReportOptions) {
	for _, item := range r.Items {
		fmt.Fprintln(w, StatusLine(item, r.DryRun, opts.NoColor))
		if opts.ShowContent && item.Content != "" {
			Divider(w, 0, opts.NoColor)
			fmt.Fprintln(w, strings.TrimRight(item.Content, "\n"))
			Divider(w, 0, opts.NoColor)
		}
	}
	fmt.Fprintln(w, Summary(r))
}

// Summary condenses a report into one line.
//
//	Product: 3 created, 0 skipped, 4 route declarations appended, 0 failed
func Summary(r *generator.Report) string {
	appended := 0
	for _, item := range r.Items {
		if item.Outcome.Status == emit.Appended {
			appended += item.Outcome.Appended
		}
	}

	routes := "route declarations"
	if appended == 1 {
		routes = "route declaration"
	}
	verb := "appended"
	prefix := r.Entity
	if r.DryRun {
		verb = "to append"
		prefix += " (dry run)"
	}

	return fmt.Sprintf("%s: %d created, %d skipped, %d %s %s, %d failed",
		prefix,
		r.Count(emit.Created),
		r.Count(emit.Skipped),
		appended, routes, verb,
		r.Count(emit.Failed),
	)
}
