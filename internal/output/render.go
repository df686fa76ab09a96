// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/feedsift/feedsift/internal/keywords"
	"github.com/feedsift/feedsift/internal/sift"
)

// Filter renders a compiled filter. Text output is the canonical query
// followed by a table of its terms.
func Filter(w io.Writer, f keywords.Filter, opts Options) error {
	switch opts.Output {
	case "json":
		return writeJSON(w, f.Terms())
	case "yaml":
		return writeYAML(w, f.Terms())
	case "", "text":
	default:
		return fmt.Errorf("unknown output %q", opts.Output)
	}

	if _, err := fmt.Fprintln(w, f.String()); err != nil {
		return err
	}
	if f.IsEmpty() {
		return nil
	}

	var rows []map[string]interface{}
	for _, term := range f.Include() {
		rows = append(rows, map[string]interface{}{"kind": "include", "terms": term})
	}
	for _, term := range f.Exclude() {
		rows = append(rows, map[string]interface{}{"kind": "exclude", "terms": term})
	}
	for i, group := range f.Overrides() {
		rows = append(rows, map[string]interface{}{"kind": "override " + strconv.Itoa(i), "terms": group})
	}

	fmt.Fprintln(w)
	TableWriter(w, rows, []string{"kind", "terms"}, opts)
	return nil
}

// Decision renders the outcome of matching one item. Text output is "keep"
// or "drop", followed by the reasons when explain is set.
func Decision(w io.Writer, f keywords.Filter, d keywords.Decision, explain bool, opts Options) error {
	switch opts.Output {
	case "json":
		return writeJSON(w, d)
	case "yaml":
		return writeYAML(w, d)
	case "", "text":
	default:
		return fmt.Errorf("unknown output %q", opts.Output)
	}

	verdict := "drop"
	if d.Keep {
		verdict = "keep"
	}
	if _, err := fmt.Fprintln(w, verdict); err != nil {
		return err
	}
	if !explain {
		return nil
	}

	for _, reason := range Reasons(f, d) {
		fmt.Fprintf(w, "  %s\n", reason)
	}
	return nil
}

// Reasons describes a decision in plain sentences.
func Reasons(f keywords.Filter, d keywords.Decision) []string {
	var reasons []string

	if len(d.Excluded) > 0 {
		reasons = append(reasons, "excluded by "+quoteAll(d.Excluded))
		groups := f.Overrides()
		if d.Override < 0 || d.Override >= len(groups) {
			return append(reasons, "no override group satisfied")
		}
		reasons = append(reasons, "reinstated by except("+quoteAll(groups[d.Override])+")")
	}

	switch {
	case d.Included != "":
		reasons = append(reasons, "included by "+strconv.Quote(d.Included))
	case len(f.Include()) == 0:
		reasons = append(reasons, "no include terms")
	default:
		reasons = append(reasons, "no include term matched")
	}

	return reasons
}

func quoteAll(terms []string) string {
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = strconv.Quote(term)
	}
	return strings.Join(quoted, ", ")
}

// Stats writes a one line summary of a run.
func Stats(w io.Writer, stats sift.Stats) {
	fmt.Fprintf(w, "kept %d of %d (%d dropped, %d overridden)\n",
		stats.Kept, stats.Total, stats.Dropped, stats.Overridden)
}
