// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/feedsift/feedsift/internal/config"
	"github.com/feedsift/feedsift/internal/item"
	"github.com/feedsift/feedsift/internal/log"
)

// Outputs lists the accepted --output values.
var Outputs = []string{"text", "json", "jsonl", "yaml"}

// Columns lists the row keys, in default display order.
var Columns = []string{"published", "title", "link", "categories", "summary"}

// DefaultColumns are shown in text output when none are requested.
var DefaultColumns = []string{"published", "title", "link"}

// Options control rendering.
type Options struct {
	Output  string
	Sort    string
	Columns []string
	Titles  bool
	Color   bool

	// Padding is the space left of every text column after the first.
	// Values below 1 mean DefaultPadding.
	Padding int
}

// DefaultPadding is the column padding used when Options.Padding is unset.
const DefaultPadding = 2

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case []string:
		return strings.Join(value, ", ")
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// Rows converts items into rows keyed by column name. Empty fields are left
// out, and published times are kept as RFC 3339 strings so they sort in time
// order.
func Rows(items []item.Item) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		row := map[string]interface{}{"title": it.Title}
		if it.Summary != "" {
			row["summary"] = it.Summary
		}
		if it.Link != "" {
			row["link"] = it.Link
		}
		if !it.Published.IsZero() {
			row["published"] = it.Published.UTC().Format(time.RFC3339)
		}
		if len(it.Categories) > 0 {
			row["categories"] = it.Categories
		}
		rows = append(rows, row)
	}
	return rows
}

// ValidateColumns rejects column names that rows never carry.
func ValidateColumns(columns []string) error {
	for _, c := range columns {
		if !slices.Contains(Columns, c) {
			return fmt.Errorf("unknown column %q (valid: %s)", c, strings.Join(Columns, ", "))
		}
	}
	return nil
}

// Items sorts and renders items to w.
func Items(w io.Writer, items []item.Item, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	rows := Rows(items)
	SortDataset(rows, opts.Sort)
	log.Debugf("rendering %d rows as %s", len(rows), opts.Output)

	switch opts.Output {
	case "json":
		return writeJSON(w, rows)
	case "jsonl":
		for _, row := range rows {
			line, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("failed to marshal row: %w", err)
			}
			if _, err := fmt.Fprintln(w, string(line)); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		return writeYAML(w, rows)
	case "", "text":
		columns := opts.Columns
		if len(columns) == 0 {
			columns = DefaultColumns
		}
		TableWriter(w, rows, columns, opts)
		return nil
	default:
		return fmt.Errorf("unknown output %q", opts.Output)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// cell renders one row value for the text table.
func cell(column string, value interface{}) string {
	if column == "published" {
		s, _ := value.(string)
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return humanize.Time(t)
		}
	}
	return InterfaceToString(value, "-")
}

// TableWriter renders rows as a borderless table with the given columns.
// Nothing is written for an empty row set.
func TableWriter(w io.Writer, rows []map[string]interface{}, columns []string, opts Options) {
	if w == nil {
		w = os.Stdout
	}

	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, 0, len(columns))
		for _, c := range columns {
			line = append(line, cell(c, row[c]))
		}
		cells = append(cells, line)
	}

	pad := opts.Padding
	if pad < 1 {
		pad = DefaultPadding
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(cells...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(columns...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering. Defaults
// depend on the terminal background so output stays readable on light and
// dark themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
