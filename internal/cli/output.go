// Package cli renders command results in the output formats the CLI offers.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates an --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Renderable is implemented by result types that know their own tabular
// projection. JSON and YAML output marshal the value itself, so result types
// carry the corresponding struct tags.
type Renderable interface {
	TableHeader() []string
	TableRows() [][]string
}

// Printer renders command results in a fixed output format.
type Printer struct {
	format OutputFormat
	out    io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(format OutputFormat, out io.Writer) *Printer {
	return &Printer{format: format, out: out}
}

// Print renders v in the printer's format.
func (p *Printer) Print(v Renderable) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(v)
	case OutputFormatYAML:
		return p.printYAML(v)
	case OutputFormatTable:
		return p.printTable(v)
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

func (p *Printer) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

func (p *Printer) printYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = fmt.Fprint(p.out, string(data))
	return err
}

// printTable formats the rows as a professional table
func (p *Printer) printTable(v Renderable) error {
	rows := v.TableRows()
	if len(rows) == 0 {
		fmt.Fprintln(p.out, text.FgYellow.Sprint("No items found"))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)

	header := v.TableHeader()
	headerRow := make(table.Row, len(header))
	for i, col := range header {
		headerRow[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	t.AppendHeader(headerRow)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			row[i] = cell
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}
