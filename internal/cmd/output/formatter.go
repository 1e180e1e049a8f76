// Package output renders run reports in the supported output formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/agentstation/booktracker/internal/cmd/table"
)

// Format types for output.
type Format string

const (
	// FormatTable is the fixed-width text report.
	FormatTable Format = "table"
	// FormatBox renders the report with bordered tables.
	FormatBox Format = "box"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
	// FormatAuto picks table for terminals and JSON otherwise.
	FormatAuto Format = "auto"
)

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, any) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// NewFormatter creates appropriate formatter based on format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatBox:
		return &BoxFormatter{}
	default:
		return &TableFormatter{}
	}
}

// Structured reports whether the format is meant for machines rather than people.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// TableFormatter outputs the fixed-width text report.
type TableFormatter struct{}

// Format writes the result table (when the operation produced one) and the statistics block.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	report, err := asReport(data)
	if err != nil {
		return err
	}

	if report.ShowTable {
		if err := PrintHeader(w); err != nil {
			return err
		}
		for _, b := range report.Books {
			if err := PrintRow(w, b); err != nil {
				return err
			}
		}
	}
	return PrintStatistics(w, report.Statistics)
}

// BoxFormatter outputs the report as bordered tables.
type BoxFormatter struct{}

// Format renders the result table and the statistics with tablewriter.
func (f *BoxFormatter) Format(w io.Writer, data any) error {
	report, err := asReport(data)
	if err != nil {
		return err
	}

	if report.ShowTable {
		if err := renderTable(w, table.BooksToTableData(report.Books)); err != nil {
			return err
		}
	}
	return renderTable(w, table.StatisticsToTableData(report.Statistics))
}

func renderTable(w io.Writer, data table.Data) error {
	config := tablewriter.Config{}

	if len(data.ColumnAlignment) > 0 {
		twAlign := make([]tw.Align, len(data.ColumnAlignment))
		for i, align := range data.ColumnAlignment {
			switch align {
			case table.AlignLeft:
				twAlign[i] = tw.AlignLeft
			case table.AlignCenter:
				twAlign[i] = tw.AlignCenter
			case table.AlignRight:
				twAlign[i] = tw.AlignRight
			default:
				twAlign[i] = tw.Skip
			}
		}

		config.Header.Alignment = tw.CellAlignment{PerColumn: twAlign}
		config.Row.Alignment = tw.CellAlignment{PerColumn: twAlign}
	}

	t := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	headers := make([]any, len(data.Headers))
	for i, h := range data.Headers {
		headers[i] = h
	}
	t.Header(headers...)

	for _, row := range data.Rows {
		rowData := make([]any, len(row))
		for i, cell := range row {
			rowData[i] = cell
		}
		if err := t.Append(rowData...); err != nil {
			return err
		}
	}

	return t.Render()
}

func asReport(data any) (*Report, error) {
	switch v := data.(type) {
	case *Report:
		return v, nil
	case Report:
		return &v, nil
	default:
		return nil, fmt.Errorf("unsupported data type %T for text output", data)
	}
}

// DetectFormat resolves auto to table for terminals and JSON for pipes/redirects.
func DetectFormat(format Format) Format {
	if format != FormatAuto {
		return format
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case "":
		return FormatTable, nil
	case FormatTable, FormatBox, FormatJSON, FormatYAML, FormatAuto:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, box, json, yaml, auto", s)
	}
}
