package output

import (
	"fmt"
	"io"

	"github.com/agentstation/booktracker/internal/cmd/table"
	"github.com/agentstation/booktracker/pkg/catalogs"
	"github.com/agentstation/booktracker/pkg/constants"
)

// Report is the result of one run: the books produced by the operation and the
// final statistics.
type Report struct {
	Operation  string          `json:"operation" yaml:"operation"`
	Query      string          `json:"query" yaml:"query"`
	ShowTable  bool            `json:"-" yaml:"-"` // the operation produced a result table (possibly empty)
	Books      []catalogs.Book `json:"books" yaml:"books"`
	Statistics catalogs.Stats  `json:"statistics" yaml:"statistics"`
}

// NewReport creates an empty report for an operation.
func NewReport(operation, query string) *Report {
	return &Report{
		Operation: operation,
		Query:     query,
		Books:     []catalogs.Book{},
	}
}

// PrintHeader writes the fixed-width column header and separator rule.
func PrintHeader(w io.Writer) error {
	h := table.BookHeaders
	if _, err := fmt.Fprintf(w, "%-30s %-20s %-15s %5s\n", h[0], h[1], h[2], h[3]); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, constants.ReportRule)
	return err
}

// PrintRow writes one fixed-width book row.
func PrintRow(w io.Writer, b catalogs.Book) error {
	_, err := fmt.Fprintf(w, "%-30s %-20s %-15s %5d\n", b.Title, b.Author, b.ISBN, b.Copies)
	return err
}

// PrintStatistics writes the final statistics block.
func PrintStatistics(w io.Writer, stats catalogs.Stats) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", constants.StatisticsTitle); err != nil {
		return err
	}
	values := table.StatisticsValues(stats)
	for i, label := range table.StatisticsLabels {
		if _, err := fmt.Fprintf(w, "%s: %d\n", label, values[i]); err != nil {
			return err
		}
	}
	return nil
}

// PrintFarewell writes the closing line of every run.
func PrintFarewell(w io.Writer) {
	_, _ = fmt.Fprintf(w, "\n%s\n", constants.Farewell)
}
