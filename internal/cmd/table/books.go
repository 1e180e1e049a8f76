// Package table converts catalog data into rows for table rendering.
package table

import (
	"strconv"

	"github.com/agentstation/booktracker/pkg/catalogs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// BookHeaders are the column titles of the book table.
var BookHeaders = []string{"Title", "Author", "ISBN", "Copies"}

// BooksToTableData converts books to table format.
func BooksToTableData(books []catalogs.Book) Data {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{b.Title, b.Author, b.ISBN, strconv.Itoa(b.Copies)})
	}

	return Data{
		Headers:         BookHeaders,
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight},
	}
}

// StatisticsLabels name the run counters in report order.
var StatisticsLabels = []string{"Records Processed", "Search Results", "Books Added", "Errors Logged"}

// StatisticsValues returns the run counters in the order of StatisticsLabels.
func StatisticsValues(stats catalogs.Stats) []int {
	return []int{stats.ValidRecords, stats.SearchResults, stats.BooksAdded, stats.ErrorCount}
}

// StatisticsToTableData converts run statistics to a two-column table.
func StatisticsToTableData(stats catalogs.Stats) Data {
	values := StatisticsValues(stats)
	rows := make([][]string, 0, len(values))
	for i, v := range values {
		rows = append(rows, []string{StatisticsLabels[i], strconv.Itoa(v)})
	}

	return Data{
		Headers:         []string{"Statistic", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}
