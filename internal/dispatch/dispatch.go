package dispatch

import (
	"context"

	"github.com/agentstation/booktracker/internal/cmd/output"
	"github.com/agentstation/booktracker/pkg/catalogs"
	"github.com/agentstation/booktracker/pkg/errors"
	"github.com/agentstation/booktracker/pkg/logging"
)

// Runner performs one run: load the catalog, execute one operation and, after
// a successful add, rewrite the catalog file. Every failure goes to the error
// sink; none of them stops the run.
type Runner struct {
	sink  catalogs.ErrorSink
	stats *catalogs.Stats
}

// NewRunner creates a Runner reporting failures to sink and counting into stats.
func NewRunner(sink catalogs.ErrorSink, stats *catalogs.Stats) *Runner {
	if stats == nil {
		stats = &catalogs.Stats{}
	}
	return &Runner{sink: sink, stats: stats}
}

// Stats returns the run statistics.
func (r *Runner) Stats() *catalogs.Stats {
	return r.stats
}

// Run loads the catalog at path, then classifies and executes input.
// The returned report carries the statistics as of the end of the run.
func (r *Runner) Run(ctx context.Context, path, input string) *output.Report {
	ctx = logging.WithCatalog(ctx, path)

	catalog := r.Load(ctx, path)
	op := Classify(input)
	report := r.Execute(ctx, path, catalog, op)
	report.Statistics = *r.stats
	return report
}

// Load reads the catalog file, degrading to whatever was parsed before an I/O failure.
func (r *Runner) Load(ctx context.Context, path string) *catalogs.Catalog {
	result, err := catalogs.Load(ctx, path, r.sink)
	if err != nil {
		r.logError(path, err)
	}
	r.stats.ValidRecords += result.Valid
	return result.Catalog
}

// Execute runs exactly one operation against the catalog.
func (r *Runner) Execute(ctx context.Context, path string, catalog *catalogs.Catalog, op Operation) *output.Report {
	ctx = logging.WithOperation(ctx, op.Kind.String())
	logging.FromContext(ctx).Debug().Str("input", op.Input).Msg("Executing operation")

	report := output.NewReport(op.Kind.String(), op.Input)
	switch op.Kind {
	case KindAdd:
		r.add(ctx, path, catalog, op, report)
	case KindSearchISBN:
		r.searchByISBN(catalog, op.Input, report)
	default:
		r.searchByTitle(catalog, op.Input, report)
	}
	return report
}

func (r *Runner) searchByTitle(catalog *catalogs.Catalog, keyword string, report *output.Report) {
	matches := catalog.SearchByTitle(keyword)
	r.stats.SearchResults += len(matches)
	report.ShowTable = true
	report.Books = append(report.Books, matches...)
}

// searchByISBN reports every match. More than one match is logged as a
// duplicate ISBN condition.
func (r *Runner) searchByISBN(catalog *catalogs.Catalog, isbn string, report *output.Report) {
	matches := catalog.SearchByISBN(isbn)
	r.stats.SearchResults += len(matches)
	report.ShowTable = true
	report.Books = append(report.Books, matches...)

	if len(matches) > 1 {
		r.logError(isbn, errors.NewDuplicateISBNError(isbn, len(matches)))
	}
}

// add validates the new record, inserts it, re-sorts the catalog and rewrites
// the file. An invalid record leaves catalog and file untouched and produces
// no table. A failed save is logged; the add still counts because the
// in-memory catalog holds the record.
func (r *Runner) add(ctx context.Context, path string, catalog *catalogs.Catalog, op Operation, report *output.Report) {
	book, err := catalogs.ParseBook(op.Fields)
	if err != nil {
		r.logError(op.Input, err)
		return
	}

	catalog.Insert(book)
	catalog.SortByTitle()

	if err := catalogs.Save(ctx, path, catalog); err != nil {
		r.logError(path, err)
	}

	report.ShowTable = true
	report.Books = append(report.Books, book)
	r.stats.BooksAdded = 1
}

func (r *Runner) logError(context string, err error) {
	if r.sink != nil {
		r.sink.LogError(context, err)
	}
}
