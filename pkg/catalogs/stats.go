package catalogs

// Stats holds the counters of a single run.
// One Stats value is created per run and passed to every step that updates it.
type Stats struct {
	ValidRecords  int `json:"records_processed" yaml:"records_processed"` // lines parsed during load
	SearchResults int `json:"search_results" yaml:"search_results"`       // matches reported
	BooksAdded    int `json:"books_added" yaml:"books_added"`             // 0 or 1
	ErrorCount    int `json:"errors_logged" yaml:"errors_logged"`         // entries written to the error log
}
