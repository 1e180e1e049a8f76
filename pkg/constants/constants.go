// Package constants provides shared constants used throughout the booktracker codebase.
// This includes file permissions, record format details, default file names and
// the fixed text of the run report.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Record format constants describe the flat-file catalog format
const (
	// FieldDelimiter separates the fields of a catalog line
	FieldDelimiter = ":"

	// FieldCount is the number of fields in a catalog line (title, author, isbn, copies)
	FieldCount = 4

	// ISBNLength is the exact number of decimal digits in an ISBN
	ISBNLength = 13

	// LineTerminator ends every line written to the catalog and the error log
	LineTerminator = "\n"
)

// Default values
const (
	// DefaultErrorLog is the fixed name of the side error log
	DefaultErrorLog = "errors.log"

	// DefaultFormat is the default report format
	DefaultFormat = "table"

	// DefaultLogLevel is the default level for diagnostic logging
	DefaultLogLevel = "warn"

	// ConfigName is the base name of the optional config file
	ConfigName = ".booktracker"

	// EnvPrefix is the prefix of environment variables bound to config keys
	EnvPrefix = "BOOKTRACKER"
)

// Format constants
const (
	// TimeFormatErrorLog is the timestamp format used in the side error log
	TimeFormatErrorLog = "2006-01-02 15:04:05"
)

// Report constants
const (
	// ReportRule is the separator printed below the table header
	ReportRule = "---------------------------------------------------------------------------"

	// StatisticsTitle heads the statistics block
	StatisticsTitle = "--- FINAL STATISTICS ---"

	// Farewell is printed at the end of every run
	Farewell = "Thank you for using the Library Book Tracker."

	// MainContext is the error log context for failures outside any record
	MainContext = "Main"
)
