package catalogs

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/agentstation/booktracker/pkg/constants"
	"github.com/agentstation/booktracker/pkg/errors"
	"github.com/agentstation/booktracker/pkg/logging"
)

// ErrorSink receives rejected records. Implementations must not fail the caller.
type ErrorSink interface {
	LogError(context string, err error)
}

// LineResult is the outcome of parsing one non-blank line: either a Book or an error.
type LineResult struct {
	Number int    // 1-based line number in the file
	Line   string // raw line text
	Book   Book
	Err    error
}

// OK reports whether the line produced a book.
func (r LineResult) OK() bool {
	return r.Err == nil
}

// LoadResult is the outcome of loading a catalog file.
type LoadResult struct {
	Catalog  *Catalog
	Valid    int          // number of lines that produced a book
	Failures []LineResult // rejected lines in file order
	Created  bool         // the backing file did not exist and was created empty
}

// Load reads the catalog file at path, creating it empty if it does not exist.
//
// Blank lines are skipped. Every other line is parsed with ParseLine; valid books
// are appended in file order and each rejected line is passed to sink (if not nil)
// with the raw line as context. A rejected line never stops the load.
//
// The returned error is an I/O failure. The result is never nil: on a read error
// it holds everything parsed before the fault.
func Load(ctx context.Context, path string, sink ErrorSink) (*LoadResult, error) {
	logger := logging.FromContext(ctx)
	result := &LoadResult{Catalog: New()}

	created, err := ensureFile(path)
	if err != nil {
		return result, err
	}
	if created {
		result.Created = true
		logger.Debug().Str("path", path).Msg("Created empty catalog file")
		return result, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return result, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	if err := read(f, result, sink); err != nil {
		return result, errors.WrapIO("read", path, err)
	}

	for _, failure := range result.Failures {
		logger.Debug().
			Str("path", path).
			Int("line", failure.Number).
			Err(failure.Err).
			Msg("Rejected catalog line")
	}
	logger.Debug().
		Str("path", path).
		Int("valid", result.Valid).
		Int("rejected", len(result.Failures)).
		Msg("Loaded catalog")
	return result, nil
}

// read parses lines of any length until EOF.
func read(r io.Reader, result *LoadResult, sink ErrorSink) error {
	br := bufio.NewReader(r)

	number := 0
	for {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if text == "" && err == io.EOF {
			return nil
		}

		number++
		line := strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			res := parseLineResult(number, line)
			if res.OK() {
				result.Catalog.Insert(res.Book)
				result.Valid++
			} else {
				result.Failures = append(result.Failures, res)
				if sink != nil {
					sink.LogError(line, res.Err)
				}
			}
		}

		if err == io.EOF {
			return nil
		}
	}
}

func parseLineResult(number int, line string) LineResult {
	b, err := ParseLine(line)
	return LineResult{Number: number, Line: line, Book: b, Err: err}
}

// ensureFile creates an empty file at path if none exists.
func ensureFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, errors.WrapIO("stat", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return false, errors.WrapIO("create", path, err)
	}
	if err := f.Close(); err != nil {
		return false, errors.WrapIO("create", path, err)
	}
	return true, nil
}
