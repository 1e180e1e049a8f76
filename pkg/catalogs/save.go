package catalogs

import (
	"bufio"
	"context"
	"io"

	"github.com/google/renameio/v2"

	"github.com/agentstation/booktracker/pkg/constants"
	"github.com/agentstation/booktracker/pkg/errors"
	"github.com/agentstation/booktracker/pkg/logging"
)

// Save overwrites the file at path with every book of the catalog, one line each,
// in current catalog order. The new content is written to a temporary file in the
// same directory and renamed over path, so a failed save leaves the old file intact.
func Save(ctx context.Context, path string, c *Catalog) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(constants.FilePermissions))
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer pending.Cleanup() //nolint:errcheck // no-op after a successful replace

	if err := Write(pending, c); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", path).
		Int("books", c.Len()).
		Msg("Saved catalog")
	return nil
}

// Write serializes the catalog to w, one line per book.
func Write(w io.Writer, c *Catalog) error {
	bw := bufio.NewWriter(w)
	for _, b := range c.books {
		if _, err := bw.WriteString(MarshalLine(b) + constants.LineTerminator); err != nil {
			return err
		}
	}
	return bw.Flush()
}
