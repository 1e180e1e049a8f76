package catalogs

import (
	"strings"

	"github.com/agentstation/booktracker/pkg/constants"
	"github.com/agentstation/booktracker/pkg/errors"
)

// MarshalLine serializes a book as title:author:isbn:copies.
// The format has no escaping: a field containing the delimiter is written
// as-is and will not read back.
func MarshalLine(b Book) string {
	fields := b.Fields()
	return strings.Join(fields[:], constants.FieldDelimiter)
}

// UnmarshalLine splits a line into its four raw fields.
func UnmarshalLine(line string) ([constants.FieldCount]string, error) {
	var fields [constants.FieldCount]string
	parts := strings.Split(line, constants.FieldDelimiter)
	if len(parts) != constants.FieldCount {
		return fields, errors.NewMalformedEntryError(line, len(parts), constants.FieldCount)
	}
	copy(fields[:], parts)
	return fields, nil
}

// ParseLine deserializes and validates a single catalog line.
func ParseLine(line string) (Book, error) {
	fields, err := UnmarshalLine(line)
	if err != nil {
		return Book{}, err
	}
	return ParseBook(fields)
}
