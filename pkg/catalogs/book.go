package catalogs

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/agentstation/booktracker/pkg/constants"
	"github.com/agentstation/booktracker/pkg/errors"
)

// Book is a single catalog record.
// Books are values: catalog operations copy them and never share them.
type Book struct {
	Title  string `json:"title" yaml:"title"`   // Sort key of the catalog
	Author string `json:"author" yaml:"author"` // Author name as written in the file
	ISBN   string `json:"isbn" yaml:"isbn"`     // Exactly 13 decimal digits
	Copies int    `json:"copies" yaml:"copies"` // Non-negative number of copies
}

// NewBook validates the fields and returns a Book.
// No Book is produced when validation fails.
func NewBook(title, author, isbn string, copies int) (Book, error) {
	if copies < 0 {
		return Book{}, errors.NewInvalidCopyCountError(strconv.Itoa(copies), nil)
	}
	if !ValidISBN(isbn) {
		return Book{}, errors.NewInvalidISBNError(isbn)
	}
	return Book{Title: title, Author: author, ISBN: isbn, Copies: copies}, nil
}

// ParseBook converts the four raw fields of a record (title, author, isbn, copies)
// into a Book. The copy count may carry surrounding whitespace and is parsed
// before the ISBN is checked.
func ParseBook(fields [constants.FieldCount]string) (Book, error) {
	copies, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return Book{}, errors.NewInvalidCopyCountError(fields[3], err)
	}
	return NewBook(fields[0], fields[1], fields[2], copies)
}

// ValidISBN reports whether isbn is exactly 13 ASCII decimal digits.
func ValidISBN(isbn string) bool {
	if len(isbn) != constants.ISBNLength {
		return false
	}
	for i := 0; i < len(isbn); i++ {
		if isbn[i] < '0' || isbn[i] > '9' {
			return false
		}
	}
	return true
}

// Fields returns the record fields in file order.
func (b Book) Fields() [constants.FieldCount]string {
	return [constants.FieldCount]string{b.Title, b.Author, b.ISBN, strconv.Itoa(b.Copies)}
}

// CompareTitles orders two titles, ignoring case.
func CompareTitles(a, b string) int {
	return strings.Compare(foldTitle(a), foldTitle(b))
}

// Compare orders books by title, ignoring case.
func Compare(a, b Book) int {
	return CompareTitles(a.Title, b.Title)
}

// foldTitle returns the case-folded form used for ordering and title search.
func foldTitle(s string) string {
	return cases.Fold().String(s)
}
