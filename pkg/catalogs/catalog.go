// Package catalogs provides the in-memory book catalog and its flat-file storage.
//
// A catalog file holds one record per line in the form
//
//	title:author:isbn:copies
//
// Load reads such a file fail-soft: malformed or invalid lines are reported and
// skipped while every valid line is kept in file order. Save rewrites the whole
// file from the catalog.
package catalogs

import (
	"slices"
	"strings"
)

// Catalog is an ordered collection of books.
// Duplicate ISBNs are allowed. A Catalog is owned by one run and is not safe
// for concurrent use.
type Catalog struct {
	books []Book
}

// New creates a catalog holding the given books in order.
func New(books ...Book) *Catalog {
	return &Catalog{books: slices.Clone(books)}
}

// Insert appends a book to the end of the catalog.
func (c *Catalog) Insert(b Book) {
	c.books = append(c.books, b)
}

// SortByTitle stable-sorts the catalog by title, ignoring case.
func (c *Catalog) SortByTitle() {
	slices.SortStableFunc(c.books, Compare)
}

// SearchByTitle returns every book whose title contains keyword, ignoring case,
// in catalog order. An empty keyword matches every book.
func (c *Catalog) SearchByTitle(keyword string) []Book {
	needle := foldTitle(keyword)
	var matches []Book
	for _, b := range c.books {
		if strings.Contains(foldTitle(b.Title), needle) {
			matches = append(matches, b)
		}
	}
	return matches
}

// SearchByISBN returns every book whose ISBN equals isbn exactly, in catalog order.
func (c *Catalog) SearchByISBN(isbn string) []Book {
	var matches []Book
	for _, b := range c.books {
		if b.ISBN == isbn {
			matches = append(matches, b)
		}
	}
	return matches
}

// Books returns a copy of the catalog contents in current order.
func (c *Catalog) Books() []Book {
	return slices.Clone(c.books)
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	return len(c.books)
}
