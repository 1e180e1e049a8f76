package catalogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func titles(books []Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestCatalogInsertKeepsOrder(t *testing.T) {
	c := New()
	c.Insert(Book{Title: "Mango", ISBN: "1111111111111"})
	c.Insert(Book{Title: "apple", ISBN: "2222222222222"})

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"Mango", "apple"}, titles(c.Books()))
}

func TestCatalogSortByTitle(t *testing.T) {
	c := New(
		Book{Title: "Zebra", ISBN: "1"},
		Book{Title: "apple", ISBN: "2"},
		Book{Title: "Mango", ISBN: "3"},
		Book{Title: "APPLE", ISBN: "4"},
	)
	c.SortByTitle()

	books := c.Books()
	assert.Equal(t, []string{"apple", "APPLE", "Mango", "Zebra"}, titles(books))
	// stable: equal titles keep insertion order
	assert.Equal(t, "2", books[0].ISBN)
	assert.Equal(t, "4", books[1].ISBN)
}

func TestCatalogBooksIsCopy(t *testing.T) {
	c := New(Book{Title: "Dune"})
	books := c.Books()
	books[0].Title = "changed"
	assert.Equal(t, "Dune", c.Books()[0].Title)
}

func TestSearchByTitle(t *testing.T) {
	c := New(
		Book{Title: "Apple Pie"},
		Book{Title: "Moby Dick"},
		Book{Title: "Crab APPLE Recipes"},
	)

	t.Run("case insensitive substring", func(t *testing.T) {
		matches := c.SearchByTitle("app")
		assert.Equal(t, []string{"Apple Pie", "Crab APPLE Recipes"}, titles(matches))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.SearchByTitle("zzz"))
	})

	t.Run("empty keyword matches all", func(t *testing.T) {
		assert.Len(t, c.SearchByTitle(""), 3)
	})
}

func TestSearchByISBN(t *testing.T) {
	c := New(
		Book{Title: "First", ISBN: "1234567890123"},
		Book{Title: "Other", ISBN: "9999999999999"},
		Book{Title: "Second", ISBN: "1234567890123"},
	)

	assert.Equal(t, []string{"First", "Second"}, titles(c.SearchByISBN("1234567890123")))
	assert.Equal(t, []string{"Other"}, titles(c.SearchByISBN("9999999999999")))
	assert.Empty(t, c.SearchByISBN("0000000000000"))
}
