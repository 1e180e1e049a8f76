// Package dispatch classifies the operation argument of a run and executes it
// against the loaded catalog.
package dispatch

import (
	"strings"

	"github.com/agentstation/booktracker/pkg/catalogs"
	"github.com/agentstation/booktracker/pkg/constants"
)

// Kind is the operation a run performs.
type Kind int

const (
	// KindSearchTitle is a case-insensitive title substring search.
	KindSearchTitle Kind = iota
	// KindSearchISBN is an exact ISBN search.
	KindSearchISBN
	// KindAdd appends a new record and rewrites the catalog file.
	KindAdd
)

// String returns the operation name used in reports and logs.
func (k Kind) String() string {
	switch k {
	case KindSearchISBN:
		return "search-isbn"
	case KindAdd:
		return "add"
	default:
		return "search-title"
	}
}

// Operation is a classified operation argument.
type Operation struct {
	Kind   Kind
	Input  string
	Fields [constants.FieldCount]string // set for KindAdd
}

// Classify decides what the operation argument asks for, in priority order:
//  1. four delimiter-separated fields: add a record
//  2. exactly 13 decimal digits: search by ISBN
//  3. anything else, including the empty string: search by title
func Classify(input string) Operation {
	if strings.Contains(input, constants.FieldDelimiter) {
		if fields, err := catalogs.UnmarshalLine(input); err == nil {
			return Operation{Kind: KindAdd, Input: input, Fields: fields}
		}
	}
	if catalogs.ValidISBN(input) {
		return Operation{Kind: KindSearchISBN, Input: input}
	}
	return Operation{Kind: KindSearchTitle, Input: input}
}
