package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{"add record", "A:B:1234567890123:5", KindAdd},
		{"add with invalid isbn is still add", "A:B:123:5", KindAdd},
		{"add with empty fields", ":::", KindAdd},
		{"isbn", "1234567890123", KindSearchISBN},
		{"title", "moby", KindSearchTitle},
		{"empty", "", KindSearchTitle},
		{"three fields", "A:B:C", KindSearchTitle},
		{"five fields", "A:B:C:D:E", KindSearchTitle},
		{"twelve digits", "123456789012", KindSearchTitle},
		{"fourteen digits", "12345678901234", KindSearchTitle},
		{"digits with dash", "978-030640615", KindSearchTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := Classify(tt.input)
			assert.Equal(t, tt.want, op.Kind)
			assert.Equal(t, tt.input, op.Input)
		})
	}
}

func TestClassifyAddFields(t *testing.T) {
	op := Classify("Zebra:Author:1234567890123:2")
	assert.Equal(t, [4]string{"Zebra", "Author", "1234567890123", "2"}, op.Fields)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "add", KindAdd.String())
	assert.Equal(t, "search-isbn", KindSearchISBN.String())
	assert.Equal(t, "search-title", KindSearchTitle.String())
}
