// Package term holds the autocomplete Term value: a query string with a
// weight, and the order markers used to compare two terms.
package term

import (
	"errors"
	"strconv"
)

// ErrNegativePrefix is returned when a prefix length below zero is requested.
var ErrNegativePrefix = errors.New("prefix length must not be negative")

type Term struct {
	Query  string
	Weight int64
}

func New(query string, weight int64) Term {
	return Term{Query: query, Weight: weight}
}

// CompareByWeight orders terms by descending weight: 1 when a is heavier
// than b, 0 when equal, -1 otherwise.
func CompareByWeight(a, b Term) int {
	switch {
	case a.Weight > b.Weight:
		return 1
	case a.Weight == b.Weight:
		return 0
	default:
		return -1
	}
}

// CompareByPrefix compares the first r characters of each query
// lexicographically: 1 when a's prefix sorts before b's, 0 when they match,
// -1 otherwise. Queries shorter than r are compared whole.
func CompareByPrefix(a, b Term, r int) (int, error) {
	if r < 0 {
		return 0, ErrNegativePrefix
	}
	pa, pb := prefix(a.Query, r), prefix(b.Query, r)
	switch {
	case pa < pb:
		return 1, nil
	case pa == pb:
		return 0, nil
	default:
		return -1, nil
	}
}

// Less orders terms by their full query string.
func Less(a, b Term) bool {
	return a.Query < b.Query
}

// String renders the weight, a tab, then the query.
func (t Term) String() string {
	return strconv.FormatInt(t.Weight, 10) + "\t" + t.Query
}

func prefix(s string, r int) string {
	n := 0
	for i := range s {
		if n == r {
			return s[:i]
		}
		n++
	}
	return s
}
