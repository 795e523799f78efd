// Package dataset loads whitespace-separated benchmark timings into
// ordered records.
package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned when an input token is not a number.
	ErrParse = errors.New("parse error")

	// ErrInsufficientData is returned when the first record is too short
	// to be charted.
	ErrInsufficientData = errors.New("insufficient data")
)

// Record holds the values of a single input line, in input order.
type Record []float64

// Dataset holds every record read from the input, in line order.
type Dataset []Record

// First returns the first record, checking that it holds at least n
// values.
func (d Dataset) First(n int) (Record, error) {
	if len(d) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrInsufficientData)
	}

	if len(d[0]) < n {
		return nil, fmt.Errorf(
			"%w: first record has %d values, need %d",
			ErrInsufficientData, len(d[0]), n,
		)
	}

	return d[0], nil
}

// ParseError describes a token that could not be converted to a float.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid number %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
