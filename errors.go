package sortedstring

import (
	"errors"
	"fmt"
)

// Errors returned by NewChecked and the functions built on it.
var (
	// ErrEmptyInput is returned when the text is empty.
	ErrEmptyInput = errors.New("sortedstring: empty input")

	// ErrInvalidDelimiter is returned when the delimiter is outside the ASCII range.
	ErrInvalidDelimiter = errors.New("sortedstring: delimiter is not ASCII")

	// ErrDelimiterNotFound is returned when WithMultipleWords is set and the
	// delimiter does not occur in the text.
	ErrDelimiterNotFound = errors.New("sortedstring: delimiter not found")

	// ErrUnsortedInput is returned, wrapped in an *UnsortedError, when two
	// adjacent words are out of order.
	ErrUnsortedInput = errors.New("sortedstring: input not sorted")
)

// UnsortedError reports the first adjacent pair of words that is out of order.
// Index is the position of Next in the word list and Offset is the byte offset
// at which Next starts.
type UnsortedError struct {
	Index  int
	Offset int
	Prev   string
	Next   string
}

func (e *UnsortedError) Error() string {
	return fmt.Sprintf("%v: word %d at offset %d (%q) sorts before %q",
		ErrUnsortedInput, e.Index, e.Offset, e.Next, e.Prev)
}

func (e *UnsortedError) Unwrap() error {
	return ErrUnsortedInput
}
