package sortedstring

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SortedString is a sorted list of words joined by a single-byte delimiter,
// for example "apple,banana,cherry" with delimiter ','. It is immutable and
// cheap to copy, and may be searched from any number of goroutines.
//
// The zero value is the list holding a single empty word.
type SortedString struct {
	text  string
	delim byte
}

// EnumFn is called by Enumerate for every word, with its position in the list
// and the byte offset at which it starts.
type EnumFn = func(index int, offset int, word string) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate
// whether enumeration should go on.
type EnumerationResult = int

const (
	// Continue enumerating words
	Continue EnumerationResult = iota

	// Stop will immediately stop enumerating words
	Stop
)

// NewUnchecked creates a SortedString without performing any checks. It does
// not allocate, so it is suitable for package-level variables built from
// constants.
//
// Unsorted text or a non-ASCII delimiter make searches return wrong results.
// They never make them panic.
func NewUnchecked(text string, delim byte) SortedString {
	return SortedString{text: text, delim: delim}
}

// NewChecked creates a SortedString after verifying, in order, that the
// delimiter is ASCII, that the text is not empty, that the delimiter occurs
// (only with WithMultipleWords) and that adjacent words are in non-decreasing
// byte order.
//
// A text without any delimiter is accepted as a list of one word.
func NewChecked(text string, delim byte, opt ...Option) (SortedString, error) {
	opts := getOpts(opt...)
	s := NewUnchecked(text, delim)
	if err := s.validate(opts); err != nil {
		opts.withLogger.Debug("rejected word list", "bytes", len(text), "error", err)
		return SortedString{}, err
	}
	return s, nil
}

// NewCheckedBytes is like NewChecked but takes a copy of b, so the caller may
// reuse b afterwards.
func NewCheckedBytes(b []byte, delim byte, opt ...Option) (SortedString, error) {
	return NewChecked(string(b), delim, opt...)
}

func (s SortedString) validate(opts options) error {
	if s.delim >= utf8.RuneSelf {
		return ErrInvalidDelimiter
	}
	if s.text == "" {
		return ErrEmptyInput
	}
	if opts.withMultipleWords && strings.IndexByte(s.text, s.delim) < 0 {
		return ErrDelimiterNotFound
	}
	return s.checkSorted()
}

func (s SortedString) checkSorted() error {
	var err error
	var prev string
	s.Enumerate(func(index, offset int, word string) EnumerationResult {
		if index > 0 && word < prev {
			err = &UnsortedError{Index: index, Offset: offset, Prev: prev, Next: word}
			return Stop
		}
		prev = word
		return Continue
	})
	return err
}

// Enumerate calls fn for every word in order until fn returns Stop.
func (s SortedString) Enumerate(fn EnumFn) {
	start := 0
	for index := 0; ; index++ {
		end := strings.IndexByte(s.text[start:], s.delim)
		if end < 0 {
			fn(index, start, s.text[start:])
			return
		}
		end += start
		if fn(index, start, s.text[start:end]) == Stop {
			return
		}
		start = end + 1
	}
}

// Text returns the underlying delimited text.
func (s SortedString) Text() string {
	return s.text
}

// Delimiter returns the byte separating words.
func (s SortedString) Delimiter() byte {
	return s.delim
}

// Len returns the length of the text in bytes.
func (s SortedString) Len() int {
	return len(s.text)
}

// NumWords counts the words. This is a linear scan of the text.
func (s SortedString) NumWords() int {
	return strings.Count(s.text, string([]byte{s.delim})) + 1
}

// Word returns the text covered by r, or "" if r does not lie within the text.
func (s SortedString) Word(r Range) string {
	if r.Start < 0 || r.Start > r.End || r.End > len(s.text) {
		return ""
	}
	return s.text[r.Start:r.End]
}

func (s SortedString) String() string {
	return fmt.Sprintf("SortedString(%q, %q)", s.text, rune(s.delim))
}
