package sortedstring

import (
	"fmt"
	"strings"
)

// Range is a half-open byte range [Start, End) into the text of a SortedString.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes in r.
func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Search looks for word and reports whether it was found. On success the
// returned Range covers the matching word. Otherwise it covers the last word
// compared against, which is a neighbour of where word would be inserted.
//
// A word containing the delimiter can never match and yields the empty Range
// at offset 0. If the list holds duplicates, any one of them may be returned.
func (s SortedString) Search(word string) (Range, bool) {
	r, found, _ := s.search(word)
	return r, found
}

// Contains reports whether word is one of the words in s.
func (s SortedString) Contains(word string) bool {
	_, found := s.Search(word)
	return found
}

// search bisects the text by byte offset. The live span [lo, hi] always
// starts at the beginning of a word and ends at the end of a word, so it is
// still live when lo == hi and holds a single empty word. Every probe removes
// the probed word from the span, so hi-lo shrinks by at least one byte per
// iteration.
func (s SortedString) search(word string) (last Range, found bool, probes int) {
	if strings.IndexByte(word, s.delim) >= 0 {
		return Range{}, false, 0
	}

	lo, hi := 0, len(s.text)
	for lo <= hi {
		mid := lo + (hi-lo)/2
		last = s.wordAt(lo, mid, hi)
		probes++

		switch strings.Compare(word, s.text[last.Start:last.End]) {
		case 0:
			return last, true, probes
		case -1:
			hi = last.Start - 1
		default:
			lo = last.End + 1
		}
	}

	return last, false, probes
}

// wordAt scans outward from mid to the nearest delimiters, never looking
// outside [lo, hi). A delimiter at mid itself ends the word.
func (s SortedString) wordAt(lo, mid, hi int) Range {
	start := lo
	if i := strings.LastIndexByte(s.text[lo:mid], s.delim); i >= 0 {
		start = lo + i + 1
	}

	end := hi
	if i := strings.IndexByte(s.text[mid:hi], s.delim); i >= 0 {
		end = mid + i
	}

	return Range{Start: start, End: end}
}
