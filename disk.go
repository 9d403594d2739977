package sortedstring

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/mmap"
)

// The on-disk form of a SortedString is its text, byte for byte. There is no
// header: the delimiter is supplied again when loading.

// Save writes the text to a file. Returns the number of bytes written
func (s SortedString) Save(filename string) (int64, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}

	n, err := s.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// WriteTo writes the text to w. Returns the number of bytes written
func (s SortedString) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.text)
	return int64(n), err
}

// Load reads a word list from a file and validates it like NewChecked. The
// file is mapped into memory only while it is copied, so the returned
// SortedString does not keep it open.
//
// A file ending in the delimiter (such as a trailing newline) holds an empty
// last word and is therefore rejected as unsorted.
func Load(filename string, delim byte, opt ...Option) (s SortedString, err error) {
	opts := getOpts(opt...)

	f, err := mmap.Open(filename)
	if err != nil {
		return SortedString{}, fmt.Errorf("sortedstring: open %s: %w", filename, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, fmt.Errorf("sortedstring: close %s: %w", filename, cerr))
			s = SortedString{}
		}
	}()

	opts.withLogger.Debug("loading word list", "path", filename, "bytes", f.Len())

	return Read(f, int64(f.Len()), delim, opt...)
}

// Read copies size bytes starting at offset 0 of r and validates them like
// NewChecked.
func Read(r io.ReaderAt, size int64, delim byte, opt ...Option) (SortedString, error) {
	if size < 0 {
		return SortedString{}, fmt.Errorf("sortedstring: negative size %d", size)
	}

	buf := make([]byte, size)
	n, err := r.ReadAt(buf, 0)
	if n < len(buf) {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return SortedString{}, fmt.Errorf("sortedstring: read %d of %d bytes: %w", n, size, err)
	}

	return NewCheckedBytes(buf, delim, opt...)
}
