/*
Package sortedstring performs binary search over a sorted list of words that is
stored as one delimiter-separated string, such as "abc,def,ghi" or the contents
of a newline-separated dictionary file.

Holding a large word list as a []string costs a string header (pointer and
length) per word, which on 64-bit platforms is often larger than the words
themselves. A SortedString keeps only the raw text and the delimiter. Lookups
bisect the text by byte offset and scan outward from each pivot to the
surrounding delimiters to recover the word being compared. No offsets table is
ever built, so memory use is exactly the size of the text.

There are two ways to create a SortedString. NewChecked verifies that the
delimiter is ASCII, that the text is non-empty and that the words are sorted;
it is what you want for data read at runtime. NewUnchecked performs no checks
and no allocation, so it can be used to initialise a package-level variable
from a string constant:

	var words = sortedstring.NewUnchecked("apple\nbanana\ncherry", '\n')

Searching an unchecked SortedString built from unsorted text gives wrong
answers, but never panics and always terminates.

Search returns the byte range of the matching word, or false together with the
range of the last word it compared against. The delimiter must be ASCII so that
it can never appear inside a multi-byte UTF-8 sequence; words themselves may
be any UTF-8 text.

Use Sort to prepare unsorted input and Load to read a word list from disk.
*/
package sortedstring
