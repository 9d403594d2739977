package sortedstring

import (
	"sort"
	"strings"
)

// Sort splits text on delim, sorts the words in byte order and joins them
// again, giving text that NewChecked accepts. Empty words are kept and sort
// first.
func Sort(text string, delim byte) string {
	sep := string([]byte{delim})
	words := strings.Split(text, sep)
	sort.Strings(words)
	return strings.Join(words, sep)
}
