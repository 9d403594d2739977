package sortedstring

import (
	"math/bits"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxProbes is the most probes a search over n bytes may take: every probe at
// least halves the live span.
func maxProbes(n int) int {
	return bits.Len(uint(n)) + 1
}

func randomWords(rng *rand.Rand, count, maxLen int) []string {
	const letters = "abcdefghijklmnopqrstuvwxyzäö"
	runes := []rune(letters)
	words := make([]string, count)
	for i := range words {
		var b strings.Builder
		n := 1 + rng.Intn(maxLen)
		for j := 0; j < n; j++ {
			b.WriteRune(runes[rng.Intn(len(runes))])
		}
		words[i] = b.String()
	}
	sort.Strings(words)
	return words
}

func TestSearch_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, count := range []int{1, 2, 3, 10, 100, 1000, 5000} {
		words := randomWords(rng, count, 12)
		s, err := NewChecked(strings.Join(words, "\n"), '\n')
		require.NoError(t, err)

		present := make(map[string]bool, len(words))
		for _, word := range words {
			present[word] = true

			r, found, probes := s.search(word)
			require.True(t, found, "word %q in %d words", word, count)
			require.Equal(t, word, s.Word(r))
			assert.LessOrEqual(t, probes, maxProbes(s.Len()))
		}

		for _, word := range randomWords(rng, 500, 14) {
			r, found, probes := s.search(word)
			assert.Equal(t, present[word], found, "word %q", word)
			assert.LessOrEqual(t, probes, maxProbes(s.Len()))
			assert.True(t, 0 <= r.Start && r.Start <= r.End && r.End <= s.Len(), "range %v", r)
		}
	}
}

func TestSearch_ProbesAlwaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// Shuffled input violates sortedness, which may only cost correctness.
	words := randomWords(rng, 2000, 10)
	rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	s := NewUnchecked(strings.Join(words, ","), ',')

	for _, word := range words {
		r, _, probes := s.search(word)
		assert.LessOrEqual(t, probes, maxProbes(s.Len()))
		assert.True(t, 0 <= r.Start && r.Start <= r.End && r.End <= s.Len(), "range %v", r)
	}
}

func TestSearch_DelimiterInWordSkipsProbing(t *testing.T) {
	s := NewUnchecked("a,b,c", ',')
	r, found, probes := s.search("a,b")
	assert.False(t, found)
	assert.Equal(t, Range{}, r)
	assert.Zero(t, probes)
}

func TestWordAt(t *testing.T) {
	s := NewUnchecked("abc,de,,f", ',')
	tests := []struct {
		lo, mid, hi int
		want        Range
	}{
		{0, 0, 9, Range{0, 3}},
		{0, 2, 9, Range{0, 3}},
		{0, 3, 9, Range{0, 3}},
		{0, 4, 9, Range{4, 6}},
		{0, 7, 9, Range{7, 7}},
		{0, 8, 9, Range{8, 9}},
		{0, 9, 9, Range{8, 9}},
		{4, 5, 6, Range{4, 6}},
		{4, 4, 4, Range{4, 4}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.wordAt(tt.lo, tt.mid, tt.hi), "wordAt(%d, %d, %d)", tt.lo, tt.mid, tt.hi)
	}
}

func FuzzSearch(f *testing.F) {
	f.Add("abc,def,ghi,jkl,mno,pqr,stu,vwx,yz", "ghi", byte(','))
	f.Add(",,,,", "", byte(','))
	f.Add("c,b,a", "b", byte(','))
	f.Add("Hündin\nKatze\nMäuschen", "Mäuschen", byte('\n'))
	f.Add("\xff\xfe\xff", "\xfe", byte(0xff))

	f.Fuzz(func(t *testing.T, text, word string, delim byte) {
		s := NewUnchecked(text, delim)
		r, found, probes := s.search(word)

		if r.Start < 0 || r.Start > r.End || r.End > len(text) {
			t.Fatalf("range %v out of bounds for %d bytes", r, len(text))
		}
		if probes > maxProbes(len(text)) {
			t.Fatalf("%d probes for %d bytes", probes, len(text))
		}
		if found && text[r.Start:r.End] != word {
			t.Fatalf("found %q at %v, want %q", text[r.Start:r.End], r, word)
		}

		if checked, err := NewChecked(text, delim); err == nil && !strings.Contains(word, string([]byte{delim})) {
			want := false
			checked.Enumerate(func(_ int, _ int, w string) EnumerationResult {
				if w == word {
					want = true
					return Stop
				}
				return Continue
			})
			if found != want {
				t.Fatalf("search(%q) found=%v, enumeration found=%v", word, found, want)
			}
		}
	})
}
