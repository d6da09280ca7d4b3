package search

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveFound is the O(n*m) reference the linear scan must agree with.
func naiveFound(pattern, text string) bool {
	if pattern == "" {
		return false
	}
	for i := 0; i+len(pattern) <= len(text); i++ {
		if text[i:i+len(pattern)] == pattern {
			return true
		}
	}
	return false
}

func TestFound_Table(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    bool
	}{
		{"simple hit", "ana", "banana", true},
		{"simple miss", "xyz", "banana", false},
		{"empty pattern is not found", "", "banana", false},
		{"empty text", "a", "", false},
		{"both empty", "", "", false},
		{"pattern longer than text", "banana", "ban", false},
		{"whole text match", "banana", "banana", true},
		{"match at start", "ban", "banana", true},
		{"match at end", "nana", "banana", true},
		{"single byte hit", "n", "banana", true},
		{"repetitive pattern", "aaab", "aaaaaab", true},
		{"repetitive miss", "aaab", "aaaaaaa", false},
		{"overlapping prefixes", "abab", "abacababc", true},
		{"needs lps fallback", "aabaa", "aabaabaaa", true},
		{"spaces and punctuation", "o, w", "hello, world", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Found(tt.pattern, tt.text))
		})
	}
}

func TestBuildLPS(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"a", []int{0}},
		{"aa", []int{0, 1}},
		{"ab", []int{0, 0}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"abab", []int{0, 0, 1, 2}},
		{"aabaaab", []int{0, 1, 0, 1, 2, 2, 3}},
		{"abcabcd", []int{0, 0, 0, 1, 2, 3, 0}},
		{"aabaabaaa", []int{0, 1, 0, 1, 2, 3, 4, 5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, buildLPS(tt.pattern))
		})
	}
}

func TestFound_AgreesWithNaiveReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := "ab" // small alphabet maximizes overlap cases

	for trial := 0; trial < 2000; trial++ {
		text := randomString(rng, alphabet, rng.Intn(30))
		pattern := randomString(rng, alphabet, rng.Intn(8))

		want := naiveFound(pattern, text)
		got := Found(pattern, text)
		require.Equal(t, want, got, "pattern=%q text=%q", pattern, text)
	}
}

func TestScan_TextIndexNeverMovesBackward(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	alphabet := "ab"

	check := func(pattern, text string) {
		t.Helper()
		last := -1
		scan(text, pattern, buildLPS(pattern), func(textIndex int) {
			require.GreaterOrEqual(t, textIndex, last,
				"text index went backward for pattern=%q text=%q", pattern, text)
			last = textIndex
		})
	}

	// Adversarial repetitive input where naive search backtracks heavily.
	check("aaab", strings.Repeat("a", 200))
	check("abababc", strings.Repeat("ab", 100))

	for trial := 0; trial < 500; trial++ {
		text := randomString(rng, alphabet, 1+rng.Intn(50))
		pattern := randomString(rng, alphabet, 1+rng.Intn(6))
		check(pattern, text)
	}
}

func TestScan_VisitsEachTextIndexBoundedTimes(t *testing.T) {
	// Linear time: with the LPS fallback each text position is visited at
	// most twice (once matching, once after a fallback without advancing).
	pattern := "aaaab"
	text := strings.Repeat("a", 1000)

	visits := make(map[int]int)
	scan(text, pattern, buildLPS(pattern), func(textIndex int) {
		visits[textIndex]++
	})

	for index, count := range visits {
		assert.LessOrEqual(t, count, len(pattern),
			"text index %d visited %d times", index, count)
	}
}

func randomString(rng *rand.Rand, alphabet string, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}
