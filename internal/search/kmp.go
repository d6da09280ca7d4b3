// Package search implements linear-time substring search using the
// Knuth-Morris-Pratt algorithm. The scan reads the text exactly once and
// never moves its text index backward; on a mismatch it falls back through
// the pattern's LPS table instead of rescanning.
package search

// Found reports whether pattern occurs as a contiguous substring of text.
// An empty pattern is reported as not found. Runs in O(len(text) +
// len(pattern)) time.
func Found(pattern, text string) bool {
	if pattern == "" {
		return false
	}
	return scan(text, pattern, buildLPS(pattern), nil)
}

// buildLPS computes the longest-proper-prefix-that-is-also-suffix table for
// pattern. lps[i] is the length of the longest proper prefix of
// pattern[:i+1] that is also a suffix of it.
func buildLPS(pattern string) []int {
	lps := make([]int, len(pattern))

	length := 0
	i := 1
	for i < len(pattern) {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
			continue
		}
		if length != 0 {
			// Characters up to lps[length-1] still match; retry the
			// shorter prefix without advancing i.
			length = lps[length-1]
			continue
		}
		lps[i] = 0
		i++
	}

	return lps
}

// scan runs the KMP text scan. trace, when non-nil, is invoked with the
// current text index at the top of every iteration so tests can verify the
// index never moves backward.
func scan(text, pattern string, lps []int, trace func(textIndex int)) bool {
	ti, pi := 0, 0

	for ti < len(text) {
		if trace != nil {
			trace(ti)
		}

		if text[ti] == pattern[pi] {
			ti++
			pi++
		}

		if pi == len(pattern) {
			return true
		}

		if ti < len(text) && text[ti] != pattern[pi] {
			if pi != 0 {
				pi = lps[pi-1]
			} else {
				ti++
			}
		}
	}

	return false
}
