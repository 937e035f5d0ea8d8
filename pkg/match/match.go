// Package match scores how close two titles are, for verifying that a
// catalog search hit actually corresponds to the title the user typed.
package match

import "strings"

// Similarity returns a score in [0,1]: 1 minus the Levenshtein distance
// normalized by the longer string's length. Comparison is case-insensitive.
// Two empty strings are identical, so the score is 1.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// Levenshtein computes the edit distance between a and b with unit-cost
// insertions, deletions and substitutions.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	// Single-row DP over rb, rolling ra.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
