package match

import "strings"

// Closest returns the candidate with the smallest edit distance to name,
// case-insensitively. It returns false when no candidate is close enough to
// plausibly be a typo (distance greater than half the name's length).
func Closest(name string, candidates []string) (string, bool) {
	lower := strings.ToLower(name)

	best := ""
	bestDist := -1

	for _, c := range candidates {
		d := Levenshtein(lower, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	if bestDist < 0 || bestDist > max(1, len(name)/2) {
		return "", false
	}

	return best, true
}

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-character insertions, deletions, or substitutions required
// to transform one into the other. Two-row rolling computation, O(len(a))
// space.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a as the shorter string so the rows stay small.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
