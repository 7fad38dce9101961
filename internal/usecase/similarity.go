package usecase

import "strings"

// minTokenLen filters noise tokens ("of", "12", "oz") before set comparison.
// Applied uniformly to both sides of every token comparison.
const minTokenLen = 3

// TokenSimilarity computes Jaccard similarity over the lowercased whitespace
// tokens of both strings. Tokens shorter than minTokenLen runes are dropped.
// Returns 0 when either token set is empty after filtering.
func TokenSimilarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for token := range setA {
		if setB[token] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// tokenSet splits a string into a set of normalized lowercase tokens.
func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(s)) {
		if len([]rune(word)) < minTokenLen {
			continue
		}
		set[word] = true
	}
	return set
}

// EditSimilarity computes a Levenshtein-based similarity between two strings
// after lowercasing: (longerLen - distance) / longerLen. Two empty strings
// are identical (1.0); exactly one empty string is a total mismatch (0).
func EditSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0
	}

	longer := len([]rune(a))
	if l := len([]rune(b)); l > longer {
		longer = l
	}

	distance := levenshteinDistance(a, b)
	return float64(longer-distance) / float64(longer)
}

// levenshteinDistance calculates the edit distance between two strings
// (substitution, insertion, and deletion all cost 1).
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Use two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
