package session

// Similarity returns (maxLen - editDistance) / maxLen over runes, in [0,1].
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return 1
	}
	return float64(maxLen-levenshtein(ra, rb)) / float64(maxLen)
}

// levenshtein is the two-row edit distance with unit costs.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			cur[j] = 1 + min(prev[j-1], cur[j-1], prev[j])
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
