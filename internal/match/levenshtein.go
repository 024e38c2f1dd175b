package match

// Levenshtein computes the edit distance between two strings: the minimum
// number of single byte insertions, deletions or substitutions turning a
// into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// keep the row as short as possible
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			next := min(row[i]+1, row[i-1]+1, diag+cost)
			diag = row[i]
			row[i] = next
		}
	}

	return row[len(a)]
}

// LevenshteinNormalized computes a similarity score between 0 and 1, 1 being
// identical strings: 1 - distance / max(len(a), len(b)).
func LevenshteinNormalized(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(longest)
}

// NormalizedLevenshteinScore computes the similarity of two identifiers after
// normalizing them.
func NormalizedLevenshteinScore(a, b string) float64 {
	return LevenshteinNormalized(NormalizeIdent(a), NormalizeIdent(b))
}
