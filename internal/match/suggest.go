package match

import (
	"sort"
)

// DefaultThreshold is the lowest similarity Suggest reports.
const DefaultThreshold = 0.6

// Candidate is a known name scored against a requested one.
type Candidate struct {
	Name  string
	Score float64
}

// RankCandidates scores every known name against name, best first. Equal
// scores keep the order of known.
func RankCandidates(name string, known []string) []Candidate {
	out := make([]Candidate, len(known))
	for i, k := range known {
		out[i] = Candidate{Name: k, Score: NormalizedLevenshteinScore(name, k)}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return out
}

// Suggest returns up to limit known names similar to name, best first.
func Suggest(name string, known []string, limit int) []string {
	var out []string

	for _, c := range RankCandidates(name, known) {
		if len(out) == limit || c.Score < DefaultThreshold {
			break
		}

		out = append(out, c.Name)
	}

	return out
}
