package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"transfrom", "transform", 2},
		{"vertex_adjacency", "vertex_adjacencies", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	assert.InDelta(t, 1.0, LevenshteinNormalized("", ""), 1e-9)
	assert.InDelta(t, 0.0, LevenshteinNormalized("abc", "xyz"), 1e-9)
	assert.InDelta(t, 1.0-3.0/7.0, LevenshteinNormalized("kitten", "sitting"), 1e-9)
	assert.InDelta(t, 1.0, NormalizedLevenshteinScore("MeshObjectName", "mesh_object_name"), 1e-9)
}

func BenchmarkNormalizedLevenshteinScore(b *testing.B) {
	for range b.N {
		NormalizedLevenshteinScore("MeshObjectSubindex", "mesh_object_sub_index")
	}
}
