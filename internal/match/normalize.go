package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier to lower case without separators, so
// "MeshObjectName", "mesh_object_name" and "meshObjectName" compare equal.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase words. Separators and
// case changes start a new word; an acronym stays one word.
// Examples:
//   - "MeshObjectID" -> ["mesh", "object", "id"]
//   - "vertex_adjacency" -> ["vertex", "adjacency"]
//   - "UVSet" -> ["uv", "set"]
func TokenizeIdent(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsWord reports a lower to upper transition, or the last capital of an
// acronym followed by a lowercase letter ("UVSet" splits before 'S').
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
