package common

import (
	"path"
	"strings"
	"unicode"
)

// UnknownStr is the String() of enum values without a name.
const UnknownStr = "unknown"

// SnakeCase converts a Go identifier to snake_case. Initialisms stay together:
// "MeshObjectIndex" -> "mesh_object_index", "MeshExData" -> "mesh_ex_data",
// "UVSet0" -> "uv_set0".
func SnakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1])

			if prevLower || nextLower {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// PkgAlias returns the default import name of pkgPath, "" for an empty path.
// A trailing major version element ("/v2") is skipped.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if len(base) > 1 && base[0] == 'v' && strings.Trim(base[1:], "0123456789") == "" {
		return path.Base(path.Dir(pkgPath))
	}

	return base
}
