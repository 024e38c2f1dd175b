package gen

import (
	"go/token"
	"strconv"
)

// hoister moves composite adapter expressions into package-level variables
// named prefix1, prefix2, ... in order of first use. Identical spellings share
// one variable and names already declared in the file are skipped.
type hoister struct {
	prefix string
	idents identSet
	byExpr map[string]string
	vars   []adapterVar
	last   int
}

func newHoister(prefix string, idents identSet) *hoister {
	return &hoister{
		prefix: prefix,
		idents: idents,
		byExpr: make(map[string]string),
	}
}

// adapter returns the identifier to reference expr by. Plain identifiers are
// returned as is.
func (h *hoister) adapter(expr string) string {
	if token.IsIdentifier(expr) {
		return expr
	}

	if name, ok := h.byExpr[expr]; ok {
		return name
	}

	name := h.fresh()
	h.byExpr[expr] = name
	h.vars = append(h.vars, adapterVar{Name: name, Expr: expr})

	return name
}

func (h *hoister) fresh() string {
	for {
		h.last++

		name := h.prefix + strconv.Itoa(h.last)
		if _, taken := h.idents[name]; !taken {
			h.idents[name] = ""
			return name
		}
	}
}
