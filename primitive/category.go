package primitive

import (
	"ssbh-bindings/dyn"
)

// SourceEnum enumerates the dynamic scalar variants a leaf may be read from.
type SourceEnum int

const (
	SourceOther SourceEnum = iota
	SourceBool
	SourceInt
	SourceFloat
	SourceStr
)

// SourceOf classifies a dynamic value.
func SourceOf(v dyn.Value) SourceEnum {
	switch v.(type) {
	case dyn.Bool:
		return SourceBool
	case dyn.Int:
		return SourceInt
	case dyn.Float:
		return SourceFloat
	case dyn.Str:
		return SourceStr
	default:
		return SourceOther
	}
}

// CategoryEnum is a bit set of accepted dynamic-to-native leaf coercions.
type CategoryEnum int

type ConversionPair struct {
	From SourceEnum
	To   KindEnum
}

const (
	CategoryExact     CategoryEnum = 1 << iota // bool <- bool, int <- int, float <- float, str <- str
	CategoryBoolInt                            // integer <- bool: True is 1, False is 0
	CategoryIntFloat                           // float <- int: integers are accepted where floats are expected
	CategoryBoolFloat                          // float <- bool

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected

	// CategoryDefault mirrors the host runtime: bool is an int subtype and
	// ints extract as floats, floats never extract as ints.
	CategoryDefault = CategoryAll
)

var conversionPairs map[CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = make(map[CategoryEnum]map[ConversionPair]struct{})

	conversionPairs[CategoryExact] = map[ConversionPair]struct{}{
		{SourceBool, KindBool}:  {},
		{SourceStr, KindString}: {},
	}

	conversionPairs[CategoryBoolInt] = map[ConversionPair]struct{}{}
	conversionPairs[CategoryIntFloat] = map[ConversionPair]struct{}{}
	conversionPairs[CategoryBoolFloat] = map[ConversionPair]struct{}{}

	for kind := KindEnum(0); int(kind) < KindTotal; kind++ {
		switch {
		case kind.IsInteger():
			conversionPairs[CategoryExact][ConversionPair{SourceInt, kind}] = struct{}{}
			conversionPairs[CategoryBoolInt][ConversionPair{SourceBool, kind}] = struct{}{}

		case kind.IsFloat():
			conversionPairs[CategoryExact][ConversionPair{SourceFloat, kind}] = struct{}{}
			conversionPairs[CategoryIntFloat][ConversionPair{SourceInt, kind}] = struct{}{}
			conversionPairs[CategoryBoolFloat][ConversionPair{SourceBool, kind}] = struct{}{}
		}
	}
}

// Allowed reports whether a value of source variant may be read as kind.
func Allowed(from SourceEnum, to KindEnum, allowed CategoryEnum) bool {
	pair := ConversionPair{from, to}

	for category := CategoryEnum(1); category&CategoryAll > 0; category <<= 1 {
		if allowed&category == 0 {
			continue
		}

		if _, ok := conversionPairs[category][pair]; ok {
			return true
		}
	}

	return false
}
