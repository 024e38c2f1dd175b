// Package fixture holds native types exercising the planner's diagnostics.
package fixture

type Root struct {
	Items   []Item
	Mode    Mode
	Label   Label
	Ratio float64 `py:"renamed_ratio"`
}

type Hidden struct {
	Value   int32
	Scratch int `py:"-"`
	cache   int
}

type Item struct {
	Value  int32
	Weight *float32
}

type Label string

type Mode uint8

const (
	ModeFirst Mode = iota + 1
	ModeSecond
)

type Unsupported struct {
	Lookup map[string]int
	Double **int
	Child  Child
}

type Child struct {
	X float32
}

type Node struct {
	Value    int64
	Children []Node
}

type Embedding struct {
	Child
	Y float32
}

type Holder struct {
	Child Child
}
