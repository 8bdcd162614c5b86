package css

import (
	"fmt"
	"strconv"
)

// Rule pairs a selector list, sorted most specific first, with the
// declarations that apply to matching nodes.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

type Stylesheet struct {
	Rules []Rule
}

// Declaration is one `name: value;` pair inside a rule body.
type Declaration struct {
	Name  string
	Value Value
}

// Value is a declaration value: a keyword, a length or a color.
type Value interface {
	String() string
}

type Keyword struct {
	Name string
}

func (k Keyword) String() string {
	return k.Name
}

type Length struct {
	Quantity float64
	Unit     Unit
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Quantity, 'f', -1, 64) + l.Unit.String()
}

type Unit int

const (
	Px Unit = iota
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	default:
		return ""
	}
}

// Color is an rgba color.
type Color struct {
	R, G, B, A uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
