package css

import (
	"strconv"
)

type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota
	EmptySelectorList
	UnterminatedRule
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case EmptySelectorList:
		return "empty selector list"
	case UnterminatedRule:
		return "unterminated rule"
	default:
		return "parse error"
	}
}

// ParseError is the only error the parser produces. Pos is the byte
// offset in the input at which the failure was detected.
type ParseError struct {
	Kind ErrorKind
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	return e.Kind.String() + " at position " + strconv.Itoa(e.Pos) + ": " + e.Msg
}
