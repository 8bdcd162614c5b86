package css

import (
	"strings"
)

// Specificity is the CSS specificity of a simple selector with the
// convention [id, class, tag], compared lexicographically so an id
// outweighs any number of classes and a class outweighs a tag.
type Specificity [3]int

// Compare returns a negative number if s is less specific than other, a
// positive number if more specific, and zero on a tie.
func (s Specificity) Compare(other Specificity) int {
	for i := range s {
		if s[i] != other[i] {
			return s[i] - other[i]
		}
	}
	return 0
}

// Selector selects document nodes for a rule. Simple selectors are the
// only kind today; combinators would be added as further implementations.
type Selector interface {
	Specificity() Specificity
	String() string
}

// SimpleSelector combines an optional tag name, an optional id and any
// number of classes. The zero value matches everything, which is what
// the universal selector `*` produces.
type SimpleSelector struct {
	TagName string
	ID      string
	Classes []string
}

// Specificity is recomputed from the populated fields on each call.
func (s *SimpleSelector) Specificity() Specificity {
	spec := Specificity{0, len(s.Classes), 0}
	if s.ID != "" {
		spec[0] = 1
	}
	if s.TagName != "" {
		spec[2] = 1
	}
	return spec
}

func (s *SimpleSelector) String() string {
	out := strings.Builder{}
	out.WriteString(s.TagName)
	if s.ID != "" {
		out.WriteString("#" + s.ID)
	}
	for _, class := range s.Classes {
		out.WriteString("." + class)
	}
	if out.Len() == 0 {
		return "*"
	}
	return out.String()
}
