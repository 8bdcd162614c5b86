package css

import (
	"testing"
)

func TestParseSimpleSelectorID(t *testing.T) {
	p := NewParser("#test_id")
	selector := p.parse_simple_selector()
	if selector.ID != "test_id" {
		t.Errorf("expected id 'test_id', got %q", selector.ID)
	}
}

func TestParseSimpleSelectorTag(t *testing.T) {
	p := NewParser("p")
	selector := p.parse_simple_selector()
	if selector.TagName != "p" {
		t.Errorf("expected tag 'p', got %q", selector.TagName)
	}
}

func TestParseSimpleSelectorClass(t *testing.T) {
	p := NewParser(".test_class")
	selector := p.parse_simple_selector()
	if len(selector.Classes) != 1 || selector.Classes[0] != "test_class" {
		t.Errorf("expected classes ['test_class'], got %v", selector.Classes)
	}
}

func TestParseSimpleSelectorCombined(t *testing.T) {
	p := NewParser("div#main.note.wide")
	selector := p.parse_simple_selector()
	if selector.TagName != "div" {
		t.Errorf("expected tag 'div', got %q", selector.TagName)
	}
	if selector.ID != "main" {
		t.Errorf("expected id 'main', got %q", selector.ID)
	}
	if len(selector.Classes) != 2 || selector.Classes[0] != "note" || selector.Classes[1] != "wide" {
		t.Errorf("expected classes ['note', 'wide'], got %v", selector.Classes)
	}
}

func TestParseUniversalSelector(t *testing.T) {
	p := NewParser("*")
	selector := p.parse_simple_selector()
	if selector.TagName != "" || selector.ID != "" || len(selector.Classes) != 0 {
		t.Errorf("universal selector should carry no constraints, got %v", selector)
	}
	if selector.Specificity() != (Specificity{0, 0, 0}) {
		t.Errorf("universal selector should have zero specificity, got %v", selector.Specificity())
	}
	if selector.String() != "*" {
		t.Errorf("expected '*', got %q", selector.String())
	}
}

func TestParseSimpleSelectorTagOverwrite(t *testing.T) {
	// two bare identifier runs in one simple selector keep only the
	// last one
	p := NewParser("p*q")
	selector := p.parse_simple_selector()
	if selector.TagName != "q" {
		t.Errorf("expected last tag name 'q' to win, got %q", selector.TagName)
	}
}

func TestSpecificityCompare(t *testing.T) {
	id := (&SimpleSelector{ID: "x"}).Specificity()
	class := (&SimpleSelector{Classes: []string{"c"}}).Specificity()
	manyClasses := (&SimpleSelector{Classes: []string{"a", "b", "c"}}).Specificity()
	tag := (&SimpleSelector{TagName: "p"}).Specificity()

	if id.Compare(manyClasses) <= 0 {
		t.Error("an id should outweigh any number of classes")
	}
	if class.Compare(tag) <= 0 {
		t.Error("a class should outweigh a tag")
	}
	if tag.Compare(Specificity{}) <= 0 {
		t.Error("a tag should outweigh the universal selector")
	}
	if id.Compare(id) != 0 {
		t.Error("equal specificities should compare as a tie")
	}
}

func TestMultipleSelector(t *testing.T) {
	p := NewParser("#test_id, p, .test_class1, .test_class2 {}")
	selectors, err := p.ParseSelectors()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selectors) != 4 {
		t.Fatalf("expected 4 selectors, got %d", len(selectors))
	}

	// descending specificity: the id first, the two classes in input
	// order, the tag last
	s1 := selectors[0].(*SimpleSelector)
	if s1.ID != "test_id" {
		t.Errorf("expected id selector first, got %v", s1)
	}
	s2 := selectors[1].(*SimpleSelector)
	if len(s2.Classes) != 1 || s2.Classes[0] != "test_class1" {
		t.Errorf("expected .test_class1 second, got %v", s2)
	}
	s3 := selectors[2].(*SimpleSelector)
	if len(s3.Classes) != 1 || s3.Classes[0] != "test_class2" {
		t.Errorf("expected .test_class2 third, got %v", s3)
	}
	s4 := selectors[3].(*SimpleSelector)
	if s4.TagName != "p" {
		t.Errorf("expected tag selector last, got %v", s4)
	}
}

func TestSelectorString(t *testing.T) {
	p := NewParser("div#main.note")
	selector := p.parse_simple_selector()
	if selector.String() != "div#main.note" {
		t.Errorf("expected 'div#main.note', got %q", selector.String())
	}
}
