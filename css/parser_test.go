package css

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStylesheet(t *testing.T) {
	source := `
		h1, .note { margin: auto; color: #cc0000; width: 24px; }
		div { display: none; }
	`
	sheet, err := ParseStylesheet(source)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2)

	rule := sheet.Rules[0]
	require.Len(t, rule.Selectors, 2)
	// the class selector outranks the tag selector
	assert.Equal(t, ".note", rule.Selectors[0].String())
	assert.Equal(t, "h1", rule.Selectors[1].String())

	require.Len(t, rule.Declarations, 3)
	assert.Equal(t, "margin", rule.Declarations[0].Name)
	assert.Equal(t, Keyword{Name: "auto"}, rule.Declarations[0].Value)
	assert.Equal(t, "color", rule.Declarations[1].Name)
	assert.Equal(t, Color{R: 0xcc, G: 0x00, B: 0x00, A: 0xff}, rule.Declarations[1].Value)
	assert.Equal(t, "width", rule.Declarations[2].Name)
	assert.Equal(t, Length{Quantity: 24, Unit: Px}, rule.Declarations[2].Value)

	rule = sheet.Rules[1]
	require.Len(t, rule.Selectors, 1)
	assert.Equal(t, "div", rule.Selectors[0].String())
	require.Len(t, rule.Declarations, 1)
	assert.Equal(t, Keyword{Name: "none"}, rule.Declarations[0].Value)
}

func TestParseShortHexColor(t *testing.T) {
	sheet, err := ParseStylesheet(`p { color: #c00; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, Color{R: 0xcc, G: 0x00, B: 0x00, A: 0xff}, sheet.Rules[0].Declarations[0].Value)
}

func TestParseFractionalLength(t *testing.T) {
	sheet, err := ParseStylesheet(`p { width: 1.5px; }`)
	require.NoError(t, err)
	assert.Equal(t, Length{Quantity: 1.5, Unit: Px}, sheet.Rules[0].Declarations[0].Value)
}

func TestParseEmptyStylesheet(t *testing.T) {
	sheet, err := ParseStylesheet("  \n\t ")
	require.NoError(t, err)
	assert.Empty(t, sheet.Rules)
}

func TestParseRule(t *testing.T) {
	p := NewParser(`#id.big { margin: auto; }`)
	rule, err := p.ParseRule()
	require.NoError(t, err)
	require.Len(t, rule.Selectors, 1)
	selector := rule.Selectors[0].(*SimpleSelector)
	assert.Equal(t, "id", selector.ID)
	assert.Equal(t, []string{"big"}, selector.Classes)
	assert.Equal(t, Specificity{1, 1, 0}, selector.Specificity())
}

func TestParseStylesheetErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   ErrorKind
	}{
		{"unexpected character in selector list", "p & { margin: auto; }", UnexpectedCharacter},
		{"empty selector list", "{ margin: auto; }", EmptySelectorList},
		{"empty selector after comma", "p, { margin: auto; }", EmptySelectorList},
		{"unterminated rule", "p { margin: auto;", UnterminatedRule},
		{"missing semicolon", "p { margin: auto }", UnexpectedCharacter},
		{"unrecognized unit", "p { width: 24pt; }", UnexpectedCharacter},
		{"invalid color", "p { color: #zz; }", UnexpectedCharacter},
		{"selector list never opens a rule", "#id, p, .c1", UnexpectedCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := ParseStylesheet(tt.source)
			assert.Nil(t, sheet, "no partial stylesheet should be returned on failure")
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected a ParseError, got %v", err)
			assert.Equal(t, tt.kind, perr.Kind, "error was: %v", perr)
		})
	}
}
