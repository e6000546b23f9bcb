package parser

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/gaarutyunov/cppdecl/pkg/config"
)

// attrBracketLexer tokenizes only the bracket punctuation relevant to
// "[[...]]" attributes. It exists purely as an independent cross-check on
// parseBracketedAttribute's own depth-counting loop (see DESIGN.md):
// nothing in the shipped parsing path depends on this lexer.
var attrBracketLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Open", Pattern: `\[\[`},
	{Name: "Close", Pattern: `\]\]`},
	{Name: "Other", Pattern: `[^\[\]]+`},
})

// countTopLevelBracketGroups tokenizes src with attrBracketLexer and counts
// how many balanced "[[...]]" groups it sees at nesting depth zero.
func countTopLevelBracketGroups(t *testing.T, src string) int {
	t.Helper()
	lex, err := attrBracketLexer.Lex("attrs_test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("lexer init failed: %v", err)
	}
	depth, groups := 0, 0
	for {
		tok, err := lex.Next()
		if err != nil {
			t.Fatalf("lex error: %v", err)
		}
		if tok.EOF() {
			break
		}
		switch tok.Value {
		case "[[":
			depth++
		case "]]":
			depth--
			if depth == 0 {
				groups++
			}
		}
	}
	return groups
}

// TestParseBracketedAttributeAgreesWithIndependentLexer checks that the
// hand-written scanner's notion of "one balanced [[...]] group" matches an
// independently tokenized count, including a nested-brackets case.
func TestParseBracketedAttributeAgreesWithIndependentLexer(t *testing.T) {
	src := `[[nodiscard]] [[deprecated("x")]] [[vendor::attr[[nested]]]]`

	p := New(nil)
	s := newState(src)
	found := 0
	for {
		s.skipWhitespace()
		if !s.peekString(true, "[[") {
			break
		}
		if _, ok := p.parseBracketedAttribute(s); !ok {
			t.Fatalf("parseBracketedAttribute failed to consume a well-formed group at %q", s.rest())
		}
		found++
	}

	want := countTopLevelBracketGroups(t, src)
	if found != want {
		t.Errorf("hand-written scanner found %d top-level attribute groups, independent lexer found %d", found, want)
	}
	if found != 3 {
		t.Errorf("expected 3 top-level attribute groups, got %d", found)
	}
}

func TestParseAttributeListConfiguredForms(t *testing.T) {
	cfg := &config.Config{
		IDAttributes:    []string{"CPPDECL_EXPORT"},
		ParenAttributes: []string{"CPPDECL_ALIGN"},
	}
	p := New(cfg)
	s := newState(`CPPDECL_EXPORT CPPDECL_ALIGN(8) [[nodiscard]]`)

	list := p.parseAttributeList(s)
	if list == nil || len(list.Attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %v", list)
	}
	if list.Attrs[0].Identifier != "CPPDECL_EXPORT" || list.Attrs[0].HasParen {
		t.Errorf("expected a bare id-attribute, got %+v", list.Attrs[0])
	}
	if list.Attrs[1].Identifier != "CPPDECL_ALIGN" || !list.Attrs[1].HasParen || list.Attrs[1].ParenArg != "(8)" {
		t.Errorf("expected a paren-attribute '(8)', got %+v", list.Attrs[1])
	}
	if !list.Attrs[2].IsBracket || list.Attrs[2].Bracketed != "[[nodiscard]]" {
		t.Errorf("expected a bracketed attribute, got %+v", list.Attrs[2])
	}
}
