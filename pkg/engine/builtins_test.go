package engine

import (
	"strings"
	"testing"
)

func TestPreprocessKeywords(t *testing.T) {
	got := preprocessSource("(hourglass :height 200)")
	want := `(hourglass "__kw_height" 200)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPreprocessKeywordWithHyphen(t *testing.T) {
	// Hyphens inside a keyword are preserved; the keyword is consumed
	// whole before kebab conversion sees it.
	got := preprocessSource(":wall-offset 4")
	want := `"__kw_wall-offset" 4`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPreprocessKebabIdentifiers(t *testing.T) {
	got := preprocessSource("(curved-neck)")
	want := "(curved_neck)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPreprocessSubtractionUntouched(t *testing.T) {
	cases := []string{"(- 5 3)", "(- x 3)", "(foo -3)"}
	for _, src := range cases {
		got := preprocessSource(src)
		if strings.Contains(got, "_") {
			t.Errorf("%q was rewritten to %q", src, got)
		}
	}
}

func TestPreprocessComments(t *testing.T) {
	got := preprocessSource(";; a comment\n(hourglass)")
	if !strings.HasPrefix(got, "// a comment\n") {
		t.Errorf("comment not converted: %q", got)
	}
	if !strings.Contains(got, "(hourglass)") {
		t.Errorf("code after comment lost: %q", got)
	}
}

func TestPreprocessStringsUntouched(t *testing.T) {
	src := `(print "a :keyword and curved-neck inside")`
	got := preprocessSource(src)
	if got != src {
		t.Errorf("string literal rewritten: %q", got)
	}
}

func TestPreprocessAssignOperator(t *testing.T) {
	src := "(def x := 5)"
	got := preprocessSource(src)
	if got != src {
		t.Errorf("assignment operator rewritten: %q", got)
	}
}
