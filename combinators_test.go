package climatch

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptionalReturnsValueOnMatch(t *testing.T) {
	var dest bool
	var present bool
	m := Optional(BoolArg(&dest), &present)

	c := NewCursor([]string{"true"})
	state := m.Match(c)
	if state != Matched {
		t.Fatalf("expected Matched, got %v", state)
	}
	if !present {
		t.Error("expected present marker set")
	}
	if dest != true {
		t.Error("expected dest true")
	}
}

func TestOptionalNeverPropagatesAbsence(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{name: "empty input", tokens: nil},
		{name: "non-matching token", tokens: []string{"banana"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dest bool
			var present bool
			m := Optional(BoolArg(&dest), &present)

			c := NewCursor(tt.tokens)
			state := m.Match(c)
			if state != MatchedEmpty {
				t.Fatalf("expected MatchedEmpty, got %v", state)
			}
			if present {
				t.Error("expected present marker unset")
			}
			if c.Pos() != -1 {
				t.Errorf("expected cursor restored to pre-attempt position, pos = %d", c.Pos())
			}
		})
	}
}

func TestOptionalRejectsOptionalOperand(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Optional(Optional(x)) to panic")
		}
	}()
	inner := Optional(StringArg(nil), nil)
	Optional(inner, nil)
}

func TestOptionalRejectsLiteralOperand(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Optional(Literal(x)) to panic")
		}
	}()
	Optional(Literal("word"), nil)
}

func TestOrIsLeftBiased(t *testing.T) {
	// Both alternatives accept "123"; the left one must win.
	var n int
	var s string
	m := Or(NumberArg(&n), StringArg(&s))

	c := NewCursor([]string{"123"})
	state := m.Match(c)
	if state != Matched {
		t.Fatalf("expected Matched, got %v", state)
	}
	if n != 123 {
		t.Errorf("expected left operand to bind 123, got %d", n)
	}
	if s != "" {
		t.Errorf("expected right operand untouched, got %q", s)
	}
	if c.Pos() != 0 {
		t.Errorf("expected cursor to reflect left consumption only, pos = %d", c.Pos())
	}
}

func TestOrFallsBackToRight(t *testing.T) {
	var n int
	var s string
	m := Or(NumberArg(&n), StringArg(&s))

	c := NewCursor([]string{"hello"})
	state := m.Match(c)
	if state != Matched {
		t.Fatalf("expected Matched via right operand, got %v", state)
	}
	if s != "hello" {
		t.Errorf("expected right operand to bind %q, got %q", "hello", s)
	}
}

func TestOrBothFail(t *testing.T) {
	var n int
	var b bool
	m := Or(NumberArg(&n), BoolArg(&b))

	c := NewCursor([]string{"banana"})
	if state := m.Match(c); state != NoMatch {
		t.Fatalf("expected NoMatch, got %v", state)
	}
	if c.Pos() != -1 {
		t.Errorf("expected cursor restored after both attempts, pos = %d", c.Pos())
	}
}

func TestOrFlattensTypeNames(t *testing.T) {
	inner := Or(NumberArg(nil), BoolArg(nil))
	outer := Or(inner, StringArg(nil))

	want := []string{"number", "boolean", "string"}
	if diff := cmp.Diff(want, outer.TypeNames()); diff != "" {
		t.Errorf("TypeNames mismatch (-want +got):\n%s", diff)
	}
}

func TestOrRejectsLiteralOperand(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Or with literal operand to panic")
		}
		if !strings.Contains(r.(string), "literal") {
			t.Errorf("unexpected panic message: %v", r)
		}
	}()
	Or(Literal("add"), StringArg(nil))
}

func TestOrRejectsOptionalOperand(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Or with optional operand to panic")
		}
	}()
	Or(StringArg(nil), Optional(NumberArg(nil), nil))
}

func TestNamedOverridesDisplayOnly(t *testing.T) {
	var n int
	m := Named(NumberArg(&n), "count")

	if m.DisplayName() != "count" {
		t.Errorf("DisplayName = %q, want %q", m.DisplayName(), "count")
	}
	if diff := cmp.Diff([]string{"number"}, m.TypeNames()); diff != "" {
		t.Errorf("TypeNames changed by Named (-want +got):\n%s", diff)
	}

	c := NewCursor([]string{"9"})
	if state := m.Match(c); state != Matched || n != 9 {
		t.Errorf("Named must not alter parse behavior; state=%v n=%d", state, n)
	}
}

func TestOptionalOfOrRewindsAcrossAlternatives(t *testing.T) {
	// Optional wrapping an alternation still rewinds cleanly when neither
	// alternative matches.
	var n int
	var b bool
	var present bool
	m := Optional(Or(NumberArg(&n), BoolArg(&b)), &present)

	c := NewCursor([]string{"banana"})
	state := m.Match(c)
	if state != MatchedEmpty {
		t.Fatalf("expected MatchedEmpty, got %v", state)
	}
	if c.Pos() != -1 {
		t.Errorf("expected full rewind, pos = %d", c.Pos())
	}

	c = NewCursor([]string{"false"})
	state = m.Match(c)
	if state != Matched || b != false || !present {
		t.Errorf("expected Matched via boolean alternative; state=%v present=%v", state, present)
	}
}
