package climatch

import (
	"testing"
)

func TestStringArgMatchesAnyToken(t *testing.T) {
	var dest string
	m := StringArg(&dest)

	c := NewCursor([]string{"whatever"})
	if state := m.Match(c); state != Matched {
		t.Fatalf("expected Matched, got %v", state)
	}
	if dest != "whatever" {
		t.Errorf("expected dest %q, got %q", "whatever", dest)
	}
}

func TestStringArgExhausted(t *testing.T) {
	var dest string
	m := StringArg(&dest)

	c := NewCursor(nil)
	if state := m.Match(c); state != NoMatch {
		t.Fatalf("expected NoMatch on exhausted cursor, got %v", state)
	}
}

func TestNumberArgStrictParsing(t *testing.T) {
	tests := []struct {
		name  string
		token string
		state MatchState
		want  int
	}{
		{name: "plain integer", token: "42", state: Matched, want: 42},
		{name: "negative integer", token: "-7", state: Matched, want: -7},
		{name: "trailing garbage rejected", token: "12abc", state: NoMatch},
		{name: "float rejected", token: "3.14", state: NoMatch},
		{name: "word rejected", token: "twelve", state: NoMatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dest int
			m := NumberArg(&dest)
			c := NewCursor([]string{tt.token})

			state := m.Match(c)
			if state != tt.state {
				t.Fatalf("Match(%q) = %v, want %v", tt.token, state, tt.state)
			}
			if state == Matched && dest != tt.want {
				t.Errorf("dest = %d, want %d", dest, tt.want)
			}
			if state == NoMatch && c.Pos() != -1 {
				t.Errorf("failed match must restore cursor; pos = %d", c.Pos())
			}
		})
	}
}

func TestBoolArgCaseInsensitive(t *testing.T) {
	tests := []struct {
		token string
		state MatchState
		want  bool
	}{
		{token: "true", state: Matched, want: true},
		{token: "TRUE", state: Matched, want: true},
		{token: "False", state: Matched, want: false},
		{token: "yes", state: NoMatch},
		{token: "1", state: NoMatch},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			var dest bool
			m := BoolArg(&dest)
			c := NewCursor([]string{tt.token})

			state := m.Match(c)
			if state != tt.state {
				t.Fatalf("Match(%q) = %v, want %v", tt.token, state, tt.state)
			}
			if state == Matched && dest != tt.want {
				t.Errorf("dest = %v, want %v", dest, tt.want)
			}
		})
	}
}

func TestLiteralMatchesCaseInsensitively(t *testing.T) {
	m := Literal("add")

	for _, token := range []string{"add", "ADD", "Add"} {
		c := NewCursor([]string{token})
		if state := m.Match(c); state != Matched {
			t.Errorf("Match(%q) = %v, want Matched", token, state)
		}
	}

	c := NewCursor([]string{"sub"})
	if state := m.Match(c); state != NoMatch {
		t.Fatalf("Match(%q) = %v, want NoMatch", "sub", state)
	}
	if c.Pos() != -1 {
		t.Errorf("failed literal must restore cursor; pos = %d", c.Pos())
	}
}

func TestLiteralIsLiteral(t *testing.T) {
	m := Literal("serve")
	if !m.IsLiteral() {
		t.Error("Literal must report IsLiteral")
	}
	if m.IsOptional() {
		t.Error("Literal must not report IsOptional")
	}
	if got := m.TypeNames()[0]; got != "serve" {
		t.Errorf("TypeNames()[0] = %q, want %q", got, "serve")
	}
}

func TestMatchersNilDest(t *testing.T) {
	// A nil destination only means the caller ignores the value.
	c := NewCursor([]string{"123", "true", "text"})
	if state := NumberArg(nil).Match(c); state != Matched {
		t.Fatalf("NumberArg(nil) = %v, want Matched", state)
	}
	if state := BoolArg(nil).Match(c); state != Matched {
		t.Fatalf("BoolArg(nil) = %v, want Matched", state)
	}
	if state := StringArg(nil).Match(c); state != Matched {
		t.Fatalf("StringArg(nil) = %v, want Matched", state)
	}
}
