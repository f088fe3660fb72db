package climatch

import (
	"strconv"
	"strings"
)

// Built-in leaf matchers. Each consumes exactly one token via the cursor.
// Destination pointers may be nil when the caller only cares whether the
// command matched.

var _ Matcher = (*stringMatcher)(nil)
var _ Matcher = (*numberMatcher)(nil)
var _ Matcher = (*boolMatcher)(nil)
var _ Matcher = (*literalMatcher)(nil)

type stringMatcher struct {
	dest *string
}

// StringArg matches any single token verbatim; it fails only when the cursor
// is exhausted.
func StringArg(dest *string) Matcher {
	return &stringMatcher{dest: dest}
}

func (m *stringMatcher) TypeNames() []string {
	return []string{"string"}
}
func (m *stringMatcher) DisplayName() string {
	return ""
}
func (m *stringMatcher) IsOptional() bool {
	return false
}
func (m *stringMatcher) IsLiteral() bool {
	return false
}
func (m *stringMatcher) Match(c *Cursor) (state MatchState) {
	var token string
	var ok bool

	token, ok = c.Next()
	if !ok {
		goto end
	}
	if m.dest != nil {
		*m.dest = token
	}
	state = Matched
end:
	return state
}

type numberMatcher struct {
	dest *int
}

// NumberArg matches one token as a strict full-token base-10 integer.
// Trailing non-digit characters make the token absent ("12abc" does not
// match), never a partial parse.
func NumberArg(dest *int) Matcher {
	return &numberMatcher{dest: dest}
}

func (m *numberMatcher) TypeNames() []string {
	return []string{"number"}
}
func (m *numberMatcher) DisplayName() string {
	return ""
}
func (m *numberMatcher) IsOptional() bool {
	return false
}
func (m *numberMatcher) IsLiteral() bool {
	return false
}
func (m *numberMatcher) Match(c *Cursor) (state MatchState) {
	var token string
	var ok bool
	var n int
	var err error

	start := c.Pos()

	token, ok = c.Next()
	if !ok {
		goto end
	}
	n, err = strconv.Atoi(token)
	if err != nil {
		c.SetPos(start)
		goto end
	}
	if m.dest != nil {
		*m.dest = n
	}
	state = Matched
end:
	return state
}

type boolMatcher struct {
	dest *bool
}

// BoolArg matches one token against "true"/"false", case-insensitively.
func BoolArg(dest *bool) Matcher {
	return &boolMatcher{dest: dest}
}

func (m *boolMatcher) TypeNames() []string {
	return []string{"boolean"}
}
func (m *boolMatcher) DisplayName() string {
	return ""
}
func (m *boolMatcher) IsOptional() bool {
	return false
}
func (m *boolMatcher) IsLiteral() bool {
	return false
}
func (m *boolMatcher) Match(c *Cursor) (state MatchState) {
	var token string
	var ok bool
	var value bool

	start := c.Pos()

	token, ok = c.Next()
	if !ok {
		goto end
	}
	switch {
	case strings.EqualFold(token, "true"):
		value = true
	case strings.EqualFold(token, "false"):
		value = false
	default:
		c.SetPos(start)
		goto end
	}
	if m.dest != nil {
		*m.dest = value
	}
	state = Matched
end:
	return state
}

type literalMatcher struct {
	word string
}

// Literal matches one token equal to word, case-insensitively. Literal
// matchers contribute to positional consumption but bind no value; they are
// excluded from a command's handler-visible arguments.
func Literal(word string) Matcher {
	return &literalMatcher{word: word}
}

func (m *literalMatcher) TypeNames() []string {
	return []string{m.word}
}
func (m *literalMatcher) DisplayName() string {
	return ""
}
func (m *literalMatcher) IsOptional() bool {
	return false
}
func (m *literalMatcher) IsLiteral() bool {
	return true
}
func (m *literalMatcher) Match(c *Cursor) (state MatchState) {
	var token string
	var ok bool

	start := c.Pos()

	token, ok = c.Next()
	if !ok {
		goto end
	}
	if !strings.EqualFold(token, m.word) {
		c.SetPos(start)
		goto end
	}
	state = Matched
end:
	return state
}
