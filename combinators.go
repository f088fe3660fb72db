package climatch

import (
	"fmt"
)

// Combinators wrap existing matchers to add optionality, alternation, and
// display naming. Misuse (wrapping a literal in Optional, combining an
// optional or literal operand via Or, double-wrapping Optional) is a
// programmer error in command registration, so the constructors fail fast
// with a panic rather than deferring to first use.

var _ Matcher = (*optionalMatcher)(nil)
var _ Matcher = (*orMatcher)(nil)
var _ Matcher = (*namedMatcher)(nil)

type optionalMatcher struct {
	wrapped Matcher
	present *bool
}

// Optional attempts the wrapped matcher; on failure it rewinds the cursor to
// the attempt's start and reports MatchedEmpty, so an optional matcher never
// causes the owning command to be rejected for missing input. present (may
// be nil) is set true only when the wrapped matcher actually matched,
// distinguishing a real value from the empty marker.
//
// By convention an optional matcher must be the last matcher in a command's
// list; RegisterCommand enforces that.
func Optional(m Matcher, present *bool) Matcher {
	if m.IsOptional() {
		panic(fmt.Sprintf("climatch.Optional() applied to already-optional matcher %v", m.TypeNames()))
	}
	if m.IsLiteral() {
		panic(fmt.Sprintf("climatch.Optional() applied to literal matcher %q; a command either requires its literal or should omit it", m.TypeNames()[0]))
	}
	return &optionalMatcher{wrapped: m, present: present}
}

func (m *optionalMatcher) TypeNames() []string {
	return m.wrapped.TypeNames()
}
func (m *optionalMatcher) DisplayName() string {
	return m.wrapped.DisplayName()
}
func (m *optionalMatcher) IsOptional() bool {
	return true
}
func (m *optionalMatcher) IsLiteral() bool {
	return false
}
func (m *optionalMatcher) Match(c *Cursor) (state MatchState) {
	start := c.Pos()

	state = m.wrapped.Match(c)
	if state == NoMatch {
		c.SetPos(start)
		state = MatchedEmpty
	}
	if m.present != nil {
		*m.present = state == Matched
	}
	return state
}

type orMatcher struct {
	a Matcher
	b Matcher
}

// Or attempts a, and only when a fails rewinds the cursor to the shared
// start and attempts b, returning b's result unmodified. It is left-biased:
// when both alternatives would match, a's consumption and binding win.
func Or(a Matcher, b Matcher) Matcher {
	for _, m := range []Matcher{a, b} {
		if m.IsLiteral() {
			panic(fmt.Sprintf("climatch.Or() operand %q is a literal; literals cannot be combined via alternation", m.TypeNames()[0]))
		}
		if m.IsOptional() {
			panic(fmt.Sprintf("climatch.Or() operand %v is optional; Optional() must be the last wrapper applied", m.TypeNames()))
		}
	}
	return &orMatcher{a: a, b: b}
}

// TypeNames flattens both operands' descriptor lists; used purely for
// display.
func (m *orMatcher) TypeNames() []string {
	names := make([]string, 0, len(m.a.TypeNames())+len(m.b.TypeNames()))
	names = append(names, m.a.TypeNames()...)
	names = append(names, m.b.TypeNames()...)
	return names
}
func (m *orMatcher) DisplayName() string {
	return ""
}
func (m *orMatcher) IsOptional() bool {
	return false
}
func (m *orMatcher) IsLiteral() bool {
	return false
}
func (m *orMatcher) Match(c *Cursor) (state MatchState) {
	start := c.Pos()

	state = m.a.Match(c)
	if state != NoMatch {
		goto end
	}
	c.SetPos(start)
	state = m.b.Match(c)
end:
	return state
}

type namedMatcher struct {
	wrapped Matcher
	name    string
}

// Named attaches a display name to a matcher without altering its parse
// behavior, so help text can show a parameter label distinct from its type.
func Named(m Matcher, displayName string) Matcher {
	return &namedMatcher{wrapped: m, name: displayName}
}

func (m *namedMatcher) TypeNames() []string {
	return m.wrapped.TypeNames()
}
func (m *namedMatcher) DisplayName() string {
	return m.name
}
func (m *namedMatcher) IsOptional() bool {
	return m.wrapped.IsOptional()
}
func (m *namedMatcher) IsLiteral() bool {
	return m.wrapped.IsLiteral()
}
func (m *namedMatcher) Match(c *Cursor) MatchState {
	return m.wrapped.Match(c)
}
