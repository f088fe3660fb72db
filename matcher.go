package climatch

// MatchState is the tri-state result of a matcher attempt. Absence is a
// value, not an error; it is the dispatcher's normal "try the next command"
// signal.
type MatchState int

const (
	NoMatch      MatchState = iota // matcher did not match; cursor restored
	Matched                        // matcher consumed input and bound a value
	MatchedEmpty                   // optional matched with no input consumed
)

// Matcher is a composable unit that attempts to consume tokens from the
// cursor. On NoMatch a matcher must leave the cursor at its entry position
// so sibling matchers in an alternation or optional wrapper observe a clean
// cursor.
//
// Matchers bind parsed values through typed destination pointers supplied at
// construction (see StringArg, NumberArg, BoolArg), so command handlers read
// strongly-typed values rather than an any-typed argument list.
type Matcher interface {
	// TypeNames returns the display descriptor(s); more than one when an
	// alternation flattened multiple alternatives.
	TypeNames() []string
	// DisplayName returns the label to show in help instead of the type
	// descriptor, or "" when none was attached.
	DisplayName() string
	IsOptional() bool
	IsLiteral() bool
	Match(c *Cursor) MatchState
}
