package climatch

// CommandDef is an ordered matcher chain plus a handler and an optional
// human-readable description, tried as a unit against the full input.
// Definitions are constructed once at registration and are immutable and
// stateless thereafter; the only transient state is the cursor threaded
// through match calls.
type CommandDef struct {
	name        string
	description string
	matchers    []Matcher
	handler     HandlerFunc
	hide        bool
}

// HandlerFunc runs after every matcher in the command's chain matched. The
// parsed values are available through the typed destination pointers bound
// at matcher construction; literal matchers bind nothing.
type HandlerFunc func() error

type CommandArgs struct {
	Name        string
	Description string
	Matchers    []Matcher
	Handler     HandlerFunc
	Hide        bool // Hide from help output
}

func NewCommand(args CommandArgs) *CommandDef {
	return &CommandDef{
		name:        args.Name,
		description: args.Description,
		matchers:    args.Matchers,
		handler:     args.Handler,
		hide:        args.Hide,
	}
}

func (cd *CommandDef) Name() string {
	return cd.name
}

func (cd *CommandDef) Description() string {
	return cd.description
}

func (cd *CommandDef) Matchers() []Matcher {
	return cd.matchers
}

func (cd *CommandDef) IsHidden() bool {
	return cd.hide
}

// match runs the command's matcher chain against a fresh cursor over tokens.
// Any NoMatch abandons the command; trailing unconsumed tokens do not
// disqualify a match, which is what lets an earlier-registered command whose
// chain is a prefix of a later one's input take precedence.
func (cd *CommandDef) match(tokens []string) (matched bool) {
	var state MatchState

	c := NewCursor(tokens)
	for _, m := range cd.matchers {
		state = m.Match(c)
		if state == NoMatch {
			goto end
		}
	}
	matched = true
end:
	return matched
}
