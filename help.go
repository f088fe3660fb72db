package climatch

import (
	"fmt"
	"strings"

	"github.com/mikeschinkel/go-dt"
	"github.com/mikeschinkel/go-dt/appinfo"
)

// Example is one sample invocation shown in the EXAMPLES epilog.
type Example struct {
	Descr string
	Cmd   string
}

type HelpArgs struct {
	appinfo.AppInfo
	Writer   Writer
	Colorize *bool // nil defers to --no-color and fatih/color detection
}

// HelpUsage is the data handed to the usage template.
type HelpUsage struct {
	Examples []Example
}

// ShowHelp renders the synthesized help for every registered command: the
// styled signature block followed by the template-driven examples epilog.
// The node tree is built fresh on each invocation and discarded after
// rendering.
func ShowHelp(args HelpArgs) (err error) {
	var r *StyleRenderer

	colorize := args.Colorize
	if colorize == nil && options.NoColor() {
		colorize = ptr(false)
	}

	r = NewStyleRenderer(StyleRendererArgs{
		Writer:   args.Writer.Writer(),
		Colorize: colorize,
	})
	err = r.Render(BuildHelpTree(args))
	if err != nil {
		goto end
	}

	err = UsageTemplate.Execute(args.Writer.Writer(), HelpUsage{
		Examples: collectExamples(args.ExeName()),
	})

end:
	return err
}

// BuildHelpTree describes every registered command's matcher signature as a
// styled node tree: app name and description up top, then one signature line
// per command with its description indented below.
func BuildHelpTree(args HelpArgs) *Node {
	var children []any

	children = append(children, Style(StyleBold, fmt.Sprintf("%s", args.Name())))
	description := fmt.Sprintf("%s", args.Description())
	if description != "" {
		children = append(children, " - ", description)
	}
	children = append(children, Break(), Break())

	for _, cmd := range RegisteredCommands() {
		if cmd.IsHidden() {
			continue
		}
		children = append(children, Indent(2), signatureNode(cmd), Break())
		if cmd.Description() != "" {
			children = append(children, Indent(6), Style(StyleItalic, cmd.Description()), Break())
		}
	}

	return Styled(nil, children...)
}

// signatureNode builds one command's signature: literal matchers appear as
// their word unbracketed; everything else shows its descriptor in angle
// brackets, with a trailing `?` marker when optional.
func signatureNode(cmd *CommandDef) *Node {
	var children []any

	for i, m := range cmd.Matchers() {
		if i > 0 {
			children = append(children, " ")
		}
		if m.IsLiteral() {
			children = append(children, m.TypeNames()[0])
			continue
		}
		children = append(children, Style(StyleCyan, "<"+descriptorLabel(m)+">"))
		if m.IsOptional() {
			children = append(children, "?")
		}
	}

	return Styled(nil, children...)
}

// descriptorLabel prefers the display name; otherwise it joins the type
// descriptor list with the alternation separator.
func descriptorLabel(m Matcher) (label string) {
	label = m.DisplayName()
	if label == "" {
		label = strings.Join(m.TypeNames(), "|")
	}
	return label
}

// --- Example generation ----

func collectExamples(exe dt.Filename) []Example {
	all := []Example{
		{Descr: "Show this help", Cmd: fmt.Sprintf("%s --help", exe)},
	}

	for _, cmd := range RegisteredCommands() {
		if cmd.IsHidden() {
			continue
		}
		all = append(all, Example{
			Descr: fmt.Sprintf("Example: %s", cmd.Name()),
			Cmd:   normalizeSpaces(fmt.Sprintf("%s %s", exe, signatureText(cmd))),
		})
	}

	return dedupeExamples(all)
}

// signatureText is the plain-text twin of signatureNode, used for example
// command lines.
func signatureText(cmd *CommandDef) string {
	var parts []string

	for _, m := range cmd.Matchers() {
		if m.IsLiteral() {
			parts = append(parts, m.TypeNames()[0])
			continue
		}
		part := "<" + descriptorLabel(m) + ">"
		if m.IsOptional() {
			part += "?"
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, " ")
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func dedupeExamples(in []Example) []Example {
	seen := map[string]struct{}{}
	var out []Example
	for _, e := range in {
		key := e.Descr + "||" + e.Cmd
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}
