package climatch

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const DefaultIndentWidth = 1

// StyleRenderer walks a Node tree and emits ANSI SGR escape sequences.
//
// ANSI terminals have no "pop the last style" operation, so the renderer
// keeps an explicit stack of active style keys and re-emits the flattened
// state of the entire stack on every push and pop. That is what makes
// closing a nested color restore the previous color rather than the
// terminal default.
type StyleRenderer struct {
	w           io.Writer
	stack       []string
	indentWidth int
	colorize    bool
}

type StyleRendererArgs struct {
	Writer      io.Writer
	IndentWidth int   // width of one indent node; default DefaultIndentWidth
	Colorize    *bool // nil defers to fatih/color's NO_COLOR/TTY detection
}

func NewStyleRenderer(args StyleRendererArgs) *StyleRenderer {
	if args.Writer == nil {
		panic("climatch.NewStyleRenderer() requires a non-nil Writer")
	}
	if args.IndentWidth < 1 {
		args.IndentWidth = DefaultIndentWidth
	}
	colorize := !color.NoColor
	if args.Colorize != nil {
		colorize = *args.Colorize
	}
	return &StyleRenderer{
		w:           args.Writer,
		indentWidth: args.IndentWidth,
		colorize:    colorize,
	}
}

// Render writes the tree rooted at n. Text leaves are written literally;
// structural nodes short-circuit to a newline or a space run before the
// style stack is ever consulted.
func (r *StyleRenderer) Render(n *Node) (err error) {
	var width int

	switch {
	case n.isText():
		err = r.write(n.text)
		goto end

	case n.isStructural():
		if n.styles[0] == StyleBreak {
			err = r.write("\n")
			goto end
		}
		width = n.width
		if width < 1 {
			width = r.indentWidth
		}
		err = r.write(strings.Repeat(" ", width))
		goto end
	}

	// A style-less node only groups its children; pushing nothing would
	// re-emit an identical escape sequence, so skip the stack entirely.
	if len(n.styles) == 0 {
		for _, child := range n.children {
			err = r.Render(child)
			if err != nil {
				goto end
			}
		}
		goto end
	}

	r.stack = append(r.stack, n.styles...)
	err = r.writeStackState()
	if err != nil {
		goto end
	}
	for _, child := range n.children {
		err = r.Render(child)
		if err != nil {
			goto end
		}
	}
	r.stack = r.stack[:len(r.stack)-len(n.styles)]
	err = r.writeStackState()

end:
	return err
}

func (r *StyleRenderer) write(s string) (err error) {
	_, err = io.WriteString(r.w, s)
	return err
}

// writeStackState emits the SGR sequence encoding the resolved state of the
// whole stack, always led by code 0 so the terminal starts from a clean
// slate.
func (r *StyleRenderer) writeStackState() (err error) {
	if !r.colorize {
		goto end
	}
	err = r.write("\x1b[" + strings.Join(flattenStack(r.stack), ";") + "m")
end:
	return err
}

// flattenStack resolves the stack to concrete SGR codes. A foreground color
// pushed later replaces any earlier foreground color, and likewise for
// background colors. A repeated non-color attribute toggles it back off. A
// reset key discards everything accumulated so far, so only keys pushed
// after it take effect.
func flattenStack(stack []string) []string {
	var fg, bg color.Attribute
	var fgSet, bgSet bool
	attrs := make(map[string]bool, len(attrCodes))

	for _, key := range stack {
		if code, ok := fgCodes[key]; ok {
			fg = code
			fgSet = true
			continue
		}
		if code, ok := bgCodes[key]; ok {
			bg = code
			bgSet = true
			continue
		}
		if _, ok := attrCodes[key]; ok {
			attrs[key] = !attrs[key]
			continue
		}
		if key == StyleReset {
			fgSet = false
			bgSet = false
			clear(attrs)
		}
	}

	codes := []string{"0"}
	for _, key := range attrOrder {
		if attrs[key] {
			codes = append(codes, itoaAttr(attrCodes[key]))
		}
	}
	if fgSet {
		codes = append(codes, itoaAttr(fg))
	}
	if bgSet {
		codes = append(codes, itoaAttr(bg))
	}
	return codes
}

func itoaAttr(a color.Attribute) string {
	return strconv.Itoa(int(a))
}

// Sprint renders n to a string, mainly for tests and small fragments.
func (r *StyleRenderer) Sprint(n *Node) (string, error) {
	var sb strings.Builder

	saved := r.w
	r.w = &sb
	err := r.Render(n)
	r.w = saved
	if err != nil {
		return "", fmt.Errorf("rendering node tree: %w", err)
	}
	return sb.String(), nil
}
