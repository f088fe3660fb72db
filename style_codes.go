package climatch

import (
	"github.com/fatih/color"
)

// The style key vocabulary is a fixed, closed set: eight foreground colors
// plus default, eight background colors plus default, four text attributes,
// one control key, and two structural keys. Numeric SGR codes come from the
// fatih/color attribute constants (foreground 30-39, background 40-49,
// bold=1, italic=3, underline=4, strikethrough=9, reset-all=0).

const (
	StyleBlack   = "black"
	StyleRed     = "red"
	StyleGreen   = "green"
	StyleYellow  = "yellow"
	StyleBlue    = "blue"
	StyleMagenta = "magenta"
	StyleCyan    = "cyan"
	StyleWhite   = "white"
	StyleDefault = "default"

	StyleBgBlack   = "bg-black"
	StyleBgRed     = "bg-red"
	StyleBgGreen   = "bg-green"
	StyleBgYellow  = "bg-yellow"
	StyleBgBlue    = "bg-blue"
	StyleBgMagenta = "bg-magenta"
	StyleBgCyan    = "bg-cyan"
	StyleBgWhite   = "bg-white"
	StyleBgDefault = "bg-default"

	StyleBold          = "bold"
	StyleItalic        = "italic"
	StyleUnderline     = "underline"
	StyleStrikethrough = "strikethrough"

	StyleReset = "reset"

	StyleBreak  = "break"
	StyleIndent = "indent"
)

// fatih/color stops at the named colors, so the "restore terminal default"
// codes are spelled out here.
const (
	fgDefaultCode = color.Attribute(39)
	bgDefaultCode = color.Attribute(49)
)

// Pure, constant lookup data; never mutated after init.
var (
	fgCodes = map[string]color.Attribute{
		StyleBlack:   color.FgBlack,
		StyleRed:     color.FgRed,
		StyleGreen:   color.FgGreen,
		StyleYellow:  color.FgYellow,
		StyleBlue:    color.FgBlue,
		StyleMagenta: color.FgMagenta,
		StyleCyan:    color.FgCyan,
		StyleWhite:   color.FgWhite,
		StyleDefault: fgDefaultCode,
	}

	bgCodes = map[string]color.Attribute{
		StyleBgBlack:   color.BgBlack,
		StyleBgRed:     color.BgRed,
		StyleBgGreen:   color.BgGreen,
		StyleBgYellow:  color.BgYellow,
		StyleBgBlue:    color.BgBlue,
		StyleBgMagenta: color.BgMagenta,
		StyleBgCyan:    color.BgCyan,
		StyleBgWhite:   color.BgWhite,
		StyleBgDefault: bgDefaultCode,
	}

	attrCodes = map[string]color.Attribute{
		StyleBold:          color.Bold,
		StyleItalic:        color.Italic,
		StyleUnderline:     color.Underline,
		StyleStrikethrough: color.CrossedOut,
	}

	// attrOrder fixes the emission order of active attributes so flattened
	// sequences are deterministic.
	attrOrder = []string{StyleBold, StyleItalic, StyleUnderline, StyleStrikethrough}
)

func validStyleKey(key string) (ok bool) {
	switch key {
	case StyleReset, StyleBreak, StyleIndent:
		ok = true
		goto end
	}
	if _, ok = fgCodes[key]; ok {
		goto end
	}
	if _, ok = bgCodes[key]; ok {
		goto end
	}
	_, ok = attrCodes[key]
end:
	return ok
}
