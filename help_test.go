package climatch

import (
	"strings"
	"testing"
)

func registerHelpFixture(t *testing.T) {
	t.Helper()
	resetRegistry(t)

	var a, b int
	var name string
	var loud bool
	must(RegisterCommand(NewCommand(CommandArgs{
		Name:        "add",
		Description: "Add two integers",
		Matchers:    []Matcher{Literal("add"), NumberArg(&a), NumberArg(&b)},
		Handler:     func() error { return nil },
	})))
	must(RegisterCommand(NewCommand(CommandArgs{
		Name:        "greet",
		Description: "Greet someone by name",
		Matchers: []Matcher{
			Literal("greet"),
			Named(StringArg(&name), "name"),
			Optional(BoolArg(&loud), nil),
		},
		Handler: func() error { return nil },
	})))
	must(RegisterCommand(NewCommand(CommandArgs{
		Name:        "toggle",
		Description: "Flip a value",
		Matchers:    []Matcher{Literal("toggle"), Or(NumberArg(nil), BoolArg(nil))},
		Handler:     func() error { return nil },
	})))
	must(RegisterCommand(NewCommand(CommandArgs{
		Name:     "secret",
		Matchers: []Matcher{Literal("secret")},
		Handler:  func() error { return nil },
		Hide:     true,
	})))
}

func renderHelp(t *testing.T) string {
	t.Helper()
	w := NewBufferedWriter()
	err := ShowHelp(HelpArgs{
		AppInfo:  testAppInfo(),
		Writer:   w,
		Colorize: ptr(false),
	})
	if err != nil {
		t.Fatal(err)
	}
	return w.GetStdout()
}

func TestShowHelpSignatures(t *testing.T) {
	registerHelpFixture(t)
	out := renderHelp(t)

	wantLines := []string{
		"add <number> <number>",
		"greet <name> <boolean>?",
		"toggle <number|boolean>",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing signature %q\noutput:\n%s", want, out)
		}
	}
}

func TestShowHelpHeaderAndDescriptions(t *testing.T) {
	registerHelpFixture(t)
	out := renderHelp(t)

	if !strings.Contains(out, "calc - test calculator") {
		t.Errorf("help output missing app header\noutput:\n%s", out)
	}
	for _, want := range []string{"Add two integers", "Greet someone by name", "Flip a value"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing description %q", want)
		}
	}
}

func TestShowHelpOmitsHiddenCommands(t *testing.T) {
	registerHelpFixture(t)
	out := renderHelp(t)

	if strings.Contains(out, "secret") {
		t.Errorf("hidden command leaked into help output:\n%s", out)
	}
}

func TestShowHelpExamplesEpilog(t *testing.T) {
	registerHelpFixture(t)
	out := renderHelp(t)

	if !strings.Contains(out, "EXAMPLES") {
		t.Errorf("help output missing examples epilog:\n%s", out)
	}
	if !strings.Contains(out, "calc --help") {
		t.Errorf("help output missing the --help example:\n%s", out)
	}
	if !strings.Contains(out, "calc add <number> <number>") {
		t.Errorf("help output missing per-command example:\n%s", out)
	}
}

func TestShowHelpColorized(t *testing.T) {
	registerHelpFixture(t)
	w := NewBufferedWriter()
	err := ShowHelp(HelpArgs{
		AppInfo:  testAppInfo(),
		Writer:   w,
		Colorize: ptr(true),
	})
	if err != nil {
		t.Fatal(err)
	}
	out := w.GetStdout()

	// App name bold, descriptors cyan, descriptions italic.
	for _, want := range []string{"\x1b[0;1mcalc", "\x1b[0;36m<number>", "\x1b[0;3mAdd two integers"} {
		if !strings.Contains(out, want) {
			t.Errorf("colorized help missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestSignatureTextPlain(t *testing.T) {
	registerHelpFixture(t)

	var got []string
	for _, cmd := range RegisteredCommands() {
		if cmd.IsHidden() {
			continue
		}
		got = append(got, signatureText(cmd))
	}
	want := []string{
		"add <number> <number>",
		"greet <name> <boolean>?",
		"toggle <number|boolean>",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d signatures, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("signature %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
