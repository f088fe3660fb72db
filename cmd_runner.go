package climatch

import (
	"fmt"
	"log/slog"

	"github.com/mikeschinkel/go-dt/appinfo"
)

// CmdRunner dispatches one token list against the registered commands.
type CmdRunner struct {
	Args CmdRunnerArgs
}

type CmdRunnerArgs struct {
	AppInfo appinfo.AppInfo
	Logger  *slog.Logger
	Writer  Writer
	Options *CLIOptions
	Args    []string // process args with program name and global flags stripped
}

func NewCmdRunner(args CmdRunnerArgs) *CmdRunner {
	if args.Logger == nil {
		args.Logger = slog.Default()
	}
	return &CmdRunner{
		Args: args,
	}
}

// Run tries each registered command in registration order. The first command
// whose full matcher chain matches the args from position zero has its
// handler invoked once, and no later command runs. Each attempt gets a fresh
// cursor so no state crosses command attempts.
//
// When nothing matches, the full help tree is rendered; per the dispatch
// contract that is an informative outcome, not an error, so Run reports it
// through matched rather than err.
func (cr CmdRunner) Run() (matched bool, err error) {
	var cmd *CommandDef
	var wl WriterLogger
	var colorize *bool

	wl = NewWriterLogger(cr.Args.Writer, cr.Args.Logger)

	err = ValidateCommands()
	if err != nil {
		goto end
	}

	for _, cmd = range RegisteredCommands() {
		if !cmd.match(cr.Args.Args) {
			continue
		}
		wl.Debug("command matched", "command_name", cmd.Name(), "command_args", cr.Args.Args)
		matched = true
		err = cr.runCmd(cmd)
		goto end
	}

	wl.Debug("no command matched", "command_args", cr.Args.Args)
	if cr.Args.Options != nil && cr.Args.Options.NoColor() {
		colorize = ptr(false)
	}
	err = ShowHelp(HelpArgs{
		AppInfo:  cr.Args.AppInfo,
		Writer:   cr.Args.Writer,
		Colorize: colorize,
	})

end:
	return matched, err
}

func (cr CmdRunner) runCmd(cmd *CommandDef) (err error) {
	if cmd.handler == nil {
		// ValidateCommands should make this unreachable
		err = fmt.Errorf("command '%s' does not implement handler logic", cmd.Name())
		goto end
	}

	err = cmd.handler()
	if err != nil {
		err = WithErr(err, ErrShowUsage, "command_name", cmd.Name())
	}

end:
	return err
}
