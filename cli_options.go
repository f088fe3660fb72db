package climatch

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mikeschinkel/go-dt"
)

const (
	DefaultQuiet     = false
	DefaultNoColor   = false
	DefaultVerbosity = int(LowVerbosity)
)

var options = &CLIOptions{
	quiet:     new(bool),
	verbosity: new(int),
	noColor:   new(bool),
	help:      new(bool),
}

//goland:noinspection GoUnusedExportedFunction
func GetCLIOptions() *CLIOptions {
	return options
}

// CLIOptions holds the global options shared by every command: output
// volume, verbosity, and colorization of rendered help.
type CLIOptions struct {
	quiet         *bool
	verbosity     *int
	noColor       *bool
	help          *bool
	originalFlags []string // Flags from original command line for validation
}

type CLIOptionsArgs struct {
	Quiet     *bool
	Verbosity *int
	NoColor   *bool
}

// NewCLIOptions creates a CLIOptions instance from raw values. This is
// useful when loading options from configuration files or other sources.
// Any nil values will use the corresponding defaults.
func NewCLIOptions(args CLIOptionsArgs) (*CLIOptions, error) {
	verbosity := valueOrDefault(args.Verbosity, DefaultVerbosity)
	v, err := parseOptionVerbosity(verbosity)
	if err != nil {
		return nil, err
	}

	return &CLIOptions{
		quiet:     ptr(valueOrDefault(args.Quiet, DefaultQuiet)),
		verbosity: ptr(int(v)),
		noColor:   ptr(valueOrDefault(args.NoColor, DefaultNoColor)),
		help:      new(bool),
	}, nil
}

func (o *CLIOptions) Quiet() bool {
	return *o.quiet
}
func (o *CLIOptions) Verbosity() Verbosity {
	return Verbosity(*o.verbosity)
}
func (o *CLIOptions) NoColor() bool {
	return *o.noColor
}
func (o *CLIOptions) HelpRequested() bool {
	return *o.help
}

//goland:noinspection GoUnusedExportedFunction
func GetFlagSet() *FlagSet {
	return flagset
}

var (
	flagNameRegex = regexp.MustCompile(`^[a-z0-9-]+$`)
)

var flagset = &FlagSet{
	Name: "global",
	FlagDefs: []FlagDef{
		{
			Name:     "verbosity",
			Shortcut: 'v',
			Default:  DefaultVerbosity,
			Usage:    "Verbosity of most command line output (1 to 3, default 1)",
			Int:      options.verbosity,
		},
		{
			Name:     "quiet",
			Shortcut: 'q',
			Default:  DefaultQuiet,
			Usage:    "Disable display of most command line output",
			Bool:     options.quiet,
		},
		{
			Name:    "no-color",
			Default: DefaultNoColor,
			Usage:   "Disable ANSI styling in rendered help output",
			Bool:    options.noColor,
		},
	},
}

// AddCLIOption registers an application-specific global flag so it parses
// with the built-in ones and appears in help.
func AddCLIOption(flagDef FlagDef) (err error) {
	var errs []error
	var types []string
	var existing FlagDef

	// Validate Name: lowercase alphanumeric + dashes only
	if flagDef.Name == "" {
		errs = append(errs, NewErr(dt.ErrEmpty, "empty_property", "Name"))
	} else if !flagNameRegex.MatchString(flagDef.Name) {
		errs = append(errs, NewErr(dt.ErrInvalidFlagName, "rule", "may contain only lowercase letters, numbers, and dashes"))
	}

	// Validate no duplicate flag names
	for _, existing = range flagset.FlagDefs {
		if existing.Name == flagDef.Name {
			errs = append(errs, NewErr(dt.ErrInvalidDuplicateFlag, "where", "global flags"))
			break
		}
	}

	// Validate exactly one type is set
	if flagDef.String != nil {
		types = append(types, "string")
	}
	if flagDef.Bool != nil {
		types = append(types, "bool")
	}
	if flagDef.Int != nil {
		types = append(types, "int")
	}
	rule := "exactly one property of .String, .Bool, or .Int must be non-nil"
	switch len(types) {
	case 0:
		errs = append(errs,
			NewErr(ErrFlagTypeNotDiscoverable, "rule", rule),
		)
	case 1:
		// Success - exactly one type is set
	default:
		errs = append(errs,
			NewErr(ErrFlagTypeNotDiscoverable, "rule", rule, "duplicates", strings.Join(types, ", ")),
		)
	}

	// Validate Usage is not empty
	if strings.TrimSpace(flagDef.Usage) == "" {
		errs = append(errs, NewErr(dt.ErrEmpty, "empty_property", "Usage"))
	}

	err = CombineErrs(errs)
	if err != nil {
		goto end
	}
	flagset.FlagDefs = append(flagset.FlagDefs, flagDef)
end:
	if err != nil {
		err = WithErr(err, dt.ErrFlagValidationFailed, "flag_name", flagDef.Name)
	}
	return err
}

var ErrFlagTypeNotDiscoverable = errors.New("flag type is not discoverable")

// ParseCLIOptions parses the global flag set out of the raw process args.
//
// Expects os.Args as input. Strips the program name, records whether --help
// was requested, and returns the remaining tokens for command dispatch.
func ParseCLIOptions(osArgs []string) (_ *CLIOptions, _ []string, err error) {
	var errs []error
	var verbosity Verbosity
	var args []string
	var helpRequested bool

	// Strip program name from os.Args
	if len(osArgs) > 0 {
		args = osArgs[1:]
	}

	// Check for --help and pull it out before flag parsing
	helpRequested, args = containsHelpFlag(args)
	*options.help = helpRequested

	// Extract and save original flags for later validation (after --help is removed)
	options.originalFlags = extractFlags(args)

	args, err = flagset.Parse(args)
	if err != nil {
		goto end
	}

	verbosity, err = parseOptionVerbosity(*options.verbosity)
	errs = AppendErr(errs, err)
	if err == nil {
		*options.verbosity = int(verbosity)
	}

	err = CombineErrs(errs)
end:
	return options, args, err
}

// parseOptionVerbosity validates a verbosity given as a global option.
// NoVerbosity is a valid Verbosity value but not a valid option; the writer's
// output gating ranges 1..3 and silencing output is what --quiet is for.
func parseOptionVerbosity(verbosity int) (v Verbosity, err error) {
	v, err = ParseVerbosity(verbosity)
	if err != nil {
		goto end
	}
	if v < LowVerbosity {
		v = -1
		err = NewErr(
			ErrInvalidateVerbosity,
			"rule", "must be between 1..3; use --quiet to silence output",
			"verbosity", verbosity,
		)
	}
end:
	return v, err
}

// extractFlags returns all args that start with '-' (flags only, not values)
func extractFlags(args []string) (flags []string) {
	var arg string

	for _, arg = range args {
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
		}
	}

	return flags
}

// containsHelpFlag checks if --help is in args and removes it. The filtered
// slice is a fresh copy; args (typically a view of os.Args) is left intact.
func containsHelpFlag(args []string) (helpRequested bool, filteredArgs []string) {
	var i int
	var arg string

	filteredArgs = args

	for i, arg = range args {
		if arg != "--help" {
			continue
		}
		filteredArgs = make([]string, 0, len(args)-1)
		filteredArgs = append(filteredArgs, args[:i]...)
		filteredArgs = append(filteredArgs, args[i+1:]...)
		helpRequested = true
		goto end
	}

end:
	return helpRequested, filteredArgs
}
