package climatch

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrUnknownFlag      = errors.New("unknown flag")
	ErrFlagNeedsValue   = errors.New("flag requires a value")
	ErrInvalidFlagValue = errors.New("invalid flag value")
)

// FlagSet holds a named group of flag definitions and parses them out of an
// argument list, returning the non-flag arguments for positional matching.
type FlagSet struct {
	Name     string
	FlagDefs []FlagDef
}

func (fs *FlagSet) FlagNames() (names []string) {
	names = make([]string, len(fs.FlagDefs))
	for i, fd := range fs.FlagDefs {
		names[i] = fd.Name
	}
	return names
}

func (fs *FlagSet) findByName(name string) *FlagDef {
	for i := range fs.FlagDefs {
		if fs.FlagDefs[i].Name == name {
			return &fs.FlagDefs[i]
		}
	}
	return nil
}

func (fs *FlagSet) findByShortcut(shortcut byte) *FlagDef {
	for i := range fs.FlagDefs {
		if fs.FlagDefs[i].Shortcut == shortcut {
			return &fs.FlagDefs[i]
		}
	}
	return nil
}

// Parse scans args for this set's flags, assigns their values through the
// FlagDef destination pointers, and returns everything else in order. Both
// `--name value` and `--name=value` forms are accepted, single-dash
// shortcuts map through FlagDef.Shortcut, boolean flags take no value unless
// given with `=`, and a bare `--` ends flag parsing so later tokens pass
// through verbatim.
func (fs *FlagSet) Parse(args []string) (remaining []string, err error) {
	var errs []error
	var fd *FlagDef
	var name string
	var value string
	var hasValue bool
	var i int

	for _, fd := range fs.FlagDefs {
		fd.applyDefault()
	}

	for i = 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			remaining = append(remaining, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			remaining = append(remaining, arg)
			continue
		}

		name, value, hasValue = splitFlagArg(arg)
		if len(name) == 1 {
			fd = fs.findByShortcut(name[0])
		} else {
			fd = fs.findByName(name)
		}
		if fd == nil {
			errs = append(errs, NewErr(ErrUnknownFlag, "flag", arg))
			continue
		}

		if fd.Type() == BoolFlag {
			errs = AppendErr(errs, fs.assignBool(fd, value, hasValue))
			continue
		}

		// Value-bearing flag; consume the next arg when not inline
		if !hasValue {
			if i+1 >= len(args) {
				errs = append(errs, NewErr(ErrFlagNeedsValue, "flag", arg))
				continue
			}
			i++
			value = args[i]
		}
		errs = AppendErr(errs, fs.assignValue(fd, value))
	}

	err = CombineErrs(errs)
	return remaining, err
}

func (fs *FlagSet) assignBool(fd *FlagDef, value string, hasValue bool) (err error) {
	var b bool

	b = true
	if hasValue {
		b, err = strconv.ParseBool(value)
		if err != nil {
			err = NewErr(ErrInvalidFlagValue, "flag_name", fd.Name, "flag_value", value)
			goto end
		}
	}
	fd.SetValue(&b)
end:
	return err
}

func (fs *FlagSet) assignValue(fd *FlagDef, value string) (err error) {
	var n int

	err = fd.ValidateValue(value)
	if err != nil {
		goto end
	}

	switch fd.Type() {
	case StringFlag:
		fd.SetValue(&value)
	case IntFlag:
		n, err = strconv.Atoi(value)
		if err != nil {
			err = NewErr(ErrInvalidFlagValue, "flag_name", fd.Name, "flag_value", value)
			goto end
		}
		fd.SetValue(&n)
	case BoolFlag, UnknownFlagType:
		// Bool handled by assignBool; Unknown caught at registration
	}

end:
	return err
}

// splitFlagArg strips leading dashes and splits an inline `=value`.
func splitFlagArg(arg string) (name string, value string, hasValue bool) {
	name = strings.TrimPrefix(arg, "-")
	name = strings.TrimPrefix(name, "-")
	equalPos := strings.Index(name, "=")
	if equalPos != -1 {
		value = name[equalPos+1:]
		name = name[:equalPos]
		hasValue = true
	}
	return name, value, hasValue
}
