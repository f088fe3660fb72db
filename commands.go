package climatch

import (
	"errors"
	"fmt"
)

// Registered commands, tried in registration order during dispatch. The list
// is populated once during setup and treated as read-only afterward; there
// is exactly one dispatch per process invocation so no locking is needed.
var commands = make([]*CommandDef, 0)

func Initialize(w Writer) (err error) {
	SetWriter(w)

	err = ValidateCommands()
	if err != nil {
		goto end
	}

	err = CallInitializerFuncs(InitializerArgs{Writer: w})
	if err != nil {
		goto end
	}

end:
	return err
}

func RegisteredCommands() (cmds []*CommandDef) {
	return commands
}

// RegisterCommand appends a command definition. Structural problems with the
// definition are registration errors, reported immediately so a bad command
// never reaches dispatch.
func RegisterCommand(cmd *CommandDef) (err error) {
	var errs []error

	errs = validateCommand(cmd)

	err = CombineErrs(errs)
	if err != nil {
		err = WithErr(err, ErrCommandRegistrationFailed, "command_name", cmd.Name())
		goto end
	}
	commands = append(commands, cmd)

end:
	return err
}

var ErrCommandRegistrationFailed = errors.New("command registration failed")

// ValidateCommands re-checks every registered command. Initialize() calls it
// so configuration mistakes fail at startup rather than on first use.
func ValidateCommands() (err error) {
	var errs []error

	for _, cmd := range commands {
		errs = append(errs, validateCommand(cmd)...)
	}

	return errors.Join(errs...)
}

func validateCommand(cmd *CommandDef) (errs []error) {
	var i int
	var m Matcher

	if cmd.Name() == "" {
		errs = append(errs, fmt.Errorf("command has no name"))
	}
	if cmd.handler == nil {
		errs = append(errs, fmt.Errorf("command '%s' has nil handler", cmd.Name()))
	}
	if len(cmd.Matchers()) == 0 {
		errs = append(errs, fmt.Errorf("command '%s' has no matchers", cmd.Name()))
	}

	// Optional matchers are only valid in the terminal position; anywhere
	// else the positional meaning of the matchers after them is ambiguous.
	for i, m = range cmd.Matchers() {
		if !m.IsOptional() {
			continue
		}
		if i == len(cmd.Matchers())-1 {
			continue
		}
		errs = append(errs, fmt.Errorf("command '%s': optional matcher at position %d must be last", cmd.Name(), i))
	}

	return errs
}

// ResetCommands clears the registry; primarily for testing.
func ResetCommands() {
	commands = commands[:0]
}
