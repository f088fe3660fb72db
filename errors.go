package climatch

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrShowUsage = fmt.Errorf("run '%s' with no arguments for usage", os.Args[0])

// NewErr builds an error from a mix of wrapped errors and key/value context
// pairs. Error arguments are wrapped (and remain matchable via errors.Is);
// everything after the last error argument is treated as alternating
// key/value pairs appended to the message.
func NewErr(args ...any) error {
	var errs []error
	var kv []any

	for _, arg := range args {
		err, ok := arg.(error)
		if ok && len(kv) == 0 {
			errs = append(errs, err)
			continue
		}
		kv = append(kv, arg)
	}
	return &ctxErr{errs: errs, kv: kv}
}

// WithErr wraps an existing error with an additional sentinel and key/value
// context, e.g. WithErr(err, ErrCommandRegistrationFailed, "command_name", name).
func WithErr(err error, args ...any) error {
	return NewErr(append([]any{err}, args...)...)
}

// AppendErr appends err to errs when non-nil.
func AppendErr(errs []error, err error) []error {
	if err != nil {
		errs = append(errs, err)
	}
	return errs
}

// CombineErrs joins accumulated errors, yielding nil when none occurred.
func CombineErrs(errs []error) error {
	return errors.Join(errs...)
}

type ctxErr struct {
	errs []error
	kv   []any
}

func (e *ctxErr) Error() string {
	var sb strings.Builder
	var last int

	for i, err := range e.errs {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	last = len(e.kv) - 1
	for i := 0; i < len(e.kv); i += 2 {
		if i == last {
			sb.WriteString(fmt.Sprintf(" [%v]", e.kv[i]))
			goto end
		}
		sb.WriteString(fmt.Sprintf(" [%s=%v]", e.kv[i], e.kv[i+1]))
	}
end:
	return sb.String()
}

func (e *ctxErr) Unwrap() []error {
	return e.errs
}
