package climatch

import (
	"regexp"

	"github.com/mikeschinkel/go-dt"
)

// FlagType represents the type of a global option flag
type FlagType int

const (
	UnknownFlagType FlagType = iota
	StringFlag
	BoolFlag
	IntFlag
)

// ValidationFunc validates a flag value and returns an error if invalid
type ValidationFunc func(value any) error

// FlagDef defines a global option flag declaratively. Exactly one of the
// typed destination pointers must be non-nil; it both selects the flag's
// type and receives the parsed value.
type FlagDef struct {
	Name           string
	Shortcut       byte
	Default        any
	Usage          string
	Required       bool
	Regex          *regexp.Regexp
	ValidationFunc ValidationFunc
	String         *string
	Bool           *bool
	Int            *int
}

func (fd *FlagDef) Type() (ft FlagType) {
	switch {
	case fd.String != nil:
		return StringFlag
	case fd.Bool != nil:
		return BoolFlag
	case fd.Int != nil:
		return IntFlag
	}
	return UnknownFlagType
}

// ValidateValue validates the flag value using the defined validation rules
func (fd *FlagDef) ValidateValue(value any) error {
	var err error
	var stringValue string
	var ok bool

	// Check required
	if fd.Required && (value == nil || value == "") {
		err = NewErr(dt.ErrFlagIsRequired)
		goto end
	}

	// Skip further validation if value is empty and not required
	if value == nil || value == "" {
		goto end
	}

	// Regex validation (only for string values)
	if fd.Regex != nil {
		stringValue, ok = value.(string)
		if ok && !fd.Regex.MatchString(stringValue) {
			err = NewErr(dt.ErrInvalidFlagName, "flag_value", stringValue)
			goto end
		}
	}

	// Custom validation function
	if fd.ValidationFunc != nil {
		err = fd.ValidationFunc(value)
		if err != nil {
			goto end
		}
	}

end:
	if err != nil {
		err = WithErr(err, dt.ErrFlagValidationFailed, "flag_name", fd.Name)
	}
	return err
}

func (fd *FlagDef) SetValue(value any) {
	switch fd.Type() {
	case StringFlag:
		v := *value.(*string)
		if fd.String != nil {
			*fd.String = v
		}
	case BoolFlag:
		v := *value.(*bool)
		if fd.Bool != nil {
			*fd.Bool = v
		}
	case IntFlag:
		v := *value.(*int)
		if fd.Int != nil {
			*fd.Int = v
		}
	case UnknownFlagType:
		// Just here to have all flag types in the switch
	}
}

// applyDefault assigns the declared default, if any, to the destination.
func (fd *FlagDef) applyDefault() {
	if fd.Default == nil {
		return
	}
	switch fd.Type() {
	case StringFlag:
		if v, ok := fd.Default.(string); ok {
			*fd.String = v
		}
	case BoolFlag:
		if v, ok := fd.Default.(bool); ok {
			*fd.Bool = v
		}
	case IntFlag:
		if v, ok := fd.Default.(int); ok {
			*fd.Int = v
		}
	case UnknownFlagType:
	}
}
