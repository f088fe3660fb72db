package climatch

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// WriterLogger pairs a user-facing Writer with a structured logger so one
// call can both inform the user and leave a log trail.
type WriterLogger struct {
	Writer
	*slog.Logger
}

func NewWriterLogger(writer Writer, logger *slog.Logger) WriterLogger {
	return WriterLogger{Writer: writer, Logger: logger}
}

func (wl WriterLogger) Printf(format string, args ...any) {
	wl.Writer.Printf(format, args...)
}

func (wl WriterLogger) ErrorError(msg string, args ...any) (err error) {
	var ok bool
	wl.Error(msg, args...)
	msg = wl.concatMsgAndArgs(msg, args...)
	wl.Errorf(msg + "\n")
	if len(args) == 0 {
		err = errors.New(msg)
		goto end
	}
	err, ok = args[len(args)-1].(error)
	if !ok {
		err = errors.New(msg)
		goto end
	}
	if strings.HasSuffix(msg, err.Error()) {
		err = errors.New(msg)
		goto end
	}
	err = NewErr(errors.New(msg), err)
end:
	return err
}

func (wl WriterLogger) WarnError(msg string, args ...any) {
	wl.Warn(msg, args...)
	wl.Errorf(wl.concatMsgAndArgs(msg, args...) + "\n")
}

func (wl WriterLogger) InfoPrint(msg string, args ...any) {
	wl.Logger.Info(msg, args...)
	wl.Writer.Printf(wl.concatMsgAndArgs(msg, args...) + "\n")
}

func (wl WriterLogger) concatMsgAndArgs(msg string, args ...any) string {
	var sb strings.Builder
	last := len(args) - 1
	sb.WriteString(msg)
	sb.WriteByte(';')
	for i := 0; i < len(args); i += 2 {
		if i == last && i == len(args)-1 {
			sb.WriteString(fmt.Sprintf(" %v", args[i]))
			goto end
		}
		sb.WriteString(fmt.Sprintf(" %s=%v", args[i], args[i+1]))
	}
end:
	return sb.String()
}
