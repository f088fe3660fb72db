package climatch

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
)

// BufferedWriter implements Writer and captures all output in buffers for
// testing, including raw ANSI escape bytes emitted by the style renderer.
type BufferedWriter struct {
	stdout     *bytes.Buffer
	stderr     *bytes.Buffer
	mu         sync.RWMutex
	quiet      bool
	verbosity  int
	useLevel   int
	loudWriter Writer
	v2Writer   Writer
	v3Writer   Writer
}

// Verify BufferedWriter implements Writer interface
var _ Writer = (*BufferedWriter)(nil)

// NewBufferedWriter creates a new BufferedWriter with default settings
func NewBufferedWriter() *BufferedWriter {
	return &BufferedWriter{
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
		quiet:     false,
		verbosity: 3, // Default to max verbosity for testing
		useLevel:  1,
	}
}

// Printf writes formatted output to the stdout buffer
func (w *BufferedWriter) Printf(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.quiet {
		return
	}
	if w.verbosity < w.useLevel {
		return
	}

	w.stdout.WriteString(fmt.Sprintf(format, args...))
}

// Errorf writes formatted error output to the stderr buffer
func (w *BufferedWriter) Errorf(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Flatten newlines in error arguments (same as cliWriter)
	processedArgs := make([]any, len(args))
	for i, arg := range args {
		if err, ok := arg.(error); ok {
			processedArgs[i] = strings.Replace(err.Error(), "\n", "; ", -1)
		} else {
			processedArgs[i] = arg
		}
	}

	w.stderr.WriteString(fmt.Sprintf(format, processedArgs...))
}

// Loud returns a Writer that ignores the quiet setting
func (w *BufferedWriter) Loud() Writer {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.loudWriter != nil {
		return w.loudWriter
	}

	w.loudWriter = &BufferedWriter{
		stdout:    w.stdout, // Share the same buffers
		stderr:    w.stderr,
		quiet:     false,
		verbosity: w.verbosity,
		useLevel:  w.useLevel,
	}
	return w.loudWriter
}

// V2 returns a Writer for verbosity level 2
func (w *BufferedWriter) V2() Writer {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.v2Writer != nil {
		return w.v2Writer
	}

	w.v2Writer = &BufferedWriter{
		stdout:    w.stdout, // Share the same buffers
		stderr:    w.stderr,
		quiet:     w.quiet,
		verbosity: w.verbosity,
		useLevel:  2,
	}
	return w.v2Writer
}

// V3 returns a Writer for verbosity level 3
func (w *BufferedWriter) V3() Writer {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.v3Writer != nil {
		return w.v3Writer
	}

	w.v3Writer = &BufferedWriter{
		stdout:    w.stdout, // Share the same buffers
		stderr:    w.stderr,
		quiet:     w.quiet,
		verbosity: w.verbosity,
		useLevel:  3,
	}
	return w.v3Writer
}

func (w *BufferedWriter) Writer() io.Writer {
	return w.stdout
}

func (w *BufferedWriter) ErrWriter() io.Writer {
	return w.stderr
}

// Testing helper methods

// GetStdout returns the current stdout buffer contents
func (w *BufferedWriter) GetStdout() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stdout.String()
}

// GetStderr returns the current stderr buffer contents
func (w *BufferedWriter) GetStderr() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stderr.String()
}

// ContainsStdout returns true if the stdout buffer contains the substring
func (w *BufferedWriter) ContainsStdout(s string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return strings.Contains(w.stdout.String(), s)
}

// ContainsStderr returns true if the stderr buffer contains the substring
func (w *BufferedWriter) ContainsStderr(s string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return strings.Contains(w.stderr.String(), s)
}

// Reset clears both stdout and stderr buffers
func (w *BufferedWriter) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stdout.Reset()
	w.stderr.Reset()
}

// SetQuiet sets the quiet mode (suppresses all Printf output)
func (w *BufferedWriter) SetQuiet(quiet bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.quiet = quiet
}

// GetStdoutLines returns stdout content split into non-empty lines
func (w *BufferedWriter) GetStdoutLines() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	content := w.stdout.String()
	if content == "" {
		return []string{}
	}

	lines := strings.Split(strings.TrimSpace(content), "\n")
	var result []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			result = append(result, line)
		}
	}
	return result
}
