package climatch

// Exit codes for CLI applications following lifecycle progression.
// Lower numbers indicate earlier failures in the application startup sequence.
//
// These codes are designed to help both users and scripts understand where
// in the application lifecycle a failure occurred:
//   - 1: Failed parsing command-line arguments
//   - 2: Failed registering or validating command definitions
//   - 3: Expected/handled error during command execution
//   - 4: Unexpected/unhandled error during command execution
//   - 5: Failed to initialize logging infrastructure
//
// Scripts can use these codes to determine appropriate retry/recovery strategies:
//   - Exit 1-2: User or registration error, fix and retry immediately
//   - Exit 3: Known error condition, check output, may be retryable
//   - Exit 4: Unexpected error, investigate before retry
//   - Exit 5: Infrastructure failure, check system resources
//
// Note: Exit codes 128 and above are reserved for signal-related exits.
// See: https://tldp.org/LDP/abs/html/exitcodes.html

//goland:noinspection GoUnusedConst
const (
	ExitSuccess             = 0 // Successful execution
	ExitOptionsParseError   = 1 // Command-line option parsing failed
	ExitCommandConfigError  = 2 // Command registration/validation failed
	ExitKnownRuntimeError   = 3 // Expected/known runtime error during execution
	ExitUnknownRuntimeError = 4 // Unexpected/unknown runtime error
	ExitLoggerSetupError    = 5 // Logger initialization failed
)
