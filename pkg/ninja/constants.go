package ninja

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Session or script completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration file
	ExitScriptError    = 11 // Command script could not be read or executed
	ExitNotInteractive = 12 // Interactive feature requested without a terminal
)

const (
	// ConfigDirEnv names the environment variable that overrides the
	// directory searched for ninjafiles.yaml and .env.
	ConfigDirEnv = "NINJAFILES_CONFIG_DIR"

	// NonInteractiveEnv forces non-interactive mode when set to "1".
	NonInteractiveEnv = "NINJAFILES_NON_INTERACTIVE"

	// DefaultPromptSuffix is appended to the current path in the shell prompt.
	DefaultPromptSuffix = "$ "
)
