package utils

// Ignore file constants used across the project.
const (
	// IgnoreFileName is the name of the digest-specific ignore file.
	IgnoreFileName = ".cdigestignore"
	// GitIgnoreFileName is the name of the Git ignore file.
	GitIgnoreFileName = ".gitignore"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
)

// Configuration file constants.
const (
	// GlobalConfigDirectoryName is the directory under the user home holding global configuration.
	GlobalConfigDirectoryName = ".cdigest"
	// ConfigFileName is the name of the local configuration file.
	ConfigFileName = ".cdigest.yaml"
)

// NonTextFilePlaceholder substitutes the content of binary and otherwise unreadable files.
const NonTextFilePlaceholder = "[Non-text file]"

// Bootstrap messages used by the main package.
const (
	// LoggerInitializationFailedMessageFormat reports a failure to build the application logger.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage reports a fatal command error.
	ApplicationExecutionFailedMessage = "application execution failed"
)
