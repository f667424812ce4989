package utils

// ConfigFileName is the name of the copcon configuration file.
const ConfigFileName = ".copcon.yaml"

// GlobalConfigDirectoryName is the directory under the user home holding global configuration.
const GlobalConfigDirectoryName = ".copcon"

// IgnoreFileName is the default name of the ignore-pattern file looked up in the scan root.
const IgnoreFileName = ".copconignore"

// GitDirectoryName is the name of the Git repository directory.
const GitDirectoryName = ".git"

// LoggerInitializationFailedMessageFormat reports a failure to build the application logger.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes fatal application errors.
const ApplicationExecutionFailedMessage = "application execution failed"
