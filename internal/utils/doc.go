// Package utils exposes reusable helpers consumed by the textkit commands.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper, dotenv files, environment variables, and zap logging for
// the CLI, plus a flushing writer used for command output.
package utils
