package importfix

import (
	"errors"
	"fmt"
)

const (
	configurationErrorTemplateConstant = "invalid %s %q: %s"
	fileErrorTemplateConstant          = "unable to %s %s: %s"
	targetDirectoriesFieldNameConstant = "target directories"
	fileExtensionFieldNameConstant     = "file extension"
	markerImportFieldNameConstant      = "marker import"
	markerCallFieldNameConstant        = "marker call"
	clientSymbolFieldNameConstant      = "client symbol"
	clientModuleFieldNameConstant      = "client module"
	instanceNameFieldNameConstant      = "instance name"
	fileOperationStatConstant          = "stat"
	fileOperationWalkConstant          = "walk"
	fileOperationReadConstant          = "read"
	fileOperationWriteConstant         = "write"
)

var (
	// ErrEmptyValue indicates a required configuration string is blank.
	ErrEmptyValue = errors.New("value must not be empty")
	// ErrMissingTargetDirectories indicates no target directory remained after sanitization.
	ErrMissingTargetDirectories = errors.New("at least one target directory is required")
	// ErrNotDirectory indicates a target path exists but is not a directory.
	ErrNotDirectory = errors.New("path is not a directory")
)

// ConfigurationError reports an unusable configuration value.
type ConfigurationError struct {
	Field string
	Value string
	Err   error
}

// Error describes the configuration failure.
func (configurationError ConfigurationError) Error() string {
	return fmt.Sprintf(configurationErrorTemplateConstant, configurationError.Field, configurationError.Value, configurationError.Err)
}

// Unwrap exposes the underlying sentinel.
func (configurationError ConfigurationError) Unwrap() error {
	return configurationError.Err
}

// FileError reports a filesystem failure on a single path.
type FileError struct {
	Path      string
	Operation string
	Err       error
}

// Error describes the file failure.
func (fileError FileError) Error() string {
	return fmt.Sprintf(fileErrorTemplateConstant, fileError.Operation, fileError.Path, fileError.Err)
}

// Unwrap exposes the underlying filesystem error.
func (fileError FileError) Unwrap() error {
	return fileError.Err
}
