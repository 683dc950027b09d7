package importfix

import (
	"strings"

	pathutils "github.com/temirov/textkit/internal/utils/path"
)

const (
	defaultBaseDirectoryConstant         = "."
	defaultFileExtensionConstant         = ".ts"
	defaultMarkerImportConstant          = "@/lib/prisma"
	defaultMarkerCallConstant            = "new PrismaClient()"
	defaultClientSymbolConstant          = "PrismaClient"
	defaultClientModuleConstant          = "@prisma/client"
	defaultInstanceNameConstant          = "prisma"
	baseDirectoryConfigurationKey        = "base_directory"
	targetDirectoriesConfigurationKey    = "target_directories"
	fileExtensionConfigurationKey        = "file_extension"
	markerImportConfigurationKey         = "marker_import"
	markerCallConfigurationKey           = "marker_call"
	clientSymbolConfigurationKey         = "client_symbol"
	clientModuleConfigurationKey         = "client_module"
	instanceNameConfigurationKey         = "instance_name"
	dryRunConfigurationKey               = "dry_run"
	configurationKeySeparatorConstant    = "."
	extensionSeparatorConstant           = "."
	wildcardExtensionPrefixConstant      = "*"
	targetDirectoryListSeparatorConstant = ","
)

var (
	defaultTargetDirectories = []string{"app/api", "tests/backend", "prisma"}

	importFixHomeExpander = pathutils.NewHomeExpander()

	importFixTargetDirectorySanitizer = pathutils.NewDirectoryListSanitizerWithConfiguration(
		importFixHomeExpander,
		pathutils.DirectoryListSanitizerConfiguration{PruneNestedDirectories: true},
	)
)

// Configuration describes where to look for client instantiations and how to rewrite them.
type Configuration struct {
	BaseDirectory     string   `mapstructure:"base_directory"`
	TargetDirectories []string `mapstructure:"target_directories"`
	FileExtension     string   `mapstructure:"file_extension"`
	MarkerImport      string   `mapstructure:"marker_import"`
	MarkerCall        string   `mapstructure:"marker_call"`
	ClientSymbol      string   `mapstructure:"client_symbol"`
	ClientModule      string   `mapstructure:"client_module"`
	InstanceName      string   `mapstructure:"instance_name"`
	DryRun            bool     `mapstructure:"dry_run"`
}

// DefaultConfiguration returns the Prisma migration defaults.
func DefaultConfiguration() Configuration {
	return Configuration{
		BaseDirectory:     defaultBaseDirectoryConstant,
		TargetDirectories: append([]string(nil), defaultTargetDirectories...),
		FileExtension:     defaultFileExtensionConstant,
		MarkerImport:      defaultMarkerImportConstant,
		MarkerCall:        defaultMarkerCallConstant,
		ClientSymbol:      defaultClientSymbolConstant,
		ClientModule:      defaultClientModuleConstant,
		InstanceName:      defaultInstanceNameConstant,
	}
}

// DefaultConfigurationValues exposes the defaults as viper keys nested under keyPrefix.
func DefaultConfigurationValues(keyPrefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		qualifiedKey(keyPrefix, baseDirectoryConfigurationKey):     defaults.BaseDirectory,
		qualifiedKey(keyPrefix, targetDirectoriesConfigurationKey): defaults.TargetDirectories,
		qualifiedKey(keyPrefix, fileExtensionConfigurationKey):     defaults.FileExtension,
		qualifiedKey(keyPrefix, markerImportConfigurationKey):      defaults.MarkerImport,
		qualifiedKey(keyPrefix, markerCallConfigurationKey):        defaults.MarkerCall,
		qualifiedKey(keyPrefix, clientSymbolConfigurationKey):      defaults.ClientSymbol,
		qualifiedKey(keyPrefix, clientModuleConfigurationKey):      defaults.ClientModule,
		qualifiedKey(keyPrefix, instanceNameConfigurationKey):      defaults.InstanceName,
		qualifiedKey(keyPrefix, dryRunConfigurationKey):            defaults.DryRun,
	}
}

// Sanitize trims values, expands home shortcuts, and normalizes the file extension to a leading dot.
// Target directories are split on commas so environment overrides can carry a list.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.BaseDirectory = importFixHomeExpander.Expand(strings.TrimSpace(configuration.BaseDirectory))
	if len(sanitized.BaseDirectory) == 0 {
		sanitized.BaseDirectory = defaultBaseDirectoryConstant
	}

	var splitDirectories []string
	for _, targetDirectory := range configuration.TargetDirectories {
		splitDirectories = append(splitDirectories, strings.Split(targetDirectory, targetDirectoryListSeparatorConstant)...)
	}
	sanitized.TargetDirectories = importFixTargetDirectorySanitizer.Sanitize(splitDirectories)

	sanitized.FileExtension = normalizeExtension(configuration.FileExtension)
	sanitized.MarkerImport = strings.TrimSpace(configuration.MarkerImport)
	sanitized.MarkerCall = strings.TrimSpace(configuration.MarkerCall)
	sanitized.ClientSymbol = strings.TrimSpace(configuration.ClientSymbol)
	sanitized.ClientModule = strings.TrimSpace(configuration.ClientModule)
	sanitized.InstanceName = strings.TrimSpace(configuration.InstanceName)
	return sanitized
}

// Validate reports the first blank required value or an empty target directory list as a ConfigurationError.
func (configuration Configuration) Validate() error {
	if validationError := configuration.validateRewriteValues(); validationError != nil {
		return validationError
	}

	if len(configuration.TargetDirectories) == 0 {
		return ConfigurationError{Field: targetDirectoriesFieldNameConstant, Err: ErrMissingTargetDirectories}
	}

	return nil
}

func (configuration Configuration) validateRewriteValues() error {
	requiredValues := []struct {
		field string
		value string
	}{
		{field: fileExtensionFieldNameConstant, value: configuration.FileExtension},
		{field: markerImportFieldNameConstant, value: configuration.MarkerImport},
		{field: markerCallFieldNameConstant, value: configuration.MarkerCall},
		{field: clientSymbolFieldNameConstant, value: configuration.ClientSymbol},
		{field: clientModuleFieldNameConstant, value: configuration.ClientModule},
		{field: instanceNameFieldNameConstant, value: configuration.InstanceName},
	}
	for _, required := range requiredValues {
		if len(strings.TrimSpace(required.value)) == 0 {
			return ConfigurationError{Field: required.field, Value: required.value, Err: ErrEmptyValue}
		}
	}
	return nil
}

func normalizeExtension(extension string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(extension), wildcardExtensionPrefixConstant)
	if len(trimmed) == 0 {
		return ""
	}
	if !strings.HasPrefix(trimmed, extensionSeparatorConstant) {
		trimmed = extensionSeparatorConstant + trimmed
	}
	return trimmed
}

func qualifiedKey(keyPrefix string, key string) string {
	trimmedPrefix := strings.TrimSpace(keyPrefix)
	if len(trimmedPrefix) == 0 {
		return key
	}
	return trimmedPrefix + configurationKeySeparatorConstant + key
}
