package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	environmentKeySeparatorOldConstant              = "."
	environmentKeySeparatorNewConstant              = "_"
	configurationReadErrorTemplateConstant          = "failed to read configuration: %w"
	configurationUnmarshalErrorTemplateConstant     = "failed to parse configuration: %w"
	embeddedConfigurationMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
	environmentFileLoadErrorTemplateConstant        = "failed to load environment file %s: %w"
)

// ConfigurationLoader wraps Viper to load structured configuration files and environment overrides.
type ConfigurationLoader struct {
	configurationName         string
	configurationType         string
	environmentPrefix         string
	searchPaths               []string
	environmentKeyReplacer    *strings.Replacer
	embeddedConfiguration     []byte
	embeddedConfigurationType string
	environmentFilePaths      []string
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed         string
	EnvironmentFilesLoaded []string
}

// NewConfigurationLoader creates a loader that searches known paths and respects an environment prefix.
func NewConfigurationLoader(configurationName string, configurationType string, environmentPrefix string, searchPaths []string) *ConfigurationLoader {
	duplicatedSearchPaths := make([]string, len(searchPaths))
	copy(duplicatedSearchPaths, searchPaths)

	return &ConfigurationLoader{
		configurationName:      configurationName,
		configurationType:      configurationType,
		environmentPrefix:      environmentPrefix,
		searchPaths:            duplicatedSearchPaths,
		environmentKeyReplacer: strings.NewReplacer(environmentKeySeparatorOldConstant, environmentKeySeparatorNewConstant),
	}
}

// SetEmbeddedConfiguration stores embedded configuration data merged before user-provided configuration files.
func (loader *ConfigurationLoader) SetEmbeddedConfiguration(configurationData []byte, configurationType string) {
	if loader == nil {
		return
	}

	loader.embeddedConfiguration = nil
	loader.embeddedConfigurationType = strings.TrimSpace(configurationType)

	if len(configurationData) == 0 {
		return
	}

	duplicatedData := make([]byte, len(configurationData))
	copy(duplicatedData, configurationData)
	loader.embeddedConfiguration = duplicatedData
}

// SetEnvironmentFiles registers dotenv files loaded into the process environment before overrides are resolved.
// Missing files are ignored and variables already present in the environment win.
func (loader *ConfigurationLoader) SetEnvironmentFiles(environmentFilePaths ...string) {
	if loader == nil {
		return
	}

	loader.environmentFilePaths = nil
	for _, environmentFilePath := range environmentFilePaths {
		trimmedPath := strings.TrimSpace(environmentFilePath)
		if len(trimmedPath) == 0 {
			continue
		}
		loader.environmentFilePaths = append(loader.environmentFilePaths, trimmedPath)
	}
}

// LoadConfiguration resolves targetConfiguration from layered sources, lowest precedence first:
// defaultValues, embedded configuration, the configuration file, then prefixed environment variables.
// Dotenv files are applied to the process environment before anything is read.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	loadedEnvironmentFiles, environmentError := loader.loadEnvironmentFiles()
	if environmentError != nil {
		return LoadedConfiguration{}, environmentError
	}

	layeredConfiguration := viper.New()
	layeredConfiguration.SetConfigName(loader.configurationName)
	layeredConfiguration.SetConfigType(loader.configurationType)

	if embeddedError := loader.mergeEmbeddedConfiguration(layeredConfiguration); embeddedError != nil {
		return LoadedConfiguration{}, embeddedError
	}

	for defaultKey, defaultValue := range defaultValues {
		layeredConfiguration.SetDefault(defaultKey, defaultValue)
	}
	loader.bindEnvironment(layeredConfiguration)

	if fileError := loader.mergeConfigurationFile(layeredConfiguration, configurationFilePath); fileError != nil {
		return LoadedConfiguration{}, fileError
	}

	if decodeError := layeredConfiguration.Unmarshal(targetConfiguration); decodeError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, decodeError)
	}

	return LoadedConfiguration{
		ConfigFileUsed:         layeredConfiguration.ConfigFileUsed(),
		EnvironmentFilesLoaded: loadedEnvironmentFiles,
	}, nil
}

func (loader *ConfigurationLoader) mergeEmbeddedConfiguration(layeredConfiguration *viper.Viper) error {
	if len(loader.embeddedConfiguration) == 0 {
		return nil
	}

	embeddedType := loader.embeddedConfigurationType
	if len(embeddedType) == 0 {
		embeddedType = loader.configurationType
	}

	layeredConfiguration.SetConfigType(embeddedType)
	defer layeredConfiguration.SetConfigType(loader.configurationType)

	if mergeError := layeredConfiguration.MergeConfig(bytes.NewReader(loader.embeddedConfiguration)); mergeError != nil {
		return fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
	}
	return nil
}

func (loader *ConfigurationLoader) bindEnvironment(layeredConfiguration *viper.Viper) {
	layeredConfiguration.SetEnvPrefix(loader.environmentPrefix)
	if loader.environmentKeyReplacer != nil {
		layeredConfiguration.SetEnvKeyReplacer(loader.environmentKeyReplacer)
	}
	layeredConfiguration.AutomaticEnv()
}

// mergeConfigurationFile merges an explicit file, or the first match in the search paths.
// A missing file in the search paths is not an error.
func (loader *ConfigurationLoader) mergeConfigurationFile(layeredConfiguration *viper.Viper, configurationFilePath string) error {
	if len(configurationFilePath) > 0 {
		layeredConfiguration.SetConfigFile(configurationFilePath)
	} else {
		for _, searchPath := range loader.searchPaths {
			layeredConfiguration.AddConfigPath(searchPath)
		}
	}

	mergeError := layeredConfiguration.MergeInConfig()
	if mergeError == nil {
		return nil
	}

	var notFoundError viper.ConfigFileNotFoundError
	if errors.As(mergeError, &notFoundError) {
		return nil
	}
	return fmt.Errorf(configurationReadErrorTemplateConstant, mergeError)
}

func (loader *ConfigurationLoader) loadEnvironmentFiles() ([]string, error) {
	var loadedFiles []string
	for _, environmentFilePath := range loader.environmentFilePaths {
		loadError := godotenv.Load(environmentFilePath)
		if loadError == nil {
			loadedFiles = append(loadedFiles, environmentFilePath)
			continue
		}
		if errors.Is(loadError, fs.ErrNotExist) {
			continue
		}
		return nil, fmt.Errorf(environmentFileLoadErrorTemplateConstant, environmentFilePath, loadError)
	}
	return loadedFiles, nil
}
