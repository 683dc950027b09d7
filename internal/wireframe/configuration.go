package wireframe

import (
	"strings"

	pathutils "github.com/temirov/textkit/internal/utils/path"
)

const (
	widthConfigurationKeyConstant     = "width"
	overflowConfigurationKeyConstant  = "overflow"
	measureConfigurationKeyConstant   = "measure"
	templateConfigurationKeyConstant  = "template"
	outputConfigurationKeyConstant    = "output"
	linesConfigurationKeyConstant     = "lines"
	configurationKeySeparatorConstant = "."
)

var wireframeConfigurationHomeExpander = pathutils.NewHomeExpander()

// CommandConfiguration captures persisted configuration for the wireframe command.
type CommandConfiguration struct {
	Width    int      `mapstructure:"width"`
	Overflow string   `mapstructure:"overflow"`
	Measure  string   `mapstructure:"measure"`
	Template string   `mapstructure:"template"`
	Output   string   `mapstructure:"output"`
	Lines    []string `mapstructure:"lines"`
}

// DefaultCommandConfiguration returns baseline configuration values for the wireframe command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Width:    int(DefaultWidth),
		Overflow: string(OverflowPreserve),
		Measure:  string(MeasureRunes),
	}
}

// DefaultConfigurationValues exposes the defaults as viper keys nested under keyPrefix.
func DefaultConfigurationValues(keyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		qualifiedKey(keyPrefix, widthConfigurationKeyConstant):    defaults.Width,
		qualifiedKey(keyPrefix, overflowConfigurationKeyConstant): defaults.Overflow,
		qualifiedKey(keyPrefix, measureConfigurationKeyConstant):  defaults.Measure,
		qualifiedKey(keyPrefix, templateConfigurationKeyConstant): defaults.Template,
		qualifiedKey(keyPrefix, outputConfigurationKeyConstant):   defaults.Output,
		qualifiedKey(keyPrefix, linesConfigurationKeyConstant):    []string{},
	}
}

// Sanitize trims configured values and normalizes choice spellings. Lines are kept verbatim.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Overflow = strings.ToLower(strings.TrimSpace(configuration.Overflow))
	sanitized.Measure = strings.ToLower(strings.TrimSpace(configuration.Measure))
	sanitized.Template = strings.ToLower(strings.TrimSpace(configuration.Template))
	sanitized.Output = wireframeConfigurationHomeExpander.Expand(strings.TrimSpace(configuration.Output))
	if len(configuration.Lines) > 0 {
		sanitized.Lines = append([]string(nil), configuration.Lines...)
	}
	return sanitized
}

func qualifiedKey(keyPrefix string, key string) string {
	trimmedPrefix := strings.TrimSpace(keyPrefix)
	if len(trimmedPrefix) == 0 {
		return key
	}
	return trimmedPrefix + configurationKeySeparatorConstant + key
}
