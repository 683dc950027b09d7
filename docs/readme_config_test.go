package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
)

var expectedOverflowPolicies = map[string]struct{}{
	"preserve": {},
	"truncate": {},
	"reject":   {},
}

type readmeApplicationConfiguration struct {
	Common readmeCommonConfiguration `yaml:"common"`
	Tools  readmeToolsConfiguration  `yaml:"tools"`
}

type readmeCommonConfiguration struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

type readmeToolsConfiguration struct {
	Wireframe  readmeWireframeConfiguration  `yaml:"wireframe"`
	ImportsFix readmeImportsFixConfiguration `yaml:"imports_fix"`
}

type readmeWireframeConfiguration struct {
	Width    int    `yaml:"width"`
	Overflow string `yaml:"overflow"`
}

type readmeImportsFixConfiguration struct {
	TargetDirectories []string `yaml:"target_directories"`
	FileExtension     string   `yaml:"file_extension"`
	MarkerImport      string   `yaml:"marker_import"`
}

func TestReadmeConfigurationParses(testInstance *testing.T) {
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	readmePath := filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant)
	contentBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	remainingText := contentText[headerIndex:]
	fenceEndRelativeIndex := strings.Index(remainingText, yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)
	fenceEndIndex := headerIndex + fenceEndRelativeIndex

	snippetContent := strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : fenceEndIndex])

	var configuration readmeApplicationConfiguration
	require.NoError(testInstance, yaml.Unmarshal([]byte(snippetContent), &configuration))

	require.Equal(testInstance, "info", configuration.Common.LogLevel)
	require.Equal(testInstance, "structured", configuration.Common.LogFormat)
	require.Positive(testInstance, configuration.Tools.Wireframe.Width)
	require.Contains(testInstance, expectedOverflowPolicies, configuration.Tools.Wireframe.Overflow)
	require.NotEmpty(testInstance, configuration.Tools.ImportsFix.TargetDirectories)
	require.Equal(testInstance, ".ts", configuration.Tools.ImportsFix.FileExtension)
	require.Equal(testInstance, "@/lib/prisma", configuration.Tools.ImportsFix.MarkerImport)
}
