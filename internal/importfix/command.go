package importfix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/textkit/internal/utils"
	"github.com/temirov/textkit/internal/utils/flags"
)

const (
	commandUseConstant                    = "imports-fix"
	commandShortDescriptionConstant       = "Replace local Prisma clients with the shared instance import"
	commandLongDescriptionConstant        = "imports-fix walks the configured target directories, skips files that already import the shared client module or never construct the client, and rewrites the remaining files in place."
	baseDirectoryFlagNameConstant         = "base"
	baseDirectoryFlagUsageConstant        = "Directory the target directories are resolved against"
	targetDirectoryFlagNameConstant       = "target"
	targetDirectoryFlagUsageConstant      = "Target directory to scan (repeatable; replaces the configured list)"
	fileExtensionFlagNameConstant         = "extension"
	fileExtensionFlagUsageConstant        = "File extension to scan"
	summaryReportTemplateConstant         = "\nFixed %d files\n"
	commandExecutionErrorTemplateConstant = "imports fix failed: %w"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current imports-fix configuration.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the imports-fix Cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	FileSystem            FileSystem
}

// Build constructs the imports-fix command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          builder.run,
	}

	command.Flags().String(baseDirectoryFlagNameConstant, "", baseDirectoryFlagUsageConstant)
	command.Flags().StringSlice(targetDirectoryFlagNameConstant, nil, targetDirectoryFlagUsageConstant)
	command.Flags().String(fileExtensionFlagNameConstant, "", fileExtensionFlagUsageConstant)
	flags.AddToggleFlag(command.Flags(), nil, flags.DryRunFlagName, "", false, flags.DryRunFlagUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration, optionsError := builder.parseOptions(command)
	if optionsError != nil {
		return optionsError
	}

	writer := utils.NewFlushingWriter(command.OutOrStdout())
	reporter := NewWriterReporter(writer)
	service := NewService(builder.resolveLogger(), builder.FileSystem, reporter)

	summary, fixError := service.Fix(command.Context(), configuration)
	var configurationError ConfigurationError
	if errors.As(fixError, &configurationError) {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, fixError)
	}

	reporter.Printf(summaryReportTemplateConstant, len(summary.FixedFiles))

	if fixError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, fixError)
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) (Configuration, error) {
	configuration := builder.resolveConfiguration()

	baseDirectory, baseError := command.Flags().GetString(baseDirectoryFlagNameConstant)
	if baseError != nil {
		return Configuration{}, baseError
	}
	if trimmedBase := strings.TrimSpace(baseDirectory); len(trimmedBase) > 0 {
		configuration.BaseDirectory = trimmedBase
	}

	if command.Flags().Changed(targetDirectoryFlagNameConstant) {
		targetDirectories, targetError := command.Flags().GetStringSlice(targetDirectoryFlagNameConstant)
		if targetError != nil {
			return Configuration{}, targetError
		}
		configuration.TargetDirectories = targetDirectories
	}

	fileExtension, extensionError := command.Flags().GetString(fileExtensionFlagNameConstant)
	if extensionError != nil {
		return Configuration{}, extensionError
	}
	if trimmedExtension := strings.TrimSpace(fileExtension); len(trimmedExtension) > 0 {
		configuration.FileExtension = trimmedExtension
	}

	if command.Flags().Changed(flags.DryRunFlagName) {
		dryRun, dryRunError := command.Flags().GetBool(flags.DryRunFlagName)
		if dryRunError != nil {
			return Configuration{}, dryRunError
		}
		configuration.DryRun = dryRun
	}

	return configuration.Sanitize(), nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	if builder.ConfigurationProvider == nil {
		return DefaultConfiguration()
	}
	return builder.ConfigurationProvider()
}
