package wireframe

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/textkit/internal/utils"
	"github.com/temirov/textkit/internal/utils/flags"
)

const (
	commandUseConstant                  = "wireframe [line ...]"
	commandShortDescriptionConstant     = "Render an ASCII wireframe box"
	commandLongDescriptionConstant      = "wireframe pads every line to a fixed width and draws a +---+ border around the block. Lines come from --input, positional arguments, --template, or the configured lines, in that order."
	widthFlagNameConstant               = "width"
	widthFlagUsageConstant              = "Content width in columns (overrides the document and configuration width)"
	inputFlagNameConstant               = "input"
	inputFlagShorthandConstant          = "i"
	inputFlagUsageConstant              = "Read lines from a text or YAML file; use - for standard input"
	templateFlagNameConstant            = "template"
	templateFlagShorthandConstant       = "t"
	templateFlagDescriptionConstant     = "Render a built-in template"
	overflowFlagNameConstant            = "overflow"
	overflowFlagDescriptionConstant     = "How to render lines wider than the frame"
	measureFlagNameConstant             = "measure"
	measureFlagDescriptionConstant      = "Count width in characters or terminal cells"
	strictFlagNameConstant              = "strict"
	strictFlagUsageConstant             = "Fail when a line is wider than the frame (same as --overflow reject)"
	standardInputPathConstant           = "-"
	standardOutputNameConstant          = "standard output"
	outputFilePermissionsConstant       = 0o644
	frameTerminatorConstant             = "\n"
	renderErrorTemplateConstant         = "wireframe render failed: %w"
	writeOutputErrorTemplateConstant    = "unable to write wireframe to %s: %w"
	documentSourceInputTemplate         = "input:%s"
	documentSourceArgumentsConstant     = "arguments"
	documentSourceTemplateTemplate      = "template:%s"
	documentSourceConfigurationConstant = "configuration"
	logMessageRenderedConstant          = "Wireframe rendered"
	logMessageSavedConstant             = "Wireframe saved"
	logMessageOverflowConstant          = "Line exceeds frame width"
	logFieldSourceConstant              = "source"
	logFieldWidthConstant               = "width"
	logFieldRowCountConstant            = "rows"
	logFieldOverflowConstant            = "overflow"
	logFieldMeasureConstant             = "measure"
	logFieldOutputPathConstant          = "output"
	logFieldLineIndexConstant           = "line_index"
	logFieldLineLengthConstant          = "line_length"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current wireframe configuration.
type ConfigurationProvider func() CommandConfiguration

// DocumentLoader reads a document file.
type DocumentLoader func(path string) (DocumentSource, error)

// CommandBuilder assembles the wireframe Cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	DocumentLoader        DocumentLoader
}

type commandOptions struct {
	width         Width
	widthExplicit bool
	inputPath     string
	templateName  string
	outputPath    string
	renderOptions Options
	lines         Document
	configuration CommandConfiguration
}

// Build constructs the wireframe command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE:          builder.run,
	}

	defaults := DefaultCommandConfiguration()
	command.Flags().Int(widthFlagNameConstant, defaults.Width, widthFlagUsageConstant)
	command.Flags().StringP(inputFlagNameConstant, inputFlagShorthandConstant, "", inputFlagUsageConstant)
	command.Flags().StringP(templateFlagNameConstant, templateFlagShorthandConstant, "", flags.FormatChoiceUsage("", TemplateNames(), templateFlagDescriptionConstant))
	command.Flags().String(overflowFlagNameConstant, "", flags.FormatChoiceUsage(defaults.Overflow, OverflowPolicyChoices(), overflowFlagDescriptionConstant))
	command.Flags().String(measureFlagNameConstant, "", flags.FormatChoiceUsage(defaults.Measure, MeasureModeChoices(), measureFlagDescriptionConstant))
	command.Flags().StringP(flags.OutputFlagName, flags.OutputFlagShorthand, "", flags.OutputFlagUsage)
	flags.AddToggleFlag(command.Flags(), nil, strictFlagNameConstant, "", false, strictFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()

	source, sourceName, sourceError := builder.resolveDocument(command, options)
	if sourceError != nil {
		return fmt.Errorf(renderErrorTemplateConstant, sourceError)
	}

	width := options.width
	if !options.widthExplicit && source.Width > 0 {
		width = source.Width
	}

	frame, renderError := RenderWithOptions(source.Lines, width, options.renderOptions)
	if renderError != nil {
		return fmt.Errorf(renderErrorTemplateConstant, renderError)
	}

	if options.renderOptions.Overflow == OverflowPreserve {
		for _, lineIndex := range OverflowingLines(source.Lines, width, options.renderOptions.Measure) {
			logger.Warn(
				logMessageOverflowConstant,
				zap.Int(logFieldLineIndexConstant, lineIndex),
				zap.Int(logFieldLineLengthConstant, options.renderOptions.Measure.Length(source.Lines[lineIndex])),
				zap.Int(logFieldWidthConstant, int(width)),
			)
		}
	}

	renderedText := frame.String() + frameTerminatorConstant

	if len(options.outputPath) > 0 {
		writeError := os.WriteFile(options.outputPath, []byte(renderedText), outputFilePermissionsConstant)
		if writeError != nil {
			return fmt.Errorf(writeOutputErrorTemplateConstant, options.outputPath, writeError)
		}
		logger.Info(logMessageSavedConstant, zap.String(logFieldOutputPathConstant, options.outputPath))
	} else {
		if _, writeError := fmt.Fprint(utils.NewFlushingWriter(command.OutOrStdout()), renderedText); writeError != nil {
			return fmt.Errorf(writeOutputErrorTemplateConstant, standardOutputNameConstant, writeError)
		}
	}

	logger.Info(
		logMessageRenderedConstant,
		zap.String(logFieldSourceConstant, sourceName),
		zap.Int(logFieldWidthConstant, int(width)),
		zap.Int(logFieldRowCountConstant, len(frame)),
		zap.String(logFieldOverflowConstant, string(options.renderOptions.Overflow)),
		zap.String(logFieldMeasureConstant, string(options.renderOptions.Measure)),
	)

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (commandOptions, error) {
	configuration := builder.resolveConfiguration()

	options := commandOptions{
		width:         Width(configuration.Width),
		templateName:  configuration.Template,
		outputPath:    configuration.Output,
		configuration: configuration,
	}

	if command.Flags().Changed(widthFlagNameConstant) {
		flagWidth, widthError := command.Flags().GetInt(widthFlagNameConstant)
		if widthError != nil {
			return commandOptions{}, widthError
		}
		options.width = Width(flagWidth)
		options.widthExplicit = true
	}

	inputPath, inputError := command.Flags().GetString(inputFlagNameConstant)
	if inputError != nil {
		return commandOptions{}, inputError
	}
	options.inputPath = strings.TrimSpace(inputPath)

	templateName, templateError := command.Flags().GetString(templateFlagNameConstant)
	if templateError != nil {
		return commandOptions{}, templateError
	}
	if trimmedTemplate := strings.TrimSpace(templateName); len(trimmedTemplate) > 0 {
		options.templateName = trimmedTemplate
	}

	outputPath, outputError := command.Flags().GetString(flags.OutputFlagName)
	if outputError != nil {
		return commandOptions{}, outputError
	}
	if trimmedOutput := strings.TrimSpace(outputPath); len(trimmedOutput) > 0 {
		options.outputPath = trimmedOutput
	}

	overflowValue := configuration.Overflow
	if command.Flags().Changed(overflowFlagNameConstant) {
		flagOverflow, overflowFlagError := command.Flags().GetString(overflowFlagNameConstant)
		if overflowFlagError != nil {
			return commandOptions{}, overflowFlagError
		}
		overflowValue = flagOverflow
	}
	strictEnabled, strictError := command.Flags().GetBool(strictFlagNameConstant)
	if strictError != nil {
		return commandOptions{}, strictError
	}
	if strictEnabled {
		overflowValue = string(OverflowReject)
	}
	parsedOverflow, overflowParseError := flags.ParseChoice(overflowFlagNameConstant, overflowValue, string(OverflowPreserve), OverflowPolicyChoices())
	if overflowParseError != nil {
		return commandOptions{}, newConfigurationError(overflowFieldNameConstant, overflowValue, ErrUnsupportedOverflowPolicy)
	}

	measureValue := configuration.Measure
	if command.Flags().Changed(measureFlagNameConstant) {
		flagMeasure, measureFlagError := command.Flags().GetString(measureFlagNameConstant)
		if measureFlagError != nil {
			return commandOptions{}, measureFlagError
		}
		measureValue = flagMeasure
	}
	parsedMeasure, measureParseError := flags.ParseChoice(measureFlagNameConstant, measureValue, string(MeasureRunes), MeasureModeChoices())
	if measureParseError != nil {
		return commandOptions{}, newConfigurationError(measureFieldNameConstant, measureValue, ErrUnsupportedMeasureMode)
	}

	options.renderOptions = Options{
		Overflow: OverflowPolicy(parsedOverflow),
		Measure:  MeasureMode(parsedMeasure),
		Glyphs:   DefaultGlyphs(),
	}

	if len(arguments) > 0 {
		options.lines = append(Document{}, arguments...)
	}

	return options, nil
}

func (builder *CommandBuilder) resolveDocument(command *cobra.Command, options commandOptions) (DocumentSource, string, error) {
	switch {
	case options.inputPath == standardInputPathConstant:
		source, readError := ReadDocument(command.InOrStdin(), DocumentFormatText)
		return source, fmt.Sprintf(documentSourceInputTemplate, options.inputPath), readError
	case len(options.inputPath) > 0:
		source, loadError := builder.resolveDocumentLoader()(options.inputPath)
		return source, fmt.Sprintf(documentSourceInputTemplate, options.inputPath), loadError
	case len(options.lines) > 0:
		return DocumentSource{Lines: options.lines}, documentSourceArgumentsConstant, nil
	case len(options.templateName) > 0:
		document, templateError := Template(options.templateName)
		return DocumentSource{Lines: document}, fmt.Sprintf(documentSourceTemplateTemplate, options.templateName), templateError
	case len(options.configuration.Lines) > 0:
		return DocumentSource{Lines: Document(options.configuration.Lines)}, documentSourceConfigurationConstant, nil
	default:
		return DocumentSource{}, "", newConfigurationError(documentFieldNameConstant, "", ErrMissingDocument)
	}
}

func (builder *CommandBuilder) resolveDocumentLoader() DocumentLoader {
	if builder.DocumentLoader != nil {
		return builder.DocumentLoader
	}
	return LoadDocumentFile
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

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}
