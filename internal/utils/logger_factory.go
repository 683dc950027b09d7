package utils

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logLevelDebugStringConstant          = "debug"
	logLevelInfoStringConstant           = "info"
	logLevelWarnStringConstant           = "warn"
	logLevelErrorStringConstant          = "error"
	logFormatStructuredStringConstant    = "structured"
	logFormatConsoleStringConstant       = "console"
	jsonZapEncodingStringConstant        = "json"
	consoleZapEncodingStringConstant     = "console"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
	logFileMaximumSizeMegabytesConstant  = 5
	logFileMaximumBackupsConstant        = 3
	logFileMaximumAgeDaysConstant        = 28
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

// LoggerSettings describes the logger requested by the application.
type LoggerSettings struct {
	Level    LogLevel
	Format   LogFormat
	FilePath string
}

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct {
	mutex         sync.Mutex
	rotatingFiles []*lumberjack.Logger
}

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

var logFormatEncodingMapping = map[LogFormat]string{
	LogFormatStructured: jsonZapEncodingStringConstant,
	LogFormatConsole:    consoleZapEncodingStringConstant,
}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger produces a zap.Logger honoring the requested log level and format.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	return factory.CreateLoggerWithSettings(LoggerSettings{Level: requestedLogLevel, Format: requestedLogFormat})
}

// CreateLoggerWithSettings produces a zap.Logger writing to stderr and, when a file path is configured,
// to a rotating JSON log file.
func (factory *LoggerFactory) CreateLoggerWithSettings(settings LoggerSettings) (*zap.Logger, error) {
	zapLogLevel, levelExists := logLevelMapping[LogLevel(strings.ToLower(strings.TrimSpace(string(settings.Level))))]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, settings.Level)
	}

	encoding, formatExists := logFormatEncodingMapping[LogFormat(strings.ToLower(strings.TrimSpace(string(settings.Format))))]
	if !formatExists {
		return nil, fmt.Errorf(unsupportedLogFormatTemplateConstant, settings.Format)
	}

	configuration := zap.NewProductionConfig()
	configuration.Level = zap.NewAtomicLevelAt(zapLogLevel)
	configuration.Encoding = encoding

	logger, buildError := configuration.Build()
	if buildError != nil {
		return nil, buildError
	}

	logFilePath := strings.TrimSpace(settings.FilePath)
	if len(logFilePath) == 0 {
		return logger, nil
	}

	rotatingFile := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    logFileMaximumSizeMegabytesConstant,
		MaxBackups: logFileMaximumBackupsConstant,
		MaxAge:     logFileMaximumAgeDaysConstant,
		Compress:   true,
	}
	factory.trackRotatingFile(rotatingFile)

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rotatingFile),
		configuration.Level,
	)

	return logger.WithOptions(zap.WrapCore(func(standardCore zapcore.Core) zapcore.Core {
		return zapcore.NewTee(standardCore, fileCore)
	})), nil
}

// Close releases rotating log files opened by the factory.
func (factory *LoggerFactory) Close() error {
	if factory == nil {
		return nil
	}

	factory.mutex.Lock()
	defer factory.mutex.Unlock()

	var closeErrors []error
	for _, rotatingFile := range factory.rotatingFiles {
		if closeError := rotatingFile.Close(); closeError != nil {
			closeErrors = append(closeErrors, closeError)
		}
	}
	factory.rotatingFiles = nil

	return errors.Join(closeErrors...)
}

func (factory *LoggerFactory) trackRotatingFile(rotatingFile *lumberjack.Logger) {
	factory.mutex.Lock()
	defer factory.mutex.Unlock()
	factory.rotatingFiles = append(factory.rotatingFiles, rotatingFile)
}
