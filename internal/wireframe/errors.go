package wireframe

import (
	"errors"
	"fmt"
)

const (
	configurationErrorTemplateConstant     = "invalid %s %q: %v"
	configurationErrorNoValueTemplate      = "invalid %s: %v"
	overflowErrorTemplateConstant          = "line %d is %d columns wide and exceeds the frame width of %d"
	documentFieldNameConstant              = "document"
	widthFieldNameConstant                 = "width"
	overflowFieldNameConstant              = "overflow"
	measureFieldNameConstant               = "measure"
	templateFieldNameConstant              = "template"
	glyphsFieldNameConstant                = "glyphs"
	invalidWidthMessageConstant            = "width must be a positive integer"
	missingDocumentMessageConstant         = "document is required"
	unknownTemplateMessageConstant         = "unknown template"
	unsupportedOverflowPolicyMessage       = "unsupported overflow policy"
	unsupportedMeasureModeMessageConstant  = "unsupported measure mode"
	lineOverflowMessageConstant            = "line exceeds frame width"
	invalidGlyphMessageConstant            = "glyphs must occupy exactly one column"
	unsupportedDocumentFormatMessage       = "unsupported document format"
	documentFormatFieldNameConstant        = "document format"
	configurationErrorMissingCauseConstant = "configuration rejected"
)

var (
	// ErrInvalidWidth reports a frame width that is zero or negative.
	ErrInvalidWidth = errors.New(invalidWidthMessageConstant)
	// ErrMissingDocument reports an absent (nil) document.
	ErrMissingDocument = errors.New(missingDocumentMessageConstant)
	// ErrUnknownTemplate reports a template name with no built-in definition.
	ErrUnknownTemplate = errors.New(unknownTemplateMessageConstant)
	// ErrUnsupportedOverflowPolicy reports an overflow policy outside preserve, truncate, and reject.
	ErrUnsupportedOverflowPolicy = errors.New(unsupportedOverflowPolicyMessage)
	// ErrUnsupportedMeasureMode reports a measure mode outside runes and cells.
	ErrUnsupportedMeasureMode = errors.New(unsupportedMeasureModeMessageConstant)
	// ErrInvalidGlyph reports a border or fill glyph that is not exactly one column wide.
	ErrInvalidGlyph = errors.New(invalidGlyphMessageConstant)
	// ErrUnsupportedDocumentFormat reports a document format the loader cannot decode.
	ErrUnsupportedDocumentFormat = errors.New(unsupportedDocumentFormatMessage)
	// ErrLineOverflow is matched by every OverflowError.
	ErrLineOverflow = errors.New(lineOverflowMessageConstant)
)

// ConfigurationError describes rejected render input such as a bad width or a missing document.
type ConfigurationError struct {
	Field string
	Value string
	Err   error
}

func newConfigurationError(field string, value string, cause error) ConfigurationError {
	return ConfigurationError{Field: field, Value: value, Err: cause}
}

// Error describes the rejected field.
func (configurationError ConfigurationError) Error() string {
	cause := configurationError.Err
	if cause == nil {
		cause = errors.New(configurationErrorMissingCauseConstant)
	}
	if len(configurationError.Value) == 0 {
		return fmt.Sprintf(configurationErrorNoValueTemplate, configurationError.Field, cause)
	}
	return fmt.Sprintf(configurationErrorTemplateConstant, configurationError.Field, configurationError.Value, cause)
}

// Unwrap exposes the sentinel cause.
func (configurationError ConfigurationError) Unwrap() error {
	return configurationError.Err
}

// OverflowError reports the first line wider than the frame when overflow is rejected.
type OverflowError struct {
	LineIndex  int
	LineLength int
	Width      Width
}

// Error describes the overflowing line.
func (overflowError OverflowError) Error() string {
	return fmt.Sprintf(overflowErrorTemplateConstant, overflowError.LineIndex, overflowError.LineLength, overflowError.Width)
}

// Unwrap lets errors.Is match ErrLineOverflow.
func (overflowError OverflowError) Unwrap() error {
	return ErrLineOverflow
}
