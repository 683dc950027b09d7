package wireframe

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	// DefaultCornerGlyph starts and ends both border rows.
	DefaultCornerGlyph = '+'
	// DefaultHorizontalGlyph fills the border rows.
	DefaultHorizontalGlyph = '-'
	// DefaultVerticalGlyph flanks every body row.
	DefaultVerticalGlyph = '|'
	// DefaultFillGlyph pads body rows up to the frame width.
	DefaultFillGlyph = ' '

	frameRowSeparatorConstant = "\n"
	borderRowCountConstant    = 2
)

// Document is the ordered list of lines rendered top to bottom.
type Document []string

// Width is the number of content columns between the vertical borders.
type Width int

// Frame is the rendered box: a border row, one body row per document line, and a closing border row.
type Frame []string

// String joins the rows with newlines, without a trailing newline.
func (frame Frame) String() string {
	return strings.Join(frame, frameRowSeparatorConstant)
}

// OverflowPolicy selects how lines wider than the frame are rendered.
type OverflowPolicy string

// Supported overflow policies.
const (
	// OverflowPreserve keeps long lines intact, producing rows wider than the border.
	OverflowPreserve OverflowPolicy = "preserve"
	// OverflowTruncate clips long lines to the frame width.
	OverflowTruncate OverflowPolicy = "truncate"
	// OverflowReject fails the render with an OverflowError.
	OverflowReject OverflowPolicy = "reject"
)

// OverflowPolicyChoices lists the accepted overflow policy names.
func OverflowPolicyChoices() []string {
	return []string{string(OverflowPreserve), string(OverflowTruncate), string(OverflowReject)}
}

// MeasureMode selects how line length is counted.
type MeasureMode string

// Supported measure modes.
const (
	// MeasureRunes counts one column per character.
	MeasureRunes MeasureMode = "runes"
	// MeasureCells counts terminal display cells, so wide East Asian characters take two columns.
	MeasureCells MeasureMode = "cells"
)

// MeasureModeChoices lists the accepted measure mode names.
func MeasureModeChoices() []string {
	return []string{string(MeasureRunes), string(MeasureCells)}
}

// Length measures text in columns according to the mode.
func (mode MeasureMode) Length(text string) int {
	if mode == MeasureCells {
		return runewidth.StringWidth(text)
	}
	return utf8.RuneCountInString(text)
}

func (mode MeasureMode) truncate(text string, width int) string {
	if mode == MeasureCells {
		return runewidth.Truncate(text, width, "")
	}
	if utf8.RuneCountInString(text) <= width {
		return text
	}
	runes := []rune(text)
	return string(runes[:width])
}

// Glyphs holds the characters used to draw a frame. Zero fields fall back to the defaults.
type Glyphs struct {
	Corner     rune
	Horizontal rune
	Vertical   rune
	Fill       rune
}

// DefaultGlyphs returns the classic +, -, | and space glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Corner:     DefaultCornerGlyph,
		Horizontal: DefaultHorizontalGlyph,
		Vertical:   DefaultVerticalGlyph,
		Fill:       DefaultFillGlyph,
	}
}

// Options tunes rendering. The zero value renders exactly like Render.
type Options struct {
	Overflow OverflowPolicy
	Measure  MeasureMode
	Glyphs   Glyphs
}

// DefaultOptions preserves overflowing lines, counts characters, and uses the default glyphs.
func DefaultOptions() Options {
	return Options{
		Overflow: OverflowPreserve,
		Measure:  MeasureRunes,
		Glyphs:   DefaultGlyphs(),
	}
}

// Render draws lines inside a box whose content area is width columns wide.
//
// Every line is padded with trailing spaces to width. Lines longer than width
// are not clipped, so their rows are wider than width+2. A nil document or a
// non-positive width is rejected with a ConfigurationError.
func Render(lines Document, width Width) (Frame, error) {
	return RenderWithOptions(lines, width, DefaultOptions())
}

// RenderWithOptions draws lines like Render with a configurable overflow policy, measure mode, and glyph set.
func RenderWithOptions(lines Document, width Width, options Options) (Frame, error) {
	if lines == nil {
		return nil, newConfigurationError(documentFieldNameConstant, "", ErrMissingDocument)
	}
	if width <= 0 {
		return nil, newConfigurationError(widthFieldNameConstant, strconv.Itoa(int(width)), ErrInvalidWidth)
	}

	resolvedOptions, optionsError := options.resolve()
	if optionsError != nil {
		return nil, optionsError
	}

	glyphs := resolvedOptions.Glyphs
	columnCount := int(width)
	borderRow := string(glyphs.Corner) + strings.Repeat(string(glyphs.Horizontal), columnCount) + string(glyphs.Corner)

	frame := make(Frame, 0, len(lines)+borderRowCountConstant)
	frame = append(frame, borderRow)

	for lineIndex, line := range lines {
		lineLength := resolvedOptions.Measure.Length(line)
		if lineLength > columnCount {
			switch resolvedOptions.Overflow {
			case OverflowReject:
				return nil, OverflowError{LineIndex: lineIndex, LineLength: lineLength, Width: width}
			case OverflowTruncate:
				line = resolvedOptions.Measure.truncate(line, columnCount)
				lineLength = resolvedOptions.Measure.Length(line)
			}
		}

		paddedLine := line
		if lineLength < columnCount {
			paddedLine += strings.Repeat(string(glyphs.Fill), columnCount-lineLength)
		}

		frame = append(frame, string(glyphs.Vertical)+paddedLine+string(glyphs.Vertical))
	}

	frame = append(frame, borderRow)

	return frame, nil
}

// OverflowingLines returns the indexes of lines wider than width under the given measure mode.
func OverflowingLines(lines Document, width Width, mode MeasureMode) []int {
	var overflowing []int
	for lineIndex, line := range lines {
		if mode.Length(line) > int(width) {
			overflowing = append(overflowing, lineIndex)
		}
	}
	return overflowing
}

func (options Options) resolve() (Options, error) {
	resolved := options

	switch resolved.Overflow {
	case "":
		resolved.Overflow = OverflowPreserve
	case OverflowPreserve, OverflowTruncate, OverflowReject:
	default:
		return Options{}, newConfigurationError(overflowFieldNameConstant, string(options.Overflow), ErrUnsupportedOverflowPolicy)
	}

	switch resolved.Measure {
	case "":
		resolved.Measure = MeasureRunes
	case MeasureRunes, MeasureCells:
	default:
		return Options{}, newConfigurationError(measureFieldNameConstant, string(options.Measure), ErrUnsupportedMeasureMode)
	}

	defaults := DefaultGlyphs()
	glyphSlots := []struct {
		target   *rune
		fallback rune
	}{
		{target: &resolved.Glyphs.Corner, fallback: defaults.Corner},
		{target: &resolved.Glyphs.Horizontal, fallback: defaults.Horizontal},
		{target: &resolved.Glyphs.Vertical, fallback: defaults.Vertical},
		{target: &resolved.Glyphs.Fill, fallback: defaults.Fill},
	}
	for _, glyphSlot := range glyphSlots {
		if *glyphSlot.target == 0 {
			*glyphSlot.target = glyphSlot.fallback
		}
		if runewidth.RuneWidth(*glyphSlot.target) != 1 {
			return Options{}, newConfigurationError(glyphsFieldNameConstant, string(*glyphSlot.target), ErrInvalidGlyph)
		}
	}

	return resolved, nil
}
