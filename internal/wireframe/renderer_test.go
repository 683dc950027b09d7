package wireframe_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/temirov/textkit/internal/wireframe"
)

const (
	testPropertySubtestTemplateConstant = "width_%d_lines_%d"
	testSampleAlphabetConstant          = "abcdefghijklmnopqrstuvwxyz"
	testMaximumPropertyWidthConstant    = 12
	testMaximumPropertyLinesConstant    = 5
)

func TestRenderConcreteScenario(testInstance *testing.T) {
	frame, renderError := wireframe.Render(wireframe.Document{"ab", ""}, 4)
	require.NoError(testInstance, renderError)
	require.Equal(testInstance, wireframe.Frame{"+----+", "|ab  |", "|    |", "+----+"}, frame)
	require.Equal(testInstance, "+----+\n|ab  |\n|    |\n+----+", frame.String())
}

func TestRenderRowsMatchFrameWidth(testInstance *testing.T) {
	for width := 1; width <= testMaximumPropertyWidthConstant; width++ {
		for lineCount := 0; lineCount <= testMaximumPropertyLinesConstant; lineCount++ {
			document := buildFittingDocument(width, lineCount)
			testInstance.Run(fmt.Sprintf(testPropertySubtestTemplateConstant, width, lineCount), func(testInstance *testing.T) {
				frame, renderError := wireframe.Render(document, wireframe.Width(width))
				require.NoError(testInstance, renderError)
				require.Len(testInstance, frame, lineCount+2)
				for _, row := range frame {
					require.Equal(testInstance, width+2, utf8.RuneCountInString(row))
				}
				require.Equal(testInstance, frame[0], frame[len(frame)-1])
				for lineIndex, line := range document {
					require.True(testInstance, strings.HasPrefix(frame[lineIndex+1], "|"+line))
				}
			})
		}
	}
}

func TestRenderEmptyDocumentProducesBordersOnly(testInstance *testing.T) {
	frame, renderError := wireframe.Render(wireframe.Document{}, 3)
	require.NoError(testInstance, renderError)
	require.Equal(testInstance, wireframe.Frame{"+---+", "+---+"}, frame)
}

func TestRenderPreservesOverflowingLines(testInstance *testing.T) {
	overflowingLine := "abcdefgh"
	frame, renderError := wireframe.Render(wireframe.Document{"ok", overflowingLine}, 4)
	require.NoError(testInstance, renderError)

	require.Equal(testInstance, "|ok  |", frame[1])
	require.Equal(testInstance, "|"+overflowingLine+"|", frame[2])
	require.Greater(testInstance, len(frame[2]), 4+2)
	require.Equal(testInstance, []int{1}, wireframe.OverflowingLines(wireframe.Document{"ok", overflowingLine}, 4, wireframe.MeasureRunes))
}

func TestRenderRejectsInvalidInput(testInstance *testing.T) {
	testCases := []struct {
		name          string
		lines         wireframe.Document
		width         wireframe.Width
		expectedCause error
	}{
		{name: "zero_width", lines: wireframe.Document{"a"}, width: 0, expectedCause: wireframe.ErrInvalidWidth},
		{name: "negative_width", lines: wireframe.Document{}, width: -3, expectedCause: wireframe.ErrInvalidWidth},
		{name: "missing_document", lines: nil, width: 4, expectedCause: wireframe.ErrMissingDocument},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			frame, renderError := wireframe.Render(testCase.lines, testCase.width)
			require.Nil(testInstance, frame)
			require.ErrorIs(testInstance, renderError, testCase.expectedCause)

			var configurationError wireframe.ConfigurationError
			require.True(testInstance, errors.As(renderError, &configurationError))
		})
	}
}

func TestRenderWithOptionsOverflowPolicies(testInstance *testing.T) {
	document := wireframe.Document{"short", "much too long"}

	testCases := []struct {
		name           string
		options        wireframe.Options
		expectedFrame  wireframe.Frame
		expectOverflow bool
	}{
		{
			name:          "preserve",
			options:       wireframe.Options{Overflow: wireframe.OverflowPreserve},
			expectedFrame: wireframe.Frame{"+------+", "|short |", "|much too long|", "+------+"},
		},
		{
			name:          "truncate",
			options:       wireframe.Options{Overflow: wireframe.OverflowTruncate},
			expectedFrame: wireframe.Frame{"+------+", "|short |", "|much t|", "+------+"},
		},
		{
			name:           "reject",
			options:        wireframe.Options{Overflow: wireframe.OverflowReject},
			expectOverflow: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			frame, renderError := wireframe.RenderWithOptions(document, 6, testCase.options)
			if testCase.expectOverflow {
				require.ErrorIs(testInstance, renderError, wireframe.ErrLineOverflow)
				var overflowError wireframe.OverflowError
				require.ErrorAs(testInstance, renderError, &overflowError)
				require.Equal(testInstance, 1, overflowError.LineIndex)
				require.Equal(testInstance, 13, overflowError.LineLength)
				return
			}
			require.NoError(testInstance, renderError)
			require.Equal(testInstance, testCase.expectedFrame, frame)
		})
	}
}

func TestRenderWithOptionsMeasureModes(testInstance *testing.T) {
	document := wireframe.Document{"日本"}

	runeFrame, runeError := wireframe.RenderWithOptions(document, 4, wireframe.Options{Measure: wireframe.MeasureRunes})
	require.NoError(testInstance, runeError)
	require.Equal(testInstance, "|日本  |", runeFrame[1])

	cellFrame, cellError := wireframe.RenderWithOptions(document, 4, wireframe.Options{Measure: wireframe.MeasureCells})
	require.NoError(testInstance, cellError)
	require.Equal(testInstance, "|日本|", cellFrame[1])

	truncatedFrame, truncateError := wireframe.RenderWithOptions(wireframe.Document{"日本語"}, 3, wireframe.Options{
		Measure:  wireframe.MeasureCells,
		Overflow: wireframe.OverflowTruncate,
	})
	require.NoError(testInstance, truncateError)
	require.Equal(testInstance, "|日 |", truncatedFrame[1])
}

func TestRenderWithOptionsCustomGlyphs(testInstance *testing.T) {
	frame, renderError := wireframe.RenderWithOptions(wireframe.Document{"x"}, 3, wireframe.Options{
		Glyphs: wireframe.Glyphs{Corner: '*', Horizontal: '=', Vertical: '!', Fill: '.'},
	})
	require.NoError(testInstance, renderError)
	require.Equal(testInstance, wireframe.Frame{"*===*", "!x..!", "*===*"}, frame)
}

func TestRenderWithOptionsRejectsUnsupportedSettings(testInstance *testing.T) {
	testCases := []struct {
		name          string
		options       wireframe.Options
		expectedCause error
	}{
		{name: "overflow", options: wireframe.Options{Overflow: "wrap"}, expectedCause: wireframe.ErrUnsupportedOverflowPolicy},
		{name: "measure", options: wireframe.Options{Measure: "bytes"}, expectedCause: wireframe.ErrUnsupportedMeasureMode},
		{name: "wide_glyph", options: wireframe.Options{Glyphs: wireframe.Glyphs{Horizontal: '═', Corner: '中'}}, expectedCause: wireframe.ErrInvalidGlyph},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			_, renderError := wireframe.RenderWithOptions(wireframe.Document{}, 2, testCase.options)
			require.ErrorIs(testInstance, renderError, testCase.expectedCause)
		})
	}
}

func buildFittingDocument(width int, lineCount int) wireframe.Document {
	document := make(wireframe.Document, 0, lineCount)
	for lineIndex := 0; lineIndex < lineCount; lineIndex++ {
		lineLength := (lineIndex * 3) % (width + 1)
		document = append(document, testSampleAlphabetConstant[:lineLength])
	}
	return document
}
