package wireframe_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/temirov/textkit/internal/wireframe"
)

func TestTemplatesFitDefaultWidth(testInstance *testing.T) {
	require.Equal(testInstance, []string{wireframe.BlankTemplateName, wireframe.PageTemplateName}, wireframe.TemplateNames())

	for _, templateName := range wireframe.TemplateNames() {
		testInstance.Run(templateName, func(testInstance *testing.T) {
			document, templateError := wireframe.Template(templateName)
			require.NoError(testInstance, templateError)
			require.NotEmpty(testInstance, document)

			frame, renderError := wireframe.Render(document, wireframe.DefaultWidth)
			require.NoError(testInstance, renderError)
			require.Len(testInstance, frame, len(document)+2)
			for _, row := range frame {
				require.Equal(testInstance, int(wireframe.DefaultWidth)+2, utf8.RuneCountInString(row))
			}
		})
	}
}

func TestTemplateReturnsIndependentCopies(testInstance *testing.T) {
	first, firstError := wireframe.Template(" Blank ")
	require.NoError(testInstance, firstError)
	first[0] = "mutated"

	second, secondError := wireframe.Template(wireframe.BlankTemplateName)
	require.NoError(testInstance, secondError)
	require.Equal(testInstance, "  Your content here", second[0])
}

func TestTemplateRejectsUnknownNames(testInstance *testing.T) {
	_, templateError := wireframe.Template("dashboard")
	require.ErrorIs(testInstance, templateError, wireframe.ErrUnknownTemplate)
}
