package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestAddToggleFlagParsesValues(t *testing.T) {
	testCases := []struct {
		name               string
		arguments          []string
		expectedValue      bool
		expectedChanged    bool
		expectedPositional []string
	}{
		{name: "DefaultFalse", arguments: []string{}, expectedValue: false, expectedChanged: false},
		{name: "ImplicitTrue", arguments: []string{"--toggle"}, expectedValue: true, expectedChanged: true},
		{name: "ExplicitYes", arguments: []string{"--toggle", "yes"}, expectedValue: true, expectedChanged: true},
		{name: "ExplicitTrueUppercase", arguments: []string{"--toggle", "TRUE"}, expectedValue: true, expectedChanged: true},
		{name: "ExplicitNo", arguments: []string{"--toggle", "no"}, expectedValue: false, expectedChanged: true},
		{name: "InlineOff", arguments: []string{"--toggle=off"}, expectedValue: false, expectedChanged: true},
		{
			name:               "PositionalArgumentPreserved",
			arguments:          []string{"--toggle", "app/api"},
			expectedValue:      true,
			expectedChanged:    true,
			expectedPositional: []string{"app/api"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			command := &cobra.Command{}

			var toggleValue bool
			AddToggleFlag(command.Flags(), &toggleValue, "toggle", "", false, "Toggle flag")

			parseError := command.ParseFlags(NormalizeToggleArguments(testCase.arguments))
			require.NoError(t, parseError)

			require.Equal(t, testCase.expectedValue, toggleValue)

			registeredFlag := command.Flags().Lookup("toggle")
			require.NotNil(t, registeredFlag)
			require.Equal(t, testCase.expectedChanged, registeredFlag.Changed)

			if len(testCase.expectedPositional) > 0 {
				require.Equal(t, testCase.expectedPositional, command.Flags().Args())
			}
		})
	}
}

func TestAddToggleFlagRejectsInvalidValues(t *testing.T) {
	command := &cobra.Command{}

	var toggleValue bool
	AddToggleFlag(command.Flags(), &toggleValue, "toggle", "", false, "Toggle flag")

	parseError := command.ParseFlags(NormalizeToggleArguments([]string{"--toggle=maybe"}))
	require.Error(t, parseError)
	require.False(t, toggleValue)
}

func TestNormalizeToggleArgumentsHandlesShorthand(t *testing.T) {
	command := &cobra.Command{}

	var toggleValue bool
	AddToggleFlag(command.Flags(), &toggleValue, "strict-toggle", "s", true, "Toggle flag")

	normalizedArguments := NormalizeToggleArguments([]string{"-s", "no"})
	require.Equal(t, []string{"-s=no"}, normalizedArguments)

	require.NoError(t, command.ParseFlags(normalizedArguments))
	require.False(t, toggleValue)
	require.Contains(t, command.Flags().Lookup("strict-toggle").Usage, "<YES|no>")
}

func TestNormalizeToggleArgumentsStopsAtTerminator(t *testing.T) {
	var toggleValue bool
	AddToggleFlag((&cobra.Command{}).Flags(), &toggleValue, "terminated-toggle", "", false, "")

	normalizedArguments := NormalizeToggleArguments([]string{"--", "--terminated-toggle", "no"})
	require.Equal(t, []string{"--", "--terminated-toggle", "no"}, normalizedArguments)
}
