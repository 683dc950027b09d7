package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/textkit/internal/utils/path"
)

func TestHomeExpanderExpand(testInstance *testing.T) {
	testCases := []struct {
		name         string
		provider     pathutils.HomeDirectoryProvider
		input        string
		expectedPath string
	}{
		{name: "bare_tilde", provider: staticHome, input: "~", expectedPath: filepath.Clean(testHomeDirectoryConstant)},
		{name: "tilde_slash", provider: staticHome, input: "~/projects/site", expectedPath: filepath.Join(testHomeDirectoryConstant, "projects", "site")},
		{name: "other_user_untouched", provider: staticHome, input: "~other/site", expectedPath: "~other/site"},
		{name: "relative_untouched", provider: staticHome, input: "app/api", expectedPath: "app/api"},
		{name: "empty_untouched", provider: staticHome, input: "", expectedPath: ""},
		{name: "provider_failure_untouched", provider: failingHome, input: "~/projects", expectedPath: "~/projects"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			expander := pathutils.NewHomeExpanderWithProvider(testCase.provider)
			require.Equal(testInstance, testCase.expectedPath, expander.Expand(testCase.input))
		})
	}
}

func staticHome() (string, error) {
	return testHomeDirectoryConstant, nil
}

func failingHome() (string, error) {
	return "", errors.New("home directory unavailable")
}
