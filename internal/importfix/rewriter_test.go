package importfix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/textkit/internal/importfix"
)

const (
	combinedImportSourceConstant = "import { PrismaClient, Foo } from '@prisma/client'\n" +
		"\n" +
		"const prisma = new PrismaClient()\n" +
		"export const handler = () => prisma.foo.findMany()\n"

	combinedImportExpectedConstant = "import { Foo } from '@prisma/client'\n" +
		"import { prisma } from '@/lib/prisma'\n" +
		"\n" +
		"export const handler = () => prisma.foo.findMany()\n"

	clientOnlySourceConstant = "import { PrismaClient } from \"@prisma/client\"\n" +
		"const prisma = new PrismaClient()\n" +
		"export default prisma\n"

	clientOnlyExpectedConstant = "import { prisma } from '@/lib/prisma'\n" +
		"export default prisma\n"
)

func TestRewriterRewritesClientImports(testInstance *testing.T) {
	testCases := []struct {
		name            string
		content         string
		expectedStatus  importfix.FileStatus
		expectedContent string
		expectedRules   []string
	}{
		{
			name:            "combined_import",
			content:         combinedImportSourceConstant,
			expectedStatus:  importfix.FileStatusFixed,
			expectedContent: combinedImportExpectedConstant,
			expectedRules:   []string{importfix.CombineImportRuleName, importfix.DropInitializerRuleName},
		},
		{
			name:            "client_only_import_double_quotes",
			content:         clientOnlySourceConstant,
			expectedStatus:  importfix.FileStatusFixed,
			expectedContent: clientOnlyExpectedConstant,
			expectedRules:   []string{importfix.ReplaceImportRuleName, importfix.DropInitializerRuleName},
		},
		{
			name:            "multiple_extra_symbols",
			content:         "import { PrismaClient, Prisma, User } from '@prisma/client'\nconst prisma = new PrismaClient()\n",
			expectedStatus:  importfix.FileStatusFixed,
			expectedContent: "import { Prisma, User } from '@prisma/client'\nimport { prisma } from '@/lib/prisma'\n",
			expectedRules:   []string{importfix.CombineImportRuleName, importfix.DropInitializerRuleName},
		},
		{
			name:            "already_migrated_single_quotes",
			content:         "import { prisma } from '@/lib/prisma'\nconst other = new PrismaClient()\n",
			expectedStatus:  importfix.FileStatusAlreadyMigrated,
			expectedContent: "import { prisma } from '@/lib/prisma'\nconst other = new PrismaClient()\n",
		},
		{
			name:            "already_migrated_double_quotes",
			content:         "import { prisma } from \"@/lib/prisma\"\n",
			expectedStatus:  importfix.FileStatusAlreadyMigrated,
			expectedContent: "import { prisma } from \"@/lib/prisma\"\n",
		},
		{
			name:            "no_client_construction",
			content:         "import { Prisma } from '@prisma/client'\n",
			expectedStatus:  importfix.FileStatusNoClient,
			expectedContent: "import { Prisma } from '@prisma/client'\n",
		},
		{
			name:            "guards_pass_without_matching_rules",
			content:         "const client = new PrismaClient()\n",
			expectedStatus:  importfix.FileStatusFixed,
			expectedContent: "const client = new PrismaClient()\n",
		},
		{
			name:            "initializer_on_last_line_is_kept",
			content:         "import { PrismaClient } from '@prisma/client'\nconst prisma = new PrismaClient()",
			expectedStatus:  importfix.FileStatusFixed,
			expectedContent: "import { prisma } from '@/lib/prisma'\nconst prisma = new PrismaClient()",
			expectedRules:   []string{importfix.ReplaceImportRuleName},
		},
	}

	rewriter, rewriterError := importfix.NewRewriter(importfix.DefaultConfiguration())
	require.NoError(testInstance, rewriterError)

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			result := rewriter.Rewrite(testCase.content)
			require.Equal(testInstance, testCase.expectedStatus, result.Status)
			require.Equal(testInstance, testCase.expectedContent, result.Content)
			require.Equal(testInstance, testCase.expectedRules, result.AppliedRules)
			require.Equal(testInstance, len(testCase.expectedRules) > 0, result.Changed())
		})
	}
}

func TestRewriterIsIdempotent(testInstance *testing.T) {
	rewriter, rewriterError := importfix.NewRewriter(importfix.DefaultConfiguration())
	require.NoError(testInstance, rewriterError)

	for _, content := range []string{combinedImportSourceConstant, clientOnlySourceConstant} {
		firstPass := rewriter.Rewrite(content)
		require.Equal(testInstance, importfix.FileStatusFixed, firstPass.Status)

		secondPass := rewriter.Rewrite(firstPass.Content)
		require.Equal(testInstance, importfix.FileStatusAlreadyMigrated, secondPass.Status)
		require.Equal(testInstance, firstPass.Content, secondPass.Content)
		require.False(testInstance, secondPass.Changed())
	}
}

func TestRewriterUsesConfiguredNames(testInstance *testing.T) {
	configuration := importfix.Configuration{
		FileExtension: ".ts",
		MarkerImport:  "~/db",
		MarkerCall:    "new DbClient()",
		ClientSymbol:  "DbClient",
		ClientModule:  "db-driver",
		InstanceName:  "db",
	}
	rewriter, rewriterError := importfix.NewRewriter(configuration)
	require.NoError(testInstance, rewriterError)

	result := rewriter.Rewrite("import { DbClient, Row } from 'db-driver'\nconst db = new DbClient()\n")
	require.Equal(testInstance, "import { Row } from 'db-driver'\nimport { db } from '~/db'\n", result.Content)
}

func TestNewRewriterRejectsBlankValues(testInstance *testing.T) {
	configuration := importfix.DefaultConfiguration()
	configuration.MarkerCall = "  "

	_, rewriterError := importfix.NewRewriter(configuration)
	require.ErrorIs(testInstance, rewriterError, importfix.ErrEmptyValue)

	var configurationError importfix.ConfigurationError
	require.ErrorAs(testInstance, rewriterError, &configurationError)
	require.Equal(testInstance, "marker call", configurationError.Field)
}
