package importfix

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// CombineImportRuleName removes the client symbol from a multi-symbol import and adds the shared instance import.
	CombineImportRuleName = "combine-import"
	// ReplaceImportRuleName swaps a client-only import for the shared instance import.
	ReplaceImportRuleName = "replace-import"
	// DropInitializerRuleName deletes the local client construction line.
	DropInitializerRuleName = "drop-initializer"

	combineImportPatternTemplateConstant     = `import \{ %s,\s*([^}]+?)\s*\} from ['"]%s['"]`
	combineImportReplacementTemplateConstant = "import { ${1} } from '%s'\nimport { %s } from '%s'"
	replaceImportPatternTemplateConstant     = `import \{ %s \} from ['"]%s['"]`
	replaceImportReplacementTemplateConstant = "import { %s } from '%s'"
	dropInitializerPatternTemplateConstant   = `\nconst %s = new %s\(\)\n`
	dropInitializerReplacementConstant       = "\n"
	replacementDollarConstant                = "$"
	replacementEscapedDollarConstant         = "$$"
	ruleCompilationErrorTemplateConstant     = "unable to compile rewrite rule %s: %w"
)

// RewriteRule is one named regular expression substitution.
type RewriteRule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply rewrites every match in content and reports whether anything changed.
func (rule RewriteRule) Apply(content string) (string, bool) {
	if rule.Pattern == nil {
		return content, false
	}
	rewritten := rule.Pattern.ReplaceAllString(content, rule.Replacement)
	return rewritten, rewritten != content
}

// DefaultRules builds the ordered migration rules for the configured client symbol, modules, and instance name.
// The combine rule precedes the replace rule so multi-symbol imports keep their other symbols.
func DefaultRules(configuration Configuration) ([]RewriteRule, error) {
	clientSymbol := regexp.QuoteMeta(configuration.ClientSymbol)
	clientModule := regexp.QuoteMeta(configuration.ClientModule)
	instanceName := regexp.QuoteMeta(configuration.InstanceName)

	sharedImportModule := escapeReplacement(configuration.MarkerImport)
	sharedInstanceName := escapeReplacement(configuration.InstanceName)
	clientModuleLiteral := escapeReplacement(configuration.ClientModule)

	definitions := []struct {
		name        string
		pattern     string
		replacement string
	}{
		{
			name:        CombineImportRuleName,
			pattern:     fmt.Sprintf(combineImportPatternTemplateConstant, clientSymbol, clientModule),
			replacement: fmt.Sprintf(combineImportReplacementTemplateConstant, clientModuleLiteral, sharedInstanceName, sharedImportModule),
		},
		{
			name:        ReplaceImportRuleName,
			pattern:     fmt.Sprintf(replaceImportPatternTemplateConstant, clientSymbol, clientModule),
			replacement: fmt.Sprintf(replaceImportReplacementTemplateConstant, sharedInstanceName, sharedImportModule),
		},
		{
			name:        DropInitializerRuleName,
			pattern:     fmt.Sprintf(dropInitializerPatternTemplateConstant, instanceName, clientSymbol),
			replacement: dropInitializerReplacementConstant,
		},
	}

	rules := make([]RewriteRule, 0, len(definitions))
	for _, definition := range definitions {
		compiledPattern, compileError := regexp.Compile(definition.pattern)
		if compileError != nil {
			return nil, fmt.Errorf(ruleCompilationErrorTemplateConstant, definition.name, compileError)
		}
		rules = append(rules, RewriteRule{Name: definition.name, Pattern: compiledPattern, Replacement: definition.replacement})
	}
	return rules, nil
}

func escapeReplacement(literal string) string {
	return strings.ReplaceAll(literal, replacementDollarConstant, replacementEscapedDollarConstant)
}
