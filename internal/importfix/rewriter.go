package importfix

import (
	"fmt"
	"strings"
)

const (
	singleQuotedImportTemplateConstant = "from '%s'"
	doubleQuotedImportTemplateConstant = `from "%s"`
)

// FileStatus classifies how a file was handled.
type FileStatus string

const (
	// FileStatusFixed marks a file that constructs the client and has not been migrated yet.
	FileStatusFixed FileStatus = "fixed"
	// FileStatusAlreadyMigrated marks a file that already imports the shared instance module.
	FileStatusAlreadyMigrated FileStatus = "already_migrated"
	// FileStatusNoClient marks a file that never constructs the client.
	FileStatusNoClient FileStatus = "no_client"
)

// RewriteResult describes the outcome of rewriting one file's content.
type RewriteResult struct {
	Status       FileStatus
	Content      string
	AppliedRules []string
}

// Changed reports whether any rule altered the content.
func (result RewriteResult) Changed() bool {
	return len(result.AppliedRules) > 0
}

// Rewriter applies the migration guards and rules to file content.
type Rewriter struct {
	markerImports []string
	markerCall    string
	rules         []RewriteRule
}

// NewRewriter validates the rewrite values of configuration and compiles its rules.
func NewRewriter(configuration Configuration) (*Rewriter, error) {
	if validationError := configuration.validateRewriteValues(); validationError != nil {
		return nil, validationError
	}

	rules, rulesError := DefaultRules(configuration)
	if rulesError != nil {
		return nil, rulesError
	}

	return &Rewriter{
		markerImports: []string{
			fmt.Sprintf(singleQuotedImportTemplateConstant, configuration.MarkerImport),
			fmt.Sprintf(doubleQuotedImportTemplateConstant, configuration.MarkerImport),
		},
		markerCall: configuration.MarkerCall,
		rules:      rules,
	}, nil
}

// Rules returns the ordered rules the rewriter applies.
func (rewriter *Rewriter) Rules() []RewriteRule {
	return append([]RewriteRule(nil), rewriter.rules...)
}

// Rewrite skips content that already imports the shared module or never calls the client
// constructor, and otherwise runs every rule in order.
func (rewriter *Rewriter) Rewrite(content string) RewriteResult {
	for _, markerImport := range rewriter.markerImports {
		if strings.Contains(content, markerImport) {
			return RewriteResult{Status: FileStatusAlreadyMigrated, Content: content}
		}
	}
	if !strings.Contains(content, rewriter.markerCall) {
		return RewriteResult{Status: FileStatusNoClient, Content: content}
	}

	result := RewriteResult{Status: FileStatusFixed, Content: content}
	for _, rule := range rewriter.rules {
		rewritten, changed := rule.Apply(result.Content)
		if !changed {
			continue
		}
		result.Content = rewritten
		result.AppliedRules = append(result.AppliedRules, rule.Name)
	}
	return result
}
