package pathutils

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const windowsOperatingSystemConstant = "windows"

// DirectoryListSanitizerConfiguration controls directory list sanitization behavior.
type DirectoryListSanitizerConfiguration struct {
	// PruneNestedDirectories drops entries contained in another entry so recursive walks visit each file once.
	PruneNestedDirectories bool
}

// DirectoryListSanitizer normalizes configured directory lists consistently across commands.
type DirectoryListSanitizer struct {
	homeExpander  *HomeExpander
	configuration DirectoryListSanitizerConfiguration
}

// NewDirectoryListSanitizer constructs a DirectoryListSanitizer with default behavior.
func NewDirectoryListSanitizer() *DirectoryListSanitizer {
	return NewDirectoryListSanitizerWithConfiguration(nil, DirectoryListSanitizerConfiguration{})
}

// NewDirectoryListSanitizerWithConfiguration constructs a DirectoryListSanitizer using the provided expander and configuration.
func NewDirectoryListSanitizerWithConfiguration(homeExpander *HomeExpander, configuration DirectoryListSanitizerConfiguration) *DirectoryListSanitizer {
	if homeExpander == nil {
		homeExpander = NewHomeExpander()
	}
	return &DirectoryListSanitizer{homeExpander: homeExpander, configuration: configuration}
}

// Sanitize trims whitespace, expands the user's home directory, cleans each path, and removes empty
// and duplicate entries while keeping the original order.
func (sanitizer *DirectoryListSanitizer) Sanitize(candidatePaths []string) []string {
	if sanitizer == nil {
		sanitizer = NewDirectoryListSanitizer()
	}

	sanitizedPaths := make([]string, 0, len(candidatePaths))
	seenComparisons := make(map[string]struct{}, len(candidatePaths))
	for _, candidatePath := range candidatePaths {
		trimmedCandidate := strings.TrimSpace(candidatePath)
		if len(trimmedCandidate) == 0 {
			continue
		}

		cleanedPath := filepath.Clean(sanitizer.homeExpander.Expand(trimmedCandidate))
		comparison := comparisonPath(cleanedPath)
		if _, duplicate := seenComparisons[comparison]; duplicate {
			continue
		}
		seenComparisons[comparison] = struct{}{}
		sanitizedPaths = append(sanitizedPaths, cleanedPath)
	}

	if len(sanitizedPaths) == 0 {
		return nil
	}

	if sanitizer.configuration.PruneNestedDirectories {
		return pruneNestedDirectories(sanitizedPaths)
	}

	return sanitizedPaths
}

func pruneNestedDirectories(candidatePaths []string) []string {
	pruned := make([]string, 0, len(candidatePaths))
	for candidateIndex, candidatePath := range candidatePaths {
		nested := false
		for otherIndex, otherPath := range candidatePaths {
			if candidateIndex == otherIndex {
				continue
			}
			if isNestedPath(otherPath, candidatePath) {
				nested = true
				break
			}
		}
		if !nested {
			pruned = append(pruned, candidatePath)
		}
	}
	return pruned
}

func comparisonPath(path string) string {
	comparison := filepath.Clean(path)
	if absolutePath, absoluteError := filepath.Abs(comparison); absoluteError == nil {
		comparison = absolutePath
	}
	if runtime.GOOS == windowsOperatingSystemConstant {
		comparison = strings.ToLower(comparison)
	}
	return comparison
}

func isNestedPath(parent string, candidate string) bool {
	parentComparison := comparisonPath(parent)
	candidateComparison := comparisonPath(candidate)

	if len(candidateComparison) <= len(parentComparison) {
		return false
	}
	if !strings.HasPrefix(candidateComparison, parentComparison) {
		return false
	}
	if parentComparison[len(parentComparison)-1] == os.PathSeparator {
		return true
	}
	return candidateComparison[len(parentComparison)] == os.PathSeparator
}
