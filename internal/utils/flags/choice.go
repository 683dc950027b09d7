package flags

import (
	"fmt"
	"strings"
)

const (
	choicePlaceholderPrefix       = "<"
	choicePlaceholderSuffix       = ">"
	choiceSeparatorLiteral        = "|"
	choiceUsageEmptyTemplate      = "`%s`"
	choiceUsageFullTemplate       = "`%s` %s"
	unsupportedChoiceTemplate     = "unsupported %s %q (expected one of %s)"
	supportedChoicesJoinSeparator = ", "
)

// FormatChoiceUsage builds a usage string where the default option is capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := buildChoicePlaceholder(defaultChoice, choices)
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplate, placeholder, description)
}

// ParseChoice normalizes a user supplied value against the allowed choices.
// Empty values resolve to the default choice; matching is case-insensitive.
func ParseChoice(optionName string, value string, defaultChoice string, choices []string) (string, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(value))
	if len(normalizedValue) == 0 {
		return strings.ToLower(strings.TrimSpace(defaultChoice)), nil
	}

	normalizedChoices := uniqueNormalizedChoices(choices)
	for _, choice := range normalizedChoices {
		if choice == normalizedValue {
			return choice, nil
		}
	}

	return "", fmt.Errorf(unsupportedChoiceTemplate, optionName, value, strings.Join(normalizedChoices, supportedChoicesJoinSeparator))
}

func buildChoicePlaceholder(defaultChoice string, choices []string) string {
	highlightedChoices := highlightDefaultChoice(defaultChoice, choices)
	return choicePlaceholderPrefix + strings.Join(highlightedChoices, choiceSeparatorLiteral) + choicePlaceholderSuffix
}

func highlightDefaultChoice(defaultChoice string, choices []string) []string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	normalizedChoices := uniqueNormalizedChoices(choices)
	highlighted := make([]string, 0, len(normalizedChoices))

	for _, choice := range normalizedChoices {
		displayValue := choice
		if choice == normalizedDefault {
			displayValue = strings.ToUpper(choice)
		}
		highlighted = append(highlighted, displayValue)
	}

	return highlighted
}

func uniqueNormalizedChoices(choices []string) []string {
	normalized := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))

	for _, choice := range choices {
		normalizedChoice := strings.ToLower(strings.TrimSpace(choice))
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, exists := seen[normalizedChoice]; exists {
			continue
		}
		seen[normalizedChoice] = struct{}{}
		normalized = append(normalized, normalizedChoice)
	}

	return normalized
}
