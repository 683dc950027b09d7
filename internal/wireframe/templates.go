package wireframe

import (
	"sort"
	"strings"
)

const (
	// PageTemplateName names the sample page layout with header, cards, table, and footer.
	PageTemplateName = "page"
	// BlankTemplateName names the minimal starter document meant to be copied and edited.
	BlankTemplateName = "blank"
	// DefaultWidth is the content width used by the built-in templates.
	DefaultWidth Width = 58
)

var builtInTemplates = map[string]Document{
	PageTemplateName: {
		"  [Header]                                  [User Menu]",
		"",
		"  Page Title",
		"  ==========",
		"",
		"  +---------------------+  +---------------------+",
		"  | Card 1              |  | Card 2              |",
		"  |                     |  |                     |",
		"  | Content here        |  | More content        |",
		"  +---------------------+  +---------------------+",
		"",
		"  Main content section",
		"  -------------------------------------------------",
		"",
		"  +------------------------------------------------+",
		"  | Item 1 | Description            | [Button]    |",
		"  | Item 2 | Another description    | [Button]    |",
		"  +------------------------------------------------+",
		"",
		"  [Footer info]                            [Actions]",
	},
	BlankTemplateName: {
		"  Your content here",
		"",
		"  Section 2",
		"",
	},
}

// Template returns a copy of the named built-in document.
func Template(name string) (Document, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(name))
	document, exists := builtInTemplates[normalizedName]
	if !exists {
		return nil, newConfigurationError(templateFieldNameConstant, name, ErrUnknownTemplate)
	}
	duplicated := make(Document, len(document))
	copy(duplicated, document)
	return duplicated, nil
}

// TemplateNames lists the built-in template names in sorted order.
func TemplateNames() []string {
	names := make([]string, 0, len(builtInTemplates))
	for name := range builtInTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
