package cli

import (
	"bytes"
	_ "embed"
)

// textkitDefaults holds the tools.wireframe and tools.imports_fix defaults shipped inside the binary.
//
//go:embed default_config.yaml
var textkitDefaults []byte

// EmbeddedDefaultConfiguration returns a copy of the shipped defaults along with their configuration type.
// The loader merges them before any configuration file, environment variable, or flag.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return bytes.Clone(textkitDefaults), configurationTypeConstant
}
