package wireframe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	readDocumentErrorTemplateConstant   = "unable to read document %s: %w"
	decodeDocumentErrorTemplateConstant = "unable to decode document: %w"
	scanDocumentErrorTemplateConstant   = "unable to scan document: %w"
	yamlExtensionConstant               = ".yaml"
	ymlExtensionConstant                = ".yml"
	carriageReturnConstant              = "\r"
	maximumDocumentLineBytesConstant    = 1024 * 1024
)

// DocumentFormat identifies how a document file is encoded.
type DocumentFormat string

// Supported document formats.
const (
	// DocumentFormatText stores one line per text line.
	DocumentFormatText DocumentFormat = "text"
	// DocumentFormatYAML stores an optional width and a list of lines.
	DocumentFormatYAML DocumentFormat = "yaml"
)

// DocumentSource is a loaded document together with the width it requests, if any.
type DocumentSource struct {
	Width Width    `yaml:"width"`
	Lines Document `yaml:"lines"`
}

// DetectDocumentFormat picks the format from the file extension; anything but .yaml/.yml is text.
func DetectDocumentFormat(path string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case yamlExtensionConstant, ymlExtensionConstant:
		return DocumentFormatYAML
	default:
		return DocumentFormatText
	}
}

// LoadDocumentFile reads and decodes the document stored at path.
func LoadDocumentFile(path string) (DocumentSource, error) {
	file, openError := os.Open(path)
	if openError != nil {
		return DocumentSource{}, fmt.Errorf(readDocumentErrorTemplateConstant, path, openError)
	}
	defer file.Close()

	source, readError := ReadDocument(file, DetectDocumentFormat(path))
	if readError != nil {
		return DocumentSource{}, fmt.Errorf(readDocumentErrorTemplateConstant, path, readError)
	}
	return source, nil
}

// ReadDocument decodes a document from reader.
//
// Text input yields one line per input line; a final newline does not add an
// empty line and carriage returns before newlines are dropped. YAML input must
// carry a lines list and may carry a width.
func ReadDocument(reader io.Reader, format DocumentFormat) (DocumentSource, error) {
	switch format {
	case DocumentFormatYAML:
		return readYAMLDocument(reader)
	case DocumentFormatText, "":
		return readTextDocument(reader)
	default:
		return DocumentSource{}, newConfigurationError(documentFormatFieldNameConstant, string(format), ErrUnsupportedDocumentFormat)
	}
}

func readTextDocument(reader io.Reader) (DocumentSource, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maximumDocumentLineBytesConstant)

	lines := Document{}
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), carriageReturnConstant))
	}
	if scanError := scanner.Err(); scanError != nil {
		return DocumentSource{}, fmt.Errorf(scanDocumentErrorTemplateConstant, scanError)
	}

	return DocumentSource{Lines: lines}, nil
}

func readYAMLDocument(reader io.Reader) (DocumentSource, error) {
	var source DocumentSource
	decodeError := yaml.NewDecoder(reader).Decode(&source)
	if decodeError != nil && !errors.Is(decodeError, io.EOF) {
		return DocumentSource{}, fmt.Errorf(decodeDocumentErrorTemplateConstant, decodeError)
	}
	if source.Lines == nil {
		return DocumentSource{}, newConfigurationError(documentFieldNameConstant, "", ErrMissingDocument)
	}
	if source.Width < 0 {
		return DocumentSource{}, newConfigurationError(widthFieldNameConstant, fmt.Sprint(int(source.Width)), ErrInvalidWidth)
	}
	return source, nil
}
