// Package output renders an analyzed digest tree in the supported formats.
package output

import (
	"fmt"

	"github.com/frogermcs/codebase-digest/internal/analyzer"
)

// Supported output format names.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatXML      = "xml"
	FormatHTML     = "html"
)

// Node type labels used by structured formats.
const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"
	NodeTypeBinary    = "binary"
)

const invalidFormatMessage = "unsupported output format '%s'"

// Options controls formatter behavior shared by every output format.
type Options struct {
	// IncludeContent controls whether the file-contents section is rendered.
	IncludeContent bool
}

// Formatter renders a digest document for one output format.
type Formatter interface {
	// Extension returns the output file extension including the leading dot.
	Extension() string
	// Format renders the digest for the analyzed root directory.
	Format(rootNode *analyzer.DirectoryNode) (string, error)
}

// NewFormatter returns the Formatter for formatName.
func NewFormatter(formatName string, options Options) (Formatter, error) {
	switch formatName {
	case FormatText:
		return &TextFormatter{options: options}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{options: options}, nil
	case FormatJSON:
		return &JSONFormatter{options: options}, nil
	case FormatXML:
		return &XMLFormatter{options: options}, nil
	case FormatHTML:
		return &HTMLFormatter{options: options}, nil
	default:
		return nil, fmt.Errorf(invalidFormatMessage, formatName)
	}
}

// SupportedFormats lists the recognized format names.
func SupportedFormats() []string {
	return []string{FormatText, FormatMarkdown, FormatJSON, FormatXML, FormatHTML}
}

// IsSupportedFormat reports whether the provided format is recognized.
func IsSupportedFormat(formatName string) bool {
	for _, supportedFormat := range SupportedFormats() {
		if formatName == supportedFormat {
			return true
		}
	}
	return false
}
