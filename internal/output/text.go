package output

import (
	"fmt"
	"strings"

	"github.com/frogermcs/codebase-digest/internal/analyzer"
)

const contentSeparatorLine = "=================================================="

// TextFormatter renders the digest as plain text.
type TextFormatter struct {
	options Options
}

// Extension returns ".txt".
func (formatter *TextFormatter) Extension() string { return ".txt" }

// Format renders the tree, summary, and file contents as plain text.
func (formatter *TextFormatter) Format(rootNode *analyzer.DirectoryNode) (string, error) {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Codebase Analysis for: %s\n", rootNode.Name()))
	builder.WriteString("\nDirectory Structure:\n")
	builder.WriteString(GenerateTreeString(rootNode, TreeOptions{ShowSize: true, ShowIgnored: true}))
	builder.WriteString(GenerateSummaryString(rootNode))
	if formatter.options.IncludeContent {
		builder.WriteString("\nFile Contents:\n")
		for _, fileContent := range CollectFileContents(rootNode) {
			builder.WriteString(fmt.Sprintf("\n%s\n", contentSeparatorLine))
			builder.WriteString(fmt.Sprintf("File: %s\n", fileContent.Path))
			builder.WriteString(fmt.Sprintf("%s\n", contentSeparatorLine))
			builder.WriteString(fileContent.Content)
			builder.WriteString("\n")
		}
	}
	return builder.String(), nil
}
