package output

import (
	"fmt"
	"strings"

	"github.com/frogermcs/codebase-digest/internal/analyzer"
)

// MarkdownFormatter renders the digest as a Markdown document.
type MarkdownFormatter struct {
	options Options
}

// Extension returns ".md".
func (formatter *MarkdownFormatter) Extension() string { return ".md" }

// Format renders the tree, summary, and file contents as Markdown sections.
func (formatter *MarkdownFormatter) Format(rootNode *analyzer.DirectoryNode) (string, error) {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("# Codebase Analysis for: %s\n\n", rootNode.Name()))
	builder.WriteString("## Directory Structure\n\n")
	builder.WriteString("```\n")
	builder.WriteString(GenerateTreeString(rootNode, TreeOptions{ShowSize: true, ShowIgnored: true}))
	builder.WriteString("```\n\n")
	builder.WriteString("## Summary\n\n")
	builder.WriteString(fmt.Sprintf("- Total files: %d\n", rootNode.FileCount()))
	builder.WriteString(fmt.Sprintf("- Total directories: %d\n", rootNode.DirCount()))
	builder.WriteString(fmt.Sprintf("- Total text file size (including ignored): %.2f KB\n", float64(rootNode.TotalSize())/kilobyte))
	builder.WriteString(fmt.Sprintf("- Total tokens: %d\n", rootNode.TotalTokens()))
	builder.WriteString(fmt.Sprintf("- Analyzed text content size: %.2f KB\n\n", float64(rootNode.NonIgnoredTextSize())/kilobyte))
	if formatter.options.IncludeContent {
		builder.WriteString("## File Contents\n\n")
		for _, fileContent := range CollectFileContents(rootNode) {
			builder.WriteString(fmt.Sprintf("### %s\n\n```\n%s\n```\n\n", fileContent.Path, fileContent.Content))
		}
	}
	return builder.String(), nil
}
