package output

import (
	"fmt"
	"strings"

	"github.com/frogermcs/codebase-digest/internal/analyzer"
)

const kilobyte = 1024.0

// GenerateSummaryString renders the aggregate statistics block for the tree.
func GenerateSummaryString(rootNode *analyzer.DirectoryNode) string {
	var builder strings.Builder
	builder.WriteString("\nSummary:\n")
	builder.WriteString(fmt.Sprintf("Total files analyzed: %d\n", rootNode.FileCount()))
	builder.WriteString(fmt.Sprintf("Total directories analyzed: %d\n", rootNode.DirCount()))
	builder.WriteString(fmt.Sprintf("Total text file size (including ignored): %.2f KB\n", float64(rootNode.TotalSize())/kilobyte))
	builder.WriteString(fmt.Sprintf("Analyzed text content size: %.2f KB\n", float64(rootNode.NonIgnoredTextSize())/kilobyte))
	builder.WriteString(fmt.Sprintf("Total tokens: %d\n", rootNode.TotalTokens()))
	return builder.String()
}
