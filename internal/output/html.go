package output

import (
	"fmt"
	"html"
	"strings"

	"github.com/frogermcs/codebase-digest/internal/analyzer"
)

// HTMLFormatter renders the digest as a standalone HTML page.
type HTMLFormatter struct {
	options Options
}

// Extension returns ".html".
func (formatter *HTMLFormatter) Extension() string { return ".html" }

// Format renders the tree, summary, and file contents as escaped HTML.
func (formatter *HTMLFormatter) Format(rootNode *analyzer.DirectoryNode) (string, error) {
	escapedName := html.EscapeString(rootNode.Name())

	var builder strings.Builder
	builder.WriteString("<html>\n<head>\n")
	builder.WriteString(fmt.Sprintf("<title>Codebase Analysis for: %s</title>\n", escapedName))
	builder.WriteString("<style>\npre { white-space: pre-wrap; word-wrap: break-word; }\n</style>\n")
	builder.WriteString("</head>\n<body>\n")
	builder.WriteString(fmt.Sprintf("<h1>Codebase Analysis for: %s</h1>\n", escapedName))
	builder.WriteString("<h2>Directory Structure</h2>\n")
	builder.WriteString(fmt.Sprintf("<pre>%s</pre>\n", html.EscapeString(GenerateTreeString(rootNode, TreeOptions{ShowSize: true, ShowIgnored: true}))))
	builder.WriteString("<h2>Summary</h2>\n<ul>\n")
	builder.WriteString(fmt.Sprintf("<li>Total files: %d</li>\n", rootNode.FileCount()))
	builder.WriteString(fmt.Sprintf("<li>Total directories: %d</li>\n", rootNode.DirCount()))
	builder.WriteString(fmt.Sprintf("<li>Total text file size (including ignored): %.2f KB</li>\n", float64(rootNode.TotalSize())/kilobyte))
	builder.WriteString(fmt.Sprintf("<li>Total tokens: %d</li>\n", rootNode.TotalTokens()))
	builder.WriteString(fmt.Sprintf("<li>Analyzed text content size: %.2f KB</li>\n", float64(rootNode.NonIgnoredTextSize())/kilobyte))
	builder.WriteString("</ul>\n")
	if formatter.options.IncludeContent {
		builder.WriteString("<h2>File Contents</h2>\n")
		for _, fileContent := range CollectFileContents(rootNode) {
			builder.WriteString(fmt.Sprintf("<h3>%s</h3><pre>%s</pre>\n", html.EscapeString(fileContent.Path), html.EscapeString(fileContent.Content)))
		}
	}
	builder.WriteString("</body></html>")
	return builder.String(), nil
}
