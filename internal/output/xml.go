package output

import (
	"encoding/xml"
	"fmt"

	"github.com/frogermcs/codebase-digest/internal/analyzer"
)

// XMLFormatter renders the digest as an XML document.
type XMLFormatter struct {
	options Options
}

// Extension returns ".xml".
func (formatter *XMLFormatter) Extension() string { return ".xml" }

type xmlSummary struct {
	TotalFiles         int    `xml:"total-files"`
	TotalDirectories   int    `xml:"total-directories"`
	TotalSizeKB        string `xml:"total-text-file-size-kb"`
	TotalTokens        int    `xml:"total-tokens"`
	AnalyzedTextSizeKB string `xml:"analyzed-text-content-size-kb"`
}

type xmlFile struct {
	Path    string `xml:"path"`
	Content string `xml:"content"`
}

type xmlDocument struct {
	XMLName            xml.Name   `xml:"codebase-analysis"`
	Name               string     `xml:"name"`
	DirectoryStructure string     `xml:"directory-structure"`
	Summary            xmlSummary `xml:"summary"`
	Files              []xmlFile  `xml:"file-contents>file"`
}

// Format marshals the tree rendering, summary, and file contents as XML.
func (formatter *XMLFormatter) Format(rootNode *analyzer.DirectoryNode) (string, error) {
	document := xmlDocument{
		Name:               rootNode.Name(),
		DirectoryStructure: GenerateTreeString(rootNode, TreeOptions{ShowSize: true, ShowIgnored: true}),
		Summary: xmlSummary{
			TotalFiles:         rootNode.FileCount(),
			TotalDirectories:   rootNode.DirCount(),
			TotalSizeKB:        fmt.Sprintf("%.2f", float64(rootNode.TotalSize())/kilobyte),
			TotalTokens:        rootNode.TotalTokens(),
			AnalyzedTextSizeKB: fmt.Sprintf("%.2f", float64(rootNode.NonIgnoredTextSize())/kilobyte),
		},
	}
	if formatter.options.IncludeContent {
		for _, fileContent := range CollectFileContents(rootNode) {
			document.Files = append(document.Files, xmlFile{Path: fileContent.Path, Content: fileContent.Content})
		}
	}
	encoded, xmlMarshalError := xml.MarshalIndent(document, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", xmlMarshalError
	}
	return xml.Header + string(encoded), nil
}
