package output

import (
	"encoding/json"

	"github.com/frogermcs/codebase-digest/internal/analyzer"
)

const (
	indentPrefix = ""
	indentSpacer = "  "
)

// DigestNode mirrors one analyzed tree node for structured encoding.
type DigestNode struct {
	Name      string        `json:"name"`
	Type      string        `json:"type"`
	IsIgnored bool          `json:"isIgnored"`
	Size      int64         `json:"size,omitempty"`
	MimeType  string        `json:"mimeType,omitempty"`
	Tokens    int           `json:"tokens,omitempty"`
	Content   string        `json:"content,omitempty"`
	Children  []*DigestNode `json:"children,omitempty"`
}

// DigestSummary mirrors the aggregate statistics for structured encoding.
type DigestSummary struct {
	TotalFiles         int   `json:"totalFiles"`
	TotalDirectories   int   `json:"totalDirectories"`
	TotalSizeBytes     int64 `json:"totalSizeBytes"`
	NonIgnoredTextSize int64 `json:"analyzedTextSizeBytes"`
	TotalTokens        int   `json:"totalTokens"`
}

// digestDocument is the root object of the JSON format.
type digestDocument struct {
	Name    string        `json:"name"`
	Tree    *DigestNode   `json:"tree"`
	Summary DigestSummary `json:"summary"`
}

// JSONFormatter renders the digest as an indented JSON document.
type JSONFormatter struct {
	options Options
}

// Extension returns ".json".
func (formatter *JSONFormatter) Extension() string { return ".json" }

// Format marshals the digest tree and summary as JSON.
func (formatter *JSONFormatter) Format(rootNode *analyzer.DirectoryNode) (string, error) {
	document := digestDocument{
		Name:    rootNode.Name(),
		Tree:    buildDigestNode(rootNode, formatter.options.IncludeContent),
		Summary: buildDigestSummary(rootNode),
	}
	encoded, jsonEncodeError := json.MarshalIndent(document, indentPrefix, indentSpacer)
	if jsonEncodeError != nil {
		return "", jsonEncodeError
	}
	return string(encoded), nil
}

// buildDigestNode converts an analyzed node into its encodable mirror.
func buildDigestNode(node analyzer.Node, includeContent bool) *DigestNode {
	switch typedNode := node.(type) {
	case *analyzer.FileNode:
		digestNode := &DigestNode{
			Name:      typedNode.Name(),
			Type:      NodeTypeFile,
			IsIgnored: typedNode.Ignored(),
			Size:      typedNode.Size(),
			Tokens:    typedNode.Tokens(),
		}
		if !typedNode.IsText() {
			digestNode.Type = NodeTypeBinary
			digestNode.MimeType = typedNode.MimeType()
		}
		if includeContent && typedNode.IsText() && !typedNode.Ignored() {
			digestNode.Content = typedNode.Content()
		}
		return digestNode
	case *analyzer.DirectoryNode:
		digestNode := &DigestNode{
			Name:      typedNode.Name(),
			Type:      NodeTypeDirectory,
			IsIgnored: typedNode.Ignored(),
		}
		for _, child := range typedNode.Children() {
			digestNode.Children = append(digestNode.Children, buildDigestNode(child, includeContent))
		}
		return digestNode
	default:
		return nil
	}
}

// buildDigestSummary captures the rollup statistics of the root node.
func buildDigestSummary(rootNode *analyzer.DirectoryNode) DigestSummary {
	return DigestSummary{
		TotalFiles:         rootNode.FileCount(),
		TotalDirectories:   rootNode.DirCount(),
		TotalSizeBytes:     rootNode.TotalSize(),
		NonIgnoredTextSize: rootNode.NonIgnoredTextSize(),
		TotalTokens:        rootNode.TotalTokens(),
	}
}
