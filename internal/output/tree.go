package output

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"

	"github.com/frogermcs/codebase-digest/internal/analyzer"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	ignoredMarker = " [IGNORED]"
)

// TreeOptions controls tree-string rendering.
type TreeOptions struct {
	// ShowSize appends a human-readable size to file lines.
	ShowSize bool
	// ShowIgnored renders ignored entries with an [IGNORED] marker instead of hiding them.
	ShowIgnored bool
}

// GenerateTreeString renders the directory tree rooted at node.
func GenerateTreeString(node analyzer.Node, options TreeOptions) string {
	var builder strings.Builder
	writeTreeNode(&builder, node, "", true, options)
	return builder.String()
}

// writeTreeNode renders node and recurses into visible children.
func writeTreeNode(builder *strings.Builder, node analyzer.Node, prefix string, isLast bool, options TreeOptions) {
	if node.Ignored() && !options.ShowIgnored {
		return
	}

	connector := treeBranchConnector
	if isLast {
		connector = treeLastConnector
	}
	builder.WriteString(prefix + connector + node.Name())

	if fileNode, isFile := node.(*analyzer.FileNode); isFile && options.ShowSize {
		builder.WriteString(fmt.Sprintf(" (%s)", units.HumanSize(float64(fileNode.Size()))))
	}
	if node.Ignored() {
		builder.WriteString(ignoredMarker)
	}
	builder.WriteString("\n")

	directoryNode, isDirectory := node.(*analyzer.DirectoryNode)
	if !isDirectory {
		return
	}
	childPrefix := prefix + treeBranchPadding
	if isLast {
		childPrefix = prefix + treeLastPadding
	}
	visibleChildren := visibleTreeChildren(directoryNode, options.ShowIgnored)
	for childIndex, child := range visibleChildren {
		writeTreeNode(builder, child, childPrefix, childIndex == len(visibleChildren)-1, options)
	}
}

// visibleTreeChildren filters out ignored children when they are hidden so
// connector placement stays correct for the last visible entry.
func visibleTreeChildren(directoryNode *analyzer.DirectoryNode, showIgnored bool) []analyzer.Node {
	if showIgnored {
		return directoryNode.Children()
	}
	var visible []analyzer.Node
	for _, child := range directoryNode.Children() {
		if !child.Ignored() {
			visible = append(visible, child)
		}
	}
	return visible
}
