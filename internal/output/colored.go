package output

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"
	"github.com/fatih/color"

	"github.com/frogermcs/codebase-digest/internal/analyzer"
)

var (
	connectorColor = color.New(color.FgGreen)
	nameColor      = color.New(color.FgBlue)
	sizeColor      = color.New(color.FgYellow)
	ignoredColor   = color.New(color.FgRed)
	summaryColor   = color.New(color.FgCyan)
	frameColor     = color.New(color.FgCyan)
)

// ColoredTreeString renders the directory tree with console colors.
func ColoredTreeString(node analyzer.Node, options TreeOptions) string {
	var builder strings.Builder
	writeColoredTreeNode(&builder, node, "", true, options)
	return builder.String()
}

func writeColoredTreeNode(builder *strings.Builder, node analyzer.Node, prefix string, isLast bool, options TreeOptions) {
	if node.Ignored() && !options.ShowIgnored {
		return
	}

	connector := treeBranchConnector
	if isLast {
		connector = treeLastConnector
	}
	builder.WriteString(prefix)
	builder.WriteString(connectorColor.Sprint(connector))
	builder.WriteString(nameColor.Sprint(node.Name()))

	if fileNode, isFile := node.(*analyzer.FileNode); isFile && options.ShowSize {
		builder.WriteString(sizeColor.Sprintf(" (%s)", units.HumanSize(float64(fileNode.Size()))))
	}
	if node.Ignored() {
		builder.WriteString(ignoredColor.Sprint(ignoredMarker))
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
		writeColoredTreeNode(builder, child, childPrefix, childIndex == len(visibleChildren)-1, options)
	}
}

// ColoredSummaryString renders the summary block with console colors.
func ColoredSummaryString(rootNode *analyzer.DirectoryNode) string {
	return summaryColor.Sprint(GenerateSummaryString(rootNode))
}

// FramedBanner renders text inside a framed box for console display.
func FramedBanner(text string) string {
	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	width += 4

	var builder strings.Builder
	border := frameColor.Sprint("+" + strings.Repeat("-", width-2) + "+")
	builder.WriteString(border + "\n")
	for _, line := range lines {
		builder.WriteString(frameColor.Sprint("| "))
		builder.WriteString(fmt.Sprintf("%-*s", width-4, line))
		builder.WriteString(frameColor.Sprint(" |"))
		builder.WriteString("\n")
	}
	builder.WriteString(border)
	return builder.String()
}
