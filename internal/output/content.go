package output

import (
	"path"

	"github.com/frogermcs/codebase-digest/internal/analyzer"
	"github.com/frogermcs/codebase-digest/internal/utils"
)

// FileContent is one entry of the file-contents section.
type FileContent struct {
	Path    string
	Content string
}

// CollectFileContents gathers the content of every non-ignored text file in
// the tree, in traversal order. Paths are slash-joined and include the root
// directory name.
func CollectFileContents(node analyzer.Node) []FileContent {
	var contents []FileContent
	collectFileContents(node, "", &contents)
	return contents
}

func collectFileContents(node analyzer.Node, parentPath string, contents *[]FileContent) {
	switch typedNode := node.(type) {
	case *analyzer.FileNode:
		if typedNode.Ignored() || !typedNode.IsText() || typedNode.Content() == utils.NonTextFilePlaceholder {
			return
		}
		*contents = append(*contents, FileContent{
			Path:    path.Join(parentPath, typedNode.Name()),
			Content: typedNode.Content(),
		})
	case *analyzer.DirectoryNode:
		childParentPath := path.Join(parentPath, typedNode.Name())
		for _, child := range typedNode.Children() {
			collectFileContents(child, childParentPath, contents)
		}
	}
}
