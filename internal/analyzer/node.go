// Package analyzer builds and aggregates the digest tree for a directory.
package analyzer

// Node is the common interface of the two tree variants. The rollup queries
// are recursive folds computed on demand; repeated calls re-traverse the
// subtree.
type Node interface {
	// Name returns the path segment of the node, not its full path.
	Name() string
	// Ignored reports whether the ignore matcher excluded the node.
	Ignored() bool
	// FileCount returns the number of files in the subtree.
	FileCount() int
	// DirCount returns the number of directories in the subtree, excluding the node itself.
	DirCount() int
	// TotalSize returns the on-disk byte size of every file in the subtree, ignored or not.
	TotalSize() int64
	// NonIgnoredTextSize returns the decoded text content size of the subtree,
	// excluding everything at or below an ignored node.
	NonIgnoredTextSize() int64
	// TotalTokens returns the token count of every text file in the subtree.
	TotalTokens() int
}

// FileNode is the file variant of Node.
type FileNode struct {
	name     string
	ignored  bool
	size     int64
	content  string
	isText   bool
	mimeType string
	tokens   int
}

// NewFileNode constructs a file node with the values captured at scan time.
func NewFileNode(name string, ignored bool, size int64, content string, isText bool, mimeType string, tokens int) *FileNode {
	return &FileNode{
		name:     name,
		ignored:  ignored,
		size:     size,
		content:  content,
		isText:   isText,
		mimeType: mimeType,
		tokens:   tokens,
	}
}

// Name returns the file name.
func (fileNode *FileNode) Name() string { return fileNode.name }

// Ignored reports whether the matcher excluded the file.
func (fileNode *FileNode) Ignored() bool { return fileNode.ignored }

// Size returns the file's byte length on disk at scan time.
func (fileNode *FileNode) Size() int64 { return fileNode.size }

// Content returns the decoded text content, or the sentinel for non-text files.
func (fileNode *FileNode) Content() string { return fileNode.content }

// IsText reports whether the file was classified as text.
func (fileNode *FileNode) IsText() bool { return fileNode.isText }

// MimeType returns the sniffed MIME type for non-text files, empty otherwise.
func (fileNode *FileNode) MimeType() string { return fileNode.mimeType }

// Tokens returns the token count captured at scan time for text files.
func (fileNode *FileNode) Tokens() int { return fileNode.tokens }

// FileCount returns 1.
func (fileNode *FileNode) FileCount() int { return 1 }

// DirCount returns 0.
func (fileNode *FileNode) DirCount() int { return 0 }

// TotalSize returns the file size regardless of classification or ignore state.
func (fileNode *FileNode) TotalSize() int64 { return fileNode.size }

// NonIgnoredTextSize returns the content length for non-ignored text files and zero otherwise.
func (fileNode *FileNode) NonIgnoredTextSize() int64 {
	if fileNode.ignored || !fileNode.isText {
		return 0
	}
	return int64(len(fileNode.content))
}

// TotalTokens returns the token count for text files and zero otherwise.
func (fileNode *FileNode) TotalTokens() int {
	if !fileNode.isText {
		return 0
	}
	return fileNode.tokens
}

// DirectoryNode is the directory variant of Node. Children keep the
// directory-listing order observed at scan time.
type DirectoryNode struct {
	name     string
	ignored  bool
	children []Node
}

// NewDirectoryNode constructs an empty directory node.
func NewDirectoryNode(name string, ignored bool) *DirectoryNode {
	return &DirectoryNode{name: name, ignored: ignored}
}

// Name returns the directory name.
func (directoryNode *DirectoryNode) Name() string { return directoryNode.name }

// Ignored reports whether the matcher excluded the directory.
func (directoryNode *DirectoryNode) Ignored() bool { return directoryNode.ignored }

// SetIgnored stamps the ignore flag; the walker calls it once when the node
// is returned from recursion, before ownership transfers to the parent.
func (directoryNode *DirectoryNode) SetIgnored(ignored bool) { directoryNode.ignored = ignored }

// Children returns the child nodes in directory-listing order.
func (directoryNode *DirectoryNode) Children() []Node { return directoryNode.children }

// AppendChild adds a child node, preserving listing order.
func (directoryNode *DirectoryNode) AppendChild(child Node) {
	directoryNode.children = append(directoryNode.children, child)
}

// FileCount folds the file counts of all children.
func (directoryNode *DirectoryNode) FileCount() int {
	total := 0
	for _, child := range directoryNode.children {
		total += child.FileCount()
	}
	return total
}

// DirCount folds the directory counts of all children plus the child directories themselves.
func (directoryNode *DirectoryNode) DirCount() int {
	total := 0
	for _, child := range directoryNode.children {
		if _, isDirectory := child.(*DirectoryNode); isDirectory {
			total++
		}
		total += child.DirCount()
	}
	return total
}

// TotalSize folds the sizes of all children.
func (directoryNode *DirectoryNode) TotalSize() int64 {
	var total int64
	for _, child := range directoryNode.children {
		total += child.TotalSize()
	}
	return total
}

// NonIgnoredTextSize folds the non-ignored text sizes of all children.
// An ignored directory contributes nothing, regardless of its children.
func (directoryNode *DirectoryNode) NonIgnoredTextSize() int64 {
	if directoryNode.ignored {
		return 0
	}
	var total int64
	for _, child := range directoryNode.children {
		total += child.NonIgnoredTextSize()
	}
	return total
}

// TotalTokens folds the token counts of all children.
func (directoryNode *DirectoryNode) TotalTokens() int {
	total := 0
	for _, child := range directoryNode.children {
		total += child.TotalTokens()
	}
	return total
}
