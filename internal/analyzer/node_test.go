package analyzer

import (
	"testing"
)

func buildSampleTree() *DirectoryNode {
	rootNode := NewDirectoryNode("root", false)
	rootNode.AppendChild(NewFileNode("a.txt", false, 5, "hello", true, "", 2))
	rootNode.AppendChild(NewFileNode("b.bin", false, 10, "[Non-text file]", false, "application/octet-stream", 0))

	subDirectory := NewDirectoryNode("sub", false)
	subDirectory.AppendChild(NewFileNode("c.txt", true, 7, "ignored", true, "", 3))
	subDirectory.AppendChild(NewFileNode("d.txt", false, 4, "text", true, "", 1))
	rootNode.AppendChild(subDirectory)

	ignoredDirectory := NewDirectoryNode("vendor", true)
	ignoredDirectory.AppendChild(NewFileNode("e.txt", false, 6, "vendor", true, "", 2))
	rootNode.AppendChild(ignoredDirectory)

	return rootNode
}

func TestDirectoryNodeRollups(t *testing.T) {
	rootNode := buildSampleTree()

	if fileCount := rootNode.FileCount(); fileCount != 5 {
		t.Errorf("FileCount = %d, expected 5", fileCount)
	}
	if dirCount := rootNode.DirCount(); dirCount != 2 {
		t.Errorf("DirCount = %d, expected 2", dirCount)
	}
	if totalSize := rootNode.TotalSize(); totalSize != 5+10+7+4+6 {
		t.Errorf("TotalSize = %d, expected 32", totalSize)
	}
	// a.txt(5) + d.txt(4); c.txt is ignored, b.bin is binary, vendor subtree
	// is excluded by the ignored directory.
	if textSize := rootNode.NonIgnoredTextSize(); textSize != 9 {
		t.Errorf("NonIgnoredTextSize = %d, expected 9", textSize)
	}
	// Tokens are counted for every text file regardless of ignore state.
	if totalTokens := rootNode.TotalTokens(); totalTokens != 2+3+1+2 {
		t.Errorf("TotalTokens = %d, expected 8", totalTokens)
	}
}

func TestFileNodeNonIgnoredTextSize(t *testing.T) {
	testCases := []struct {
		name     string
		fileNode *FileNode
		expected int64
	}{
		{name: "plain_text", fileNode: NewFileNode("a.txt", false, 100, "hello", true, "", 0), expected: 5},
		{name: "ignored_text", fileNode: NewFileNode("a.txt", true, 100, "hello", true, "", 0), expected: 0},
		{name: "binary", fileNode: NewFileNode("a.bin", false, 100, "[Non-text file]", false, "application/octet-stream", 0), expected: 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if actual := testCase.fileNode.NonIgnoredTextSize(); actual != testCase.expected {
				t.Errorf("NonIgnoredTextSize = %d, expected %d", actual, testCase.expected)
			}
		})
	}
}

func TestDirectoryNodeRollupConsistency(t *testing.T) {
	rootNode := buildSampleTree()

	childFileTotal := 0
	var childSizeTotal int64
	for _, child := range rootNode.Children() {
		childFileTotal += child.FileCount()
		childSizeTotal += child.TotalSize()
	}
	if rootNode.FileCount() != childFileTotal {
		t.Errorf("FileCount %d differs from the child sum %d", rootNode.FileCount(), childFileTotal)
	}
	if rootNode.TotalSize() != childSizeTotal {
		t.Errorf("TotalSize %d differs from the child sum %d", rootNode.TotalSize(), childSizeTotal)
	}
}
