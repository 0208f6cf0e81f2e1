package analyzer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/frogermcs/codebase-digest/internal/ignore"
	"github.com/frogermcs/codebase-digest/internal/tokenizer"
	"github.com/frogermcs/codebase-digest/internal/utils"
)

const (
	// warningListDirectoryFormat reports a directory whose listing failed recoverably.
	warningListDirectoryFormat = "unable to list %s: %v"
	// warningReadFileFormat reports a file whose content could not be read.
	warningReadFileFormat = "unable to read %s: %v"
	// warningStatFileFormat reports a file whose metadata could not be retrieved.
	warningStatFileFormat = "unable to stat %s: %v"
	// warningTokenCountFormat reports a file whose token count failed.
	warningTokenCountFormat = "failed to count tokens for %s: %v"

	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorAnalyzeDirectoryFormat reports a fatal traversal failure.
	errorAnalyzeDirectoryFormat = "analyzing %s: %w"

	// readErrorPlaceholderFormat substitutes the content of unreadable text files.
	readErrorPlaceholderFormat = "[Error reading file: %v]"
)

// Options controls a single analysis run.
type Options struct {
	// MaxDepth limits recursion; nil means unlimited. Directories beyond the
	// limit are omitted from their parent entirely.
	MaxDepth *int
	// IncludeGit makes the .git directory visible to the walk. When false the
	// directory produces no node at all, distinct from being ignored.
	IncludeGit bool
	// TokenCounter, when set, captures token counts for text files at scan time.
	TokenCounter tokenizer.Counter
}

// Analyzer performs a single-threaded depth-first walk over a directory,
// classifying files and annotating ignored entries without pruning them.
type Analyzer struct {
	patternSet *ignore.PatternSet
	basePath   string
	options    Options
	warnings   []string
}

// Analyze walks rootPath and returns the annotated tree together with any
// recoverable warnings collected along the way. Ignore decisions are
// evaluated relative to basePath. Unreadable directories and files degrade to
// warnings; any other I/O failure aborts the walk.
func Analyze(rootPath string, patternSet *ignore.PatternSet, basePath string, options Options) (*DirectoryNode, []string, error) {
	absoluteRootPath, rootPathError := filepath.Abs(rootPath)
	if rootPathError != nil {
		return nil, nil, fmt.Errorf(errorAbsolutePathFormat, rootPath, rootPathError)
	}
	absoluteBasePath, basePathError := filepath.Abs(basePath)
	if basePathError != nil {
		return nil, nil, fmt.Errorf(errorAbsolutePathFormat, basePath, basePathError)
	}

	treeAnalyzer := &Analyzer{
		patternSet: patternSet,
		basePath:   absoluteBasePath,
		options:    options,
	}

	rootNode, analyzeError := treeAnalyzer.analyzeDirectory(absoluteRootPath, 0)
	if analyzeError != nil {
		return nil, nil, fmt.Errorf(errorAnalyzeDirectoryFormat, rootPath, analyzeError)
	}
	return rootNode, treeAnalyzer.warnings, nil
}

// analyzeDirectory builds the node for directoryPath. It returns nil without
// error when the depth limit suppresses the branch.
func (treeAnalyzer *Analyzer) analyzeDirectory(directoryPath string, depth int) (*DirectoryNode, error) {
	if treeAnalyzer.options.MaxDepth != nil && depth > *treeAnalyzer.options.MaxDepth {
		return nil, nil
	}

	directoryNode := NewDirectoryNode(filepath.Base(directoryPath), false)

	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		if errors.Is(readDirectoryError, fs.ErrPermission) {
			treeAnalyzer.warnf(warningListDirectoryFormat, directoryPath, readDirectoryError)
			return directoryNode, nil
		}
		return nil, readDirectoryError
	}

	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(directoryPath, directoryEntry.Name())

		if directoryEntry.IsDir() && directoryEntry.Name() == utils.GitDirectoryName && !treeAnalyzer.options.IncludeGit {
			continue
		}

		isIgnored := ignore.ShouldIgnore(childPath, treeAnalyzer.basePath, treeAnalyzer.patternSet)

		if directoryEntry.IsDir() {
			childNode, childError := treeAnalyzer.analyzeDirectory(childPath, depth+1)
			if childError != nil {
				return nil, childError
			}
			if childNode == nil {
				continue
			}
			childNode.SetIgnored(isIgnored)
			directoryNode.AppendChild(childNode)
			continue
		}

		directoryNode.AppendChild(treeAnalyzer.analyzeFile(childPath, directoryEntry, isIgnored))
	}

	return directoryNode, nil
}

// analyzeFile classifies and reads a single file. Classification runs before
// the ignore state is consulted so ignored files still carry size and type.
func (treeAnalyzer *Analyzer) analyzeFile(filePath string, directoryEntry fs.DirEntry, isIgnored bool) *FileNode {
	var fileSize int64
	entryInfo, infoError := directoryEntry.Info()
	if infoError != nil {
		treeAnalyzer.warnf(warningStatFileFormat, filePath, infoError)
	} else {
		fileSize = entryInfo.Size()
	}

	isText := utils.IsFileText(filePath)
	if !isText {
		return NewFileNode(directoryEntry.Name(), isIgnored, fileSize, utils.NonTextFilePlaceholder, false, utils.DetectMimeType(filePath), 0)
	}

	fileBytes, readError := os.ReadFile(filePath)
	if readError != nil {
		treeAnalyzer.warnf(warningReadFileFormat, filePath, readError)
		return NewFileNode(directoryEntry.Name(), isIgnored, fileSize, fmt.Sprintf(readErrorPlaceholderFormat, readError), true, "", 0)
	}

	fileContent := utils.DecodeLenient(fileBytes)
	tokenCount := 0
	if treeAnalyzer.options.TokenCounter != nil {
		countResult, countError := tokenizer.CountText(treeAnalyzer.options.TokenCounter, fileContent)
		if countError != nil {
			treeAnalyzer.warnf(warningTokenCountFormat, filePath, countError)
		} else if countResult.Counted {
			tokenCount = countResult.Tokens
		}
	}

	return NewFileNode(directoryEntry.Name(), isIgnored, fileSize, fileContent, true, "", tokenCount)
}

func (treeAnalyzer *Analyzer) warnf(format string, arguments ...any) {
	treeAnalyzer.warnings = append(treeAnalyzer.warnings, fmt.Sprintf(format, arguments...))
}
