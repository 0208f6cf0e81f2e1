// Package commands contains the core logic for digest data collection.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/frogermcs/codebase-digest/internal/analyzer"
	"github.com/frogermcs/codebase-digest/internal/config"
	"github.com/frogermcs/codebase-digest/internal/tokenizer"
)

const (
	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"

	// structureBytesPerFile approximates the per-file structural overhead of rendered output.
	structureBytesPerFile = 100
	// summaryBytes approximates the size of the rendered summary block.
	summaryBytes = 1000
)

// DigestOptions configures a single digest run.
type DigestOptions struct {
	Path               string
	ExtraPatterns      []string
	UseDefaultPatterns bool
	UseIgnoreFile      bool
	UseGitignore       bool
	IncludeGit         bool
	MaxDepth           *int
	TokenCounter       tokenizer.Counter
}

// GetDigestData loads the merged pattern set for the target directory, walks
// it, and returns the annotated tree together with recoverable warnings.
func GetDigestData(options DigestOptions) (*analyzer.DirectoryNode, []string, error) {
	absolutePath, absolutePathError := filepath.Abs(options.Path)
	if absolutePathError != nil {
		return nil, nil, fmt.Errorf(errorAbsolutePathFormat, options.Path, absolutePathError)
	}

	patternSet, patternLoadError := config.LoadPatternSet(absolutePath, config.PatternOptions{
		UseDefaultPatterns: options.UseDefaultPatterns,
		UseIgnoreFile:      options.UseIgnoreFile,
		UseGitignore:       options.UseGitignore,
		ExtraPatterns:      options.ExtraPatterns,
	})
	if patternLoadError != nil {
		return nil, nil, patternLoadError
	}

	return analyzer.Analyze(absolutePath, patternSet, absolutePath, analyzer.Options{
		MaxDepth:     options.MaxDepth,
		IncludeGit:   options.IncludeGit,
		TokenCounter: options.TokenCounter,
	})
}

// EstimateOutputSize approximates the rendered digest size in bytes: the
// non-ignored text content plus structural overhead per file and a fixed
// allowance for the summary block.
func EstimateOutputSize(rootNode *analyzer.DirectoryNode) int64 {
	return rootNode.NonIgnoredTextSize() + int64(rootNode.FileCount())*structureBytesPerFile + summaryBytes
}
