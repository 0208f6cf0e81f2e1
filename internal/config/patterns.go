// Package config loads ignore-pattern sources and application configuration.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/frogermcs/codebase-digest/internal/ignore"
	"github.com/frogermcs/codebase-digest/internal/utils"
)

// PatternOptions controls which ignore-pattern sources are merged.
type PatternOptions struct {
	UseDefaultPatterns bool
	UseIgnoreFile      bool
	UseGitignore       bool
	ExtraPatterns      []string
}

// LoadFilePatterns reads the ignore file at ignoreFilePath and returns its
// patterns. Blank lines and lines starting with # are skipped. A missing file
// is treated as empty; any other I/O failure is returned.
//
// #nosec G304
func LoadFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var patterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
			continue
		}
		patterns = append(patterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return patterns, nil
}

// LoadPatternSet merges the enabled pattern sources for baseDirectory into a
// single deduplicated set: the default pattern table, the .cdigestignore
// file, the .gitignore file, and the caller's extra patterns. Extra patterns
// are always included regardless of the other flags. Merging is a set union;
// source order does not affect matching behavior.
func LoadPatternSet(baseDirectory string, options PatternOptions) (*ignore.PatternSet, error) {
	patternSet := ignore.NewPatternSet()

	if options.UseDefaultPatterns {
		patternSet.AddAll(ignore.DefaultPatterns)
	}

	if options.UseIgnoreFile {
		ignoreFilePath := filepath.Join(baseDirectory, utils.IgnoreFileName)
		ignoreFilePatterns, loadError := LoadFilePatterns(ignoreFilePath)
		if loadError != nil {
			return nil, fmt.Errorf("loading %s from %s: %w", utils.IgnoreFileName, baseDirectory, loadError)
		}
		patternSet.AddAll(ignoreFilePatterns)
	}

	if options.UseGitignore {
		gitIgnoreFilePath := filepath.Join(baseDirectory, utils.GitIgnoreFileName)
		gitIgnoreFilePatterns, loadError := LoadFilePatterns(gitIgnoreFilePath)
		if loadError != nil {
			return nil, fmt.Errorf("loading %s from %s: %w", utils.GitIgnoreFileName, baseDirectory, loadError)
		}
		patternSet.AddAll(gitIgnoreFilePatterns)
	}

	for _, patternValue := range options.ExtraPatterns {
		patternSet.Add(strings.TrimSpace(patternValue))
	}

	return patternSet, nil
}
