package ignore

import (
	"path/filepath"
	"strings"

	"github.com/frogermcs/codebase-digest/internal/utils"
)

const anchorPrefix = "/"

// ShouldIgnore reports whether the entry at path is excluded by the pattern
// set, evaluated relative to basePath. A path is ignored when any pattern
// matches any of the candidate forms: the basename, the path relative to
// basePath, the absolute path, the base-anchored form for patterns with a
// leading slash, or any individual segment of the relative path. Anchored
// patterns are strictly path-anchored and skip the generic basename,
// relative, and absolute checks; segment matching still applies to them with
// the leading slash removed.
func ShouldIgnore(path string, basePath string, patternSet *PatternSet) bool {
	if patternSet == nil || patternSet.Len() == 0 {
		return false
	}

	absolutePath, absolutePathError := filepath.Abs(path)
	if absolutePathError != nil {
		absolutePath = filepath.Clean(path)
	}
	absolutePath = filepath.ToSlash(filepath.Clean(absolutePath))

	absoluteBasePath, absoluteBaseError := filepath.Abs(basePath)
	if absoluteBaseError != nil {
		absoluteBasePath = filepath.Clean(basePath)
	}
	absoluteBasePath = filepath.ToSlash(filepath.Clean(absoluteBasePath))

	relativePath := utils.RelativePathOrSelf(absolutePath, absoluteBasePath)
	baseName := filepath.Base(absolutePath)
	pathSegments := utils.SplitPathSegments(relativePath)

	for _, patternValue := range patternSet.patterns {
		if patternMatches(patternSet, patternValue, baseName, relativePath, absolutePath, absoluteBasePath, pathSegments) {
			return true
		}
	}
	return false
}

// patternMatches evaluates a single pattern against every applicable
// candidate form, short-circuiting on the first match.
func patternMatches(patternSet *PatternSet, patternValue string, baseName string, relativePath string, absolutePath string, absoluteBasePath string, pathSegments []string) bool {
	if strings.HasPrefix(patternValue, anchorPrefix) {
		if matchesAnchoredPath(patternSet, patternValue, absolutePath, absoluteBasePath) {
			return true
		}
		return matchesAnySegment(patternSet, strings.TrimPrefix(patternValue, anchorPrefix), pathSegments)
	}
	if matchesBaseName(patternSet, patternValue, baseName) {
		return true
	}
	if matchesRelativePath(patternSet, patternValue, relativePath) {
		return true
	}
	if matchesAbsolutePath(patternSet, patternValue, absolutePath) {
		return true
	}
	return matchesAnySegment(patternSet, patternValue, pathSegments)
}

// matchesBaseName checks the pattern against the final path segment.
func matchesBaseName(patternSet *PatternSet, patternValue string, baseName string) bool {
	return patternSet.matchGlob(patternValue, baseName)
}

// matchesRelativePath checks the pattern against the path relative to the scan root.
func matchesRelativePath(patternSet *PatternSet, patternValue string, relativePath string) bool {
	return patternSet.matchGlob(patternValue, relativePath)
}

// matchesAbsolutePath checks the pattern against the absolute normalized path.
func matchesAbsolutePath(patternSet *PatternSet, patternValue string, absolutePath string) bool {
	return patternSet.matchGlob(patternValue, absolutePath)
}

// matchesAnchoredPath checks an anchored pattern by joining the scan root
// with the pattern minus its leading slash and comparing the result against
// the absolute path.
func matchesAnchoredPath(patternSet *PatternSet, patternValue string, absolutePath string, absoluteBasePath string) bool {
	anchoredGlob := strings.TrimSuffix(absoluteBasePath, "/") + "/" + strings.TrimPrefix(patternValue, anchorPrefix)
	return patternSet.matchGlob(anchoredGlob, absolutePath)
}

// matchesAnySegment checks the pattern against each individual segment of the
// relative path, so a bare directory name matches at any depth.
func matchesAnySegment(patternSet *PatternSet, patternValue string, pathSegments []string) bool {
	for _, pathSegment := range pathSegments {
		if patternSet.matchGlob(patternValue, pathSegment) {
			return true
		}
	}
	return false
}
