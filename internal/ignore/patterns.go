// Package ignore implements the ignore-pattern set and the path matcher that
// decides which entries a digest excludes.
package ignore

import (
	"github.com/gobwas/glob"
)

// PatternSet is a deduplicated collection of shell-glob ignore patterns.
// Once merged, patterns are origin-agnostic: defaults, ignore-file entries,
// and explicit user patterns are indistinguishable. Compiled globs are cached
// per glob text so repeated matching does not recompile.
type PatternSet struct {
	patterns []string
	compiled map[string]glob.Glob
	invalid  map[string]struct{}
}

// NewPatternSet constructs a PatternSet containing the provided patterns.
func NewPatternSet(patterns ...string) *PatternSet {
	patternSet := &PatternSet{
		compiled: make(map[string]glob.Glob),
		invalid:  make(map[string]struct{}),
	}
	patternSet.AddAll(patterns)
	return patternSet
}

// Add inserts a single pattern, skipping duplicates and empty values.
func (patternSet *PatternSet) Add(patternValue string) {
	if patternValue == "" || patternSet.Contains(patternValue) {
		return
	}
	patternSet.patterns = append(patternSet.patterns, patternValue)
}

// AddAll inserts every provided pattern, skipping duplicates and empty values.
func (patternSet *PatternSet) AddAll(patterns []string) {
	for _, patternValue := range patterns {
		patternSet.Add(patternValue)
	}
}

// Contains reports whether the set already holds the exact pattern string.
func (patternSet *PatternSet) Contains(patternValue string) bool {
	for _, existingPattern := range patternSet.patterns {
		if existingPattern == patternValue {
			return true
		}
	}
	return false
}

// Patterns returns a copy of the contained patterns in insertion order.
func (patternSet *PatternSet) Patterns() []string {
	return append([]string(nil), patternSet.patterns...)
}

// Len returns the number of contained patterns.
func (patternSet *PatternSet) Len() int {
	return len(patternSet.patterns)
}

// matchGlob evaluates globText against candidate using fnmatch-style
// semantics: * matches any run of characters including path separators and
// ? matches a single character. Malformed globs degrade to exact string
// comparison.
func (patternSet *PatternSet) matchGlob(globText string, candidate string) bool {
	if _, isInvalid := patternSet.invalid[globText]; isInvalid {
		return globText == candidate
	}
	compiledGlob, isCompiled := patternSet.compiled[globText]
	if !isCompiled {
		parsedGlob, compileError := glob.Compile(globText)
		if compileError != nil {
			patternSet.invalid[globText] = struct{}{}
			return globText == candidate
		}
		patternSet.compiled[globText] = parsedGlob
		compiledGlob = parsedGlob
	}
	return compiledGlob.Match(candidate)
}
