package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/frogermcs/codebase-digest/internal/ignore"
	"github.com/frogermcs/codebase-digest/internal/utils"
)

func TestLoadFilePatterns(t *testing.T) {
	temporaryDirectory := t.TempDir()
	ignoreFilePath := filepath.Join(temporaryDirectory, utils.IgnoreFileName)
	fileContent := "foo\n# a comment\n\n  bar  \n\t\n*.log\n"
	if writeError := os.WriteFile(ignoreFilePath, []byte(fileContent), 0o644); writeError != nil {
		t.Fatalf("write ignore file: %v", writeError)
	}

	patterns, loadError := LoadFilePatterns(ignoreFilePath)
	if loadError != nil {
		t.Fatalf("LoadFilePatterns error: %v", loadError)
	}
	expected := []string{"foo", "bar", "*.log"}
	if !reflect.DeepEqual(patterns, expected) {
		t.Errorf("LoadFilePatterns = %v, expected %v", patterns, expected)
	}
}

func TestLoadFilePatternsMissingFile(t *testing.T) {
	patterns, loadError := LoadFilePatterns(filepath.Join(t.TempDir(), "missing"))
	if loadError != nil {
		t.Fatalf("missing file must not produce an error, got: %v", loadError)
	}
	if patterns != nil {
		t.Errorf("missing file must produce no patterns, got %v", patterns)
	}
}

func TestLoadPatternSetMergesEnabledSources(t *testing.T) {
	temporaryDirectory := t.TempDir()
	writeTestFile(t, filepath.Join(temporaryDirectory, utils.IgnoreFileName), "from_ignore_file\n*.log\n")
	writeTestFile(t, filepath.Join(temporaryDirectory, utils.GitIgnoreFileName), "from_gitignore\n*.log\n")

	patternSet, loadError := LoadPatternSet(temporaryDirectory, PatternOptions{
		UseDefaultPatterns: true,
		UseIgnoreFile:      true,
		UseGitignore:       true,
		ExtraPatterns:      []string{" extra_pattern ", "*.log"},
	})
	if loadError != nil {
		t.Fatalf("LoadPatternSet error: %v", loadError)
	}

	for _, expectedPattern := range []string{".git", "from_ignore_file", "from_gitignore", "extra_pattern", "*.log"} {
		if !patternSet.Contains(expectedPattern) {
			t.Errorf("pattern set missing %q", expectedPattern)
		}
	}

	logOccurrences := 0
	for _, patternValue := range patternSet.Patterns() {
		if patternValue == "*.log" {
			logOccurrences++
		}
	}
	if logOccurrences != 1 {
		t.Errorf("expected *.log to be merged once, found %d occurrences", logOccurrences)
	}
}

func TestLoadPatternSetRespectsDisabledSources(t *testing.T) {
	temporaryDirectory := t.TempDir()
	writeTestFile(t, filepath.Join(temporaryDirectory, utils.IgnoreFileName), "from_ignore_file\n")
	writeTestFile(t, filepath.Join(temporaryDirectory, utils.GitIgnoreFileName), "from_gitignore\n")

	patternSet, loadError := LoadPatternSet(temporaryDirectory, PatternOptions{
		ExtraPatterns: []string{"only_extra"},
	})
	if loadError != nil {
		t.Fatalf("LoadPatternSet error: %v", loadError)
	}

	if patternSet.Contains("from_ignore_file") || patternSet.Contains("from_gitignore") || patternSet.Contains(".git") {
		t.Errorf("disabled sources leaked into the pattern set: %v", patternSet.Patterns())
	}
	if !patternSet.Contains("only_extra") {
		t.Error("extra patterns must always be included")
	}
}

func TestLoadPatternSetUnionIsOrderIndependentForMatching(t *testing.T) {
	temporaryDirectory := t.TempDir()
	writeTestFile(t, filepath.Join(temporaryDirectory, utils.IgnoreFileName), "alpha\nbeta\n")

	patternSet, loadError := LoadPatternSet(temporaryDirectory, PatternOptions{
		UseIgnoreFile: true,
		ExtraPatterns: []string{"beta", "alpha"},
	})
	if loadError != nil {
		t.Fatalf("LoadPatternSet error: %v", loadError)
	}

	reordered := ignore.NewPatternSet("beta", "alpha")
	for _, candidate := range []string{filepath.Join(temporaryDirectory, "alpha"), filepath.Join(temporaryDirectory, "gamma")} {
		if ignore.ShouldIgnore(candidate, temporaryDirectory, patternSet) != ignore.ShouldIgnore(candidate, temporaryDirectory, reordered) {
			t.Errorf("matching outcome for %q depends on merge order", candidate)
		}
	}
}

func writeTestFile(t *testing.T, filePath string, fileContent string) {
	t.Helper()
	if writeError := os.WriteFile(filePath, []byte(fileContent), 0o644); writeError != nil {
		t.Fatalf("write %s: %v", filePath, writeError)
	}
}
