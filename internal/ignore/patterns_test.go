package ignore

import (
	"reflect"
	"testing"
)

func TestPatternSetAddSkipsDuplicatesAndEmpty(t *testing.T) {
	patternSet := NewPatternSet("*.log", "", "*.log", "build")
	expected := []string{"*.log", "build"}
	if actual := patternSet.Patterns(); !reflect.DeepEqual(actual, expected) {
		t.Errorf("Patterns() = %v, expected %v", actual, expected)
	}
	if patternSet.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", patternSet.Len())
	}
}

func TestPatternSetContains(t *testing.T) {
	patternSet := NewPatternSet("*.log")
	if !patternSet.Contains("*.log") {
		t.Error("expected Contains to report an existing pattern")
	}
	if patternSet.Contains("*.txt") {
		t.Error("did not expect Contains to report a missing pattern")
	}
}

func TestPatternSetPatternsReturnsCopy(t *testing.T) {
	patternSet := NewPatternSet("*.log")
	patterns := patternSet.Patterns()
	patterns[0] = "mutated"
	if !patternSet.Contains("*.log") {
		t.Error("mutating the returned slice must not affect the set")
	}
}

func TestDefaultPatternsCoverCommonEntries(t *testing.T) {
	patternSet := NewPatternSet(DefaultPatterns...)
	expectedEntries := []string{".git", "node_modules", "__pycache__", "*.pyc", ".DS_Store"}
	for _, expectedEntry := range expectedEntries {
		if !patternSet.Contains(expectedEntry) {
			t.Errorf("default patterns missing %q", expectedEntry)
		}
	}
}
