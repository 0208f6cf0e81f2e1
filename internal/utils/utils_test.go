package utils

import (
	"reflect"
	"testing"
)

func TestDeduplicatePatterns(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "no_duplicates", input: []string{"a", "b"}, expected: []string{"a", "b"}},
		{name: "keeps_first_occurrence", input: []string{"a", "b", "a", "c", "b"}, expected: []string{"a", "b", "c"}},
		{name: "empty", input: nil, expected: []string{}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := DeduplicatePatterns(testCase.input)
			if !reflect.DeepEqual(actual, testCase.expected) {
				t.Errorf("DeduplicatePatterns(%v) = %v, expected %v", testCase.input, actual, testCase.expected)
			}
		})
	}
}

func TestContainsString(t *testing.T) {
	values := []string{"alpha", "beta"}
	if !ContainsString(values, "beta") {
		t.Error("expected beta to be found")
	}
	if ContainsString(values, "gamma") {
		t.Error("did not expect gamma to be found")
	}
}

func TestRelativePathOrSelf(t *testing.T) {
	testCases := []struct {
		name     string
		fullPath string
		root     string
		expected string
	}{
		{name: "nested_path", fullPath: "/base/sub/file.txt", root: "/base", expected: "sub/file.txt"},
		{name: "same_directory", fullPath: "/base", root: "/base", expected: "."},
		{name: "direct_child", fullPath: "/base/file.txt", root: "/base", expected: "file.txt"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := RelativePathOrSelf(testCase.fullPath, testCase.root)
			if actual != testCase.expected {
				t.Errorf("RelativePathOrSelf(%q, %q) = %q, expected %q", testCase.fullPath, testCase.root, actual, testCase.expected)
			}
		})
	}
}

func TestSplitPathSegments(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "nested", input: "a/b/c.txt", expected: []string{"a", "b", "c.txt"}},
		{name: "leading_slash", input: "/a/b", expected: []string{"a", "b"}},
		{name: "single_segment", input: "file.txt", expected: []string{"file.txt"}},
		{name: "empty", input: "", expected: nil},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := SplitPathSegments(testCase.input)
			if !reflect.DeepEqual(actual, testCase.expected) {
				t.Errorf("SplitPathSegments(%q) = %v, expected %v", testCase.input, actual, testCase.expected)
			}
		})
	}
}
