package scan_test

import (
	"testing"

	"github.com/temirov/copcon/internal/scan"
)

// TestMatcherBuiltinDirectoryNames verifies built-in directory names are ignored at any depth.
func TestMatcherBuiltinDirectoryNames(testingHandle *testing.T) {
	matcher, matcherError := scan.NewMatcher(scan.MatcherOptions{
		IgnoredDirectoryNames: scan.DefaultIgnoredDirectoryNames(),
		IgnoredFileNames:      scan.DefaultIgnoredFileNames(),
	})
	if matcherError != nil {
		testingHandle.Fatalf("NewMatcher error: %v", matcherError)
	}

	testCases := []struct {
		relativePath string
		isDirectory  bool
		wantIgnored  bool
	}{
		{"node_modules", true, true},
		{"packages/client/node_modules", true, true},
		{"node_modules/react/index.js", false, true},
		{"src/main.go", false, false},
		{"yarn.lock", false, true},
		{"nested/deep/yarn.lock", false, true},
		{"node_modules.bak", true, false},
	}
	for _, testCase := range testCases {
		gotIgnored := matcher.IsIgnored(testCase.relativePath, testCase.isDirectory)
		if gotIgnored != testCase.wantIgnored {
			testingHandle.Fatalf("IsIgnored(%q, %v) = %v, want %v",
				testCase.relativePath, testCase.isDirectory, gotIgnored, testCase.wantIgnored)
		}
	}
}

// TestMatcherExtraNameGlobs verifies caller-supplied names accept glob syntax.
func TestMatcherExtraNameGlobs(testingHandle *testing.T) {
	matcher, matcherError := scan.NewMatcher(scan.MatcherOptions{
		ExtraDirectoryNames: []string{"tmp*"},
		ExtraFileNames:      []string{"*.log"},
	})
	if matcherError != nil {
		testingHandle.Fatalf("NewMatcher error: %v", matcherError)
	}
	if !matcher.IsIgnored("tmpcache", true) {
		testingHandle.Fatalf("expected tmpcache directory to be ignored")
	}
	if !matcher.IsIgnored("sub/run.log", false) {
		testingHandle.Fatalf("expected run.log to be ignored")
	}
	if matcher.IsIgnored("run.log", true) {
		testingHandle.Fatalf("file name rules must not apply to directories")
	}
}

// TestMatcherInvalidGlob verifies construction fails on malformed extra patterns.
func TestMatcherInvalidGlob(testingHandle *testing.T) {
	_, matcherError := scan.NewMatcher(scan.MatcherOptions{ExtraFileNames: []string{"[unterminated"}})
	if matcherError == nil {
		testingHandle.Fatalf("expected error for malformed glob pattern")
	}
}

// TestMatcherNegationPattern verifies a later negation pattern re-includes a path.
func TestMatcherNegationPattern(testingHandle *testing.T) {
	matcher, matcherError := scan.NewMatcher(scan.MatcherOptions{
		PatternLines: []string{"*.log", "!keep.log"},
	})
	if matcherError != nil {
		testingHandle.Fatalf("NewMatcher error: %v", matcherError)
	}
	if !matcher.IsIgnored("debug.log", false) {
		testingHandle.Fatalf("expected debug.log to be ignored")
	}
	if matcher.IsIgnored("keep.log", false) {
		testingHandle.Fatalf("expected keep.log to be re-included by negation")
	}
}

// TestMatcherDirectoryPatternCoversContents verifies directory patterns ignore descendants.
func TestMatcherDirectoryPatternCoversContents(testingHandle *testing.T) {
	matcher, matcherError := scan.NewMatcher(scan.MatcherOptions{
		PatternLines: []string{"generated/"},
	})
	if matcherError != nil {
		testingHandle.Fatalf("NewMatcher error: %v", matcherError)
	}
	if !matcher.IsIgnored("generated", true) {
		testingHandle.Fatalf("expected generated directory to be ignored")
	}
	if !matcher.IsIgnored("generated/api/client.go", false) {
		testingHandle.Fatalf("expected files under generated to be ignored")
	}
}

// TestMatcherEmptyRuleSet verifies a matcher without rules ignores nothing.
func TestMatcherEmptyRuleSet(testingHandle *testing.T) {
	matcher, matcherError := scan.NewMatcher(scan.MatcherOptions{})
	if matcherError != nil {
		testingHandle.Fatalf("NewMatcher error: %v", matcherError)
	}
	if matcher.IsIgnored("anything/at/all.txt", false) || matcher.IsIgnored("dir", true) {
		testingHandle.Fatalf("empty rule set must not ignore paths")
	}
}
