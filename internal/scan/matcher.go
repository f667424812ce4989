// Package scan implements the traversal and filtering engine: ignore-rule
// matching, text/binary classification, tree rendering, and content collection.
package scan

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"
)

const pathSegmentSeparator = "/"

// DefaultIgnoredDirectoryNames returns the built-in list of directory names
// excluded from every scan. Callers receive a fresh slice they may extend.
func DefaultIgnoredDirectoryNames() []string {
	return []string{
		".git",
		".hg",
		".svn",
		".idea",
		".vscode",
		".venv",
		"venv",
		"__pycache__",
		".mypy_cache",
		".pytest_cache",
		".tox",
		"node_modules",
		"dist",
		"build",
		"target",
		".terraform",
	}
}

// DefaultIgnoredFileNames returns the built-in list of exact file names
// excluded from every scan.
func DefaultIgnoredFileNames() []string {
	return []string{
		".DS_Store",
		"Thumbs.db",
		"desktop.ini",
		"package-lock.json",
		"yarn.lock",
		"pnpm-lock.yaml",
		"poetry.lock",
		"Pipfile.lock",
		"Cargo.lock",
		"Gemfile.lock",
		"composer.lock",
		"go.sum",
	}
}

// MatcherOptions carries every rule source consulted by a Matcher. The
// built-in name lists are explicit inputs so runs and tests can override
// them without touching shared state.
type MatcherOptions struct {
	// IgnoredDirectoryNames are exact directory basenames ignored at any depth.
	IgnoredDirectoryNames []string
	// IgnoredFileNames are exact file basenames ignored at any depth.
	IgnoredFileNames []string
	// ExtraDirectoryNames are caller-supplied directory names; glob syntax is allowed.
	ExtraDirectoryNames []string
	// ExtraFileNames are caller-supplied file names; glob syntax is allowed.
	ExtraFileNames []string
	// PatternLines are gitignore-style pattern lines evaluated after the name
	// lists; later patterns override earlier ones and "!" re-includes a path.
	PatternLines []string
}

// Matcher evaluates scan-relative paths against a layered ignore-rule set.
// A Matcher is immutable after construction and safe for shared reads.
type Matcher struct {
	directoryNames map[string]struct{}
	fileNames      map[string]struct{}
	directoryGlobs []glob.Glob
	fileGlobs      []glob.Glob
	patterns       *ignore.GitIgnore
}

// NewMatcher constructs a Matcher from the provided rule sources.
func NewMatcher(options MatcherOptions) (*Matcher, error) {
	matcher := &Matcher{
		directoryNames: make(map[string]struct{}, len(options.IgnoredDirectoryNames)),
		fileNames:      make(map[string]struct{}, len(options.IgnoredFileNames)),
	}
	for _, directoryName := range options.IgnoredDirectoryNames {
		matcher.directoryNames[directoryName] = struct{}{}
	}
	for _, fileName := range options.IgnoredFileNames {
		matcher.fileNames[fileName] = struct{}{}
	}

	for _, extraDirectoryName := range options.ExtraDirectoryNames {
		compiledGlob, compileError := glob.Compile(extraDirectoryName)
		if compileError != nil {
			return nil, fmt.Errorf("invalid ignore directory pattern %q: %w", extraDirectoryName, compileError)
		}
		matcher.directoryGlobs = append(matcher.directoryGlobs, compiledGlob)
	}
	for _, extraFileName := range options.ExtraFileNames {
		compiledGlob, compileError := glob.Compile(extraFileName)
		if compileError != nil {
			return nil, fmt.Errorf("invalid ignore file pattern %q: %w", extraFileName, compileError)
		}
		matcher.fileGlobs = append(matcher.fileGlobs, compiledGlob)
	}

	if len(options.PatternLines) > 0 {
		matcher.patterns = ignore.CompileIgnoreLines(options.PatternLines...)
	}

	return matcher, nil
}

// IsIgnored reports whether the path, relative to the scan root and in
// forward-slash form, is excluded by any rule. Name rules are additive;
// pattern rules apply gitignore semantics where the last match wins.
func (matcher *Matcher) IsIgnored(relativePath string, isDirectory bool) bool {
	normalizedPath := strings.ReplaceAll(relativePath, "\\", pathSegmentSeparator)
	normalizedPath = strings.TrimPrefix(normalizedPath, "./")
	if normalizedPath == "" || normalizedPath == "." {
		return false
	}

	pathSegments := strings.Split(normalizedPath, pathSegmentSeparator)
	lastSegmentIndex := len(pathSegments) - 1
	for segmentIndex, pathSegment := range pathSegments {
		if segmentIndex < lastSegmentIndex || isDirectory {
			if matcher.matchesDirectoryName(pathSegment) {
				return true
			}
		}
	}
	if !isDirectory && matcher.matchesFileName(pathSegments[lastSegmentIndex]) {
		return true
	}

	if matcher.patterns != nil && matcher.patterns.MatchesPath(normalizedPath) {
		return true
	}
	return false
}

func (matcher *Matcher) matchesDirectoryName(directoryName string) bool {
	if _, isListed := matcher.directoryNames[directoryName]; isListed {
		return true
	}
	for _, directoryGlob := range matcher.directoryGlobs {
		if directoryGlob.Match(directoryName) {
			return true
		}
	}
	return false
}

func (matcher *Matcher) matchesFileName(fileName string) bool {
	if _, isListed := matcher.fileNames[fileName]; isListed {
		return true
	}
	for _, fileGlob := range matcher.fileGlobs {
		if fileGlob.Match(fileName) {
			return true
		}
	}
	return false
}

// IgnoredDirectoryName reports whether the basename is in the ignored
// directory name rules, without consulting pattern rules. The tree renderer
// uses it as a short-circuit before descending.
func (matcher *Matcher) IgnoredDirectoryName(directoryName string) bool {
	return matcher.matchesDirectoryName(directoryName)
}

// IgnoredFileName reports whether the basename is in the ignored file name
// rules, without consulting pattern rules.
func (matcher *Matcher) IgnoredFileName(fileName string) bool {
	return matcher.matchesFileName(fileName)
}
