package scan

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

const (
	branchConnector       = "├── "
	cornerConnector       = "└── "
	verticalContinuation  = "│   "
	blankContinuation     = "    "
	warningReadTreeFormat = "Warning: skipping directory %s: %v\n"
)

// treeEntry is one pending line of the rendered tree together with the
// traversal state needed to expand it.
type treeEntry struct {
	absolutePath string
	relativePath string
	name         string
	isDirectory  bool
	depth        int
	linePrefix   string
	childPrefix  string
}

// RenderTree produces the indented ASCII tree for the directory at rootPath.
// A maxDepth of zero yields an empty tree, a negative value removes the
// depth limit, and a positive value renders entries at most maxDepth levels
// below the root. The traversal uses an explicit work-list so pathological
// nesting cannot exhaust the call stack, and sibling order is
// case-insensitive lexicographic for a deterministic rendering.
func RenderTree(rootPath string, maxDepth int, matcher *Matcher) (string, error) {
	if maxDepth == 0 {
		return "", nil
	}

	var builder strings.Builder
	var stack []treeEntry

	rootChildren, rootReadError := listVisibleChildren(rootPath, "", matcher)
	if rootReadError != nil {
		return "", fmt.Errorf("reading directory %s: %w", rootPath, rootReadError)
	}
	stack = appendChildEntries(stack, rootChildren, 1, "")

	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		builder.WriteString(entry.linePrefix)
		builder.WriteString(entry.name)
		builder.WriteString("\n")

		if !entry.isDirectory {
			continue
		}
		if maxDepth > 0 && entry.depth >= maxDepth {
			continue
		}
		children, childReadError := listVisibleChildren(entry.absolutePath, entry.relativePath, matcher)
		if childReadError != nil {
			fmt.Fprintf(os.Stderr, warningReadTreeFormat, entry.absolutePath, childReadError)
			continue
		}
		stack = appendChildEntries(stack, children, entry.depth+1, entry.childPrefix)
	}

	return builder.String(), nil
}

// listVisibleChildren reads the direct children of directoryPath, drops every
// entry excluded by the name lists or the matcher, and returns the remainder
// sorted case-insensitively by name.
func listVisibleChildren(directoryPath string, relativeDirectory string, matcher *Matcher) ([]treeEntry, error) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil, readDirectoryError
	}

	var children []treeEntry
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		isDirectory := directoryEntry.IsDir()
		if isDirectory && matcher.IgnoredDirectoryName(entryName) {
			continue
		}
		if !isDirectory && matcher.IgnoredFileName(entryName) {
			continue
		}
		relativeChildPath := path.Join(relativeDirectory, entryName)
		if matcher.IsIgnored(relativeChildPath, isDirectory) {
			continue
		}
		children = append(children, treeEntry{
			absolutePath: filepath.Join(directoryPath, entryName),
			relativePath: relativeChildPath,
			name:         entryName,
			isDirectory:  isDirectory,
		})
	}

	sort.Slice(children, func(firstIndex, secondIndex int) bool {
		firstName := strings.ToLower(children[firstIndex].name)
		secondName := strings.ToLower(children[secondIndex].name)
		if firstName == secondName {
			return children[firstIndex].name < children[secondIndex].name
		}
		return firstName < secondName
	})
	return children, nil
}

// appendChildEntries assigns connectors and prefixes to the sorted children
// and pushes them onto the work-list in reverse so they pop in sorted order.
func appendChildEntries(stack []treeEntry, children []treeEntry, depth int, parentPrefix string) []treeEntry {
	for childIndex := len(children) - 1; childIndex >= 0; childIndex-- {
		child := children[childIndex]
		isLastSibling := childIndex == len(children)-1
		connector := branchConnector
		continuation := verticalContinuation
		if isLastSibling {
			connector = cornerConnector
			continuation = blankContinuation
		}
		child.depth = depth
		child.linePrefix = parentPrefix + connector
		child.childPrefix = parentPrefix + continuation
		stack = append(stack, child)
	}
	return stack
}
