// Package config loads application configuration and ignore-pattern files.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const commentLinePrefix = "#"

// LoadIgnorePatternLines reads a gitignore-style pattern file and returns its
// pattern lines in file order. Blank lines and comment lines are dropped;
// negation lines ("!pattern") are preserved so later patterns can re-include
// paths. A missing file contributes zero rules and is not an error.
//
// #nosec G304
func LoadIgnorePatternLines(ignoreFilePath string) ([]string, error) {
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

	var patternLines []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentLinePrefix) {
			continue
		}
		patternLines = append(patternLines, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return patternLines, nil
}
