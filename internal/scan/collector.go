package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/copcon/internal/types"
)

const (
	// hiddenEntryPrefix marks hidden entries on the host filesystem.
	hiddenEntryPrefix = "."

	binarySummaryFormat      = "Type: %s, Size: %d bytes"
	unreadableFileFormat     = "Error reading file: %s: %v"
	warningAccessPathFormat  = "Warning: error accessing path %s: %v\n"
	errorCollectorRootFormat = "collecting contents of %s: %w"
)

// CollectorOptions configures a content collection pass.
type CollectorOptions struct {
	// Matcher filters entries by their scan-relative path.
	Matcher *Matcher
	// Classifier decides between text and binary payloads.
	Classifier Classifier
	// ExcludeHidden drops entries whose basename carries the hidden prefix.
	ExcludeHidden bool
}

// CollectContents walks the full subtree below rootPath and returns one
// FileRecord per visited, non-excluded file in traversal order. The walk
// applies no depth limit. A file that cannot be read produces an unreadable
// record instead of aborting the collection; only a failure to traverse the
// root itself is returned as an error.
func CollectContents(rootPath string, options CollectorOptions) ([]types.FileRecord, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", rootPath, absolutePathError)
	}
	cleanedRootPath := filepath.Clean(absoluteRootPath)

	var fileRecords []types.FileRecord

	directoryWalkError := filepath.WalkDir(cleanedRootPath, func(walkedPath string, directoryEntry os.DirEntry, accessError error) error {
		if accessError != nil {
			fmt.Fprintf(os.Stderr, warningAccessPathFormat, walkedPath, accessError)
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if walkedPath == cleanedRootPath {
			return nil
		}

		entryName := directoryEntry.Name()
		isDirectory := directoryEntry.IsDir()
		if options.ExcludeHidden && strings.HasPrefix(entryName, hiddenEntryPrefix) {
			if isDirectory {
				return filepath.SkipDir
			}
			return nil
		}

		relativePath, relativePathError := filepath.Rel(cleanedRootPath, walkedPath)
		if relativePathError != nil {
			fmt.Fprintf(os.Stderr, warningAccessPathFormat, walkedPath, relativePathError)
			return nil
		}
		relativePath = filepath.ToSlash(relativePath)

		if options.Matcher.IsIgnored(relativePath, isDirectory) {
			if isDirectory {
				return filepath.SkipDir
			}
			return nil
		}
		if isDirectory {
			return nil
		}

		fileRecords = append(fileRecords, collectFileRecord(walkedPath, relativePath, directoryEntry, options.Classifier))
		return nil
	})
	if directoryWalkError != nil {
		return nil, fmt.Errorf(errorCollectorRootFormat, rootPath, directoryWalkError)
	}

	return fileRecords, nil
}

// collectFileRecord builds the record for one file. Binary files are never
// read; text files that fail to read become unreadable records carrying the
// failure inline.
func collectFileRecord(absolutePath string, relativePath string, directoryEntry os.DirEntry, classifier Classifier) types.FileRecord {
	record := types.FileRecord{RelativePath: relativePath}
	if entryInfo, infoError := directoryEntry.Info(); infoError == nil {
		record.SizeBytes = entryInfo.Size()
	}

	if classifier.Classify(absolutePath) == types.RecordKindBinary {
		record.Kind = types.RecordKindBinary
		record.MimeType = classifier.MimeType(absolutePath)
		record.Payload = fmt.Sprintf(binarySummaryFormat, record.MimeType, record.SizeBytes)
		return record
	}

	fileBytes, fileReadError := os.ReadFile(absolutePath)
	if fileReadError != nil {
		record.Kind = types.RecordKindUnreadable
		record.Payload = fmt.Sprintf(unreadableFileFormat, relativePath, fileReadError)
		return record
	}
	record.Kind = types.RecordKindText
	record.Payload = string(fileBytes)
	return record
}
