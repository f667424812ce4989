// Package types defines every cross‑package data structure used by the copcon CLI.
package types

const (
	// RecordKindText marks a file whose decoded content is embedded in the report.
	RecordKindText = "text"
	// RecordKindBinary marks a file summarized by MIME type and size only.
	RecordKindBinary = "binary"
	// RecordKindUnreadable marks a file that exists but could not be read.
	RecordKindUnreadable = "unreadable"
)

// ValidatedRoot is an absolute scan root directory that already passed existence checks.
type ValidatedRoot struct {
	AbsolutePath string
	DisplayName  string
}

// FileRecord represents one file visited during content collection.
// Records are created once per file and never mutated afterwards.
type FileRecord struct {
	// RelativePath is the path relative to the scan root in forward-slash form.
	RelativePath string
	// Kind is one of RecordKindText, RecordKindBinary, or RecordKindUnreadable.
	Kind string
	// SizeBytes is the file size reported by the filesystem.
	SizeBytes int64
	// MimeType is the detected MIME type, empty when undetermined.
	MimeType string
	// Payload holds the decoded text, the binary summary, or the read error message.
	Payload string
}
