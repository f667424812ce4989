package scan_test

import (
	"testing"

	"github.com/temirov/copcon/internal/scan"
	"github.com/temirov/copcon/internal/types"
)

// TestClassifierKnownTextExtensions verifies allow-listed extensions classify as text.
func TestClassifierKnownTextExtensions(testingHandle *testing.T) {
	classifier := scan.NewExtensionClassifier()
	for _, path := range []string{"main.go", "notes.txt", "config.yaml", "README.md", "Query.SQL"} {
		if kind := classifier.Classify(path); kind != types.RecordKindText {
			testingHandle.Fatalf("Classify(%q) = %s, want text", path, kind)
		}
	}
}

// TestClassifierMimeTextCategory verifies text/* MIME types classify as text.
func TestClassifierMimeTextCategory(testingHandle *testing.T) {
	classifier := scan.NewExtensionClassifier()
	if kind := classifier.Classify("index.html"); kind != types.RecordKindText {
		testingHandle.Fatalf("Classify(index.html) = %s, want text", kind)
	}
}

// TestClassifierBinaryFallback verifies unknown extensions default to binary.
func TestClassifierBinaryFallback(testingHandle *testing.T) {
	classifier := scan.NewExtensionClassifier()
	for _, path := range []string{"photo.png", "archive.zip", "program.exe", "noextension"} {
		if kind := classifier.Classify(path); kind != types.RecordKindBinary {
			testingHandle.Fatalf("Classify(%q) = %s, want binary", path, kind)
		}
	}
}

// TestClassifierMimeType verifies MIME reporting including the unknown fallback.
func TestClassifierMimeType(testingHandle *testing.T) {
	classifier := scan.NewExtensionClassifier()
	if mimeType := classifier.MimeType("photo.png"); mimeType != "image/png" {
		testingHandle.Fatalf("MimeType(photo.png) = %s, want image/png", mimeType)
	}
	if mimeType := classifier.MimeType("data.qqzz"); mimeType != scan.UnknownMimeType {
		testingHandle.Fatalf("MimeType(data.qqzz) = %s, want %s", mimeType, scan.UnknownMimeType)
	}
}
