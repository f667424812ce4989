package scan

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/temirov/copcon/internal/types"
)

// UnknownMimeType is reported for binary files whose type cannot be determined.
const UnknownMimeType = "Unknown"

// Classifier decides whether a file's payload is treated as decodable text
// or as an opaque binary summarized by type and size.
type Classifier interface {
	// Classify returns types.RecordKindText or types.RecordKindBinary for the path.
	Classify(path string) string
	// MimeType returns the detected MIME type for the path, or UnknownMimeType.
	MimeType(path string) string
}

// knownTextExtensions lists extensions accepted as text when the MIME table
// gives no text category. Keys are lower-case with the leading dot.
var knownTextExtensions = []string{
	".md", ".markdown", ".rst", ".txt",
	".json", ".yaml", ".yml", ".toml", ".ini", ".cfg", ".conf", ".env",
	".xml", ".html", ".htm", ".css", ".scss", ".svg",
	".js", ".jsx", ".ts", ".tsx", ".mjs",
	".go", ".py", ".rb", ".rs", ".java", ".kt", ".swift", ".scala",
	".c", ".h", ".cc", ".cpp", ".hpp", ".cs",
	".sh", ".bash", ".zsh", ".fish", ".bat", ".ps1",
	".sql", ".graphql", ".proto",
	".tf", ".dockerfile", ".mod", ".sum", ".lock",
	".gitignore", ".gitattributes", ".editorconfig",
}

// ExtensionClassifier classifies files by extension: the MIME type table is
// consulted first, then a fixed allow-list of known-text extensions; anything
// else is binary. File bytes are never read.
type ExtensionClassifier struct {
	textExtensions map[string]struct{}
}

// NewExtensionClassifier constructs the default classifier.
func NewExtensionClassifier() *ExtensionClassifier {
	classifier := &ExtensionClassifier{textExtensions: make(map[string]struct{}, len(knownTextExtensions))}
	for _, extension := range knownTextExtensions {
		classifier.textExtensions[extension] = struct{}{}
	}
	return classifier
}

// Classify returns the record kind for the file at path.
func (classifier *ExtensionClassifier) Classify(path string) string {
	extension := strings.ToLower(filepath.Ext(path))
	mimeType := mime.TypeByExtension(extension)
	if mimeType != "" && strings.HasPrefix(mimeType, "text/") {
		return types.RecordKindText
	}
	if _, isKnownText := classifier.textExtensions[extension]; isKnownText {
		return types.RecordKindText
	}
	return types.RecordKindBinary
}

// MimeType returns the MIME type registered for the file's extension,
// stripped of parameters, or UnknownMimeType when the table has no entry.
func (classifier *ExtensionClassifier) MimeType(path string) string {
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		return UnknownMimeType
	}
	if separatorIndex := strings.Index(mimeType, ";"); separatorIndex >= 0 {
		mimeType = strings.TrimSpace(mimeType[:separatorIndex])
	}
	return mimeType
}

var _ Classifier = (*ExtensionClassifier)(nil)
