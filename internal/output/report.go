// Package output renders collected scan data into the final report text.
package output

import (
	"fmt"
	"strings"

	"github.com/temirov/copcon/internal/types"
)

const (
	// treeSectionHeader opens the directory-structure section of the report.
	treeSectionHeader = "Directory Structure:"
	// contentsSectionHeader opens the file-contents section of the report.
	contentsSectionHeader = "File Contents:"
	// fileHeaderFormat labels one file section with its relative path.
	fileHeaderFormat = "File: %s"
	// separatorLine frames every file payload.
	separatorLine = "----------------------------------------"
)

// AssembleReport concatenates the rendered tree and the per-file sections
// into the single report artifact. The tree section is prefixed with a fixed
// header and the root's display name; each record is framed by its path
// header and separator lines in collection order. No truncation or size
// limiting is applied.
func AssembleReport(rootDisplayName string, treeText string, fileRecords []types.FileRecord) string {
	var builder strings.Builder

	builder.WriteString(treeSectionHeader)
	builder.WriteString("\n")
	builder.WriteString(rootDisplayName)
	builder.WriteString("\n")
	builder.WriteString(treeText)

	builder.WriteString("\n")
	builder.WriteString(contentsSectionHeader)
	builder.WriteString("\n")

	for _, fileRecord := range fileRecords {
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf(fileHeaderFormat, fileRecord.RelativePath))
		builder.WriteString("\n")
		builder.WriteString(separatorLine)
		builder.WriteString("\n")
		builder.WriteString(fileRecord.Payload)
		if !strings.HasSuffix(fileRecord.Payload, "\n") {
			builder.WriteString("\n")
		}
		builder.WriteString(separatorLine)
		builder.WriteString("\n")
	}

	return builder.String()
}
