package output_test

import (
	"strings"
	"testing"

	"github.com/temirov/copcon/internal/output"
	"github.com/temirov/copcon/internal/types"
)

const (
	rootDisplayName = "project"
	sampleTreeText  = "├── a.txt\n└── b.bin\n"
	separatorLine   = "----------------------------------------"
)

// TestAssembleReport verifies section headers, framing, and payload placement.
func TestAssembleReport(testingHandle *testing.T) {
	fileRecords := []types.FileRecord{
		{RelativePath: "a.txt", Kind: types.RecordKindText, Payload: "hello"},
		{RelativePath: "b.bin", Kind: types.RecordKindBinary, Payload: "Type: Unknown, Size: 10 bytes"},
	}
	reportText := output.AssembleReport(rootDisplayName, sampleTreeText, fileRecords)

	expectedReport := "Directory Structure:\n" +
		rootDisplayName + "\n" +
		sampleTreeText +
		"\nFile Contents:\n" +
		"\nFile: a.txt\n" +
		separatorLine + "\n" +
		"hello\n" +
		separatorLine + "\n" +
		"\nFile: b.bin\n" +
		separatorLine + "\n" +
		"Type: Unknown, Size: 10 bytes\n" +
		separatorLine + "\n"
	if reportText != expectedReport {
		testingHandle.Fatalf("unexpected report:\n%q\nwant:\n%q", reportText, expectedReport)
	}
}

// TestAssembleReportVerbatimPayload verifies text payloads keep their own trailing newline.
func TestAssembleReportVerbatimPayload(testingHandle *testing.T) {
	fileRecords := []types.FileRecord{
		{RelativePath: "lines.txt", Kind: types.RecordKindText, Payload: "first\nsecond\n"},
	}
	reportText := output.AssembleReport(rootDisplayName, "└── lines.txt\n", fileRecords)
	if !strings.Contains(reportText, separatorLine+"\nfirst\nsecond\n"+separatorLine+"\n") {
		testingHandle.Fatalf("payload not embedded verbatim:\n%s", reportText)
	}
	if strings.Contains(reportText, "second\n\n"+separatorLine) {
		testingHandle.Fatalf("extra newline appended to payload:\n%s", reportText)
	}
}

// TestAssembleReportEmptyRun verifies the empty-directory round trip.
func TestAssembleReportEmptyRun(testingHandle *testing.T) {
	reportText := output.AssembleReport(rootDisplayName, "", nil)
	expectedReport := "Directory Structure:\n" + rootDisplayName + "\n\nFile Contents:\n"
	if reportText != expectedReport {
		testingHandle.Fatalf("unexpected empty report:\n%q\nwant:\n%q", reportText, expectedReport)
	}
}
