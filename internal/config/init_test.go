package config_test

import (
	"os"
	"strings"
	"testing"

	"github.com/temirov/copcon/internal/config"
)

// TestInitializeConfigurationLocal verifies the default configuration is written once.
func TestInitializeConfigurationLocal(testingHandle *testing.T) {
	workingDirectory := testingHandle.TempDir()
	writtenPath, initializationError := config.InitializeConfiguration(config.InitOptions{
		Target:           config.InitTargetLocal,
		WorkingDirectory: workingDirectory,
	})
	if initializationError != nil {
		testingHandle.Fatalf("InitializeConfiguration error: %v", initializationError)
	}
	writtenContent, readError := os.ReadFile(writtenPath)
	if readError != nil {
		testingHandle.Fatalf("reading %s: %v", writtenPath, readError)
	}
	if !strings.Contains(string(writtenContent), "exclude_hidden") {
		testingHandle.Fatalf("unexpected configuration content:\n%s", writtenContent)
	}

	_, secondError := config.InitializeConfiguration(config.InitOptions{
		Target:           config.InitTargetLocal,
		WorkingDirectory: workingDirectory,
	})
	if secondError == nil {
		testingHandle.Fatalf("expected error when configuration already exists")
	}

	_, forcedError := config.InitializeConfiguration(config.InitOptions{
		Target:           config.InitTargetLocal,
		WorkingDirectory: workingDirectory,
		Force:            true,
	})
	if forcedError != nil {
		testingHandle.Fatalf("expected forced overwrite to succeed, got %v", forcedError)
	}
}

// TestInitializeConfigurationUnknownTarget verifies unsupported targets are rejected.
func TestInitializeConfigurationUnknownTarget(testingHandle *testing.T) {
	_, initializationError := config.InitializeConfiguration(config.InitOptions{Target: "elsewhere"})
	if initializationError == nil {
		testingHandle.Fatalf("expected error for unsupported target")
	}
}
