package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/copcon/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds run defaults overridable by command flags.
type ApplicationConfiguration struct {
	Depth          *int               `mapstructure:"depth"`
	ExcludeHidden  *bool              `mapstructure:"exclude_hidden"`
	Stdout         *bool              `mapstructure:"stdout"`
	IgnoreFilePath string             `mapstructure:"ignore_file"`
	Paths          PathConfiguration  `mapstructure:"paths"`
	Tokens         TokenConfiguration `mapstructure:"tokens"`
}

// PathConfiguration supplies additional ignored directory and file names.
type PathConfiguration struct {
	IgnoreDirectories []string `mapstructure:"ignore_dirs"`
	IgnoreFiles       []string `mapstructure:"ignore_files"`
}

// TokenConfiguration controls token counting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
// The global file under the user's home directory is overlaid by the file in
// the working directory; either may be absent.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	if localPath != "" {
		localConfig, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfig)
	}

	merged.Paths.IgnoreDirectories = utils.DeduplicatePatterns(merged.Paths.IgnoreDirectories)
	merged.Paths.IgnoreFiles = utils.DeduplicatePatterns(merged.Paths.IgnoreFiles)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	pathInfo, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if pathInfo.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.Depth != nil {
		result.Depth = cloneInt(override.Depth)
	}
	if override.ExcludeHidden != nil {
		result.ExcludeHidden = cloneBool(override.ExcludeHidden)
	}
	if override.Stdout != nil {
		result.Stdout = cloneBool(override.Stdout)
	}
	if override.IgnoreFilePath != "" {
		result.IgnoreFilePath = override.IgnoreFilePath
	}
	result.Paths = result.Paths.merge(override.Paths)
	result.Tokens = result.Tokens.merge(override.Tokens)
	return result
}

func (configuration PathConfiguration) merge(override PathConfiguration) PathConfiguration {
	result := configuration
	if len(override.IgnoreDirectories) > 0 {
		result.IgnoreDirectories = append([]string{}, utils.DeduplicatePatterns(override.IgnoreDirectories)...)
	}
	if len(override.IgnoreFiles) > 0 {
		result.IgnoreFiles = append([]string{}, utils.DeduplicatePatterns(override.IgnoreFiles)...)
	}
	return result
}

func (configuration TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := configuration
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
