// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/temirov/copcon/internal/config"
	"github.com/temirov/copcon/internal/output"
	"github.com/temirov/copcon/internal/scan"
	"github.com/temirov/copcon/internal/services/clipboard"
	"github.com/temirov/copcon/internal/tokenizer"
	"github.com/temirov/copcon/internal/types"
	"github.com/temirov/copcon/internal/utils"
)

const (
	depthFlagName         = "depth"
	excludeHiddenFlagName = "exclude-hidden"
	ignoreDirFlagName     = "ignore-dir"
	ignoreFileFlagName    = "ignore-file"
	copconignoreFlagName  = "copconignore"
	stdoutFlagName        = "stdout"
	tokensFlagName        = "tokens"
	modelFlagName         = "model"
	configFlagName        = "config"
	versionFlagName       = "version"
	globalFlagName        = "global"
	forceFlagName         = "force"

	versionTemplate      = "copcon version: %s\n"
	rootUse              = "copcon <directory>"
	rootShortDescription = "copy directory structure and file contents to the clipboard"
	rootLongDescription  = `copcon scans a directory, renders its structure as an ASCII tree, and
concatenates the contents of every non-ignored file into a single report
delivered to the system clipboard (or standard output with --stdout).
Text files are embedded verbatim; binary files are summarized by type and size.`
	rootUsageExample = `  # Copy the current project to the clipboard
  copcon .

  # Limit the tree to two levels and print the report instead of copying it
  copcon --depth 2 --stdout ./service

  # Exclude extra names on top of the built-in rules
  copcon --ignore-dir tmp --ignore-file '*.log' .`

	initUse              = "init"
	initShortDescription = "write a default configuration file"
	initLongDescription  = `Write a commented default configuration file.
By default the file is created in the working directory; use --global to
write it under the home directory instead.`

	defaultMaxDepth = -1

	depthFlagDescription         = "maximum tree depth; 0 renders no tree, negative values are unlimited"
	excludeHiddenFlagDescription = "exclude hidden files from the contents section"
	ignoreDirFlagDescription     = "additional directory name to ignore (repeatable, glob syntax allowed)"
	ignoreFileFlagDescription    = "additional file name to ignore (repeatable, glob syntax allowed)"
	copconignoreFlagDescription  = "path to an ignore-pattern file (defaults to .copconignore in the scan root)"
	stdoutFlagDescription        = "write the report to standard output instead of the clipboard"
	tokensFlagDescription        = "include an approximate token count in the confirmation"
	modelFlagDescription         = "tokenizer model used for token counting"
	configFlagDescription        = "path to a configuration file"
	versionFlagDescription       = "display application version"
	globalFlagDescription        = "write the configuration into the home directory"
	forceFlagDescription         = "overwrite an existing configuration file"

	confirmationFormat           = "Report for %s copied to clipboard (%s).\n"
	confirmationWithTokensFormat = "Report for %s copied to clipboard (%s, ~%d tokens, model %s).\n"
	initConfirmationFormat       = "Configuration written to %s\n"

	errorPathMissingFormat    = "path '%s' does not exist"
	errorPathNotDirFormat     = "path '%s' is not a directory"
	errorAbsolutePathFormat   = "abs failed for '%s': %w"
	errorStatFormat           = "stat failed for '%s': %w"
	errorClipboardFormat      = "copying report to clipboard: %w"
	errorLoadIgnoreFileFormat = "loading ignore patterns from %s: %w"
)

// runOptions collects every flag value of the root command.
type runOptions struct {
	maxDepth               int
	excludeHidden          bool
	extraIgnoreDirectories []string
	extraIgnoreFiles       []string
	ignoreFilePath         string
	useStdout              bool
	countTokens            bool
	tokenizerModel         string
	configurationPath      string
}

// Execute runs the copcon application against the system clipboard.
func Execute() error {
	return NewRootCommand(clipboard.NewSystemClipboard()).Execute()
}

// NewRootCommand builds the root Cobra command using the provided clipboard copier.
func NewRootCommand(copier clipboard.Copier) *cobra.Command {
	var showVersion bool
	var options runOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		SilenceUsage: true,
		// Flags are parsed before argument validation, so the version
		// short-circuit may waive the directory argument here.
		Args: func(command *cobra.Command, arguments []string) error {
			if showVersion && len(arguments) == 0 {
				return nil
			}
			return cobra.ExactArgs(1)(command, arguments)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			applyConfigurationDefaults(command, &options)
			return runReport(command, arguments[0], options, copier)
		},
	}

	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().IntVar(&options.maxDepth, depthFlagName, defaultMaxDepth, depthFlagDescription)
	rootCommand.Flags().BoolVar(&options.excludeHidden, excludeHiddenFlagName, true, excludeHiddenFlagDescription)
	rootCommand.Flags().StringArrayVar(&options.extraIgnoreDirectories, ignoreDirFlagName, nil, ignoreDirFlagDescription)
	rootCommand.Flags().StringArrayVar(&options.extraIgnoreFiles, ignoreFileFlagName, nil, ignoreFileFlagDescription)
	rootCommand.Flags().StringVar(&options.ignoreFilePath, copconignoreFlagName, "", copconignoreFlagDescription)
	rootCommand.Flags().BoolVar(&options.useStdout, stdoutFlagName, false, stdoutFlagDescription)
	rootCommand.Flags().BoolVar(&options.countTokens, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&options.tokenizerModel, modelFlagName, tokenizer.DefaultModelName, modelFlagDescription)
	rootCommand.Flags().StringVar(&options.configurationPath, configFlagName, "", configFlagDescription)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// applyConfigurationDefaults overlays values from the configuration files
// onto flags the invocation left untouched. Flags always win over files.
func applyConfigurationDefaults(command *cobra.Command, options *runOptions) {
	loadedConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		ExplicitFilePath: options.configurationPath,
	})
	if configurationError != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", configurationError)
		return
	}

	flags := command.Flags()
	if !flags.Changed(depthFlagName) && loadedConfiguration.Depth != nil {
		options.maxDepth = *loadedConfiguration.Depth
	}
	if !flags.Changed(excludeHiddenFlagName) && loadedConfiguration.ExcludeHidden != nil {
		options.excludeHidden = *loadedConfiguration.ExcludeHidden
	}
	if !flags.Changed(stdoutFlagName) && loadedConfiguration.Stdout != nil {
		options.useStdout = *loadedConfiguration.Stdout
	}
	if !flags.Changed(copconignoreFlagName) && loadedConfiguration.IgnoreFilePath != "" {
		options.ignoreFilePath = loadedConfiguration.IgnoreFilePath
	}
	if !flags.Changed(tokensFlagName) && loadedConfiguration.Tokens.Enabled != nil {
		options.countTokens = *loadedConfiguration.Tokens.Enabled
	}
	if !flags.Changed(modelFlagName) && loadedConfiguration.Tokens.Model != "" {
		options.tokenizerModel = loadedConfiguration.Tokens.Model
	}
	options.extraIgnoreDirectories = utils.DeduplicatePatterns(
		append(append([]string{}, loadedConfiguration.Paths.IgnoreDirectories...), options.extraIgnoreDirectories...))
	options.extraIgnoreFiles = utils.DeduplicatePatterns(
		append(append([]string{}, loadedConfiguration.Paths.IgnoreFiles...), options.extraIgnoreFiles...))
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var writeGlobal bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			writtenPath, initializationError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializationError != nil {
				return initializationError
			}
			fmt.Fprintf(command.OutOrStdout(), initConfirmationFormat, writtenPath)
			return nil
		},
	}

	initCommand.Flags().BoolVar(&writeGlobal, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// runReport executes the scan pipeline and delivers the assembled report.
func runReport(command *cobra.Command, rootArgument string, options runOptions, copier clipboard.Copier) error {
	validatedRoot, rootValidationError := resolveAndValidateRoot(rootArgument)
	if rootValidationError != nil {
		return rootValidationError
	}

	patternLines, patternLoadError := loadIgnorePatternLines(validatedRoot.AbsolutePath, options.ignoreFilePath)
	if patternLoadError != nil {
		return patternLoadError
	}

	matcher, matcherError := scan.NewMatcher(scan.MatcherOptions{
		IgnoredDirectoryNames: scan.DefaultIgnoredDirectoryNames(),
		IgnoredFileNames:      scan.DefaultIgnoredFileNames(),
		ExtraDirectoryNames:   options.extraIgnoreDirectories,
		ExtraFileNames:        options.extraIgnoreFiles,
		PatternLines:          patternLines,
	})
	if matcherError != nil {
		return matcherError
	}

	treeText, treeRenderError := scan.RenderTree(validatedRoot.AbsolutePath, options.maxDepth, matcher)
	if treeRenderError != nil {
		return treeRenderError
	}

	fileRecords, collectionError := scan.CollectContents(validatedRoot.AbsolutePath, scan.CollectorOptions{
		Matcher:       matcher,
		Classifier:    scan.NewExtensionClassifier(),
		ExcludeHidden: options.excludeHidden,
	})
	if collectionError != nil {
		return collectionError
	}

	reportText := output.AssembleReport(validatedRoot.DisplayName, treeText, fileRecords)

	if options.useStdout {
		fmt.Fprint(command.OutOrStdout(), reportText)
		return nil
	}

	if copyError := copier.Copy(reportText); copyError != nil {
		return fmt.Errorf(errorClipboardFormat, copyError)
	}
	printConfirmation(command, validatedRoot.DisplayName, reportText, options)
	return nil
}

// printConfirmation writes the one-line success message, with an approximate
// token count when requested. Token counting failures degrade to the plain
// confirmation since the report already reached the clipboard.
func printConfirmation(command *cobra.Command, rootDisplayName string, reportText string, options runOptions) {
	reportSize := utils.FormatFileSize(int64(len(reportText)))
	if options.countTokens {
		tokenCounter, counterError := tokenizer.NewCounter(options.tokenizerModel)
		if counterError != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", counterError)
		} else {
			fmt.Fprintf(command.OutOrStdout(), confirmationWithTokensFormat,
				rootDisplayName, reportSize, tokenCounter.Count(reportText), tokenCounter.Model())
			return
		}
	}
	fmt.Fprintf(command.OutOrStdout(), confirmationFormat, rootDisplayName, reportSize)
}

// loadIgnorePatternLines reads the explicit pattern file when one is given,
// otherwise the default ignore file in the scan root. A missing file in
// either case contributes zero rules.
func loadIgnorePatternLines(rootPath string, explicitIgnoreFilePath string) ([]string, error) {
	ignoreFilePath := explicitIgnoreFilePath
	if ignoreFilePath == "" {
		ignoreFilePath = filepath.Join(rootPath, utils.IgnoreFileName)
	}
	patternLines, loadError := config.LoadIgnorePatternLines(ignoreFilePath)
	if loadError != nil {
		return nil, fmt.Errorf(errorLoadIgnoreFileFormat, ignoreFilePath, loadError)
	}
	return patternLines, nil
}

// resolveAndValidateRoot converts the root argument to absolute form and
// verifies it names an existing directory.
func resolveAndValidateRoot(rootArgument string) (types.ValidatedRoot, error) {
	absolutePath, absolutePathError := filepath.Abs(rootArgument)
	if absolutePathError != nil {
		return types.ValidatedRoot{}, fmt.Errorf(errorAbsolutePathFormat, rootArgument, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	pathInfo, fileStatusError := os.Stat(cleanPath)
	if fileStatusError != nil {
		if os.IsNotExist(fileStatusError) {
			return types.ValidatedRoot{}, fmt.Errorf(errorPathMissingFormat, rootArgument)
		}
		return types.ValidatedRoot{}, fmt.Errorf(errorStatFormat, rootArgument, fileStatusError)
	}
	if !pathInfo.IsDir() {
		return types.ValidatedRoot{}, fmt.Errorf(errorPathNotDirFormat, rootArgument)
	}
	return types.ValidatedRoot{
		AbsolutePath: cleanPath,
		DisplayName:  filepath.Base(cleanPath),
	}, nil
}
