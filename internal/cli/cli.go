// Package cli provides the command line interface.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/frogermcs/codebase-digest/internal/commands"
	"github.com/frogermcs/codebase-digest/internal/config"
	"github.com/frogermcs/codebase-digest/internal/output"
	"github.com/frogermcs/codebase-digest/internal/services/clipboard"
	"github.com/frogermcs/codebase-digest/internal/tokenizer"
	"github.com/frogermcs/codebase-digest/internal/utils"
)

const (
	maxDepthFlagName         = "max-depth"
	outputFormatFlagName     = "output-format"
	outputFileFlagName       = "file"
	showSizeFlagName         = "show-size"
	showIgnoredFlagName      = "show-ignored"
	ignoreFlagName           = "ignore"
	noDefaultIgnoresFlagName = "no-default-ignores"
	noGitignoreFlagName      = "no-gitignore"
	noIgnoreFileFlagName     = "no-ignore-file"
	includeGitFlagName       = "git"
	noContentFlagName        = "no-content"
	maxSizeFlagName          = "max-size"
	clipboardFlagName        = "copy-to-clipboard"
	noInputFlagName          = "no-input"
	tokensFlagName           = "tokens"
	modelFlagName            = "model"
	configFlagName           = "config"
	versionFlagName          = "version"

	versionTemplate      = "cdigest version: %s\n"
	rootUse              = "cdigest [path]"
	rootShortDescription = "analyze and visualize codebase structure"
	rootLongDescription  = `cdigest walks a directory, classifies files as text or binary, applies
ignore patterns, and produces a structured digest with a tree view, file
contents, and summary statistics.
Use --output-format to select text, markdown, json, xml, or html output.`
	rootUsageExample = `  # Digest the current project as markdown
  cdigest -o markdown .

  # Exclude logs and temp files, show ignored entries in the console tree
  cdigest --ignore '*.log' --ignore 'temp_*' --show-ignored .

  # Count tokens with a specific tokenizer model
  cdigest --tokens --model gpt-4o .`

	maxDepthFlagDescription         = "maximum depth for directory traversal"
	outputFormatFlagDescription     = "output format (text, markdown, json, xml, html)"
	outputFileFlagDescription       = "output file name (default: <directory>_codebase_digest.<extension>)"
	showSizeFlagDescription         = "show file sizes in the console directory tree"
	showIgnoredFlagDescription      = "show ignored files and directories in the console tree"
	ignoreFlagDescription           = "additional ignore pattern (repeatable)"
	noDefaultIgnoresFlagDescription = "do not use the default ignore patterns"
	noGitignoreFlagDescription      = "do not use .gitignore"
	noIgnoreFileFlagDescription     = "do not use " + utils.IgnoreFileName
	includeGitFlagDescription       = "include the " + utils.GitDirectoryName + " directory"
	noContentFlagDescription        = "exclude file contents from the output"
	maxSizeFlagDescription          = "maximum allowed text content size in KB"
	clipboardFlagDescription        = "copy the output to the clipboard after analysis"
	noInputFlagDescription          = "run without interactive prompts"
	tokensFlagDescription           = "include token counts"
	modelFlagDescription            = "tokenizer model to use for token counting"
	configFlagDescription           = "path to an explicit configuration file"
	versionFlagDescription          = "display application version"

	defaultPath              = "."
	defaultOutputFormat      = output.FormatText
	defaultMaxSizeKilobytes  = 10240
	defaultTokenizerModel    = "gpt-4o"
	unlimitedDepthFlagValue  = -1
	digestBannerText         = "Codebase Digest"
	digestFileNameSuffix     = "_codebase_digest"
	proceedPromptText        = "Do you want to proceed? (y/n): "
	analysisAbortedMessage   = "analysis aborted"
	invalidFormatMessage     = "invalid format value '%s'"
	errorPathMissingFormat   = "path '%s' does not exist"
	errorStatFormat          = "stat failed for '%s': %w"
	errorNotDirectoryFormat  = "path '%s' is not a directory"
	errorAbsolutePathFormat  = "abs failed for '%s': %w"
	errorWriteOutputFormat   = "writing output to %s: %w"
	workingDirErrorFormat    = "unable to determine working directory: %w"
	analyzingDirectoryFormat = "Analyzing directory: %s"
	savedToFormat            = "Analysis saved to: %s"
	clipboardCopiedMessage   = "Output copied to clipboard!"
	clipboardFailedFormat    = "failed to copy to clipboard: %v"
	sizeWarningFormat        = "estimated output size (%.2f KB) exceeds the maximum allowed size (%d KB)"
)

// digestOptions stores the resolved configuration for a digest run.
type digestOptions struct {
	path             string
	maxDepth         int
	outputFormat     string
	outputFile       string
	showSize         bool
	showIgnored      bool
	extraPatterns    []string
	noDefaultIgnores bool
	noGitignore      bool
	noIgnoreFile     bool
	includeGit       bool
	noContent        bool
	maxSizeKilobytes int
	copyToClipboard  bool
	noInput          bool
	tokensEnabled    bool
	tokenizerModel   string
	configFilePath   string
}

// Execute runs the cdigest application.
func Execute(loggerInstance *zap.Logger) error {
	rootCommand := createRootCommand(loggerInstance)
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(loggerInstance *zap.Logger) *cobra.Command {
	var showVersion bool
	options := digestOptions{
		maxDepth:         unlimitedDepthFlagValue,
		outputFormat:     defaultOutputFormat,
		maxSizeKilobytes: defaultMaxSizeKilobytes,
		tokenizerModel:   defaultTokenizerModel,
	}

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			options.path = defaultPath
			if len(arguments) > 0 {
				options.path = arguments[0]
			}
			if applyError := applyConfigurationDefaults(command, &options); applyError != nil {
				return applyError
			}
			return runDigest(loggerInstance, options)
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().IntVarP(&options.maxDepth, maxDepthFlagName, "d", unlimitedDepthFlagValue, maxDepthFlagDescription)
	rootCommand.Flags().StringVarP(&options.outputFormat, outputFormatFlagName, "o", defaultOutputFormat, outputFormatFlagDescription)
	rootCommand.Flags().StringVarP(&options.outputFile, outputFileFlagName, "f", "", outputFileFlagDescription)
	rootCommand.Flags().BoolVar(&options.showSize, showSizeFlagName, false, showSizeFlagDescription)
	rootCommand.Flags().BoolVar(&options.showIgnored, showIgnoredFlagName, false, showIgnoredFlagDescription)
	rootCommand.Flags().StringArrayVar(&options.extraPatterns, ignoreFlagName, nil, ignoreFlagDescription)
	rootCommand.Flags().BoolVar(&options.noDefaultIgnores, noDefaultIgnoresFlagName, false, noDefaultIgnoresFlagDescription)
	rootCommand.Flags().BoolVar(&options.noGitignore, noGitignoreFlagName, false, noGitignoreFlagDescription)
	rootCommand.Flags().BoolVar(&options.noIgnoreFile, noIgnoreFileFlagName, false, noIgnoreFileFlagDescription)
	rootCommand.Flags().BoolVar(&options.includeGit, includeGitFlagName, false, includeGitFlagDescription)
	rootCommand.Flags().BoolVar(&options.noContent, noContentFlagName, false, noContentFlagDescription)
	rootCommand.Flags().IntVar(&options.maxSizeKilobytes, maxSizeFlagName, defaultMaxSizeKilobytes, maxSizeFlagDescription)
	rootCommand.Flags().BoolVar(&options.copyToClipboard, clipboardFlagName, false, clipboardFlagDescription)
	rootCommand.Flags().BoolVar(&options.noInput, noInputFlagName, false, noInputFlagDescription)
	rootCommand.Flags().BoolVar(&options.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&options.tokenizerModel, modelFlagName, defaultTokenizerModel, modelFlagDescription)
	rootCommand.Flags().StringVar(&options.configFilePath, configFlagName, "", configFlagDescription)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// applyConfigurationDefaults overlays application-configuration values onto
// options for every flag the user did not set explicitly.
func applyConfigurationDefaults(command *cobra.Command, options *digestOptions) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirErrorFormat, workingDirectoryError)
	}
	applicationConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configFilePath,
	})
	if loadError != nil {
		return loadError
	}
	digestConfiguration := applicationConfiguration.Digest

	if !command.Flags().Changed(outputFormatFlagName) && digestConfiguration.Format != "" {
		options.outputFormat = digestConfiguration.Format
	}
	if !command.Flags().Changed(outputFileFlagName) && digestConfiguration.OutputFile != "" {
		options.outputFile = digestConfiguration.OutputFile
	}
	if !command.Flags().Changed(showSizeFlagName) && digestConfiguration.ShowSize != nil {
		options.showSize = *digestConfiguration.ShowSize
	}
	if !command.Flags().Changed(showIgnoredFlagName) && digestConfiguration.ShowIgnored != nil {
		options.showIgnored = *digestConfiguration.ShowIgnored
	}
	if !command.Flags().Changed(noContentFlagName) && digestConfiguration.IncludeContent != nil {
		options.noContent = !*digestConfiguration.IncludeContent
	}
	if !command.Flags().Changed(maxDepthFlagName) && digestConfiguration.MaxDepth != nil {
		options.maxDepth = *digestConfiguration.MaxDepth
	}
	if !command.Flags().Changed(maxSizeFlagName) && digestConfiguration.MaxSizeKilobytes != nil {
		options.maxSizeKilobytes = *digestConfiguration.MaxSizeKilobytes
	}
	if !command.Flags().Changed(clipboardFlagName) && digestConfiguration.Clipboard != nil {
		options.copyToClipboard = *digestConfiguration.Clipboard
	}
	if !command.Flags().Changed(tokensFlagName) && digestConfiguration.Tokens.Enabled != nil {
		options.tokensEnabled = *digestConfiguration.Tokens.Enabled
	}
	if !command.Flags().Changed(modelFlagName) && digestConfiguration.Tokens.Model != "" {
		options.tokenizerModel = digestConfiguration.Tokens.Model
	}
	if len(digestConfiguration.Paths.Exclude) > 0 {
		options.extraPatterns = append(options.extraPatterns, digestConfiguration.Paths.Exclude...)
	}
	if !command.Flags().Changed(noDefaultIgnoresFlagName) && digestConfiguration.Paths.UseDefaultPatterns != nil {
		options.noDefaultIgnores = !*digestConfiguration.Paths.UseDefaultPatterns
	}
	if !command.Flags().Changed(noGitignoreFlagName) && digestConfiguration.Paths.UseGitignore != nil {
		options.noGitignore = !*digestConfiguration.Paths.UseGitignore
	}
	if !command.Flags().Changed(noIgnoreFileFlagName) && digestConfiguration.Paths.UseIgnoreFile != nil {
		options.noIgnoreFile = !*digestConfiguration.Paths.UseIgnoreFile
	}
	if !command.Flags().Changed(includeGitFlagName) && digestConfiguration.Paths.IncludeGit != nil {
		options.includeGit = *digestConfiguration.Paths.IncludeGit
	}
	return nil
}

// runDigest performs the analysis and renders every requested output surface.
func runDigest(loggerInstance *zap.Logger, options digestOptions) error {
	outputFormatLower := strings.ToLower(options.outputFormat)
	if !output.IsSupportedFormat(outputFormatLower) {
		return fmt.Errorf(invalidFormatMessage, options.outputFormat)
	}

	absolutePath, absolutePathError := filepath.Abs(options.path)
	if absolutePathError != nil {
		return fmt.Errorf(errorAbsolutePathFormat, options.path, absolutePathError)
	}
	pathInfo, statError := os.Stat(absolutePath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return fmt.Errorf(errorPathMissingFormat, options.path)
		}
		return fmt.Errorf(errorStatFormat, options.path, statError)
	}
	if !pathInfo.IsDir() {
		return fmt.Errorf(errorNotDirectoryFormat, options.path)
	}

	var tokenCounter tokenizer.Counter
	if options.tokensEnabled {
		createdCounter, _, counterError := tokenizer.NewCounter(tokenizer.Config{Model: options.tokenizerModel})
		if counterError != nil {
			return counterError
		}
		tokenCounter = createdCounter
	}

	var maxDepth *int
	if options.maxDepth >= 0 {
		depthValue := options.maxDepth
		maxDepth = &depthValue
	}

	fmt.Println(output.FramedBanner(digestBannerText))
	fmt.Printf(analyzingDirectoryFormat+"\n", absolutePath)

	rootNode, analysisWarnings, digestError := commands.GetDigestData(commands.DigestOptions{
		Path:               absolutePath,
		ExtraPatterns:      options.extraPatterns,
		UseDefaultPatterns: !options.noDefaultIgnores,
		UseIgnoreFile:      !options.noIgnoreFile,
		UseGitignore:       !options.noGitignore,
		IncludeGit:         options.includeGit,
		MaxDepth:           maxDepth,
		TokenCounter:       tokenCounter,
	})
	if digestError != nil {
		return digestError
	}
	for _, warningMessage := range analysisWarnings {
		loggerInstance.Warn(warningMessage)
	}

	estimatedOutputSize := commands.EstimateOutputSize(rootNode)
	if estimatedOutputSize/1024 > int64(options.maxSizeKilobytes) {
		loggerInstance.Warn(fmt.Sprintf(sizeWarningFormat, float64(estimatedOutputSize)/1024, options.maxSizeKilobytes))
		if !options.noInput && !askConfirmation(proceedPromptText) {
			loggerInstance.Info(analysisAbortedMessage)
			return nil
		}
	}

	formatter, formatterError := output.NewFormatter(outputFormatLower, output.Options{IncludeContent: !options.noContent})
	if formatterError != nil {
		return formatterError
	}
	renderedDigest, renderError := formatter.Format(rootNode)
	if renderError != nil {
		return renderError
	}

	outputFileName := options.outputFile
	if outputFileName == "" {
		outputFileName = filepath.Base(absolutePath) + digestFileNameSuffix + formatter.Extension()
	}
	outputFilePath, outputPathError := filepath.Abs(outputFileName)
	if outputPathError != nil {
		return fmt.Errorf(errorAbsolutePathFormat, outputFileName, outputPathError)
	}
	if writeError := os.WriteFile(outputFilePath, []byte(renderedDigest), 0o644); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, outputFilePath, writeError)
	}
	fmt.Printf(savedToFormat+"\n", outputFilePath)

	fmt.Println(output.FramedBanner("Analysis Summary"))
	fmt.Print(output.ColoredTreeString(rootNode, output.TreeOptions{ShowSize: options.showSize, ShowIgnored: options.showIgnored}))
	fmt.Println(output.ColoredSummaryString(rootNode))

	if options.copyToClipboard {
		clipboardService := clipboard.NewService()
		if copyError := clipboardService.Copy(renderedDigest); copyError != nil {
			loggerInstance.Warn(fmt.Sprintf(clipboardFailedFormat, copyError))
		} else {
			fmt.Println(clipboardCopiedMessage)
		}
	}

	return nil
}

// askConfirmation reads a single line from stdin and reports whether the
// user answered affirmatively.
func askConfirmation(promptText string) bool {
	fmt.Print(promptText)
	reader := bufio.NewReader(os.Stdin)
	answer, readError := reader.ReadString('\n')
	if readError != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
