// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/dvogt23/book-summary/internal/book"
	"github.com/dvogt23/book-summary/internal/config"
	"github.com/dvogt23/book-summary/internal/scan"
	"github.com/dvogt23/book-summary/internal/services/clipboard"
	"github.com/dvogt23/book-summary/internal/services/watch"
	"github.com/dvogt23/book-summary/internal/utils"
)

const (
	rootUse              = "book-summary"
	rootShortDescription = "generate a SUMMARY.md from a directory of markdown notes"
	rootLongDescription  = `book-summary walks a directory of markdown notes and writes a SUMMARY.md
table of contents compatible with mdBook (--format md) or GitBook (--format git).
Chapter titles are derived from directory and file names; a chapter containing a
README.md links its heading to that file. Project settings are read from
book.toml (mdBook) or book.json/book.js (GitBook) unless overridden by flags.`
	rootUsageExample = `  # Generate an mdBook summary for the current directory
  book-summary

  # GitBook summary with selected chapters first
  book-summary --format git --sort chapter2 --sort chapter1

  # Regenerate on every change
  book-summary --watch --overwrite`

	formatFlagName         = "format"
	titleFlagName          = "title"
	sortFlagName           = "sort"
	outputFileFlagName     = "outputfile"
	notesDirectoryFlagName = "notesdir"
	overwriteFlagName      = "overwrite"
	copyFlagName           = "copy"
	watchFlagName          = "watch"
	verboseFlagName        = "verbose"

	formatFlagDescription         = "summary dialect: md (mdBook) or git (GitBook)"
	titleFlagDescription          = "title of the generated summary"
	sortFlagDescription           = "chapter to render first (repeatable, in order)"
	outputFileFlagDescription     = "name of the generated summary file"
	notesDirectoryFlagDescription = "directory containing the markdown notes"
	overwriteFlagDescription      = "overwrite an existing summary without asking"
	copyFlagDescription           = "copy the generated summary to the clipboard"
	watchFlagDescription          = "watch the notes directory and regenerate on changes"
	verboseFlagDescription        = "enable verbose logging"

	defaultFormatSelector  = "md"
	defaultTitle           = "Summary"
	defaultOutputFileName  = "SUMMARY.md"
	defaultNotesDirectory  = "."
	versionTemplateFormat  = "book-summary version: %s\n"
	abortedMessage         = "Aborted, existing summary kept."
	createdMessageFormat   = "Created %s"
	skippedEntryMessage    = "skipping note entry"
	clipboardFailureFormat = "copy summary to clipboard: %w"
)

// generateOptions stores the resolved command line values for one run.
type generateOptions struct {
	projectDirectory  string
	outputFileName    string
	title             string
	formatSelector    string
	preferredChapters []string
	overwrite         bool
	copyToClipboard   bool
	watchForChanges   bool

	// titleFromFlag and directoryFromFlag record whether the user set the
	// value explicitly; only then does the flag win over the project
	// configuration file (flag > config file > default).
	titleFromFlag     bool
	directoryFromFlag bool
}

// Execute runs the book-summary application.
func Execute() error {
	return createRootCommand().Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var options generateOptions
	var verboseEnabled bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			loggerInstance, loggerError := utils.NewApplicationLogger(verboseEnabled)
			if loggerError != nil {
				return fmt.Errorf("initialize logger: %w", loggerError)
			}
			defer func() { _ = loggerInstance.Sync() }()

			options.titleFromFlag = command.Flags().Changed(titleFlagName)
			options.directoryFromFlag = command.Flags().Changed(notesDirectoryFlagName)
			return runGenerate(loggerInstance, options, clipboard.NewService(), os.Stdin, command.OutOrStdout())
		},
	}

	rootCommand.Flags().StringVarP(&options.formatSelector, formatFlagName, "f", defaultFormatSelector, formatFlagDescription)
	rootCommand.Flags().StringVarP(&options.title, titleFlagName, "t", defaultTitle, titleFlagDescription)
	rootCommand.Flags().StringArrayVarP(&options.preferredChapters, sortFlagName, "s", nil, sortFlagDescription)
	rootCommand.Flags().StringVarP(&options.outputFileName, outputFileFlagName, "o", defaultOutputFileName, outputFileFlagDescription)
	rootCommand.Flags().StringVarP(&options.projectDirectory, notesDirectoryFlagName, "n", defaultNotesDirectory, notesDirectoryFlagDescription)
	rootCommand.Flags().BoolVarP(&options.overwrite, overwriteFlagName, "y", false, overwriteFlagDescription)
	rootCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().BoolVarP(&options.watchForChanges, watchFlagName, "w", false, watchFlagDescription)
	rootCommand.Flags().BoolVarP(&verboseEnabled, verboseFlagName, "v", false, verboseFlagDescription)

	rootCommand.Version = utils.GetApplicationVersion()
	rootCommand.SetVersionTemplate(fmt.Sprintf(versionTemplateFormat, rootCommand.Version))
	return rootCommand
}

// runGenerate resolves configuration, builds the chapter tree, and writes the
// rendered summary. With --watch it afterwards keeps regenerating until
// interrupted.
func runGenerate(
	loggerInstance *zap.Logger,
	options generateOptions,
	copier clipboard.Copier,
	confirmInput io.Reader,
	messageOutput io.Writer,
) error {
	dialect, dialectError := book.ParseDialect(options.formatSelector)
	if dialectError != nil {
		return dialectError
	}

	bookConfiguration, configurationError := config.LoadBookConfiguration(options.projectDirectory, dialect)
	if configurationError != nil {
		return configurationError
	}

	title := options.title
	if !options.titleFromFlag && bookConfiguration.Title != "" {
		title = bookConfiguration.Title
		loggerInstance.Debug("using title from project configuration", zap.String("title", title))
	}

	notesDirectory := options.projectDirectory
	if !options.directoryFromFlag && bookConfiguration.Source != "" {
		notesDirectory = filepath.Join(options.projectDirectory, bookConfiguration.Source)
		loggerInstance.Debug("using source directory from project configuration", zap.String("directory", notesDirectory))
	}

	absoluteNotesDirectory, absoluteError := filepath.Abs(notesDirectory)
	if absoluteError != nil {
		return fmt.Errorf("resolve notes directory %s: %w", notesDirectory, absoluteError)
	}
	directoryInformation, statError := os.Stat(absoluteNotesDirectory)
	if statError != nil {
		return fmt.Errorf("notes directory %s: %w", absoluteNotesDirectory, statError)
	}
	if !directoryInformation.IsDir() {
		return fmt.Errorf("notes directory %s is not a directory", absoluteNotesDirectory)
	}

	outputPath := filepath.Join(absoluteNotesDirectory, options.outputFileName)

	generate := func() error {
		notePaths, collectError := scan.CollectNotes(absoluteNotesDirectory, options.outputFileName)
		if collectError != nil {
			return collectError
		}
		chapterTree, buildError := book.Build(title, notePaths)
		for _, entryError := range multierr.Errors(buildError) {
			loggerInstance.Warn(skippedEntryMessage, zap.Error(entryError))
		}
		summaryDocument := book.Render(chapterTree, dialect, options.preferredChapters)

		if writeError := os.WriteFile(outputPath, []byte(summaryDocument), 0o644); writeError != nil {
			return fmt.Errorf("write summary to %s: %w", outputPath, writeError)
		}
		if options.copyToClipboard && copier != nil {
			if copyError := copier.Copy(summaryDocument); copyError != nil {
				return fmt.Errorf(clipboardFailureFormat, copyError)
			}
		}
		return nil
	}

	if !options.overwrite {
		if _, outputStatError := os.Stat(outputPath); outputStatError == nil {
			confirmed, confirmError := confirmOverwrite(confirmInput, messageOutput, options.outputFileName)
			if confirmError != nil {
				return confirmError
			}
			if !confirmed {
				fmt.Fprintln(messageOutput, abortedMessage)
				return nil
			}
		} else if !os.IsNotExist(outputStatError) {
			return fmt.Errorf("inspect output path %s: %w", outputPath, outputStatError)
		}
	}

	if generateError := generate(); generateError != nil {
		return generateError
	}
	fmt.Fprintln(messageOutput, successStyle.Render(fmt.Sprintf(createdMessageFormat, outputPath)))

	if !options.watchForChanges {
		return nil
	}

	watchCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()
	return watch.Run(watchCtx, watch.Options{
		Root:           absoluteNotesDirectory,
		OutputFileName: options.outputFileName,
		Logger:         loggerInstance,
	}, generate)
}
