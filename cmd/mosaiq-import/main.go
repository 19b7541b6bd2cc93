package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mosaiq/go-import-framework/internal/api"
	"github.com/mosaiq/go-import-framework/internal/constants"
	"github.com/mosaiq/go-import-framework/internal/presenters"
	mosaiqapp "github.com/mosaiq/go-import-framework/pkg/app"
	"github.com/mosaiq/go-import-framework/pkg/configuration"
	"github.com/mosaiq/go-import-framework/pkg/imports"
	"github.com/mosaiq/go-import-framework/pkg/imports/journal"
	"github.com/mosaiq/go-import-framework/pkg/platform"
	"github.com/mosaiq/go-import-framework/pkg/runtimeinfo"
	"github.com/mosaiq/go-import-framework/pkg/ui"
)

// version is overridden at build time.
var version = "0.0.0"

const flagRunsLimit = "limit"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, presenters.RenderError(err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mosaiq-import",
		Short: "Import images into the Mosaiq platform",
		Long: "mosaiq-import uploads folders, archives and text files of image URLs into a Mosaiq project.\n" +
			"Documentation: " + constants.MOSAIQ_DOCS_URL + constants.MOSAIQ_DOCS_IMPORT_PATH,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newRunsCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [path]",
		Short: "Import a folder, an archive or a text file of image URLs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runImport,
	}
	runCmd.Flags().AddFlagSet(importFlags())

	return runCmd
}

func importFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("import", pflag.ExitOnError)
	flags.String(configuration.INPUT_PATH, "", "source to import: a folder, an archive or a .txt file of URLs")
	flags.Int(configuration.FLAG_PROJECT_ID, 0, "id of an existing destination project")
	flags.String(configuration.FLAG_PROJECT_NAME, "", "name of the destination project created for the run")
	flags.Int(configuration.FLAG_DATASET_ID, 0, "id of an existing destination dataset")
	flags.String(configuration.FLAG_DATASET_NAME, "", "name of the destination dataset created for the run")
	flags.Bool(configuration.FLAG_REMOVE_SOURCE, false, "remove the team files source after a fully successful run")
	flags.Int(configuration.FLAG_CONCURRENCY, 1, "number of parallel uploads")
	flags.Bool(configuration.FLAG_OPEN_BROWSER, false, "open the destination project in the browser afterwards")
	flags.Bool(configuration.DEBUG, false, "enable debug logging")

	return flags
}

func runImport(cmd *cobra.Command, args []string) error {
	config := mosaiqapp.CreateAppConfiguration()
	if err := config.AddFlagSet(cmd.Flags()); err != nil {
		return err
	}
	if len(args) > 0 {
		config.Set(configuration.INPUT_PATH, args[0])
	}

	descriptor := &imports.Descriptor{
		Name:         "Mosaiq Import",
		Slug:         "mosaiq-import",
		Version:      version,
		PathRequired: true,
	}

	app, err := mosaiqapp.CreateApp(descriptor, config)
	if err != nil {
		return err
	}

	result, err := app.Run(cmd.Context())
	if err != nil {
		return err
	}

	return presentResult(cmd.Context(), app, config, result)
}

func presentResult(ctx context.Context, app *imports.App, config configuration.Configuration, result *imports.ImportResult) error {
	userInterface := ui.DefaultUi()

	if failures := presenters.RenderFailures(result); failures != "" {
		_ = userInterface.Output(failures)
		_ = userInterface.Output(presenters.RenderTip("Re-run with --debug to see why images were skipped\n"))
	}

	project, _ := app.Platform().Projects().Get(ctx, result.ProjectID)
	var dataset *platform.DatasetInfo
	if result.DatasetID != 0 {
		dataset, _ = app.Platform().Datasets().Get(ctx, result.DatasetID)
	}

	summary, err := presenters.RenderImportSummary(result, project, dataset, importSource(config))
	if err != nil {
		return err
	}
	_ = userInterface.Output(summary)

	if config.GetBool(configuration.FLAG_OPEN_BROWSER) {
		pageUrl := api.ProjectPageURL(config.GetString(configuration.WEB_APP_URL), result.ProjectID)
		if openErr := browser.OpenURL(pageUrl); openErr != nil {
			_ = userInterface.Output("Open " + pageUrl + " to view the project.")
		}
	}

	return nil
}

func importSource(config configuration.Configuration) string {
	source := config.GetString(configuration.TASK_INPUT_FILE)
	if source == "" {
		source = config.GetString(configuration.TASK_INPUT_FOLDER)
	}
	if source == "" {
		source = config.GetString(configuration.INPUT_PATH)
	}

	return source
}

func newRunsCommand() *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "List recently recorded import runs",
		RunE:  listRuns,
	}
	runsCmd.Flags().Int(flagRunsLimit, 20, "maximum number of runs to list")

	return runsCmd
}

func listRuns(cmd *cobra.Command, _ []string) error {
	config := mosaiqapp.CreateAppConfiguration()
	if err := config.AddFlagSet(cmd.Flags()); err != nil {
		return err
	}

	logger := mosaiqapp.CreateLogger(config, os.Stderr, nil)
	runJournal, err := journal.Open(config, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = runJournal.Close()
	}()

	records, err := runJournal.Runs(cmd.Context(), config.GetInt(flagRunsLimit))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No imports have been recorded yet.")
		return nil
	}

	for _, record := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  project %-7d %3d imported %3d skipped  %s\n",
			record.FinishedAt.Format(time.RFC3339), record.ProjectID,
			record.Succeeded, record.Failed, record.Source)
	}

	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			info := runtimeinfo.New(
				runtimeinfo.WithName("mosaiq-import"),
				runtimeinfo.WithVersion(version),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s %s/%s)\n",
				info.GetName(), info.GetVersion(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
