package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"assetcopy/internal/app"
	"assetcopy/internal/config"
	"assetcopy/internal/domain"
	appErrors "assetcopy/internal/errors"
	"assetcopy/internal/infra/exif"
	"assetcopy/internal/infra/fs"
	"assetcopy/internal/logging"
	"assetcopy/internal/presentation"
	"assetcopy/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		exitWithError(err)
	}
}

func newRootCmd() *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:   "assetcopy",
		Short: "Copy brand assets into the public directory under their site names",
		Long: `assetcopy copies a fixed table of image assets from a source directory into
a destination directory, renaming each one, and then lists the destination
entries whose names match the listing filters.

A missing or failing asset is reported and never stops the others. The exit
status is zero unless --strict is set.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd.Flags(), flags)
			if err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	flags = config.BindFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	logger := logging.New(stderr, cfg.Verbose)
	filesystem := fs.OSFS{}

	planner := app.Planner{
		FS:                    filesystem,
		Logger:                logger,
		AllowDuplicateSources: cfg.AllowDuplicateSources,
		ProbeSources:          cfg.DryRun,
	}

	plan, err := planner.Plan(ctx, cfg.SourceDir, cfg.DestDir, cfg.Mapping)
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "plan", cfg.SourceDir, err)
	}

	printer := presentation.Printer{Writer: stdout}

	if cfg.DryRun {
		printer.PrintDryRun(plan)
		logger.Infof("Dry run, %d of %d sources missing, nothing written", plan.Missing, len(plan.Items))
		return nil
	}

	executor := &app.Executor{
		FS:     filesystem,
		Exif:   exif.Reader{},
		Logger: logger,
	}
	runner := &app.Runner{
		Executor: executor,
		Lister: &app.Lister{
			FS:      filesystem,
			Filters: cfg.ListFilters,
			Logger:  logger,
		},
	}

	var report domain.Report
	if cfg.TUI {
		report, err = runTUI(ctx, plan, runner, stdout)
	} else {
		printer.PrintBanner(plan)
		executor.OnResult = func(_, _ int, result domain.CopyResult) {
			printer.PrintResult(result)
		}
		report, err = runner.Run(ctx, plan)
		if err == nil {
			printer.PrintListing(report.Listing)
		}
	}
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "copy", cfg.DestDir, err)
	}

	copied, missing, failed := report.Counts()
	logger.Verbosef("Copied %d, missing %d, failed %d of %d assets", copied, missing, failed, len(plan.Items))

	return exitPolicy(cfg, report)
}

// exitPolicy turns a completed run into an error only in strict mode.
func exitPolicy(cfg config.Config, report domain.Report) error {
	if !cfg.Strict || !report.Failed() {
		return nil
	}
	copied, _, _ := report.Counts()
	if report.Listing.Err != nil && copied == len(report.Results) {
		return appErrors.Wrap(appErrors.IOFailure, "list", cfg.DestDir, report.Listing.Err)
	}
	return appErrors.Wrap(appErrors.CopyFailure, "copy", cfg.DestDir,
		fmt.Errorf("%d of %d assets not copied", len(report.Results)-copied, len(report.Results)))
}

// runTUI runs the copy on its own goroutine while the program renders. Quitting
// the program cancels the run, and runTUI waits for the entry in flight to
// finish before returning.
func runTUI(ctx context.Context, plan domain.CopyPlan, runner *app.Runner, stdout io.Writer) (domain.Report, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := tui.NewModel(tui.Config{
		SourceDir: plan.SourceDir,
		DestDir:   plan.DestDir,
		Total:     len(plan.Items),
	})
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(stdout))

	runner.Executor.OnResult = func(index, total int, result domain.CopyResult) {
		program.Send(tui.CopyResultMsg{Index: index, Total: total, Result: result})
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		report, err := runner.Run(runCtx, plan)
		if err != nil {
			program.Send(tui.ErrorMsg{Err: err})
			return
		}
		program.Send(tui.RunDoneMsg{Report: report})
	}()

	final, err := program.Run()
	cancel()
	<-done
	if err != nil {
		return domain.Report{}, err
	}

	m, ok := final.(tui.Model)
	if !ok {
		return domain.Report{}, fmt.Errorf("unexpected model %T", final)
	}
	return tuiOutcome(plan, m)
}

func tuiOutcome(plan domain.CopyPlan, m tui.Model) (domain.Report, error) {
	if m.Interrupted() {
		return domain.Report{Plan: plan, Results: m.Results}, context.Canceled
	}
	if m.Err != nil {
		return domain.Report{Plan: plan, Results: m.Results}, m.Err
	}
	return m.Report, nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	os.Exit(1)
}
