package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/barisgit/fwselect/internal/runner"
	"github.com/barisgit/fwselect/internal/selection"
	"github.com/barisgit/fwselect/internal/ui"
)

// RootCmd returns the interactive framework selector with its subcommands
func RootCmd(app *App, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fwselect",
		Short:         "Pick a front-end framework and scaffold it",
		Long:          "fwselect asks which framework, package manager and extra libraries you want, then runs the matching scaffolding command.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, app)
		},
	}

	cmd.Flags().Bool("debug", false, "Enable debug logging")
	cmd.Flags().Bool("dry-run", false, "Print the commands instead of running them")
	cmd.Flags().Duration("delay", runner.DefaultDelay, "Pause between the progress indicator and the install")

	cmd.AddCommand(ListCmd(app))
	cmd.AddCommand(ResolveCmd(app))

	return cmd
}

func runSelect(cmd *cobra.Command, app *App) error {
	debug, _ := cmd.Flags().GetBool("debug")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	delay, _ := cmd.Flags().GetDuration("delay")

	log := ui.New(app.Stdout, app.Stderr, debug)
	log.Intro("🚀 Welcome to the framework selector!")

	greeting := "dev"
	if app.Hostname != nil {
		greeting = app.Hostname()
	}

	flow := &selection.Flow{
		Catalog:  app.Catalog,
		Prompter: app.Prompter,
		Greeting: greeting,
	}
	record, err := flow.Run(cmd.Context())
	if errors.Is(err, selection.ErrCancelled) {
		log.Warn("🚨 Selection cancelled. No framework was installed.")
		return &ExitError{Code: 1}
	}
	if err != nil {
		return err
	}
	log.Debug("selected " + record.Framework.Name + " with " + record.PackageManager.String())

	executor := app.Executor
	if dryRun {
		executor = &runner.DryRunExecutor{Out: log.Writer()}
	}

	r := &runner.Runner{
		Catalog:  app.Catalog,
		Executor: executor,
		Log:      log,
		Spinner:  app.Spinner,
		Delay:    clampDelay(delay),
	}
	outcome := r.Run(cmd.Context(), record)
	if code := outcome.ExitCode(); code != 0 {
		return &ExitError{Code: code}
	}

	return nil
}

func clampDelay(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
