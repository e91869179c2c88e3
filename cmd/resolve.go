package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barisgit/fwselect/internal/catalog"
	"github.com/barisgit/fwselect/internal/resolve"
)

func ResolveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <framework> <package-manager>",
		Short: "Print the scaffolding command for a framework",
		Long:  "Print the command that would be run for the given framework and package manager without running it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(app, args[0], args[1])
		},
	}

	return cmd
}

func runResolve(app *App, frameworkName, pmName string) error {
	fw, ok := app.Catalog.Framework(frameworkName)
	if !ok {
		return fmt.Errorf("unknown framework %q (run 'fwselect list' to see available frameworks)", frameworkName)
	}

	pm, err := catalog.ParsePackageManager(pmName)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.Stdout, resolve.Resolve(fw, pm))
	return nil
}
