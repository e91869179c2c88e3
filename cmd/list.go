package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/barisgit/fwselect/internal/catalog"
	"github.com/barisgit/fwselect/internal/resolve"
	"github.com/barisgit/fwselect/internal/ui"
)

func ListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available frameworks and extra libraries",
		Long:  "Display every framework with the command it runs for each package manager, followed by the extra libraries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app)
		},
	}

	cmd.Flags().String("pm", "", "Only show commands for this package manager")

	return cmd
}

func runList(cmd *cobra.Command, app *App) error {
	pmFlag, _ := cmd.Flags().GetString("pm")

	managers := catalog.PackageManagers
	if pmFlag != "" {
		pm, err := catalog.ParsePackageManager(pmFlag)
		if err != nil {
			return err
		}
		managers = []catalog.PackageManager{pm}
	}

	out := ui.New(app.Stdout, app.Stderr, false).Writer()

	headers := []string{"FRAMEWORK"}
	for _, pm := range managers {
		headers = append(headers, pm.String())
	}

	var rows [][]string
	for _, fw := range app.Catalog.Frameworks() {
		row := []string{fw.Name}
		for _, pm := range managers {
			row = append(row, resolve.Resolve(fw, pm))
		}
		rows = append(rows, row)
	}

	fmt.Fprintln(out, "🧩 Available Frameworks:")
	fmt.Fprintln(out, newTable(headers, rows))

	var extras [][]string
	for _, extra := range app.Catalog.Extras() {
		extras = append(extras, []string{extra.ID, extra.Label})
	}

	fmt.Fprintln(out, "📦 Extra Libraries:")
	fmt.Fprintln(out, newTable([]string{"ID", "NAME"}, extras))

	return nil
}

func newTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	return t.String()
}
